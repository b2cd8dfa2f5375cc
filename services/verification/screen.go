package verification

import (
	"errors"
	"sync"
	"time"

	"github.com/piresc/tiffinhub/internal/pkg/countdown"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/piresc/tiffinhub/internal/pkg/otp"
)

var (
	// ErrIncompleteCode is returned by Submit while a cell is still empty
	ErrIncompleteCode = errors.New("verification code is incomplete")
	// ErrResendNotReady is returned by Resend while the countdown is running
	ErrResendNotReady = errors.New("resend is not available yet")
)

// Screen is the state behind the code verification screen: the code cells
// plus the resend countdown.
type Screen struct {
	widget       *otp.Widget
	timer        *countdown.Timer
	resendWindow time.Duration

	mu      sync.Mutex
	mounted bool
}

// NewScreen builds the screen from the OTP settings. Zero values fall back to
// four cells and a sixty second resend window.
func NewScreen(cfg models.OTPConfig, opts ...countdown.Option) *Screen {
	length := cfg.Length
	if length <= 0 {
		length = otp.DefaultLength
	}
	window := time.Duration(cfg.ResendSeconds) * time.Second
	if window <= 0 {
		window = countdown.DefaultDuration
	}

	return &Screen{
		widget:       otp.NewWidget(length),
		timer:        countdown.New(opts...),
		resendWindow: window,
	}
}

// Mount focuses the first cell and arms the resend countdown
func (s *Screen) Mount() otp.State {
	s.mu.Lock()
	s.mounted = true
	s.mu.Unlock()

	state := s.widget.Clear()
	s.timer.Start(s.resendWindow)
	return state
}

// Type delivers a text change in cell index
func (s *Screen) Type(index int, text string) otp.State {
	return s.widget.Type(index, text)
}

// Backspace delivers a backspace press in cell index
func (s *Screen) Backspace(index int) otp.State {
	return s.widget.Backspace(index)
}

// Clear empties every cell and focuses the first
func (s *Screen) Clear() otp.State {
	return s.widget.Clear()
}

// State returns the current cells and focus
func (s *Screen) State() otp.State {
	return s.widget.State()
}

// CanVerify reports whether every cell holds a digit
func (s *Screen) CanVerify() bool {
	return s.widget.State().Complete()
}

// Submit returns the entered code, or ErrIncompleteCode
func (s *Screen) Submit() (string, error) {
	state := s.widget.State()
	if !state.Complete() {
		return "", ErrIncompleteCode
	}
	return state.Code(), nil
}

// Remaining returns the seconds left before a resend is allowed
func (s *Screen) Remaining() int {
	return s.timer.Remaining()
}

// CanResend reports whether the countdown has reached zero
func (s *Screen) CanResend() bool {
	s.mu.Lock()
	mounted := s.mounted
	s.mu.Unlock()
	return mounted && s.timer.Remaining() == 0
}

// Resend re-arms the countdown and clears the cells. The caller requests a
// new code after a nil return.
func (s *Screen) Resend() error {
	if !s.CanResend() {
		return ErrResendNotReady
	}
	s.widget.Clear()
	s.timer.Start(s.resendWindow)
	logger.Debug("Verification code resend requested",
		logger.Int("resend_seconds", int(s.resendWindow/time.Second)))
	return nil
}

// Close cancels the countdown
func (s *Screen) Close() {
	s.mu.Lock()
	s.mounted = false
	s.mu.Unlock()
	s.timer.Stop()
}
