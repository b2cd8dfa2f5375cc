package otp

import (
	"strings"
	"sync"
)

// DefaultLength is the number of code cells on the verification screen
const DefaultLength = 4

// State is the widget's cursor and slot contents. Each slot holds at most one digit.
type State struct {
	Slots []string
	Focus int
}

// NewState returns an empty code of n cells with focus on the first cell
func NewState(n int) State {
	if n <= 0 {
		n = DefaultLength
	}
	return State{Slots: make([]string, n)}
}

// Complete reports whether every slot holds a digit
func (s State) Complete() bool {
	for _, slot := range s.Slots {
		if slot == "" {
			return false
		}
	}
	return len(s.Slots) > 0
}

// Code concatenates the slots
func (s State) Code() string {
	return strings.Join(s.Slots, "")
}

func (s State) clone() State {
	slots := make([]string, len(s.Slots))
	copy(slots, s.Slots)
	return State{Slots: slots, Focus: s.Focus}
}

// Event is a user action on one of the cells
type Event interface {
	apply(State) State
}

// EnterDigit is a change of the text in cell Index
type EnterDigit struct {
	Index int
	Text  string
}

// Backspace is a backspace key press in cell Index
type Backspace struct {
	Index int
}

// Clear resets every slot and returns focus to the first cell
type Clear struct{}

func (e EnterDigit) apply(s State) State {
	if e.Index < 0 || e.Index >= len(s.Slots) {
		return s
	}

	digits := digitsOnly(e.Text)
	last := ""
	if digits != "" {
		last = digits[len(digits)-1:]
	}

	s.Slots[e.Index] = last
	s.Focus = e.Index
	if last != "" && e.Index < len(s.Slots)-1 {
		s.Focus = e.Index + 1
	}
	return s
}

func (e Backspace) apply(s State) State {
	if e.Index < 0 || e.Index >= len(s.Slots) {
		return s
	}

	s.Focus = e.Index
	if s.Slots[e.Index] != "" {
		s.Slots[e.Index] = ""
		return s
	}
	if e.Index > 0 {
		s.Slots[e.Index-1] = ""
		s.Focus = e.Index - 1
	}
	return s
}

func (Clear) apply(s State) State {
	for i := range s.Slots {
		s.Slots[i] = ""
	}
	s.Focus = 0
	return s
}

// Reduce applies ev to s and returns the new state. s is not modified.
func Reduce(s State, ev Event) State {
	return ev.apply(s.clone())
}

func digitsOnly(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Widget holds a State for callers that deliver events from a UI loop
type Widget struct {
	mu    sync.Mutex
	state State
}

// NewWidget mounts a widget with n empty cells and focus on the first
func NewWidget(n int) *Widget {
	return &Widget{state: NewState(n)}
}

// Dispatch applies ev and returns the resulting state
func (w *Widget) Dispatch(ev Event) State {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = Reduce(w.state, ev)
	return w.state.clone()
}

// Type is shorthand for dispatching EnterDigit
func (w *Widget) Type(index int, text string) State {
	return w.Dispatch(EnterDigit{Index: index, Text: text})
}

// Backspace is shorthand for dispatching Backspace
func (w *Widget) Backspace(index int) State {
	return w.Dispatch(Backspace{Index: index})
}

// Clear empties every cell
func (w *Widget) Clear() State {
	return w.Dispatch(Clear{})
}

// State returns a copy of the current state
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.clone()
}
