package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/piresc/tiffinhub/internal/pkg/countdown"
	"github.com/piresc/tiffinhub/internal/pkg/otp"
	"github.com/piresc/tiffinhub/services/verification"
	"github.com/spf13/cobra"
)

func newOTPCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otp",
		Short: "Verification code helpers",
	}
	cmd.AddCommand(newOTPReplayCmd(c), newOTPCountdownCmd())
	return cmd
}

func newOTPReplayCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <event>...",
		Short: "Replay key events against the code cells",
		Long: `Replay key events against the code cells and print the cells after each one.
Events: "<cell>:<text>" types text into a cell, "bs:<cell>" presses backspace
in a cell, "clear" empties every cell.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.loadConfig()
			screen := verification.NewScreen(cfg.OTP)
			defer screen.Close()

			out := cmd.OutOrStdout()
			printCells(out, "mount", screen.Mount())

			for _, arg := range args {
				ev, err := parseOTPEvent(arg)
				if err != nil {
					return err
				}
				var state otp.State
				switch e := ev.(type) {
				case otp.EnterDigit:
					state = screen.Type(e.Index, e.Text)
				case otp.Backspace:
					state = screen.Backspace(e.Index)
				default:
					state = screen.Clear()
				}
				printCells(out, arg, state)
			}

			code, err := screen.Submit()
			if err != nil {
				fmt.Fprintln(out, "incomplete")
				return nil
			}
			fmt.Fprintf(out, "code %s\n", code)
			return nil
		},
	}
}

func parseOTPEvent(arg string) (otp.Event, error) {
	if arg == "clear" {
		return otp.Clear{}, nil
	}

	head, tail, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, fmt.Errorf("invalid event %q", arg)
	}
	if head == "bs" {
		idx, err := strconv.Atoi(tail)
		if err != nil {
			return nil, fmt.Errorf("invalid cell in %q", arg)
		}
		return otp.Backspace{Index: idx}, nil
	}

	idx, err := strconv.Atoi(head)
	if err != nil {
		return nil, fmt.Errorf("invalid cell in %q", arg)
	}
	return otp.EnterDigit{Index: idx, Text: tail}, nil
}

func printCells(w io.Writer, label string, s otp.State) {
	cells := make([]string, len(s.Slots))
	for i, slot := range s.Slots {
		if slot == "" {
			slot = "_"
		}
		if i == s.Focus {
			slot = "[" + slot + "]"
		}
		cells[i] = slot
	}
	fmt.Fprintf(w, "%-8s %s\n", label, strings.Join(cells, " "))
}

func newOTPCountdownCmd() *cobra.Command {
	var seconds int

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Run the resend countdown in real time",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountdown(cmd.Context(), cmd.OutOrStdout(), time.Duration(seconds)*time.Second)
		},
	}
	cmd.Flags().IntVar(&seconds, "seconds", int(countdown.DefaultDuration/time.Second), "countdown length")
	return cmd
}

func runCountdown(ctx context.Context, w io.Writer, d time.Duration, opts ...countdown.Option) error {
	done := make(chan struct{})
	var once sync.Once

	opts = append(opts, countdown.WithOnTick(func(remaining int) {
		fmt.Fprintf(w, "%d\n", remaining)
		if remaining == 0 {
			once.Do(func() { close(done) })
		}
	}))
	timer := countdown.New(opts...)
	defer timer.Stop()

	timer.Start(d)

	select {
	case <-done:
		fmt.Fprintln(w, "resend available")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
