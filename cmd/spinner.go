package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"
)

// withSpinner runs fn while drawing a spinner on w.
// Ctrl+C cancels the context passed to fn instead of killing the process.
func withSpinner(parent context.Context, w io.Writer, msg string, fn func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()

	spinChars := []rune{'|', '/', '-', '\\'}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	fmt.Fprintf(w, "%s... ", msg)
	for i := 0; ; i++ {
		select {
		case err := <-done:
			// clear the spinner line
			fmt.Fprintf(w, "\r%*s\r", len([]rune(msg))+6, "")
			return err
		case <-ticker.C:
			fmt.Fprintf(w, "\r%s... %c", msg, spinChars[i%len(spinChars)])
		}
	}
}
