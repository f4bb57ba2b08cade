package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action while a spinner titled title is drawn on out.
// The action's context carries the values of ctx and is cancelled when ctx is
// or when the user aborts the spinner. The action's error is returned
// unchanged; aborting yields ErrAborted.
func RunWithSpinner(ctx context.Context, out io.Writer, title string, accessible bool, action func(context.Context) error) error {
	actionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var actionErr error
	err := spinner.New().
		Title(title).
		Accessible(accessible).
		Output(out).
		ActionWithErr(func(spinCtx context.Context) error {
			stop := context.AfterFunc(spinCtx, cancel)
			defer stop()
			actionErr = action(actionCtx)
			return nil
		}).
		Run()
	if err != nil {
		cancel()
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return ErrAborted
		}
		return err
	}
	return actionErr
}
