package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/longkey1/crybaby/internal/crybaby/attachment"
	"github.com/longkey1/crybaby/internal/crybaby/mode"
	"github.com/longkey1/crybaby/internal/render"
	"github.com/spf13/cobra"
)

var fileMIMEType string

// newFileCommand builds a one-shot command around a single-file surface
func newFileCommand(use, short, long string, newTask func(a *app) *mode.FileTask) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			task := newTask(a)
			if err := selectFile(a, task, args[0], fileMIMEType); err != nil {
				return err
			}

			result, err := processFile(cmd.Context(), a, task)
			if err != nil {
				return fileFailure(a, err)
			}
			printFileResult(render.New(a.persona.Name, 0, a.cfg.RenderMarkdown), task.Mode(), result)
			return nil
		},
	}
	c.Flags().StringVar(&fileMIMEType, "mime", "", "MIME type of the file (detected from content when omitted)")
	return c
}

// selectFile loads a local file into a single-file surface
func selectFile(a *app, task *mode.FileTask, path, mimeType string) error {
	raw, err := openRawFile(path, mimeType)
	if err != nil {
		return fmt.Errorf("%s: %w", a.persona.FileLoadFailed, err)
	}
	if err := task.Select(raw); err != nil {
		var rerr *crybaby.AttachmentReadError
		if errors.As(err, &rerr) {
			return fmt.Errorf("%s: %w", a.persona.FileLoadFailed, err)
		}
		return err
	}
	return nil
}

// openRawFile opens a local file, or stdin when path is "-"
func openRawFile(path, mimeType string) (attachment.RawFile, error) {
	if path == "-" {
		return attachment.FromReader("stdin", mimeType, os.Stdin)
	}
	return attachment.FromPath(path, mimeType)
}

// fileFailure adds the persona's wording to remote failures; only the
// transcription surface reports those, analysis falls back to a placeholder
func fileFailure(a *app, err error) error {
	if crybaby.IsRemoteError(err) {
		return fmt.Errorf("%s: %w", a.persona.TranscriptionFailed, err)
	}
	return err
}

// processFile runs the selected file under the request timeout
func processFile(ctx context.Context, a *app, task *mode.FileTask) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var result string
	err := withSpinner(ctx, os.Stderr, a.persona.Name+" is sighing", func(ctx context.Context) error {
		reqCtx, cancel := a.requestContext(ctx)
		defer cancel()

		var err error
		result, err = task.Process(reqCtx)
		return err
	})
	return result, err
}

func printFileResult(r *render.Renderer, m mode.Mode, result string) {
	if m == mode.Analysis {
		fmt.Println(r.Body(result))
		return
	}
	fmt.Println(result)
}
