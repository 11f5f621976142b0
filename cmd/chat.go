/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/longkey1/crybaby/internal/crybaby/attachment"
	"github.com/longkey1/crybaby/internal/crybaby/mode"
	"github.com/longkey1/crybaby/internal/gemini"
	"github.com/longkey1/crybaby/internal/render"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var startMode string

const chatHelp = `Commands:
  /help                     Show this help
  /info                     Show mode, model and session details
  /mode <name>              Switch to chat, transcription or analysis (starts fresh)
  /attach <path> [mime]     Queue a file for the next chat message (quote paths with spaces)
  /detach <n>               Remove queued attachment n
  /pending                  List queued attachments
  /file <path> [mime]       Select the file for transcription or analysis
  /run                      Process the selected file
  /clear                    Start the current mode over
  /exit                     Quit`

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive session",
	Long: `Start an interactive session with the assistant.

Plain lines are sent as chat messages. Lines starting with "/" are commands;
type /help to list them. Ctrl+C while waiting for an answer cancels the
request, Ctrl+C or Ctrl+D at the prompt quits.

Nothing is saved: the conversation lives only as long as the session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		initial, err := mode.ParseMode(startMode)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		s := &chatSession{
			app:    a,
			router: mode.NewRouter(a.client, a.persona, a.logger),
			render: render.New(a.persona.Name, 0, a.cfg.RenderMarkdown),
			out:    os.Stdout,
		}
		if initial != mode.Chat {
			if err := s.router.Switch(initial); err != nil {
				return err
			}
		}

		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return s.loop(ctx, line)
	},
}

// chatSession drives the router from a line-based terminal
type chatSession struct {
	app    *app
	router *mode.Router
	render *render.Renderer
	out    io.Writer
}

func (s *chatSession) loop(ctx context.Context, line *liner.State) error {
	s.greet()
	for {
		input, err := line.Prompt(fmt.Sprintf("%s> ", s.router.Active()))
		if err != nil {
			// Ctrl+C, Ctrl+D or a closed terminal
			fmt.Fprintln(s.out)
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			quit, err := s.command(ctx, input)
			if err != nil {
				fmt.Fprintln(s.out, s.render.Error(err))
			}
			if quit {
				return nil
			}
			continue
		}

		if err := s.send(ctx, input); err != nil {
			fmt.Fprintln(s.out, s.render.Error(err))
		}
	}
}

// greet shows the entry view of the active mode
func (s *chatSession) greet() {
	switch s.router.Active() {
	case mode.Chat:
		msgs := s.router.Chat().Messages()
		for _, m := range msgs {
			fmt.Fprint(s.out, s.render.Message(m))
		}
	case mode.Transcription:
		fmt.Fprintln(s.out, s.render.Notice("Transcription mode: /file <audio> then /run"))
	case mode.Analysis:
		fmt.Fprintln(s.out, s.render.Notice("Analysis mode: /file <image|video|pdf> then /run"))
	}
}

func (s *chatSession) command(ctx context.Context, input string) (bool, error) {
	name, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch name {
	case "/exit", "/quit":
		return true, nil
	case "/help":
		fmt.Fprintln(s.out, chatHelp)
	case "/info":
		s.info()
	case "/mode":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: /mode <chat|transcription|analysis>")
		}
		m, err := mode.ParseMode(args[0])
		if err != nil {
			return false, err
		}
		if err := s.router.Switch(m); err != nil {
			return false, err
		}
		s.greet()
	case "/attach":
		return false, s.attach(rest)
	case "/detach":
		return false, s.detach(args)
	case "/pending":
		s.pending()
	case "/file":
		return false, s.selectFile(rest)
	case "/run":
		return false, s.run(ctx)
	case "/clear":
		return false, s.clear()
	default:
		return false, fmt.Errorf("unknown command %s (type /help)", name)
	}
	return false, nil
}

func (s *chatSession) info() {
	fmt.Fprintf(s.out, "Mode:    %s\n", s.router.Active())
	fmt.Fprintf(s.out, "Model:   %s\n", crybaby.FormatModelString(gemini.ProviderName, s.app.client.Model()))
	fmt.Fprintf(s.out, "Persona: %s\n", s.app.persona.Name)

	if task, ok := s.router.FileTask(); ok {
		fmt.Fprintf(s.out, "State:   %s\n", task.State())
		if f, ok := task.File(); ok {
			fmt.Fprintf(s.out, "File:    %s (%s)\n", f.Name, f.MIMEType)
		}
		switch task.State() {
		case mode.Result:
			fmt.Fprintf(s.out, "Result:  %d characters\n", len([]rune(task.Result())))
		case mode.Error:
			fmt.Fprintf(s.out, "Error:   %v\n", task.Err())
		}
		return
	}

	chat := s.router.Chat()
	store := chat.Conversation()
	fmt.Fprintf(s.out, "Session: %s (started %s)\n", store.ID(), store.CreatedAt().Format("15:04:05"))
	fmt.Fprintf(s.out, "Messages: %d\n", store.Len())
	fmt.Fprintf(s.out, "Pending attachments: %d\n", len(chat.Pending()))
}

func (s *chatSession) send(ctx context.Context, text string) error {
	if s.router.Active() != mode.Chat {
		return fmt.Errorf("plain messages only work in chat mode; use /file and /run, or /mode chat")
	}
	chat := s.router.Chat()

	var reply crybaby.Message
	err := withSpinner(ctx, os.Stderr, s.app.persona.Name+" is sighing", func(ctx context.Context) error {
		reqCtx, cancel := s.app.requestContext(ctx)
		defer cancel()

		var err error
		reply, err = chat.Send(reqCtx, text)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, s.render.Message(reply))
	return nil
}

// parseFileArgs splits "<path> [mime]". The path may be quoted; an unquoted
// path runs to the end of the line unless the last word is a MIME type.
func parseFileArgs(rest, usage string) (string, string, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", "", fmt.Errorf("usage: %s", usage)
	}

	if q := rest[0]; q == '"' || q == '\'' {
		end := strings.IndexByte(rest[1:], q)
		if end < 0 {
			return "", "", fmt.Errorf("unterminated quote in %q", rest)
		}
		path := rest[1 : end+1]
		tail := strings.Fields(rest[end+2:])
		switch {
		case path == "":
			return "", "", fmt.Errorf("usage: %s", usage)
		case len(tail) == 0:
			return path, "", nil
		case len(tail) == 1:
			return path, tail[0], nil
		default:
			return "", "", fmt.Errorf("usage: %s", usage)
		}
	}

	if i := strings.LastIndexByte(rest, ' '); i > 0 && looksLikeMIME(rest[i+1:]) {
		return strings.TrimSpace(rest[:i]), rest[i+1:], nil
	}
	return rest, "", nil
}

var mimeTopLevel = map[string]bool{
	"application": true, "audio": true, "font": true, "image": true,
	"model": true, "text": true, "video": true,
}

func looksLikeMIME(s string) bool {
	top, sub, ok := strings.Cut(s, "/")
	return ok && sub != "" && !strings.Contains(sub, "/") && mimeTopLevel[strings.ToLower(top)]
}

func (s *chatSession) attach(rest string) error {
	if s.router.Active() != mode.Chat {
		return fmt.Errorf("/attach only works in chat mode; use /file")
	}
	path, mimeType, err := parseFileArgs(rest, "/attach <path> [mime]")
	if err != nil {
		return err
	}

	raw, err := attachment.FromPath(path, mimeType)
	if err != nil {
		return fmt.Errorf("%s: %w", s.app.persona.FileLoadFailed, err)
	}
	att, err := s.router.Chat().Attach(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", s.app.persona.FileLoadFailed, err)
	}
	fmt.Fprintln(s.out, s.render.Notice("Attached %s (%s)", att.Name, att.MIMEType))
	return nil
}

func (s *chatSession) detach(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: /detach <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid attachment number %q", args[0])
	}
	if err := s.router.Chat().Detach(n - 1); err != nil {
		return err
	}
	s.pending()
	return nil
}

func (s *chatSession) pending() {
	pending := s.router.Chat().Pending()
	if len(pending) == 0 {
		fmt.Fprintln(s.out, s.render.Notice("No pending attachments"))
		return
	}
	for i, att := range pending {
		size := "?"
		if data, err := attachment.Decode(att); err == nil {
			size = fmt.Sprintf("%d bytes", len(data))
		}
		fmt.Fprintf(s.out, "  %d. %s (%s, %s)\n", i+1, att.Name, att.MIMEType, size)
	}
}

func (s *chatSession) selectFile(rest string) error {
	task, ok := s.router.FileTask()
	if !ok {
		return fmt.Errorf("/file only works in transcription or analysis mode; use /attach")
	}
	path, mimeType, err := parseFileArgs(rest, "/file <path> [mime]")
	if err != nil {
		return err
	}
	if err := selectFile(s.app, task, path, mimeType); err != nil {
		return err
	}

	f, _ := task.File()
	fmt.Fprintln(s.out, s.render.Notice("Selected %s (%s). Type /run to process it.", filepath.Base(f.Name), f.MIMEType))
	return nil
}

func (s *chatSession) run(ctx context.Context) error {
	task, ok := s.router.FileTask()
	if !ok {
		return fmt.Errorf("/run only works in transcription or analysis mode")
	}

	result, err := processFile(ctx, s.app, task)
	if err != nil {
		s.app.logger.Debug("File processing failed", zap.Error(err))
		return fileFailure(s.app, err)
	}
	printFileResult(s.render, task.Mode(), result)
	return nil
}

func (s *chatSession) clear() error {
	if task, ok := s.router.FileTask(); ok {
		return task.Clear()
	}
	if err := s.router.Switch(mode.Chat); err != nil {
		return err
	}
	s.greet()
	return nil
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVarP(&startMode, "mode", "m", string(mode.Chat), "Mode to start in (chat, transcription, analysis)")
}
