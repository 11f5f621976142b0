package mode

import (
	"context"
	"sync"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/longkey1/crybaby/internal/crybaby/attachment"
	"github.com/longkey1/crybaby/internal/crybaby/persona"
	"go.uber.org/zap"
)

// runFunc performs the remote call for a selected file
type runFunc func(ctx context.Context, file crybaby.Attachment) (string, error)

// FileTask is a single-file, single-shot surface
type FileTask struct {
	mu      sync.Mutex
	mode    Mode
	state   State
	file    *crybaby.Attachment
	result  string
	err     error
	accept  func(mimeType string) bool
	run     runFunc
	persona *persona.Persona
	logger  *zap.Logger
}

// NewTranscriptionTask creates the audio transcription surface.
// Only audio files are accepted; remote failures end in the Error state.
func NewTranscriptionTask(assistant crybaby.Assistant, p *persona.Persona, logger *zap.Logger) *FileTask {
	return &FileTask{
		mode:  Transcription,
		state: Idle,
		accept: func(mimeType string) bool {
			return attachment.Category(mimeType) == "audio"
		},
		run:     assistant.Transcribe,
		persona: p,
		logger:  logger.With(zap.String("surface", string(Transcription))),
	}
}

// NewAnalysisTask creates the file analysis surface.
// Images, videos and PDFs are accepted; a remote failure yields the
// persona's failure placeholder as the result.
func NewAnalysisTask(assistant crybaby.Assistant, p *persona.Persona, logger *zap.Logger) *FileTask {
	t := &FileTask{
		mode:  Analysis,
		state: Idle,
		accept: func(mimeType string) bool {
			switch attachment.Category(mimeType) {
			case "image", "video":
				return true
			}
			return mimeType == "application/pdf"
		},
		persona: p,
		logger:  logger.With(zap.String("surface", string(Analysis))),
	}
	t.run = func(ctx context.Context, file crybaby.Attachment) (string, error) {
		reply, err := assistant.Converse(ctx, p.Analysis, nil, []crybaby.Attachment{file})
		if err != nil {
			t.logger.Warn("Analysis request failed, replying with placeholder", zap.Error(err))
			return p.FailureReply, nil
		}
		return reply.Text, nil
	}
	return t
}

// Mode returns the surface mode
func (t *FileTask) Mode() Mode {
	return t.mode
}

// Accepts reports whether the surface takes files of the given type
func (t *FileTask) Accepts(mimeType string) bool {
	return t.accept(mimeType)
}

// Select validates and encodes a file. A rejected or unreadable file leaves
// the surface untouched; a new selection discards any previous result.
func (t *FileTask) Select(f attachment.RawFile) error {
	t.mu.Lock()
	busy := t.state == Processing
	t.mu.Unlock()
	if busy {
		return crybaby.ErrBusy
	}

	if !t.Accepts(f.MIMEType) {
		return &crybaby.ValidationError{Field: "file", Message: t.persona.RejectedFile}
	}

	att, err := attachment.Encode(f)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Processing {
		return crybaby.ErrBusy
	}
	t.file = &att
	t.result = ""
	t.err = nil
	t.state = FileSelected
	return nil
}

// Process sends the selected file. The file stays selected afterwards, so
// calling Process again re-runs it. The returned error is non-nil only for
// ErrBusy, ErrNoFile and failures the surface reports as its Error state.
func (t *FileTask) Process(ctx context.Context) (string, error) {
	t.mu.Lock()
	if t.state == Processing {
		t.mu.Unlock()
		return "", crybaby.ErrBusy
	}
	if t.file == nil {
		t.mu.Unlock()
		return "", crybaby.ErrNoFile
	}
	file := *t.file
	t.state = Processing
	t.result = ""
	t.err = nil
	t.mu.Unlock()

	t.logger.Debug("Processing file",
		zap.String("file", file.Name),
		zap.String("mime_type", file.MIMEType))

	result, err := t.run(ctx, file)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.err = err
		t.state = Error
		return "", err
	}
	t.result = result
	t.state = Result
	return result, nil
}

// Clear drops the selected file and returns to Idle
func (t *FileTask) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Processing {
		return crybaby.ErrBusy
	}
	t.file = nil
	t.result = ""
	t.err = nil
	t.state = Idle
	return nil
}

// State returns the current state
func (t *FileTask) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// File returns the selected file, if any
func (t *FileTask) File() (crybaby.Attachment, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file == nil {
		return crybaby.Attachment{}, false
	}
	return *t.file, true
}

// Result returns the text of the last successful run
func (t *FileTask) Result() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

// Err returns the failure of the last run
func (t *FileTask) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
