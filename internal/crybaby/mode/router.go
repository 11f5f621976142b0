package mode

import (
	"sync"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/longkey1/crybaby/internal/crybaby/persona"
	"go.uber.org/zap"
)

// Router holds the active surface. Surfaces share the assistant but no state.
type Router struct {
	mu            sync.Mutex
	active        Mode
	assistant     crybaby.Assistant
	persona       *persona.Persona
	logger        *zap.Logger
	chat          *ChatSurface
	transcription *FileTask
	analysis      *FileTask
}

// NewRouter creates a router with the chat surface active
func NewRouter(assistant crybaby.Assistant, p *persona.Persona, logger *zap.Logger) *Router {
	if p == nil {
		p = persona.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Router{
		active:    Chat,
		assistant: assistant,
		persona:   p,
		logger:    logger,
	}
	r.chat = NewChatSurface(assistant, p, logger)
	r.transcription = NewTranscriptionTask(assistant, p, logger)
	r.analysis = NewAnalysisTask(assistant, p, logger)
	return r
}

// Switch activates a mode with a fresh surface. Leaving a view discards its
// state; a request still running on the old surface completes unobserved.
func (r *Router) Switch(m Mode) error {
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch m {
	case Chat:
		r.chat = NewChatSurface(r.assistant, r.persona, r.logger)
	case Transcription:
		r.transcription = NewTranscriptionTask(r.assistant, r.persona, r.logger)
	case Analysis:
		r.analysis = NewAnalysisTask(r.assistant, r.persona, r.logger)
	}
	r.logger.Debug("Switched mode", zap.String("from", string(r.active)), zap.String("to", string(m)))
	r.active = m
	return nil
}

// Active returns the active mode
func (r *Router) Active() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Chat returns the chat surface
func (r *Router) Chat() *ChatSurface {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.chat
}

// FileTask returns the single-file surface of the active mode, if any
func (r *Router) FileTask() (*FileTask, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.active {
	case Transcription:
		return r.transcription, true
	case Analysis:
		return r.analysis, true
	}
	return nil, false
}
