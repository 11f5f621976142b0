package mode

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/longkey1/crybaby/internal/crybaby/attachment"
	"github.com/longkey1/crybaby/internal/crybaby/conversation"
	"github.com/longkey1/crybaby/internal/crybaby/persona"
	"go.uber.org/zap"
)

// ChatSurface keeps a running conversation with the assistant
type ChatSurface struct {
	mu        sync.Mutex
	state     State
	pending   []crybaby.Attachment
	store     *conversation.Store
	assistant crybaby.Assistant
	persona   *persona.Persona
	logger    *zap.Logger
}

// NewChatSurface creates a chat surface whose conversation starts with the persona greeting
func NewChatSurface(assistant crybaby.Assistant, p *persona.Persona, logger *zap.Logger) *ChatSurface {
	store := conversation.New(p.Greeting)
	return &ChatSurface{
		state:     Idle,
		store:     store,
		assistant: assistant,
		persona:   p,
		logger:    logger.With(zap.String("surface", string(Chat)), zap.String("session", store.ShortID())),
	}
}

// Attach encodes a file and queues it for the next message
func (c *ChatSurface) Attach(f attachment.RawFile) (crybaby.Attachment, error) {
	att, err := attachment.Encode(f)
	if err != nil {
		return crybaby.Attachment{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, att)
	return att, nil
}

// Detach removes the queued attachment at index i
func (c *ChatSurface) Detach(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.pending) {
		return &crybaby.ValidationError{
			Field:   "attachment",
			Message: fmt.Sprintf("no pending attachment #%d", i+1),
		}
	}
	c.pending = append(c.pending[:i:i], c.pending[i+1:]...)
	return nil
}

// Pending returns the queued attachments
func (c *ChatSurface) Pending() []crybaby.Attachment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]crybaby.Attachment(nil), c.pending...)
}

// Send appends the user turn, asks the assistant and appends its reply.
// A remote failure never reaches the caller: the reply becomes the persona's
// failure placeholder. Only validation and ErrBusy are returned as errors.
func (c *ChatSurface) Send(ctx context.Context, text string) (crybaby.Message, error) {
	c.mu.Lock()
	if c.state == Processing {
		c.mu.Unlock()
		return crybaby.Message{}, crybaby.ErrBusy
	}
	if strings.TrimSpace(text) == "" && len(c.pending) == 0 {
		c.mu.Unlock()
		return crybaby.Message{}, &crybaby.ValidationError{Field: "message", Message: "message is empty"}
	}

	history := c.store.HistoryView()
	attachments := c.pending
	c.pending = nil
	c.store.Append(crybaby.Message{
		Role:        crybaby.RoleUser,
		Text:        text,
		Attachments: attachments,
	})
	c.state = Processing
	c.mu.Unlock()

	reply, err := c.assistant.Converse(ctx, text, history, attachments)
	if err != nil {
		c.logger.Warn("Conversation request failed, replying with placeholder", zap.Error(err))
		reply = &crybaby.Reply{Text: c.persona.FailureReply, Sources: []crybaby.Citation{}}
	}

	msg := crybaby.Message{
		Role:    crybaby.RoleAssistant,
		Text:    reply.Text,
		Sources: reply.Sources,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Append(msg)
	c.state = Idle

	snapshot := c.store.Snapshot()
	return snapshot[len(snapshot)-1], nil
}

// Messages returns the conversation so far
func (c *ChatSurface) Messages() []crybaby.Message {
	return c.store.Snapshot()
}

// Conversation returns the underlying store
func (c *ChatSurface) Conversation() *conversation.Store {
	return c.store
}

// State returns the current state (Idle or Processing)
func (c *ChatSurface) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
