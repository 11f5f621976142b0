package render

import (
	"errors"
	"testing"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/stretchr/testify/assert"
)

func TestMessagePlain(t *testing.T) {
	r := New("Crybaby", 0, false)

	out := r.Message(crybaby.Message{
		Role: crybaby.RoleAssistant,
		Text: "**sigh** fine",
		Sources: []crybaby.Citation{
			{Title: "Go", URI: "https://go.dev"},
			{Title: "Source", URI: "https://example.com"},
		},
	})

	assert.Contains(t, out, "Crybaby")
	assert.Contains(t, out, "**sigh** fine")
	assert.Contains(t, out, "[1] Go - https://go.dev")
	assert.Contains(t, out, "[2] Source - https://example.com")
}

func TestMessageUserWithAttachment(t *testing.T) {
	r := New("Crybaby", 40, false)

	out := r.Message(crybaby.Message{
		Role:        crybaby.RoleUser,
		Attachments: []crybaby.Attachment{{Name: "cat.png", MIMEType: "image/png"}},
	})

	assert.Contains(t, out, "You")
	assert.Contains(t, out, "cat.png (image/png)")
	assert.NotContains(t, out, "Sources:")
}

func TestBodyMarkdown(t *testing.T) {
	r := New("Crybaby", 60, true)
	out := r.Body("# Title\n\nsome text")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "some text")
}

func TestErrorAndNotice(t *testing.T) {
	r := New("Crybaby", 0, false)
	assert.Contains(t, r.Error(errors.New("boom")), "Error: boom")
	assert.Contains(t, r.Notice("mode: %s", "chat"), "mode: chat")
}
