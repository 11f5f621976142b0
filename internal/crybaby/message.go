package crybaby

import (
	"strings"
	"time"
)

// Role identifies the author of a turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleSystem is reserved and never emitted by the current surfaces.
	RoleSystem Role = "system"
)

// Message represents a single turn in a conversation
type Message struct {
	ID          string       `json:"id"`
	Role        Role         `json:"role"`
	Text        string       `json:"text"`
	Timestamp   time.Time    `json:"timestamp"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Sources     []Citation   `json:"sources,omitempty"` // assistant turns that used grounded search
}

// Clone returns a deep copy of the message
func (m Message) Clone() Message {
	c := m
	if m.Attachments != nil {
		c.Attachments = append([]Attachment(nil), m.Attachments...)
	}
	if m.Sources != nil {
		c.Sources = append([]Citation(nil), m.Sources...)
	}
	return c
}

// Attachment is a single uploaded file, fully buffered in memory
type Attachment struct {
	Name     string `json:"name"`      // display only
	MIMEType string `json:"mime_type"` // declared content type
	Data     string `json:"data"`      // base64, optionally prefixed by a data-URI header
}

// Payload returns the base64 payload without the data-URI header.
// The header, when present, is everything up to and including the first comma.
func (a Attachment) Payload() string {
	if _, after, found := strings.Cut(a.Data, ","); found {
		return after
	}
	return a.Data
}

// Citation is a web source returned by grounded search
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// HistoryEntry is the outbound projection of a message
type HistoryEntry struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Reply is the normalized answer of the remote model
type Reply struct {
	Text    string     `json:"text"`
	Sources []Citation `json:"sources"`
}
