package conversation

import (
	"fmt"
	"testing"
	"time"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsGreeting(t *testing.T) {
	s := New("hello there")

	msgs := s.Snapshot()
	require.Len(t, msgs, 1)
	assert.Equal(t, crybaby.RoleAssistant, msgs[0].Role)
	assert.Equal(t, "hello there", msgs[0].Text)
	assert.NotEmpty(t, msgs[0].ID)
	assert.False(t, msgs[0].Timestamp.IsZero())
	assert.Len(t, s.ShortID(), 8)
}

func TestNewWithoutGreeting(t *testing.T) {
	s := New("")
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Snapshot())
}

func TestAppendOnly(t *testing.T) {
	s := New("")

	var want []crybaby.Message
	var ids []string
	for i := 0; i < 10; i++ {
		role := crybaby.RoleUser
		if i%2 == 1 {
			role = crybaby.RoleAssistant
		}
		m := crybaby.Message{Role: role, Text: fmt.Sprintf("message %d", i)}
		want = append(want, m)

		before := s.Snapshot()
		ids = append(ids, s.Append(m))

		// earlier messages are untouched by later appends
		after := s.Snapshot()
		require.Len(t, after, len(before)+1)
		assert.Equal(t, before, after[:len(before)])
	}

	got := s.Snapshot()
	require.Len(t, got, len(want))
	seen := make(map[string]bool)
	for i := range want {
		assert.Equal(t, want[i].Role, got[i].Role)
		assert.Equal(t, want[i].Text, got[i].Text)
		assert.Equal(t, ids[i], got[i].ID)
		assert.False(t, seen[got[i].ID], "duplicate id")
		seen[got[i].ID] = true
	}
}

func TestAppendKeepsTimestamp(t *testing.T) {
	s := New("")
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.Append(crybaby.Message{Role: crybaby.RoleUser, Text: "hi", Timestamp: ts})
	assert.Equal(t, ts, s.Snapshot()[0].Timestamp)
}

func TestAppendCopiesAttachments(t *testing.T) {
	s := New("")
	atts := []crybaby.Attachment{{Name: "a.png", MIMEType: "image/png", Data: "AA=="}}
	s.Append(crybaby.Message{Role: crybaby.RoleUser, Attachments: atts})

	atts[0].Name = "mutated"
	assert.Equal(t, "a.png", s.Snapshot()[0].Attachments[0].Name)
}

func TestSnapshotIsolation(t *testing.T) {
	s := New("greeting")
	s.Append(crybaby.Message{
		Role:    crybaby.RoleAssistant,
		Text:    "answer",
		Sources: []crybaby.Citation{{Title: "t", URI: "u"}},
	})

	snap := s.Snapshot()
	snap[0].Text = "mutated"
	snap[1].Sources[0].Title = "mutated"

	fresh := s.Snapshot()
	assert.Equal(t, "greeting", fresh[0].Text)
	assert.Equal(t, "t", fresh[1].Sources[0].Title)
}

func TestHistoryViewDropsNonTextFields(t *testing.T) {
	s := New("greeting")
	s.Append(crybaby.Message{
		Role:        crybaby.RoleUser,
		Text:        "look at this",
		Attachments: []crybaby.Attachment{{Name: "cat.jpg", MIMEType: "image/jpeg", Data: "AA=="}},
	})
	s.Append(crybaby.Message{
		Role:    crybaby.RoleAssistant,
		Text:    "a cat",
		Sources: []crybaby.Citation{{Title: "cats", URI: "https://example.com/cats"}},
	})

	assert.Equal(t, []crybaby.HistoryEntry{
		{Role: crybaby.RoleAssistant, Text: "greeting"},
		{Role: crybaby.RoleUser, Text: "look at this"},
		{Role: crybaby.RoleAssistant, Text: "a cat"},
	}, s.HistoryView())
}

func TestConcurrentAppend(t *testing.T) {
	s := New("")
	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		go func(i int) {
			s.Append(crybaby.Message{Role: crybaby.RoleUser, Text: fmt.Sprint(i)})
			_ = s.HistoryView()
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 50; i++ {
		<-done
	}
	assert.Equal(t, 50, s.Len())
}
