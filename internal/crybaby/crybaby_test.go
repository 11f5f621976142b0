package crybaby

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelString(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantProvider string
		wantModel    string
		wantErr      bool
	}{
		{
			name:         "valid gemini model",
			input:        "gemini:gemini-2.5-flash",
			wantProvider: "gemini",
			wantModel:    "gemini-2.5-flash",
			wantErr:      false,
		},
		{
			name:         "model with colon",
			input:        "gemini:tuned:2025-01-01",
			wantProvider: "gemini",
			wantModel:    "tuned:2025-01-01",
			wantErr:      false,
		},
		{
			name:         "with whitespace",
			input:        " gemini : gemini-2.5-pro ",
			wantProvider: "gemini",
			wantModel:    "gemini-2.5-pro",
			wantErr:      false,
		},
		{
			name:         "missing colon",
			input:        "gemini-2.5-flash",
			wantProvider: "",
			wantModel:    "",
			wantErr:      true,
		},
		{
			name:         "empty provider",
			input:        ":gemini-2.5-flash",
			wantProvider: "",
			wantModel:    "",
			wantErr:      true,
		},
		{
			name:         "empty model",
			input:        "gemini:",
			wantProvider: "",
			wantModel:    "",
			wantErr:      true,
		},
		{
			name:         "empty string",
			input:        "",
			wantProvider: "",
			wantModel:    "",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, model, err := ParseModelString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseModelString() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if provider != tt.wantProvider {
				t.Errorf("ParseModelString() provider = %v, want %v", provider, tt.wantProvider)
			}
			if model != tt.wantModel {
				t.Errorf("ParseModelString() model = %v, want %v", model, tt.wantModel)
			}
		})
	}
}

func TestFormatModelString(t *testing.T) {
	got := FormatModelString("gemini", "gemini-2.5-flash")
	provider, model, err := ParseModelString(got)
	require.NoError(t, err)
	assert.Equal(t, "gemini", provider)
	assert.Equal(t, "gemini-2.5-flash", model)
}

func TestAttachmentPayload(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "data uri", data: "data:audio/mpeg;base64,SGVsbG8=", want: "SGVsbG8="},
		{name: "raw base64", data: "SGVsbG8=", want: "SGVsbG8="},
		{name: "empty payload", data: "data:audio/mpeg;base64,", want: ""},
		{name: "empty", data: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attachment{Name: "f", MIMEType: "audio/mpeg", Data: tt.data}
			assert.Equal(t, tt.want, a.Payload())
		})
	}
}

func TestMessageClone(t *testing.T) {
	orig := Message{
		Role:        RoleAssistant,
		Text:        "ok",
		Attachments: []Attachment{{Name: "a.png", MIMEType: "image/png", Data: "AA=="}},
		Sources:     []Citation{{Title: "t", URI: "https://example.com"}},
	}

	clone := orig.Clone()
	clone.Attachments[0].Name = "changed"
	clone.Sources[0].URI = "changed"

	assert.Equal(t, "a.png", orig.Attachments[0].Name)
	assert.Equal(t, "https://example.com", orig.Sources[0].URI)
}

func TestRemoteServiceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("converse: %w", &RemoteServiceError{Kind: RemoteNetwork, Err: cause})

	assert.True(t, IsRemoteError(err))
	assert.ErrorIs(t, err, cause)

	var re *RemoteServiceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, RemoteNetwork, re.Kind)
	assert.Contains(t, err.Error(), "connection refused")

	assert.False(t, IsRemoteError(&ValidationError{Field: "file", Message: "not audio"}))
}

func TestAttachmentReadError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &AttachmentReadError{Name: "voice.ogg", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "voice.ogg")
}
