package cmd

import (
	"testing"

	"github.com/longkey1/crybaby/internal/crybaby/config"
	"github.com/stretchr/testify/assert"
)

func TestConfigField(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.GeminiToken = "abcd1234efgh5678"

	tests := []struct {
		field string
		want  string
	}{
		{field: "model", want: "gemini:gemini-2.5-flash"},
		{field: "provider", want: "gemini"},
		{field: "model_name", want: "gemini-2.5-flash"},
		{field: "ModelName", want: "gemini-2.5-flash"},
		{field: "gemini_token", want: "abcd...5678"},
		{field: "persona_file", want: "(built-in)"},
		{field: "request_timeout", want: "2m"},
		{field: "render_markdown", want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := configField(cfg, tt.field)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := configField(cfg, "prompt_dirs")
	assert.False(t, ok)
}

func TestConfigFieldInvalidModel(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Model = "gemini-2.5-flash"

	got, ok := configField(cfg, "provider")
	assert.True(t, ok)
	assert.Contains(t, got, "invalid")
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "(not set)", maskToken(""))
	assert.Equal(t, "********", maskToken("short"))
	assert.Equal(t, "abcd...wxyz", maskToken("abcdefghijklmnopqrstuvwxyz"))
}
