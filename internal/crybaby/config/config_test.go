package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/longkey1/crybaby/internal/crybaby"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("CRYBABY_TEST_KEY", "secret-value")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "dollar syntax", input: "$CRYBABY_TEST_KEY", want: "secret-value"},
		{name: "braces syntax", input: "${CRYBABY_TEST_KEY}", want: "secret-value"},
		{name: "literal value", input: "AIza-literal", want: "AIza-literal"},
		{name: "unset variable", input: "$CRYBABY_TEST_UNSET", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandEnvVar(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetToken(t *testing.T) {
	c := NewDefaultConfig()
	c.GeminiToken = ""
	_, err := c.GetToken()
	assert.ErrorIs(t, err, crybaby.ErrNotConfigured)

	c.GeminiToken = "token"
	token, err := c.GetToken()
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}

func TestGetBaseURL(t *testing.T) {
	c := NewDefaultConfig()
	c.GeminiBaseURL = "http://localhost:8080/v1beta/"
	got, err := c.GetBaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/v1beta", got)

	c.GeminiBaseURL = ""
	_, err = c.GetBaseURL()
	assert.Error(t, err)
}

func TestGetRequestTimeout(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Duration
		wantErr bool
	}{
		{value: "2m", want: 2 * time.Minute},
		{value: "45s", want: 45 * time.Second},
		{value: "0", want: 0},
		{value: "", want: 0},
		{value: "soon", wantErr: true},
		{value: "-1s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c := &Config{RequestTimeout: tt.value}
			got, err := c.GetRequestTimeout()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModelAccessors(t *testing.T) {
	c := NewDefaultConfig()
	provider, err := c.GetProvider()
	require.NoError(t, err)
	assert.Equal(t, "gemini", provider)

	name, err := c.GetModelName()
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", name)
}

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("CRYBABY_TEST_TOKEN", "from-env")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	content := `
model = "gemini:gemini-2.5-pro"
gemini_token = "$CRYBABY_TEST_TOKEN"
gemini_base_url = "http://localhost:1234"
persona_file = "persona.toml"
request_timeout = "30s"
render_markdown = false
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	viper.SetConfigFile(cfgPath)
	require.NoError(t, viper.ReadInConfig())

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gemini:gemini-2.5-pro", c.Model)
	assert.Equal(t, "from-env", c.GeminiToken)
	assert.Equal(t, "http://localhost:1234", c.GeminiBaseURL)
	assert.Equal(t, filepath.Join(dir, "persona.toml"), c.PersonaFile)
	assert.False(t, c.RenderMarkdown)

	timeout, err := c.GetRequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout)
}
