package persona

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Persona represents the structure of a TOML persona file.
// Every text the assistant shows on its own behalf lives here.
type Persona struct {
	Name                string `toml:"name"`
	System              string `toml:"system"`
	Greeting            string `toml:"greeting"`
	Analysis            string `toml:"analysis"`      // instruction sent with a file to analyze
	Transcription       string `toml:"transcription"` // instruction sent with an audio file
	EmptyReply          string `toml:"empty_reply"`
	FailureReply        string `toml:"failure_reply"`
	EmptyTranscription  string `toml:"empty_transcription"`
	TranscriptionFailed string `toml:"transcription_failed"`
	UntitledSource      string `toml:"untitled_source"`
	RejectedFile        string `toml:"rejected_file"`
	FileLoadFailed      string `toml:"file_load_failed"`
}

// LoadPersona loads a persona file on top of the default persona
func LoadPersona(filePath string) (*Persona, error) {
	p := Default()
	if _, err := toml.DecodeFile(filePath, p); err != nil {
		return nil, fmt.Errorf("error decoding persona file: %v", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid persona file %s: %w", filePath, err)
	}
	return p, nil
}

// Resolve returns the persona stored at filePath, or the default one when filePath is empty
func Resolve(filePath string) (*Persona, error) {
	if filePath == "" {
		return Default(), nil
	}
	return LoadPersona(filePath)
}

// Validate checks the fields every request depends on
func (p *Persona) Validate() error {
	if strings.TrimSpace(p.System) == "" {
		return fmt.Errorf("system prompt must not be empty")
	}
	if strings.TrimSpace(p.EmptyReply) == "" || strings.TrimSpace(p.FailureReply) == "" {
		return fmt.Errorf("empty_reply and failure_reply must not be empty")
	}
	return nil
}
