// Package crybaby provides the core abstractions of the persona-wrapped assistant.
// This package defines the conversation data model, the Assistant port that the
// remote client (gemini) implements, and the error taxonomy shared by all surfaces.
package crybaby

import (
	"context"
	"fmt"
	"strings"
)

// Assistant defines the port to the remote generative model.
// The gemini package provides the production implementation.
//
// Example usage:
//
//	client, err := gemini.NewClient(cfg, persona.Default(), logger)
//	reply, err := client.Converse(ctx, "hi", history, nil)
type Assistant interface {
	// Converse sends the current turn together with the prior history.
	// history carries only role and text; attachments belong to the current turn.
	// Remote failures are returned as *RemoteServiceError, the caller decides
	// whether to show them or fall back to a placeholder reply.
	Converse(ctx context.Context, text string, history []HistoryEntry, attachments []Attachment) (*Reply, error)

	// Transcribe asks for a full transcription of a single audio attachment.
	Transcribe(ctx context.Context, audio Attachment) (string, error)
}

// ParseModelString parses a model string in "provider:model" format.
// Returns (provider, model, error).
//
// Example:
//
//	provider, model, err := ParseModelString("gemini:gemini-2.5-flash")
//	// provider = "gemini", model = "gemini-2.5-flash"
func ParseModelString(modelStr string) (string, string, error) {
	parts := strings.SplitN(modelStr, ":", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid model format: %s (expected format: provider:model, e.g., gemini:gemini-2.5-flash)", modelStr)
	}

	provider := strings.TrimSpace(parts[0])
	model := strings.TrimSpace(parts[1])

	if provider == "" || model == "" {
		return "", "", fmt.Errorf("provider and model cannot be empty")
	}

	return provider, model, nil
}

// FormatModelString formats provider and model into "provider:model" format.
func FormatModelString(provider, model string) string {
	return fmt.Sprintf("%s:%s", provider, model)
}
