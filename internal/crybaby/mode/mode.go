// Package mode implements the interaction surfaces (chat, transcription, analysis)
// and the router that selects which one is active.
//
// Each surface is a small state machine:
//
//	Idle -> FileSelected -> Processing -> Result | Error -> Idle
//
// The chat surface only uses Idle and Processing. A surface accepts a single
// in-flight request; a second one is rejected with crybaby.ErrBusy.
//
// A file surface keeps its file after Result or Error: Process runs the same
// file again (Result | Error -> Processing), Select replaces it
// (-> FileSelected) and Clear drops it (-> Idle).
package mode

import (
	"fmt"
	"strings"

	"github.com/longkey1/crybaby/internal/crybaby"
)

// Mode identifies an interaction surface
type Mode string

const (
	Chat          Mode = "chat"
	Transcription Mode = "transcription"
	Analysis      Mode = "analysis"
)

// Modes lists all surfaces in display order
var Modes = []Mode{Chat, Transcription, Analysis}

// ParseMode parses a mode name (case-insensitive)
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", &crybaby.ValidationError{
		Field:   "mode",
		Message: fmt.Sprintf("unknown mode %q (expected chat, transcription or analysis)", s),
	}
}

// State is the state of a surface
type State int

const (
	Idle State = iota
	FileSelected
	Processing
	Result
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case FileSelected:
		return "file-selected"
	case Processing:
		return "processing"
	case Result:
		return "result"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
