package cmd

import (
	"github.com/longkey1/crybaby/internal/crybaby/mode"
)

var transcribeCmd = newFileCommand(
	"transcribe <audio-file>",
	"Transcribe an audio file",
	`Send an audio file to the assistant and print the transcription.

Only audio files are accepted (mp3, wav, ogg, ...). The MIME type is
detected from the file content unless --mime is given.

Example:
  crybaby transcribe voice.ogg
  crybaby transcribe recording.bin --mime audio/mpeg
  cat voice.ogg | crybaby transcribe -`,
	func(a *app) *mode.FileTask {
		return mode.NewTranscriptionTask(a.client, a.persona, a.logger)
	},
)

func init() {
	rootCmd.AddCommand(transcribeCmd)
}
