package cmd

import (
	"github.com/longkey1/crybaby/internal/crybaby/mode"
)

var analyzeCmd = newFileCommand(
	"analyze <file>",
	"Analyze an image, a video or a PDF",
	`Send a file to the assistant and print a description of it.

Images, videos and PDF documents are accepted. The MIME type is
detected from the file content unless --mime is given.

Example:
  crybaby analyze screenshot.png
  crybaby analyze paper.pdf
  curl -s https://example.com/cat.jpg | crybaby analyze -`,
	func(a *app) *mode.FileTask {
		return mode.NewAnalysisTask(a.client, a.persona, a.logger)
	},
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
