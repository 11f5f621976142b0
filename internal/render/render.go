// Package render formats conversation output for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/longkey1/crybaby/internal/crybaby"
)

const defaultWidth = 80

var (
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	attachStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sourceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
)

// Renderer turns messages into terminal text
type Renderer struct {
	name     string
	markdown *glamour.TermRenderer
}

// New creates a renderer. The assistant is labelled with name.
// If markdown is false, or glamour cannot be initialized, bodies are printed as-is.
func New(name string, width int, markdown bool) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	r := &Renderer{name: name}
	if markdown {
		tr, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			r.markdown = tr
		}
	}
	return r
}

// Message renders a single conversation entry
func (r *Renderer) Message(msg crybaby.Message) string {
	var b strings.Builder

	switch msg.Role {
	case crybaby.RoleUser:
		b.WriteString(userStyle.Render("You"))
	default:
		b.WriteString(assistantStyle.Render(r.name))
	}
	b.WriteString("\n")

	for _, att := range msg.Attachments {
		b.WriteString(attachStyle.Render(fmt.Sprintf("📎 %s (%s)", att.Name, att.MIMEType)))
		b.WriteString("\n")
	}

	if msg.Text != "" {
		b.WriteString(r.Body(msg.Text))
		b.WriteString("\n")
	}

	if len(msg.Sources) > 0 {
		b.WriteString(r.Sources(msg.Sources))
	}
	return b.String()
}

// Body renders assistant text, as markdown when enabled
func (r *Renderer) Body(text string) string {
	if r.markdown == nil {
		return text
	}
	out, err := r.markdown.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// Sources renders a numbered citation list
func (r *Renderer) Sources(sources []crybaby.Citation) string {
	var b strings.Builder
	b.WriteString(noticeStyle.Render("Sources:"))
	b.WriteString("\n")
	for i, s := range sources {
		b.WriteString(sourceStyle.Render(fmt.Sprintf("[%d] %s - %s", i+1, s.Title, s.URI)))
		b.WriteString("\n")
	}
	return b.String()
}

// Error renders an error line
func (r *Renderer) Error(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}

// Notice renders a status line
func (r *Renderer) Notice(format string, args ...any) string {
	return noticeStyle.Render(fmt.Sprintf(format, args...))
}
