package pyout

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// renderMode says whether command output may carry styling.
type renderMode int

const (
	renderRich renderMode = iota
	renderPlain
)

// detectRenderMode inspects the environment and terminal capabilities and
// falls back to plain output when styling would not survive.
func detectRenderMode(output *os.File) renderMode {
	if os.Getenv("NO_COLOR") != "" {
		return renderPlain
	}

	// Piped or redirected output gets no styling
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return renderPlain
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return renderPlain
	}

	return renderRich
}

// renderMarkdown renders markdown for the terminal with glamour, returning
// the raw markdown when styling is off or rendering fails.
func renderMarkdown(content string) string {
	if detectRenderMode(os.Stdout) == renderPlain {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
