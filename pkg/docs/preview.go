package docs

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/tenderlove/yazap/pkg/logging"
)

// Preview styles markdown for display on out. When out is not an
// interactive terminal, color is disabled, or the glamour renderer fails,
// the markdown comes back unchanged.
func Preview(markdown string, out *os.File) string {
	if !shouldStyle(out) {
		return markdown
	}
	logger := logging.GetLogger("docs")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("glamour renderer unavailable, using plain markdown")
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		logger.Debug().Err(err).Msg("markdown styling failed, using plain markdown")
		return markdown
	}
	return rendered
}

func shouldStyle(out *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if out == nil {
		return false
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return false
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return false
	}
	return true
}
