package browse

import (
	"charm.land/lipgloss/v2"

	"github.com/kosmi-edu/kosmi/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗ ██████╗ ███████╗███╗   ███╗██╗
 ██║ ██╔╝██╔═══██╗██╔════╝████╗ ████║██║
 █████╔╝ ██║   ██║███████╗██╔████╔██║██║
 ██╔═██╗ ██║   ██║╚════██║██║╚██╔╝██║██║
 ██║  ██╗╚██████╔╝███████║██║ ╚═╝ ██║██║
 ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝     ╚═╝╚═╝`

const bannerCompact = "K O S M I"

// RenderBanner returns the KOSMI banner centered in width, falling back to
// spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(width).
		Align(lipgloss.Center)

	if width < 48 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
