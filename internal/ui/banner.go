package ui

import "github.com/abhisek/quizly/internal/ui/theme"

const bannerArt = `
  ██████╗ ██╗   ██╗██╗███████╗██╗     ██╗   ██╗
 ██╔═══██╗██║   ██║██║╚══███╔╝██║     ╚██╗ ██╔╝
 ██║   ██║██║   ██║██║  ███╔╝ ██║      ╚████╔╝
 ██║▄▄ ██║██║   ██║██║ ███╔╝  ██║       ╚██╔╝
 ╚██████╔╝╚██████╔╝██║███████╗███████╗   ██║
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚══════╝   ╚═╝`

const bannerCompact = "Q U I Z L Y"

const tagline = " Test your knowledge, one question at a time."

// Banner returns the QUIZLY banner with its tagline. Terminals
// narrower than 52 columns get a compact single-line fallback.
func (r *Renderer) Banner() string {
	art := bannerArt
	if r.width < 52 {
		art = bannerCompact
	}
	return r.styled(theme.Title, art) + "\n" + r.styled(theme.Subtitle, tagline)
}
