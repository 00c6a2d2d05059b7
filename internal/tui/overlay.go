package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// overlayCenter paints fg over the center of bg within a w x h frame.
func overlayCenter(bg, fg string, w, h int) string {
	bgLines := padLines(bg, h)
	fgLines := strings.Split(fg, "\n")

	fgW := 0
	for _, ln := range fgLines {
		if n := xansi.StringWidth(ln); n > fgW {
			fgW = n
		}
	}
	fgH := len(fgLines)
	if fgW <= 0 || fgH <= 0 {
		return strings.Join(bgLines, "\n")
	}
	if fgW > w {
		fgW = w
	}

	x := (w - fgW) / 2
	y := (h - fgH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		left := xansi.Cut(bgLine, 0, x)
		right := xansi.Cut(bgLine, x+fgW, w)

		fgLine := fgLines[i]
		if n := xansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = xansi.Cut(fgLine, 0, fgW)
		}
		bgLines[y+i] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}

// dimBackground renders the screen behind a modal faint so the modal
// reads as the active layer without hiding context.
func dimBackground(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true).Render(s)
}

func renderModalBox(screenWidth int, title, body string) string {
	w := screenWidth - 12
	if w < 30 {
		w = 30
	}
	if w > 64 {
		w = 64
	}

	header := lipgloss.NewStyle().Bold(true).Render(title)
	box := lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62"))
	return box.Render(header + "\n\n" + body)
}

func padLines(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) >= n {
		return lines[:n]
	}
	out := make([]string, 0, n)
	out = append(out, lines...)
	for len(out) < n {
		out = append(out, "")
	}
	return out
}
