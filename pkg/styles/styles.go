package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style identifica una paleta de salida por consola.
type Style string

const (
	Default Style = "default"
	Error   Style = "error"
	Success Style = "success"
	Info    Style = "info"
	Warn    Style = "warn"
	Muted   Style = "muted"
)

var palette = map[Style]lipgloss.Style{
	Default: lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F45E6E")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#6EF4A1")),
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6EC4F4")),
	Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F4C56E")),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
}

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

func render(style Style, text string) string {
	s, ok := palette[style]
	if !ok {
		s = palette[Default]
	}
	return s.Render(text)
}

// SprintfS formatea y colorea el texto con el estilo pedido.
func SprintfS(style Style, format string, a ...any) string {
	return render(style, fmt.Sprintf(format, a...))
}

// FprintFS escribe una línea coloreada en w.
func FprintFS(w io.Writer, style Style, format string, a ...any) {
	fmt.Fprintln(w, SprintfS(style, format, a...))
}

func Title(text string) string { return titleStyle.Render(text) }

// ScoreBar dibuja una barra proporcional a un score en [0,1].
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		return ""
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score*float64(width) + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return render(Success, bar)
}
