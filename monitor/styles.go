package monitor

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	video  lipgloss.Style
	irq    lipgloss.Style
	keypad lipgloss.Style
	driver lipgloss.Style
	log    lipgloss.Style
	err    lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		video:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		irq:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		keypad: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		driver: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		log:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		err:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}
