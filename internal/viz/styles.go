package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style set for the terminal UI.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	// EstimatedMark styles the asterisk shown next to values the
	// estimation layer filled in.
	EstimatedMark = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00"))

	HZBadge = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ff88"))

	BinaryBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff88ff"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// TraitBadges renders the derived system flags as a compact badge row.
func TraitBadges(multi, eccentric, resonant, hz, binary bool) string {
	var badges []string
	if multi {
		badges = append(badges, Label.Render("[multi]"))
	}
	if eccentric {
		badges = append(badges, StatusPaused.Render("[eccentric]"))
	}
	if resonant {
		badges = append(badges, Value.Render("[resonant]"))
	}
	if hz {
		badges = append(badges, HZBadge.Render("[HZ]"))
	}
	if binary {
		badges = append(badges, BinaryBadge.Render("[binary]"))
	}
	return strings.Join(badges, " ")
}
