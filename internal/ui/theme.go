package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"petal/internal/task"
)

// Petal theme (CLI + TUI).
// Two palettes: the pastel pink/emerald light scheme and a dark
// green-slate scheme, selected by the persisted dark-mode flag.

const (
	IconTask    = "🌸"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconDate    = "📅"
	IconClock   = "⏰"
	IconMoon    = "🌙"
	IconSun     = "☀️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

// Style aliases lipgloss.Style so most callers only import ui.
type Style = lipgloss.Style

// Styles bundles every style the CLI and TUI render with.
type Styles struct {
	Dark bool

	Title Style
	H2    Style
	Muted Style
	Key   Style
	Good  Style
	Warn  Style
	Bad   Style

	Badge    Style
	Card     Style
	Selected Style
}

// NewStyles builds the palette for the given theme flag.
func NewStyles(dark bool) Styles {
	var (
		cPrimary = lipgloss.Color("205") // pink
		cAccent  = lipgloss.Color("211") // rose
		cGood    = lipgloss.Color("42")  // emerald
		cWarn    = lipgloss.Color("214") // orange
		cBad     = lipgloss.Color("196") // red
		cMuted   = lipgloss.Color("244") // gray
		cBorder  = lipgloss.Color("217") // light pink
	)
	if dark {
		cPrimary = lipgloss.Color("42") // emerald on dark
		cAccent = lipgloss.Color("205")
		cMuted = lipgloss.Color("240")
		cBorder = lipgloss.Color("238")
	}

	return Styles{
		Dark:  dark,
		Title: lipgloss.NewStyle().Bold(true).Foreground(cAccent),
		H2:    lipgloss.NewStyle().Bold(true).Foreground(cPrimary),
		Muted: lipgloss.NewStyle().Foreground(cMuted),
		Key:   lipgloss.NewStyle().Bold(true).Foreground(cPrimary),
		Good:  lipgloss.NewStyle().Bold(true).Foreground(cGood),
		Warn:  lipgloss.NewStyle().Bold(true).Foreground(cWarn),
		Bad:   lipgloss.NewStyle().Bold(true).Foreground(cBad),

		Badge:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Card:     lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cBorder).Padding(0, 1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(cPrimary),
	}
}

// HasDarkBackground reports the terminal's ambient preference; used as
// the theme fallback when nothing is persisted yet.
func HasDarkBackground() bool {
	return lipgloss.HasDarkBackground()
}

func (s Styles) Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return s.Title.Render(icon + title)
}

func (s Styles) LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", s.Key.Render(label+":"), value)
}

// PriorityBadge renders the colored priority pill: high=pink, medium=rose,
// low=emerald.
func (s Styles) PriorityBadge(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return s.Badge.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("205")).Render("high")
	case task.PriorityLow:
		return s.Badge.Foreground(lipgloss.Color("22")).Background(lipgloss.Color("42")).Render("low")
	default:
		return s.Badge.Foreground(lipgloss.Color("88")).Background(lipgloss.Color("217")).Render("medium")
	}
}

// ColorEdge renders the task's accent color as a left edge marker.
func (s Styles) ColorEdge(hex string) string {
	if hex == "" {
		hex = task.DefaultColor
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("▌")
}

// Checkbox renders completion state.
func (s Styles) Checkbox(done bool) string {
	if done {
		return s.Good.Render("[x]")
	}
	return s.Muted.Render("[ ]")
}

// StrikeIf strikes through completed task text.
func (s Styles) StrikeIf(done bool, text string) string {
	if done {
		return s.Muted.Strikethrough(true).Render(text)
	}
	return text
}

// ProgressBar renders the XP bar toward the next level.
func (s Styles) ProgressBar(percent int, width int) string {
	if width < 3 {
		width = 3
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return s.Good.Render(strings.Repeat("█", filled)) + s.Muted.Render(strings.Repeat("░", width-filled))
}
