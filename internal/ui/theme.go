package ui

import "github.com/charmbracelet/lipgloss"

// prio's color palette — cool violets and signal colors for score bands.
var (
	// Primary colors
	Violet  = lipgloss.Color("#8B5CF6")
	Indigo  = lipgloss.Color("#6366F1")
	Teal    = lipgloss.Color("#2DD4BF")
	Lime    = lipgloss.Color("#A3E635")
	Amber   = lipgloss.Color("#FBBF24")
	Crimson = lipgloss.Color("#F43F5E")
	Dim     = lipgloss.Color("#666666")
	Bright  = lipgloss.Color("#FFFFFF")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Violet)

	Success = lipgloss.NewStyle().
		Foreground(Lime)

	Error = lipgloss.NewStyle().
		Foreground(Crimson)

	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	Info = lipgloss.NewStyle().
		Foreground(Teal)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Violet).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Indigo).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)

	// Score band styles — the high/med/low chips.
	ScoreHighStyle = lipgloss.NewStyle().
			Foreground(Crimson).
			Bold(true)

	ScoreMedStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ScoreLowStyle = lipgloss.NewStyle().
			Foreground(Teal)
)

// Icon constants — consistent emoji language.
const (
	IconTask    = "📋"
	IconPlan    = "📅"
	IconSuggest = "🧠"
	IconTarget  = "🎯"
	IconParty   = "🎉"
	IconWarn    = "⚠️ "
	IconError   = "✗ "
	IconOk      = "✓ "
	IconArrow   = "→"
	IconDot     = "·"
)
