// Package styles defines the terminal color palette and lipgloss styles for
// the dashboard.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	GreenColor  = lipgloss.Color("#10B981")
	RedColor    = lipgloss.Color("#EF4444")
	YellowColor = lipgloss.Color("#F59E0B")
	CyanColor   = lipgloss.Color("#22D3EE")
	WhiteColor  = lipgloss.Color("#F9FAFB")
	GrayColor   = lipgloss.Color("#9CA3AF")
	MutedColor  = lipgloss.Color("#6B7280")
	BorderColor = lipgloss.Color("#374151")
	BlackColor  = lipgloss.Color("#111827")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	PlainStyle = lipgloss.NewStyle()

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(CyanColor)
)

// Text styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(GrayColor)

	BrandStyle = lipgloss.NewStyle().
			Foreground(BlackColor).
			Background(GreenColor)

	AccentStyle = lipgloss.NewStyle().
			Foreground(GreenColor)

	WarnStyle = lipgloss.NewStyle().
			Foreground(YellowColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ValueStyle = lipgloss.NewStyle().
			Foreground(WhiteColor)

	BoldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(CyanColor)

	GainStyle = lipgloss.NewStyle().
			Foreground(GreenColor)

	LossStyle = lipgloss.NewStyle().
			Foreground(RedColor)
)

// Table and list styles
var (
	HeaderRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(GrayColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(WhiteColor).
				Background(BorderColor)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(BlackColor).
				Background(CyanColor)
)

// Chart styles
var (
	SparkStyle = lipgloss.NewStyle().
			Foreground(CyanColor)

	GaugeFillStyle = lipgloss.NewStyle().
			Foreground(CyanColor)

	GaugeEmptyStyle = lipgloss.NewStyle().
			Foreground(BorderColor)
)
