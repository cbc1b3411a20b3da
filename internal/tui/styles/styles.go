package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	JustYellow = lipgloss.Color("#FBC500")
	SlateDark  = lipgloss.Color("#1F2937")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(JustYellow)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(JustYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(JustYellow).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(JustYellow).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Trend indicators for streaming chart positions
var (
	TrendUpStyle   = lipgloss.NewStyle().Foreground(Green)
	TrendDownStyle = lipgloss.NewStyle().Foreground(Red)
	TrendFlatStyle = lipgloss.NewStyle().Foreground(LightGray)
)
