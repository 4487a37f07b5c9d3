package ui

import "charm.land/lipgloss/v2"

// Color palette - Purple + Cyan/Teal theme
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorAnswer      = lipgloss.Color("#22D3EE") // Bright cyan for answer headings
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber for warnings
	ColorInfo        = lipgloss.Color("#06B6D4") // Cyan for info
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green for success
)

// Header/footer hex values used by the gradient renderer
const (
	HeaderGradientStart = "#7C3AED"
	HeaderGradientEnd   = "#1F2937"
	HeaderTextHex       = "#F9FAFB"
	HeaderMutedHex      = "#B0B8C4"
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)
)

// Deal list styles
var (
	ListItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(ColorText).
				Bold(true).
				Padding(0, 1)

	ListBoundDealStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)
)

// Ask panel styles
var (
	QuestionStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	AnswerHeadingStyle = lipgloss.NewStyle().
				Foreground(ColorAnswer).
				Bold(true)

	SourceNameStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	SourceScoreStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	SourceMetaStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	SourceTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	InputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)
)

// Status styles
var (
	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusEmptyStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)
)
