package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Semantic aliases
const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	laneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	laneFocusStyle = laneStyle.
			BorderForeground(colorFocus)

	laneHoverStyle = laneStyle.
			BorderForeground(colorAccent)

	laneHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	laneCountStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)

	cursorStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	grabbedStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent)
	pendingStyle = lipgloss.NewStyle().Foreground(colorWarning)
	dimStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)
	staleStyle   = lipgloss.NewStyle().Foreground(colorWarning).Italic(true)

	noteSuccessStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorSuccess).Padding(0, 1)
	noteErrorStyle   = lipgloss.NewStyle().Foreground(colorBase).Background(colorError).Padding(0, 1)

	footerStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 1)

	prioHighStyle   = lipgloss.NewStyle().Foreground(colorRed)
	prioMediumStyle = lipgloss.NewStyle().Foreground(colorPeach)
	prioLowStyle    = lipgloss.NewStyle().Foreground(colorBlue)
)
