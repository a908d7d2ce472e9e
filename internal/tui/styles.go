package tui

import "github.com/charmbracelet/lipgloss"

// Dashboard chrome colors
var (
	ColorAmber     = lipgloss.Color("#FFB000")
	ColorDimAmber  = lipgloss.Color("#7A5500")
	ColorBarBg     = lipgloss.Color("#1A1200")
	ColorBorder    = lipgloss.Color("#7A5500")
	ColorAlert     = lipgloss.Color("#FF3300")
	ColorOK        = lipgloss.Color("#33FF66")
	ColorSparkline = lipgloss.Color("#00AAFF")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorAmber).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorDimAmber)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorAmber).
			Padding(0, 1)

	StyleAlertOn = lipgloss.NewStyle().
			Foreground(ColorAlert).
			Bold(true)

	StyleAlertOff = lipgloss.NewStyle().
			Foreground(ColorOK)

	StyleSparkline = lipgloss.NewStyle().
			Foreground(ColorSparkline)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorAlert).
			Bold(true)
)
