package ui

import "github.com/charmbracelet/lipgloss"

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle    = lipgloss.NewStyle().Foreground(ColorYellow)
	failStyle    = lipgloss.NewStyle().Foreground(ColorRed)
	labelStyle   = lipgloss.NewStyle().Foreground(ColorDarkGray)
)

// Title renders a bold cyan heading
func Title(s string) string {
	return titleStyle.Render(s)
}

// Success renders a green checkmark line
func Success(s string) string {
	return successStyle.Render("✓ " + s)
}

// Warn renders a yellow warning line
func Warn(s string) string {
	return warnStyle.Render("⚠ " + s)
}

// Fail renders a red failure line
func Fail(s string) string {
	return failStyle.Render("✗ " + s)
}

// Label renders a dimmed key for key/value status output
func Label(s string) string {
	return labelStyle.Render(s)
}
