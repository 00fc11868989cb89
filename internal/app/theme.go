package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme selects the color scheme
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ParseTheme converts a config value to a Theme
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "", "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeDark, fmt.Errorf("unknown theme %q", name)
	}
}

// ThemeColors defines the color scheme for the application
type ThemeColors struct {
	Primary lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Subtle  lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
}

// GetThemeColors returns the color scheme for the current theme
func GetThemeColors(theme Theme) ThemeColors {
	switch theme {
	case ThemeLight:
		return ThemeColors{
			Primary: lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#0066CC"},
			Success: lipgloss.AdaptiveColor{Light: "#008000", Dark: "#008000"},
			Warning: lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FF8C00"},
			Error:   lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#CC0000"},
			Text:    lipgloss.AdaptiveColor{Light: "#333333", Dark: "#333333"},
			Subtle:  lipgloss.AdaptiveColor{Light: "#999999", Dark: "#777777"},
			Border:  lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#CCCCCC"},
		}
	default: // ThemeDark
		return ThemeColors{
			Primary: lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#4DA6FF"},
			Success: lipgloss.AdaptiveColor{Light: "#008000", Dark: "#00D700"},
			Warning: lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FFCC00"},
			Error:   lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF3333"},
			Text:    lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"},
			Subtle:  lipgloss.AdaptiveColor{Light: "#999999", Dark: "#999999"},
			Border:  lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#333333"},
		}
	}
}

// GetHeaderStyle returns a styled header
func (m Model) GetHeaderStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Primary).
		Bold(true).
		Underline(true)
}

// GetBorderStyle returns a styled border
func (m Model) GetBorderStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Border)
}

// GetSuccessStyle returns a styled success message
func (m Model) GetSuccessStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Success).
		Bold(true)
}

// GetErrorStyle returns a styled error message
func (m Model) GetErrorStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Error).
		Bold(true)
}

// GetWarningStyle returns a styled warning message
func (m Model) GetWarningStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Warning).
		Bold(true)
}

// GetHelpStyle returns a styled help text
func (m Model) GetHelpStyle() lipgloss.Style {
	colors := GetThemeColors(m.theme)
	return lipgloss.NewStyle().
		Foreground(colors.Subtle)
}
