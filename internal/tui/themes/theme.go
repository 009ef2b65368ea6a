// Package themes holds the dashboard color schemes.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Card          lipgloss.Style
	AccentCard    lipgloss.Style
	ActiveTab     lipgloss.Style
	InactiveTab   lipgloss.Style
	Selected      lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	Points        lipgloss.Style
	Primary       lipgloss.Color
	Progress      lipgloss.Color
	Spending      lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Background    lipgloss.Color
}

func newTheme(primary, progress, spending, muted, border, background, card, foreground, gold string) Theme {
	fg := lipgloss.Color(foreground)
	return Theme{
		Primary:    lipgloss.Color(primary),
		Progress:   lipgloss.Color(progress),
		Spending:   lipgloss.Color(spending),
		Muted:      lipgloss.Color(muted),
		Border:     lipgloss.Color(border),
		Background: lipgloss.Color(background),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(primary)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Background(lipgloss.Color(card)).
			Padding(1, 2),
		AccentCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primary)).
			Padding(1, 2),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(primary)).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(primary)).
			Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)).
			Padding(0, 2),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(primary)).
			Foreground(lipgloss.Color(background)).
			Bold(true),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(progress)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(spending)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(primary)),
		Points: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(gold)),
	}
}

// Default is the monee teal-on-charcoal theme.
var Default = newTheme(
	"#2cd3a7", // primary
	"#55f86b", // progress
	"#ff6b6b", // spending
	"#9ca3af", // muted
	"#414141", // border
	"#1a1a1a", // background
	"#252525", // card
	"#fafafa", // foreground
	"#f5b041", // gold
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(
	"#cba6f7",
	"#a6e3a1",
	"#f38ba8",
	"#6c7086",
	"#45475a",
	"#1e1e2e",
	"#313244",
	"#cdd6f4",
	"#f9e2af",
)

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// CategoryIcons maps categories to emoji icons.
var CategoryIcons = map[string]string{
	"Food":           "🥬",
	"Groceries":      "🥬",
	"Dining":         "🍕",
	"Salary":         "💼",
	"Interest":       "📈",
	"Bank Fees":      "🏦",
	"Cash & ATM":     "🏧",
	"Transportation": "🚗",
	"Entertainment":  "🎬",
	"Shopping":       "🛍️",
	"Utilities":      "💡",
	"Education":      "📚",
	"General":        "📦",
}

// GetCategoryIcon returns an icon for a category.
func GetCategoryIcon(category string) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "📦"
}
