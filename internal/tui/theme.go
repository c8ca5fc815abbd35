package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	catppuccin "github.com/catppuccin/go"
)

// Theme holds all semantic colors and pre-computed styles for the picker.
type Theme struct {
	Primary color.Color
	Accent  color.Color
	Dim     color.Color

	Selected lipgloss.Style
	Normal   lipgloss.Style
	DimText  lipgloss.Style
	HintText lipgloss.Style

	Prompt    lipgloss.Style
	Cursor    lipgloss.Style
	Search    lipgloss.Style
	PrimaryFg lipgloss.Style
	DangerFg  lipgloss.Style

	StatusBar lipgloss.Style

	Preview lipgloss.Style

	ChromaStyleName string
}

var activeTheme = ThemeDark()

// SetTheme sets the active global theme.
func SetTheme(t Theme) { activeTheme = t }

// ThemeDark returns the dark theme (Catppuccin Mocha palette).
func ThemeDark() Theme { return newTheme(catppuccin.Mocha, true) }

// ThemeLight returns the light theme (Catppuccin Latte palette).
func ThemeLight() Theme { return newTheme(catppuccin.Latte, false) }

// ThemeForBackground returns the appropriate theme for the terminal background.
func ThemeForBackground(isDark bool) Theme {
	if isDark {
		return ThemeDark()
	}
	return ThemeLight()
}

type roleProfile struct {
	primary     color.Color
	accent      color.Color
	selectedBg  color.Color
	statusBarBg color.Color
	searchBg    color.Color
}

type textProfile struct {
	normal color.Color
	dim    color.Color
	hint   color.Color
}

// canonicalRoleProfile maps semantic roles to Catppuccin palette tokens.
// The same token names are used for both dark and light palettes; the
// underlying hex values differ because each palette defines its own colors.
func canonicalRoleProfile(flavor catppuccin.Flavor) roleProfile {
	return roleProfile{
		primary:     lipgloss.Color(flavor.Sapphire().Hex),
		accent:      lipgloss.Color(flavor.Yellow().Hex),
		selectedBg:  lipgloss.Color(flavor.Surface0().Hex),
		statusBarBg: lipgloss.Color(flavor.Mantle().Hex),
		searchBg:    lipgloss.Color(flavor.Mauve().Hex),
	}
}

// textForegrounds returns text colors appropriate for the terminal polarity.
// Dark terminals use the palette's native content tokens; light terminals
// use darker content tokens to maintain contrast on inherited backgrounds.
func textForegrounds(flavor catppuccin.Flavor, isDark bool) textProfile {
	if isDark {
		return textProfile{
			normal: lipgloss.Color(flavor.Text().Hex),
			dim:    lipgloss.Color(flavor.Overlay1().Hex),
			hint:   lipgloss.Color(flavor.Subtext0().Hex),
		}
	}
	return textProfile{
		normal: lipgloss.Color(flavor.Text().Hex),
		dim:    lipgloss.Color(flavor.Subtext0().Hex),
		hint:   lipgloss.Color(flavor.Overlay1().Hex),
	}
}

// newTheme constructs a Theme from a Catppuccin flavor and terminal polarity.
func newTheme(flavor catppuccin.Flavor, isDark bool) Theme {
	profile := canonicalRoleProfile(flavor)
	tp := textForegrounds(flavor, isDark)

	primary := profile.primary
	accent := profile.accent
	danger := lipgloss.Color(flavor.Red().Hex)
	dim := tp.dim
	selFg := lipgloss.Color(flavor.Text().Hex)

	chromaStyle := "catppuccin-mocha"
	if !isDark {
		chromaStyle = "catppuccin-latte"
	}

	t := Theme{
		Primary: primary,
		Accent:  accent,
		Dim:     dim,

		ChromaStyleName: chromaStyle,
	}

	t.Selected = lipgloss.NewStyle().
		Background(profile.selectedBg).
		Foreground(selFg).
		Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(tp.normal)
	t.DimText = lipgloss.NewStyle().Foreground(dim)
	t.HintText = lipgloss.NewStyle().Foreground(tp.hint)

	t.Prompt = lipgloss.NewStyle().Bold(true).Foreground(primary)
	t.Cursor = lipgloss.NewStyle().Bold(true).Foreground(accent)
	t.Search = lipgloss.NewStyle().
		Bold(true).
		Background(profile.searchBg).
		Foreground(lipgloss.Color(flavor.Crust().Hex)).
		Padding(0, 1)
	t.PrimaryFg = lipgloss.NewStyle().Foreground(primary)
	t.DangerFg = lipgloss.NewStyle().Foreground(danger)

	t.StatusBar = lipgloss.NewStyle().
		Background(profile.statusBarBg).
		Foreground(selFg).
		Padding(0, 1)

	t.Preview = lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dim).
		Padding(0, 1)

	return t
}
