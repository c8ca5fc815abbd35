package tui

import (
	"fmt"
	"path"
	"strings"

	"charm.land/lipgloss/v2"
	devicons "github.com/epilande/go-devicons"
)

// IconMode controls which icon set is drawn next to paths in files mode.
type IconMode string

// Icon mode values.
const (
	IconModeNerdFont IconMode = "nerdfont"
	IconModeUnicode  IconMode = "unicode"
	IconModeNone     IconMode = "none"
)

var validIconModes = []IconMode{IconModeNerdFont, IconModeUnicode, IconModeNone}

// ParseIconMode validates and normalizes an icon mode string.
func ParseIconMode(s string) (IconMode, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return IconModeNerdFont, nil
	}
	for _, m := range validIconModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid icons mode %q (valid: nerdfont, unicode, none)", s)
}

const (
	nerdFontDirIcon    = "\uf115"     // nf-fa-folder_open_o
	unicodeDirIcon     = "\U0001F4C1" // 📁
	unicodeDefaultIcon = "\U0001F4C4" // 📄
)

// unicodeIcons maps lower-cased extensions to plain Unicode symbols.
var unicodeIcons = map[string]string{
	".md":   "\U0001F4DD", // 📝
	".png":  "\U0001F5BC", // 🖼
	".jpg":  "\U0001F5BC",
	".jpeg": "\U0001F5BC",
	".gif":  "\U0001F5BC",
	".svg":  "\U0001F5BC",
	".zip":  "\U0001F4E6", // 📦
	".tar":  "\U0001F4E6",
	".gz":   "\U0001F4E6",
	".yaml": "\u2699", // ⚙
	".yml":  "\u2699",
	".toml": "\u2699",
	".json": "\u2699",
	".sh":   "\u25B6", // ▶
	".bash": "\u25B6",
	".zsh":  "\u25B6",
}

// isDirItem reports whether a walked item names a directory. The walker marks
// directories with a trailing slash.
func isDirItem(item string) bool {
	return strings.HasSuffix(item, "/")
}

// itemIcon returns the glyph for a walked path and, in nerdfont mode, its
// devicons hex color. Directories get a folder glyph and no color.
func itemIcon(item string, mode IconMode) (glyph, hexColor string) {
	dir := isDirItem(item)
	switch mode {
	case IconModeUnicode:
		if dir {
			return unicodeDirIcon, ""
		}
		if icon, ok := unicodeIcons[strings.ToLower(path.Ext(item))]; ok {
			return icon, ""
		}
		return unicodeDefaultIcon, ""
	case IconModeNerdFont:
		if dir {
			return nerdFontDirIcon, ""
		}
		style := devicons.IconForPath(item)
		return style.Icon, style.Color
	default:
		return "", ""
	}
}

// renderItemIcon returns the styled icon followed by a space, or "" when
// icons are off. Selected rows drop the icon color so the selection style
// wins.
func renderItemIcon(item string, selected bool, mode IconMode) string {
	glyph, hexColor := itemIcon(item, mode)
	if glyph == "" {
		return ""
	}
	switch {
	case selected:
		return glyph + " "
	case hexColor != "":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render(glyph) + " "
	case isDirItem(item):
		return activeTheme.PrimaryFg.Render(glyph) + " "
	default:
		return activeTheme.DimText.Render(glyph) + " "
	}
}
