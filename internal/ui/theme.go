package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pigcat/internal/site"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Desktop behind the windows
	Surface    string // Window body
	SurfaceAlt string // Insets and form fields
	Sidebar    string // Side panel (profile, recent updates)

	// Window chrome
	TitleBar     string
	TitleText    string
	MarqueeBg    string
	MarqueeText  string
	Border       string
	BorderFocus  string
	SelectionBg  string
	SelectionTxt string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	LED     string // Visitor counter digits
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		TitleBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.TitleBar)).
			Foreground(lipgloss.Color(t.TitleText)).
			Bold(true).
			Padding(0, 1),

		Marquee: lipgloss.NewStyle().
			Background(lipgloss.Color(t.MarqueeBg)).
			Foreground(lipgloss.Color(t.MarqueeText)).
			Bold(true),

		Window: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		Sidebar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Sidebar)).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1),

		LED: lipgloss.NewStyle().
			Background(lipgloss.Color("#000000")).
			Foreground(lipgloss.Color(t.LED)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionTxt)),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	TitleBar lipgloss.Style
	Marquee  lipgloss.Style
	Window   lipgloss.Style
	Sidebar  lipgloss.Style
	LED      lipgloss.Style
	Selected lipgloss.Style
	Footer   lipgloss.Style
}

// ThemeSite is the palette derived from the site's own color settings.
const ThemeSite = "Site"

var themeOrder = []string{ThemeSite, "Win98", "Terminal"}

// GetTheme returns a theme by name. The Site theme is built from s.
func GetTheme(name string, s site.Settings) Theme {
	switch CanonicalTheme(name) {
	case "Win98":
		return win98Theme()
	case "Terminal":
		return terminalTheme()
	}
	return siteTheme(s)
}

// CanonicalTheme maps a configured name onto a known theme, ignoring case.
// Unknown names select the Site theme.
func CanonicalTheme(name string) string {
	for _, known := range themeOrder {
		if strings.EqualFold(strings.TrimSpace(name), known) {
			return known
		}
	}
	return ThemeSite
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	current = CanonicalTheme(current)
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

// siteTheme maps the page colors onto terminal chrome: the gradient end
// becomes the desktop, the sidebar color tints side panels, and the marquee
// color doubles as the window title bar.
func siteTheme(s site.Settings) Theme {
	t := win98Theme()
	t.Name = ThemeSite
	t.Background = colorOr(s.BgEndColor, t.Background)
	t.SurfaceAlt = colorOr(s.BgStartColor, t.SurfaceAlt)
	t.Sidebar = colorOr(s.SidebarColor, t.Sidebar)
	t.MarqueeBg = colorOr(s.MarqueeBgColor, t.MarqueeBg)
	t.TitleBar = t.MarqueeBg
	return t
}

// colorOr accepts #rgb and #rrggbb values and falls back otherwise.
func colorOr(value, fallback string) string {
	v := strings.TrimSpace(value)
	if len(v) != 4 && len(v) != 7 || v[0] != '#' {
		return fallback
	}
	for _, r := range v[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fallback
		}
	}
	return v
}

func win98Theme() Theme {
	return Theme{
		Name: "Win98",

		Background: "#7296ff",
		Surface:    "#ffffff",
		SurfaceAlt: "#bed5ff",
		Sidebar:    "#eaddb4",

		TitleBar:     "#000080",
		TitleText:    "#ffffff",
		MarqueeBg:    "#000080",
		MarqueeText:  "#ffff00",
		Border:       "#808080",
		BorderFocus:  "#000080",
		SelectionBg:  "#000080",
		SelectionTxt: "#ffffff",

		Text:    "#000000",
		Muted:   "#555555",
		Faint:   "#888888",
		Accent:  "#0000cc",
		Success: "#008000",
		Warning: "#b8860b",
		Danger:  "#cc0000",
		LED:     "#ff3030",
	}
}

func terminalTheme() Theme {
	return Theme{
		Name: "Terminal",

		Background: "#000000",
		Surface:    "#0a0a0a",
		SurfaceAlt: "#1a1a1a",
		Sidebar:    "#33ff33",

		TitleBar:     "#33ff33",
		TitleText:    "#000000",
		MarqueeBg:    "#003300",
		MarqueeText:  "#33ff33",
		Border:       "#1f7a1f",
		BorderFocus:  "#33ff33",
		SelectionBg:  "#1f7a1f",
		SelectionTxt: "#000000",

		Text:    "#33ff33",
		Muted:   "#22aa22",
		Faint:   "#1f7a1f",
		Accent:  "#66ffff",
		Success: "#33ff33",
		Warning: "#ffff33",
		Danger:  "#ff3333",
		LED:     "#ff3030",
	}
}
