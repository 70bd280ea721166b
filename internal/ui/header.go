package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var navViews = []View{ViewHome, ViewArchive, ViewAbout, ViewDream, ViewAdmin}

// renderMain renders the page chrome around the current view.
func (m Model) renderMain() string {
	parts := []string{
		m.renderHeader(),
		m.renderNav(),
		m.renderContent(),
		m.renderCommandBar(),
	}
	return strings.Join(parts, "\n")
}

// renderHeader renders the site title, marquee and visitor counter.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	s := m.settings()

	title := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Bold(true).
		Render(strings.ToUpper(s.SiteTitle))

	marquee := styles.Marquee.Render(marqueeFrame(s.MarqueeText, m.width, m.marquee))

	var digits strings.Builder
	for _, d := range m.visits.Digits() {
		digits.WriteString(styles.LED.Render(d))
	}
	counter := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(styles.Text.Bold(true).Render("Today ") + digits.String() + styles.Text.Bold(true).Render(" !"))

	return strings.Join([]string{title, marquee, counter}, "\n")
}

// renderNav renders the page tabs.
func (m Model) renderNav() string {
	styles := m.theme.Styles()
	items := make([]string, 0, len(navViews))
	for i, v := range navViews {
		label := " " + string(rune('1'+i)) + " " + v.String() + " "
		if v == ViewAdmin && !m.gate.IsAdmin() {
			label = " " + string(rune('1'+i)) + " Login "
		}
		if v == m.currentView {
			items = append(items, styles.Selected.Render(label))
		} else {
			items = append(items, styles.MutedText.Render(label))
		}
	}
	return strings.Join(items, styles.FaintText.Render("|"))
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewArchive:
		return m.renderArchive()
	case ViewAbout:
		return m.renderAbout()
	case ViewDream:
		return m.renderDream()
	case ViewAdmin:
		return m.renderAdmin()
	default:
		return m.renderHome()
	}
}

// renderCommandBar lists the shortcuts that apply to the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	k := m.keys

	var bindings []key.Binding
	switch {
	case m.focus != focusNone:
		bindings = []key.Binding{k.NextField, k.Submit, k.Escape}
	case m.currentView == ViewHome:
		bindings = []key.Binding{k.Clap, k.Write}
	case m.currentView == ViewArchive:
		bindings = []key.Binding{k.Up, k.Down, k.PageDown}
		if m.gate.IsAdmin() {
			bindings = append(bindings, k.Delete)
		}
	case m.currentView == ViewDream:
		bindings = []key.Binding{k.Write}
	case m.currentView == ViewAdmin:
		bindings = append([]key.Binding{k.PrevTab, k.NextTab}, m.adminTab.bindings(k)...)
	}
	if m.focus == focusNone {
		bindings = append(bindings, k.Login, k.CycleTheme, k.Help, k.Quit)
	}

	segments := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		segments = append(segments, shortcut(styles, b))
	}
	segments = append(segments, styles.FaintText.Render(m.theme.Name))
	return styles.Footer.Width(m.width).Render(strings.Join(segments, "  "))
}

// window draws a titled retro window of the given outer width.
func (m Model) window(title, right, body string, width int) string {
	styles := m.theme.Styles()
	inner := maxInt(width-2, 10)
	bar := styles.TitleBar.Width(inner).Render(
		padRight(truncate(title, inner-len(right)-3), inner-2-lipgloss.Width(right)) + right)
	content := lipgloss.NewStyle().Width(inner).Padding(0, 1).Render(body)
	return styles.Window.Render(bar + "\n" + content)
}
