package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/five82/pigcat/internal/site"
)

// archiveListRows caps the entry list above the reader pane.
const archiveListRows = 6

// markdownStyle is fixed; auto detection queries the terminal, which the
// running program already owns.
const markdownStyle = "dark"

func (m Model) handleArchiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.entries()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.archiveSel > 0 {
			m.archiveSel--
			m.refreshArchive()
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.archiveSel < len(entries)-1 {
			m.archiveSel++
			m.refreshArchive()
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if !m.gate.IsAdmin() || len(entries) == 0 {
			return m, nil
		}
		e := entries[m.archiveSel]
		m.modal = confirmModal{
			prompt: fmt.Sprintf("Delete this entry?\n\n%s", e.Title),
			onYes:  deleteEntryMsg{id: e.ID},
		}
		return m, nil
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.archiveVP, cmd = m.archiveVP.Update(msg)
		return m, cmd
	}
	return m, nil
}

// deleteEntry removes an entry after the owner confirmed it.
func (m Model) deleteEntry(id string) (tea.Model, tea.Cmd) {
	if err := m.gate.Require(); err != nil {
		m.fail(err)
		return m, nil
	}
	if err := m.store.DeleteEntry(m.ctx, id); err != nil {
		m.log.Error().Stack().Err(err).Str("entry", id).Msg("delete entry failed")
		m.fail(err)
		return m, nil
	}
	m.log.Info().Str("entry", id).Msg("entry deleted")
	if n := len(m.entries()); m.archiveSel >= n {
		m.archiveSel = maxInt(n-1, 0)
	}
	m.refreshArchive()
	return m, nil
}

func (m *Model) entries() []site.DiaryEntry {
	if m.store == nil {
		return nil
	}
	return m.store.Entries()
}

// refreshArchive re-renders the selected entry into the reader viewport.
func (m *Model) refreshArchive() {
	entries := m.entries()
	if len(entries) == 0 {
		m.archiveVP.SetContent("The vault is currently empty...")
		return
	}
	if m.archiveSel >= len(entries) {
		m.archiveSel = len(entries) - 1
	}
	md := entryMarkdown(entries[m.archiveSel])
	m.archiveVP.SetContent(m.renderMarkdown(md))
	m.archiveVP.GotoTop()
}

// renderMarkdown renders md with glamour, falling back to the raw text.
func (m *Model) renderMarkdown(md string) string {
	width := maxInt(m.archiveVP.Width-2, 20)
	if m.renderer == nil || m.rendererW != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(markdownStyle),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			m.log.Warn().Err(err).Msg("markdown renderer unavailable")
			return md
		}
		m.renderer = r
		m.rendererW = width
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// entryMarkdown lays out one diary entry.
func entryMarkdown(e site.DiaryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## TITLE: %s\n\n", e.Title)
	fmt.Fprintf(&b, "`#%s | %s`\n\n", shortID(e.ID), e.Date)
	if e.ImageURL != "" {
		fmt.Fprintf(&b, "🖼 %s\n\n", e.ImageURL)
	}
	b.WriteString(strings.TrimSpace(e.Content))
	b.WriteString("\n\n")
	if e.AIReflection != "" {
		fmt.Fprintf(&b, "> \"%s\"\n\n", e.AIReflection)
	}
	mood := e.Mood
	if mood == "" {
		mood = "Standard"
	}
	fmt.Fprintf(&b, "---\n\nMood: %s", mood)
	if len(e.Tags) > 0 {
		fmt.Fprintf(&b, " · Tags: %s", strings.Join(e.Tags, ", "))
	}
	b.WriteString("\n")
	return b.String()
}

// shortID returns the last four characters of id.
func shortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

func (m Model) renderArchive() string {
	styles := m.theme.Styles()
	entries := m.entries()
	full := maxInt(m.width, LayoutMinWidth)

	var list []string
	start := 0
	if m.archiveSel >= archiveListRows {
		start = m.archiveSel - archiveListRows + 1
	}
	for i := start; i < len(entries) && i < start+archiveListRows; i++ {
		e := entries[i]
		line := fmt.Sprintf(" %s  %s %s", e.Date, e.Mood, e.Title)
		line = padRight(truncate(line, full-6), full-6)
		if i == m.archiveSel {
			list = append(list, styles.Selected.Render(line))
		} else {
			list = append(list, styles.Text.Render(line))
		}
	}
	if len(list) == 0 {
		list = []string{styles.FaintText.Italic(true).Render("The vault is currently empty...")}
	}

	body := strings.Join(list, "\n") + "\n" +
		styles.FaintText.Render(strings.Repeat("─", maxInt(full-6, 1))) + "\n" +
		m.archiveVP.View()
	right := fmt.Sprintf("%d LOGS FOUND", len(entries))
	return m.window("DIGITAL_VAULT / DIARY & GALLERY", right, body, full)
}
