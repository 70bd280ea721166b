package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pigcat/internal/logtail"
	"github.com/five82/pigcat/internal/site"
)

// Notices shown by the dashboard.
const (
	noticeEntrySaved  = "성공적으로 기록되었습니다!"
	noticeEntryFailed = "기록 중 오류가 발생했습니다."
	promptReset       = "모든 설정을 초기화할까요?"
)

// adminTab is a dashboard section.
type adminTab int

const (
	tabGeneral adminTab = iota
	tabProfile
	tabSlideshow
	tabClaps
	tabBanners
	tabDiagnostics
	adminTabCount
)

func (t adminTab) String() string {
	switch t {
	case tabProfile:
		return "Profile"
	case tabSlideshow:
		return "Slideshow"
	case tabClaps:
		return "Claps"
	case tabBanners:
		return "Banners"
	case tabDiagnostics:
		return "Diagnostics"
	default:
		return "General"
	}
}

// bindings lists the shortcuts a tab responds to.
func (t adminTab) bindings(k keyMap) []key.Binding {
	switch t {
	case tabGeneral:
		return []key.Binding{k.Edit, k.NextFlag, k.Add, k.Reset}
	case tabProfile:
		return []key.Binding{k.Edit, k.Reset}
	case tabSlideshow, tabBanners:
		return []key.Binding{k.Add, k.Delete}
	case tabClaps:
		return []key.Binding{k.Delete}
	case tabDiagnostics:
		return []key.Binding{k.Refresh}
	}
	return nil
}

// fields returns the settings edited on t, if any.
func (t adminTab) fields() []site.SettingField {
	switch t {
	case tabGeneral:
		return site.GeneralFields
	case tabProfile:
		return site.ProfileFields
	}
	return nil
}

func (m Model) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.gate.IsAdmin() {
		m.currentView = ViewHome
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PrevTab):
		m.adminTab = (m.adminTab + adminTabCount - 1) % adminTabCount
		m.adminSel = 0
		return m, m.tabEntered()
	case key.Matches(msg, m.keys.NextTab):
		m.adminTab = (m.adminTab + 1) % adminTabCount
		m.adminSel = 0
		return m, m.tabEntered()
	case key.Matches(msg, m.keys.Up):
		if m.adminSel > 0 {
			m.adminSel--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.adminSel < m.adminRows()-1 {
			m.adminSel++
		}
		return m, nil
	case key.Matches(msg, m.keys.Reset) && m.adminTab.fields() != nil:
		m.modal = confirmModal{prompt: promptReset, onYes: resetSettingsMsg{}}
		return m, nil
	}

	switch m.adminTab {
	case tabGeneral, tabProfile:
		return m.handleFieldsKey(msg)
	case tabSlideshow:
		switch {
		case key.Matches(msg, m.keys.Add):
			cmd := m.focusForm(focusImage)
			return m, cmd
		case key.Matches(msg, m.keys.Delete):
			return m.removeImage()
		}
	case tabClaps:
		if key.Matches(msg, m.keys.Delete) {
			return m.deleteMessage()
		}
	case tabBanners:
		switch {
		case key.Matches(msg, m.keys.Add):
			cmd := m.focusForm(focusBanner)
			return m, cmd
		case key.Matches(msg, m.keys.Delete):
			return m.deleteBanner()
		}
	case tabDiagnostics:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.refreshLogs()
		}
	}
	return m, nil
}

func (m Model) tabEntered() tea.Cmd {
	if m.adminTab == tabDiagnostics {
		return m.refreshLogs()
	}
	return nil
}

// adminRows returns the number of selectable rows on the current tab.
func (m Model) adminRows() int {
	if m.store == nil {
		return 0
	}
	switch m.adminTab {
	case tabGeneral, tabProfile:
		return len(m.adminTab.fields())
	case tabSlideshow:
		return len(m.store.Settings().MainImages)
	case tabClaps:
		return len(m.store.Messages())
	case tabBanners:
		return len(m.store.Banners())
	}
	return 0
}

func (m Model) selectedField() (site.SettingField, bool) {
	fields := m.adminTab.fields()
	if m.adminSel < 0 || m.adminSel >= len(fields) {
		return "", false
	}
	return fields[m.adminSel], true
}

func (m Model) handleFieldsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adminTab == tabGeneral && key.Matches(msg, m.keys.Add) {
		cmd := m.focusForm(focusAuthor)
		return m, cmd
	}
	field, ok := m.selectedField()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.NextFlag):
		return m.toggleField(field)
	case key.Matches(msg, m.keys.Edit):
		cmd := m.focusForm(focusField)
		m.fieldForm.inputs[0].Placeholder = field.Label()
		m.fieldForm.SetValue(0, m.store.Settings().Get(field))
		return m, cmd
	}
	return m, nil
}

// toggleField flips the boolean and enum settings in place.
func (m Model) toggleField(field site.SettingField) (tea.Model, tea.Cmd) {
	cur := m.store.Settings().Get(field)
	var next string
	switch field {
	case site.FieldAutoGradient:
		next = fmt.Sprint(cur != "true")
	case site.FieldFontFamily:
		next = site.FontGulim
		if cur == site.FontGulim {
			next = site.FontDotum
		}
	default:
		return m, nil
	}
	return m.updateSetting(field, next)
}

// saveField writes the edited field.
func (m Model) saveField() (tea.Model, tea.Cmd) {
	field, ok := m.selectedField()
	if !ok {
		m.blurForm()
		return m, nil
	}
	mm, cmd := m.updateSetting(field, m.fieldForm.Values()[0])
	next := mm.(Model)
	if next.modal == nil {
		next.blurForm()
	}
	return next, cmd
}

func (m Model) updateSetting(field site.SettingField, value string) (tea.Model, tea.Cmd) {
	if err := m.gate.Require(); err != nil {
		m.fail(err)
		return m, nil
	}
	if err := m.store.UpdateSetting(m.ctx, field, value); err != nil {
		m.log.Warn().Err(err).Str("field", string(field)).Msg("update setting failed")
		m.fail(err)
		return m, nil
	}
	m.log.Info().Str("field", string(field)).Msg("setting updated")
	m.applyTheme()
	return m, nil
}

func (m Model) resetSettings() (tea.Model, tea.Cmd) {
	if err := m.gate.Require(); err != nil {
		m.fail(err)
		return m, nil
	}
	if err := m.store.ResetSettings(m.ctx); err != nil {
		m.log.Error().Stack().Err(err).Msg("reset settings failed")
		m.fail(err)
		return m, nil
	}
	m.log.Info().Msg("settings reset to defaults")
	m.applyTheme()
	m.syncSlides()
	return m, nil
}

// composeEntry validates the draft and starts generation of the reflection
// and mood. Only the save control is disabled while it runs.
func (m Model) composeEntry() (tea.Model, tea.Cmd) {
	if err := m.gate.Require(); err != nil {
		m.fail(err)
		return m, nil
	}
	v := m.authorForm.Values()
	draft := site.Draft{Title: v[0], ImageURL: v[1], Content: v[2]}
	if err := draft.Validate(); err != nil {
		m.fail(err)
		return m, nil
	}
	run, err := m.composeTask.Begin()
	if err != nil {
		return m, nil
	}
	m.blurForm()
	ctx, gw, now := m.ctx, m.gateway, m.now
	return m, func() tea.Msg {
		entry, err := gw.Compose(ctx, draft, now())
		return composedMsg{run: run, entry: entry, err: err}
	}
}

// handleComposed stores a finished entry.
func (m Model) handleComposed(msg composedMsg) (tea.Model, tea.Cmd) {
	if !m.composeTask.Complete(msg.run, msg.entry) {
		return m, nil
	}
	defer m.composeTask.Reset()
	if msg.err != nil {
		m.fail(msg.err)
		return m, nil
	}
	if err := m.store.AddEntry(m.ctx, msg.entry); err != nil {
		m.log.Error().Stack().Err(err).Msg("save entry failed")
		m.modal = newErrorNotice(noticeEntryFailed)
		return m, nil
	}
	m.log.Info().Str("entry", msg.entry.ID).Str("mood", msg.entry.Mood).Msg("entry saved")
	m.authorForm.Reset()
	m.archiveSel = 0
	m.refreshArchive()
	m.notify(noticeEntrySaved)
	return m, nil
}

func (m Model) addImage() (tea.Model, tea.Cmd) {
	if err := m.gate.Require(); err != nil {
		m.fail(err)
		return m, nil
	}
	err := m.store.AddMainImage(m.ctx, m.imageForm.Values()[0])
	switch {
	case errors.Is(err, site.ErrImageRequired):
		return m, nil
	case err != nil:
		m.fail(err)
		return m, nil
	}
	m.imageForm.Reset()
	m.blurForm()
	m.syncSlides()
	return m, nil
}

func (m Model) removeImage() (tea.Model, tea.Cmd) {
	if err := m.store.RemoveMainImage(m.ctx, m.adminSel); err != nil {
		m.fail(err)
		return m, nil
	}
	m.syncSlides()
	if n := m.adminRows(); m.adminSel >= n {
		m.adminSel = maxInt(n-1, 0)
	}
	return m, nil
}

func (m Model) deleteMessage() (tea.Model, tea.Cmd) {
	msgs := m.store.Messages()
	if m.adminSel >= len(msgs) {
		return m, nil
	}
	if err := m.store.DeleteMessage(m.ctx, msgs[m.adminSel].ID); err != nil {
		m.fail(err)
		return m, nil
	}
	if n := m.adminRows(); m.adminSel >= n {
		m.adminSel = maxInt(n-1, 0)
	}
	return m, nil
}

func (m Model) addBanner() (tea.Model, tea.Cmd) {
	if err := m.gate.Require(); err != nil {
		m.fail(err)
		return m, nil
	}
	v := m.bannerForm.Values()
	if _, err := m.store.AddBanner(m.ctx, v[0], v[1], v[2]); err != nil {
		m.fail(err)
		return m, nil
	}
	m.bannerForm.Reset()
	m.blurForm()
	return m, nil
}

func (m Model) deleteBanner() (tea.Model, tea.Cmd) {
	banners := m.store.Banners()
	if m.adminSel >= len(banners) {
		return m, nil
	}
	if err := m.store.DeleteBanner(m.ctx, banners[m.adminSel].ID); err != nil {
		m.fail(err)
		return m, nil
	}
	if n := m.adminRows(); m.adminSel >= n {
		m.adminSel = maxInt(n-1, 0)
	}
	return m, nil
}

// refreshLogs loads recent log records for the Diagnostics tab.
func (m Model) refreshLogs() tea.Cmd {
	if m.logPath == "" {
		return nil
	}
	path := m.logPath
	return func() tea.Msg {
		entries, err := logtail.ReadEntries(path, DiagnosticLogLines, "info")
		return logsMsg{entries: entries, err: err}
	}
}

func (m Model) renderAdmin() string {
	styles := m.theme.Styles()
	full := maxInt(m.width, LayoutMinWidth)
	inner := full - 6

	var tabs []string
	for t := adminTab(0); t < adminTabCount; t++ {
		label := " " + t.String() + " "
		if t == tabClaps && m.store != nil {
			label = fmt.Sprintf(" Claps (%d) ", len(m.store.Messages()))
		}
		if t == m.adminTab {
			tabs = append(tabs, styles.Selected.Render(label))
		} else {
			tabs = append(tabs, styles.MutedText.Render(label))
		}
	}

	var body string
	switch m.adminTab {
	case tabGeneral:
		body = m.renderAuthor(inner) + "\n\n" + m.renderFields(inner, "🎨 Site Design")
	case tabProfile:
		body = m.renderFields(inner, "👤 Profile Editor")
	case tabSlideshow:
		body = m.renderImages(inner)
	case tabClaps:
		body = m.renderMessages(inner)
	case tabBanners:
		body = m.renderBannerAdmin(inner)
	case tabDiagnostics:
		body = m.renderDiagnostics(inner)
	}

	content := strings.Join(tabs, " ") + "\n" +
		styles.FaintText.Render(strings.Repeat("─", maxInt(inner, 1))) + "\n" + body
	return m.window("Owner Dashboard", "[x]", content, full)
}

// selectable renders rows with the dashboard selection highlighted.
func (m Model) selectable(rows []string, width int) string {
	styles := m.theme.Styles()
	out := make([]string, len(rows))
	for i, r := range rows {
		line := padRight(truncate(r, width), width)
		if i == m.adminSel && m.focus == focusNone {
			out[i] = styles.Selected.Render(line)
		} else {
			out[i] = styles.Text.Render(line)
		}
	}
	return strings.Join(out, "\n")
}

func (m Model) renderAuthor(width int) string {
	styles := m.theme.Styles()
	head := styles.DangerText.Render("✍️ Create New Entry")
	switch {
	case m.composeTask.Pending():
		return head + "\n" + m.authorForm.View() + "\n" + styles.WarningText.Render("[ SAVING... ]")
	case m.focus == focusAuthor:
		return head + "\n" + m.authorForm.View() + "\n" + styles.AccentText.Render("[ ctrl+s: SAVE TO ARCHIVE ]")
	}
	return head + "\n" + styles.FaintText.Render("[a] 새 글 쓰기")
}

func (m Model) renderFields(width int, title string) string {
	styles := m.theme.Styles()
	s := m.settings()
	labelW := 24
	var rows []string
	for _, f := range m.adminTab.fields() {
		value := strings.ReplaceAll(s.Get(f), "\n", " ⏎ ")
		rows = append(rows, padRight(f.Label(), labelW)+value)
	}
	out := styles.AccentText.Bold(true).Render(title) + "\n" + m.selectable(rows, width)
	if m.focus == focusField {
		if f, ok := m.selectedField(); ok {
			out += "\n\n" + styles.MutedText.Render("edit "+f.Label()) + "\n" + m.fieldForm.View()
		}
	}
	return out
}

func (m Model) renderImages(width int) string {
	styles := m.theme.Styles()
	images := m.settings().MainImages
	rows := make([]string, len(images))
	for i, img := range images {
		rows[i] = fmt.Sprintf("%2d. %s", i+1, img)
	}
	out := styles.Text.Bold(true).Render("🖼️ Slideshow Images") + "\n" + m.selectable(rows, width)
	if m.focus == focusImage {
		out += "\n\n" + styles.MutedText.Render("Add New Main Image URL") + "\n" + m.imageForm.View()
	}
	return out
}

func (m Model) renderMessages(width int) string {
	styles := m.theme.Styles()
	total := 0
	var msgs []site.ClapMessage
	if m.store != nil {
		total = m.store.TotalClaps()
		msgs = m.store.Messages()
	}
	head := styles.Text.Bold(true).Render("💌 Received Messages") + "   " +
		styles.DangerText.Render(fmt.Sprintf("Total Claps: %d", total))
	if len(msgs) == 0 {
		return head + "\n" + styles.FaintText.Italic(true).Render("No messages yet...")
	}
	rows := make([]string, len(msgs))
	for i, cm := range msgs {
		rows[i] = fmt.Sprintf("From: %s  (%s)  %s", cm.Name, cm.Date, strings.ReplaceAll(cm.Message, "\n", " "))
	}
	return head + "\n" + m.selectable(rows, width)
}

func (m Model) renderBannerAdmin(width int) string {
	styles := m.theme.Styles()
	var banners []site.Banner
	if m.store != nil {
		banners = m.store.Banners()
	}
	rows := make([]string, len(banners))
	for i, b := range banners {
		rows[i] = fmt.Sprintf("[%s] %s  %s", b.Title, b.SiteURL, b.ImageURL)
	}
	out := styles.Text.Bold(true).Render("🤝 Neighbors / Banners") + "\n" + m.selectable(rows, width)
	if m.focus == focusBanner {
		out += "\n\n" + styles.MutedText.Render("ADD BANNER (200x40)") + "\n" + m.bannerForm.View()
	}
	return out
}

func (m Model) renderDiagnostics(width int) string {
	styles := m.theme.Styles()
	var lines []string

	lines = append(lines, styles.Text.Bold(true).Render("Storage"))
	var diags int
	if m.store != nil {
		for _, d := range m.store.Diagnostics() {
			diags++
			lines = append(lines, styles.WarningText.Render(truncate(
				fmt.Sprintf("%s  %s reset to default: %v", d.At.Format("15:04:05"), d.Key, d.Err), width)))
		}
	}
	if diags == 0 {
		lines = append(lines, styles.SuccessText.Render("all records loaded"))
	}

	lines = append(lines, "", styles.Text.Bold(true).Render("Log"))
	switch {
	case m.logPath == "":
		lines = append(lines, styles.FaintText.Render("logging disabled"))
	case m.logErr != nil:
		lines = append(lines, styles.DangerText.Render(m.logErr.Error()))
	case len(m.logEntries) == 0:
		lines = append(lines, styles.FaintText.Render("no records in "+m.logPath))
	default:
		room := maxInt(m.height-chromeRows-len(lines)-8, 3)
		entries := m.logEntries
		if len(entries) > room {
			entries = entries[len(entries)-room:]
		}
		for _, e := range entries {
			lines = append(lines, m.levelStyle(e.Level).Render(truncate(e.String(), width)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) levelStyle(level string) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case "error", "fatal", "panic":
		return styles.DangerText
	case "warn":
		return styles.WarningText
	case "debug", "trace":
		return styles.FaintText
	}
	return styles.Text
}
