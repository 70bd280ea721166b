package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Notices shown after visitor actions.
const (
	noticeMessageSent = "박수와 메시지가 전송되었습니다! 감사합니다♡"
)

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Clap):
		return m.clap()
	case key.Matches(msg, m.keys.Write):
		cmd := m.focusForm(focusMessage)
		return m, cmd
	}
	return m, nil
}

// clap adds one to the persisted clap counter.
func (m Model) clap() (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	total, err := m.store.Clap(m.ctx)
	if err != nil {
		m.log.Error().Stack().Err(err).Msg("clap failed")
		m.fail(err)
		return m, nil
	}
	m.log.Debug().Int("total", total).Msg("clap")
	return m, nil
}

// sendMessage posts the clap message form. The name is kept for the next note.
func (m Model) sendMessage() (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	values := m.messageForm.Values()
	if _, err := m.store.SendMessage(m.ctx, values[0], values[1]); err != nil {
		m.fail(err)
		return m, nil
	}
	m.messageForm.SetValue(1, "")
	m.blurForm()
	m.notify(noticeMessageSent)
	return m, nil
}

func (m Model) renderHome() string {
	s := m.settings()
	styles := m.theme.Styles()
	full := maxInt(m.width, LayoutMinWidth)

	notice := m.window("NOTICE", "[?] [x]", styles.Text.Render(s.SystemMessage), full)

	leftW, rightW := full, full
	compact := m.width < LayoutCompactWidth
	if !compact {
		leftW = full * 7 / 12
		rightW = full - leftW
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSlideshow(leftW),
		m.renderBanners(leftW),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderRecent(rightW),
		m.renderClapBox(rightW),
	)

	var body string
	if compact {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, notice, body)
}

// renderSlideshow shows the current main image with position dots.
func (m Model) renderSlideshow(width int) string {
	styles := m.theme.Styles()
	s := m.settings()
	n := len(s.MainImages)
	if n == 0 {
		return m.window("MAIN VISUAL", "", styles.FaintText.Render("No images"), width)
	}
	idx := m.slide
	if idx < 0 || idx >= n {
		idx = 0
	}

	var dots strings.Builder
	for i := range n {
		if i == idx {
			dots.WriteString(styles.AccentText.Render("■"))
		} else {
			dots.WriteString(styles.FaintText.Render("□"))
		}
	}

	lines := []string{
		styles.Text.Render(truncate(s.MainImages[idx], width-6)),
		"",
		styles.MutedText.Render(fmt.Sprintf("%d/%d  ", idx+1, n)) + dots.String(),
	}
	if s.MainImageArtist != "" {
		lines = append(lines, styles.FaintText.Render("art by "+s.MainImageArtist))
	}
	return m.window("MAIN VISUAL", "", strings.Join(lines, "\n"), width)
}

func (m Model) renderBanners(width int) string {
	styles := m.theme.Styles()
	var lines []string
	if m.store != nil {
		for _, b := range m.store.Banners() {
			lines = append(lines, styles.AccentText.Render("["+b.Title+"]")+" "+
				styles.MutedText.Render(truncate(b.SiteURL, width-lipgloss.Width(b.Title)-8)))
		}
	}
	if len(lines) == 0 {
		lines = []string{styles.FaintText.Italic(true).Render("No neighbor banners yet...")}
	}
	return m.window("BANNERS / NEIGHBORS", "[+]", strings.Join(lines, "\n"), width)
}

func (m Model) renderRecent(width int) string {
	styles := m.theme.Styles()
	var lines []string
	if m.store != nil {
		for _, e := range m.store.RecentEntries(RecentUpdates) {
			date := styles.MutedText.Render("[" + shortDate(e.Date) + "]")
			lines = append(lines, "• "+date+" "+truncate(e.Title, width-lipgloss.Width(date)-8))
		}
	}
	if len(lines) == 0 {
		lines = []string{styles.FaintText.Italic(true).Render("No entries yet...")}
	}
	return m.window("--- NEW UPDATES ---", "", strings.Join(lines, "\n"), width)
}

// renderClapBox renders the clap button, total and message form.
func (m Model) renderClapBox(width int) string {
	styles := m.theme.Styles()
	total := 0
	if m.store != nil {
		total = m.store.TotalClaps()
	}
	lines := []string{
		styles.Text.Render("사이트 잘 보고 있다는 의미로 박수 한 번!"),
		styles.AccentText.Bold(true).Render("[c] ♡ 박수 보내기 ♡"),
		styles.Text.Render("총 박수: ") + styles.DangerText.Render(fmt.Sprint(total)),
		"",
		styles.Text.Render("관리인에게 응원 메시지를 남겨주세요♡"),
	}
	if m.focus == focusMessage {
		lines = append(lines, m.messageForm.View(), styles.FaintText.Render("ctrl+s: 메시지 보내기"))
	} else {
		lines = append(lines, styles.FaintText.Render("[m] 메시지 쓰기"))
	}
	return m.window("WEB CLAP", "", strings.Join(lines, "\n"), width)
}
