package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pigcat/internal/site"
)

func (m Model) handleDreamKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Write) || key.Matches(msg, m.keys.Confirm) {
		cmd := m.focusForm(focusDream)
		return m, cmd
	}
	return m, nil
}

// analyzeDream starts one dream analysis. The previous result is cleared
// when the run begins; a second request while one is pending is ignored.
func (m Model) analyzeDream() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.dreamForm.Values()[0])
	if text == "" {
		m.fail(site.ErrDreamRequired)
		return m, nil
	}
	run, err := m.dreamTask.Begin()
	if err != nil {
		return m, nil
	}
	m.blurForm()
	ctx, gw := m.ctx, m.gateway
	return m, func() tea.Msg {
		return dreamMsg{run: run, text: gw.AnalyzeDream(ctx, text)}
	}
}

func (m Model) renderDream() string {
	styles := m.theme.Styles()
	full := maxInt(m.width, LayoutMinWidth)

	lines := []string{
		styles.MutedText.Render("어젯밤 꾼 꿈을 적어주세요. 인공지능이 그 심연의 의미를 해석해 드립니다."),
		"",
		m.dreamForm.View(),
		"",
	}

	switch {
	case m.dreamTask.Pending():
		lines = append(lines, styles.WarningText.Render("[ ANALYZING... ]"))
	case m.focus == focusDream:
		lines = append(lines, styles.AccentText.Render("[ ctrl+s: 꿈 해석하기 ]"))
	default:
		lines = append(lines, styles.AccentText.Render("[ m: 꿈 적기 ]"))
	}

	if result, ok := m.dreamTask.Result(); ok {
		lines = append(lines,
			"",
			styles.Text.Italic(true).Render("\" "+result+" \""),
			styles.FaintText.Render("─ FROM THE DIGITAL VOID"),
		)
	}

	lines = append(lines, "",
		styles.FaintText.Italic(true).Render("※ 인공지능의 분석은 참고용이며, 실제 운세나 의학적 소견과는 무관합니다."))

	return m.window("DREAM_ANALYZER_V1.0", "", strings.Join(lines, "\n"), full)
}
