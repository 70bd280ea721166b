package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// noticeModal blocks input until any key is pressed.
type noticeModal struct {
	text   string
	danger bool
}

func newNotice(text string) noticeModal { return noticeModal{text: text} }

func newErrorNotice(text string) noticeModal { return noticeModal{text: text, danger: true} }

func (n noticeModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return n, nil, true
	}
	return n, nil, false
}

func (n noticeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	body := styles.Text.Render(n.text)
	if n.danger {
		body = styles.DangerText.Render(n.text)
	}
	content := body + "\n\n" + styles.FaintText.Render("press any key")
	return placeDialog(theme, "Message", content, width, height)
}

// confirmModal asks a yes/no question and emits onYes when accepted.
type confirmModal struct {
	prompt string
	onYes  tea.Msg
}

func (c confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case k.String() == "y", key.Matches(k, keys.Confirm):
		yes := c.onYes
		return c, func() tea.Msg { return yes }, true
	case k.String() == "n", key.Matches(k, keys.Escape):
		return c, nil, true
	}
	return c, nil, false
}

func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	content := styles.Text.Render(c.prompt) + "\n\n" +
		styles.AccentText.Render("y") + styles.MutedText.Render(" yes   ") +
		styles.AccentText.Render("n") + styles.MutedText.Render(" no")
	return placeDialog(theme, "Confirm", content, width, height)
}

// loginMsg carries the password typed into the login dialog.
type loginMsg struct{ password string }

// loginModal collects the owner password.
type loginModal struct {
	input textinput.Model
}

func newLoginModal() (loginModal, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.CharLimit = 64
	ti.Width = NoticeModalWidth - 10
	cmd := ti.Focus()
	return loginModal{input: ti}, cmd
}

func (l loginModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Escape):
			return l, nil, true
		case key.Matches(k, keys.Confirm):
			pw := l.input.Value()
			return l, func() tea.Msg { return loginMsg{password: pw} }, true
		}
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd, false
}

func (l loginModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	content := styles.Text.Render("관리자 비밀번호를 입력하세요") + "\n\n" +
		l.input.View() + "\n\n" +
		styles.FaintText.Render("enter: login   esc: cancel")
	return placeDialog(theme, "Owner Login", content, width, height)
}

// placeDialog draws a retro window centered on the screen.
func placeDialog(theme Theme, title, content string, width, height int) string {
	styles := theme.Styles()
	inner := NoticeModalWidth - 2
	bar := styles.TitleBar.Width(inner).Render(padRight(title, inner-6) + "[x]")
	body := lipgloss.NewStyle().
		Width(inner).
		Padding(1, 2).
		Render(content)
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Render(strings.Join([]string{bar, body}, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
}
