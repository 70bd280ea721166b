package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// openLogin shows the password dialog.
func (m Model) openLogin() (tea.Model, tea.Cmd) {
	lm, cmd := newLoginModal()
	m.modal = lm
	return m, cmd
}

// toggleLogin logs out an unlocked session or asks for the password.
func (m Model) toggleLogin() (tea.Model, tea.Cmd) {
	if m.gate.IsAdmin() {
		return m.logout()
	}
	return m.openLogin()
}

// handleLogin checks the password and opens the dashboard on success.
func (m Model) handleLogin(msg loginMsg) (tea.Model, tea.Cmd) {
	if err := m.gate.Login(msg.password); err != nil {
		m.log.Warn().Msg("owner login rejected")
		m.fail(err)
		return m, nil
	}
	m.log.Info().Msg("owner logged in")
	m.currentView = ViewAdmin
	m.adminTab = tabGeneral
	m.adminSel = 0
	return m, m.refreshLogs()
}

// logout drops the capability and leaves the dashboard.
func (m Model) logout() (tea.Model, tea.Cmd) {
	m.gate.Logout()
	m.blurForm()
	if m.currentView == ViewAdmin {
		m.currentView = ViewHome
	}
	m.log.Info().Msg("owner logged out")
	return m, nil
}
