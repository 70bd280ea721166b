package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderAbout() string {
	styles := m.theme.Styles()
	s := m.settings()
	full := maxInt(m.width, LayoutMinWidth)

	label := styles.MutedText.Bold(true).Width(10)
	row := func(name, value string) string {
		return label.Render(name) + styles.Text.Render(value)
	}
	rows := []string{
		row("NAME", s.ProfileName),
		row("STATUS", s.ProfileStatus),
		row("IDENTITY", s.ProfileIdentity),
		row("LIKES", s.ProfileLikes),
	}
	if s.ProfileDislikes != "" {
		rows = append(rows, row("DISLIKES", s.ProfileDislikes))
	}
	if s.ProfileFavs != "" {
		rows = append(rows, row("FAVS", s.ProfileFavs))
	}
	rows = append(rows,
		label.Render("MOOD")+styles.AccentText.Bold(true).Italic(true).Render("Stable / Reflective"),
		row("SINCE", s.SinceDate),
		row("PHOTO", truncate(s.ProfileImageURL, full-16)),
	)

	bio := styles.Sidebar.Width(full - 6).Render(
		styles.MutedText.Bold(true).Render("DIGITAL BIO") + "\n" + s.ProfileBio)

	status := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.MutedText.Width((full-6)/2).Render("System Activity\nCPU: IDLE\nMEMORY: ARCHIVE_LOADED"),
		styles.MutedText.Render("Current Stream\nNow Playing: 2000s Mix (Lofi)"),
	)

	body := strings.Join([]string{strings.Join(rows, "\n"), "", bio, "", status}, "\n")
	return m.window("USER_PROFILE_DATA_v1.02", "ONLINE", body, full)
}
