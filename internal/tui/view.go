package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-profile-keeper/internal/screen"
	"github.com/charmbracelet/lipgloss"
)

const strengthBarWidth = 20

// View implements [tea.Model].
func (m *rootModel) View() string {
	if m.showAbout {
		return appStyle.Render(overlayStyle.Render(renderBuildInfoWindow(m.buildInfo)))
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if fb := m.machine.Feedback(); !fb.Empty() {
		b.WriteString(feedbackStyle(fb.Kind).Render(fb.Text))
		b.WriteString("\n\n")
	}

	var body, hotKeys string
	switch m.machine.Tab() {
	case screen.TabLogin:
		body, hotKeys = m.viewLogin(), helpLine(keys.next, keys.submit, keys.tabSignup, keys.tabProfile)
	case screen.TabSignup:
		body, hotKeys = m.viewSignup(), helpLine(keys.next, keys.submit, keys.tabLogin, keys.tabProfile)
	case screen.TabProfile:
		body, hotKeys = m.viewProfile()
	}

	if m.machine.Busy() {
		body += "\n\n" + m.spinner.View() + " working..."
	}
	if m.status != "" {
		body += "\n\n" + mutedStyle.Render(m.status)
	}

	b.WriteString(renderPage(m.machine.Tab().String(), body, helpStyle.Render(hotKeys)))
	return appStyle.Render(b.String())
}

func (m *rootModel) viewTabs() string {
	tabs := []screen.Tab{screen.TabLogin, screen.TabSignup, screen.TabProfile}

	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := tabStyle
		if t == m.machine.Tab() {
			style = activeTabStyle
		}
		rendered = append(rendered, style.Render(t.String()))
	}

	return titleStyle.Render("Profile Keeper") + "   " + lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(rendered, "  "))
}

func (m *rootModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(formRow("E-mail", m.auth[fieldEmail].View()))
	b.WriteString(formRow("Password", m.auth[fieldPassword].View()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Don't have an account? ctrl+s to sign up."))
	return b.String()
}

func (m *rootModel) viewSignup() string {
	var b strings.Builder
	b.WriteString(formRow("Name", m.auth[fieldName].View()))
	b.WriteString(formRow("E-mail", m.auth[fieldEmail].View()))
	b.WriteString(formRow("Password", m.auth[fieldPassword].View()))
	return strings.TrimRight(b.String(), "\n")
}

func (m *rootModel) viewProfile() (string, string) {
	if !m.machine.Authenticated() {
		return mutedStyle.Render(screen.MsgLoginFirst), helpLine(keys.tabLogin, keys.tabSignup)
	}

	profile, ok := m.machine.Profile()
	if !ok {
		return mutedStyle.Render(screen.MsgNoProfileLoaded), helpLine(keys.logout, keys.tabLogin)
	}

	if m.machine.Editing() {
		var b strings.Builder
		b.WriteString(formRow("Name", m.drafts[draftName].View()))
		b.WriteString(formRow("Bio", m.drafts[draftBio].View()))
		b.WriteString("\n")
		b.WriteString(strengthBar(m.machine.Strength()))
		return b.String(), helpLine(keys.next, keys.submit, keys.cancel)
	}

	name := valueOr(profile.Name, screen.MsgNoName)
	bio := valueOr(profile.Bio, screen.MsgNoBio)

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		avatarStyle.Render(profile.Initial()),
		"  ",
		titleStyle.Render(name)+"\n"+mutedStyle.Render(profile.Email),
	)

	return header + "\n\n" + bio, helpLine(keys.edit, keys.copyEmail, keys.logout, keys.about)
}

func formRow(label, input string) string {
	return fmt.Sprintf("%-9s│ %s\n", label, input)
}

func strengthBar(score int) string {
	filled := score * strengthBarWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", strengthBarWidth-filled)
	return fmt.Sprintf("Profile strength [%s] %d%% %s", bar, score, screen.StrengthLabel(score))
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
