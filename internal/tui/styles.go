package tui

import (
	"github.com/MKhiriev/go-profile-keeper/internal/screen"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle       = lipgloss.NewStyle().Padding(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#a5b4fc"))
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	avatarStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6366f1"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	bannerStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	overlayStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func feedbackStyle(kind screen.FeedbackKind) lipgloss.Style {
	switch kind {
	case screen.FeedbackSuccess:
		return bannerStyle.Foreground(lipgloss.Color("#166534")).BorderForeground(lipgloss.Color("#86efac"))
	case screen.FeedbackError:
		return bannerStyle.Foreground(lipgloss.Color("#b91c1c")).BorderForeground(lipgloss.Color("#fca5a5"))
	default:
		return bannerStyle.Foreground(lipgloss.Color("#1e40af")).BorderForeground(lipgloss.Color("#93c5fd"))
	}
}
