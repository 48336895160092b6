package commands

import (
	"github.com/charmbracelet/lipgloss"

	"task-status-viewer/internal/domain"
)

// Tokyo Night palette, same hues as the web badges.
var (
	colorGreen  = lipgloss.Color("#9ece6a")
	colorRed    = lipgloss.Color("#f7768e")
	colorBlue   = lipgloss.Color("#7aa2f7")
	colorPurple = lipgloss.Color("#bb9af7")
	colorYellow = lipgloss.Color("#e0af68")
	colorMuted  = lipgloss.Color("#565f89")
)

var (
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	titleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

var badgeColors = map[domain.UpdateType]lipgloss.Color{
	domain.UpdateFeature:     colorGreen,
	domain.UpdateBugfix:      colorRed,
	domain.UpdateImprovement: colorBlue,
	domain.UpdateRelease:     colorPurple,
}

func typeBadge(t domain.UpdateType) string {
	info := t.Info()

	return lipgloss.NewStyle().
		Foreground(badgeColors[t]).
		Bold(true).
		Render(info.Icon + " " + info.Label)
}

func statusBadge(s domain.TaskStatus) string {
	color := colorYellow
	switch s {
	case domain.StatusSuccess:
		color = colorGreen
	case domain.StatusFailure:
		color = colorRed
	}

	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(s))
}
