package views

import "github.com/charmbracelet/lipgloss"

var (
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("12")).
				Bold(true)

	AssistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	StatusDefaultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	StatusThinkingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11"))

	StatusExecutingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("14"))

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9")).
				Bold(true)

	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	SidebarTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("13")).
				Bold(true)

	WelcomeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Padding(1, 2)
)
