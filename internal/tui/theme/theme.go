package theme

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	Primary   = lipgloss.Color("#33A8FF")
	Secondary = lipgloss.Color("#163047")
	Muted     = lipgloss.Color("#6B7280")
	Success   = lipgloss.Color("#10B981")
	Warning   = lipgloss.Color("#F59E0B")
	Error     = lipgloss.Color("#EF4444")
)

// Shared styles
var (
	HeaderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Muted).
			Padding(0, 1)

	DashboardStyle = lipgloss.NewStyle().
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(1, 0, 0, 0)

	ProfileStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	FilterStyle = lipgloss.NewStyle().
			Foreground(Primary)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	BreadcrumbSepStyle = lipgloss.NewStyle().
				Foreground(Muted)

	SectionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// StatusColor maps training-job and endpoint statuses to theme colors.
func StatusColor(status string) lipgloss.TerminalColor {
	switch strings.ToLower(status) {
	case "completed", "inservice", "in-service", "active", "available":
		return Success
	case "failed", "outofservice", "error", "stopped":
		return Error
	case "inprogress", "in-progress", "creating", "updating",
		"systemupdating", "rollingback", "stopping", "deleting", "pending":
		return Warning
	default:
		return Muted
	}
}

// RenderStatus renders a status string with a colored bullet.
func RenderStatus(status string) string {
	c := StatusColor(status)
	bullet := lipgloss.NewStyle().Foreground(c).Render("●")
	return bullet + " " + status
}

// DefaultTableStyles returns styled table styles using theme colors.
func DefaultTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}

// NewSpinner returns a new spinner with the theme style.
func NewSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(Primary)),
	)
}
