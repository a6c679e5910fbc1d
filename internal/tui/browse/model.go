package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	awsclient "github.com/cloudshim/awslite/internal/aws"
	"github.com/cloudshim/awslite/internal/tui/theme"
)

type clearCopiedMsg struct{}

// Model is the root Bubble Tea model for the resource browser.
type Model struct {
	client    *awsclient.ServiceClient
	profile   string
	region    string
	accountID string
	stack     []View

	width  int
	height int

	filtering   bool
	filterInput textinput.Model
	filterQuery string

	copiedText string
	writeClip  func(string) error
}

// NewModel creates a new browser model.
func NewModel(client *awsclient.ServiceClient, profile, region, accountID string) Model {
	root := NewRootView(client)

	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 64

	return Model{
		client:      client,
		profile:     profile,
		region:      region,
		accountID:   accountID,
		stack:       []View{root},
		filterInput: ti,
		writeClip:   clipboard.WriteAll,
	}
}

func (m Model) Init() tea.Cmd {
	if len(m.stack) > 0 {
		return m.stack[len(m.stack)-1].Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearCopiedMsg:
		m.copiedText = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Chrome takes ~7 lines: header(2) + filter(1) + padding(2) + help(2)
		contentHeight := msg.Height - 7
		if contentHeight < 3 {
			contentHeight = 3
		}
		// Resize all views in the stack so back-navigation uses correct size
		for _, v := range m.stack {
			if rv, ok := v.(ResizableView); ok {
				rv.SetSize(msg.Width-6, contentHeight)
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilterMode(msg)
		}
		return m.updateNormalKey(msg)

	case PushViewMsg:
		m.stack = append(m.stack, msg.View)
		if m.width > 0 && m.height > 0 {
			contentHeight := m.height - 7
			if contentHeight < 3 {
				contentHeight = 3
			}
			if rv, ok := msg.View.(ResizableView); ok {
				rv.SetSize(m.width-6, contentHeight)
			}
		}
		return m, msg.View.Init()

	case PopViewMsg:
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
		}
		return m, nil
	}

	// Delegate to current view
	if len(m.stack) > 0 {
		current := m.stack[len(m.stack)-1]
		updated, cmd := current.Update(msg)
		m.stack[len(m.stack)-1] = updated
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	titles := make([]string, len(m.stack))
	for i, v := range m.stack {
		titles[i] = v.Title()
	}
	breadcrumb := renderBreadcrumb(titles)

	profileText := "default"
	if m.profile != "" {
		profileText = m.profile
	}
	regionText := "default"
	if m.region != "" {
		regionText = m.region
	}
	infoText := fmt.Sprintf("profile: %s  region: %s", profileText, regionText)
	if m.accountID != "" {
		infoText += fmt.Sprintf("  account: %s", m.accountID)
	}
	info := theme.ProfileStyle.Render(infoText)

	header := lipgloss.JoinHorizontal(lipgloss.Top, breadcrumb, "   ", info)

	filterBar := ""
	if m.filtering {
		filterBar = theme.FilterStyle.Render("/ ") + m.filterInput.View() + "\n"
	} else if m.filterQuery != "" {
		filterBar = theme.FilterStyle.Render(fmt.Sprintf("filter: %s", m.filterQuery)) + "\n"
	}

	content := ""
	if len(m.stack) > 0 {
		content = m.stack[len(m.stack)-1].View()
	}

	var help string
	if m.copiedText != "" {
		help = theme.CopiedStyle.Render(fmt.Sprintf("Copied: %s", m.copiedText))
	} else if m.filtering {
		help = theme.HelpStyle.Render("Enter to lock filter • Esc to clear")
	} else if len(m.stack) <= 1 {
		help = theme.HelpStyle.Render("Enter to select • q to quit")
	} else {
		help = theme.HelpStyle.Render("Esc back • r refresh • / filter • c copy • q quit")
	}

	return theme.DashboardStyle.Render(
		theme.HeaderStyle.Render(header) + "\n\n" +
			filterBar +
			content + "\n" +
			help,
	)
}

func renderBreadcrumb(titles []string) string {
	sep := theme.BreadcrumbSepStyle.Render(" › ")
	parts := make([]string, len(titles))
	for i, t := range titles {
		parts[i] = theme.BreadcrumbStyle.Render(t)
	}
	return strings.Join(parts, sep)
}

func (m Model) updateFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterQuery = ""
		m.filterInput.SetValue("")
		if fv, ok := m.currentFilterable(); ok {
			fv.SetRows(fv.AllRows())
		}
		return m, nil
	case "enter":
		m.filtering = false
		return m, nil
	default:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.filterQuery = m.filterInput.Value()
		if fv, ok := m.currentFilterable(); ok {
			m.applyFilter(fv)
		}
		return m, cmd
	}
}

func (m Model) updateNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
			return m, nil
		}
		if msg.String() == "esc" {
			return m, tea.Quit
		}
	case "/":
		if _, ok := m.currentFilterable(); ok {
			m.filtering = true
			m.filterInput.SetValue("")
			m.filterInput.Focus()
			return m, textinput.Blink
		}
	case "c":
		if cv, ok := m.currentCopyable(); ok {
			id := cv.CopyID()
			if id != "" {
				if err := m.writeClip(id); err != nil {
					// No clipboard available (e.g. headless); don't
					// claim the copy happened.
					return m, nil
				}
				m.copiedText = id
				return m, m.clearCopiedAfter()
			}
		}
	}

	// Delegate to current view for unhandled keys
	if len(m.stack) > 0 {
		current := m.stack[len(m.stack)-1]
		updated, cmd := current.Update(msg)
		m.stack[len(m.stack)-1] = updated
		return m, cmd
	}
	return m, nil
}

func (m Model) currentFilterable() (FilterableView, bool) {
	if len(m.stack) == 0 {
		return nil, false
	}
	fv, ok := m.stack[len(m.stack)-1].(FilterableView)
	return fv, ok
}

func (m Model) currentCopyable() (CopyableView, bool) {
	if len(m.stack) == 0 {
		return nil, false
	}
	cv, ok := m.stack[len(m.stack)-1].(CopyableView)
	return cv, ok
}

func (m Model) applyFilter(fv FilterableView) {
	if m.filterQuery == "" {
		fv.SetRows(fv.AllRows())
		return
	}
	query := strings.ToLower(m.filterQuery)
	var filtered []table.Row
	for _, row := range fv.AllRows() {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), query) {
				filtered = append(filtered, row)
				break
			}
		}
	}
	fv.SetRows(filtered)
}

func (m Model) clearCopiedAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}
