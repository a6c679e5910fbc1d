package browse

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloudshim/awslite/internal/tui/theme"
)

type detailDataMsg struct {
	viewID  uintptr
	content string
}

// DetailView renders an async-fetched key/value description of one resource.
type DetailView struct {
	title   string
	fetch   func(ctx context.Context) (string, error)
	content string
	spinner spinner.Model
	loading bool
	err     error
	id      string
}

// NewDetailView creates a detail view. id is what "c" copies.
func NewDetailView(title, id string, fetch func(ctx context.Context) (string, error)) *DetailView {
	return &DetailView{
		title:   title,
		id:      id,
		fetch:   fetch,
		spinner: theme.NewSpinner(),
		loading: true,
	}
}

func (v *DetailView) viewID() uintptr { return uintptr(unsafe.Pointer(v)) }

func (v *DetailView) Title() string { return v.title }

func (v *DetailView) Init() tea.Cmd {
	id := v.viewID()
	fetch := v.fetch
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		content, err := fetch(context.Background())
		if err != nil {
			return errViewMsg{err: err}
		}
		return detailDataMsg{viewID: id, content: content}
	})
}

func (v *DetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case detailDataMsg:
		if msg.viewID != v.viewID() {
			return v, nil
		}
		v.content = msg.content
		v.loading = false
		return v, nil
	case errViewMsg:
		v.err = msg.err
		v.loading = false
		return v, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *DetailView) View() string {
	if v.loading {
		return v.spinner.View() + " Loading details..."
	}
	if v.err != nil {
		return theme.ErrorStyle.Render(fmt.Sprintf("Error: %v", v.err))
	}
	return v.content
}

// CopyableView implementation
func (v *DetailView) CopyID() string { return v.id }
