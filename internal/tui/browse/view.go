// Package browse is the interactive resource browser: a stack of views over
// the identity-pool and SageMaker clients.
package browse

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// View is one screen in the navigation stack.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	Title() string
}

// ResizableView receives terminal size changes.
type ResizableView interface {
	SetSize(width, height int)
}

// FilterableView supports substring row filtering.
type FilterableView interface {
	AllRows() []table.Row
	SetRows(rows []table.Row)
}

// CopyableView exposes an identifier for the selected row.
type CopyableView interface {
	CopyID() string
}

// PushViewMsg pushes a new view onto the stack.
type PushViewMsg struct {
	View View
}

// PopViewMsg pops the current view.
type PopViewMsg struct{}

type errViewMsg struct {
	err error
}
