package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one row. selected is true for the highlighted row.
type RenderFunc[T any] func(item T, selected bool) string

// VirtualListModel shows a window of rows around the selected one.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// selected is the highlighted row index (0-based).
	selected int

	// visibleFrom and visibleTo bound the rendered rows; visibleTo is exclusive.
	visibleFrom int
	visibleTo   int

	height int
	width  int
}

// NewVirtualListModel creates a list over items with a viewport of height rows.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
		width:      width,
	}
	m.updateVisibleRange()
	return m
}

// Clone returns an independent copy. The item slice is shared; SetItems
// replaces it rather than writing into it.
func (m *VirtualListModel[T]) Clone() *VirtualListModel[T] {
	c := *m
	return &c
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update moves the selection on up/down/j/k and tracks the window size.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.SetSelected(m.selected - 1)
		case "down", "j":
			m.SetSelected(m.selected + 1)
		}
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// SetItems replaces the rows and moves the selection to the first one.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.selected = 0
	m.updateVisibleRange()
}

// SetSize changes the viewport dimensions.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = max(height, 1)
	m.updateVisibleRange()
}

// SetSelected moves the selection, capped to the available rows.
func (m *VirtualListModel[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}
	m.selected = min(max(index, 0), len(m.items)-1)
	m.updateVisibleRange()
}

// updateVisibleRange scrolls the viewport only as far as needed to keep the
// selected row inside it.
func (m *VirtualListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	from := m.visibleFrom
	if m.selected < from {
		from = m.selected
	}
	if m.selected >= from+m.height {
		from = m.selected - m.height + 1
	}
	from = min(from, max(len(m.items)-m.height, 0))

	m.visibleFrom = max(from, 0)
	m.visibleTo = min(m.visibleFrom+m.height, len(m.items))
}

// View renders the rows inside the viewport, one per line.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	lines := make([]string, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		lines = append(lines, m.renderFunc(m.items[i], i == m.selected))
	}
	return strings.Join(lines, "\n")
}

// ItemCount returns the number of rows.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the highlighted row index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// VisibleFrom returns the first rendered row index (inclusive).
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last rendered row index (exclusive).
func (m *VirtualListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// GetSelectedItem returns the highlighted row, or nil for an empty list.
func (m *VirtualListModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}
