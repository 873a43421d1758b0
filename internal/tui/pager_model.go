package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagenav/internal/pagination"
	listview "github.com/rshade/pagenav/internal/tui/list"
)

// Default terminal dimensions used until the first tea.WindowSizeMsg.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// chromeLines is the number of lines the pager draws besides the rows:
// title, blank, pager bar, range line, help, and the go-to input.
const chromeLines = 6

// ViewState is the pager's interaction mode.
type ViewState int

const (
	// ViewStateList shows the current page.
	ViewStateList ViewState = iota
	// ViewStateGoto shows the go-to-page input over the list.
	ViewStateGoto
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

// PageChangeRequestedMsg carries a page accepted by the controller back to
// the model that owns the page state.
type PageChangeRequestedMsg struct {
	Page int
}

// pageChangeCmd wraps an accepted page in a command.
func pageChangeCmd(page int) tea.Cmd {
	return func() tea.Msg {
		return PageChangeRequestedMsg{Page: page}
	}
}

// PagerOptions configures NewPagerModel.
type PagerOptions struct {
	Title           string
	PerPage         int
	MaxVisiblePages int
	Variant         Variant
	StartPage       int
}

// pageRow is one item with its 1-based position in the full result set.
type pageRow struct {
	Number int
	Text   string
}

// PagerModel is the Bubble Tea model for a paginated list. It owns the
// authoritative page state and recomputes its snapshot after every change.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type PagerModel struct {
	state ViewState
	title string
	items []string

	page       pagination.State
	perPage    int
	maxVisible int
	variant    Variant
	snapshot   pagination.Snapshot

	rows      *listview.VirtualListModel[pageRow]
	gotoInput textinput.Model
	notice    string

	width  int
	height int
}

// NewPagerModel creates a pager over items starting at opts.StartPage.
func NewPagerModel(items []string, opts PagerOptions) PagerModel {
	perPage := opts.PerPage
	if perPage < pagination.MinPerPage {
		perPage = pagination.DefaultPerPage
	}
	maxVisible := opts.MaxVisiblePages
	if maxVisible < pagination.MinMaxVisiblePages {
		maxVisible = pagination.DefaultMaxVisiblePages
	}
	variant := opts.Variant
	if variant == "" {
		variant = VariantDefault
	}

	totalPages := pagination.TotalPagesFor(len(items), perPage)
	m := PagerModel{
		state:      ViewStateList,
		title:      opts.Title,
		items:      items,
		page:       pagination.State{CurrentPage: pagination.ClampPage(opts.StartPage, totalPages), TotalPages: totalPages},
		perPage:    perPage,
		maxVisible: maxVisible,
		variant:    variant,
		gotoInput:  newGotoInput(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.rows = listview.NewVirtualListModel[pageRow](nil, m.rowsHeight(), m.width, renderPageRow)
	m.recompute()
	return m
}

func newGotoInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "page"
	ti.CharLimit = 9
	ti.Width = 10
	return ti
}

// Init implements tea.Model.
func (m PagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rows = m.rows.Clone()
		m.rows.SetSize(m.width, m.rowsHeight())
		return m, nil
	case PageChangeRequestedMsg:
		return m.applyPageChange(msg.Page), nil
	}

	switch m.state {
	case ViewStateGoto:
		return m.handleGotoInput(msg)
	case ViewStateList:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.handleListKeypress(keyMsg)
		}
		return m, nil
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m PagerModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyLeft, keyH, keyP, keyPgUp:
		return m.request(m.page.CurrentPage - 1)
	case keyRight, keyL, keyN, keyPgDown:
		return m.request(m.page.CurrentPage + 1)
	case keyHome, keyG:
		return m.request(1)
	case keyEnd, keyShiftG:
		return m.request(m.page.TotalPages)
	case keySlash:
		m.state = ViewStateGoto
		m.notice = ""
		m.gotoInput.SetValue("")
		m.gotoInput.Focus()
		return m, textinput.Blink
	default:
		m.rows = m.rows.Clone()
		m.rows.Update(keyMsg)
		return m, nil
	}
}

func (m PagerModel) handleGotoInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc:
			m.closeGoto()
			return m, nil
		case keyEnter:
			value := strings.TrimSpace(m.gotoInput.Value())
			m.closeGoto()
			page, err := strconv.Atoi(value)
			if err != nil {
				m.notice = fmt.Sprintf("%q is not a page number", value)
				return m, nil
			}
			return m.request(page)
		}
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m *PagerModel) closeGoto() {
	m.state = ViewStateList
	m.gotoInput.Blur()
}

// request asks the controller for page. An accepted page yields exactly one
// PageChangeRequestedMsg; anything else is silently ignored.
func (m PagerModel) request(page int) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	controller := pagination.NewController(func(newPage int) {
		cmd = pageChangeCmd(newPage)
	})
	controller.Request(page, m.page)
	return m, cmd
}

// applyPageChange updates the owned state and recomputes the display.
func (m PagerModel) applyPageChange(page int) PagerModel {
	m.page.CurrentPage = pagination.ClampPage(page, m.page.TotalPages)
	m.notice = ""
	m.recompute()
	return m
}

// recompute derives the snapshot and the visible rows from the page state.
func (m *PagerModel) recompute() {
	m.snapshot = pagination.NewSnapshot(m.page, m.maxVisible, m.perPage, pagination.Items(len(m.items)))

	offset := (m.snapshot.CurrentPage - 1) * m.perPage
	pageItems := pagination.PageSlice(m.items, m.snapshot.CurrentPage, m.perPage)
	rows := make([]pageRow, len(pageItems))
	for i, text := range pageItems {
		rows[i] = pageRow{Number: offset + i + 1, Text: text}
	}
	m.rows = m.rows.Clone()
	m.rows.SetItems(rows)
}

func (m PagerModel) rowsHeight() int {
	return max(m.height-chromeLines, 1)
}

func renderPageRow(row pageRow, selected bool) string {
	text := fmt.Sprintf("%4d  %s", row.Number, row.Text)
	if selected {
		return CursorStyle.Render("› " + text)
	}
	return RowStyle.Render("  " + text)
}

// View implements tea.Model.
func (m PagerModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	sections := make([]string, 0, chromeLines+1)
	if m.title != "" {
		sections = append(sections, LabelStyle.Bold(true).Render(m.title))
	}
	if m.rows.ItemCount() == 0 {
		sections = append(sections, SubtleStyle.Render("Nothing to show"))
	} else {
		sections = append(sections, m.rows.View())
	}
	sections = append(sections, "", RenderPager(m.snapshot, m.variant), RenderRangeLine(m.snapshot, m.variant))

	switch {
	case m.state == ViewStateGoto:
		sections = append(sections, LabelStyle.Render("Go to page: ")+m.gotoInput.View())
	case m.notice != "":
		sections = append(sections, InfoStyle.Render(m.notice))
	}
	sections = append(sections, RenderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Snapshot returns the display data for the current state.
func (m PagerModel) Snapshot() pagination.Snapshot {
	return m.snapshot
}

// CurrentPage returns the page being shown.
func (m PagerModel) CurrentPage() int {
	return m.page.CurrentPage
}

// TotalPages returns the number of pages.
func (m PagerModel) TotalPages() int {
	return m.page.TotalPages
}

// SelectedItem returns the highlighted item on the current page, if any.
func (m PagerModel) SelectedItem() (string, bool) {
	row := m.rows.GetSelectedItem()
	if row == nil {
		return "", false
	}
	return row.Text, true
}
