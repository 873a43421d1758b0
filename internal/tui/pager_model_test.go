package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/pagination"
)

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i+1)
	}
	return items
}

func newTestPager(n int) PagerModel {
	return NewPagerModel(makeItems(n), PagerOptions{
		Title:           "Results",
		PerPage:         10,
		MaxVisiblePages: 5,
		Variant:         VariantMinimal,
	})
}

func update(t *testing.T, m PagerModel, msg tea.Msg) (PagerModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	pager, ok := updated.(PagerModel)
	require.True(t, ok)
	return pager, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// requestedPage runs cmd and returns the page it asks for.
func requestedPage(t *testing.T, cmd tea.Cmd) int {
	t.Helper()
	require.NotNil(t, cmd, "expected a page change request")
	msg, ok := cmd().(PageChangeRequestedMsg)
	require.True(t, ok)
	return msg.Page
}

// navigate sends key and applies the resulting page change, if any.
func navigate(t *testing.T, m PagerModel, key tea.KeyMsg) PagerModel {
	t.Helper()
	m, cmd := update(t, m, key)
	if cmd == nil {
		return m
	}
	m, _ = update(t, m, PageChangeRequestedMsg{Page: requestedPage(t, cmd)})
	return m
}

func TestNewPagerModel(t *testing.T) {
	m := newTestPager(95)

	assert.Equal(t, ViewStateList, m.state)
	assert.Equal(t, 1, m.CurrentPage())
	assert.Equal(t, 10, m.TotalPages())
	assert.Equal(t, pagination.Range{StartItem: 1, EndItem: 10}, m.Snapshot().Range)
	assert.Equal(t, []int{1, 2, 3, 4, 10}, pagination.Pages(m.Snapshot().Tokens))
	assert.Nil(t, m.Init())

	item, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "item 1", item)
}

func TestNewPagerModel_Defaults(t *testing.T) {
	m := NewPagerModel(makeItems(30), PagerOptions{StartPage: 99})

	assert.Equal(t, pagination.DefaultPerPage, m.perPage)
	assert.Equal(t, pagination.DefaultMaxVisiblePages, m.maxVisible)
	assert.Equal(t, VariantDefault, m.variant)
	assert.Equal(t, 3, m.CurrentPage(), "start page is clamped to the last page")
}

func TestPagerModel_NextRequestsOnePageChange(t *testing.T) {
	m := newTestPager(95)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, requestedPage(t, cmd))
	assert.Equal(t, 1, m.CurrentPage(), "state changes only when the owner applies the request")

	m, cmd = update(t, m, PageChangeRequestedMsg{Page: 2})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.CurrentPage())
	assert.Equal(t, pagination.Range{StartItem: 11, EndItem: 20}, m.Snapshot().Range)

	item, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "item 11", item)
}

func TestPagerModel_StrayRequestsAreIgnored(t *testing.T) {
	m := newTestPager(95)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyLeft},
		runes("h"),
		{Type: tea.KeyHome},
		runes("g"),
	} {
		var cmd tea.Cmd
		m, cmd = update(t, m, key)
		assert.Nil(t, cmd, "key %q on the first page", key.String())
		assert.Equal(t, 1, m.CurrentPage())
	}

	m = navigate(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, 10, m.CurrentPage())

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRight},
		runes("l"),
		runes("G"),
		{Type: tea.KeyPgDown},
	} {
		var cmd tea.Cmd
		m, cmd = update(t, m, key)
		assert.Nil(t, cmd, "key %q on the last page", key.String())
	}
}

func TestPagerModel_KeyBindings(t *testing.T) {
	tests := []struct {
		name  string
		start int
		key   tea.KeyMsg
		want  int
	}{
		{name: "left", start: 5, key: tea.KeyMsg{Type: tea.KeyLeft}, want: 4},
		{name: "p", start: 5, key: runes("p"), want: 4},
		{name: "pgup", start: 5, key: tea.KeyMsg{Type: tea.KeyPgUp}, want: 4},
		{name: "right", start: 5, key: tea.KeyMsg{Type: tea.KeyRight}, want: 6},
		{name: "n", start: 5, key: runes("n"), want: 6},
		{name: "home", start: 5, key: tea.KeyMsg{Type: tea.KeyHome}, want: 1},
		{name: "G", start: 5, key: runes("G"), want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPagerModel(makeItems(100), PagerOptions{PerPage: 10, MaxVisiblePages: 5, StartPage: tt.start})
			_, cmd := update(t, m, tt.key)
			assert.Equal(t, tt.want, requestedPage(t, cmd))
		})
	}
}

func TestPagerModel_RowKeysMoveSelection(t *testing.T) {
	m := newTestPager(95)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	m, _ = update(t, m, runes("j"))

	item, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "item 3", item)
	assert.Equal(t, 1, m.CurrentPage())
}

func TestPagerModel_GotoPage(t *testing.T) {
	m := newTestPager(95)

	m, cmd := update(t, m, runes("/"))
	assert.NotNil(t, cmd)
	assert.Equal(t, ViewStateGoto, m.state)

	m, _ = update(t, m, runes("7"))
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewStateList, m.state)
	assert.Equal(t, 7, requestedPage(t, cmd))
}

func TestPagerModel_GotoPageRejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantNotice string
	}{
		{name: "not a number", input: "abc", wantNotice: `"abc" is not a page number`},
		{name: "beyond last page", input: "99"},
		{name: "current page", input: "1"},
		{name: "zero", input: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestPager(95)
			m, _ = update(t, m, runes("/"))
			m, _ = update(t, m, runes(tt.input))
			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			assert.Nil(t, cmd)
			assert.Equal(t, 1, m.CurrentPage())
			assert.Equal(t, tt.wantNotice, m.notice)
		})
	}
}

func TestPagerModel_GotoPageEscape(t *testing.T) {
	m := newTestPager(95)
	m, _ = update(t, m, runes("/"))
	m, _ = update(t, m, runes("4"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Nil(t, cmd)
	assert.Equal(t, ViewStateList, m.state)
	assert.Equal(t, 1, m.CurrentPage())
}

func TestPagerModel_Quit(t *testing.T) {
	m := newTestPager(95)
	m, cmd := update(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, ViewStateQuitting, m.state)
	assert.Empty(t, m.View())

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
}

func TestPagerModel_WindowSize(t *testing.T) {
	m := newTestPager(95)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 10})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 4, m.rows.Height())
}

func TestPagerModel_View(t *testing.T) {
	m := newTestPager(95)
	m = navigate(t, m, tea.KeyMsg{Type: tea.KeyEnd})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Results")
	assert.Contains(t, view, "91  item 91")
	assert.Contains(t, view, "95  item 95")
	assert.Contains(t, view, "1 … 7 8 9 [10]")
	assert.Contains(t, view, "Showing 91-95 of 95")
	assert.Contains(t, view, "q quit")

	m, _ = update(t, m, runes("/"))
	assert.Contains(t, ansi.Strip(m.View()), "Go to page:")
}

func TestPagerModel_Empty(t *testing.T) {
	m := newTestPager(0)

	assert.Equal(t, 1, m.TotalPages())
	_, ok := m.SelectedItem()
	assert.False(t, ok)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Nothing to show")
	assert.Contains(t, view, "No results")

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
}

func TestPagerModel_UpdateLeavesPreviousModelIntact(t *testing.T) {
	m0 := newTestPager(30)

	m1, _ := update(t, m0, PageChangeRequestedMsg{Page: 2})
	m2, _ := update(t, m0, tea.KeyMsg{Type: tea.KeyDown})
	_, _ = update(t, m0, tea.WindowSizeMsg{Width: 40, Height: 8})

	first, ok := m0.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "item 1", first)
	assert.Equal(t, 1, m0.CurrentPage())
	assert.Equal(t, 1, m0.Snapshot().Range.StartItem)
	assert.Contains(t, ansi.Strip(m0.View()), "item 10")

	second, ok := m1.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "item 11", second)
	assert.Equal(t, 2, m1.CurrentPage())

	moved, ok := m2.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "item 2", moved)
}
