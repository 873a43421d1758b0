package pagination

// State is the page position owned by the renderer.
type State struct {
	CurrentPage int `json:"current_page" yaml:"current_page"`
	TotalPages  int `json:"total_pages"  yaml:"total_pages"`
}

// Navigate decides whether a request to show requestedPage changes anything.
// It returns the accepted page and true, or 0 and false for a no-op: a page
// outside [1, totalPages] or the page already shown. A no-op is not an error;
// disabled controls and stray clicks land here.
func Navigate(requestedPage, currentPage, totalPages int) (int, bool) {
	if requestedPage < 1 || requestedPage > totalPages || requestedPage == currentPage {
		return 0, false
	}
	return requestedPage, true
}

// GoToNext requests the page after currentPage.
func GoToNext(currentPage, totalPages int) (int, bool) {
	return Navigate(currentPage+1, currentPage, totalPages)
}

// GoToPrevious requests the page before currentPage.
func GoToPrevious(currentPage, totalPages int) (int, bool) {
	return Navigate(currentPage-1, currentPage, totalPages)
}

// GoToFirst requests page 1.
func GoToFirst(currentPage, totalPages int) (int, bool) {
	return Navigate(1, currentPage, totalPages)
}

// GoToLast requests the final page.
func GoToLast(currentPage, totalPages int) (int, bool) {
	return Navigate(totalPages, currentPage, totalPages)
}

// IsFirstPage reports whether currentPage is page 1.
func IsFirstPage(currentPage int) bool {
	return currentPage == 1
}

// IsLastPage reports whether currentPage is the final page.
func IsLastPage(currentPage, totalPages int) bool {
	return currentPage == totalPages
}

// PageChangeFunc receives an accepted page.
type PageChangeFunc func(newPage int)

// Controller forwards accepted navigation requests to the state owner.
// It never changes the state it is given.
type Controller struct {
	OnPageChange PageChangeFunc
}

// NewController returns a Controller that reports accepted pages to onChange.
func NewController(onChange PageChangeFunc) Controller {
	return Controller{OnPageChange: onChange}
}

// Request validates requestedPage against state. On acceptance OnPageChange is
// called exactly once and Request returns true; on a no-op nothing is called.
func (c Controller) Request(requestedPage int, state State) bool {
	page, ok := Navigate(requestedPage, state.CurrentPage, state.TotalPages)
	if !ok {
		return false
	}
	if c.OnPageChange != nil {
		c.OnPageChange(page)
	}
	return true
}

// Next is Request for the following page.
func (c Controller) Next(state State) bool {
	return c.Request(state.CurrentPage+1, state)
}

// Previous is Request for the preceding page.
func (c Controller) Previous(state State) bool {
	return c.Request(state.CurrentPage-1, state)
}

// First is Request for page 1.
func (c Controller) First(state State) bool {
	return c.Request(1, state)
}

// Last is Request for the final page.
func (c Controller) Last(state State) bool {
	return c.Request(state.TotalPages, state)
}
