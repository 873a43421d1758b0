// Package listview renders the rows of a single page inside a fixed-height
// viewport for Bubble Tea applications.
//
// A page may hold more rows than the terminal can show. The list keeps the
// selected row on screen while the user moves with up/down (or j/k) and
// renders only the rows inside the viewport. The surrounding page-list
// control swaps the rows with SetItems whenever the page changes.
package listview
