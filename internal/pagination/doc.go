// Package pagination computes what a page-list control displays and decides
// which page changes it accepts.
//
// The package contains three pure collaborators used by a renderer that owns
// the authoritative page state:
//   - ComputeVisibleWindow: the ordered page tokens (numbers and ellipses)
//   - Navigate and its derived helpers: validation of page-change requests
//   - ComputeRange: the inclusive item range for "showing X-Y of Z" lines
//
// Every function takes the full state as parameters and returns a fresh value,
// so calls are safe to repeat, reorder, or run concurrently. Nothing here
// logs, blocks, or returns errors; out-of-range input is clamped and stray
// navigation requests are reported as no-ops.
package pagination
