package tui

// Key names as reported by tea.KeyMsg.String().
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keyEsc    = "esc"
	keySlash  = "/"
	keyLeft   = "left"
	keyRight  = "right"
	keyH      = "h"
	keyL      = "l"
	keyP      = "p"
	keyN      = "n"
	keyPgUp   = "pgup"
	keyPgDown = "pgdown"
	keyHome   = "home"
	keyEnd    = "end"
	keyG      = "g"
	keyShiftG = "G"
)
