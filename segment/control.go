package segment

import "strconv"

// ControlKind identifies a terminal control operation.
type ControlKind uint8

const (
	ControlBell ControlKind = iota
	ControlCarriageReturn
	ControlHome
	ControlClear
	ControlShowCursor
	ControlHideCursor
	ControlEnableAltScreen
	ControlDisableAltScreen
	ControlCursorUp
	ControlCursorDown
	ControlCursorForward
	ControlCursorBackward
	ControlCursorToColumn
	ControlCursorMoveTo
	ControlEraseInLine
	ControlSetWindowTitle
)

// Control is one terminal control operation with its parameters.
// Coordinates are zero-based; Sequence converts to the one-based
// positions the escape codes use.
type Control struct {
	Kind  ControlKind
	X, Y  int
	Title string
}

// Bell rings the terminal bell.
func Bell() Control { return Control{Kind: ControlBell} }

// CarriageReturn moves the cursor to column zero.
func CarriageReturn() Control { return Control{Kind: ControlCarriageReturn} }

// Home moves the cursor to the top-left corner.
func Home() Control { return Control{Kind: ControlHome} }

// Clear erases the screen.
func Clear() Control { return Control{Kind: ControlClear} }

// ShowCursor makes the cursor visible.
func ShowCursor() Control { return Control{Kind: ControlShowCursor} }

// HideCursor makes the cursor invisible.
func HideCursor() Control { return Control{Kind: ControlHideCursor} }

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() Control { return Control{Kind: ControlEnableAltScreen} }

// DisableAltScreen switches back to the main screen buffer.
func DisableAltScreen() Control { return Control{Kind: ControlDisableAltScreen} }

// CursorUp moves the cursor up n rows.
func CursorUp(n int) Control { return Control{Kind: ControlCursorUp, X: n} }

// CursorDown moves the cursor down n rows.
func CursorDown(n int) Control { return Control{Kind: ControlCursorDown, X: n} }

// CursorForward moves the cursor right n columns.
func CursorForward(n int) Control { return Control{Kind: ControlCursorForward, X: n} }

// CursorBackward moves the cursor left n columns.
func CursorBackward(n int) Control { return Control{Kind: ControlCursorBackward, X: n} }

// CursorToColumn moves the cursor to a zero-based column.
func CursorToColumn(x int) Control { return Control{Kind: ControlCursorToColumn, X: x} }

// CursorMoveTo moves the cursor to a zero-based column and row.
func CursorMoveTo(x, y int) Control { return Control{Kind: ControlCursorMoveTo, X: x, Y: y} }

// EraseInLine erases part of the current line: 0 to the end, 1 to the
// start, 2 the whole line.
func EraseInLine(mode int) Control { return Control{Kind: ControlEraseInLine, X: mode} }

// SetWindowTitle sets the terminal window title.
func SetWindowTitle(title string) Control {
	return Control{Kind: ControlSetWindowTitle, Title: title}
}

// Sequence returns the escape sequence for c.
func (c Control) Sequence() string {
	switch c.Kind {
	case ControlBell:
		return "\a"
	case ControlCarriageReturn:
		return "\r"
	case ControlHome:
		return "\x1b[H"
	case ControlClear:
		return "\x1b[2J"
	case ControlShowCursor:
		return "\x1b[?25h"
	case ControlHideCursor:
		return "\x1b[?25l"
	case ControlEnableAltScreen:
		return "\x1b[?1049h"
	case ControlDisableAltScreen:
		return "\x1b[?1049l"
	case ControlCursorUp:
		return "\x1b[" + strconv.Itoa(c.X) + "A"
	case ControlCursorDown:
		return "\x1b[" + strconv.Itoa(c.X) + "B"
	case ControlCursorForward:
		return "\x1b[" + strconv.Itoa(c.X) + "C"
	case ControlCursorBackward:
		return "\x1b[" + strconv.Itoa(c.X) + "D"
	case ControlCursorToColumn:
		return "\x1b[" + strconv.Itoa(c.X+1) + "G"
	case ControlCursorMoveTo:
		return "\x1b[" + strconv.Itoa(c.Y+1) + ";" + strconv.Itoa(c.X+1) + "H"
	case ControlEraseInLine:
		return "\x1b[" + strconv.Itoa(c.X) + "K"
	case ControlSetWindowTitle:
		return "\x1b]0;" + c.Title + "\a"
	}
	return ""
}
