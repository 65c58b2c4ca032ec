package editor

import "github.com/kiloedit/kilo/internal/terminal"

// ProcessKeypress reads and dispatches one keystroke. It returns false
// when the editor should exit, and a non-nil error only for a fatal
// failure reading from the terminal.
func (e *Editor) ProcessKeypress() (bool, error) {
	key, err := e.term.ReadKey()
	if err != nil {
		return false, err
	}

	switch key {
	case '\r':
		e.InsertNewline()

	case terminal.CtrlKey('q'):
		if e.Dirty() && e.quitTimes > 0 {
			e.SetStatusMessage("HEY!! The file has unsaved changes. Press Ctrl+Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return true, nil
		}
		clearScreen()
		return false, nil

	case terminal.CtrlKey('s'):
		e.Save()

	case terminal.CtrlKey('f'):
		e.Find()

	case terminal.HomeKey:
		e.cx = 0
	case terminal.EndKey:
		if e.cy < len(e.rows) {
			e.cx = e.rows[e.cy].Len()
		}

	case terminal.Backspace, terminal.CtrlKey('h'), terminal.DelKey:
		if key == terminal.DelKey {
			e.MoveCursor(terminal.ArrowRight)
		}
		e.DeleteChar()

	case terminal.PageUp, terminal.PageDown:
		if key == terminal.PageUp {
			e.cy = e.rowOffset
		} else {
			e.cy = e.rowOffset + e.screenRows - 1
			if e.cy > len(e.rows) {
				e.cy = len(e.rows)
			}
		}
		for times := e.screenRows; times > 0; times-- {
			if key == terminal.PageUp {
				e.MoveCursor(terminal.ArrowUp)
			} else {
				e.MoveCursor(terminal.ArrowDown)
			}
		}

	case terminal.ArrowUp, terminal.ArrowDown, terminal.ArrowLeft, terminal.ArrowRight:
		e.MoveCursor(key)

	case terminal.CtrlKey('l'), terminal.Esc:
		// no-op: Ctrl-L would normally refresh the terminal, which this
		// editor already does every cycle.

	default:
		e.InsertChar(byte(key))
	}

	e.quitTimes = QuitTimes
	return true, nil
}

// MoveCursor updates the cursor in response to an arrow key, wrapping at
// row boundaries and snapping the column to the target row's length.
func (e *Editor) MoveCursor(key int) {
	hasRow := e.cy < len(e.rows)
	rowLen := 0
	if hasRow {
		rowLen = e.rows[e.cy].Len()
	}

	switch key {
	case terminal.ArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case terminal.ArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.rows[e.cy].Len()
		}
	case terminal.ArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	case terminal.ArrowRight:
		if hasRow && e.cx < rowLen {
			e.cx++
		} else if hasRow && e.cx == rowLen {
			e.cy++
			e.cx = 0
		}
	}

	newRowLen := 0
	if e.cy < len(e.rows) {
		newRowLen = e.rows[e.cy].Len()
	}
	if e.cx > newRowLen {
		e.cx = newRowLen
	}
}
