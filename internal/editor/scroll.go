package editor

// Scroll recomputes the rendered cursor column and adjusts the viewport
// offsets so the cursor stays visible.
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = CxToRx(e.rows[e.cy].Chars, e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}
