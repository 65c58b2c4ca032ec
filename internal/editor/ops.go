package editor

// InsertChar inserts c at the cursor, creating an empty row first if the
// cursor rests on the virtual row past end-of-buffer.
func (e *Editor) InsertChar(c byte) {
	if e.cy == len(e.rows) {
		e.InsertRow(len(e.rows), nil)
	}
	e.RowInsertChar(e.cy, e.cx, c)
	e.cx++
}

// InsertNewline inserts a line break at the cursor, splitting the current
// row's content between it and a new row.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.InsertRow(e.cy, nil)
	} else {
		row := &e.rows[e.cy]
		suffix := row.Chars[e.cx:]
		e.InsertRow(e.cy+1, suffix)
		// InsertRow may have reallocated the row slice; re-fetch before
		// truncating the prefix.
		row = &e.rows[e.cy]
		row.Chars = row.Chars[:e.cx]
		e.rehighlightFrom(e.cy)
	}
	e.cy++
	e.cx = 0
}

// DeleteChar deletes the character to the left of the cursor, joining with
// the previous row when the cursor sits at column 0. No-op at (0,0) and
// past end-of-buffer.
func (e *Editor) DeleteChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	if e.cx > 0 {
		e.RowDeleteChar(e.cy, e.cx-1)
		e.cx--
		return
	}

	prevLen := e.rows[e.cy-1].Len()
	e.RowAppendString(e.cy-1, e.rows[e.cy].Chars)
	e.DeleteRow(e.cy)
	e.cy--
	e.cx = prevLen
}
