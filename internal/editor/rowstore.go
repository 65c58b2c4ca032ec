package editor

import (
	"golang.org/x/exp/slices"

	"github.com/kiloedit/kilo/internal/highlight"
)

// InsertRow inserts a new row containing text at position at, shifting
// subsequent rows down. Out-of-range positions are ignored.
func (e *Editor) InsertRow(at int, text []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	content := make([]byte, len(text))
	copy(content, text)
	e.rows = slices.Insert(e.rows, at, Row{Chars: content})
	e.dirty++
	e.rehighlightFrom(at)
}

// DeleteRow removes the row at position at, shifting subsequent rows up.
// Out-of-range positions are ignored.
func (e *Editor) DeleteRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = slices.Delete(e.rows, at, at+1)
	e.dirty++
	if at < len(e.rows) {
		e.rehighlightFrom(at)
	}
}

// RowInsertChar inserts c into row at at position at, clamping at to the
// row's length when out of range.
func (e *Editor) RowInsertChar(row int, at int, c byte) {
	r := &e.rows[row]
	if at < 0 || at > r.Len() {
		at = r.Len()
	}
	r.Chars = slices.Insert(r.Chars, at, c)
	e.dirty++
	e.rehighlightFrom(row)
}

// RowAppendString appends s to the end of row's content.
func (e *Editor) RowAppendString(row int, s []byte) {
	r := &e.rows[row]
	r.Chars = append(r.Chars, s...)
	e.dirty++
	e.rehighlightFrom(row)
}

// RowDeleteChar removes the byte at position at from row. Out-of-range
// positions are ignored.
func (e *Editor) RowDeleteChar(row int, at int) {
	r := &e.rows[row]
	if at < 0 || at >= r.Len() {
		return
	}
	r.Chars = slices.Delete(r.Chars, at, at+1)
	e.dirty++
	e.rehighlightFrom(row)
}

// rehighlightFrom rebuilds the render and highlight of row start, then
// cascades to subsequent rows as long as each one's open-comment state
// changes from what it was before — the mechanism by which opening or
// closing a multi-line comment propagates down the file. Implemented as a
// loop rather than recursion, per the self-recursive-highlighter design
// note, so it cannot grow the stack on a large file.
func (e *Editor) rehighlightFrom(start int) {
	for i := start; i < len(e.rows); i++ {
		row := &e.rows[i]
		row.Render = renderRow(row.Chars)

		prevOpen := false
		if i > 0 {
			prevOpen = e.rows[i-1].HlOpenComment
		}

		hl, open := highlight.Row(row.Render, prevOpen, e.syntax)
		row.Hl = hl

		changed := i == start || row.HlOpenComment != open
		row.HlOpenComment = open
		if !changed {
			break
		}
	}
}
