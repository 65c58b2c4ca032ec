package editor

import (
	"bytes"

	"github.com/kiloedit/kilo/internal/highlight"
	"github.com/kiloedit/kilo/internal/terminal"
)

// Find enters incremental-search mode: the cursor and viewport are
// recorded on entry and restored if the search is cancelled.
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedColOff, savedRowOff := e.colOffset, e.rowOffset

	e.find = findState{lastMatch: -1, direction: 1}

	_, err := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)
	if err != nil {
		e.cx, e.cy = savedCx, savedCy
		e.colOffset, e.rowOffset = savedColOff, savedRowOff
	}

	e.find = findState{}
}

// findCallback drives one step of incremental search: it restores any
// highlight overlaid by the previous match, interprets arrow keys as
// direction changes, and walks the row store from the last match (or from
// the top, on a fresh query) looking for query in each row's render.
func (e *Editor) findCallback(query string, key int) {
	fs := &e.find

	if fs.hasSavedHl {
		e.rows[fs.savedRow].Hl = fs.savedHl
		fs.hasSavedHl = false
		fs.savedHl = nil
	}

	switch key {
	case '\r', terminal.Esc:
		fs.lastMatch = -1
		fs.direction = 1
		return
	case terminal.ArrowRight, terminal.ArrowDown:
		fs.direction = 1
	case terminal.ArrowLeft, terminal.ArrowUp:
		fs.direction = -1
	default:
		fs.lastMatch = -1
		fs.direction = 1
	}

	if fs.lastMatch == -1 {
		fs.direction = 1
	}
	if query == "" {
		return
	}

	current := fs.lastMatch
	for range e.rows {
		current += fs.direction
		if current == -1 {
			current = len(e.rows) - 1
		} else if current == len(e.rows) {
			current = 0
		}

		row := &e.rows[current]
		matchIndex := bytes.Index(row.Render, []byte(query))
		if matchIndex == -1 {
			continue
		}

		fs.lastMatch = current
		e.cy = current
		e.cx = RxToCx(row.Chars, matchIndex)
		e.rowOffset = len(e.rows)

		fs.savedRow = current
		fs.savedHl = make([]highlight.Class, len(row.Hl))
		copy(fs.savedHl, row.Hl)
		fs.hasSavedHl = true

		for i := 0; i < len(query); i++ {
			row.Hl[matchIndex+i] = highlight.Match
		}
		break
	}
}
