// Package editor implements the in-memory text buffer, its viewport,
// syntax-aware rendering, and the key dispatcher that drives it — the
// stateful core of the kilo-style editor.
package editor

import (
	"fmt"
	"time"

	"github.com/kiloedit/kilo/internal/highlight"
	"github.com/kiloedit/kilo/internal/terminal"
)

// Version is reported in the welcome banner shown over an empty buffer.
const Version = "0.1.0"

// MessageTimeout is how long a status message remains visible.
const MessageTimeout = 5 * time.Second

// QuitTimes is how many consecutive Ctrl-Q presses a dirty buffer
// requires before the editor actually exits.
const QuitTimes = 3

// findState holds the fields the find sub-mode must keep across
// keystrokes within one search session, in place of the static locals a C
// implementation would use.
type findState struct {
	lastMatch  int
	direction  int
	savedRow   int
	savedHl    []highlight.Class
	hasSavedHl bool
}

// Editor is the single process-wide editor state: cursor, viewport, row
// store, and everything needed to render and mutate the buffer. Its
// lifetime is bounded by main; it is threaded explicitly rather than kept
// as package-level state.
type Editor struct {
	term *terminal.Terminal

	cx, cy int
	rx     int

	rowOffset, colOffset   int
	screenRows, screenCols int

	rows  []Row
	dirty int

	filename string
	syntax   *highlight.Profile

	statusMsg     string
	statusMsgTime time.Time

	quitTimes int
	find      findState
}

// New creates an Editor bound to term, querying the terminal for its
// current size. The bottom two rows are reserved for the status and
// message bars.
func New(term *terminal.Terminal) (*Editor, error) {
	rows, cols, err := term.WindowSize()
	if err != nil {
		return nil, fmt.Errorf("determine window size: %w", err)
	}
	return &Editor{
		term:       term,
		screenRows: rows - 2,
		screenCols: cols,
		quitTimes:  QuitTimes,
	}, nil
}

// Dirty reports whether the buffer has unsaved changes.
func (e *Editor) Dirty() bool {
	return e.dirty > 0
}

// NumRows returns the number of rows currently in the buffer.
func (e *Editor) NumRows() int {
	return len(e.rows)
}

// SetStatusMessage formats and records a status message along with the
// time it was set, so the message bar can expire it after MessageTimeout.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusMsgTime = time.Now()
}
