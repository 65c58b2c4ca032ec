package editor

import (
	"testing"

	"github.com/kiloedit/kilo/internal/highlight"
	"github.com/kiloedit/kilo/internal/terminal"
)

func newFindTestEditor() *Editor {
	e := newTestEditor()
	e.syntax = nil
	e.InsertRow(0, []byte("needle"))
	e.InsertRow(1, []byte("other"))
	e.InsertRow(2, []byte("needle"))
	e.find = findState{lastMatch: -1, direction: 1}
	return e
}

func TestFindCallbackLocatesFirstMatchFromTop(t *testing.T) {
	e := newFindTestEditor()

	e.findCallback("needle", 'e')

	if e.cy != 0 || e.cx != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", e.cx, e.cy)
	}
	if e.rows[0].Hl[0] != highlight.Match {
		t.Errorf("expected the match span overlaid with highlight.Match")
	}
}

func TestFindCallbackAdvancesThenWraps(t *testing.T) {
	e := newFindTestEditor()

	e.findCallback("needle", 'e')
	if e.cy != 0 {
		t.Fatalf("first match cy = %d, want 0", e.cy)
	}

	e.findCallback("needle", terminal.ArrowRight)
	if e.cy != 2 {
		t.Fatalf("after advancing, cy = %d, want 2", e.cy)
	}
	if e.rows[0].Hl[0] != highlight.Normal {
		t.Errorf("row 0's overlay should be restored once the match moves off it")
	}

	e.findCallback("needle", terminal.ArrowRight)
	if e.cy != 0 {
		t.Fatalf("advancing past the last row should wrap to row 0, got cy = %d", e.cy)
	}
	if e.rows[2].Hl[0] != highlight.Normal {
		t.Errorf("row 2's overlay should be restored once the match wraps away from it")
	}
	if e.rows[0].Hl[0] != highlight.Match {
		t.Errorf("expected row 0 freshly overlaid with highlight.Match after the wrap")
	}
}

func TestFindCallbackEnterStopsAdvancing(t *testing.T) {
	e := newFindTestEditor()
	e.findCallback("needle", 'e')
	e.findCallback("needle", '\r')

	if e.find.lastMatch != -1 || e.find.direction != 1 {
		t.Errorf("Enter should reset lastMatch/direction, got lastMatch=%d direction=%d", e.find.lastMatch, e.find.direction)
	}
	if e.rows[0].Hl[0] != highlight.Normal {
		t.Errorf("Enter should restore the overlay on the matched row")
	}
}

func TestFindCallbackEmptyQueryNoMatch(t *testing.T) {
	e := newFindTestEditor()
	e.findCallback("", 'x')
	if e.cy != 0 || e.cx != 0 {
		t.Errorf("an empty query should not move the cursor, got (%d,%d)", e.cx, e.cy)
	}
}
