package editor

import (
	"testing"

	"github.com/kiloedit/kilo/internal/highlight"
)

func newTestEditor() *Editor {
	return &Editor{quitTimes: QuitTimes, syntax: highlight.C}
}

func TestInsertRowRendersAndMarksDirty(t *testing.T) {
	e := newTestEditor()
	e.InsertRow(0, []byte("a\tb"))
	if e.NumRows() != 1 {
		t.Fatalf("NumRows() = %d, want 1", e.NumRows())
	}
	if !e.Dirty() {
		t.Error("expected buffer to be dirty after insert")
	}
	if got := string(e.rows[0].Render); got != "a       b" {
		t.Errorf("Render = %q, want tab expanded", got)
	}
}

func TestDeleteRowShiftsSubsequentRows(t *testing.T) {
	e := newTestEditor()
	e.InsertRow(0, []byte("one"))
	e.InsertRow(1, []byte("two"))
	e.InsertRow(2, []byte("three"))

	e.DeleteRow(1)

	if e.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", e.NumRows())
	}
	if string(e.rows[0].Chars) != "one" || string(e.rows[1].Chars) != "three" {
		t.Errorf("rows after delete = %q, %q", e.rows[0].Chars, e.rows[1].Chars)
	}
}

func TestRowInsertAndDeleteChar(t *testing.T) {
	e := newTestEditor()
	e.InsertRow(0, []byte("ac"))
	e.RowInsertChar(0, 1, 'b')
	if string(e.rows[0].Chars) != "abc" {
		t.Fatalf("Chars = %q, want \"abc\"", e.rows[0].Chars)
	}
	e.RowDeleteChar(0, 1)
	if string(e.rows[0].Chars) != "ac" {
		t.Errorf("Chars = %q, want \"ac\"", e.rows[0].Chars)
	}
}

func TestRowAppendString(t *testing.T) {
	e := newTestEditor()
	e.InsertRow(0, []byte("foo"))
	e.RowAppendString(0, []byte("bar"))
	if string(e.rows[0].Chars) != "foobar" {
		t.Errorf("Chars = %q, want \"foobar\"", e.rows[0].Chars)
	}
}

func TestRehighlightCascadePropagatesAndRetracts(t *testing.T) {
	e := newTestEditor()
	e.InsertRow(0, []byte("a /* b"))
	e.InsertRow(1, []byte("c d"))
	e.InsertRow(2, []byte("e */ f"))

	if !e.rows[0].HlOpenComment {
		t.Fatal("row 0 should leave the comment open")
	}
	if !e.rows[1].HlOpenComment {
		t.Fatal("row 1 should still be inside the comment")
	}
	if e.rows[2].HlOpenComment {
		t.Fatal("row 2 should close the comment")
	}

	// Deleting "*/" from row 2 should retract the comment, leaving it open.
	e.RowDeleteChar(2, 3)
	e.RowDeleteChar(2, 2)
	if !e.rows[2].HlOpenComment {
		t.Error("row 2 should stay open once its closer is removed")
	}
}
