package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenLoadsRowsAndClearsDirty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.c")
	content := "int main() {\n\treturn 0;\n}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newTestEditor()
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if e.NumRows() != 3 {
		t.Fatalf("NumRows() = %d, want 3", e.NumRows())
	}
	if string(e.rows[0].Chars) != "int main() {" {
		t.Errorf("row 0 = %q", e.rows[0].Chars)
	}
	if string(e.rows[1].Chars) != "\treturn 0;" {
		t.Errorf("row 1 = %q", e.rows[1].Chars)
	}
	if e.Dirty() {
		t.Error("buffer should not be dirty immediately after Open")
	}
	if e.syntax == nil {
		t.Error("expected the .c extension to select the C profile")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	e := newTestEditor()
	e.syntax = nil
	e.filename = path
	e.InsertRow(0, []byte("first"))
	e.InsertRow(1, []byte("second"))

	e.Save()

	if e.Dirty() {
		t.Error("buffer should not be dirty after a successful save")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "first\nsecond\n"
	if string(got) != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestSaveTruncatesShorterContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shrink.txt")
	if err := os.WriteFile(path, []byte("a very long original line\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	e := newTestEditor()
	e.syntax = nil
	e.filename = path
	e.InsertRow(0, []byte("hi"))

	e.Save()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hi\n" {
		t.Errorf("file content = %q, want %q (stale bytes should be truncated away)", got, "hi\n")
	}
}
