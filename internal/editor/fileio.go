package editor

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kiloedit/kilo/internal/highlight"
)

// Open loads filename into the row store, one line per row, stripping
// trailing \r and/or \n. The dirty counter is reset to zero on success.
// Any failure to open the file is returned for the caller to treat as
// fatal, per spec's Open failure policy.
func (e *Editor) Open(filename string) error {
	e.filename = filename
	e.syntax = highlight.SelectProfile(filename)

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		e.InsertRow(len(e.rows), scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	e.dirty = 0
	return nil
}

// rowsToBytes serializes the row store: each row's Chars followed by a
// single \n.
func (e *Editor) rowsToBytes() []byte {
	var total int
	for _, r := range e.rows {
		total += len(r.Chars) + 1
	}
	out := make([]byte, 0, total)
	for _, r := range e.rows {
		out = append(out, r.Chars...)
		out = append(out, '\n')
	}
	return out
}

// Save writes the buffer to disk. If no filename is set, it prompts for
// one first; cancellation aborts the save with a status message. The
// target file is truncated to the serialized length before writing, so a
// short write can only lose trailing bytes rather than leave a longer
// prior file partially overwritten. A successful write resets the dirty
// counter; any failure reports the error and leaves it unchanged.
func (e *Editor) Save() {
	if e.filename == "" {
		name, err := e.Prompt("Save as: %s", nil)
		if err != nil {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
	}

	data := e.rowsToBytes()

	f, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		return
	}
	defer f.Close()

	if err := f.Truncate(int64(len(data))); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		return
	}

	n, err := f.WriteAt(data, 0)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		return
	}

	e.dirty = 0
	e.SetStatusMessage("%d bytes written to disk", n)
}
