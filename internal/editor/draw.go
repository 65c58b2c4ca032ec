package editor

import (
	"fmt"
	"os"
	"time"

	"github.com/kiloedit/kilo/internal/buffer"
	"github.com/kiloedit/kilo/internal/highlight"
)

// clearScreen wipes the whole display and homes the cursor. Used on
// orderly quit so the terminal is left clean.
func clearScreen() {
	fmt.Print("\x1b[2J\x1b[H")
}

// RefreshScreen repaints the whole display in one batched write: it
// scrolls the viewport, hides the cursor, draws every row plus the status
// and message bars, places the cursor, and shows it again.
func (e *Editor) RefreshScreen() {
	e.Scroll()

	out := buffer.New()
	out.WriteString("\x1b[?25l")
	out.WriteString("\x1b[H")

	e.drawRows(out)
	e.drawStatusBar(out)
	e.drawMessageBar(out)

	fmt.Fprintf(out, "\x1b[%d;%dH", (e.cy-e.rowOffset)+1, (e.rx-e.colOffset)+1)
	out.WriteString("\x1b[?25h")

	os.Stdout.Write(out.Bytes())
	out.Free()
}

func (e *Editor) drawRows(out *buffer.Output) {
	for y := 0; y < e.screenRows; y++ {
		fileRow := y + e.rowOffset
		if fileRow >= len(e.rows) {
			if len(e.rows) == 0 && y == e.screenRows/3 {
				e.drawWelcome(out)
			} else {
				out.WriteString("~")
			}
		} else {
			e.drawRow(out, &e.rows[fileRow])
		}
		out.WriteString("\x1b[K")
		out.WriteString("\r\n")
	}
}

func (e *Editor) drawWelcome(out *buffer.Output) {
	welcome := fmt.Sprintf("Kilo editor -- version %s", Version)
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		out.WriteString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		out.WriteString(" ")
	}
	out.WriteString(welcome)
}

// drawRow emits the visible slice of one row, starting a color escape
// only when the highlight class changes, and always closing with the
// default-foreground escape.
func (e *Editor) drawRow(out *buffer.Output, row *Row) {
	rowSize := row.RLen() - e.colOffset
	if rowSize < 0 {
		rowSize = 0
	}
	if rowSize > e.screenCols {
		rowSize = e.screenCols
	}
	if rowSize == 0 {
		out.WriteString(fmt.Sprintf("\x1b[%dm", highlight.DefaultColor))
		return
	}

	currentClass := highlight.Normal
	for i := e.colOffset; i < e.colOffset+rowSize; i++ {
		c := row.Render[i]
		cls := highlight.Normal
		if i < len(row.Hl) {
			cls = row.Hl[i]
		}

		if c < 27 {
			out.WriteString("\x1b[7m")
			out.WriteByte('@' + c)
			out.WriteString("\x1b[m")
			if cls != highlight.Normal {
				out.WriteString(fmt.Sprintf("\x1b[%dm", highlight.ColorFor(cls)))
			}
			continue
		}

		if cls == highlight.Normal {
			if currentClass != highlight.Normal {
				out.WriteString(fmt.Sprintf("\x1b[%dm", highlight.DefaultColor))
				currentClass = highlight.Normal
			}
		} else if cls != currentClass {
			out.WriteString(fmt.Sprintf("\x1b[%dm", highlight.ColorFor(cls)))
			currentClass = cls
		}
		out.WriteByte(c)
	}
	out.WriteString(fmt.Sprintf("\x1b[%dm", highlight.DefaultColor))
}

func (e *Editor) drawStatusBar(out *buffer.Output) {
	out.WriteString("\x1b[7m")

	displayName := e.filename
	if displayName == "" {
		displayName = "[No Name]"
	}
	dirtyTag := ""
	if e.Dirty() {
		dirtyTag = "(modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines %s", displayName, len(e.rows), dirtyTag)
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}
	out.WriteString(status)

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.Name
	}
	right := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, len(e.rows))

	for length := len(status); length < e.screenCols; length++ {
		if e.screenCols-length == len(right) {
			out.WriteString(right)
			break
		}
		out.WriteString(" ")
	}

	out.WriteString("\x1b[m")
	out.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(out *buffer.Output) {
	out.WriteString("\x1b[K")
	msgLen := len(e.statusMsg)
	if msgLen > e.screenCols {
		msgLen = e.screenCols
	}
	if msgLen > 0 && time.Since(e.statusMsgTime) < MessageTimeout {
		out.WriteString(e.statusMsg[:msgLen])
	}
}
