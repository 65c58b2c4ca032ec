// Package terminal puts the controlling terminal into raw mode, decodes
// keystrokes (including escape-encoded function keys), and discovers the
// display size.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Key codes. Backspace is the DEL byte (127) terminals send for that key;
// the other values are chosen well above any byte value so they never
// collide with a literal keystroke.
const (
	Backspace = 127

	ArrowLeft = 1000 + iota
	ArrowRight
	ArrowUp
	ArrowDown
	DelKey
	HomeKey
	EndKey
	PageUp
	PageDown
)

// Esc is the byte that introduces an escape sequence.
const Esc = '\x1b'

// CtrlKey returns the control-code value of k, as produced by holding Ctrl
// while typing k on a terminal.
func CtrlKey(k rune) int {
	return int(k) & 0x1f
}

// Terminal owns the raw-mode lifecycle and the byte stream from stdin.
type Terminal struct {
	fd     int
	orig   *unix.Termios
	reader *bufio.Reader
}

// New returns a Terminal bound to the process's standard input.
func New() *Terminal {
	return &Terminal{
		fd:     int(os.Stdin.Fd()),
		reader: bufio.NewReader(os.Stdin),
	}
}

// EnableRaw captures the terminal's current attributes and switches it to
// raw mode: no signal generation, no canonical line buffering, no echo, no
// input/output translation, 8-bit characters, and a read that returns after
// 100ms even with no bytes available (or immediately once one byte is read).
func (t *Terminal) EnableRaw() error {
	orig, err := unix.IoctlGetTermios(t.fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get terminal attributes: %w", err)
	}
	t.orig = orig

	raw := *orig
	// IXON: flow control. ICRNL: CR->NL translation. BRKINT: break causes
	// SIGINT. INPCK: parity checking. ISTRIP: strip the 8th bit.
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	// OPOST: output post-processing.
	raw.Oflag &^= unix.OPOST
	// CS8: 8 bits per character.
	raw.Cflag |= unix.CS8
	// ECHO, ICANON: local echo and canonical mode. ISIG: Ctrl-C/Ctrl-Z
	// signals. IEXTEN: Ctrl-V literal-next.
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, &raw); err != nil {
		return fmt.Errorf("set terminal attributes: %w", err)
	}
	return nil
}

// Disable restores the attributes captured by EnableRaw. Safe to call even
// if EnableRaw was never called or already failed.
func (t *Terminal) Disable() error {
	if t.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, t.orig); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	return nil
}

// ReadKey blocks until a single keystroke is available and returns its key
// code. Multi-byte escape sequences for arrows, home/end, delete, and
// page-up/down are decoded into the virtual key constants above; a lone or
// unrecognized escape is returned as Esc.
func (t *Terminal) ReadKey() (int, error) {
	var r rune
	var err error
	for {
		r, _, err = t.reader.ReadRune()
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("read key: %w", err)
		}
		if r != 0 {
			break
		}
	}

	if r != Esc {
		return int(r), nil
	}

	var seq [3]rune
	if seq[0], _, err = t.reader.ReadRune(); err != nil {
		return Esc, nil
	}
	if seq[1], _, err = t.reader.ReadRune(); err != nil {
		return Esc, nil
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			if seq[2], _, err = t.reader.ReadRune(); err != nil {
				return Esc, nil
			}
			if seq[2] == '~' {
				switch seq[1] {
				case '1':
					return HomeKey, nil
				case '3':
					return DelKey, nil
				case '4':
					return EndKey, nil
				case '5':
					return PageUp, nil
				case '6':
					return PageDown, nil
				case '7':
					return HomeKey, nil
				case '8':
					return EndKey, nil
				}
			}
		} else {
			switch seq[1] {
			case 'A':
				return ArrowUp, nil
			case 'B':
				return ArrowDown, nil
			case 'C':
				return ArrowRight, nil
			case 'D':
				return ArrowLeft, nil
			case 'H':
				return HomeKey, nil
			case 'F':
				return EndKey, nil
			}
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
	}

	return Esc, nil
}

// CursorPosition queries the terminal for the cursor's current row and
// column via the DSR(6) control sequence. It returns a non-nil error on any
// failure to read or parse the reply, rather than the C original's
// always-(-1) sentinel.
func (t *Terminal) CursorPosition() (row, col int, err error) {
	if _, err := fmt.Print("\x1b[6n"); err != nil {
		return 0, 0, fmt.Errorf("cursor position: %w", err)
	}

	var buf [32]rune
	n := 0
	for ; n < len(buf); n++ {
		r, _, rerr := t.reader.ReadRune()
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return 0, 0, fmt.Errorf("cursor position: %w", rerr)
		}
		buf[n] = r
		if r == 'R' {
			n++
			break
		}
	}

	if n < 2 || buf[0] != Esc || buf[1] != '[' {
		return 0, 0, errors.New("cursor position: malformed response")
	}
	if _, err := fmt.Sscanf(string(buf[2:n-1]), "%d;%d", &row, &col); err != nil {
		return 0, 0, fmt.Errorf("cursor position: %w", err)
	}
	return row, col, nil
}

// WindowSize reports the terminal's rows and columns. It prefers the
// TIOCGWINSZ ioctl and falls back to shoving the cursor to the bottom-right
// corner and asking where it landed.
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}

	if _, err := fmt.Print("\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, fmt.Errorf("window size: %w", err)
	}
	rows, cols, err = t.CursorPosition()
	if err != nil {
		return 0, 0, fmt.Errorf("window size: %w", err)
	}
	return rows, cols, nil
}
