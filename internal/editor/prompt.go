package editor

import (
	"errors"
	"unicode"

	"github.com/kiloedit/kilo/internal/terminal"
)

// ErrPromptCancelled is returned by Prompt when the user cancels with Esc.
var ErrPromptCancelled = errors.New("user cancelled")

// Prompt collects a line of input in the message bar, re-rendering and
// reading one key per cycle. Backspace/Ctrl-H/Delete erase one byte; Esc
// cancels; Enter accepts a non-empty buffer. If onInput is non-nil, it is
// invoked once per keystroke, including the cancelling or accepting key,
// with the buffer's content at that point.
func (e *Editor) Prompt(template string, onInput func(input string, key int)) (string, error) {
	var input []byte

	for {
		e.SetStatusMessage(template, string(input))
		e.RefreshScreen()

		key, err := e.term.ReadKey()
		if err != nil {
			return "", err
		}

		cancel := false
		accept := false

		switch {
		case key == terminal.DelKey || key == terminal.CtrlKey('h') || key == terminal.Backspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case key == terminal.Esc:
			cancel = true
		case key == '\r':
			if len(input) > 0 {
				accept = true
			}
		case key < 128 && !unicode.IsControl(rune(key)):
			input = append(input, byte(key))
		}

		if onInput != nil {
			onInput(string(input), key)
		}

		if cancel {
			e.SetStatusMessage("")
			return "", ErrPromptCancelled
		}
		if accept {
			e.SetStatusMessage("")
			return string(input), nil
		}
	}
}
