// Command kilo is a minimalist single-file terminal text editor.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kiloedit/kilo/internal/editor"
	"github.com/kiloedit/kilo/internal/terminal"
)

// fatal restores the terminal, clears the screen, and exits nonzero with a
// diagnostic that embeds err. This is the single unwind path every FatalIO
// condition funnels through, guaranteeing raw-mode teardown runs.
func fatal(term *terminal.Terminal, err error) {
	term.Disable()
	fmt.Print("\x1b[2J\x1b[H")
	log.Fatalf("kilo: %v", err)
}

func main() {
	term := terminal.New()
	if err := term.EnableRaw(); err != nil {
		fatal(term, err)
	}
	defer term.Disable()
	defer func() {
		if r := recover(); r != nil {
			fatal(term, fmt.Errorf("%v", r))
		}
	}()

	ed, err := editor.New(term)
	if err != nil {
		fatal(term, err)
	}

	if args := os.Args[1:]; len(args) >= 1 {
		if err := ed.Open(args[0]); err != nil {
			fatal(term, err)
		}
	}

	ed.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		ed.RefreshScreen()
		cont, err := ed.ProcessKeypress()
		if err != nil {
			fatal(term, err)
		}
		if !cont {
			break
		}
	}
}
