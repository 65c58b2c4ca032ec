package editor

import (
	"github.com/kiloedit/kilo/internal/highlight"
)

// TabStop is the fixed tab width used when expanding a row's content into
// its rendered form.
const TabStop = 8

// Row is one line of the buffer: its authoritative content, its tab-
// expanded render, and the highlight class of every rendered byte.
type Row struct {
	Chars         []byte
	Render        []byte
	Hl            []highlight.Class
	HlOpenComment bool
}

// Len returns the row's logical length in Chars coordinates.
func (r *Row) Len() int {
	return len(r.Chars)
}

// RLen returns the row's rendered length in Render coordinates.
func (r *Row) RLen() int {
	return len(r.Render)
}

// renderRow expands tabs in chars into spaces at the fixed tab stop.
func renderRow(chars []byte) []byte {
	out := make([]byte, 0, len(chars))
	col := 0
	for _, c := range chars {
		if c == '\t' {
			out = append(out, ' ')
			col++
			for col%TabStop != 0 {
				out = append(out, ' ')
				col++
			}
		} else {
			out = append(out, c)
			col++
		}
	}
	return out
}

// CxToRx converts a logical column in chars to its rendered column,
// accounting for tab expansion.
func CxToRx(chars []byte, cx int) int {
	rx := 0
	if cx > len(chars) {
		cx = len(chars)
	}
	for j := 0; j < cx; j++ {
		if chars[j] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RxToCx converts a rendered column back to its logical column, the
// inverse of CxToRx. If rx lies past the end of the row, it returns the
// row's logical length.
func RxToCx(chars []byte, rx int) int {
	curRx := 0
	cx := 0
	for ; cx < len(chars); cx++ {
		if chars[cx] == '\t' {
			curRx += (TabStop - 1) - (curRx % TabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return cx
}
