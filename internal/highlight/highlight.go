// Package highlight classifies each byte of a rendered row into a
// highlight class, carrying one bit of forward state across rows so a
// multi-line comment opened on one row extends until a matching closer is
// found.
package highlight

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Class names a highlight classification for a single rendered byte.
type Class uint8

const (
	Normal Class = iota
	Comment
	MLComment
	Keyword1
	Keyword2
	String
	Number
	Match
)

// ANSI SGR foreground color codes per highlight class.
const (
	colorCyan    = 36
	colorYellow  = 33
	colorGreen   = 32
	colorMagenta = 35
	colorRed     = 31
	colorBlue    = 34
	colorWhite   = 37
	colorDefault = 39
)

// ColorFor maps a highlight class to its terminal foreground color.
func ColorFor(c Class) int {
	switch c {
	case Comment, MLComment:
		return colorCyan
	case Keyword1:
		return colorYellow
	case Keyword2:
		return colorGreen
	case String:
		return colorMagenta
	case Number:
		return colorRed
	case Match:
		return colorBlue
	default:
		return colorWhite
	}
}

// DefaultColor is the SGR reset-to-default-foreground code the renderer
// closes every row with.
const DefaultColor = colorDefault

// Flags enables optional highlight rules for a Profile.
type Flags uint8

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

// Profile describes one language's highlighting rules: how to recognize
// its files, its keyword table (a trailing "|" marks a type keyword,
// highlighted as Keyword2 rather than Keyword1), its comment delimiters,
// and which of the optional rules apply.
type Profile struct {
	Name                  string
	FileMatch             []string
	Keywords              []string
	SingleLineCommentLead string
	MultiLineCommentOpen  string
	MultiLineCommentClose string
	Flags                 Flags
}

// C is the single built-in syntax profile: a C-like language, grounded on
// the classic kilo HLDB entry for C/C++ headers, extended with the
// keyword, string, and block-comment rules spec.md's highlighter requires.
var C = &Profile{
	Name:      "c",
	FileMatch: []string{".c", ".h", ".cpp"},
	Keywords: []string{
		"switch", "if", "while", "for", "break", "continue", "return",
		"else", "struct", "union", "typedef", "static", "enum", "class",
		"case",
		"int|", "long|", "double|", "float|", "char|", "unsigned|",
		"signed|", "void|",
	},
	SingleLineCommentLead: "//",
	MultiLineCommentOpen:  "/*",
	MultiLineCommentClose: "*/",
	Flags:                 HighlightNumbers | HighlightStrings,
}

// profiles is the syntax database consulted by SelectProfile. Extending it
// with another language's Profile is the only change needed to support it.
var profiles = []*Profile{C}

// SelectProfile picks a syntax profile for filename: the first profile
// whose FileMatch contains a pattern that matches the filename's extension
// (patterns starting with ".") or appears as a substring of the filename
// (patterns without a leading "."). Returns nil if nothing matches, which
// disables syntax highlighting.
func SelectProfile(filename string) *Profile {
	ext := ""
	if dot := strings.LastIndexByte(filename, '.'); dot >= 0 {
		ext = filename[dot:]
	}
	for _, p := range profiles {
		for _, pattern := range p.FileMatch {
			if strings.HasPrefix(pattern, ".") {
				if ext == pattern {
					return p
				}
			} else if strings.Contains(filename, pattern) {
				return p
			}
		}
	}
	return nil
}

// isSeparator reports whether c is whitespace or one of the punctuation
// bytes that delimit tokens.
func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == 0 || strings.IndexByte(",.()+-/*=~%<>[];", c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Row classifies render (a row's tab-expanded content) into one Class per
// byte. openComment is the multi-line-comment state inherited from the
// previous row (false for the first row). It returns the per-byte classes
// and the multi-line-comment state in effect at the end of the row, which
// the caller stores as that row's HlOpenComment and feeds back in as
// openComment for the following row.
//
// profile == nil disables highlighting: every byte classifies as Normal
// and the comment state never opens.
func Row(render []byte, openComment bool, profile *Profile) ([]Class, bool) {
	hl := make([]Class, len(render))
	if profile == nil {
		return hl, false
	}

	prevSep := true
	inString := byte(0)
	inComment := openComment

	i := 0
	for i < len(render) {
		prevHL := Normal
		if i > 0 {
			prevHL = hl[i-1]
		}

		if profile.SingleLineCommentLead != "" && inString == 0 && !inComment &&
			hasPrefixAt(render, i, profile.SingleLineCommentLead) {
			for j := i; j < len(render); j++ {
				hl[j] = Comment
			}
			break
		}

		if profile.MultiLineCommentOpen != "" && profile.MultiLineCommentClose != "" && inString == 0 {
			if inComment {
				hl[i] = MLComment
				if hasPrefixAt(render, i, profile.MultiLineCommentClose) {
					n := len(profile.MultiLineCommentClose)
					for k := 0; k < n; k++ {
						hl[i+k] = MLComment
					}
					i += n
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if hasPrefixAt(render, i, profile.MultiLineCommentOpen) {
				n := len(profile.MultiLineCommentOpen)
				for k := 0; k < n; k++ {
					hl[i+k] = MLComment
				}
				i += n
				inComment = true
				continue
			}
		}

		c := render[i]

		if profile.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '\'' || c == '"' {
				inString = c
				hl[i] = String
				i++
				prevSep = false
				continue
			}
		}

		if profile.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHL == Number)) || (c == '.' && prevHL == Number) {
				hl[i] = Number
				prevSep = false
				i++
				continue
			}
		}

		if prevSep {
			if kw, cls, ok := matchKeyword(render[i:], profile.Keywords); ok {
				for k := 0; k < len(kw); k++ {
					hl[i+k] = cls
				}
				i += len(kw)
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return hl, inComment
}

// matchKeyword scans keywords for one that prefixes rest and is itself
// followed by a separator (or end of input). Keywords carrying a trailing
// "|" classify as Keyword2 (type names); others classify as Keyword1.
func matchKeyword(rest []byte, keywords []string) (matched string, class Class, ok bool) {
	idx := slices.IndexFunc(keywords, func(kw string) bool {
		word := strings.TrimSuffix(kw, "|")
		if len(word) > len(rest) || string(rest[:len(word)]) != word {
			return false
		}
		return len(word) == len(rest) || isSeparator(rest[len(word)])
	})
	if idx < 0 {
		return "", Normal, false
	}
	kw := keywords[idx]
	word := strings.TrimSuffix(kw, "|")
	class = Keyword1
	if strings.HasSuffix(kw, "|") {
		class = Keyword2
	}
	return word, class, true
}

func hasPrefixAt(b []byte, i int, prefix string) bool {
	if i+len(prefix) > len(b) {
		return false
	}
	return string(b[i:i+len(prefix)]) == prefix
}
