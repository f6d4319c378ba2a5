package ask

import (
	"strings"
	"unicode"
)

// WhitespaceMode controls how whitespace in a raw answer is normalized
// before validation and conversion.
type WhitespaceMode int

// Whitespace normalization modes. An unrecognized value behaves as
// WhitespaceNone.
const (
	WhitespaceNone             WhitespaceMode = iota // leave the answer untouched
	WhitespaceStrip                                  // trim leading and trailing whitespace
	WhitespaceChomp                                  // trim one trailing line terminator
	WhitespaceCollapse                               // squeeze every whitespace run to one space
	WhitespaceStripAndCollapse                       // strip, then collapse
	WhitespaceChompAndCollapse                       // chomp, then collapse
	WhitespaceRemove                                 // delete all whitespace
)

// CaseMode controls how letter case in a raw answer is normalized after
// whitespace handling.
type CaseMode int

// Case normalization modes. An unrecognized value behaves as CaseNone.
const (
	CaseNone       CaseMode = iota
	CaseUp                  // uppercase the whole answer
	CaseDown                // lowercase the whole answer
	CaseCapitalize          // first letter upper, rest lower
)

// removeWhitespace applies mode to s. It never fails; unknown modes are
// treated as WhitespaceNone.
func removeWhitespace(s string, mode WhitespaceMode) string {
	switch mode {
	case WhitespaceStrip:
		return strings.TrimSpace(s)
	case WhitespaceChomp:
		return chomp(s)
	case WhitespaceCollapse:
		return collapseWhitespace(s)
	case WhitespaceStripAndCollapse:
		return collapseWhitespace(strings.TrimSpace(s))
	case WhitespaceChompAndCollapse:
		return collapseWhitespace(chomp(s))
	case WhitespaceRemove:
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	default:
		return s
	}
}

// chomp removes a single trailing line terminator ("\r\n", "\n" or "\r").
func chomp(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r") {
		return s[:len(s)-1]
	}
	return s
}

// collapseWhitespace replaces every run of whitespace with a single space,
// including leading and trailing runs.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte(' ')
			}
			inRun = true
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// changeCase applies mode to s. Unknown modes are identity.
func changeCase(s string, mode CaseMode) string {
	switch mode {
	case CaseUp:
		return strings.ToUpper(s)
	case CaseDown:
		return strings.ToLower(s)
	case CaseCapitalize:
		if s == "" {
			return s
		}
		runes := []rune(s)
		head := strings.ToUpper(string(runes[0]))
		return head + strings.ToLower(string(runes[1:]))
	default:
		return s
	}
}

// FormatAnswer normalizes a raw answer using the question's whitespace and
// case policies, in that order. Single-character reads bypass this entirely;
// the ask loop applies it only to line input.
func (q *Question) FormatAnswer(s string) string {
	return changeCase(removeWhitespace(s, q.Whitespace), q.Case)
}
