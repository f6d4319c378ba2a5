package ask

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// Kind identifies the target type an answer string is converted to after
// normalization and validation.
type Kind int

// Answer target kinds.
const (
	KindString  Kind = iota // free-form string, identity conversion
	KindInt                 // strconv integer
	KindFloat               // strconv float64
	KindSymbol              // Symbol value, leading colon stripped
	KindRegexp              // compiled *regexp.Regexp
	KindTime                // calendar-parsed time.Time
	KindFile                // *os.File opened under Directory/Glob
	KindPath                // path string resolved under Directory/Glob
	KindChoices             // auto-completed member of the choice list
	KindCustom              // caller-supplied parser
)

// String returns the kind name used in derived response messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindSymbol:
		return "symbol"
	case KindRegexp:
		return "regexp"
	case KindTime:
		return "datetime"
	case KindFile:
		return "file"
	case KindPath:
		return "path"
	case KindChoices:
		return "choice"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Symbol is the converted value of a KindSymbol answer. It mirrors the
// symbol-style answers of interactive shells (":north" converts to
// Symbol("north")).
type Symbol string

// timeLayouts are tried in order when converting a KindTime answer.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"15:04:05",
	"15:04",
}

// Convert coerces the normalized, defaulted answer string to the question's
// kind. Failures wrap ErrInvalidType, except choice-membership failures
// which surface as ErrNoCompletion / ErrAmbiguousCompletion so the ask loop
// can pick the matching response message.
func (q *Question) Convert(answer string) (any, error) {
	switch q.Kind {
	case KindString:
		return answer, nil
	case KindInt:
		n, err := strconv.Atoi(answer)
		if err != nil {
			return nil, &ConvertError{Kind: q.Kind, Input: answer, Err: err}
		}
		return n, nil
	case KindFloat:
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return nil, &ConvertError{Kind: q.Kind, Input: answer, Err: err}
		}
		return f, nil
	case KindSymbol:
		if len(answer) > 0 && answer[0] == ':' {
			answer = answer[1:]
		}
		return Symbol(answer), nil
	case KindRegexp:
		re, err := regexp.Compile(answer)
		if err != nil {
			return nil, &ConvertError{Kind: q.Kind, Input: answer, Err: err}
		}
		return re, nil
	case KindTime:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, answer); err == nil {
				return t, nil
			}
		}
		return nil, &ConvertError{Kind: q.Kind, Input: answer}
	case KindFile:
		name, err := completeChoice(q.fileSelection(), answer, q.CaseFold)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(filepath.Join(q.Directory, name))
		if err != nil {
			return nil, &ConvertError{Kind: q.Kind, Input: answer, Err: err}
		}
		return f, nil
	case KindPath:
		name, err := completeChoice(q.fileSelection(), answer, q.CaseFold)
		if err != nil {
			return nil, err
		}
		return filepath.Join(q.Directory, name), nil
	case KindChoices:
		return completeChoiceValue(q, answer)
	case KindCustom:
		if q.Parse == nil {
			return nil, &ConvertError{Kind: q.Kind, Input: answer}
		}
		v, err := q.Parse(answer)
		if err != nil {
			return nil, &ConvertError{Kind: q.Kind, Input: answer, Err: err}
		}
		return v, nil
	default:
		return answer, nil
	}
}

// completeChoiceValue resolves an answer against the question's choice list.
func completeChoiceValue(q *Question, answer string) (any, error) {
	match, err := completeChoice(q.Selection(), answer, q.CaseFold)
	if err != nil {
		return nil, err
	}
	return match, nil
}

// fileSelection lists the base names matching Directory/Glob. Listing errors
// collapse to an empty selection; the ask loop then reports no_completion.
func (q *Question) fileSelection() []string {
	pattern := q.Glob
	if pattern == "" {
		pattern = "*"
	}
	paths, err := filepath.Glob(filepath.Join(q.Directory, pattern))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	return names
}
