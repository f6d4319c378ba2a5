package ask

import (
	"cmp"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"time"
)

// CharacterMode selects how a single answer is read from the terminal.
type CharacterMode int

// Character read modes.
const (
	CharacterNone CharacterMode = iota // read a whole line
	CharacterFull                      // read exactly one character, echo honored
	CharacterGetc                      // read one character, no raw-mode echo handling
)

// Question holds all configuration for one prompt and carries the resolved
// answer once the ask pipeline succeeds. Construct it with New, which applies
// options over documented defaults and then derives the response messages.
//
// A Question is consumed by exactly one ask (or gather) cycle and is not
// safe for concurrent use.
type Question struct {
	// Template is the prompt text. It may contain text/template actions; the
	// render context exposes the question, the current gather key, and the
	// default. DeriveResponses appends a visible "|default|" marker when a
	// default is set.
	Template string

	// Kind is the target type the answer is converted to.
	Kind Kind
	// Parse is the converter for KindCustom answers.
	Parse func(string) (any, error)

	// Whitespace and Case select the normalization applied to line input
	// before validation.
	Whitespace WhitespaceMode
	Case       CaseMode

	// Default is substituted when the raw answer is empty.
	Default string
	// Validate, when set, must accept the normalized answer.
	Validate func(string) bool
	// Above and Below bound the converted answer exclusively. In, when
	// non-empty, requires membership. All three are independent; an unset
	// bound always passes.
	Above any
	Below any
	In    []any

	// Choices is the fixed choice set for KindChoices answers.
	Choices []string
	// Completion overrides the list used for auto-completion matching.
	// When empty the list follows the kind (Choices, or a Directory/Glob
	// listing for file kinds).
	Completion []string
	// CaseFold makes completion matching case-insensitive. Matching is
	// case-sensitive by default.
	CaseFold bool

	// Character selects line versus single-character reading. Limit caps
	// line input length in characters (0 means unlimited). Echo toggles
	// input echo and EchoMask replaces echoed characters when non-zero.
	Character CharacterMode
	Limit     int
	Echo      bool
	EchoMask  rune
	// UseEditor routes line input through the interactive line editor
	// (history, Tab completion, cursor movement).
	UseEditor bool
	// OverwritePrompt erases the question line after a successful answer.
	OverwritePrompt bool

	// Confirm asks for a yes/no confirmation after a successful answer.
	// ConfirmTemplate replaces the fixed "Are you sure?  " text and is
	// rendered with the question and answer in scope.
	Confirm         bool
	ConfirmTemplate string

	// VerifyMatch requires all gathered answers to be identical.
	VerifyMatch bool

	// Directory and Glob scope the file listing for KindFile and KindPath.
	Directory string
	Glob      string

	// Responses maps message kinds to user-facing text. Fully populated
	// after New; see DeriveResponses and RefreshResponses.
	Responses map[ResponseKey]string

	// Answer is the converted value, set only after the pipeline succeeds.
	Answer any

	gather          gatherSpec
	firstAnswer     *string
	overrides       map[ResponseKey]string
	defaultAppended bool
}

// Option mutates a Question during construction.
type Option func(*Question)

// New creates a Question for the given prompt template and target kind,
// applies opts, and finalizes it by deriving the response messages.
//
// Example:
//
//	q := ask.New("Age?  ", ask.KindInt,
//		ask.WithDefault("35"),
//		ask.WithAbove(0),
//		ask.WithBelow(130),
//	)
func New(template string, kind Kind, opts ...Option) *Question {
	q := &Question{
		Template:  template,
		Kind:      kind,
		Echo:      true,
		Glob:      "*",
		Directory: defaultDirectory(),
		Responses: make(map[ResponseKey]string),
		overrides: make(map[ResponseKey]string),
	}
	for _, opt := range opts {
		opt(q)
	}
	q.DeriveResponses()
	return q
}

// defaultDirectory is the invoking program's directory.
func defaultDirectory() string {
	return filepath.Dir(os.Args[0])
}

// WithDefault pre-fills the answer used when the user just presses Enter.
// The default is shown in the prompt as "|value|".
func WithDefault(value string) Option {
	return func(q *Question) { q.Default = value }
}

// WithPattern requires the normalized answer to match re.
func WithPattern(re *regexp.Regexp) Option {
	return func(q *Question) { q.Validate = re.MatchString }
}

// WithValidator requires fn to accept the normalized answer.
func WithValidator(fn func(string) bool) Option {
	return func(q *Question) { q.Validate = fn }
}

// WithAbove requires the converted answer to compare strictly greater than
// bound.
func WithAbove(bound any) Option {
	return func(q *Question) { q.Above = bound }
}

// WithBelow requires the converted answer to compare strictly less than
// bound.
func WithBelow(bound any) Option {
	return func(q *Question) { q.Below = bound }
}

// WithIn requires the converted answer to be one of values.
func WithIn(values ...any) Option {
	return func(q *Question) { q.In = values }
}

// WithChoices sets the fixed choice set for a KindChoices question.
func WithChoices(choices ...string) Option {
	return func(q *Question) { q.Choices = choices }
}

// WithCompletion overrides the candidate list used for auto-completion.
func WithCompletion(candidates ...string) Option {
	return func(q *Question) { q.Completion = candidates }
}

// WithCaseFold makes completion matching case-insensitive.
func WithCaseFold() Option {
	return func(q *Question) { q.CaseFold = true }
}

// WithWhitespace sets the whitespace normalization mode.
func WithWhitespace(mode WhitespaceMode) Option {
	return func(q *Question) { q.Whitespace = mode }
}

// WithCase sets the case normalization mode.
func WithCase(mode CaseMode) Option {
	return func(q *Question) { q.Case = mode }
}

// WithCharacter sets the character read mode.
func WithCharacter(mode CharacterMode) Option {
	return func(q *Question) { q.Character = mode }
}

// WithLimit caps line input at n characters.
func WithLimit(n int) Option {
	return func(q *Question) { q.Limit = n }
}

// WithEchoOff disables input echo (password style).
func WithEchoOff() Option {
	return func(q *Question) { q.Echo = false }
}

// WithEchoMask echoes mask instead of each typed character.
func WithEchoMask(mask rune) Option {
	return func(q *Question) { q.EchoMask = mask }
}

// WithEditor routes line input through the interactive line editor.
func WithEditor() Option {
	return func(q *Question) { q.UseEditor = true }
}

// WithOverwrite erases the question line once answered.
func WithOverwrite() Option {
	return func(q *Question) { q.OverwritePrompt = true }
}

// WithConfirm asks "Are you sure?  " after a successful answer; a rejection
// restarts the ask.
func WithConfirm() Option {
	return func(q *Question) { q.Confirm = true }
}

// WithConfirmTemplate asks a rendered confirmation instead of the fixed
// text. The template sees {{.Answer}} and {{.Question}}.
func WithConfirmTemplate(tmpl string) Option {
	return func(q *Question) {
		q.Confirm = true
		q.ConfirmTemplate = tmpl
	}
}

// WithVerifyMatch requires all gathered answers to be identical; the gather
// then resolves to the single shared answer.
func WithVerifyMatch() Option {
	return func(q *Question) { q.VerifyMatch = true }
}

// WithFirstAnswer arms a pre-supplied answer consumed by the next read,
// bypassing prompting exactly once.
func WithFirstAnswer(answer string) Option {
	return func(q *Question) { q.firstAnswer = &answer }
}

// WithDirectory sets the base directory for file questions.
func WithDirectory(dir string) Option {
	return func(q *Question) { q.Directory = dir }
}

// WithGlob sets the filename pattern for file questions.
func WithGlob(pattern string) Option {
	return func(q *Question) { q.Glob = pattern }
}

// WithResponse overrides one response message. Explicit overrides survive
// DeriveResponses but are replaced by RefreshResponses.
func WithResponse(key ResponseKey, text string) Option {
	return func(q *Question) { q.overrides[key] = text }
}

// WithParser sets the converter for a KindCustom question.
func WithParser(parse func(string) (any, error)) Option {
	return func(q *Question) {
		q.Kind = KindCustom
		q.Parse = parse
	}
}

// Selection returns the candidate list auto-completion matches against: the
// Completion override when set, the choice list for KindChoices, or the
// Directory/Glob listing for file kinds. Empty for everything else.
func (q *Question) Selection() []string {
	if len(q.Completion) > 0 {
		return q.Completion
	}
	switch q.Kind {
	case KindChoices:
		return q.Choices
	case KindFile, KindPath:
		return q.fileSelection()
	}
	return nil
}

// AnswerOrDefault substitutes the configured default for an empty raw
// answer. Applied before normalization and conversion.
func (q *Question) AnswerOrDefault(raw string) string {
	if raw == "" && q.Default != "" {
		return q.Default
	}
	return raw
}

// ValidAnswer reports whether the normalized answer passes the validator.
// A question without a validator accepts everything.
func (q *Question) ValidAnswer(answer string) bool {
	return q.Validate == nil || q.Validate(answer)
}

// InRange reports whether the converted answer satisfies the Above, Below,
// and In constraints. An unset bound always passes; a bound that cannot be
// compared with the answer fails.
func (q *Question) InRange(v any) bool {
	if q.Above != nil {
		c, ok := compareValues(v, q.Above)
		if !ok || c <= 0 {
			return false
		}
	}
	if q.Below != nil {
		c, ok := compareValues(v, q.Below)
		if !ok || c >= 0 {
			return false
		}
	}
	if len(q.In) > 0 {
		for _, member := range q.In {
			if equalValues(v, member) {
				return true
			}
		}
		return false
	}
	return true
}

// CheckRange validates the converted answer against the range constraints,
// returning ErrNotInRange on failure.
func (q *Question) CheckRange(v any) error {
	if !q.InRange(v) {
		return ErrNotInRange
	}
	return nil
}

// HasFirstAnswer reports whether a first answer is armed. Pure check, no
// side effect.
func (q *Question) HasFirstAnswer() bool {
	return q.firstAnswer != nil
}

// TakeFirstAnswer returns the armed first answer and clears it. The clear is
// unconditional: a second call reports absence. The first answer is never
// re-armed automatically.
func (q *Question) TakeFirstAnswer() (string, bool) {
	if q.firstAnswer == nil {
		return "", false
	}
	answer := *q.firstAnswer
	q.firstAnswer = nil
	return answer, true
}

// compareValues orders two converted answer values. The bool result is
// false when the values are not mutually comparable.
func compareValues(a, b any) (int, bool) {
	switch av := a.(type) {
	case int:
		switch bv := b.(type) {
		case int:
			return cmp.Compare(av, bv), true
		case float64:
			return cmp.Compare(float64(av), bv), true
		}
	case float64:
		switch bv := b.(type) {
		case float64:
			return cmp.Compare(av, bv), true
		case int:
			return cmp.Compare(av, float64(bv)), true
		}
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv), true
		}
	case Symbol:
		if bv, ok := b.(Symbol); ok {
			return cmp.Compare(string(av), string(bv)), true
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv), true
		}
	}
	return 0, false
}

// equalValues reports answer equality for membership and verify-match
// checks, falling back to deep equality for uncomparable values.
func equalValues(a, b any) bool {
	if c, ok := compareValues(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}
