package ask

import "regexp"

// GatherMode selects how repeated answers to one question are collected.
type GatherMode int

// Gathering modes.
const (
	GatherNone    GatherMode = iota // single answer
	GatherCount                     // stop after a fixed number of answers
	GatherUntil                     // stop when an answer matches a terminator
	GatherKeyed                     // ask once per key, produce a keyed result
)

// gatherSpec holds the gathering configuration for a question. The Asker
// owns the gathering orchestration; the question only carries the mode.
type gatherSpec struct {
	mode         GatherMode
	count        int
	until        string
	untilPattern *regexp.Regexp
	keys         []string
}

// GatherMode reports the configured gathering mode.
func (q *Question) GatherMode() GatherMode {
	return q.gather.mode
}

// WithGatherCount collects exactly n answers into a slice.
func WithGatherCount(n int) Option {
	return func(q *Question) {
		q.gather = gatherSpec{mode: GatherCount, count: n}
	}
}

// WithGatherUntil collects answers until one equals terminator. The
// terminator itself is excluded from the results.
func WithGatherUntil(terminator string) Option {
	return func(q *Question) {
		q.gather = gatherSpec{mode: GatherUntil, until: terminator}
	}
}

// WithGatherUntilPattern collects answers until one matches re. The
// matching answer is excluded from the results.
func WithGatherUntilPattern(re *regexp.Regexp) Option {
	return func(q *Question) {
		q.gather = gatherSpec{mode: GatherUntil, untilPattern: re}
	}
}

// WithGatherKeys asks the question once per key, in order, producing a
// map keyed by the same keys. The template sees the current key as
// {{.Key}}.
func WithGatherKeys(keys ...string) Option {
	return func(q *Question) {
		q.gather = gatherSpec{mode: GatherKeyed, keys: keys}
	}
}

// terminates reports whether the converted answer's string form matches the
// gather terminator.
func (g *gatherSpec) terminates(answer string) bool {
	if g.untilPattern != nil {
		return g.untilPattern.MatchString(answer)
	}
	return answer == g.until
}
