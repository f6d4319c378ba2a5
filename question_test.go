package ask

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	q := New("Continue?  ", KindString)

	assert.Equal(t, "Continue?  ", q.Template)
	assert.Equal(t, KindString, q.Kind)
	assert.True(t, q.Echo)
	assert.Equal(t, "*", q.Glob)
	assert.NotEmpty(t, q.Directory)
	assert.False(t, q.HasFirstAnswer())

	// Responses are fully populated at construction time.
	for _, key := range []ResponseKey{
		ResponseAmbiguousCompletion,
		ResponseAskOnError,
		ResponseInvalidType,
		ResponseNoCompletion,
		ResponseNotInRange,
		ResponseMismatch,
		ResponseNotValid,
	} {
		assert.NotEmpty(t, q.Responses[key], "response %q should be derived", key)
	}
}

func TestAnswerOrDefault(t *testing.T) {
	t.Parallel()

	q := New("", KindString, WithDefault("x"))
	assert.Equal(t, "x", q.AnswerOrDefault(""))
	assert.Equal(t, "y", q.AnswerOrDefault("y"))

	noDefault := New("", KindString)
	assert.Equal(t, "", noDefault.AnswerOrDefault(""))
}

func TestValidAnswer(t *testing.T) {
	t.Parallel()

	assert.True(t, New("", KindString).ValidAnswer("anything"))

	pattern := New("", KindString, WithPattern(regexp.MustCompile(`^[a-z]+$`)))
	assert.True(t, pattern.ValidAnswer("hello"))
	assert.False(t, pattern.ValidAnswer("Hello"))

	predicate := New("", KindString, WithValidator(func(s string) bool { return len(s) >= 3 }))
	assert.True(t, predicate.ValidAnswer("abc"))
	assert.False(t, predicate.ValidAnswer("ab"))
}

func TestInRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		v    any
		want bool
	}{
		{"no bounds accepts anything", nil, 42, true},
		{"above and below accepts midpoint", []Option{WithAbove(0), WithBelow(10)}, 5, true},
		{"above bound is exclusive", []Option{WithAbove(0), WithBelow(10)}, 0, false},
		{"below bound is exclusive", []Option{WithAbove(0), WithBelow(10)}, 10, false},
		{"below lower bound", []Option{WithAbove(0), WithBelow(10)}, -1, false},
		{"above upper bound", []Option{WithAbove(0), WithBelow(10)}, 11, false},
		{"membership accepts member", []Option{WithIn(1, 2, 3)}, 2, true},
		{"membership rejects non-member", []Option{WithIn(1, 2, 3)}, 4, false},
		{"all three constraints", []Option{WithAbove(0), WithBelow(10), WithIn(5)}, 5, true},
		{"in-range but not member", []Option{WithAbove(0), WithBelow(10), WithIn(7)}, 5, false},
		{"string bounds", []Option{WithAbove("a"), WithBelow("m")}, "g", true},
		{"string out of bounds", []Option{WithAbove("a"), WithBelow("m")}, "z", false},
		{"float answer against int bound", []Option{WithAbove(0)}, 0.5, true},
		{"incomparable bound fails", []Option{WithAbove("a")}, 5, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := New("", KindInt, tt.opts...)
			assert.Equal(t, tt.want, q.InRange(tt.v))
			if tt.want {
				assert.NoError(t, q.CheckRange(tt.v))
			} else {
				assert.ErrorIs(t, q.CheckRange(tt.v), ErrNotInRange)
			}
		})
	}
}

func TestInRangeTime(t *testing.T) {
	t.Parallel()

	lo := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	q := New("", KindTime, WithAbove(lo), WithBelow(hi))

	assert.True(t, q.InRange(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, q.InRange(lo))
	assert.False(t, q.InRange(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFirstAnswerOneShot(t *testing.T) {
	t.Parallel()

	q := New("", KindString, WithFirstAnswer("pre-filled"))
	require.True(t, q.HasFirstAnswer())

	// The pure check has no side effect.
	require.True(t, q.HasFirstAnswer())

	answer, ok := q.TakeFirstAnswer()
	require.True(t, ok)
	assert.Equal(t, "pre-filled", answer)

	// Reading clears it exactly once; it is never re-armed.
	assert.False(t, q.HasFirstAnswer())
	answer, ok = q.TakeFirstAnswer()
	assert.False(t, ok)
	assert.Empty(t, answer)
}

func TestSelection(t *testing.T) {
	t.Parallel()

	t.Run("choices kind exposes the choice list", func(t *testing.T) {
		t.Parallel()
		q := New("", KindChoices, WithChoices("red", "green", "blue"))
		assert.Equal(t, []string{"red", "green", "blue"}, q.Selection())
	})

	t.Run("completion override wins over choices", func(t *testing.T) {
		t.Parallel()
		q := New("", KindChoices,
			WithChoices("red", "green"),
			WithCompletion("crimson", "emerald"),
		)
		assert.Equal(t, []string{"crimson", "emerald"}, q.Selection())
	})

	t.Run("empty for plain kinds", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, New("", KindString).Selection())
		assert.Empty(t, New("", KindInt).Selection())
	})

	t.Run("file kind lists the directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "alpha.txt")
		writeFile(t, dir, "beta.txt")
		writeFile(t, dir, "notes.md")

		q := New("", KindFile, WithDirectory(dir), WithGlob("*.txt"))
		assert.ElementsMatch(t, []string{"alpha.txt", "beta.txt"}, q.Selection())
	})
}

// writeFile creates an empty file under dir for file-kind tests.
func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o600))
}

func TestCompareValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   any
		want   int
		wantOK bool
	}{
		{"int int", 1, 2, -1, true},
		{"int equal", 3, 3, 0, true},
		{"int float", 1, 0.5, 1, true},
		{"float int", 0.5, 1, -1, true},
		{"string string", "b", "a", 1, true},
		{"symbol symbol", Symbol("a"), Symbol("b"), -1, true},
		{"string int incomparable", "a", 1, 0, false},
		{"nil incomparable", nil, 1, 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := compareValues(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
