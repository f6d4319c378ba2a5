package ask

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertString(t *testing.T) {
	t.Parallel()

	v, err := New("", KindString).Convert("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestConvertInt(t *testing.T) {
	t.Parallel()

	q := New("", KindInt)

	v, err := q.Convert("42")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = q.Convert("-7")
	require.NoError(t, err)
	assert.Equal(t, -7, v)

	_, err = q.Convert("4.2")
	require.ErrorIs(t, err, ErrInvalidType)

	var convErr *ConvertError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, KindInt, convErr.Kind)
	assert.Equal(t, "4.2", convErr.Input)
}

func TestConvertFloat(t *testing.T) {
	t.Parallel()

	q := New("", KindFloat)

	v, err := q.Convert("3.25")
	require.NoError(t, err)
	assert.Equal(t, 3.25, v)

	_, err = q.Convert("pi")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestConvertSymbol(t *testing.T) {
	t.Parallel()

	q := New("", KindSymbol)

	v, err := q.Convert(":north")
	require.NoError(t, err)
	assert.Equal(t, Symbol("north"), v)

	v, err = q.Convert("south")
	require.NoError(t, err)
	assert.Equal(t, Symbol("south"), v)
}

func TestConvertRegexp(t *testing.T) {
	t.Parallel()

	q := New("", KindRegexp)

	v, err := q.Convert(`^a+$`)
	require.NoError(t, err)
	re, ok := v.(*regexp.Regexp)
	require.True(t, ok)
	assert.True(t, re.MatchString("aaa"))

	_, err = q.Convert(`[unclosed`)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestConvertTime(t *testing.T) {
	t.Parallel()

	q := New("", KindTime)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-08-29", time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)},
		{"2026/08/29", time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)},
		{"2026-08-29 10:30:00", time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)},
		{"15:04:05", time.Date(0, 1, 1, 15, 4, 5, 0, time.UTC)},
	}
	for _, tt := range tests {
		v, err := q.Convert(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.True(t, tt.want.Equal(v.(time.Time)), "input %q", tt.input)
	}

	_, err := q.Convert("yesterday-ish")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestConvertChoices(t *testing.T) {
	t.Parallel()

	q := New("", KindChoices, WithChoices("red", "green", "blue"))

	v, err := q.Convert("gr")
	require.NoError(t, err)
	assert.Equal(t, "green", v)

	_, err = q.Convert("x")
	assert.ErrorIs(t, err, ErrNoCompletion)

	ambiguous := New("", KindChoices, WithChoices("start", "stop"))
	_, err = ambiguous.Convert("st")
	assert.ErrorIs(t, err, ErrAmbiguousCompletion)
}

func TestConvertPathAndFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "config.yml")
	writeFile(t, dir, "data.csv")

	pathQ := New("", KindPath, WithDirectory(dir))
	v, err := pathQ.Convert("conf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(v.(string), "config.yml"))

	fileQ := New("", KindFile, WithDirectory(dir), WithGlob("*.csv"))
	v, err = fileQ.Convert("da")
	require.NoError(t, err)
	f, ok := v.(*os.File)
	require.True(t, ok)
	defer f.Close()
	assert.True(t, strings.HasSuffix(f.Name(), "data.csv"))

	// The glob scopes the candidate set.
	_, err = fileQ.Convert("conf")
	assert.ErrorIs(t, err, ErrNoCompletion)
}

func TestConvertCustom(t *testing.T) {
	t.Parallel()

	type port struct{ n int }
	q := New("", KindString, WithParser(func(s string) (any, error) {
		if s != "8080" {
			return nil, errors.New("only 8080 allowed")
		}
		return port{n: 8080}, nil
	}))
	assert.Equal(t, KindCustom, q.Kind)

	v, err := q.Convert("8080")
	require.NoError(t, err)
	assert.Equal(t, port{n: 8080}, v)

	_, err = q.Convert("22")
	assert.ErrorIs(t, err, ErrInvalidType)

	// Custom kind without a parser cannot convert.
	broken := New("", KindCustom)
	_, err = broken.Convert("x")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "datetime", KindTime.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
