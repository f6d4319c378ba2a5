package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mode  WhitespaceMode
		input string
		want  string
	}{
		{"none keeps input", WhitespaceNone, "  a  b  ", "  a  b  "},
		{"strip trims both ends", WhitespaceStrip, "\t hello \n", "hello"},
		{"strip keeps inner runs", WhitespaceStrip, "a   b", "a   b"},
		{"chomp removes trailing newline", WhitespaceChomp, "hello\n", "hello"},
		{"chomp removes crlf", WhitespaceChomp, "hello\r\n", "hello"},
		{"chomp keeps leading space", WhitespaceChomp, "  hello\n", "  hello"},
		{"collapse squeezes runs", WhitespaceCollapse, "a   b\tc", "a b c"},
		{"collapse keeps single trailing space", WhitespaceCollapse, "a  b  ", "a b "},
		{"strip and collapse", WhitespaceStripAndCollapse, "  a \t b  ", "a b"},
		{"chomp and collapse", WhitespaceChompAndCollapse, "a \t b\n", "a b"},
		{"remove deletes everything", WhitespaceRemove, " a \t b\nc ", "abc"},
		{"unknown mode is identity", WhitespaceMode(99), " a b ", " a b "},
		{"empty input", WhitespaceStrip, "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := removeWhitespace(tt.input, tt.mode)
			assert.Equal(t, tt.want, got)

			// Every mode reaches a fixed point after one application.
			assert.Equal(t, got, removeWhitespace(got, tt.mode), "second application should be a no-op")
		})
	}
}

func TestChangeCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mode  CaseMode
		input string
		want  string
	}{
		{"none", CaseNone, "MiXeD", "MiXeD"},
		{"up", CaseUp, "hello", "HELLO"},
		{"down", CaseDown, "HeLLo", "hello"},
		{"capitalize", CaseCapitalize, "hELLO wORLD", "Hello world"},
		{"capitalize empty", CaseCapitalize, "", ""},
		{"capitalize single rune", CaseCapitalize, "a", "A"},
		{"unknown mode is identity", CaseMode(42), "AbC", "AbC"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, changeCase(tt.input, tt.mode))
		})
	}
}

func TestQuestionFormatAnswer(t *testing.T) {
	t.Parallel()

	// Whitespace policy runs before case policy.
	q := New("", KindString,
		WithWhitespace(WhitespaceStripAndCollapse),
		WithCase(CaseCapitalize),
	)
	assert.Equal(t, "Hello world", q.FormatAnswer("  hELLO   wORLD \n"))

	// An unconfigured question passes input through untouched.
	plain := New("", KindString)
	assert.Equal(t, " raw ", plain.FormatAnswer(" raw "))
}
