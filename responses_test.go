package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveResponsesKeepsOverrides(t *testing.T) {
	t.Parallel()

	q := New("", KindInt, WithResponse(ResponseNotValid, "Nope."))

	// The explicit override survives construction-time derivation.
	assert.Equal(t, "Nope.", q.Responses[ResponseNotValid])
	assert.Equal(t, "You must enter a valid integer.", q.Responses[ResponseInvalidType])

	// Re-deriving without "new wins" keeps the override.
	q.DeriveResponses()
	assert.Equal(t, "Nope.", q.Responses[ResponseNotValid])
}

func TestRefreshResponsesLetsDerivedWin(t *testing.T) {
	t.Parallel()

	q := New("", KindInt, WithResponse(ResponseNotValid, "Nope."))
	assert.Equal(t, "Nope.", q.Responses[ResponseNotValid])

	// Refresh after a settings change replaces the stale override.
	q.Above = 5
	q.RefreshResponses()
	assert.Equal(t, "Your answer isn't valid (must match the provided validation).", q.Responses[ResponseNotValid])
	assert.Equal(t, "Your answer isn't within the expected range (above 5).", q.Responses[ResponseNotInRange])

	// A later Derive restores the explicit override.
	q.DeriveResponses()
	assert.Equal(t, "Nope.", q.Responses[ResponseNotValid])
}

func TestResponsesUseChoiceList(t *testing.T) {
	t.Parallel()

	q := New("", KindChoices, WithChoices("red", "green", "blue"))

	assert.Equal(t, "You must choose one of [red, green, blue].", q.Responses[ResponseNoCompletion])
	assert.Equal(t, "Ambiguous choice.  Please choose one of [red, green, blue].", q.Responses[ResponseAmbiguousCompletion])
	assert.Equal(t, "You must enter a valid [red, green, blue].", q.Responses[ResponseInvalidType])
}

func TestExpectedRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"no bounds", nil, ""},
		{"above only", []Option{WithAbove(5)}, "above 5"},
		{"below only", []Option{WithBelow(10)}, "below 10"},
		{"membership only", []Option{WithIn(1, 2)}, "included in [1, 2]"},
		{"above and below", []Option{WithAbove(5), WithBelow(10)}, "above 5 and below 10"},
		{"all three oxford join", []Option{WithAbove(5), WithBelow(10), WithIn(6, 7)}, "above 5, below 10, and included in [6, 7]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, New("", KindInt, tt.opts...).ExpectedRange())
		})
	}
}

func TestAppendDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		def      string
		want     string
	}{
		{"empty template", "", "5", "|5|  "},
		{"plain template", "Age?", "5", "Age?  |5|"},
		{"trailing spaces keep formatting", "Age?  ", "5", "Age?|5|  "},
		{"trailing tab keeps formatting", "Age?\t", "5", "Age?|5|\t"},
		{"trailing newline", "Age?\n", "5", "Age?  |5|\n"},
		{"no default leaves template alone", "Age?  ", "", "Age?  "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := []Option{}
			if tt.def != "" {
				opts = append(opts, WithDefault(tt.def))
			}
			q := New(tt.template, KindInt, opts...)
			assert.Equal(t, tt.want, q.Template)
		})
	}
}

func TestAppendDefaultRunsOnce(t *testing.T) {
	t.Parallel()

	q := New("Age?  ", KindInt, WithDefault("5"))
	assert.Equal(t, "Age?|5|  ", q.Template)

	// Further derivations never stack another marker.
	q.DeriveResponses()
	q.RefreshResponses()
	assert.Equal(t, "Age?|5|  ", q.Template)
}
