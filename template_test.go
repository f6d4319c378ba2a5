package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		ctx  renderContext
		want string
	}{
		{
			name: "plain text passes through",
			src:  "Name?  ",
			ctx:  renderContext{},
			want: "Name?  ",
		},
		{
			name: "gather key",
			src:  "{{.Key}}: ",
			ctx:  renderContext{Key: "city"},
			want: "city: ",
		},
		{
			name: "confirmation answer",
			src:  "Delete {{.Answer}}?  ",
			ctx:  renderContext{Answer: 42},
			want: "Delete 42?  ",
		},
		{
			name: "default value",
			src:  "Editor [{{.Default}}]: ",
			ctx:  renderContext{Default: "vim"},
			want: "Editor [vim]: ",
		},
		{
			name: "question fields are reachable",
			src:  "{{.Question.Template}}",
			ctx:  renderContext{Question: &Question{Template: "hi"}},
			want: "hi",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := renderTemplate(tt.src, tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderTemplateErrors(t *testing.T) {
	t.Parallel()

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()

		_, err := renderTemplate("{{.Key", renderContext{})
		assert.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		_, err := renderTemplate("{{.Bogus}}", renderContext{})
		assert.Error(t, err)
	})
}
