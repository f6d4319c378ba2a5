package ask

import (
	"fmt"
	"io"
)

// renderer draws the line editor: one prompt line with the input buffer and
// cursor, optionally followed by a completion candidate list. It tracks how
// many lines the previous frame used so each redraw cleans up after itself.
type renderer struct {
	output    io.Writer
	styles    *Styles
	lastLines int
}

func newRenderer(output io.Writer, styles *Styles) *renderer {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &renderer{output: output, styles: styles}
}

// maxSuggestions caps the rendered candidate list.
const maxSuggestions = 10

// render draws the prompt line and positions the cursor.
func (r *renderer) render(prompt, input string, cursor int) error {
	return r.renderWithSuggestions(prompt, input, cursor, nil, 0)
}

// renderWithSuggestions draws the prompt line plus up to maxSuggestions
// completion candidates, highlighting the selected one, and moves the
// cursor back onto the input line.
func (r *renderer) renderWithSuggestions(prompt, input string, cursor int, suggestions []string, selected int) error {
	r.clearPreviousLines()

	if _, err := fmt.Fprint(r.output, "\r\x1b[K"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(r.output, r.styles.Prompt.Render(prompt)); err != nil {
		return err
	}
	if _, err := fmt.Fprint(r.output, r.styles.Input.Render(input)); err != nil {
		return err
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	for i, s := range suggestions {
		if _, err := fmt.Fprint(r.output, "\r\n\x1b[K"); err != nil {
			return err
		}
		if i == selected {
			if _, err := fmt.Fprint(r.output, r.styles.Selected.Render("> "+s)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprint(r.output, r.styles.Suggestion.Render("  "+s)); err != nil {
			return err
		}
	}

	// Move back up onto the input line and re-position the cursor.
	if len(suggestions) > 0 {
		if _, err := fmt.Fprintf(r.output, "\x1b[%dA", len(suggestions)); err != nil {
			return err
		}
	}
	r.positionCursor(prompt, input, cursor)

	r.lastLines = 1 + len(suggestions)
	return nil
}

// overwriteLine moves back up onto the just-submitted question line and
// erases it. Used for overwrite-prompt questions after a successful answer.
func (r *renderer) overwriteLine() {
	fmt.Fprint(r.output, "\x1b[1A\r\x1b[K")
}

// clearPreviousLines wipes leftover suggestion lines from the last frame.
func (r *renderer) clearPreviousLines() {
	if r.lastLines <= 1 {
		return
	}
	for i := 0; i < r.lastLines-1; i++ {
		fmt.Fprint(r.output, "\x1b[E\x1b[K")
	}
	fmt.Fprintf(r.output, "\x1b[%dA\r", r.lastLines-1)
}

// positionCursor places the terminal cursor at the logical cursor offset
// within the input, after the prompt.
func (r *renderer) positionCursor(prompt, input string, cursor int) {
	inputLen := len([]rune(input))
	if cursor > inputLen {
		cursor = inputLen
	}
	if after := inputLen - cursor; after > 0 {
		fmt.Fprintf(r.output, "\x1b[%dD", after)
	}
}
