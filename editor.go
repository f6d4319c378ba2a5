package ask

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// lineEditor is the interactive reader used when a question enables
// UseEditor: cursor movement, line editing, Tab completion against the
// question's choices, and arrow-key history navigation. Single line only;
// the caller owns raw mode.
type lineEditor struct {
	terminal terminalInterface
	renderer *renderer
	keyMap   *KeyMap
	history  []string

	buffer []rune
	cursor int
}

func newLineEditor(terminal terminalInterface, renderer *renderer, keyMap *KeyMap, history []string) *lineEditor {
	if keyMap == nil {
		keyMap = NewDefaultKeyMap()
	}
	return &lineEditor{
		terminal: terminal,
		renderer: renderer,
		keyMap:   keyMap,
		history:  history,
	}
}

// Run reads one line for q, returning the submitted text without a trailing
// newline. Ctrl+C returns ErrInterrupted, exhausted input or Ctrl+D on an
// empty buffer returns ErrEOF.
func (e *lineEditor) Run(ctx context.Context, q *Question, prompt string) (string, error) {
	e.buffer = nil
	e.cursor = 0

	historyIndex := len(e.history)
	var suggestions []string
	selected := 0

	if err := e.render(q, prompt, suggestions, selected); err != nil {
		return "", err
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		r, _, err := e.terminal.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		var action KeyAction
		if r == '\x1b' {
			seq, err := e.readEscapeSequence()
			if err != nil {
				continue
			}
			action = e.keyMap.GetSequenceAction(seq)
		} else {
			action = e.keyMap.GetAction(r)
		}

		switch action {
		case ActionSubmit:
			if len(suggestions) > 0 {
				e.setBuffer(suggestions[selected])
				suggestions = nil
			} else {
				fmt.Fprint(e.renderer.output, "\r\n")
				return string(e.buffer), nil
			}

		case ActionCancel:
			fmt.Fprint(e.renderer.output, "^C\r\n")
			return "", ErrInterrupted

		case ActionMoveLeft:
			if e.cursor > 0 {
				e.cursor--
			}

		case ActionMoveRight:
			if len(suggestions) > 0 {
				e.setBuffer(suggestions[selected])
				suggestions = nil
			} else if e.cursor < len(e.buffer) {
				e.cursor++
			}

		case ActionMoveHome:
			e.cursor = 0

		case ActionMoveEnd:
			e.cursor = len(e.buffer)

		case ActionMoveWordLeft:
			e.cursor = e.wordBoundary(-1)

		case ActionMoveWordRight:
			e.cursor = e.wordBoundary(1)

		case ActionDeleteChar:
			if r == '\x7f' || r == '\b' {
				if e.cursor > 0 {
					e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
					e.cursor--
					suggestions = nil
				}
			} else if e.cursor < len(e.buffer) {
				e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
				suggestions = nil
			}

		case ActionDeleteLine:
			e.buffer = nil
			e.cursor = 0
			suggestions = nil

		case ActionDeleteToEnd:
			e.buffer = e.buffer[:e.cursor]
			suggestions = nil

		case ActionDeleteWordBack:
			if e.cursor > 0 {
				pos := e.wordBoundary(-1)
				e.buffer = append(e.buffer[:pos], e.buffer[e.cursor:]...)
				e.cursor = pos
				suggestions = nil
			}

		case ActionComplete:
			if len(suggestions) > 1 {
				// Repeated Tab cycles through the candidates.
				selected = (selected + 1) % len(suggestions)
				break
			}
			candidates := prefixMatches(q.Selection(), string(e.buffer), q.CaseFold)
			switch len(candidates) {
			case 0:
			case 1:
				e.setBuffer(candidates[0])
				suggestions = nil
			default:
				suggestions = candidates
				selected = 0
			}

		case ActionHistoryUp:
			if historyIndex > 0 {
				historyIndex--
				e.setBuffer(e.history[historyIndex])
				suggestions = nil
			}

		case ActionHistoryDown:
			if historyIndex < len(e.history) {
				historyIndex++
				if historyIndex == len(e.history) {
					e.setBuffer("")
				} else {
					e.setBuffer(e.history[historyIndex])
				}
				suggestions = nil
			}

		default:
			if r == '\x04' { // Ctrl+D
				if len(e.buffer) == 0 {
					return "", ErrEOF
				}
				break
			}
			if r == '\t' {
				continue
			}
			if r >= 32 && r < 127 || r > 127 { // printable
				if q.Limit > 0 && len(e.buffer) >= q.Limit {
					break
				}
				e.insertRune(r)
				suggestions = nil
				historyIndex = len(e.history)
			}
		}

		if err := e.render(q, prompt, suggestions, selected); err != nil {
			return "", err
		}
	}
}

// render draws the current editor state, honoring the question's echo
// settings.
func (e *lineEditor) render(q *Question, prompt string, suggestions []string, selected int) error {
	return e.renderer.renderWithSuggestions(prompt, e.display(q), e.displayCursor(q), suggestions, selected)
}

// display is the echoed form of the buffer: verbatim, masked, or hidden.
func (e *lineEditor) display(q *Question) string {
	if !q.Echo {
		return ""
	}
	if q.EchoMask != 0 {
		return strings.Repeat(string(q.EchoMask), len(e.buffer))
	}
	return string(e.buffer)
}

func (e *lineEditor) displayCursor(q *Question) int {
	if !q.Echo {
		return 0
	}
	return e.cursor
}

func (e *lineEditor) insertRune(r rune) {
	e.buffer = append(e.buffer[:e.cursor], append([]rune{r}, e.buffer[e.cursor:]...)...)
	e.cursor++
}

func (e *lineEditor) setBuffer(text string) {
	e.buffer = []rune(text)
	e.cursor = len(e.buffer)
}

// wordBoundary finds the previous (direction < 0) or next word start for
// word movement and Ctrl+W deletion.
func (e *lineEditor) wordBoundary(direction int) int {
	if direction > 0 {
		pos := e.cursor
		for pos < len(e.buffer) && !isWordChar(e.buffer[pos]) {
			pos++
		}
		for pos < len(e.buffer) && isWordChar(e.buffer[pos]) {
			pos++
		}
		return pos
	}
	pos := e.cursor
	if pos > 0 {
		pos--
	}
	for pos > 0 && !isWordChar(e.buffer[pos]) {
		pos--
	}
	for pos > 0 && isWordChar(e.buffer[pos-1]) {
		pos--
	}
	return pos
}

// isWordChar follows the usual editor convention: alphanumerics and
// underscore are word characters.
func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

// readEscapeSequence consumes the remainder of an ESC sequence, bounded to
// avoid runaway reads on malformed input.
func (e *lineEditor) readEscapeSequence() (string, error) {
	seq := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		r, _, err := e.terminal.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		// CSI sequences end with a final byte: a letter or '~'.
		if len(seq) >= 2 && (r == '~' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')) {
			return string(seq), nil
		}
	}
	return string(seq), nil
}
