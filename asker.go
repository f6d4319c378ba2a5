package ask

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-colorable"
)

// Asker owns the terminal and drives questions through the resolution
// pipeline: read raw input, substitute the default, normalize, validate,
// range-check, convert, confirm, and gather. Recoverable failures re-prompt
// with the question's matching response message; EOF and interrupts
// propagate.
//
// An Asker is single-threaded: it serializes access to the terminal and
// must not be shared across concurrent prompts.
type Asker struct {
	terminal terminalInterface
	output   io.Writer
	styles   *Styles
	renderer *renderer
	keyMap   *KeyMap
	history  *history
}

// AskerOption configures an Asker.
type AskerOption func(*Asker)

// WithOutput redirects prompt output away from stdout.
func WithOutput(w io.Writer) AskerOption {
	return func(a *Asker) { a.output = w }
}

// WithStyles replaces the default lipgloss styles.
func WithStyles(styles *Styles) AskerOption {
	return func(a *Asker) { a.styles = styles }
}

// WithKeyMap replaces the line editor's default key bindings.
func WithKeyMap(keyMap *KeyMap) AskerOption {
	return func(a *Asker) { a.keyMap = keyMap }
}

// NewAsker opens the controlling terminal and returns an Asker ready to
// resolve questions. Close it when done to restore terminal state.
//
// Example:
//
//	a, err := ask.NewAsker()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer a.Close()
//
//	age, err := a.AskInt("Age?  ", ask.WithAbove(0), ask.WithBelow(130))
func NewAsker(opts ...AskerOption) (*Asker, error) {
	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return newAsker(terminal, output, opts...), nil
}

// newAsker wires an Asker around an arbitrary terminal. Tests use it with a
// mock terminal and a buffer.
func newAsker(terminal terminalInterface, output io.Writer, opts ...AskerOption) *Asker {
	a := &Asker{
		terminal: terminal,
		output:   output,
		history:  newHistory(defaultHistoryMax),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.styles == nil {
		a.styles = DefaultStyles()
	}
	if a.keyMap == nil {
		a.keyMap = NewDefaultKeyMap()
	}
	a.renderer = newRenderer(a.output, a.styles)
	return a
}

// Close restores the terminal and releases it. Safe to call more than once.
func (a *Asker) Close() error {
	if a.terminal == nil {
		return nil
	}
	if err := a.terminal.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to restore terminal: %v\n", err)
	}
	return a.terminal.Close()
}

// Ask resolves q with a background context. See AskContext.
func (a *Asker) Ask(q *Question) (any, error) {
	return a.AskContext(context.Background(), q)
}

// AskContext resolves q to a converted, validated, in-range answer,
// retrying on recoverable failures until the input is acceptable or the
// input stream ends. Gathering questions resolve to a []any, a keyed
// map[string]any, or - under verify-match - the single shared answer.
//
// The successful result is also stored in q.Answer.
func (a *Asker) AskContext(ctx context.Context, q *Question) (any, error) {
	if q.gather.mode != GatherNone {
		return a.gatherAnswers(ctx, q)
	}
	return a.askOne(ctx, q, "")
}

// AskString asks a KindString question built from template and opts.
func (a *Asker) AskString(template string, opts ...Option) (string, error) {
	v, err := a.Ask(New(template, KindString, opts...))
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// AskInt asks a KindInt question built from template and opts.
func (a *Asker) AskInt(template string, opts ...Option) (int, error) {
	v, err := a.Ask(New(template, KindInt, opts...))
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// AskFloat asks a KindFloat question built from template and opts.
func (a *Asker) AskFloat(template string, opts ...Option) (float64, error) {
	v, err := a.Ask(New(template, KindFloat, opts...))
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// askOne runs the single-answer protocol: resolve, then confirm if asked,
// re-running resolution when the confirmation is rejected.
func (a *Asker) askOne(ctx context.Context, q *Question, key string) (any, error) {
	prompt, err := renderTemplate(q.Template, renderContext{Question: q, Key: key, Default: q.Default})
	if err != nil {
		return nil, fmt.Errorf("failed to render question template: %w", err)
	}

	current := prompt
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		v, err := a.resolveOnce(ctx, q, current)
		if err != nil {
			if !recoverable(err) {
				return nil, err
			}
			a.explainError(q, err)
			current = a.retryPrompt(q, prompt)
			continue
		}

		if q.Confirm {
			ok, err := a.confirmAnswer(ctx, q, v)
			if err != nil {
				return nil, err
			}
			if !ok {
				current = prompt
				continue
			}
		}

		q.Answer = v
		if q.OverwritePrompt {
			a.renderer.overwriteLine()
		}
		return v, nil
	}
}

// resolveOnce performs one pass of the pipeline: read, default, normalize,
// validate, convert, range-check.
func (a *Asker) resolveOnce(ctx context.Context, q *Question, prompt string) (any, error) {
	raw, err := a.readAnswer(ctx, q, prompt)
	if err != nil {
		return nil, err
	}

	answer := q.AnswerOrDefault(raw)
	if q.Character == CharacterNone {
		// Single-character reads bypass normalization.
		answer = q.FormatAnswer(answer)
	}

	if !q.ValidAnswer(answer) {
		return nil, ErrNotValid
	}
	v, err := q.Convert(answer)
	if err != nil {
		return nil, err
	}
	if err := q.CheckRange(v); err != nil {
		return nil, err
	}

	if q.Echo && q.EchoMask == 0 && q.Character == CharacterNone {
		a.history.add(answer)
	}
	return v, nil
}

// readAnswer obtains raw input: the armed first answer if present,
// otherwise the configured read mode. A consumed first answer still flows
// through the downstream pipeline stages.
func (a *Asker) readAnswer(ctx context.Context, q *Question, prompt string) (string, error) {
	if s, ok := q.TakeFirstAnswer(); ok {
		return s, nil
	}

	switch {
	case q.Character == CharacterGetc:
		a.printPrompt(prompt)
		return a.readGetc()
	case q.Character == CharacterFull:
		a.printPrompt(prompt)
		return a.readFullChar(q)
	case q.UseEditor:
		return a.readWithEditor(ctx, q, prompt)
	default:
		a.printPrompt(prompt)
		return a.readLine(ctx, q)
	}
}

func (a *Asker) printPrompt(prompt string) {
	fmt.Fprint(a.output, a.styles.Prompt.Render(prompt))
}

// readGetc reads one buffered character without touching terminal modes.
func (a *Asker) readGetc() (string, error) {
	r, _, err := a.terminal.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrEOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(r), nil
}

// readFullChar reads exactly one character in raw mode, honoring the echo
// settings.
func (a *Asker) readFullChar(q *Question) (string, error) {
	if err := a.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer a.restoreQuietly()

	r, _, err := a.terminal.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrEOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	switch r {
	case '\x03':
		return "", ErrInterrupted
	case '\x04':
		return "", ErrEOF
	}

	a.echoRune(q, r)
	fmt.Fprint(a.output, "\r\n")
	return string(r), nil
}

// readLine reads a full line in raw mode: backspace editing, echo masking,
// and the question's character limit (reaching the limit submits). The
// returned line has no trailing terminator.
func (a *Asker) readLine(ctx context.Context, q *Question) (string, error) {
	if err := a.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer a.restoreQuietly()

	var buffer []rune
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		r, _, err := a.terminal.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		switch r {
		case '\r', '\n':
			fmt.Fprint(a.output, "\r\n")
			return string(buffer), nil
		case '\x03': // Ctrl+C
			fmt.Fprint(a.output, "^C\r\n")
			return "", ErrInterrupted
		case '\x04': // Ctrl+D
			if len(buffer) == 0 {
				return "", ErrEOF
			}
		case '\x7f', '\b':
			if len(buffer) > 0 {
				buffer = buffer[:len(buffer)-1]
				if q.Echo {
					fmt.Fprint(a.output, "\b \b")
				}
			}
		default:
			if r < 32 {
				continue
			}
			buffer = append(buffer, r)
			a.echoRune(q, r)
			if q.Limit > 0 && len(buffer) >= q.Limit {
				fmt.Fprint(a.output, "\r\n")
				return string(buffer), nil
			}
		}
	}
}

// readWithEditor reads a line through the interactive line editor.
func (a *Asker) readWithEditor(ctx context.Context, q *Question, prompt string) (string, error) {
	if err := a.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer a.restoreQuietly()

	editor := newLineEditor(a.terminal, a.renderer, a.keyMap, a.history.all())
	return editor.Run(ctx, q, a.styles.Prompt.Render(prompt))
}

// echoRune writes the echoed form of r: verbatim, masked, or nothing.
func (a *Asker) echoRune(q *Question, r rune) {
	if !q.Echo {
		return
	}
	if q.EchoMask != 0 {
		fmt.Fprint(a.output, string(q.EchoMask))
		return
	}
	fmt.Fprint(a.output, string(r))
}

func (a *Asker) restoreQuietly() {
	if err := a.terminal.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to exit raw mode: %v\n", err)
	}
}

// explainError prints the response message matching a recoverable failure.
func (a *Asker) explainError(q *Question, err error) {
	text, ok := q.Responses[responseKeyFor(err)]
	if !ok || text == "" {
		text = err.Error()
	}
	fmt.Fprint(a.output, a.styles.Error.Render(text)+"\n")
}

// retryPrompt picks the prompt for a re-ask: the ask_on_error text, or the
// full question again when ask_on_error is set to ResponseAskQuestion.
func (a *Asker) retryPrompt(q *Question, prompt string) string {
	onError := q.Responses[ResponseAskOnError]
	if onError == ResponseAskQuestion {
		return prompt
	}
	return onError
}

// responseKeyFor maps a recoverable error to its response message key.
func responseKeyFor(err error) ResponseKey {
	switch {
	case errors.Is(err, ErrNotValid):
		return ResponseNotValid
	case errors.Is(err, ErrNotInRange):
		return ResponseNotInRange
	case errors.Is(err, ErrInvalidType):
		return ResponseInvalidType
	case errors.Is(err, ErrNoCompletion):
		return ResponseNoCompletion
	case errors.Is(err, ErrAmbiguousCompletion):
		return ResponseAmbiguousCompletion
	case errors.Is(err, ErrMismatch):
		return ResponseMismatch
	}
	return ResponseAskOnError
}

// confirmAnswer renders the confirmation and reads a yes/no reply,
// re-asking until the reply is one of y/yes/n/no.
func (a *Asker) confirmAnswer(ctx context.Context, q *Question, answer any) (bool, error) {
	text := "Are you sure?  "
	if q.ConfirmTemplate != "" {
		rendered, err := renderTemplate(q.ConfirmTemplate, renderContext{Question: q, Answer: answer, Default: q.Default})
		if err != nil {
			return false, fmt.Errorf("failed to render confirmation template: %w", err)
		}
		text = rendered
	}

	reply := &Question{Echo: true}
	for {
		a.printPrompt(text)
		raw, err := a.readLine(ctx, reply)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// gatherAnswers collects repeated answers per the question's gather mode,
// restarting the whole gather when verify-match finds a disagreement.
func (a *Asker) gatherAnswers(ctx context.Context, q *Question) (any, error) {
	for {
		result, flat, err := a.gatherOnce(ctx, q)
		if err != nil {
			return nil, err
		}

		if q.VerifyMatch {
			if !allEqual(flat) {
				a.explainError(q, ErrMismatch)
				continue
			}
			// Verified gathers resolve to the single shared answer.
			var v any
			if len(flat) > 0 {
				v = flat[0]
			}
			q.Answer = v
			return v, nil
		}

		q.Answer = result
		return result, nil
	}
}

// gatherOnce runs one full collection pass, returning both the shaped
// result and the flat answer list used for verify-match.
func (a *Asker) gatherOnce(ctx context.Context, q *Question) (any, []any, error) {
	switch q.gather.mode {
	case GatherCount:
		answers := make([]any, 0, q.gather.count)
		for i := 0; i < q.gather.count; i++ {
			v, err := a.askOne(ctx, q, "")
			if err != nil {
				return nil, nil, err
			}
			answers = append(answers, v)
		}
		return answers, answers, nil

	case GatherUntil:
		var answers []any
		for {
			v, err := a.askOne(ctx, q, "")
			if err != nil {
				return nil, nil, err
			}
			if q.gather.terminates(fmt.Sprint(v)) {
				// The terminator is excluded from the results.
				return answers, answers, nil
			}
			answers = append(answers, v)
		}

	case GatherKeyed:
		result := make(map[string]any, len(q.gather.keys))
		flat := make([]any, 0, len(q.gather.keys))
		for _, key := range q.gather.keys {
			v, err := a.askOne(ctx, q, key)
			if err != nil {
				return nil, nil, err
			}
			result[key] = v
			flat = append(flat, v)
		}
		return result, flat, nil

	default:
		return nil, nil, fmt.Errorf("unsupported gather mode %d", q.gather.mode)
	}
}

// allEqual reports whether every gathered answer matches the first.
func allEqual(answers []any) bool {
	for i := 1; i < len(answers); i++ {
		if !equalValues(answers[0], answers[i]) {
			return false
		}
	}
	return true
}
