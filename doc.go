// Package ask provides an interactive question/answer engine for
// command-line prompts.
//
// A Question bundles everything one prompt needs: the target answer type,
// validation rules, a default value, range bounds, whitespace and case
// normalization, auto-completion against a fixed choice set, optional
// confirmation, and multi-answer gathering. An Asker owns the terminal and
// drives questions through the resolution pipeline, re-prompting with the
// question's response messages until the input is acceptable.
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/ask"
//	)
//
//	func main() {
//		a, err := ask.NewAsker()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer a.Close()
//
//		age, err := a.AskInt("Age?  ",
//			ask.WithDefault("35"),
//			ask.WithAbove(0),
//			ask.WithBelow(130),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("You are %d years old.\n", age)
//	}
//
// Typed Answers:
//
// Every question converts its input to a target Kind after normalization
// and validation: strings, integers, floats, symbols, regular expressions,
// timestamps, files or paths resolved against a directory listing, members
// of a fixed choice set, or anything a custom parser produces:
//
//	q := ask.New("Launch when?  ", ask.KindTime)
//	when, err := a.Ask(q)
//
//	q = ask.New("Please choose a color: ", ask.KindChoices,
//		ask.WithChoices("red", "green", "blue"),
//	)
//	color, err := a.Ask(q) // "gr" auto-completes to "green"
//
// Validation, Ranges and Responses:
//
// Answers are normalized (whitespace and case policies), validated against
// a pattern or predicate, converted, and range-checked. Each failure kind
// has a response message derived from the question's settings; override any
// of them with WithResponse:
//
//	q := ask.New("Username?  ", ask.KindString,
//		ask.WithWhitespace(ask.WhitespaceStrip),
//		ask.WithCase(ask.CaseDown),
//		ask.WithPattern(regexp.MustCompile(`^[a-z_]+$`)),
//		ask.WithResponse(ask.ResponseNotValid, "Lowercase letters only."),
//	)
//
// Gathering:
//
// A question can collect several answers in one ask: a fixed count, until a
// terminator, or once per key:
//
//	q := ask.New("Enter a grade: ", ask.KindInt, ask.WithGatherCount(3))
//	grades, err := a.Ask(q) // []any of three ints
//
//	q = ask.New("{{.Key}}: ", ask.KindString,
//		ask.WithGatherKeys("name", "quest", "favorite color"),
//	)
//	replies, err := a.Ask(q) // map[string]any
//
// With WithVerifyMatch the gathered answers must agree and the ask resolves
// to the single shared answer - the classic password-confirmation flow:
//
//	q := ask.New("Passphrase: ", ask.KindString,
//		ask.WithEchoMask('*'),
//		ask.WithGatherCount(2),
//		ask.WithVerifyMatch(),
//	)
//
// Line Editor:
//
// WithEditor routes line input through an interactive editor with cursor
// movement, Tab completion against the question's choices, and arrow-key
// history over the session's previous answers. Bindings are customizable
// through a KeyMap.
//
// Error Handling:
//
//   - ask.ErrInterrupted: user pressed Ctrl+C
//   - ask.ErrEOF: input exhausted (Ctrl+D or closed pipe); never retried
//   - context.Canceled / context.DeadlineExceeded: context ended
//
// Recoverable pipeline failures (ErrNotValid, ErrNotInRange, ErrInvalidType,
// ErrNoCompletion, ErrAmbiguousCompletion, ErrMismatch) are handled inside
// the ask loop and never escape Ask.
//
// Thread Safety:
//
// Askers and Questions are not thread-safe: one Asker serializes access to
// one terminal, and each Question is consumed by exactly one ask cycle.
// Cancellation from another goroutine goes through AskContext.
package ask
