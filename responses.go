package ask

import (
	"fmt"
	"regexp"
	"strings"
)

// ResponseKey names a user-facing message shown on a specific failure
// condition during the ask loop.
type ResponseKey string

// The seven standard response keys. All are populated after New and after
// every DeriveResponses or RefreshResponses call.
const (
	ResponseAmbiguousCompletion ResponseKey = "ambiguous_completion"
	ResponseAskOnError          ResponseKey = "ask_on_error"
	ResponseInvalidType         ResponseKey = "invalid_type"
	ResponseNoCompletion        ResponseKey = "no_completion"
	ResponseNotInRange          ResponseKey = "not_in_range"
	ResponseMismatch            ResponseKey = "mismatch"
	ResponseNotValid            ResponseKey = "not_valid"
)

// ResponseAskQuestion is a special ask_on_error value: instead of printing
// fixed text before retrying, the ask loop re-renders the whole question.
const ResponseAskQuestion = "question"

// DeriveResponses (re)derives the standard response messages from the
// current settings. Messages the caller overrode with WithResponse keep their
// explicit text. A plain default value is first folded into the template as
// a visible "|default|" marker.
//
// New calls this once at construction time.
func (q *Question) DeriveResponses() {
	q.appendDefault()
	derived := q.buildResponses()
	for key, text := range derived {
		if override, ok := q.overrides[key]; ok {
			q.Responses[key] = override
			continue
		}
		q.Responses[key] = text
	}
}

// RefreshResponses rederives the standard response messages, letting the
// fresh text win over any explicit overrides. Use it after changing
// settings (choices, bounds, default) on an already-constructed question so
// stale message text does not survive the change.
func (q *Question) RefreshResponses() {
	q.appendDefault()
	for key, text := range q.buildResponses() {
		q.Responses[key] = text
	}
}

// buildResponses derives the seven standard messages from the current
// choice list, kind, and range settings.
func (q *Question) buildResponses() map[ResponseKey]string {
	source := q.messageSource()
	return map[ResponseKey]string{
		ResponseAmbiguousCompletion: "Ambiguous choice.  Please choose one of " + source + ".",
		ResponseAskOnError:          "?  ",
		ResponseInvalidType:         "You must enter a valid " + source + ".",
		ResponseNoCompletion:        "You must choose one of " + source + ".",
		ResponseNotInRange:          fmt.Sprintf("Your answer isn't within the expected range (%s).", q.ExpectedRange()),
		ResponseMismatch:            "Your entries didn't match.",
		ResponseNotValid:            "Your answer isn't valid (must match the provided validation).",
	}
}

// messageSource describes the expected answer in derived messages: the
// choice list as "[a, b, c]" when one is configured, the kind name
// otherwise.
func (q *Question) messageSource() string {
	if selection := q.Selection(); len(selection) > 0 {
		return "[" + strings.Join(selection, ", ") + "]"
	}
	return q.Kind.String()
}

// ExpectedRange renders the configured bounds as human-readable text:
// "above X", "below Y" and "included in Z" joined with commas and a
// trailing "and". Empty when no bound is set.
func (q *Question) ExpectedRange() string {
	var clauses []string
	if q.Above != nil {
		clauses = append(clauses, fmt.Sprintf("above %v", q.Above))
	}
	if q.Below != nil {
		clauses = append(clauses, fmt.Sprintf("below %v", q.Below))
	}
	if len(q.In) > 0 {
		members := make([]string, 0, len(q.In))
		for _, m := range q.In {
			members = append(members, fmt.Sprint(m))
		}
		clauses = append(clauses, "included in ["+strings.Join(members, ", ")+"]")
	}

	switch len(clauses) {
	case 0:
		return ""
	case 1:
		return clauses[0]
	case 2:
		return clauses[0] + " and " + clauses[1]
	default:
		return strings.Join(clauses[:len(clauses)-1], ", ") + ", and " + clauses[len(clauses)-1]
	}
}

var trailingHorizontalWS = regexp.MustCompile(`[\t ]+$`)

// appendDefault folds the default value into the template so the user can
// see it, preserving trailing whitespace formatting. Runs at most once.
func (q *Question) appendDefault() {
	if q.Default == "" || q.defaultAppended {
		return
	}
	q.defaultAppended = true

	marker := "|" + q.Default + "|"
	switch {
	case trailingHorizontalWS.MatchString(q.Template):
		loc := trailingHorizontalWS.FindStringIndex(q.Template)
		q.Template = q.Template[:loc[0]] + marker + q.Template[loc[0]:]
	case q.Template == "":
		q.Template = marker + "  "
	case strings.HasSuffix(q.Template, "\n"):
		q.Template = q.Template[:len(q.Template)-1] + "  " + marker + "\n"
	default:
		q.Template += "  " + marker
	}
}
