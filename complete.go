package ask

import "strings"

// completeChoice resolves partial to the unique candidate it unambiguously
// prefixes. An exact full match always wins, even when the partial is also a
// prefix of other candidates ("g" completes to "g" over "green"). Matching is
// case-sensitive unless fold is true.
//
// The returned errors (ErrNoCompletion, ErrAmbiguousCompletion) are internal
// to the ask loop, which surfaces them through the question's no_completion
// and ambiguous_completion responses.
func completeChoice(candidates []string, partial string, fold bool) (string, error) {
	needle := partial
	if fold {
		needle = strings.ToLower(partial)
	}

	var matches []string
	for _, c := range candidates {
		hay := c
		if fold {
			hay = strings.ToLower(c)
		}
		if hay == needle {
			return c, nil
		}
		if strings.HasPrefix(hay, needle) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrNoCompletion
	case 1:
		return matches[0], nil
	default:
		return "", ErrAmbiguousCompletion
	}
}

// prefixMatches returns every candidate that partial prefixes, preserving
// candidate order. Used by the line editor to build Tab suggestions.
func prefixMatches(candidates []string, partial string, fold bool) []string {
	needle := partial
	if fold {
		needle = strings.ToLower(partial)
	}
	var matches []string
	for _, c := range candidates {
		hay := c
		if fold {
			hay = strings.ToLower(c)
		}
		if strings.HasPrefix(hay, needle) {
			matches = append(matches, c)
		}
	}
	return matches
}
