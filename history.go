package ask

// history keeps the answers given during one Asker session so the line
// editor can navigate them with the arrow keys. Memory only and bounded;
// answers to echo-masked questions are never recorded.
type history struct {
	entries []string
	max     int
}

const defaultHistoryMax = 100

func newHistory(max int) *history {
	if max <= 0 {
		max = defaultHistoryMax
	}
	return &history{max: max}
}

// add records an answer, skipping empties and consecutive duplicates and
// trimming the oldest entries past the limit.
func (h *history) add(answer string) {
	if answer == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == answer {
		return
	}
	h.entries = append(h.entries, answer)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// all returns the recorded answers, oldest first.
func (h *history) all() []string {
	return h.entries
}
