package ask

import "io"

// mockTerminal implements terminalInterface for tests: it replays a scripted
// input sequence and returns io.EOF once exhausted, tracking raw-mode state
// so tests can verify restoration.
type mockTerminal struct {
	input    []rune
	pos      int
	rawMode  bool
	size     [2]int
	closed   bool
	restores int
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input: []rune(input),
		size:  [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	m.restores++
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.size[0], m.size[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.pos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.pos]
	m.pos++
	return r, 1, nil
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}

// feed appends more scripted input, letting multi-question tests stage
// answers incrementally.
func (m *mockTerminal) feed(input string) {
	m.input = append(m.input, []rune(input)...)
}
