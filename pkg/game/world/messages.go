package world

const maxMessages = 5

// MessageLog keeps the most recent status lines shown by renderers.
type MessageLog struct {
	lines []string
}

// Add appends a message, keeping only the last few
func (m *MessageLog) Add(msg string) {
	m.lines = append(m.lines, msg)
	if len(m.lines) > maxMessages {
		m.lines = m.lines[len(m.lines)-maxMessages:]
	}
}

// Clear removes all messages
func (m *MessageLog) Clear() {
	m.lines = nil
}

// All returns a copy of the current messages, oldest first
func (m *MessageLog) All() []string {
	return append([]string(nil), m.lines...)
}
