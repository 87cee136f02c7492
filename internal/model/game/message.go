package game

// Role identifies the author of a transcript message.
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Slot labels a respondent (Player A or Player B) for one game.
type Slot string

const (
	SlotA Slot = "A"
	SlotB Slot = "B"
)

// Message is a single turn in an agent's transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered message history replayed to the completion
// capability on every request. The first element is always the persona
// instruction; it survives resets.
type Transcript struct {
	messages []Message
}

// NewTranscript seeds a transcript with the persona instruction.
func NewTranscript(persona string) *Transcript {
	return &Transcript{
		messages: []Message{{Role: RoleDeveloper, Content: persona}},
	}
}

// Append adds a message to the end of the history. Growth is unbounded
// within a game.
func (t *Transcript) Append(role Role, content string) {
	t.messages = append(t.messages, Message{Role: role, Content: content})
}

// Reset truncates the history back to the persona instruction.
func (t *Transcript) Reset() {
	t.messages = t.messages[:1]
}

// Len reports the number of messages in the history.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Messages returns a copy of the history.
func (t *Transcript) Messages() []Message {
	copied := make([]Message, len(t.messages))
	copy(copied, t.messages)
	return copied
}
