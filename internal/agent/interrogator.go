package agent

import (
	"fmt"

	"github.com/cloudwego/eino/components/model"

	"github.com/rttlabs/rtt/internal/model/game"
	"github.com/rttlabs/rtt/internal/persona"
)

// Interrogator poses questions to both players and issues the final
// human-or-AI verdict.
type Interrogator struct {
	*Chat
}

// NewInterrogator builds an interrogator with its fixed rules.
func NewInterrogator(client model.BaseChatModel) *Interrogator {
	return &Interrogator{Chat: NewChat(client, persona.InterrogatorRules)}
}

// RecordPlayerMessage appends a player's answer, prefixed with its slot
// label so the interrogator can tell the respondents apart.
func (i *Interrogator) RecordPlayerMessage(content string, slot game.Slot) {
	i.Append(game.RoleUser, fmt.Sprintf("Player %s: %s", slot, content))
}

// RecordOwnMessage appends the interrogator's own question or analysis.
func (i *Interrogator) RecordOwnMessage(content string) {
	i.Append(game.RoleAssistant, content)
}

// InjectQuestionPrompt appends the fixed instruction asking for the next
// question.
func (i *Interrogator) InjectQuestionPrompt() {
	i.Append(game.RoleDeveloper, persona.QuestionPrompt)
}

// InjectFinalPrompt appends the fixed instruction asking for the verdict.
func (i *Interrogator) InjectFinalPrompt() {
	i.Append(game.RoleDeveloper, persona.FinalPrompt)
}
