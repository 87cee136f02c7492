package agent

import (
	"github.com/cloudwego/eino/components/model"

	"github.com/rttlabs/rtt/internal/model/game"
	"github.com/rttlabs/rtt/internal/persona"
)

// Player is the AI respondent. Its mode is fixed at construction; switching
// modes means building a new Player with a fresh transcript.
type Player struct {
	*Chat
	mode persona.Mode
}

// NewPlayer builds an AI player whose persona is parameterized by mode.
func NewPlayer(client model.BaseChatModel, mode persona.Mode) *Player {
	return &Player{
		Chat: NewChat(client, persona.PlayerRules(mode)),
		mode: mode,
	}
}

// Mode returns the mode the player was constructed with.
func (p *Player) Mode() persona.Mode {
	return p.mode
}

// RecordInterrogatorMessage appends a question received from the
// interrogator.
func (p *Player) RecordInterrogatorMessage(content string) {
	p.Append(game.RoleUser, content)
}

// RecordOwnMessage appends the player's own prior answer for continuity.
func (p *Player) RecordOwnMessage(content string) {
	p.Append(game.RoleAssistant, content)
}
