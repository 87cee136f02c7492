// Package persona holds the fixed role-playing instructions for the two
// LLM-driven game agents.
package persona

import "fmt"

// Mode selects which kind of respondent the AI player pretends to be.
type Mode string

const (
	ModeHuman Mode = "human"
	ModeAI    Mode = "AI"
)

// DefaultMode is the mode the AI player starts in.
const DefaultMode = ModeHuman

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeHuman, ModeAI:
		return Mode(s), true
	}
	return "", false
}

// InterrogatorRules is the interrogator's persona instruction.
const InterrogatorRules = "You are an assistant in a reverse turing test game. " +
	"Your role is to engage with two players (Player A and Player B) by asking " +
	"them questions and analyzing their responses. One player is human and one " +
	"is an AI System. Your task is to determine which is human and which is an " +
	"AI System. Player A's messages will be prefixed with 'Player A:' and " +
	"Player B's will be prefixed with 'Player B:'."

// QuestionPrompt instructs the interrogator to pose its next question.
const QuestionPrompt = "Ask a question to both players. The question can be " +
	"completely new or it can be related to the previous questions or responses."

// FinalPrompt instructs the interrogator to deliver its verdict.
const FinalPrompt = "Analyze the responses from both players and determine " +
	"which user is an AI system and which is human."

// PlayerRules builds the AI player's persona instruction for the given mode.
func PlayerRules(mode Mode) string {
	return fmt.Sprintf("You are a player in a reverse turing test game. Your "+
		"goal is to convince the user that you are an %s by responding to the "+
		"user's questions.", mode)
}
