// Package session drives one full reverse-Turing-test game between the
// interrogator, the AI player and the human.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/rttlabs/rtt/internal/agent"
	"github.com/rttlabs/rtt/internal/model/game"
	"github.com/rttlabs/rtt/internal/store"
)

// ErrAborted reports that a completion failure ended the game early. No
// record is saved.
var ErrAborted = errors.New("game aborted")

// IO is the session's view of the human player. Reads block until input is
// available; validation reprompts until satisfied.
type IO interface {
	// Present displays an interrogator utterance to the human.
	Present(prefix, message string)
	// ReadAnswer collects a non-empty printable answer from the human.
	ReadAnswer(prompt string) (string, error)
	// Printf writes game status lines.
	Printf(format string, args ...any)
}

// Config carries per-game parameters set through the shell.
type Config struct {
	Rounds   int
	Username string
}

// Session owns the two agents for the duration of one game. Exactly one
// session runs at a time; nothing here is safe for concurrent use.
type Session struct {
	interrogator *agent.Interrogator
	player       *agent.Player
	records      store.Store
	io           IO

	coin func() bool // true assigns the human to slot A
	now  func() time.Time
}

// New wires a session around already-configured agents.
func New(interrogator *agent.Interrogator, player *agent.Player, records store.Store, io IO) *Session {
	return &Session{
		interrogator: interrogator,
		player:       player,
		records:      records,
		io:           io,
		coin:         func() bool { return rand.IntN(2) == 0 },
		now:          time.Now,
	}
}

// Run plays a complete game: reset both transcripts, assign slots, play the
// configured rounds, collect the verdict and persist the record. Any
// completion failure aborts without saving; a storage failure is reported
// but does not fail the finished game.
func (s *Session) Run(ctx context.Context, cfg Config) error {
	s.interrogator.Reset()
	s.player.Reset()

	humanSlot, aiSlot := game.SlotA, game.SlotB
	if !s.coin() {
		humanSlot, aiSlot = game.SlotB, game.SlotA
	}
	s.io.Printf("\nStarting Reverse Turing Test game. You are Player %s.\n", humanSlot)

	for round := 1; round <= cfg.Rounds; round++ {
		s.io.Printf("\n=== Round %d/%d ===\n", round, cfg.Rounds)
		if err := s.playRound(ctx, humanSlot, aiSlot); err != nil {
			return err
		}
	}

	s.interrogator.InjectFinalPrompt()
	verdict, err := s.interrogator.Complete(ctx, agent.DefaultTemperature)
	if err != nil {
		return s.abort(err)
	}
	s.io.Present("\n(Interrogator's Analysis): ", verdict)
	s.interrogator.RecordOwnMessage(verdict)

	if path, err := s.save(humanSlot, cfg.Username); err != nil {
		// The finished game survives in memory; only the artifact is missing.
		s.io.Printf("\nError saving conversation: %v\n", err)
		log.Printf("[session] record not persisted: %v", err)
	} else {
		s.io.Printf("\nConversation saved to %s\n", path)
	}
	return nil
}

// playRound runs one question/answer exchange. Ordering is strict: question
// generation, then human answer, then AI answer, then recording.
func (s *Session) playRound(ctx context.Context, humanSlot, aiSlot game.Slot) error {
	s.interrogator.InjectQuestionPrompt()
	question, err := s.interrogator.Complete(ctx, agent.DefaultTemperature)
	if err != nil {
		return s.abort(err)
	}

	s.interrogator.RecordOwnMessage(question)
	s.player.RecordInterrogatorMessage(question)
	s.io.Present("(Interrogator): ", question)

	humanAnswer, err := s.io.ReadAnswer(fmt.Sprintf("(Player %s): ", humanSlot))
	if err != nil {
		return s.abort(err)
	}

	aiAnswer, err := s.player.Complete(ctx, agent.DefaultTemperature)
	if err != nil {
		return s.abort(err)
	}

	// The interrogator always reads answers in slot order, A before B, so
	// arrival order carries no hint about which slot is human.
	if humanSlot == game.SlotA {
		s.interrogator.RecordPlayerMessage(humanAnswer, humanSlot)
		s.interrogator.RecordPlayerMessage(aiAnswer, aiSlot)
	} else {
		s.interrogator.RecordPlayerMessage(aiAnswer, aiSlot)
		s.interrogator.RecordPlayerMessage(humanAnswer, humanSlot)
	}

	// The player keeps only its own side of the exchange. The human's
	// literal answer never enters its transcript; it sees the human only
	// through the interrogator's follow-up questions.
	s.player.RecordOwnMessage(aiAnswer)
	return nil
}

func (s *Session) abort(cause error) error {
	s.io.Printf("\n%v\n", cause)
	log.Printf("[session] aborting without a saved record: %v", cause)
	return fmt.Errorf("%w: %v", ErrAborted, cause)
}

func (s *Session) save(humanSlot game.Slot, username string) (string, error) {
	rec := game.Record{
		Timestamp:              s.now().Format(game.TimestampLayout),
		HumanRole:              humanSlot,
		Username:               username,
		InterrogatorModel:      s.interrogator.Model(),
		AIPlayerModel:          s.player.Model(),
		AIPlayerMode:           string(s.player.Mode()),
		InterrogatorTranscript: s.interrogator.Transcript(),
		AIPlayerTranscript:     s.player.Transcript(),
	}
	return s.records.Save(rec)
}
