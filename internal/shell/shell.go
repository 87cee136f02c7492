// Package shell implements the interactive command loop that hosts the
// game: command dispatch, configuration, and all terminal input/output.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"github.com/rttlabs/rtt/internal/agent"
	"github.com/rttlabs/rtt/internal/config"
	"github.com/rttlabs/rtt/internal/persona"
	"github.com/rttlabs/rtt/internal/session"
	"github.com/rttlabs/rtt/internal/store"
)

// Shell is the line-oriented command dispatcher. It owns the two agents and
// replaces them wholesale when the credential or the player mode changes.
type Shell struct {
	cfg     *config.Config
	client  model.BaseChatModel
	records store.Store

	interrogator *agent.Interrogator
	player       *agent.Player

	prompter *Prompter
	writer   *Typewriter
	out      io.Writer

	rounds   int
	username string
}

// New builds a shell reading commands from in and writing to out. client may
// be nil when no credential is configured yet; 'configure token' supplies
// one later.
func New(cfg *config.Config, client model.BaseChatModel, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		cfg:          cfg,
		client:       client,
		records:      store.NewFileStore(cfg.Game.LogDir),
		interrogator: agent.NewInterrogator(client),
		player:       agent.NewPlayer(client, persona.DefaultMode),
		prompter:     NewPrompter(in, out),
		writer:       NewTypewriter(out, cfg.Game.TypingDelay),
		out:          out,
		rounds:       cfg.Game.Rounds,
		username:     cfg.Game.Username,
	}
}

// Run reads and dispatches commands until exit, EOF or a read error. The
// context cancels in-flight completion requests when the process is
// interrupted.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, headerStyle.Render(header))
	if s.client == nil {
		fmt.Fprintln(s.out, noticeStyle.Render("No OpenAI API token found. Use 'configure token' to set one."))
	}

	for {
		line, err := s.prompter.ReadLine(promptStyle.Render("(rtt) "))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Fprint(s.out, "\nPlease enter a valid command."+
				"\nRemember you can always type 'help' to list all commands.\n\n")
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "about":
			fmt.Fprint(s.out, about+"\n")
		case "help", "?":
			fmt.Fprint(s.out, help+"\n")
		case "start":
			s.handleStart(ctx)
		case "configure":
			s.handleConfigure(ctx, args)
		case "exit":
			return nil
		default:
			fmt.Fprintf(s.out, "\nSorry %s is not a recognized command."+
				"\nPlease enter a valid command."+
				"\nType 'help' to list all commands.\n\n", line)
		}
	}
}

func (s *Shell) handleStart(ctx context.Context) {
	if s.client == nil {
		fmt.Fprintln(s.out, noticeStyle.Render("No OpenAI API token configured. Use 'configure token' first."))
		return
	}

	sess := session.New(s.interrogator, s.player, s.records, s)
	err := sess.Run(ctx, session.Config{Rounds: s.rounds, Username: s.username})
	if err != nil && !errors.Is(err, session.ErrAborted) {
		fmt.Fprintf(s.out, "\nGame ended: %v\n", err)
	}
}

func (s *Shell) handleConfigure(ctx context.Context, args []string) {
	if len(args) != 1 {
		s.printInvalidArgs("configure")
		return
	}

	switch args[0] {
	case "token":
		s.configureToken(ctx)
	case "rounds":
		s.configureRounds()
	case "mode":
		s.configureMode()
	case "username":
		s.configureUsername()
	case "interrogator", "player":
		s.configureModel(args[0])
	default:
		s.printInvalidArgs("configure")
	}
}

// configureToken collects a credential and rebuilds both agents against a
// client constructed from it. The player mode resets to the default.
func (s *Shell) configureToken(ctx context.Context) {
	token, err := s.prompter.ReadSecret("Enter OpenAI API token: ")
	if err != nil {
		return
	}
	if !printable(token) {
		fmt.Fprint(s.out, "Invalid password entered.\n"+
			"Password must contain printable ascii characters only\n\n")
		return
	}

	ai := s.cfg.AI
	ai.APIKey = token
	client, err := ai.NewChatModel(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Could not configure the completion client: %v\n\n", err)
		return
	}

	s.cfg.AI = ai
	s.client = client
	s.interrogator = agent.NewInterrogator(client)
	s.player = agent.NewPlayer(client, persona.DefaultMode)
	log.Printf("[shell] completion client reconfigured")
	fmt.Fprint(s.out, "Successfully set OpenAI API token\n\n")
}

func (s *Shell) configureRounds() {
	line, err := s.prompter.ReadLine("Enter number of rounds: ")
	if err != nil {
		return
	}

	rounds, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprint(s.out, "Please enter a valid number for rounds.\n\n")
		return
	}
	if rounds < 1 || rounds > 5 {
		fmt.Fprint(s.out, "Please enter a number between 1 and 5.\n\n")
		return
	}

	s.rounds = rounds
	fmt.Fprintf(s.out, "Successfully set number of rounds to %d\n\n", s.rounds)
}

// configureMode replaces the player instance; mode is immutable on a live
// player.
func (s *Shell) configureMode() {
	line, err := s.prompter.ReadLine("Enter mode for AI player (human or AI): ")
	if err != nil {
		return
	}

	mode, ok := persona.ParseMode(strings.TrimSpace(line))
	if !ok {
		fmt.Fprint(s.out, "Please enter a valid mode (human or AI).\n\n")
		return
	}

	s.player = agent.NewPlayer(s.client, mode)
	fmt.Fprintf(s.out, "Successfully set AI player mode to %s\n\n", mode)
}

func (s *Shell) configureUsername() {
	line, err := s.prompter.ReadLine("Enter username for the game: ")
	if err != nil {
		return
	}

	username := strings.TrimSpace(line)
	if !printable(username) {
		fmt.Fprint(s.out, "Please enter a valid username.\n\n")
		return
	}

	s.username = username
	fmt.Fprintf(s.out, "Successfully set username to %s\n\n", s.username)
}

// configureModel lists the model whitelist as a numbered menu and loops
// until a valid selection arrives.
func (s *Shell) configureModel(which string) {
	var target interface {
		Model() string
		SetModel(string) error
	}
	if which == "player" {
		target = s.player
	} else {
		target = s.interrogator
	}

	models := agent.Models()
	fmt.Fprintln(s.out, "\nAvailable models:")
	for i, m := range models {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, m)
	}

	for {
		line, err := s.prompter.ReadLine(fmt.Sprintf("\nSelect %s model (enter number): ", which))
		if err != nil {
			return
		}

		idx, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number.")
			continue
		}
		if idx < 1 || idx > len(models) {
			fmt.Fprintln(s.out, "Invalid selection. Please enter a valid number.")
			continue
		}

		if err := target.SetModel(models[idx-1]); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		fmt.Fprintf(s.out, "Selected %s model: %s\n\n", which, target.Model())
		return
	}
}

func (s *Shell) printInvalidArgs(cmd string) {
	fmt.Fprintf(s.out, "Invalid command arguments.\nType 'help' for help with %s.\n\n", cmd)
}

// Present implements session.IO with the typewriter effect.
func (s *Shell) Present(prefix, message string) {
	s.writer.Print(prefix, message)
}

// ReadAnswer implements session.IO with the validating reprompt loop.
func (s *Shell) ReadAnswer(prompt string) (string, error) {
	return s.prompter.ReadValidated(prompt)
}

// Printf implements session.IO.
func (s *Shell) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
