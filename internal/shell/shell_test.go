package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rttlabs/rtt/internal/config"
	"github.com/rttlabs/rtt/internal/persona"
)

func newTestShell(t *testing.T, input string) (*Shell, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{
		Game: config.GameConfig{
			Rounds:   3,
			Username: "default",
			LogDir:   t.TempDir(),
		},
	}
	out := &bytes.Buffer{}
	return New(cfg, nil, strings.NewReader(input), out), out
}

func run(t *testing.T, s *Shell) {
	t.Helper()
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run err: %v", err)
	}
}

func TestConfigureRoundsAccepted(t *testing.T) {
	s, out := newTestShell(t, "configure rounds\n4\nexit\n")
	run(t, s)

	if s.rounds != 4 {
		t.Fatalf("rounds = %d, want 4", s.rounds)
	}
	if !strings.Contains(out.String(), "Successfully set number of rounds to 4") {
		t.Fatalf("missing confirmation:\n%s", out.String())
	}
}

func TestConfigureRoundsRejectsOutOfRange(t *testing.T) {
	for _, input := range []string{"0", "6", "-1", "three", ""} {
		s, out := newTestShell(t, "configure rounds\n"+input+"\nexit\n")
		run(t, s)

		if s.rounds != 3 {
			t.Fatalf("input %q: rounds = %d, want previous value 3", input, s.rounds)
		}
		if !strings.Contains(out.String(), "Please enter a") {
			t.Fatalf("input %q: missing diagnostic:\n%s", input, out.String())
		}
	}
}

func TestConfigureUsername(t *testing.T) {
	s, _ := newTestShell(t, "configure username\ncasey\nexit\n")
	run(t, s)

	if s.username != "casey" {
		t.Fatalf("username = %q, want casey", s.username)
	}
}

func TestConfigureUsernameRejectsEmpty(t *testing.T) {
	s, out := newTestShell(t, "configure username\n\nexit\n")
	run(t, s)

	if s.username != "default" {
		t.Fatalf("username = %q, want previous value default", s.username)
	}
	if !strings.Contains(out.String(), "Please enter a valid username.") {
		t.Fatalf("missing diagnostic:\n%s", out.String())
	}
}

func TestConfigureModeReplacesPlayer(t *testing.T) {
	s, _ := newTestShell(t, "configure mode\nAI\nexit\n")
	s.player.RecordOwnMessage("left over from a previous game")
	run(t, s)

	if s.player.Mode() != persona.ModeAI {
		t.Fatalf("mode = %s, want AI", s.player.Mode())
	}
	if got := len(s.player.Transcript()); got != 1 {
		t.Fatalf("mode change must produce a fresh single-entry transcript, got %d", got)
	}
}

func TestConfigureModeRejectsUnknown(t *testing.T) {
	s, out := newTestShell(t, "configure mode\nrobot\nexit\n")
	run(t, s)

	if s.player.Mode() != persona.ModeHuman {
		t.Fatalf("mode = %s, want previous value human", s.player.Mode())
	}
	if !strings.Contains(out.String(), "Please enter a valid mode") {
		t.Fatalf("missing diagnostic:\n%s", out.String())
	}
}

func TestConfigureModelMenuSelection(t *testing.T) {
	s, out := newTestShell(t, "configure interrogator\n9\nfirst\n1\nexit\n")
	run(t, s)

	if s.interrogator.Model() != "gpt-4o" {
		t.Fatalf("model = %s, want gpt-4o", s.interrogator.Model())
	}
	if !strings.Contains(out.String(), "Invalid selection.") {
		t.Fatalf("missing out-of-range diagnostic:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Please enter a valid number.") {
		t.Fatalf("missing non-numeric diagnostic:\n%s", out.String())
	}
}

func TestConfigurePlayerModelIndependent(t *testing.T) {
	s, _ := newTestShell(t, "configure player\n5\nexit\n")
	run(t, s)

	if s.player.Model() != "gpt-3.5-turbo" {
		t.Fatalf("player model = %s, want gpt-3.5-turbo", s.player.Model())
	}
	if s.interrogator.Model() != "gpt-4o-mini" {
		t.Fatalf("interrogator model changed: %s", s.interrogator.Model())
	}
}

func TestConfigureRequiresExactlyOneArg(t *testing.T) {
	s, out := newTestShell(t, "configure\nconfigure rounds mode\nconfigure color\nexit\n")
	run(t, s)

	if got := strings.Count(out.String(), "Invalid command arguments."); got != 3 {
		t.Fatalf("expected 3 invalid-args diagnostics, got %d:\n%s", got, out.String())
	}
}

func TestConfigureTokenRejectsEmpty(t *testing.T) {
	s, out := newTestShell(t, "configure token\n\nexit\n")
	run(t, s)

	if s.client != nil {
		t.Fatal("empty token must not configure a client")
	}
	if !strings.Contains(out.String(), "Invalid password entered.") {
		t.Fatalf("missing diagnostic:\n%s", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	s, out := newTestShell(t, "launch\nexit\n")
	run(t, s)

	if !strings.Contains(out.String(), "Sorry launch is not a recognized command.") {
		t.Fatalf("missing unknown-command diagnostic:\n%s", out.String())
	}
}

func TestEmptyCommand(t *testing.T) {
	s, out := newTestShell(t, "\nexit\n")
	run(t, s)

	if !strings.Contains(out.String(), "Please enter a valid command.") {
		t.Fatalf("missing empty-line diagnostic:\n%s", out.String())
	}
}

func TestStartWithoutClient(t *testing.T) {
	s, out := newTestShell(t, "start\nexit\n")
	run(t, s)

	if !strings.Contains(out.String(), "No OpenAI API token configured.") {
		t.Fatalf("missing missing-token diagnostic:\n%s", out.String())
	}
}

func TestRunStopsAtEOF(t *testing.T) {
	s, _ := newTestShell(t, "about\n")
	run(t, s)
}

func TestReadValidatedReprompts(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("\n\t \nBlue\n"), out)

	got, err := p.ReadValidated("(Player A): ")
	if err != nil {
		t.Fatalf("ReadValidated err: %v", err)
	}
	if got != "Blue" {
		t.Fatalf("answer = %q, want Blue", got)
	}
	if got := strings.Count(out.String(), "Entered invalid input."); got != 2 {
		t.Fatalf("expected 2 reprompt diagnostics, got %d", got)
	}
}

func TestTypewriterZeroDelay(t *testing.T) {
	out := &bytes.Buffer{}
	NewTypewriter(out, 0).Print("(Interrogator): ", "hello")

	if out.String() != "(Interrogator): hello\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
