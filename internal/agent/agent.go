// Package agent implements the two completion-backed participants of the
// game: the interrogator and the AI player. Both share a transcript-holding
// core and talk to the completion capability through the eino model
// interface.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/rttlabs/rtt/internal/model/game"
)

// DefaultTemperature is used for every completion request. The game does not
// expose per-call tuning.
const DefaultTemperature float32 = 1.0

var (
	// ErrNoClient reports that no completion client has been configured yet.
	ErrNoClient = errors.New("no completion client configured")
	// ErrUnknownModel reports a model outside the selectable list.
	ErrUnknownModel = errors.New("model is not in the selectable list")
	// ErrAuthentication reports a credential rejected by the completion
	// service.
	ErrAuthentication = errors.New("authentication rejected by completion service")
)

// Chat is the transcript and completion plumbing shared by both agents.
type Chat struct {
	client    model.BaseChatModel
	modelName string
	history   *game.Transcript
}

// NewChat seeds an agent core with its persona instruction and the default
// model. A nil client is allowed; completion requests will fail until one is
// configured.
func NewChat(client model.BaseChatModel, personaRules string) *Chat {
	return &Chat{
		client:    client,
		modelName: DefaultModel,
		history:   game.NewTranscript(personaRules),
	}
}

// Model returns the currently selected model.
func (c *Chat) Model() string {
	return c.modelName
}

// SetModel selects a model from the fixed list.
func (c *Chat) SetModel(name string) error {
	if !ValidModel(name) {
		return fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	c.modelName = name
	return nil
}

// Append records a message at the end of the transcript.
func (c *Chat) Append(role game.Role, content string) {
	c.history.Append(role, content)
}

// Reset truncates the transcript back to the persona instruction.
func (c *Chat) Reset() {
	c.history.Reset()
}

// Transcript returns a copy of the message history.
func (c *Chat) Transcript() []game.Message {
	return c.history.Messages()
}

// Complete replays the full transcript to the completion capability and
// returns the response text. The response is not appended to the transcript;
// the caller labels and records it. A non-nil error means no usable text was
// produced and the current game cannot continue.
func (c *Chat) Complete(ctx context.Context, temperature float32) (string, error) {
	if c.client == nil {
		return "", ErrNoClient
	}

	history := c.history.Messages()
	input := make([]*schema.Message, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case game.RoleDeveloper:
			input = append(input, schema.SystemMessage(m.Content))
		case game.RoleUser:
			input = append(input, schema.UserMessage(m.Content))
		case game.RoleAssistant:
			input = append(input, schema.AssistantMessage(m.Content, nil))
		}
	}

	response, err := c.client.Generate(ctx, input,
		model.WithModel(c.modelName),
		model.WithTemperature(temperature),
	)
	if err != nil {
		if isAuthError(err) {
			return "", fmt.Errorf("%w: %v", ErrAuthentication, err)
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	return response.Content, nil
}

// isAuthError distinguishes credential rejections from general service
// errors. The provider error is wrapped opaquely by the model component, so
// classification inspects the reported status text.
func isAuthError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "401") ||
		strings.Contains(msg, "authentication") ||
		strings.Contains(msg, "invalid api key") ||
		strings.Contains(msg, "incorrect api key")
}
