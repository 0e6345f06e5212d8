// Package chat sends user turns to a hosted model and packages the replies.
package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	loggerpkg "github.com/minhyannv/jobsync-ai/pkg/logger"
)

// Sender sends one user message to a remote model and returns the complete
// reply text. Conversation history, if any, is owned by the implementation.
type Sender interface {
	Send(ctx context.Context, message string) (string, error)
}

// Assistant turns user input into records via a Sender.
type Assistant struct {
	sender    Sender
	sessionID string

	logger  loggerpkg.Logger
	verbose bool
}

// New initializes an Assistant around sender.
func New(sender Sender, opts ...Option) (*Assistant, error) {
	if sender == nil {
		return nil, errors.New("sender is required")
	}
	deps := assistantDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	a := &Assistant{
		sender:    sender,
		sessionID: uuid.NewString(),
		logger:    deps.logger,
		verbose:   deps.verbose,
	}
	loggerpkg.Debug(a.verbose, a.logger, "assistant init", map[string]any{
		"session_id": a.sessionID,
	})
	return a, nil
}

// SessionID identifies this assistant in logs.
func (a *Assistant) SessionID() string {
	return a.sessionID
}

// SendAndFormat sends message to the remote model and returns the turn as a
// Record. user and message are copied into the record verbatim. Remote
// failures are returned unchanged apart from wrapping; there is no retry.
func (a *Assistant) SendAndFormat(ctx context.Context, user, message string) (Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	loggerpkg.Debug(a.verbose, a.logger, "turn start", map[string]any{
		"session_id": a.sessionID,
		"bytes":      len(message),
	})

	response, err := a.sender.Send(ctx, message)
	if err != nil {
		return Record{}, fmt.Errorf("send message: %w", err)
	}

	loggerpkg.Debug(a.verbose, a.logger, "turn done", map[string]any{
		"session_id":     a.sessionID,
		"response_bytes": len(response),
	})
	return NewRecord(user, message, response), nil
}
