package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/domain/config"
)

// InvalidAnswerPrompt replaces the question after an unrecognised answer.
const InvalidAnswerPrompt = "invalid input, enter one of the following: Y, y, yes, Yes, YES, N, n, no, No, NO"

// ConfirmGate asks the operator to approve a state-changing operation.
type ConfirmGate struct {
	asker  Asker
	config *config.RuntimeConfig
	log    *slog.Logger
}

// NewConfirmGate creates a new confirmation gate
func NewConfirmGate(asker Asker, cfg *config.RuntimeConfig, log *slog.Logger) *ConfirmGate {
	return &ConfirmGate{
		asker:  asker,
		config: cfg,
		log:    log.With("component", "ConfirmGate"),
	}
}

// Bypassed reports whether prompts are skipped for this run.
func (g *ConfirmGate) Bypassed() bool {
	return g.config.SkipChecks || g.config.NonInteractive || g.config.Silent
}

// Confirm blocks until the operator answers. A negative answer returns
// ErrAborted. Unknown answers reprompt.
func (g *ConfirmGate) Confirm(ctx context.Context, prompt string) error {
	if g.Bypassed() {
		g.log.Debug("confirmation bypassed", "prompt", prompt)
		return nil
	}

	question := prompt
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		answer, err := g.asker.Ask(ctx, question)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		switch answer {
		case "y", "Y", "yes", "Yes", "YES":
			return nil
		case "n", "N", "no", "No", "NO":
			return domain.ErrAborted
		}
		g.log.Debug("invalid confirmation answer", "answer", answer)
		question = InvalidAnswerPrompt
	}
}
