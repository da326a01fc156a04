// Package explain turns simulation results into prompts for a text
// generation service and returns its prose.
package explain

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rustyeddy/trilemma/trinity"
)

// ErrNotConfigured is returned when no generator (or no API key) is available.
var ErrNotConfigured = errors.New("explain: text generator not configured, provide an API key")

// Generator sends a prompt to a text-generation service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Explainer builds prompts from results and forwards them to a Generator.
// Failures are returned wrapped but otherwise untouched; there is no retry.
type Explainer struct {
	gen Generator
	log zerolog.Logger
}

// New returns an Explainer. gen may be nil, in which case every call returns
// ErrNotConfigured.
func New(gen Generator, logger zerolog.Logger) *Explainer {
	return &Explainer{gen: gen, log: logger}
}

// Configured reports whether a generator is attached.
func (e *Explainer) Configured() bool {
	return e != nil && e.gen != nil
}

// Explain asks for a detailed explanation of r given the user's changes.
func (e *Explainer) Explain(ctx context.Context, r trinity.SnapshotResult, changes Changes, lang Language) (string, error) {
	if !e.Configured() {
		return "", ErrNotConfigured
	}

	prompt := BuildPrompt(r, changes, lang)
	text, err := e.generate(ctx, "explanation", prompt, lang)
	if err != nil {
		return "", fmt.Errorf("generate explanation: %w", err)
	}
	return text, nil
}

// QuickInsight asks for a short risk summary of r.
func (e *Explainer) QuickInsight(ctx context.Context, r trinity.SnapshotResult, lang Language) (string, error) {
	if !e.Configured() {
		return "", ErrNotConfigured
	}

	prompt := QuickInsightPrompt(r, lang)
	text, err := e.generate(ctx, "insight", prompt, lang)
	if err != nil {
		return "", fmt.Errorf("generate insight: %w", err)
	}
	return text, nil
}

func (e *Explainer) generate(ctx context.Context, kind, prompt string, lang Language) (string, error) {
	e.log.Debug().
		Str("kind", kind).
		Str("language", string(lang)).
		Int("prompt_len", len(prompt)).
		Msg("requesting text generation")

	text, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		e.log.Error().Err(err).Str("kind", kind).Msg("text generation failed")
		return "", err
	}

	e.log.Debug().Str("kind", kind).Int("response_len", len(text)).Msg("text generation done")
	return text, nil
}
