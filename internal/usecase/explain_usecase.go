package usecase

import (
	"context"
	"log"
	"time"

	"devcollab/internal/domain/matching"
	"devcollab/internal/domain/profile"
)

// TextGenerator is the natural-language collaborator contract. Any failure
// it reports is recovered locally by the Explainer, never surfaced.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Explainer produces match explanations. It prefers the AI collaborator
// and always falls back to the deterministic rule-based text, so match
// creation and ranking can never block on or fail from an unavailable
// generator.
type Explainer struct {
	gen     TextGenerator
	timeout time.Duration
	logger  *log.Logger
}

func NewExplainer(gen TextGenerator, timeout time.Duration, logger *log.Logger) *Explainer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Explainer{gen: gen, timeout: timeout, logger: logger}
}

// Explain returns prose for a scored pair. No error: every generator
// failure (missing configuration, transport, timeout, empty response)
// degrades to the local fallback.
func (e *Explainer) Explain(ctx context.Context, a, b profile.Profile, bd matching.Breakdown) string {
	if e == nil || e.gen == nil {
		return matching.FallbackExplanation(a, b, bd)
	}

	genCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.gen.Generate(genCtx, matching.BuildExplanationPrompt(a, b, bd))
	if err != nil {
		e.logger.Printf("[Explainer] generator failed, using fallback: %v", err)
		return matching.FallbackExplanation(a, b, bd)
	}
	return text
}
