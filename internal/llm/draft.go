package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/depositclaim/internal/claim"
	"github.com/dshills/depositclaim/internal/statelaw"
)

// draftTemperature keeps drafted letters close to the requested structure.
const draftTemperature = 0.3

// Draft asks the provider for a letter. The returned text is used as-is by
// callers; on any error they fall back to the deterministic template
// pipeline, so Draft never retries.
func Draft(ctx context.Context, p Provider, facts claim.Facts, today time.Time) (string, error) {
	rule, _ := statelaw.Lookup(facts.StateCode)

	resp, err := p.Complete(ctx, &Request{
		System:      SystemPrompt(),
		User:        BuildUserPrompt(facts, rule, today),
		Temperature: draftTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("drafting letter: %w", err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", fmt.Errorf("drafting letter: provider returned empty text")
	}
	return text, nil
}
