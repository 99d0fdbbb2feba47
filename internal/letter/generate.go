package letter

import (
	"fmt"
	"time"

	"github.com/dshills/depositclaim/internal/claim"
	"github.com/dshills/depositclaim/internal/deadline"
	"github.com/dshills/depositclaim/internal/statelaw"
)

// Letter is the result of one generation: the rendered text plus the derived
// values callers reuse (the reminder scheduler reads DueDate; the CLI and
// API echo the chosen variant).
type Letter struct {
	Text       string
	Variant    Variant
	Rule       statelaw.StateRule
	Urgency    deadline.Urgency
	StateKnown bool
}

// Generate runs the full deterministic pipeline: rule lookup, deadline
// computation, urgency classification, variant selection, rendering. It is
// the single logical operation the core exposes.
//
// Callers validate facts first (claim.Validate); Generate still refuses the
// two inputs that would make the output nonsensical rather than merely
// incomplete: a non-positive amount and a move-out before the deposit date.
func Generate(facts claim.Facts, today time.Time, override *Variant) (Letter, error) {
	return Selector{}.Generate(facts, today, override)
}

// Generate is Generate with this selector's escalation policy.
func (s Selector) Generate(facts claim.Facts, today time.Time, override *Variant) (Letter, error) {
	if facts.DepositAmountCents < 1 {
		return Letter{}, fmt.Errorf("generating letter: %w", claim.ErrNonPositiveAmount)
	}
	if !facts.DepositDate.IsZero() && facts.MoveOutDate.Before(facts.DepositDate) {
		return Letter{}, fmt.Errorf("generating letter: %w", claim.ErrDateOrder)
	}

	rule, known := statelaw.Lookup(facts.StateCode)
	urg := deadline.Classify(facts.MoveOutDate, rule.DeadlineDays, rule.Unit, today)
	variant := s.Select(urg, override)

	text, err := Render(variant, facts, rule, urg, today)
	if err != nil {
		return Letter{}, err
	}

	return Letter{
		Text:       text,
		Variant:    variant,
		Rule:       rule,
		Urgency:    urg,
		StateKnown: known,
	}, nil
}
