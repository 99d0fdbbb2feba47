// Package letter selects and renders demand letter templates. Rendering is
// pure: identical inputs, including the injected today, produce byte-identical
// output.
package letter

import (
	"fmt"

	"github.com/dshills/depositclaim/internal/deadline"
)

// Variant is the tone tier of a generated letter.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantFirm     Variant = "firm"
	VariantFriendly Variant = "friendly"
)

// ParseVariant converts a user-supplied template name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantStandard, VariantFirm, VariantFriendly:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("unknown template %q: valid templates are standard, firm, friendly", s)
	}
}

// DefaultEscalationDays is how long past the statutory deadline a claim sits
// at the standard tone before escalating to firm.
const DefaultEscalationDays = 30

// Selector maps urgency to a template variant. Escalation is one-directional
// (friendly → standard → firm) and recomputed from today on every call; no
// state is carried between invocations.
type Selector struct {
	// EscalationDays overrides DefaultEscalationDays when positive.
	EscalationDays int
}

// Select picks a variant from the urgency classification. An explicit
// override always wins; otherwise claims not yet due get the friendly tone,
// recently overdue claims the standard tone, and claims overdue longer than
// the escalation window the firm tone.
func (s Selector) Select(urg deadline.Urgency, override *Variant) Variant {
	if override != nil {
		return *override
	}
	if !urg.PastDue {
		return VariantFriendly
	}
	threshold := s.EscalationDays
	if threshold <= 0 {
		threshold = DefaultEscalationDays
	}
	if urg.DaysOverdue > threshold {
		return VariantFirm
	}
	return VariantStandard
}
