package letter

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/dshills/depositclaim/internal/claim"
	"github.com/dshills/depositclaim/internal/deadline"
	"github.com/dshills/depositclaim/internal/statelaw"
)

// longDate is the prose date format used throughout the letters.
const longDate = "January 2, 2006"

// letterData is the single context struct shared by all three templates.
type letterData struct {
	Date              string
	TenantName        string
	TenantEmail       string
	RentalAddress     string
	ForwardingAddress string
	LandlordInfo      string
	StateCode         string
	Citation          string
	DeadlineDays      int
	DeadlineLabel     string
	DepositAmount     string
	PenaltyAmount     string
	Multiplier        string
	DepositDate       string
	MoveOutDate       string
	DueDate           string
	PastDue           bool
	DaysOverdue       int
	RespondBy         string
	ResponseWindow    string
}

// variantSpec captures what actually differs between variants: headings and
// the response window. Everything else is shared template structure, so tone
// changes stay data edits rather than new render paths.
type variantSpec struct {
	responseDays   int
	responseUnit   statelaw.DayUnit
	responseWindow string
	tmpl           *template.Template
}

var variantSpecs = map[Variant]variantSpec{
	VariantStandard: {
		responseDays:   10,
		responseUnit:   statelaw.CalendarDays,
		responseWindow: "10 calendar days",
		tmpl:           template.Must(template.New("standard").Parse(standardText)),
	},
	VariantFriendly: {
		responseDays:   10,
		responseUnit:   statelaw.CalendarDays,
		responseWindow: "10 calendar days",
		tmpl:           template.Must(template.New("friendly").Parse(friendlyText)),
	},
	// The firm letter is the escalation tier: a shortened five business-day
	// response window and FINAL DEMAND headings. The divergence is policy,
	// not wording, and must not be collapsed into the standard variant.
	VariantFirm: {
		responseDays:   5,
		responseUnit:   statelaw.BusinessDays,
		responseWindow: "FIVE (5) BUSINESS DAYS",
		tmpl:           template.Must(template.New("firm").Parse(firmText)),
	},
}

// Render fills the template for a variant from case facts, the governing
// rule, and the precomputed urgency. The response window is counted from
// today, not from the statutory deadline. Rendering has no side effects and
// is idempotent.
func Render(v Variant, facts claim.Facts, rule statelaw.StateRule, urg deadline.Urgency, today time.Time) (string, error) {
	spec, ok := variantSpecs[v]
	if !ok {
		return "", fmt.Errorf("unknown template variant %q", v)
	}

	data := letterData{
		Date:              today.Format(longDate),
		TenantName:        facts.TenantName,
		TenantEmail:       facts.TenantEmail,
		RentalAddress:     facts.RentalAddress,
		ForwardingAddress: facts.ForwardingAddress,
		LandlordInfo:      facts.LandlordInfo,
		StateCode:         facts.StateCode,
		Citation:          rule.Citation,
		DeadlineDays:      rule.DeadlineDays,
		DeadlineLabel:     rule.Unit.Label(rule.DeadlineDays),
		DepositAmount:     formatCents(facts.DepositAmountCents),
		PenaltyAmount:     penaltyAmount(facts.DepositAmountCents, rule.PenaltyMultiplier),
		Multiplier:        rule.PenaltyMultiplier.String(),
		DepositDate:       facts.DepositDate.Format(longDate),
		MoveOutDate:       facts.MoveOutDate.Format(longDate),
		DueDate:           urg.DueDate.Format(longDate),
		PastDue:           urg.PastDue,
		DaysOverdue:       urg.DaysOverdue,
		RespondBy:         deadline.Compute(today, spec.responseDays, spec.responseUnit).Format(longDate),
		ResponseWindow:    spec.responseWindow,
	}

	var buf bytes.Buffer
	if err := spec.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s letter: %w", v, err)
	}
	return buf.String(), nil
}
