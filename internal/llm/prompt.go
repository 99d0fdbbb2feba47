package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dshills/depositclaim/internal/claim"
	"github.com/dshills/depositclaim/internal/deadline"
	"github.com/dshills/depositclaim/internal/statelaw"
)

const systemPrompt = `You are a legal assistant specializing in tenant-landlord law. Generate professional, legally accurate demand letters for security deposit return. Return only the letter text, no commentary.`

// BuildUserPrompt assembles the letter-drafting prompt from case facts and
// the governing statutory rule. The required structure mirrors the
// deterministic templates so a drafted letter is a drop-in replacement.
func BuildUserPrompt(facts claim.Facts, rule statelaw.StateRule, today time.Time) string {
	amount := "$" + decimal.New(facts.DepositAmountCents, -2).StringFixed(2)
	penalty := "$" + decimal.New(facts.DepositAmountCents, -2).Mul(rule.PenaltyMultiplier).StringFixed(2)
	due := deadline.Compute(facts.MoveOutDate, rule.DeadlineDays, rule.Unit)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Draft a professional, formal demand letter for security deposit return under %s state law.\n\n", facts.StateCode)

	sb.WriteString("TENANT INFORMATION:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", facts.TenantName)
	fmt.Fprintf(&sb, "- Email: %s\n", facts.TenantEmail)
	fmt.Fprintf(&sb, "- Current address: %s\n", facts.ForwardingAddress)
	fmt.Fprintf(&sb, "- Former rental address: %s\n", facts.RentalAddress)
	fmt.Fprintf(&sb, "- Security deposit amount: %s\n", amount)
	fmt.Fprintf(&sb, "- Deposit paid on: %s\n", facts.DepositDate.Format("January 2, 2006"))
	fmt.Fprintf(&sb, "- Move-out date: %s\n\n", facts.MoveOutDate.Format("January 2, 2006"))

	sb.WriteString("LANDLORD INFORMATION:\n")
	fmt.Fprintf(&sb, "%s\n\n", facts.LandlordInfo)

	sb.WriteString("LEGAL REQUIREMENTS:\n")
	fmt.Fprintf(&sb, "- Applicable law: %s\n", rule.Citation)
	fmt.Fprintf(&sb, "- Statutory deadline: %d %s (due %s)\n", rule.DeadlineDays, rule.Unit.Label(rule.DeadlineDays), due.Format("January 2, 2006"))
	fmt.Fprintf(&sb, "- Penalty multiplier: %sx (up to %s)\n\n", rule.PenaltyMultiplier, penalty)

	sb.WriteString(`REQUIRED LETTER STRUCTURE, in order:
1. Tenant's forwarding address block
2. "Sent via Certified Mail, Return Receipt Requested"
3. Current date: ` + today.Format("January 2, 2006") + `
4. Landlord name and address
5. "Re: Demand for Return of Security Deposit" with rental property address and amount in dispute
6. "Dear Landlord,"
7. FACTUAL BACKGROUND section stating deposit payment, move-out date, and condition
8. LEGAL DEMAND section citing the statute and day count
9. DEMAND FOR PAYMENT section with a 10 calendar day response deadline and payment options
10. CONSEQUENCES OF NON-COMPLIANCE section with bullet points including the penalty amount
11. DOCUMENTATION section about itemization requirements
12. Closing paragraphs about amicable resolution and contact information
13. "Sincerely," with signature space and tenant name

Format all dollar amounts with exactly two decimal places.`)

	return sb.String()
}

// SystemPrompt returns the fixed system prompt for letter drafting.
func SystemPrompt() string { return systemPrompt }
