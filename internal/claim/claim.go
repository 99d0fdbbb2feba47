// Package claim defines the case facts behind a deposit demand letter and
// the validation callers run before handing facts to the letter pipeline.
package claim

import (
	"errors"
	"time"
)

// Facts holds everything needed to generate one demand letter. Facts are
// built per request and never persisted by the letter pipeline.
type Facts struct {
	StateCode          string
	MoveOutDate        time.Time
	DepositDate        time.Time
	DepositAmountCents int64
	TenantName         string
	TenantEmail        string
	RentalAddress      string
	ForwardingAddress  string
	LandlordInfo       string
}

// Sentinel errors for the two invariants the letter pipeline refuses to
// proceed without, even though callers are expected to validate first.
var (
	ErrDateOrder         = errors.New("move-out date is before deposit payment date")
	ErrNonPositiveAmount = errors.New("deposit amount must be at least one cent")
)
