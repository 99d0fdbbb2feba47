// Package store persists deposit claims for the reminder subsystem behind a
// small key-value capability so callers can run against an in-memory fake.
package store

import (
	"context"
	"errors"
	"time"
)

// KeyPrefix namespaces claim records in shared key-value backends.
const KeyPrefix = "claim:"

// Claim is a stored reminder registration. The letter pipeline never reads
// these; only the reminder sweep does.
type Claim struct {
	ID            string    `json:"id"`
	TenantName    string    `json:"tenant_name"`
	TenantEmail   string    `json:"tenant_email"`
	LandlordEmail string    `json:"landlord_email,omitempty"`
	AmountCents   int64     `json:"amount_cents"`
	StateCode     string    `json:"state"`
	Deadline      time.Time `json:"deadline"`
	CreatedAt     time.Time `json:"created_at"`
	ReminderOptIn bool      `json:"reminder_opt_in"`
}

// ErrNotFound is returned when a claim does not exist.
var ErrNotFound = errors.New("claim not found")

// Store is the claim persistence capability.
type Store interface {
	Put(ctx context.Context, c Claim) error
	Get(ctx context.Context, id string) (Claim, error)
	// Scan returns the IDs of all stored claims.
	Scan(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}
