// Package reminder runs the follow-up sweep over stored claims: a heads-up
// before the statutory deadline, a nudge after it passes, and cleanup of
// stale records. It is a scheduled consumer of the deadline computation, not
// part of the letter pipeline.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dshills/depositclaim/internal/deadline"
	"github.com/dshills/depositclaim/internal/mail"
	"github.com/dshills/depositclaim/internal/store"
)

// Default sweep offsets relative to the statutory deadline.
const (
	DefaultUpcomingDays = 3  // T-3: deadline approaching
	DefaultOverdueDays  = 2  // T+2: deadline passed
	DefaultCleanupDays  = 30 // T+30: drop the record
)

// Sweeper scans stored claims against an injected today. Time is never read
// internally; the cron entry point passes its own notion of now.
type Sweeper struct {
	Store  store.Store
	Sender mail.Sender
	Logger *slog.Logger

	// Offsets override the defaults when positive.
	UpcomingDays int
	OverdueDays  int
	CleanupDays  int
}

// Result summarizes one sweep.
type Result struct {
	Checked int       `json:"claims_checked"`
	Sent    int       `json:"reminders_sent"`
	Cleaned int       `json:"cleaned_up"`
	SweptAt time.Time `json:"timestamp"`
}

// Sweep checks every stored claim once. Send failures are logged and skipped
// so one bad address cannot stall the rest of the sweep; store errors abort.
func (s *Sweeper) Sweep(ctx context.Context, today time.Time) (Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ids, err := s.Store.Scan(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("scanning claims: %w", err)
	}

	res := Result{Checked: len(ids), SweptAt: today}
	for _, id := range ids {
		c, err := s.Store.Get(ctx, id)
		if err == store.ErrNotFound {
			continue
		}
		if err != nil {
			return res, fmt.Errorf("loading claim %s: %w", id, err)
		}

		until := deadline.DaysUntil(c.Deadline, today)

		switch {
		case until == s.upcomingDays() && c.ReminderOptIn:
			if err := s.Sender.Send(ctx, upcomingMessage(c)); err != nil {
				logger.ErrorContext(ctx, "upcoming reminder failed", "claim", c.ID, "error", err)
				continue
			}
			res.Sent++
		case until == -s.overdueDays() && c.ReminderOptIn:
			if err := s.Sender.Send(ctx, overdueMessage(c)); err != nil {
				logger.ErrorContext(ctx, "overdue reminder failed", "claim", c.ID, "error", err)
				continue
			}
			res.Sent++
		}

		if until < -s.cleanupDays() {
			if err := s.Store.Delete(ctx, c.ID); err != nil {
				return res, fmt.Errorf("cleaning up claim %s: %w", c.ID, err)
			}
			res.Cleaned++
		}
	}

	return res, nil
}

func (s *Sweeper) upcomingDays() int {
	if s.UpcomingDays > 0 {
		return s.UpcomingDays
	}
	return DefaultUpcomingDays
}

func (s *Sweeper) overdueDays() int {
	if s.OverdueDays > 0 {
		return s.OverdueDays
	}
	return DefaultOverdueDays
}

func (s *Sweeper) cleanupDays() int {
	if s.CleanupDays > 0 {
		return s.CleanupDays
	}
	return DefaultCleanupDays
}

func amountString(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}

func upcomingMessage(c store.Claim) mail.Message {
	due := c.Deadline.Format("January 2, 2006")
	return mail.Message{
		To:      c.TenantEmail,
		Subject: fmt.Sprintf("Deposit deadline approaching: %s", due),
		Text: fmt.Sprintf(
			"Hi %s,\n\nThe statutory deadline for your landlord to return your %s security deposit (%s claim) is %s, three days from now. If you have not received payment or an itemized deduction statement by then, your demand letter gains its strongest footing.\n\nWe will follow up after the deadline passes.\n",
			c.TenantName, amountString(c.AmountCents), c.StateCode, due),
	}
}

func overdueMessage(c store.Claim) mail.Message {
	due := c.Deadline.Format("January 2, 2006")
	return mail.Message{
		To:      c.TenantEmail,
		Subject: "Deposit deadline has passed",
		Text: fmt.Sprintf(
			"Hi %s,\n\nThe statutory deadline of %s for your %s security deposit (%s claim) has now passed. If your landlord has not paid or provided an itemized statement, consider sending a firm follow-up letter; the generator will escalate the tone automatically.\n",
			c.TenantName, due, amountString(c.AmountCents), c.StateCode),
	}
}
