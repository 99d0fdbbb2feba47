// Package deadline computes statutory return deadlines and classifies how
// overdue a claim is. Every function takes time explicitly; nothing in this
// package reads the clock.
package deadline

import (
	"math"
	"time"

	"github.com/dshills/depositclaim/internal/statelaw"
)

// Urgency describes where a claim stands relative to its statutory deadline.
type Urgency struct {
	DueDate time.Time
	// DaysOverdue is days past the deadline when PastDue, otherwise days
	// remaining until it.
	DaysOverdue int
	PastDue     bool
}

// Compute returns the statutory deadline for a move-out date. Calendar days
// are plain date addition. Business days advance one day at a time, counting
// only Monday through Friday. Public holidays are not excluded.
//
// days == 0 returns moveOut unchanged. A moveOut falling on a weekend is
// valid input and is not itself adjusted.
func Compute(moveOut time.Time, days int, unit statelaw.DayUnit) time.Time {
	if unit != statelaw.BusinessDays {
		return moveOut.AddDate(0, 0, days)
	}
	due := moveOut
	counted := 0
	for counted < days {
		due = due.AddDate(0, 0, 1)
		if wd := due.Weekday(); wd != time.Saturday && wd != time.Sunday {
			counted++
		}
	}
	return due
}

// Classify computes the deadline for a claim and reports whether it has
// passed as of the supplied today, and by how many days (or how many remain).
func Classify(moveOut time.Time, days int, unit statelaw.DayUnit, today time.Time) Urgency {
	due := Compute(moveOut, days, unit)
	diff := DaysUntil(due, today)
	return Urgency{
		DueDate:     due,
		DaysOverdue: abs(diff),
		PastDue:     diff < 0,
	}
}

// DaysUntil returns ceil((target - today) / 24h): positive when target is in
// the future, negative once it has passed.
func DaysUntil(target, today time.Time) int {
	return int(math.Ceil(target.Sub(today).Hours() / 24))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
