// Package statelaw holds the per-state security deposit return rules used to
// compute statutory deadlines and penalty amounts.
package statelaw

import (
	"github.com/shopspring/decimal"
)

// DayUnit distinguishes how a statutory day count is measured.
type DayUnit string

const (
	// CalendarDays counts every day, weekends included.
	CalendarDays DayUnit = "calendar"
	// BusinessDays counts Monday through Friday only.
	BusinessDays DayUnit = "business"
)

// Label returns the human-readable unit label, pluralized for the given count.
func (u DayUnit) Label(days int) string {
	base := "calendar day"
	if u == BusinessDays {
		base = "business day"
	}
	if days == 1 {
		return base
	}
	return base + "s"
}

// StateRule is the statutory rule for one state. Rules are immutable; the
// table is initialized once and never mutated.
type StateRule struct {
	Citation          string
	DeadlineDays      int
	Unit              DayUnit
	PenaltyMultiplier decimal.Decimal
}

// Fallback is the rule applied to unrecognized state codes so that the
// system can always produce a letter: a generic citation, 14 calendar
// days, and the 3x multiplier common to the strictest statutes. Every
// consumer of an unknown state sees this one rule.
var Fallback = StateRule{
	Citation:          "applicable state statute",
	DeadlineDays:      14,
	Unit:              CalendarDays,
	PenaltyMultiplier: decimal.NewFromInt(3),
}

// Lookup returns the rule for a state code and whether the code was
// recognized. Unrecognized codes return Fallback, never an error.
func Lookup(code string) (StateRule, bool) {
	if r, ok := table[code]; ok {
		return r, true
	}
	return Fallback, false
}

// Codes returns the recognized state codes in unspecified order.
func Codes() []string {
	out := make([]string, 0, len(table))
	for code := range table {
		out = append(out, code)
	}
	return out
}
