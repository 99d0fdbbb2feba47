package deadline

import (
	"testing"
	"time"

	"github.com/dshills/depositclaim/internal/statelaw"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompute_CalendarIsPlainAddition(t *testing.T) {
	moveOut := date(2024, time.January, 1)
	for _, n := range []int{0, 1, 14, 21, 30, 45, 60, 365} {
		got := Compute(moveOut, n, statelaw.CalendarDays)
		want := moveOut.AddDate(0, 0, n)
		if !got.Equal(want) {
			t.Errorf("Compute(+%d calendar) = %s, want %s", n, got, want)
		}
	}
}

func TestCompute_ZeroDays(t *testing.T) {
	moveOut := date(2024, time.March, 15)
	for _, unit := range []statelaw.DayUnit{statelaw.CalendarDays, statelaw.BusinessDays} {
		if got := Compute(moveOut, 0, unit); !got.Equal(moveOut) {
			t.Errorf("Compute(0, %s) = %s, want move-out unchanged", unit, got)
		}
	}
}

func TestCompute_BusinessSkipsWeekends(t *testing.T) {
	// Arizona scenario: Friday 2024-01-05 plus 14 business days. Six
	// weekend days fall inside the span, so the deadline lands 20 calendar
	// days out on Thursday 2024-01-25.
	moveOut := date(2024, time.January, 5)
	got := Compute(moveOut, 14, statelaw.BusinessDays)
	want := date(2024, time.January, 25)
	if !got.Equal(want) {
		t.Errorf("Compute(Fri+14 business) = %s, want %s", got, want)
	}
}

func TestCompute_BusinessCountExcludesWeekendsByConstruction(t *testing.T) {
	// Walking the same span manually, every counted day must be a weekday.
	moveOut := date(2024, time.June, 3) // a Monday
	days := 10
	due := Compute(moveOut, days, statelaw.BusinessDays)

	counted := 0
	for d := moveOut.AddDate(0, 0, 1); !d.After(due); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			counted++
		}
	}
	if counted != days {
		t.Errorf("span contains %d business days, want %d", counted, days)
	}
	if wd := due.Weekday(); wd == time.Saturday || wd == time.Sunday {
		t.Errorf("business deadline landed on %s", wd)
	}
}

func TestCompute_WeekendMoveOutNotAdjusted(t *testing.T) {
	moveOut := date(2024, time.January, 6) // Saturday
	got := Compute(moveOut, 0, statelaw.BusinessDays)
	if !got.Equal(moveOut) {
		t.Errorf("weekend move-out was adjusted to %s", got)
	}
	// One business day from Saturday is Monday.
	if got := Compute(moveOut, 1, statelaw.BusinessDays); !got.Equal(date(2024, time.January, 8)) {
		t.Errorf("Sat+1 business = %s, want Monday 2024-01-08", got)
	}
}

func TestClassify_CaliforniaScenario(t *testing.T) {
	// CA: 21 calendar days. Move-out 2024-01-01 → due 2024-01-22; as of
	// 2024-01-25 the claim is 3 days overdue.
	urg := Classify(date(2024, time.January, 1), 21, statelaw.CalendarDays, date(2024, time.January, 25))
	if !urg.DueDate.Equal(date(2024, time.January, 22)) {
		t.Errorf("due = %s, want 2024-01-22", urg.DueDate)
	}
	if !urg.PastDue {
		t.Error("PastDue = false, want true")
	}
	if urg.DaysOverdue != 3 {
		t.Errorf("DaysOverdue = %d, want 3", urg.DaysOverdue)
	}
}

func TestClassify_NotYetDue(t *testing.T) {
	urg := Classify(date(2024, time.January, 1), 21, statelaw.CalendarDays, date(2024, time.January, 10))
	if urg.PastDue {
		t.Error("PastDue = true before deadline")
	}
	if urg.DaysOverdue != 12 {
		t.Errorf("days remaining = %d, want 12", urg.DaysOverdue)
	}
}

func TestClassify_DeadlineDayIsNotOverdue(t *testing.T) {
	due := date(2024, time.January, 22)
	urg := Classify(date(2024, time.January, 1), 21, statelaw.CalendarDays, due)
	if urg.PastDue {
		t.Error("claim reported overdue on the deadline day itself")
	}
	if urg.DaysOverdue != 0 {
		t.Errorf("DaysOverdue = %d, want 0", urg.DaysOverdue)
	}
}

func TestClassify_OverdueIncreasesOnePerDay(t *testing.T) {
	moveOut := date(2024, time.January, 1)
	prev := -1
	for offset := 23; offset <= 33; offset++ {
		today := date(2024, time.January, offset)
		urg := Classify(moveOut, 21, statelaw.CalendarDays, today)
		if !urg.PastDue {
			t.Fatalf("not past due at %s", today)
		}
		if prev >= 0 && urg.DaysOverdue != prev+1 {
			t.Errorf("at %s DaysOverdue = %d, want %d", today, urg.DaysOverdue, prev+1)
		}
		prev = urg.DaysOverdue
	}
}

func TestDaysUntil(t *testing.T) {
	today := date(2024, time.May, 10)
	cases := []struct {
		target time.Time
		want   int
	}{
		{date(2024, time.May, 13), 3},
		{date(2024, time.May, 10), 0},
		{date(2024, time.May, 8), -2},
	}
	for _, tc := range cases {
		if got := DaysUntil(tc.target, today); got != tc.want {
			t.Errorf("DaysUntil(%s) = %d, want %d", tc.target, got, tc.want)
		}
	}
}
