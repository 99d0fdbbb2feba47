package statelaw

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLookup_RecognizedState(t *testing.T) {
	rule, ok := Lookup("CA")
	if !ok {
		t.Fatal("Lookup(CA) not recognized")
	}
	if rule.Citation != "Cal. Civ. Code §1950.5" {
		t.Errorf("citation = %q", rule.Citation)
	}
	if rule.DeadlineDays != 21 || rule.Unit != CalendarDays {
		t.Errorf("deadline = %d %s, want 21 calendar", rule.DeadlineDays, rule.Unit)
	}
}

func TestLookup_BusinessDayState(t *testing.T) {
	rule, ok := Lookup("AZ")
	if !ok {
		t.Fatal("Lookup(AZ) not recognized")
	}
	if rule.Unit != BusinessDays {
		t.Errorf("AZ unit = %s, want business", rule.Unit)
	}
	if rule.DeadlineDays != 14 {
		t.Errorf("AZ days = %d, want 14", rule.DeadlineDays)
	}
}

func TestLookup_UnknownState_Fallback(t *testing.T) {
	rule, ok := Lookup("ZZ")
	if ok {
		t.Error("Lookup(ZZ) reported recognized")
	}
	if rule != Fallback {
		t.Errorf("rule = %+v, want Fallback", rule)
	}
	if rule.Citation != "applicable state statute" || rule.DeadlineDays != 14 || rule.Unit != CalendarDays {
		t.Errorf("fallback = %+v", rule)
	}
}

func TestTable_EveryRuleWellFormed(t *testing.T) {
	one := decimal.NewFromInt(1)
	for _, code := range Codes() {
		rule, ok := Lookup(code)
		if !ok {
			t.Fatalf("Codes() returned unrecognized code %q", code)
		}
		if rule.Citation == "" {
			t.Errorf("%s: empty citation", code)
		}
		if rule.DeadlineDays <= 0 {
			t.Errorf("%s: deadline days = %d", code, rule.DeadlineDays)
		}
		if rule.Unit != CalendarDays && rule.Unit != BusinessDays {
			t.Errorf("%s: unit = %q", code, rule.Unit)
		}
		if rule.PenaltyMultiplier.LessThan(one) {
			t.Errorf("%s: multiplier = %s, want >= 1", code, rule.PenaltyMultiplier)
		}
	}
}

func TestTable_FiftyStates(t *testing.T) {
	if got := len(Codes()); got != 50 {
		t.Errorf("table has %d states, want 50", got)
	}
}

func TestTable_FractionalMultipliers(t *testing.T) {
	for _, code := range []string{"KS", "AK"} {
		rule, _ := Lookup(code)
		want := decimal.RequireFromString("1.5")
		if !rule.PenaltyMultiplier.Equal(want) {
			t.Errorf("%s multiplier = %s, want 1.5", code, rule.PenaltyMultiplier)
		}
	}
}

func TestDayUnit_Label(t *testing.T) {
	cases := []struct {
		unit DayUnit
		days int
		want string
	}{
		{CalendarDays, 1, "calendar day"},
		{CalendarDays, 21, "calendar days"},
		{BusinessDays, 1, "business day"},
		{BusinessDays, 14, "business days"},
	}
	for _, tc := range cases {
		if got := tc.unit.Label(tc.days); got != tc.want {
			t.Errorf("Label(%s, %d) = %q, want %q", tc.unit, tc.days, got, tc.want)
		}
	}
}
