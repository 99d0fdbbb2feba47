package letter

import (
	"testing"

	"github.com/dshills/depositclaim/internal/deadline"
)

func TestParseVariant(t *testing.T) {
	for _, name := range []string{"standard", "firm", "friendly"} {
		v, err := ParseVariant(name)
		if err != nil {
			t.Errorf("ParseVariant(%q): %v", name, err)
		}
		if string(v) != name {
			t.Errorf("ParseVariant(%q) = %q", name, v)
		}
	}
	if _, err := ParseVariant("polite"); err == nil {
		t.Error("ParseVariant(polite) did not error")
	}
}

func TestSelect_NotPastDue_Friendly(t *testing.T) {
	v := Selector{}.Select(deadline.Urgency{PastDue: false, DaysOverdue: 5}, nil)
	if v != VariantFriendly {
		t.Errorf("Select = %s, want friendly", v)
	}
}

func TestSelect_RecentlyOverdue_Standard(t *testing.T) {
	for _, days := range []int{1, 15, 30} {
		v := Selector{}.Select(deadline.Urgency{PastDue: true, DaysOverdue: days}, nil)
		if v != VariantStandard {
			t.Errorf("Select(overdue %d) = %s, want standard", days, v)
		}
	}
}

func TestSelect_LongOverdue_Firm(t *testing.T) {
	for _, days := range []int{31, 60, 365} {
		v := Selector{}.Select(deadline.Urgency{PastDue: true, DaysOverdue: days}, nil)
		if v != VariantFirm {
			t.Errorf("Select(overdue %d) = %s, want firm", days, v)
		}
	}
}

func TestSelect_EscalationBoundary(t *testing.T) {
	// The standard→firm transition happens at exactly DaysOverdue > 30.
	if v := (Selector{}).Select(deadline.Urgency{PastDue: true, DaysOverdue: 30}, nil); v != VariantStandard {
		t.Errorf("day 30 = %s, want standard", v)
	}
	if v := (Selector{}).Select(deadline.Urgency{PastDue: true, DaysOverdue: 31}, nil); v != VariantFirm {
		t.Errorf("day 31 = %s, want firm", v)
	}
}

func TestSelect_OverrideWins(t *testing.T) {
	override := VariantFriendly
	v := Selector{}.Select(deadline.Urgency{PastDue: true, DaysOverdue: 100}, &override)
	if v != VariantFriendly {
		t.Errorf("Select with override = %s, want friendly", v)
	}
}

func TestSelect_CustomEscalationDays(t *testing.T) {
	s := Selector{EscalationDays: 10}
	if v := s.Select(deadline.Urgency{PastDue: true, DaysOverdue: 10}, nil); v != VariantStandard {
		t.Errorf("custom threshold day 10 = %s, want standard", v)
	}
	if v := s.Select(deadline.Urgency{PastDue: true, DaysOverdue: 11}, nil); v != VariantFirm {
		t.Errorf("custom threshold day 11 = %s, want firm", v)
	}
}
