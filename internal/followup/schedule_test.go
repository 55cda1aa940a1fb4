package followup

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompute_UnknownMethod(t *testing.T) {
	_, ok := Compute("snake-oil", day(2024, 1, 1), day(2024, 1, 1), DefaultReminderOffsetDays)
	if ok {
		t.Error("expected ok=false for unknown method")
	}
}

// Depo-Provera administered 2024-01-01: expiry 2024-03-31, reminder 2024-03-28.
func TestCompute_DepoProveraScenario(t *testing.T) {
	s, ok := Compute("depo-provera", day(2024, 1, 1), day(2024, 3, 25), DefaultReminderOffsetDays)
	if !ok {
		t.Fatal("expected known method")
	}
	if !s.ExpiryDate.Equal(day(2024, 3, 31)) {
		t.Errorf("expected expiry 2024-03-31, got %v", s.ExpiryDate)
	}
	if !s.ReminderDate.Equal(day(2024, 3, 28)) {
		t.Errorf("expected reminder 2024-03-28, got %v", s.ReminderDate)
	}
	if s.DaysUntilReminder != 3 {
		t.Errorf("expected 3 days until reminder, got %d", s.DaysUntilReminder)
	}
	if s.Urgency != UrgencyUrgent {
		t.Errorf("expected urgent, got %s", s.Urgency)
	}
}

func TestCompute_OverdueScenario(t *testing.T) {
	s, ok := Compute("depo-provera", day(2024, 1, 1), day(2024, 4, 1), DefaultReminderOffsetDays)
	if !ok {
		t.Fatal("expected known method")
	}
	if s.DaysUntilReminder != -4 {
		t.Errorf("expected -4 days, got %d", s.DaysUntilReminder)
	}
	if s.Urgency != UrgencyOverdue {
		t.Errorf("expected overdue, got %s", s.Urgency)
	}
}

func TestCompute_YearUnit(t *testing.T) {
	s, ok := Compute("implanon", day(2024, 5, 10), day(2024, 5, 10), DefaultReminderOffsetDays)
	if !ok {
		t.Fatal("expected known method")
	}
	if !s.ExpiryDate.Equal(day(2027, 5, 10)) {
		t.Errorf("expected same month/day 3 years later, got %v", s.ExpiryDate)
	}
}

// Feb 29 + 1 year normalizes to Mar 1 (time.AddDate convention), pinned here
// via the 3-year implant landing on a non-leap year.
func TestCompute_LeapDayNormalizes(t *testing.T) {
	s, ok := Compute("implanon", day(2024, 2, 29), day(2024, 2, 29), DefaultReminderOffsetDays)
	if !ok {
		t.Fatal("expected known method")
	}
	if !s.ExpiryDate.Equal(day(2027, 3, 1)) {
		t.Errorf("expected 2027-03-01, got %v", s.ExpiryDate)
	}
}

// The reminder always sits exactly offset days before expiry, whatever the
// method.
func TestCompute_ReminderOffset(t *testing.T) {
	for _, m := range Methods() {
		s, ok := Compute(m.ID, day(2024, 1, 1), day(2024, 1, 1), DefaultReminderOffsetDays)
		if !ok {
			t.Fatalf("method %s did not resolve", m.ID)
		}
		want := s.ExpiryDate.AddDate(0, 0, -DefaultReminderOffsetDays)
		if !s.ReminderDate.Equal(want) {
			t.Errorf("method %s: reminder %v, want %v", m.ID, s.ReminderDate, want)
		}
	}
}

func TestCompute_ConfigurableOffset(t *testing.T) {
	s, _ := Compute("depo-provera", day(2024, 1, 1), day(2024, 1, 1), 7)
	if !s.ReminderDate.Equal(day(2024, 3, 24)) {
		t.Errorf("expected reminder 2024-03-24 with 7-day offset, got %v", s.ReminderDate)
	}
}

func TestClassifyUrgency_Boundaries(t *testing.T) {
	cases := []struct {
		days int
		want Urgency
	}{
		{-10, UrgencyOverdue},
		{-1, UrgencyOverdue},
		{0, UrgencyDueToday},
		{1, UrgencyUrgent},
		{3, UrgencyUrgent},
		{4, UrgencyApproaching},
		{7, UrgencyApproaching},
		{8, UrgencyScheduled},
		{90, UrgencyScheduled},
	}
	for _, tc := range cases {
		if got := classifyUrgency(tc.days); got != tc.want {
			t.Errorf("classifyUrgency(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}

func TestLookupMethod(t *testing.T) {
	m, ok := LookupMethod("depo-provera")
	if !ok {
		t.Fatal("expected depo-provera in the table")
	}
	if m.Duration != 90 || m.Unit != UnitDays {
		t.Errorf("expected 90 days, got %d %s", m.Duration, m.Unit)
	}
}
