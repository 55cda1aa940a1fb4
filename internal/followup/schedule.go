package followup

import "time"

// DefaultReminderOffsetDays is how far before protection expiry the reminder
// lands unless configured otherwise.
const DefaultReminderOffsetDays = 3

// Urgency classifies how soon a reminder is due relative to today.
type Urgency string

const (
	UrgencyOverdue     Urgency = "overdue"
	UrgencyDueToday    Urgency = "due_today"
	UrgencyUrgent      Urgency = "urgent"
	UrgencyApproaching Urgency = "approaching"
	UrgencyScheduled   Urgency = "scheduled"
)

// Schedule is a computed follow-up ("TCA") plan for one administration.
type Schedule struct {
	Method             Method    `json:"method"`
	AdministrationDate time.Time `json:"administration_date"`
	ExpiryDate         time.Time `json:"expiry_date"`
	ReminderDate       time.Time `json:"reminder_date"`
	DaysUntilReminder  int       `json:"days_until_reminder"`
	Urgency            Urgency   `json:"urgency"`
}

// Compute builds the follow-up schedule for a method administered on a given
// date. Unknown method ids return ok=false: a benign not-ready state, never
// an error. Day-duration methods expire exactly Duration days after
// administration; year-duration methods expire on the same month and day
// Duration years later, with Feb 29 normalizing per time.AddDate (Mar 1 on
// non-leap years).
func Compute(methodID string, administered, today time.Time, reminderOffsetDays int) (Schedule, bool) {
	m, ok := LookupMethod(methodID)
	if !ok {
		return Schedule{}, false
	}

	administered = truncateToDay(administered)
	today = truncateToDay(today)

	var expiry time.Time
	if m.Unit == UnitYears {
		expiry = administered.AddDate(m.Duration, 0, 0)
	} else {
		expiry = administered.AddDate(0, 0, m.Duration)
	}
	reminder := expiry.AddDate(0, 0, -reminderOffsetDays)
	days := int(reminder.Sub(today).Hours() / 24)

	return Schedule{
		Method:             m,
		AdministrationDate: administered,
		ExpiryDate:         expiry,
		ReminderDate:       reminder,
		DaysUntilReminder:  days,
		Urgency:            classifyUrgency(days),
	}, true
}

func classifyUrgency(daysUntilReminder int) Urgency {
	switch {
	case daysUntilReminder < 0:
		return UrgencyOverdue
	case daysUntilReminder == 0:
		return UrgencyDueToday
	case daysUntilReminder <= 3:
		return UrgencyUrgent
	case daysUntilReminder <= 7:
		return UrgencyApproaching
	default:
		return UrgencyScheduled
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
