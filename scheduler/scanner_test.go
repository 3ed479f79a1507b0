package scheduler

import (
	"testing"
	"time"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
)

func TestReminderDueWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lookahead := 5 * time.Minute

	tests := []struct {
		name   string
		offset time.Duration
		state  model.ReminderState
		want   bool
	}{
		{"exactly now", 0, model.ReminderPending, true},
		{"inside window", 3 * time.Minute, model.ReminderPending, true},
		{"upper bound inclusive", 5 * time.Minute, model.ReminderPending, true},
		{"just past window", 5*time.Minute + time.Second, model.ReminderPending, false},
		{"one second in the past", -time.Second, model.ReminderPending, false},
		{"sent regardless of time", 2 * time.Minute, model.ReminderSent, false},
		{"claimed by another run", 2 * time.Minute, model.ReminderDispatching, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.Reminder{Time: now.Add(tt.offset), State: tt.state}
			if got := ReminderDue(r, now, lookahead); got != tt.want {
				t.Errorf("ReminderDue(offset=%v, state=%s) = %v, want %v", tt.offset, tt.state, got, tt.want)
			}
		})
	}
}

// The matcher is stateless: until an entry's state changes, every scan
// over the same unmodified document flags it again.
func TestDueRemindersFlagsSameEntryOnRepeatedScan(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := map[string]interface{}{
		"reminders": []interface{}{
			map[string]interface{}{
				"time": now.Add(2 * time.Minute).Format(time.RFC3339),
				"sent": false,
			},
		},
	}

	first := DueReminders(doc, now, 5*time.Minute)
	second := DueReminders(doc, now, 5*time.Minute)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected both scans to flag the entry, got %v then %v", first, second)
	}
	if first[0] != 0 || second[0] != 0 {
		t.Fatalf("expected entry 0 flagged twice, got %v then %v", first, second)
	}
}

func TestDeadlineDueBoundaries(t *testing.T) {
	deadline := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	reminderDays := 3
	threshold := deadline.Add(-3 * 24 * time.Hour)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"one second before threshold", threshold.Add(-time.Second), false},
		{"exactly at threshold", threshold, true},
		{"between threshold and deadline", deadline.Add(-24 * time.Hour), true},
		{"at the deadline", deadline, true},
		{"long after the deadline", deadline.Add(90 * 24 * time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeadlineDue(deadline, reminderDays, tt.now); got != tt.want {
				t.Errorf("DeadlineDue(now=%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestDeadlineDueSubmitReportScenario(t *testing.T) {
	deadline := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	reminderDays := 2

	atBoundary := time.Date(2024, 6, 8, 9, 0, 0, 0, time.UTC)
	if !DeadlineDue(deadline, reminderDays, atBoundary) {
		t.Error("expected due exactly at deadline - 2 days")
	}

	justBefore := time.Date(2024, 6, 8, 8, 59, 59, 0, time.UTC)
	if DeadlineDue(deadline, reminderDays, justBefore) {
		t.Error("expected not due one second before the boundary")
	}
}

func TestDeadlineDueDefaultThreshold(t *testing.T) {
	deadline := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	// Without a custom reminderDays window the 30-minute default applies.
	if DeadlineDue(deadline, 0, deadline.Add(-31*time.Minute)) {
		t.Error("expected not due before deadline - 30m")
	}
	if !DeadlineDue(deadline, 0, deadline.Add(-30*time.Minute)) {
		t.Error("expected due at deadline - 30m")
	}
}

func TestDeadlineReminderKind(t *testing.T) {
	deadline := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	if kind := DeadlineReminderKind(deadline, 2, deadline.Add(-24*time.Hour)); kind != "custom" {
		t.Errorf("expected custom kind inside the reminderDays window, got %q", kind)
	}
	if kind := DeadlineReminderKind(deadline, 0, deadline.Add(-10*time.Minute)); kind != "default" {
		t.Errorf("expected default kind without reminderDays, got %q", kind)
	}
}
