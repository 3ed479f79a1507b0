package model

import "time"

// ReminderState is the dispatch state of one reminder entry. The claim
// protocol moves pending → dispatching → sent; a failed send moves
// dispatching back to pending so the next scan cycle retries.
type ReminderState string

const (
	ReminderPending     ReminderState = "pending"
	ReminderDispatching ReminderState = "dispatching"
	ReminderSent        ReminderState = "sent"
)

// Reminder is one entry of a task's or meeting's reminders array.
type Reminder struct {
	Time       time.Time     `json:"time"`
	State      ReminderState `json:"state"`
	Type       string        `json:"type,omitempty"`
	DaysBefore int           `json:"daysBefore,omitempty"`
}

// ReminderFromMap reads one reminders-array entry. Documents written by
// older clients carry a plain "sent" boolean instead of a state tag; both
// shapes are accepted.
func ReminderFromMap(data map[string]interface{}) Reminder {
	r := Reminder{
		Time:       DocTime(data, "time"),
		Type:       DocString(data, "type"),
		DaysBefore: DocInt(data, "daysBefore"),
	}
	switch ReminderState(DocString(data, "state")) {
	case ReminderDispatching:
		r.State = ReminderDispatching
	case ReminderSent:
		r.State = ReminderSent
	case ReminderPending:
		r.State = ReminderPending
	default:
		if DocBool(data, "sent") {
			r.State = ReminderSent
		} else {
			r.State = ReminderPending
		}
	}
	return r
}

// ToMap writes the entry back, keeping the legacy "sent" boolean in sync
// with the state tag for older readers.
func (r Reminder) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"time":       r.Time.Format(time.RFC3339),
		"state":      string(r.State),
		"sent":       r.State == ReminderSent,
		"type":       r.Type,
		"daysBefore": r.DaysBefore,
	}
}

// RemindersFromDoc reads the full reminders array off a document.
func RemindersFromDoc(data map[string]interface{}) []Reminder {
	raw := DocSlice(data, "reminders")
	reminders := make([]Reminder, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]interface{}); ok {
			reminders = append(reminders, ReminderFromMap(m))
		}
	}
	return reminders
}

// RemindersToDoc converts back to the stored array shape.
func RemindersToDoc(reminders []Reminder) []interface{} {
	out := make([]interface{}, len(reminders))
	for i, r := range reminders {
		out[i] = r.ToMap()
	}
	return out
}
