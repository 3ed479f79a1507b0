package model

import "time"

// Activity is one append-only audit-log entry. Entries are never updated
// or deleted.
type Activity struct {
	ActorID   string
	ActorName string
	Action    string
	Details   string
	Timestamp time.Time
}

func (a Activity) ToDoc() map[string]interface{} {
	return map[string]interface{}{
		"actorId":   a.ActorID,
		"actorName": a.ActorName,
		"action":    a.Action,
		"details":   a.Details,
		"timestamp": a.Timestamp,
	}
}
