package model

import (
	"time"
)

// Identity is the embedded user reference stamped onto documents
// (assignedTo, assignedBy, createdBy). Relationships are by convention
// only; nothing enforces that the referenced user still exists.
type Identity struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func IdentityFromMap(data map[string]interface{}) Identity {
	if data == nil {
		return Identity{}
	}
	return Identity{
		UID:   DocString(data, "uid"),
		Name:  DocString(data, "name"),
		Email: DocString(data, "email"),
	}
}

func (i Identity) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"uid":   i.UID,
		"name":  i.Name,
		"email": i.Email,
	}
}

// NotificationPrefs controls how a task's owner is reminded.
type NotificationPrefs struct {
	Email        bool `json:"email"`
	Push         bool `json:"push"`
	ReminderDays int  `json:"reminderDays"`
}

type Task struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Priority      Priority          `json:"priority"`
	Status        TaskStatus        `json:"status"`
	Deadline      time.Time         `json:"deadline"`
	Notifications NotificationPrefs `json:"notifications"`
	Progress      int               `json:"progress"`
	StatusNotes   string            `json:"statusNotes"`
	Reminders     []Reminder        `json:"reminders"`
	AssignedTo    Identity          `json:"assignedTo"`
	CreatedBy     Identity          `json:"createdBy"`
	Email         string            `json:"email,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// TaskFromDoc copies the fields the service layer cares about out of a
// raw document. Fields it does not know about stay on the document.
func TaskFromDoc(doc map[string]interface{}, id string) Task {
	prefs := NotificationPrefs{}
	if m := DocMap(doc, "notifications"); m != nil {
		prefs.Email = DocBool(m, "email")
		prefs.Push = DocBool(m, "push")
		prefs.ReminderDays = DocInt(m, "reminderDays")
	}
	return Task{
		ID:            id,
		Title:         DocString(doc, "title"),
		Description:   DocString(doc, "description"),
		Priority:      Priority(DocString(doc, "priority")),
		Status:        TaskStatus(DocString(doc, "status")),
		Deadline:      DocTime(doc, "deadline"),
		Notifications: prefs,
		Progress:      DocInt(doc, "progress"),
		StatusNotes:   DocString(doc, "statusNotes"),
		Reminders:     RemindersFromDoc(doc),
		AssignedTo:    IdentityFromMap(DocMap(doc, "assignedTo")),
		CreatedBy:     IdentityFromMap(DocMap(doc, "createdBy")),
		Email:         DocString(doc, "email"),
		CreatedAt:     DocTime(doc, "createdAt"),
		UpdatedAt:     DocTime(doc, "updatedAt"),
	}
}

func (t Task) ToDoc() map[string]interface{} {
	return map[string]interface{}{
		"title":       t.Title,
		"description": t.Description,
		"priority":    string(t.Priority),
		"status":      string(t.Status),
		"deadline":    t.Deadline,
		"notifications": map[string]interface{}{
			"email":        t.Notifications.Email,
			"push":         t.Notifications.Push,
			"reminderDays": t.Notifications.ReminderDays,
		},
		"progress":    t.Progress,
		"statusNotes": t.StatusNotes,
		"reminders":   RemindersToDoc(t.Reminders),
		"assignedTo":  t.AssignedTo.ToMap(),
		"createdBy":   t.CreatedBy.ToMap(),
		"email":       t.Email,
		"createdAt":   t.CreatedAt,
		"updatedAt":   t.UpdatedAt,
	}
}

// Recipient resolves the reminder address for a document: its own email
// field first, then the assignee, then the creator.
func Recipient(doc map[string]interface{}) string {
	if email := DocString(doc, "email"); email != "" {
		return email
	}
	if m := DocMap(doc, "assignedTo"); m != nil {
		if email := DocString(m, "email"); email != "" {
			return email
		}
	}
	if m := DocMap(doc, "createdBy"); m != nil {
		if email := DocString(m, "email"); email != "" {
			return email
		}
	}
	return ""
}
