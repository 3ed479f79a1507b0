package model

import "time"

type MeetingType string

const (
	MeetingVirtual  MeetingType = "virtual"
	MeetingInPerson MeetingType = "in-person"
	MeetingHybrid   MeetingType = "hybrid"
)

func (t MeetingType) Valid() bool {
	return t == MeetingVirtual || t == MeetingInPerson || t == MeetingHybrid
}

type Meeting struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Start        time.Time     `json:"start"`
	End          time.Time     `json:"end"`
	Location     string        `json:"location,omitempty"`
	MeetingLink  string        `json:"meetingLink,omitempty"`
	Type         MeetingType   `json:"type"`
	Status       MeetingStatus `json:"status"`
	ReminderTime string        `json:"reminderTime,omitempty"` // "HH:mm"
	AssignedTo   Identity      `json:"assignedTo"`
	AssignedBy   Identity      `json:"assignedBy"`
	Reminders    []Reminder    `json:"reminders"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func MeetingFromDoc(doc map[string]interface{}, id string) Meeting {
	return Meeting{
		ID:           id,
		Title:        DocString(doc, "title"),
		Description:  DocString(doc, "description"),
		Start:        DocTime(doc, "start"),
		End:          DocTime(doc, "end"),
		Location:     DocString(doc, "location"),
		MeetingLink:  DocString(doc, "meetingLink"),
		Type:         MeetingType(DocString(doc, "type")),
		Status:       MeetingStatus(DocString(doc, "status")),
		ReminderTime: DocString(doc, "reminderTime"),
		AssignedTo:   IdentityFromMap(DocMap(doc, "assignedTo")),
		AssignedBy:   IdentityFromMap(DocMap(doc, "assignedBy")),
		Reminders:    RemindersFromDoc(doc),
		CreatedAt:    DocTime(doc, "createdAt"),
		UpdatedAt:    DocTime(doc, "updatedAt"),
	}
}

func (m Meeting) ToDoc() map[string]interface{} {
	return map[string]interface{}{
		"title":        m.Title,
		"description":  m.Description,
		"start":        m.Start,
		"end":          m.End,
		"location":     m.Location,
		"meetingLink":  m.MeetingLink,
		"type":         string(m.Type),
		"status":       string(m.Status),
		"reminderTime": m.ReminderTime,
		"assignedTo":   m.AssignedTo.ToMap(),
		"assignedBy":   m.AssignedBy.ToMap(),
		"reminders":    RemindersToDoc(m.Reminders),
		"createdAt":    m.CreatedAt,
		"updatedAt":    m.UpdatedAt,
	}
}
