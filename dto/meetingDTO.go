package dto

type CreateMeetingRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Start        string `json:"start" binding:"required"` // RFC3339
	End          string `json:"end" binding:"required"`
	Location     string `json:"location"`
	MeetingLink  string `json:"meetingLink"`
	Type         string `json:"type" binding:"required"`
	ReminderTime string `json:"reminderTime"` // "HH:mm"
}

type UpdateMeetingStatusRequest struct {
	MeetingID string `json:"meetingId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// InviteMeetingRequest copies the meeting into employee_meetings once per
// invitee and emails each of them.
type InviteMeetingRequest struct {
	MeetingID      string   `json:"meetingId" binding:"required"`
	EmployeeEmails []string `json:"employeeEmails" binding:"required,min=1"`
}
