package dto

type NotificationPrefsRequest struct {
	Email        bool `json:"email"`
	Push         bool `json:"push"`
	ReminderDays int  `json:"reminderDays"`
}

type CreateTaskRequest struct {
	Title         string                    `json:"title" binding:"required"`
	Description   string                    `json:"description"`
	Priority      string                    `json:"priority" binding:"required"`
	Deadline      string                    `json:"deadline" binding:"required"` // RFC3339
	Notifications *NotificationPrefsRequest `json:"notifications"`
	AssigneeEmail string                    `json:"assigneeEmail"`
}

// AssignTaskRequest fans one unassigned task out to every listed employee.
type AssignTaskRequest struct {
	TaskID         string      `json:"taskId" binding:"required"`
	EmployeeEmails []string    `json:"employeeEmails" binding:"required,min=1"`
	TaskDetails    TaskDetails `json:"taskDetails"`
}

type TaskDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
}

type SendEmailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	HTML    string `json:"html" binding:"required"`
}

type UpdateTaskStatusRequest struct {
	Status      string `json:"status" binding:"required"`
	Progress    *int   `json:"progress"`
	StatusNotes string `json:"statusNotes"`
}
