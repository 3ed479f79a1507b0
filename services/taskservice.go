package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

// ErrInvalidTransition is returned for a status write outside the
// allow-list.
var ErrInvalidTransition = errors.New("status transition not allowed")

type TaskService struct {
	Store    store.Store
	Mailer   Mailer
	Activity *ActivityLogger
	Log      *logrus.Logger
}

// AssignOutcome says what happened to one assignment as a whole. Because
// the move runs in a single store transaction there is no partial state:
// either every write applied or none did.
type AssignOutcome string

const (
	AssignApplied    AssignOutcome = "applied"
	AssignRolledBack AssignOutcome = "rolled-back"
)

type AssignResult struct {
	TaskID      string
	Employees   []model.Identity
	AssignedIDs []string
	Outcome     AssignOutcome
	Err         error
}

// AssignSummary accumulates a bulk fan-out: processing never aborts early,
// failures are counted per task.
type AssignSummary struct {
	Assigned int
	Failed   int
	Results  []AssignResult
}

// AssignTask moves one unassigned task to the given employees: the
// original document is copied into employee_tasks once per employee with
// assignee identity attached and workflow fields reset, one audit entry is
// appended, and the original is deleted. All writes share one transaction,
// so a missing task fails closed with zero writes.
func (s *TaskService) AssignTask(ctx context.Context, taskID string, employees ...model.Identity) AssignResult {
	result := AssignResult{TaskID: taskID, Employees: employees}
	if len(employees) == 0 {
		result.Outcome = AssignRolledBack
		result.Err = errors.New("no employees given")
		return result
	}

	var title string
	var deadline time.Time
	err := s.Store.RunTransaction(ctx, func(tx store.Tx) error {
		doc, err := tx.Get(store.UnassignedTasks, taskID)
		if err != nil {
			return err
		}
		title = model.DocString(doc.Data, "title")
		deadline = model.DocTime(doc.Data, "deadline")
		now := time.Now()

		result.AssignedIDs = result.AssignedIDs[:0]
		for _, employee := range employees {
			data := make(map[string]interface{}, len(doc.Data)+6)
			for k, v := range doc.Data {
				data[k] = v
			}
			data["assignedTo"] = employee.ToMap()
			data["status"] = string(model.TaskAssigned)
			data["progress"] = 0
			data["statusNotes"] = ""
			data["assignedAt"] = now
			data["updatedAt"] = now
			if _, ok := data["createdAt"]; !ok {
				data["createdAt"] = now
			}

			assignedID := uuid.New().String()
			if err := tx.Set(store.EmployeeTasks, assignedID, data); err != nil {
				return err
			}
			result.AssignedIDs = append(result.AssignedIDs, assignedID)

			entry := model.Activity{
				ActorID:   employee.UID,
				ActorName: employee.Name,
				Action:    "task_assigned",
				Details:   fmt.Sprintf("task %q assigned to %s", title, employee.Email),
				Timestamp: now,
			}
			if err := tx.Set(store.AdminActivity, uuid.New().String(), entry.ToDoc()); err != nil {
				return err
			}
		}
		return tx.Delete(store.UnassignedTasks, taskID)
	})
	if err != nil {
		result.Outcome = AssignRolledBack
		result.Err = err
		s.Log.WithError(err).WithField("taskId", taskID).Error("task assignment rolled back")
		return result
	}

	result.Outcome = AssignApplied

	// Notification emails are deliberately outside the transaction:
	// delivery failure never undoes an applied assignment.
	for _, employee := range employees {
		subject, html := AssignmentEmail(title, deadline, employee)
		if err := s.Mailer.Send(employee.Email, subject, html); err != nil {
			s.Log.WithError(err).WithField("to", employee.Email).Error("assignment email failed")
		}
	}
	return result
}

// AssignTasks fans N tasks out to M employees. Each task is one
// independent transaction; one failure does not stop the rest.
func (s *TaskService) AssignTasks(ctx context.Context, taskIDs []string, employees []model.Identity) AssignSummary {
	summary := AssignSummary{}
	for _, taskID := range taskIDs {
		result := s.AssignTask(ctx, taskID, employees...)
		summary.Results = append(summary.Results, result)
		if result.Outcome == AssignApplied {
			summary.Assigned++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// Create stores a new task. When the creator set a deadline with reminder
// preferences, a default reminders array is derived so the scanner has
// concrete entries to evaluate.
func (s *TaskService) Create(ctx context.Context, task model.Task, creator model.Identity) (string, error) {
	now := time.Now()
	task.CreatedBy = creator
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Status == "" {
		task.Status = model.TaskPending
	}
	if len(task.Reminders) == 0 && !task.Deadline.IsZero() {
		task.Reminders = defaultReminders(task.Deadline, task.Notifications.ReminderDays)
	}

	taskID := uuid.New().String()
	if err := s.Store.Set(ctx, store.UnassignedTasks, taskID, task.ToDoc()); err != nil {
		return "", err
	}
	s.Activity.LogAdmin(ctx, creator, "task_created", fmt.Sprintf("task %q created", task.Title))
	return taskID, nil
}

// defaultReminders mirrors what the clients write: one entry N days before
// the deadline when reminderDays is set, and one 30 minutes before.
func defaultReminders(deadline time.Time, reminderDays int) []model.Reminder {
	var reminders []model.Reminder
	if reminderDays > 0 {
		reminders = append(reminders, model.Reminder{
			Time:       deadline.Add(-time.Duration(reminderDays) * 24 * time.Hour),
			State:      model.ReminderPending,
			Type:       "custom",
			DaysBefore: reminderDays,
		})
	}
	reminders = append(reminders, model.Reminder{
		Time:  deadline.Add(-30 * time.Minute),
		State: model.ReminderPending,
		Type:  "default",
	})
	return reminders
}

// ListByAssignee returns the employee_tasks documents assigned to a user.
func (s *TaskService) ListByAssignee(ctx context.Context, uid string) ([]model.Task, error) {
	docs, err := s.Store.Find(ctx, store.EmployeeTasks,
		store.Filter{Field: "assignedTo.uid", Op: "==", Value: uid})
	if err != nil {
		return nil, err
	}
	tasks := make([]model.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, model.TaskFromDoc(doc.Data, doc.ID))
	}
	return tasks, nil
}

// UpdateStatus applies an FSM-checked status change to an employee task.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID string, next model.TaskStatus, progress *int, notes string, actor model.Identity) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	doc, err := s.Store.Get(ctx, store.EmployeeTasks, taskID)
	if err != nil {
		return err
	}
	current := model.TaskStatus(model.DocString(doc.Data, "status"))
	if !current.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	fields := map[string]interface{}{
		"status":      string(next),
		"statusNotes": notes,
		"updatedAt":   time.Now(),
	}
	if progress != nil {
		fields["progress"] = *progress
	}
	if next == model.TaskCompleted {
		fields["progress"] = 100
	}
	if err := s.Store.Update(ctx, store.EmployeeTasks, taskID, fields); err != nil {
		return err
	}
	s.Activity.LogEmployee(ctx, actor, "task_status_changed",
		fmt.Sprintf("task %s: %s -> %s", taskID, current, next))
	return nil
}

// Delete removes a task from whichever collection it lives in and records
// the action.
func (s *TaskService) Delete(ctx context.Context, col store.Collection, taskID string, actor model.Identity) error {
	doc, err := s.Store.Get(ctx, col, taskID)
	if err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, col, taskID); err != nil {
		return err
	}
	s.Activity.LogAdmin(ctx, actor, "task_deleted",
		fmt.Sprintf("task %q deleted", model.DocString(doc.Data, "title")))
	return nil
}
