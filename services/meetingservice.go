package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

type MeetingService struct {
	Store    store.Store
	Mailer   Mailer
	Activity *ActivityLogger
	Log      *logrus.Logger
}

// InviteResult reports one invitee of a fan-out.
type InviteResult struct {
	Email string
	Err   error
}

type InviteSummary struct {
	Invited int
	Failed  int
	Results []InviteResult
}

func (s *MeetingService) Create(ctx context.Context, meeting model.Meeting, creator model.Identity) (string, error) {
	now := time.Now()
	meeting.AssignedBy = creator
	meeting.CreatedAt = now
	meeting.UpdatedAt = now
	if meeting.Status == "" {
		meeting.Status = model.MeetingScheduled
	}
	if len(meeting.Reminders) == 0 && !meeting.Start.IsZero() {
		meeting.Reminders = []model.Reminder{{
			Time:  meeting.Start.Add(-30 * time.Minute),
			State: model.ReminderPending,
			Type:  "default",
		}}
	}

	meetingID := uuid.New().String()
	if err := s.Store.Set(ctx, store.Meetings, meetingID, meeting.ToDoc()); err != nil {
		return "", err
	}
	s.Activity.LogAdmin(ctx, creator, "meeting_created", fmt.Sprintf("meeting %q scheduled", meeting.Title))
	return meetingID, nil
}

// UpdateStatus validates the transition on the parent meeting and cascades
// the new status to every employee copy carrying its meetingId, all in one
// transaction. Returns how many copies were updated.
func (s *MeetingService) UpdateStatus(ctx context.Context, meetingID string, next model.MeetingStatus, actor model.Identity) (int, error) {
	if !next.Valid() {
		return 0, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	parent, err := s.Store.Get(ctx, store.Meetings, meetingID)
	if err != nil {
		return 0, err
	}
	current := model.MeetingStatus(model.DocString(parent.Data, "status"))
	if !current.CanTransition(next) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}

	copies, err := s.Store.Find(ctx, store.EmployeeMeetings,
		store.Filter{Field: "meetingId", Op: "==", Value: meetingID})
	if err != nil {
		return 0, err
	}

	now := time.Now()
	fields := map[string]interface{}{
		"status":    string(next),
		"updatedAt": now,
	}
	err = s.Store.RunTransaction(ctx, func(tx store.Tx) error {
		if err := tx.Update(store.Meetings, meetingID, fields); err != nil {
			return err
		}
		for _, copy := range copies {
			if err := tx.Update(store.EmployeeMeetings, copy.ID, fields); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.Activity.LogAdmin(ctx, actor, "meeting_status_changed",
		fmt.Sprintf("meeting %s: %s -> %s (%d employee copies)", meetingID, current, next, len(copies)))
	return len(copies), nil
}

// Invite copies the meeting into employee_meetings once per invitee and
// emails each of them. The fan-out is best-effort: one failed invitee does
// not stop the rest.
func (s *MeetingService) Invite(ctx context.Context, meetingID string, invitees []model.Identity, inviter model.Identity) (InviteSummary, error) {
	parent, err := s.Store.Get(ctx, store.Meetings, meetingID)
	if err != nil {
		return InviteSummary{}, err
	}
	meeting := model.MeetingFromDoc(parent.Data, parent.ID)

	summary := InviteSummary{}
	now := time.Now()
	for _, invitee := range invitees {
		data := make(map[string]interface{}, len(parent.Data)+4)
		for k, v := range parent.Data {
			data[k] = v
		}
		data["meetingId"] = meetingID
		data["assignedTo"] = invitee.ToMap()
		data["assignedBy"] = inviter.ToMap()
		data["updatedAt"] = now

		if err := s.Store.Set(ctx, store.EmployeeMeetings, uuid.New().String(), data); err != nil {
			s.Log.WithError(err).WithField("email", invitee.Email).Error("failed to create employee meeting copy")
			summary.Failed++
			summary.Results = append(summary.Results, InviteResult{Email: invitee.Email, Err: err})
			continue
		}

		subject, html := InvitationEmail(meeting, invitee)
		if err := s.Mailer.Send(invitee.Email, subject, html); err != nil {
			// The copy stays; only the notification failed.
			s.Log.WithError(err).WithField("email", invitee.Email).Error("invitation email failed")
			summary.Failed++
			summary.Results = append(summary.Results, InviteResult{Email: invitee.Email, Err: err})
			continue
		}

		summary.Invited++
		summary.Results = append(summary.Results, InviteResult{Email: invitee.Email})
	}

	s.Activity.LogAdmin(ctx, inviter, "meeting_invitations_sent",
		fmt.Sprintf("meeting %q: %d invited, %d failed", meeting.Title, summary.Invited, summary.Failed))
	return summary, nil
}

// Delete removes a meeting and every employee copy sharing its title and
// start time, in one transaction.
func (s *MeetingService) Delete(ctx context.Context, meetingID string, actor model.Identity) error {
	parent, err := s.Store.Get(ctx, store.Meetings, meetingID)
	if err != nil {
		return err
	}
	title := model.DocString(parent.Data, "title")
	start := model.DocTime(parent.Data, "start")

	copies, err := s.Store.Find(ctx, store.EmployeeMeetings,
		store.Filter{Field: "title", Op: "==", Value: title},
		store.Filter{Field: "start", Op: "==", Value: start})
	if err != nil {
		return err
	}

	err = s.Store.RunTransaction(ctx, func(tx store.Tx) error {
		if err := tx.Delete(store.Meetings, meetingID); err != nil {
			return err
		}
		for _, copy := range copies {
			if err := tx.Delete(store.EmployeeMeetings, copy.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Activity.LogAdmin(ctx, actor, "meeting_deleted",
		fmt.Sprintf("meeting %q deleted with %d employee copies", title, len(copies)))
	return nil
}
