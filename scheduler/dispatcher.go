package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

// Dispatcher renders and sends one email per due reminder. A reminder is
// claimed with a conditional transactional write before sending, so two
// overlapping scanner runs cannot both deliver the same entry: the loser
// of the claim skips.
type Dispatcher struct {
	Store  store.Store
	Mailer services.Mailer
	Log    *logrus.Logger
}

// DispatchWindow handles one due reminders-array entry. On transport
// failure the claim is released, leaving the entry pending so the next
// cycle retries; nothing is retried within a cycle.
func (d *Dispatcher) DispatchWindow(ctx context.Context, col store.Collection, doc store.Doc, idx int) error {
	recipient := model.Recipient(doc.Data)
	if recipient == "" {
		return fmt.Errorf("no recipient on %s/%s", col, doc.ID)
	}

	claimed, err := d.transition(ctx, col, doc.ID, idx, model.ReminderPending, model.ReminderDispatching)
	if err != nil {
		return err
	}
	if !claimed {
		// Another run owns this entry, or it is already sent.
		return nil
	}

	var subject, html string
	if col == store.EmployeeMeetings {
		subject, html = services.MeetingReminderEmail(model.MeetingFromDoc(doc.Data, doc.ID))
	} else {
		subject, html = services.TaskReminderEmail(
			model.DocString(doc.Data, "title"), model.DocTime(doc.Data, "deadline"))
	}

	if err := d.Mailer.Send(recipient, subject, html); err != nil {
		if _, rerr := d.transition(ctx, col, doc.ID, idx, model.ReminderDispatching, model.ReminderPending); rerr != nil {
			d.Log.WithError(rerr).WithFields(logrus.Fields{
				"collection": col, "doc": doc.ID, "reminder": idx,
			}).Error("failed to release reminder claim")
		}
		return err
	}

	if _, err := d.transition(ctx, col, doc.ID, idx, model.ReminderDispatching, model.ReminderSent); err != nil {
		return err
	}
	d.Log.WithFields(logrus.Fields{
		"collection": col, "doc": doc.ID, "reminder": idx, "to": recipient,
	}).Info("reminder dispatched")
	return nil
}

// transition conditionally moves entry idx from one state to another,
// rewriting the reminders array inside a transaction. Returns false when
// the entry was not in the expected state.
func (d *Dispatcher) transition(ctx context.Context, col store.Collection, id string, idx int, from, to model.ReminderState) (bool, error) {
	moved := false
	err := d.Store.RunTransaction(ctx, func(tx store.Tx) error {
		fresh, err := tx.Get(col, id)
		if err != nil {
			return err
		}
		reminders := model.RemindersFromDoc(fresh.Data)
		if idx >= len(reminders) || reminders[idx].State != from {
			return nil
		}
		reminders[idx].State = to
		moved = true
		return tx.Update(col, id, map[string]interface{}{
			"reminders": model.RemindersToDoc(reminders),
		})
	})
	return moved, err
}

// DispatchDeadline emails one deadline-derived reminder. lastReminderSent
// and reminderType are bookkeeping only; the deadline predicate never
// reads them, so an overdue task emails again on every cycle until its
// status leaves the scanned set.
func (d *Dispatcher) DispatchDeadline(ctx context.Context, col store.Collection, doc store.Doc, kind string) error {
	recipient := model.Recipient(doc.Data)
	if recipient == "" {
		return fmt.Errorf("no recipient on %s/%s", col, doc.ID)
	}

	subject, html := services.TaskReminderEmail(
		model.DocString(doc.Data, "title"), model.DocTime(doc.Data, "deadline"))
	if err := d.Mailer.Send(recipient, subject, html); err != nil {
		return err
	}

	if err := d.Store.Update(ctx, col, doc.ID, map[string]interface{}{
		"lastReminderSent": time.Now(),
		"reminderType":     kind,
	}); err != nil {
		return err
	}
	d.Log.WithFields(logrus.Fields{
		"collection": col, "doc": doc.ID, "kind": kind, "to": recipient,
	}).Info("deadline reminder dispatched")
	return nil
}
