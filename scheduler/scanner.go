package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

// DefaultLookahead is the window a reminder entry must fall into to fire:
// the scan interval itself, so consecutive runs tile the timeline.
const DefaultLookahead = 5 * time.Minute

var (
	windowCollections   = []store.Collection{store.Tasks, store.EmployeeTasks, store.EmployeeMeetings}
	deadlineCollections = []store.Collection{store.Tasks, store.EmployeeTasks}
)

// ReminderDue reports whether one reminders-array entry should fire now:
// still pending and now <= time <= now+lookahead, both ends inclusive.
func ReminderDue(r model.Reminder, now time.Time, lookahead time.Duration) bool {
	if r.State != model.ReminderPending {
		return false
	}
	if r.Time.Before(now) {
		return false
	}
	return !r.Time.After(now.Add(lookahead))
}

// DueReminders returns the indexes of every due entry on a document. The
// predicate is stateless: until an entry's state changes, every scan over
// the same document flags it again.
func DueReminders(doc map[string]interface{}, now time.Time, lookahead time.Duration) []int {
	var due []int
	for i, r := range model.RemindersFromDoc(doc) {
		if ReminderDue(r, now, lookahead) {
			due = append(due, i)
		}
	}
	return due
}

// DeadlineDue is the deadline-derived variant: due once now has reached
// deadline − reminderDays days, or deadline − 30 minutes, whichever comes
// first. There is no upper bound: once true it stays true on every
// subsequent run, so an overdue task keeps generating one email per scan
// cycle. See DESIGN.md; kept as-is rather than silently bounded.
func DeadlineDue(deadline time.Time, reminderDays int, now time.Time) bool {
	custom := deadline.Add(-time.Duration(reminderDays) * 24 * time.Hour)
	def := deadline.Add(-30 * time.Minute)
	return !now.Before(custom) || !now.Before(def)
}

// DeadlineReminderKind labels which threshold fired, custom taking
// precedence when both have passed.
func DeadlineReminderKind(deadline time.Time, reminderDays int, now time.Time) string {
	if reminderDays > 0 && !now.Before(deadline.Add(-time.Duration(reminderDays)*24*time.Hour)) {
		return "custom"
	}
	return "default"
}

// Scanner walks the watched collections on every tick and hands due items
// to the dispatcher. Per-document failures are logged and skipped; the
// scan always finishes the remaining documents.
type Scanner struct {
	Store      store.Store
	Dispatcher *Dispatcher
	Log        *logrus.Logger
	Lookahead  time.Duration
}

func (s *Scanner) lookahead() time.Duration {
	if s.Lookahead > 0 {
		return s.Lookahead
	}
	return DefaultLookahead
}

// Run executes one full scan cycle: the reminders-array window scan and
// the deadline scan.
func (s *Scanner) Run(ctx context.Context) {
	s.ScanWindows(ctx)
	s.ScanDeadlines(ctx)
}

// ScanWindows reads the full contents of each watched collection (no
// query filter) and dispatches every due reminders-array entry.
func (s *Scanner) ScanWindows(ctx context.Context) {
	now := time.Now()
	for _, col := range windowCollections {
		docs, err := s.Store.List(ctx, col)
		if err != nil {
			s.Log.WithError(err).WithField("collection", col).Error("window scan read failed")
			continue
		}
		for _, doc := range docs {
			for _, idx := range DueReminders(doc.Data, now, s.lookahead()) {
				if err := s.Dispatcher.DispatchWindow(ctx, col, doc, idx); err != nil {
					s.Log.WithError(err).WithFields(logrus.Fields{
						"collection": col,
						"doc":        doc.ID,
						"reminder":   idx,
					}).Error("reminder dispatch failed")
				}
			}
		}
	}
}

// ScanDeadlines evaluates the deadline-derived predicate over the task
// collections.
func (s *Scanner) ScanDeadlines(ctx context.Context) {
	now := time.Now()
	for _, col := range deadlineCollections {
		docs, err := s.Store.List(ctx, col)
		if err != nil {
			s.Log.WithError(err).WithField("collection", col).Error("deadline scan read failed")
			continue
		}
		for _, doc := range docs {
			task := model.TaskFromDoc(doc.Data, doc.ID)
			if task.Deadline.IsZero() {
				continue
			}
			if task.Status == model.TaskCompleted || task.Status == model.TaskCancelled {
				continue
			}
			if !DeadlineDue(task.Deadline, task.Notifications.ReminderDays, now) {
				continue
			}
			kind := DeadlineReminderKind(task.Deadline, task.Notifications.ReminderDays, now)
			if err := s.Dispatcher.DispatchDeadline(ctx, col, doc, kind); err != nil {
				s.Log.WithError(err).WithFields(logrus.Fields{
					"collection": col,
					"doc":        doc.ID,
				}).Error("deadline reminder dispatch failed")
			}
		}
	}
}
