package scheduler

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/services"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

type sentMail struct {
	To      string
	Subject string
}

// fakeMailer records deliveries and can be told to fail.
type fakeMailer struct {
	sent []sentMail
	fail bool
}

func (m *fakeMailer) Send(to, subject, html string) error {
	if m.fail {
		return fmt.Errorf("%w: connection refused", services.ErrTransport)
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject})
	return nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func seedTaskWithReminder(t *testing.T, st *store.Memory, id string, reminderTime time.Time) store.Doc {
	t.Helper()
	data := map[string]interface{}{
		"title":    "Submit report",
		"email":    "employee@example.com",
		"deadline": reminderTime.Add(2 * 24 * time.Hour),
		"reminders": []interface{}{
			map[string]interface{}{
				"time": reminderTime.Format(time.RFC3339),
				"sent": false,
			},
		},
	}
	require.NoError(t, st.Set(context.Background(), store.EmployeeTasks, id, data))
	doc, err := st.Get(context.Background(), store.EmployeeTasks, id)
	require.NoError(t, err)
	return doc
}

func TestDispatchWindowSendsOnceAndMarksSent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	mailer := &fakeMailer{}
	d := &Dispatcher{Store: st, Mailer: mailer, Log: quietLogger()}

	now := time.Now()
	doc := seedTaskWithReminder(t, st, "t1", now.Add(2*time.Minute))

	require.NoError(t, d.DispatchWindow(ctx, store.EmployeeTasks, doc, 0))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "employee@example.com", mailer.sent[0].To)

	fresh, err := st.Get(ctx, store.EmployeeTasks, "t1")
	require.NoError(t, err)
	reminders := model.RemindersFromDoc(fresh.Data)
	require.Len(t, reminders, 1)
	assert.Equal(t, model.ReminderSent, reminders[0].State)
}

// Two overlapping scanner runs each read the document before either
// dispatches. The conditional claim makes the second run skip instead of
// sending a duplicate.
func TestOverlappingRunsDeliverOnce(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	mailer := &fakeMailer{}
	d := &Dispatcher{Store: st, Mailer: mailer, Log: quietLogger()}

	now := time.Now()
	stale := seedTaskWithReminder(t, st, "t1", now.Add(2*time.Minute))

	require.NoError(t, d.DispatchWindow(ctx, store.EmployeeTasks, stale, 0))
	// Second run still holds the pre-dispatch snapshot of the document.
	require.NoError(t, d.DispatchWindow(ctx, store.EmployeeTasks, stale, 0))

	assert.Len(t, mailer.sent, 1)
}

func TestTransportFailureLeavesReminderPending(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	mailer := &fakeMailer{fail: true}
	d := &Dispatcher{Store: st, Mailer: mailer, Log: quietLogger()}

	now := time.Now()
	doc := seedTaskWithReminder(t, st, "t1", now.Add(2*time.Minute))

	err := d.DispatchWindow(ctx, store.EmployeeTasks, doc, 0)
	require.ErrorIs(t, err, services.ErrTransport)
	assert.Empty(t, mailer.sent)

	fresh, err := st.Get(ctx, store.EmployeeTasks, "t1")
	require.NoError(t, err)
	reminders := model.RemindersFromDoc(fresh.Data)
	require.Len(t, reminders, 1)
	assert.Equal(t, model.ReminderPending, reminders[0].State, "failed send must stay eligible for the next cycle")

	// Next cycle: transport recovered, the retry-by-omission succeeds.
	mailer.fail = false
	fresh, err = st.Get(ctx, store.EmployeeTasks, "t1")
	require.NoError(t, err)
	require.NoError(t, d.DispatchWindow(ctx, store.EmployeeTasks, fresh, 0))
	assert.Len(t, mailer.sent, 1)
}

func TestRecipientFallsBackThroughIdentityFields(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	mailer := &fakeMailer{}
	d := &Dispatcher{Store: st, Mailer: mailer, Log: quietLogger()}

	now := time.Now()
	data := map[string]interface{}{
		"title": "Quarterly review",
		"assignedTo": map[string]interface{}{
			"uid": "u1", "name": "Alice", "email": "alice@example.com",
		},
		"reminders": []interface{}{
			map[string]interface{}{
				"time": now.Add(time.Minute).Format(time.RFC3339),
				"sent": false,
			},
		},
	}
	require.NoError(t, st.Set(ctx, store.EmployeeTasks, "t2", data))
	doc, err := st.Get(ctx, store.EmployeeTasks, "t2")
	require.NoError(t, err)

	require.NoError(t, d.DispatchWindow(ctx, store.EmployeeTasks, doc, 0))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "alice@example.com", mailer.sent[0].To)
}

// The deadline-derived predicate has no upper bound and ignores the
// lastReminderSent bookkeeping, so an overdue task emails on every cycle.
func TestDeadlineDispatchRepeatsEveryCycle(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	mailer := &fakeMailer{}
	log := quietLogger()
	d := &Dispatcher{Store: st, Mailer: mailer, Log: log}
	s := &Scanner{Store: st, Dispatcher: d, Log: log}

	deadline := time.Now().Add(-24 * time.Hour) // already overdue
	require.NoError(t, st.Set(ctx, store.Tasks, "t1", map[string]interface{}{
		"title":    "Submit report",
		"email":    "employee@example.com",
		"status":   "pending",
		"deadline": deadline,
		"notifications": map[string]interface{}{
			"email":        true,
			"reminderDays": 2,
		},
	}))

	s.ScanDeadlines(ctx)
	s.ScanDeadlines(ctx)
	assert.Len(t, mailer.sent, 2)

	fresh, err := st.Get(ctx, store.Tasks, "t1")
	require.NoError(t, err)
	assert.Equal(t, "custom", model.DocString(fresh.Data, "reminderType"))
	assert.False(t, model.DocTime(fresh.Data, "lastReminderSent").IsZero())
}

func TestScanContinuesPastBrokenDocuments(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	mailer := &fakeMailer{}
	log := quietLogger()
	d := &Dispatcher{Store: st, Mailer: mailer, Log: log}
	s := &Scanner{Store: st, Dispatcher: d, Log: log}

	now := time.Now()
	// No resolvable recipient: dispatch fails, scan must keep going.
	require.NoError(t, st.Set(ctx, store.EmployeeTasks, "broken", map[string]interface{}{
		"title": "No recipient",
		"reminders": []interface{}{
			map[string]interface{}{"time": now.Add(time.Minute).Format(time.RFC3339), "sent": false},
		},
	}))
	seedTaskWithReminder(t, st, "ok", now.Add(2*time.Minute))

	s.ScanWindows(ctx)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "employee@example.com", mailer.sent[0].To)
}
