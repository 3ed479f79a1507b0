package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

func newMeetingService(st store.Store, mailer Mailer) *MeetingService {
	log := quietLogger()
	return &MeetingService{
		Store:    st,
		Mailer:   mailer,
		Activity: &ActivityLogger{Store: st, Log: log},
		Log:      log,
	}
}

func seedMeeting(t *testing.T, st *store.Memory, id string, start time.Time) {
	t.Helper()
	err := st.Set(context.Background(), store.Meetings, id, map[string]interface{}{
		"title":  "Sprint planning",
		"start":  start,
		"end":    start.Add(time.Hour),
		"type":   "virtual",
		"status": "scheduled",
	})
	require.NoError(t, err)
}

func seedEmployeeCopy(t *testing.T, st *store.Memory, id, meetingID, email string, start time.Time) {
	t.Helper()
	err := st.Set(context.Background(), store.EmployeeMeetings, id, map[string]interface{}{
		"meetingId":  meetingID,
		"title":      "Sprint planning",
		"start":      start,
		"status":     "scheduled",
		"assignedTo": map[string]interface{}{"email": email},
	})
	require.NoError(t, err)
}

func TestUpdateStatusCascadesToEmployeeCopies(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	svc := newMeetingService(st, &fakeMailer{})

	start := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	seedMeeting(t, st, "m1", start)
	seedEmployeeCopy(t, st, "em1", "m1", "alice@example.com", start)
	seedEmployeeCopy(t, st, "em2", "m1", "bob@example.com", start)
	// Unrelated copy of a different meeting.
	seedEmployeeCopy(t, st, "em3", "m9", "carol@example.com", start)

	updated, err := svc.UpdateStatus(ctx, "m1", model.MeetingCompleted, model.Identity{UID: "admin"})
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	parent, err := st.Get(ctx, store.Meetings, "m1")
	require.NoError(t, err)
	assert.Equal(t, "completed", model.DocString(parent.Data, "status"))

	for id, want := range map[string]string{"em1": "completed", "em2": "completed", "em3": "scheduled"} {
		doc, err := st.Get(ctx, store.EmployeeMeetings, id)
		require.NoError(t, err)
		assert.Equal(t, want, model.DocString(doc.Data, "status"), "copy %s", id)
	}
}

func TestUpdateStatusRejectsBackwardTransition(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	svc := newMeetingService(st, &fakeMailer{})

	start := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	seedMeeting(t, st, "m1", start)
	_, err := svc.UpdateStatus(ctx, "m1", model.MeetingCompleted, model.Identity{UID: "admin"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "m1", model.MeetingScheduled, model.Identity{UID: "admin"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusMissingMeeting(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	svc := newMeetingService(st, &fakeMailer{})

	_, err := svc.UpdateStatus(ctx, "nope", model.MeetingCompleted, model.Identity{UID: "admin"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInviteFanOutContinuesAfterFailure(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	mailer := &fakeMailer{failTo: map[string]bool{"bob@example.com": true}}
	svc := newMeetingService(st, mailer)

	start := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	seedMeeting(t, st, "m1", start)

	invitees := []model.Identity{
		{UID: "u1", Name: "Alice", Email: "alice@example.com"},
		{UID: "u2", Name: "Bob", Email: "bob@example.com"},
		{UID: "u3", Name: "Carol", Email: "carol@example.com"},
	}
	summary, err := svc.Invite(ctx, "m1", invitees, model.Identity{UID: "admin"})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Invited)
	assert.Equal(t, 1, summary.Failed)

	// Every invitee got a copy even when their email bounced.
	copies, err := st.List(ctx, store.EmployeeMeetings)
	require.NoError(t, err)
	assert.Len(t, copies, 3)
	for _, copy := range copies {
		assert.Equal(t, "m1", model.DocString(copy.Data, "meetingId"))
	}
}

func TestDeleteCascadesByTitleAndStart(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	svc := newMeetingService(st, &fakeMailer{})

	start := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	seedMeeting(t, st, "m1", start)
	seedEmployeeCopy(t, st, "em1", "m1", "alice@example.com", start)
	seedEmployeeCopy(t, st, "em2", "m1", "bob@example.com", start)
	// Same title, different start: must survive.
	seedEmployeeCopy(t, st, "em3", "m2", "carol@example.com", start.Add(24*time.Hour))

	require.NoError(t, svc.Delete(ctx, "m1", model.Identity{UID: "admin"}))

	_, err := st.Get(ctx, store.Meetings, "m1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	remaining, err := st.List(ctx, store.EmployeeMeetings)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "em3", remaining[0].ID)
}
