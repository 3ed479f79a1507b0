package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/model"
	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

// ActivityLogger appends audit-log entries. Logging is best-effort: a
// failed append is logged and swallowed so it never fails the action that
// produced it.
type ActivityLogger struct {
	Store store.Store
	Log   *logrus.Logger
}

func (a *ActivityLogger) LogAdmin(ctx context.Context, actor model.Identity, action, details string) {
	a.append(ctx, store.AdminActivity, actor, action, details)
}

func (a *ActivityLogger) LogEmployee(ctx context.Context, actor model.Identity, action, details string) {
	a.append(ctx, store.EmployeeActivity, actor, action, details)
}

func (a *ActivityLogger) append(ctx context.Context, col store.Collection, actor model.Identity, action, details string) {
	entry := model.Activity{
		ActorID:   actor.UID,
		ActorName: actor.Name,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	}
	doc := entry.ToDoc()
	if err := a.Store.Set(ctx, col, uuid.New().String(), doc); err != nil {
		a.Log.WithError(err).WithField("action", action).Error("failed to append activity log")
		return
	}
	// Mirror into the shared recent-activities feed.
	if err := a.Store.Set(ctx, store.RecentActivities, uuid.New().String(), doc); err != nil {
		a.Log.WithError(err).WithField("action", action).Error("failed to mirror recent activity")
	}
}
