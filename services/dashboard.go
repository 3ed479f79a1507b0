package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RosieHernan04/Employee-Reminder-System-sub000/store"
)

// Stats is one point-in-time dashboard snapshot.
type Stats struct {
	PendingTasks     int       `json:"pendingTasks"`
	CompletedTasks   int       `json:"completedTasks"`
	UpcomingMeetings int       `json:"upcomingMeetings"`
	TotalUsers       int       `json:"totalUsers"`
	ComputedAt       time.Time `json:"computedAt"`
}

// Dashboard recomputes the full set of count queries whenever any watched
// collection changes. There is no incremental counting; a failed recompute
// keeps the last good snapshot (stale-but-available).
type Dashboard struct {
	Store store.Store
	Log   *logrus.Logger

	mu    sync.RWMutex
	last  Stats
	stop  []func()
	ready bool
}

var dashboardWatched = []store.Collection{
	store.UnassignedTasks,
	store.EmployeeTasks,
	store.Meetings,
	store.Users,
}

// Start computes the initial snapshot and registers one listener per
// watched collection. All listeners are released together by Stop.
func (d *Dashboard) Start(ctx context.Context) error {
	if err := d.refresh(ctx); err != nil {
		return err
	}

	events := make(chan struct{}, 1)
	for _, col := range dashboardWatched {
		ch, unregister := d.Store.Watch(ctx, col)
		d.stop = append(d.stop, unregister)
		go func() {
			for range ch {
				select {
				case events <- struct{}{}:
				default:
				}
			}
		}()
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-events:
				if err := d.refresh(ctx); err != nil {
					d.Log.WithError(err).Error("dashboard refresh failed, keeping last snapshot")
				}
			}
		}
	}()
	return nil
}

// Stop releases every registered listener.
func (d *Dashboard) Stop() {
	for _, unregister := range d.stop {
		unregister()
	}
	d.stop = nil
}

// Stats returns the last successfully computed snapshot.
func (d *Dashboard) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.last
}

func (d *Dashboard) refresh(ctx context.Context) error {
	pendingStatus := store.Filter{Field: "status", Op: "==", Value: "pending"}
	completedStatus := store.Filter{Field: "status", Op: "==", Value: "completed"}

	pending, err := d.countTasks(ctx, pendingStatus)
	if err != nil {
		return err
	}
	completed, err := d.countTasks(ctx, completedStatus)
	if err != nil {
		return err
	}
	upcoming, err := d.Store.Count(ctx, store.Meetings,
		store.Filter{Field: "start", Op: ">=", Value: time.Now()})
	if err != nil {
		return err
	}
	users, err := d.Store.Count(ctx, store.Users)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.last = Stats{
		PendingTasks:     pending,
		CompletedTasks:   completed,
		UpcomingMeetings: upcoming,
		TotalUsers:       users,
		ComputedAt:       time.Now(),
	}
	d.ready = true
	d.mu.Unlock()
	return nil
}

func (d *Dashboard) countTasks(ctx context.Context, f store.Filter) (int, error) {
	total := 0
	for _, col := range []store.Collection{store.UnassignedTasks, store.EmployeeTasks} {
		n, err := d.Store.Count(ctx, col, f)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
