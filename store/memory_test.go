package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetDelete(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	_, err := mem.Get(ctx, Tasks, "t1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mem.Set(ctx, Tasks, "t1", map[string]interface{}{
		"title":  "submit report",
		"status": "pending",
	}))

	doc, err := mem.Get(ctx, Tasks, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", doc.ID)
	assert.Equal(t, "submit report", doc.Data["title"])

	require.NoError(t, mem.Delete(ctx, Tasks, "t1"))
	_, err = mem.Get(ctx, Tasks, "t1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	require.NoError(t, mem.Set(ctx, Tasks, "t1", map[string]interface{}{
		"assignedTo": map[string]interface{}{"email": "a@corp.test"},
	}))

	doc, err := mem.Get(ctx, Tasks, "t1")
	require.NoError(t, err)
	doc.Data["assignedTo"].(map[string]interface{})["email"] = "mutated@corp.test"

	again, err := mem.Get(ctx, Tasks, "t1")
	require.NoError(t, err)
	assert.Equal(t, "a@corp.test", again.Data["assignedTo"].(map[string]interface{})["email"])
}

func TestMemoryUpdate(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	err := mem.Update(ctx, Tasks, "missing", map[string]interface{}{"status": "assigned"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mem.Set(ctx, Tasks, "t1", map[string]interface{}{
		"title":  "submit report",
		"status": "pending",
	}))
	require.NoError(t, mem.Update(ctx, Tasks, "t1", map[string]interface{}{"status": "assigned"}))

	doc, err := mem.Get(ctx, Tasks, "t1")
	require.NoError(t, err)
	assert.Equal(t, "assigned", doc.Data["status"])
	assert.Equal(t, "submit report", doc.Data["title"], "untouched fields survive a merge")
}

func TestMemoryFind(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	deadline := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, mem.Set(ctx, EmployeeTasks, "t1", map[string]interface{}{
		"status":     "pending",
		"deadline":   deadline,
		"assignedTo": map[string]interface{}{"uid": "u1", "email": "a@corp.test"},
	}))
	require.NoError(t, mem.Set(ctx, EmployeeTasks, "t2", map[string]interface{}{
		"status":     "completed",
		"deadline":   deadline.Add(48 * time.Hour),
		"assignedTo": map[string]interface{}{"uid": "u2", "email": "b@corp.test"},
	}))

	tests := []struct {
		name    string
		filters []Filter
		wantIDs []string
	}{
		{"no filters lists all", nil, []string{"t1", "t2"}},
		{"equality", []Filter{{Field: "status", Op: "==", Value: "pending"}}, []string{"t1"}},
		{"dotted path", []Filter{{Field: "assignedTo.uid", Op: "==", Value: "u2"}}, []string{"t2"}},
		{"time range", []Filter{{Field: "deadline", Op: "<=", Value: deadline}}, []string{"t1"}},
		{"conjunction", []Filter{
			{Field: "status", Op: "==", Value: "pending"},
			{Field: "assignedTo.uid", Op: "==", Value: "u2"},
		}, nil},
		{"missing field matches nothing", []Filter{{Field: "nope", Op: "==", Value: "x"}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			docs, err := mem.Find(ctx, EmployeeTasks, tc.filters...)
			require.NoError(t, err)
			var ids []string
			for _, d := range docs {
				ids = append(ids, d.ID)
			}
			assert.ElementsMatch(t, tc.wantIDs, ids)
		})
	}
}

func TestMemoryCount(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	require.NoError(t, mem.Set(ctx, Users, "u1", map[string]interface{}{"role": "admin"}))
	require.NoError(t, mem.Set(ctx, Users, "u2", map[string]interface{}{"role": "employee"}))
	require.NoError(t, mem.Set(ctx, Users, "u3", map[string]interface{}{"role": "employee"}))

	n, err := mem.Count(ctx, Users, Filter{Field: "role", Op: "==", Value: "employee"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMemoryTransactionCommitsAllWrites(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	require.NoError(t, mem.Set(ctx, UnassignedTasks, "t1", map[string]interface{}{"title": "submit report"}))

	err := mem.RunTransaction(ctx, func(tx Tx) error {
		src, err := tx.Get(UnassignedTasks, "t1")
		if err != nil {
			return err
		}
		if err := tx.Set(EmployeeTasks, "t1", src.Data); err != nil {
			return err
		}
		return tx.Delete(UnassignedTasks, "t1")
	})
	require.NoError(t, err)

	_, err = mem.Get(ctx, UnassignedTasks, "t1")
	assert.ErrorIs(t, err, ErrNotFound)
	moved, err := mem.Get(ctx, EmployeeTasks, "t1")
	require.NoError(t, err)
	assert.Equal(t, "submit report", moved.Data["title"])
}

func TestMemoryTransactionDiscardsWritesOnError(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	require.NoError(t, mem.Set(ctx, Tasks, "t1", map[string]interface{}{"status": "pending"}))

	boom := errors.New("boom")
	err := mem.RunTransaction(ctx, func(tx Tx) error {
		if err := tx.Update(Tasks, "t1", map[string]interface{}{"status": "completed"}); err != nil {
			return err
		}
		if err := tx.Set(Tasks, "t2", map[string]interface{}{"status": "pending"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	doc, err := mem.Get(ctx, Tasks, "t1")
	require.NoError(t, err)
	assert.Equal(t, "pending", doc.Data["status"])
	_, err = mem.Get(ctx, Tasks, "t2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryWatch(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	ch, stop := mem.Watch(ctx, Tasks)

	require.NoError(t, mem.Set(ctx, Tasks, "t1", map[string]interface{}{"status": "pending"}))
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no event after write")
	}

	// Writes to other collections stay quiet.
	require.NoError(t, mem.Set(ctx, Meetings, "m1", map[string]interface{}{"title": "standup"}))
	select {
	case <-ch:
		t.Fatal("event for unwatched collection")
	default:
	}

	stop()
	_, open := <-ch
	assert.False(t, open, "channel closes on stop")
}
