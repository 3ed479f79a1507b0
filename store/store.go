package store

import (
	"context"
	"errors"
)

// Collection enumerates the known document collections. Handlers and
// services route on these values instead of raw strings.
type Collection string

const (
	Tasks            Collection = "tasks"
	EmployeeTasks    Collection = "employee_tasks"
	AdminTasks       Collection = "admin_tasks"
	UnassignedTasks  Collection = "unassigned_tasks"
	Meetings         Collection = "meetings"
	EmployeeMeetings Collection = "employee_meetings"
	AdminMeetings    Collection = "admin_meetings"
	Users            Collection = "users"
	AdminActivity    Collection = "admin_activity"
	EmployeeActivity Collection = "employeeActivityLogs"
	RecentActivities Collection = "recent_activities"
	Notifications    Collection = "notifications"
	ActivityLogs     Collection = "activity_logs"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// Doc is one schema-less document: an opaque ID plus its fields.
type Doc struct {
	ID   string
	Data map[string]interface{}
}

// Filter is a single field predicate, matching the operators the hosted
// store supports: "==", "<", "<=", ">", ">=", "in".
type Filter struct {
	Field string
	Op    string
	Value interface{}
}

// Store abstracts the document store so services and the scheduler can be
// exercised against an in-memory collection in tests.
type Store interface {
	Get(ctx context.Context, col Collection, id string) (Doc, error)
	List(ctx context.Context, col Collection) ([]Doc, error)
	Find(ctx context.Context, col Collection, filters ...Filter) ([]Doc, error)
	Set(ctx context.Context, col Collection, id string, data map[string]interface{}) error
	Update(ctx context.Context, col Collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, col Collection, id string) error
	Count(ctx context.Context, col Collection, filters ...Filter) (int, error)

	// RunTransaction executes fn atomically: either every write issued on
	// the Tx is applied, or none is.
	RunTransaction(ctx context.Context, fn func(tx Tx) error) error

	// Watch delivers a notification whenever any document in col changes.
	// The returned func unregisters the listener.
	Watch(ctx context.Context, col Collection) (<-chan struct{}, func())
}

// Tx is the write surface inside RunTransaction. Reads observe the state
// the transaction started from, not the transaction's own buffered writes.
type Tx interface {
	Get(col Collection, id string) (Doc, error)
	Set(col Collection, id string, data map[string]interface{}) error
	Update(col Collection, id string, fields map[string]interface{}) error
	Delete(col Collection, id string) error
}
