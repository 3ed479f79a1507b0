package model

// Task and meeting statuses move forward only; the allow-lists below are
// the single source of truth for every status write.

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskPending:    {TaskAssigned, TaskCancelled},
	TaskAssigned:   {TaskInProgress, TaskCancelled},
	TaskInProgress: {TaskCompleted, TaskCancelled},
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskAssigned, TaskInProgress, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

// CanTransition reports whether s may move to next.
func (s TaskStatus) CanTransition(next TaskStatus) bool {
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type MeetingStatus string

const (
	MeetingScheduled  MeetingStatus = "scheduled"
	MeetingInProgress MeetingStatus = "in-progress"
	MeetingCompleted  MeetingStatus = "completed"
	MeetingCancelled  MeetingStatus = "cancelled"
)

var meetingTransitions = map[MeetingStatus][]MeetingStatus{
	MeetingScheduled:  {MeetingInProgress, MeetingCompleted, MeetingCancelled},
	MeetingInProgress: {MeetingCompleted, MeetingCancelled},
}

func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingScheduled, MeetingInProgress, MeetingCompleted, MeetingCancelled:
		return true
	}
	return false
}

func (s MeetingStatus) CanTransition(next MeetingStatus) bool {
	for _, allowed := range meetingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
