package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to TaskStatus
		ok       bool
	}{
		{TaskPending, TaskAssigned, true},
		{TaskAssigned, TaskInProgress, true},
		{TaskInProgress, TaskCompleted, true},
		{TaskPending, TaskCancelled, true},
		{TaskAssigned, TaskCancelled, true},
		{TaskInProgress, TaskCancelled, true},
		{TaskPending, TaskInProgress, false},
		{TaskPending, TaskCompleted, false},
		{TaskAssigned, TaskPending, false},
		{TaskCompleted, TaskInProgress, false},
		{TaskCompleted, TaskCancelled, false},
		{TaskCancelled, TaskPending, false},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestMeetingStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to MeetingStatus
		ok       bool
	}{
		{MeetingScheduled, MeetingInProgress, true},
		{MeetingScheduled, MeetingCompleted, true},
		{MeetingScheduled, MeetingCancelled, true},
		{MeetingInProgress, MeetingCompleted, true},
		{MeetingInProgress, MeetingCancelled, true},
		{MeetingInProgress, MeetingScheduled, false},
		{MeetingCompleted, MeetingInProgress, false},
		{MeetingCancelled, MeetingScheduled, false},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, TaskInProgress.Valid())
	assert.False(t, TaskStatus("done").Valid())
	assert.True(t, MeetingScheduled.Valid())
	assert.False(t, MeetingStatus("over").Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("urgent").Valid())
}
