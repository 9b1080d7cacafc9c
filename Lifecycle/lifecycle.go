// Package Lifecycle applies task state transitions. Statuses only ever move
// forward: NotStarted -> InProgress -> Finished. Direct field edits from the
// correction endpoint bypass this package on purpose.
package Lifecycle

import (
	"errors"
	"time"

	"TaskControl/AbstractFunctions"
	"TaskControl/Models"
)

var (
	// ErrInvalidTransition rejects a start on a non-NotStarted task or a
	// finish on a non-InProgress task. The task is left untouched.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingStartTime rejects a finish on a task that never recorded a
	// start. Defaulting the start to now would silently report a zero
	// duration and mask an operator mistake, so this is always an error.
	ErrMissingStartTime = errors.New("task has no start time")
)

// Start moves a NotStarted task to InProgress and records the start time.
func Start(task *Models.Task, now time.Time) error {
	if task.Status != Models.StatusNotStarted {
		return ErrInvalidTransition
	}
	task.Status = Models.StatusInProgress
	task.StartedAt = &now
	return nil
}

// Finish moves an InProgress task to Finished, records the finish time and
// freezes the elapsed duration. The duration is never recomputed afterwards.
func Finish(task *Models.Task, now time.Time) error {
	if task.Status != Models.StatusInProgress {
		return ErrInvalidTransition
	}
	if task.StartedAt == nil {
		return ErrMissingStartTime
	}
	minutes := AbstractFunctions.ElapsedMinutes(*task.StartedAt, now)
	task.Status = Models.StatusFinished
	task.FinishedAt = &now
	task.ElapsedMinutes = &minutes
	return nil
}

// EditFields carries the correctable task fields.
type EditFields struct {
	Description string
	Assignee    string
	DueDate     string
}

// Edit overwrites the descriptive fields unconditionally. It has no status
// precondition and never touches timestamps or the frozen duration; this is
// the escape hatch used for corrections.
func Edit(task *Models.Task, fields EditFields) {
	task.Description = fields.Description
	task.Assignee = fields.Assignee
	task.DueDate = fields.DueDate
}
