package Models

import (
	"time"

	"gorm.io/gorm"
)

// Task statuses. Archived is deliberately not a fourth status, it is a flag
// on finished tasks that hides them from the active views.
const (
	StatusNotStarted = "NotStarted"
	StatusInProgress = "InProgress"
	StatusFinished   = "Finished"
)

// Task represents a single assignment tracked for a collaborator. DueDate is
// a calendar date with no time-of-day component, stored as an ISO date string.
// StartedAt/FinishedAt/ElapsedMinutes stay null until the matching transition
// happens and are frozen afterwards.
type Task struct {
	ID             uint           `json:"id" gorm:"primarykey"`
	CreatedAt      time.Time      `json:"-"`
	UpdatedAt      time.Time      `json:"-"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
	Description    string         `json:"description"`
	Assignee       string         `json:"assignee"` // collaborator name, not a foreign key
	Status         string         `json:"status"`
	DueDate        string         `json:"dueDate"`
	StartedAt      *time.Time     `json:"startedAt"`
	FinishedAt     *time.Time     `json:"finishedAt"`
	ElapsedMinutes *int           `json:"elapsedMinutes"`
	Archived       bool           `json:"archived"`
}

func (Task) TableName() string {
	return "tasks"
}
