package models

import (
	"gorm.io/gorm"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusNotYetStarted TaskStatus = "NOT_YET_STARTED"
	StatusInProgress    TaskStatus = "IN_PROGRESS"
	StatusCompleted     TaskStatus = "COMPLETED"
	StatusOnHold        TaskStatus = "ON_HOLD"
)

// Valid reports whether s is one of the four known statuses. Transitions
// between statuses are unconstrained; any status may follow any other.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotYetStarted, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Task belongs to exactly one project. The assignee is optional, but when
// set must be a member of the task's project; deleting the user nulls the
// reference, deleting the project deletes the task.
type Task struct {
	gorm.Model
	ProjectID    uint       `json:"project" gorm:"not null;index"`
	Name         string     `json:"name" gorm:"uniqueIndex;not null"`
	Description  string     `json:"description"`
	AssignedToID *uint      `json:"assigned_to" gorm:"index"`
	Status       TaskStatus `json:"status" gorm:"not null;default:'NOT_YET_STARTED'"`
	DueDate      string     `json:"due_date" gorm:"column:due_date"`
	CreatedByID  uint       `json:"created_by" gorm:"not null"`

	Project    Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	AssignedTo *User   `json:"-" gorm:"foreignKey:AssignedToID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	CreatedBy  User    `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// TableName specifies the table name for the Task model
func (Task) TableName() string {
	return "tasks"
}
