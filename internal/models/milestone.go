package models

import (
	"gorm.io/gorm"
)

// Milestone marks a checkpoint inside a project. Like tasks, milestones
// cascade away with their project and keep only a nullable reference to
// the assignee.
type Milestone struct {
	gorm.Model
	ProjectID    uint   `json:"project" gorm:"not null;index"`
	Name         string `json:"name" gorm:"uniqueIndex;not null"`
	Description  string `json:"description"`
	DueDate      string `json:"due_date" gorm:"column:due_date"`
	IsAchieved   bool   `json:"is_achieved" gorm:"default:false"`
	AssignedToID *uint  `json:"assigned_to" gorm:"index"`
	CreatedByID  uint   `json:"created_by" gorm:"not null"`

	Project    Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	AssignedTo *User   `json:"-" gorm:"foreignKey:AssignedToID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	CreatedBy  User    `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// TableName specifies the table name for the Milestone model
func (Milestone) TableName() string {
	return "milestones"
}
