package models

import (
	"gorm.io/gorm"
)

// Project groups tasks and milestones and carries the member set that
// task/milestone assignment is validated against. Owner and creator are
// not required to be members.
type Project struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id" gorm:"not null;index"`
	CreatedByID uint   `json:"created_by" gorm:"not null;index"`

	Owner     User   `json:"-" gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	CreatedBy User   `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Members   []User `json:"-" gorm:"many2many:project_members"`

	Tasks      []Task      `json:"-" gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Milestones []Milestone `json:"-" gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// TableName specifies the table name for the Project model
func (Project) TableName() string {
	return "projects"
}
