package models

import (
	"gorm.io/gorm"
)

// Notification is a read-only record addressed to a single user. Rows are
// created as a side effect of task/milestone writes and never updated.
type Notification struct {
	gorm.Model
	UserID  uint   `json:"user" gorm:"not null;index"`
	Subject string `json:"subject" gorm:"not null"`
	Body    string `json:"body"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
