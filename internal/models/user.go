package models

import (
	"gorm.io/gorm"
)

// Role gates endpoint access. It is fixed when the user is created;
// there is no promotion flow.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

// User represents an account in the system. Email is the login identifier.
type User struct {
	gorm.Model
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Role         Role   `json:"role" gorm:"type:varchar(10);not null"`
	PasswordHash string `json:"-" gorm:"not null"`

	Notifications []Notification `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
