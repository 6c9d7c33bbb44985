package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	FirstName    string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100)" json:"last_name"`
	Phone        string    `gorm:"type:varchar(25)" json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
}

func (u *User) GetDisplayName() string {
	if u.FirstName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}
