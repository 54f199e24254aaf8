package models

import "time"

// User is an account that can author posts, comments and likes.
type User struct {
	ID           string    `json:"id" gorm:"type:uuid;primary_key"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	FirstName    string    `json:"firstName" gorm:"type:varchar(100);not null"`
	LastName     string    `json:"lastName" gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"not null;default:now()"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"not null;default:now()"`
}
