package models

import "time"

// Post is immutable after creation except for deletion by its author.
// Private posts are visible only to their author.
type Post struct {
	ID        string    `json:"id" gorm:"type:uuid;primary_key"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	ImageURL  *string   `json:"imageUrl,omitempty" gorm:"type:text"`
	IsPublic  bool      `json:"isPublic" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;default:now();index"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null;default:now()"`
}
