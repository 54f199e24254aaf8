package models

import "time"

// Comment belongs to a post. A non-nil ParentCommentID makes it a reply;
// the parent must belong to the same post. Nesting is unbounded in the
// data model, readers cap the depth they expand.
type Comment struct {
	ID              string     `json:"id" gorm:"type:uuid;primary_key"`
	PostID          string     `json:"postId" gorm:"type:uuid;not null;index"`
	Post            Post       `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	UserID          string     `json:"userId" gorm:"type:uuid;not null;index"`
	User            User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ParentCommentID *string    `json:"parentCommentId,omitempty" gorm:"type:uuid;index"`
	Replies         []*Comment `json:"-" gorm:"foreignKey:ParentCommentID;constraint:OnDelete:CASCADE"`
	Content         string     `json:"content" gorm:"type:text;not null"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"not null;default:now();index"`
	UpdatedAt       time.Time  `json:"updatedAt" gorm:"not null;default:now()"`
}
