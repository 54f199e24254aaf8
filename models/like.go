package models

import "time"

// PostLike records that a user liked a post. The composite unique index
// is what makes likes idempotent: a duplicate insert fails at the store
// and is treated as "already liked", never as an error.
type PostLike struct {
	ID        string    `json:"id" gorm:"type:uuid;primary_key"`
	PostID    string    `json:"postId" gorm:"type:uuid;not null;index;uniqueIndex:idx_post_likes_post_user"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index;uniqueIndex:idx_post_likes_post_user"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;default:now()"`
}

// CommentLike mirrors PostLike for comments.
type CommentLike struct {
	ID        string    `json:"id" gorm:"type:uuid;primary_key"`
	CommentID string    `json:"commentId" gorm:"type:uuid;not null;index;uniqueIndex:idx_comment_likes_comment_user"`
	Comment   Comment   `json:"-" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index;uniqueIndex:idx_comment_likes_comment_user"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;default:now()"`
}
