package services

import (
	"time"

	"buddyscript/models"
)

// AuthorDTO is the public author summary embedded in post and comment DTOs.
type AuthorDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PostDTO is a post enriched with derived counts and the viewer-specific
// HasUserLiked flag. Cached feed snapshots store PostDTOs with counts and
// HasUserLiked zeroed; both are filled in per request.
type PostDTO struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	ImageURL     *string   `json:"imageUrl"`
	IsPublic     bool      `json:"isPublic"`
	CreatedAt    time.Time `json:"createdAt"`
	Author       AuthorDTO `json:"author"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	HasUserLiked bool      `json:"hasUserLiked"`
}

// FeedPage is one page of the feed. NextCursor is null on the last page.
type FeedPage struct {
	Posts      []PostDTO `json:"posts"`
	NextCursor *string   `json:"nextCursor"`
	HasMore    bool      `json:"hasMore"`
}

// CommentDTO carries one comment plus its replies expanded to a bounded
// depth. Replies is nil beyond the depth cap even when deeper replies
// exist; ReplyCount still reports the direct-reply total.
type CommentDTO struct {
	ID              string       `json:"id"`
	PostID          string       `json:"postId"`
	Content         string       `json:"content"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	ParentCommentID *string      `json:"parentCommentId"`
	Author          AuthorDTO    `json:"author"`
	LikeCount       int64        `json:"likeCount"`
	ReplyCount      int64        `json:"replyCount"`
	HasUserLiked    bool         `json:"hasUserLiked"`
	Replies         []CommentDTO `json:"replies,omitempty"`
}

// LikeResult is the outcome of a like/unlike. Message is set when the
// operation was an idempotent repeat ("Already liked"); handlers use it
// to pick the response status.
type LikeResult struct {
	Success   bool   `json:"success"`
	LikeCount int64  `json:"likeCount"`
	Message   string `json:"message,omitempty"`
}

// AuthUserDTO is the account summary returned by register/login.
type AuthUserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AuthResponse carries the signed token for the authenticated user.
type AuthResponse struct {
	User             AuthUserDTO `json:"user"`
	Token            string      `json:"token"`
	ExpiresInSeconds int         `json:"expiresInSeconds"`
}

func authorDTO(user models.User) AuthorDTO {
	return AuthorDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func postSnapshot(post models.Post) PostDTO {
	return PostDTO{
		ID:        post.ID,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		IsPublic:  post.IsPublic,
		CreatedAt: post.CreatedAt,
		Author:    authorDTO(post.User),
	}
}
