package services

import (
	"context"

	"buddyscript/models"
	"buddyscript/repository"
)

// Store interfaces decouple the services from gorm so tests can run
// against in-memory implementations. The repository package provides the
// PostgreSQL implementations.

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	FindByIDWithAuthor(ctx context.Context, id string) (*models.Post, error)
	ListPage(ctx context.Context, viewerID *string, cursor *repository.Cursor, limit int) (*repository.PostPage, error)
	Delete(ctx context.Context, id string) error
}

type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	FindByIDWithAuthor(ctx context.Context, id string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string, parentCommentID *string) ([]models.Comment, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
	CountReplies(ctx context.Context, commentID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type PostLikeStore interface {
	FindByUserAndPost(ctx context.Context, userID, postID string) (*models.PostLike, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
	Create(ctx context.Context, like *models.PostLike) (created bool, err error)
	Delete(ctx context.Context, userID, postID string) error
}

type CommentLikeStore interface {
	FindByUserAndComment(ctx context.Context, userID, commentID string) (*models.CommentLike, error)
	CountByComment(ctx context.Context, commentID string) (int64, error)
	Create(ctx context.Context, like *models.CommentLike) (created bool, err error)
	Delete(ctx context.Context, userID, commentID string) error
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
