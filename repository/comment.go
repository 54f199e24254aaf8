package repository

import (
	"context"
	"errors"

	"buddyscript/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByID returns (nil, nil) when the comment does not exist.
func (r *CommentRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) FindByIDWithAuthor(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Preload("User").First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns one tier of a post's comment tree, newest first:
// top-level comments when parentCommentID is nil, otherwise the direct
// replies to that parent.
func (r *CommentRepository) ListByPost(ctx context.Context, postID string, parentCommentID *string) ([]models.Comment, error) {
	query := r.db.WithContext(ctx).Preload("User").Where("post_id = ?", postID)

	if parentCommentID == nil {
		query = query.Where("parent_comment_id IS NULL")
	} else {
		query = query.Where("parent_comment_id = ?", *parentCommentID)
	}

	var comments []models.Comment
	err := query.Order("created_at DESC, id DESC").Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *CommentRepository) CountReplies(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("parent_comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id).Error
}
