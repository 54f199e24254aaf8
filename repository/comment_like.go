package repository

import (
	"context"
	"errors"

	"buddyscript/models"

	"gorm.io/gorm"
)

type CommentLikeRepository struct {
	db *gorm.DB
}

func NewCommentLikeRepository(db *gorm.DB) *CommentLikeRepository {
	return &CommentLikeRepository{db: db}
}

// FindByUserAndComment returns (nil, nil) when the user has not liked the comment.
func (r *CommentLikeRepository) FindByUserAndComment(ctx context.Context, userID, commentID string) (*models.CommentLike, error) {
	var like models.CommentLike
	err := r.db.WithContext(ctx).
		First(&like, "user_id = ? AND comment_id = ?", userID, commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *CommentLikeRepository) CountByComment(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

// Create reports created=false on a duplicate (comment, user) pair, the
// same idempotent contract as PostLikeRepository.Create.
func (r *CommentLikeRepository) Create(ctx context.Context, like *models.CommentLike) (created bool, err error) {
	err = r.db.WithContext(ctx).Create(like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *CommentLikeRepository) Delete(ctx context.Context, userID, commentID string) error {
	return r.db.WithContext(ctx).
		Delete(&models.CommentLike{}, "user_id = ? AND comment_id = ?", userID, commentID).Error
}
