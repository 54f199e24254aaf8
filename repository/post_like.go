package repository

import (
	"context"
	"errors"

	"buddyscript/models"

	"gorm.io/gorm"
)

type PostLikeRepository struct {
	db *gorm.DB
}

func NewPostLikeRepository(db *gorm.DB) *PostLikeRepository {
	return &PostLikeRepository{db: db}
}

// FindByUserAndPost returns (nil, nil) when the user has not liked the post.
func (r *PostLikeRepository) FindByUserAndPost(ctx context.Context, userID, postID string) (*models.PostLike, error) {
	var like models.PostLike
	err := r.db.WithContext(ctx).
		First(&like, "user_id = ? AND post_id = ?", userID, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *PostLikeRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// Create inserts a like. It returns created=false when the unique
// (post, user) constraint rejected the insert, which means another
// request already liked the post — callers treat that as idempotent
// success, not as an error.
func (r *PostLikeRepository) Create(ctx context.Context, like *models.PostLike) (created bool, err error) {
	err = r.db.WithContext(ctx).Create(like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete is a no-op when the like does not exist.
func (r *PostLikeRepository) Delete(ctx context.Context, userID, postID string) error {
	return r.db.WithContext(ctx).
		Delete(&models.PostLike{}, "user_id = ? AND post_id = ?", userID, postID).Error
}
