package repository

import (
	"context"
	"errors"

	"buddyscript/models"

	"gorm.io/gorm"
)

// PostPage is one page of the feed in repository terms. NextCursor is nil
// on the final page.
type PostPage struct {
	Posts      []models.Post
	NextCursor *string
	HasMore    bool
}

// PostRepository translates feed queries into store queries. It assumes
// the caller has already clamped limit to a sane range.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID returns (nil, nil) when the post does not exist.
func (r *PostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) FindByIDWithAuthor(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("User").First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPage returns posts visible to the viewer, newest first. Anonymous
// viewers see public posts only; authenticated viewers additionally see
// their own private posts. One extra row is fetched to decide HasMore.
func (r *PostRepository) ListPage(ctx context.Context, viewerID *string, cursor *Cursor, limit int) (*PostPage, error) {
	query := r.db.WithContext(ctx).Preload("User")

	if viewerID != nil {
		query = query.Where("is_public = ? OR user_id = ?", true, *viewerID)
	} else {
		query = query.Where("is_public = ?", true)
	}

	if cursor != nil {
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var posts []models.Post
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit + 1).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	hasMore := len(posts) > limit
	if hasMore {
		posts = posts[:limit]
	}

	var nextCursor *string
	if hasMore && len(posts) > 0 {
		last := posts[len(posts)-1]
		token := EncodeCursor(last.CreatedAt, last.ID)
		nextCursor = &token
	}

	return &PostPage{Posts: posts, NextCursor: nextCursor, HasMore: hasMore}, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id).Error
}
