package services

import (
	"context"
	"strings"

	"buddyscript/cache"
	"buddyscript/models"
	"buddyscript/repository"
	"buddyscript/utils"
)

const (
	defaultPageSize   = 10
	maxPageSize       = 50
	maxPostContentLen = 500
)

// PostService orchestrates feed reads and post writes. Reads go through
// the cache-aside layer; every successful write synchronously invalidates
// the cache entries it could have affected. Store errors are fatal for
// the request, cache failures never are.
type PostService struct {
	posts     PostStore
	postLikes PostLikeStore
	comments  CommentStore
	cache     cache.Cache
}

func NewPostService(posts PostStore, postLikes PostLikeStore, comments CommentStore, c cache.Cache) *PostService {
	return &PostService{posts: posts, postLikes: postLikes, comments: comments, cache: c}
}

// CreatePostInput is the validated payload for a new post.
type CreatePostInput struct {
	Content  string
	ImageURL *string
	IsPublic *bool
}

func (s *PostService) CreatePost(ctx context.Context, userID string, input CreatePostInput) (*PostDTO, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, utils.NewValidationError("Post content cannot be empty")
	}
	if len(content) > maxPostContentLen {
		return nil, utils.NewValidationError("Post must be 500 characters or fewer")
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	post := &models.Post{
		UserID:   userID,
		Content:  content,
		ImageURL: input.ImageURL,
		IsPublic: isPublic,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	created, err := s.posts.FindByIDWithAuthor(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, utils.NewNotFoundError("Post", post.ID)
	}

	// A new post can change the membership of any feed page.
	s.cache.DeleteByPattern(ctx, cache.FeedPattern)

	dto := postSnapshot(*created)
	if err := s.decorate(ctx, &dto, &userID); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ListPosts returns one feed page for the viewer. The page snapshot is
// cached per (viewer, cursor, limit); counts are cached separately with a
// shorter TTL and HasUserLiked is recomputed on every request, cache hit
// or not.
func (s *PostService) ListPosts(ctx context.Context, viewerID *string, cursorToken string, limit int) (*FeedPage, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var cursor *repository.Cursor
	if cursorToken != "" {
		decoded, err := repository.DecodeCursor(cursorToken)
		if err != nil {
			return nil, err
		}
		cursor = &decoded
	}

	key := cache.FeedKey(viewerID, cursorToken, limit)
	page, err := cache.GetOrCompute(ctx, s.cache, key, cache.TTLFeedPage, func(ctx context.Context) (FeedPage, error) {
		result, err := s.posts.ListPage(ctx, viewerID, cursor, limit)
		if err != nil {
			return FeedPage{}, err
		}
		posts := make([]PostDTO, 0, len(result.Posts))
		for _, post := range result.Posts {
			posts = append(posts, postSnapshot(post))
		}
		return FeedPage{Posts: posts, NextCursor: result.NextCursor, HasMore: result.HasMore}, nil
	})
	if err != nil {
		return nil, err
	}

	for i := range page.Posts {
		if err := s.decorate(ctx, &page.Posts[i], viewerID); err != nil {
			return nil, err
		}
	}
	return &page, nil
}

func (s *PostService) GetPostByID(ctx context.Context, postID string, viewerID *string) (*PostDTO, error) {
	dto, err := cache.GetOrCompute(ctx, s.cache, cache.PostKey(postID), cache.TTLEntity, func(ctx context.Context) (PostDTO, error) {
		post, err := s.posts.FindByIDWithAuthor(ctx, postID)
		if err != nil {
			return PostDTO{}, err
		}
		if post == nil {
			return PostDTO{}, utils.NewNotFoundError("Post", postID)
		}
		return postSnapshot(*post), nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.decorate(ctx, &dto, viewerID); err != nil {
		return nil, err
	}
	return &dto, nil
}

func (s *PostService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return utils.NewNotFoundError("Post", postID)
	}
	if post.UserID != userID {
		return utils.NewForbiddenError("You can only delete your own posts")
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	s.cache.DeleteByPattern(ctx, cache.PostDataPattern(postID))
	s.cache.DeleteByPattern(ctx, cache.FeedPattern)
	return nil
}

// decorate fills the volatile fields of a snapshot: counts from their
// short-TTL cache entries, HasUserLiked straight from the store since it
// is viewer-specific and must not be served from a shared entry.
func (s *PostService) decorate(ctx context.Context, dto *PostDTO, viewerID *string) error {
	likeCount, err := cache.GetOrCompute(ctx, s.cache, cache.PostLikeCountKey(dto.ID), cache.TTLCounts, func(ctx context.Context) (int64, error) {
		return s.postLikes.CountByPost(ctx, dto.ID)
	})
	if err != nil {
		return err
	}
	dto.LikeCount = likeCount

	commentCount, err := cache.GetOrCompute(ctx, s.cache, cache.PostCommentCountKey(dto.ID), cache.TTLCounts, func(ctx context.Context) (int64, error) {
		return s.comments.CountByPost(ctx, dto.ID)
	})
	if err != nil {
		return err
	}
	dto.CommentCount = commentCount

	dto.HasUserLiked = false
	if viewerID != nil {
		like, err := s.postLikes.FindByUserAndPost(ctx, *viewerID, dto.ID)
		if err != nil {
			return err
		}
		dto.HasUserLiked = like != nil
	}
	return nil
}
