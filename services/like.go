package services

import (
	"context"

	"buddyscript/cache"
	"buddyscript/models"
	"buddyscript/utils"
)

const alreadyLikedMessage = "Already liked"

// PostLikeService implements idempotent likes on posts. Liking an
// already-liked post is a success that carries the already-liked marker;
// unliking a post that was never liked is a plain no-op. Invalidation
// runs after every call, including the no-op paths, so a repeated request
// can never leave a stale count behind.
type PostLikeService struct {
	posts PostStore
	likes PostLikeStore
	cache cache.Cache
}

func NewPostLikeService(posts PostStore, likes PostLikeStore, c cache.Cache) *PostLikeService {
	return &PostLikeService{posts: posts, likes: likes, cache: c}
}

func (s *PostLikeService) LikePost(ctx context.Context, userID, postID string) (*LikeResult, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, utils.NewNotFoundError("Post", postID)
	}

	existing, err := s.likes.FindByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	alreadyLiked := existing != nil
	if !alreadyLiked {
		created, err := s.likes.Create(ctx, &models.PostLike{PostID: postID, UserID: userID})
		if err != nil {
			return nil, err
		}
		// created=false means a concurrent request won the race at the
		// unique constraint; that is the same idempotent outcome.
		alreadyLiked = !created
	}

	likeCount, err := s.likes.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, postID)

	result := &LikeResult{Success: true, LikeCount: likeCount}
	if alreadyLiked {
		result.Message = alreadyLikedMessage
	}
	return result, nil
}

func (s *PostLikeService) UnlikePost(ctx context.Context, userID, postID string) (*LikeResult, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, utils.NewNotFoundError("Post", postID)
	}

	if err := s.likes.Delete(ctx, userID, postID); err != nil {
		return nil, err
	}

	likeCount, err := s.likes.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, postID)

	return &LikeResult{Success: true, LikeCount: likeCount}, nil
}

func (s *PostLikeService) invalidate(ctx context.Context, postID string) {
	s.cache.Delete(ctx, cache.PostLikeCountKey(postID), cache.PostKey(postID))
	s.cache.DeleteByPattern(ctx, cache.FeedPattern)
}

// CommentLikeService mirrors PostLikeService for comments.
type CommentLikeService struct {
	comments CommentStore
	likes    CommentLikeStore
	cache    cache.Cache
}

func NewCommentLikeService(comments CommentStore, likes CommentLikeStore, c cache.Cache) *CommentLikeService {
	return &CommentLikeService{comments: comments, likes: likes, cache: c}
}

func (s *CommentLikeService) LikeComment(ctx context.Context, userID, commentID string) (*LikeResult, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, utils.NewNotFoundError("Comment", commentID)
	}

	existing, err := s.likes.FindByUserAndComment(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	alreadyLiked := existing != nil
	if !alreadyLiked {
		created, err := s.likes.Create(ctx, &models.CommentLike{CommentID: commentID, UserID: userID})
		if err != nil {
			return nil, err
		}
		alreadyLiked = !created
	}

	likeCount, err := s.likes.CountByComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, cache.CommentLikeCountKey(commentID))

	result := &LikeResult{Success: true, LikeCount: likeCount}
	if alreadyLiked {
		result.Message = alreadyLikedMessage
	}
	return result, nil
}

func (s *CommentLikeService) UnlikeComment(ctx context.Context, userID, commentID string) (*LikeResult, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, utils.NewNotFoundError("Comment", commentID)
	}

	if err := s.likes.Delete(ctx, userID, commentID); err != nil {
		return nil, err
	}

	likeCount, err := s.likes.CountByComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, cache.CommentLikeCountKey(commentID))

	return &LikeResult{Success: true, LikeCount: likeCount}, nil
}
