package services

import (
	"context"
	"strings"

	"buddyscript/cache"
	"buddyscript/models"
	"buddyscript/utils"
)

const maxCommentContentLen = 1000

// maxReplyDepth caps how far reply trees are expanded on reads. The data
// model allows unbounded nesting; the cap only bounds what one response
// materializes.
const maxReplyDepth = 3

type CommentService struct {
	comments     CommentStore
	posts        PostStore
	commentLikes CommentLikeStore
	cache        cache.Cache
}

func NewCommentService(comments CommentStore, posts PostStore, commentLikes CommentLikeStore, c cache.Cache) *CommentService {
	return &CommentService{comments: comments, posts: posts, commentLikes: commentLikes, cache: c}
}

// CreateCommentInput is the validated payload for a new comment or reply.
type CreateCommentInput struct {
	Content         string
	ParentCommentID *string
}

func (s *CommentService) CreateComment(ctx context.Context, userID, postID string, input CreateCommentInput) (*CommentDTO, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, utils.NewValidationError("Comment content cannot be empty")
	}
	if len(content) > maxCommentContentLen {
		return nil, utils.NewValidationError("Comment must be 1000 characters or fewer")
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, utils.NewNotFoundError("Post", postID)
	}

	if input.ParentCommentID != nil {
		parent, err := s.comments.FindByID(ctx, *input.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, utils.NewNotFoundError("Parent comment", *input.ParentCommentID)
		}
		if parent.PostID != postID {
			return nil, utils.NewValidationError("Parent comment does not belong to this post")
		}
	}

	comment := &models.Comment{
		PostID:          postID,
		UserID:          userID,
		ParentCommentID: input.ParentCommentID,
		Content:         content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	created, err := s.comments.FindByIDWithAuthor(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, utils.NewNotFoundError("Comment", comment.ID)
	}

	s.invalidateForPost(ctx, postID)
	if input.ParentCommentID != nil {
		s.cache.Delete(ctx, cache.CommentReplyCountKey(*input.ParentCommentID))
	}

	dto, err := s.buildTree(ctx, *created, &userID, maxReplyDepth)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// CreateReply creates a comment under a parent, resolving the post from
// the parent itself.
func (s *CommentService) CreateReply(ctx context.Context, userID, parentCommentID, content string) (*CommentDTO, error) {
	parent, err := s.comments.FindByID(ctx, parentCommentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, utils.NewNotFoundError("Comment", parentCommentID)
	}

	return s.CreateComment(ctx, userID, parent.PostID, CreateCommentInput{
		Content:         content,
		ParentCommentID: &parentCommentID,
	})
}

// ListComments returns the top-level comments of a post with replies
// expanded to the depth cap.
func (s *CommentService) ListComments(ctx context.Context, postID string, viewerID *string) ([]CommentDTO, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, utils.NewNotFoundError("Post", postID)
	}

	return s.listTier(ctx, postID, nil, viewerID, 1)
}

// ListReplies returns the direct replies of a comment, themselves
// expanded to the depth cap.
func (s *CommentService) ListReplies(ctx context.Context, commentID string, viewerID *string) ([]CommentDTO, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, utils.NewNotFoundError("Comment", commentID)
	}

	return s.listTier(ctx, comment.PostID, &commentID, viewerID, 1)
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return utils.NewNotFoundError("Comment", commentID)
	}
	if comment.UserID != userID {
		return utils.NewForbiddenError("You can only delete your own comments")
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	s.invalidateForPost(ctx, comment.PostID)
	s.cache.Delete(ctx, cache.CommentLikeCountKey(commentID), cache.CommentReplyCountKey(commentID))
	if comment.ParentCommentID != nil {
		s.cache.Delete(ctx, cache.CommentReplyCountKey(*comment.ParentCommentID))
	}
	return nil
}

func (s *CommentService) invalidateForPost(ctx context.Context, postID string) {
	s.cache.Delete(ctx, cache.PostCommentCountKey(postID), cache.PostKey(postID))
	s.cache.DeleteByPattern(ctx, cache.FeedPattern)
}

func (s *CommentService) listTier(ctx context.Context, postID string, parentCommentID *string, viewerID *string, depth int) ([]CommentDTO, error) {
	comments, err := s.comments.ListByPost(ctx, postID, parentCommentID)
	if err != nil {
		return nil, err
	}

	dtos := make([]CommentDTO, 0, len(comments))
	for _, comment := range comments {
		dto, err := s.buildTree(ctx, comment, viewerID, depth)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *CommentService) buildTree(ctx context.Context, comment models.Comment, viewerID *string, depth int) (CommentDTO, error) {
	dto := CommentDTO{
		ID:              comment.ID,
		PostID:          comment.PostID,
		Content:         comment.Content,
		CreatedAt:       comment.CreatedAt,
		UpdatedAt:       comment.UpdatedAt,
		ParentCommentID: comment.ParentCommentID,
		Author:          authorDTO(comment.User),
	}

	likeCount, err := cache.GetOrCompute(ctx, s.cache, cache.CommentLikeCountKey(comment.ID), cache.TTLCounts, func(ctx context.Context) (int64, error) {
		return s.commentLikes.CountByComment(ctx, comment.ID)
	})
	if err != nil {
		return CommentDTO{}, err
	}
	dto.LikeCount = likeCount

	replyCount, err := cache.GetOrCompute(ctx, s.cache, cache.CommentReplyCountKey(comment.ID), cache.TTLCounts, func(ctx context.Context) (int64, error) {
		return s.comments.CountReplies(ctx, comment.ID)
	})
	if err != nil {
		return CommentDTO{}, err
	}
	dto.ReplyCount = replyCount

	if viewerID != nil {
		like, err := s.commentLikes.FindByUserAndComment(ctx, *viewerID, comment.ID)
		if err != nil {
			return CommentDTO{}, err
		}
		dto.HasUserLiked = like != nil
	}

	if depth < maxReplyDepth && replyCount > 0 {
		replies, err := s.listTier(ctx, comment.PostID, &comment.ID, viewerID, depth+1)
		if err != nil {
			return CommentDTO{}, err
		}
		dto.Replies = replies
	}
	return dto, nil
}
