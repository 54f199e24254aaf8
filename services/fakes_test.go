package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"buddyscript/models"
	"buddyscript/repository"
)

// In-memory store fakes. They reproduce the repository contracts the
// services rely on: (nil, nil) lookups for missing rows, (created=false)
// duplicate likes, and feed pages ordered by (CreatedAt DESC, ID DESC)
// with one extra row fetched to decide HasMore.

type fakeStores struct {
	users        map[string]models.User
	posts        map[string]models.Post
	comments     map[string]models.Comment
	postLikes    map[string]models.PostLike
	commentLikes map[string]models.CommentLike

	listPageCalls      int
	countByPostCalls   int
	countRepliesCalls  int
	postLikeCountCalls int

	seq int
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		users:        make(map[string]models.User),
		posts:        make(map[string]models.Post),
		comments:     make(map[string]models.Comment),
		postLikes:    make(map[string]models.PostLike),
		commentLikes: make(map[string]models.CommentLike),
	}
}

func (f *fakeStores) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%04d", prefix, f.seq)
}

func (f *fakeStores) addUser(id, firstName, lastName string) models.User {
	user := models.User{
		ID:        id,
		Email:     id + "@example.com",
		FirstName: firstName,
		LastName:  lastName,
	}
	f.users[id] = user
	return user
}

func (f *fakeStores) addPost(id, userID string, createdAt time.Time, isPublic bool) models.Post {
	post := models.Post{
		ID:        id,
		UserID:    userID,
		Content:   "post " + id,
		IsPublic:  isPublic,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	f.posts[id] = post
	return post
}

func (f *fakeStores) addComment(id, postID, userID string, parentID *string, createdAt time.Time) models.Comment {
	comment := models.Comment{
		ID:              id,
		PostID:          postID,
		UserID:          userID,
		ParentCommentID: parentID,
		Content:         "comment " + id,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
	f.comments[id] = comment
	return comment
}

func (f *fakeStores) addPostLike(userID, postID string) {
	f.postLikes[userID+"|"+postID] = models.PostLike{
		ID:     f.nextID("like"),
		PostID: postID,
		UserID: userID,
	}
}

type fakePostStore struct{ f *fakeStores }

func (s *fakePostStore) Create(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = s.f.nextID("post")
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
		post.UpdatedAt = post.CreatedAt
	}
	s.f.posts[post.ID] = *post
	return nil
}

func (s *fakePostStore) FindByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := s.f.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (s *fakePostStore) FindByIDWithAuthor(ctx context.Context, id string) (*models.Post, error) {
	post, ok := s.f.posts[id]
	if !ok {
		return nil, nil
	}
	post.User = s.f.users[post.UserID]
	return &post, nil
}

func (s *fakePostStore) ListPage(ctx context.Context, viewerID *string, cursor *repository.Cursor, limit int) (*repository.PostPage, error) {
	s.f.listPageCalls++

	var visible []models.Post
	for _, post := range s.f.posts {
		if !post.IsPublic && (viewerID == nil || post.UserID != *viewerID) {
			continue
		}
		if cursor != nil && !cursor.Admits(post.CreatedAt, post.ID) {
			continue
		}
		post.User = s.f.users[post.UserID]
		visible = append(visible, post)
	}

	sort.Slice(visible, func(i, j int) bool {
		if !visible[i].CreatedAt.Equal(visible[j].CreatedAt) {
			return visible[i].CreatedAt.After(visible[j].CreatedAt)
		}
		return visible[i].ID > visible[j].ID
	})

	if len(visible) > limit+1 {
		visible = visible[:limit+1]
	}

	hasMore := len(visible) > limit
	if hasMore {
		visible = visible[:limit]
	}

	var nextCursor *string
	if hasMore && len(visible) > 0 {
		last := visible[len(visible)-1]
		token := repository.EncodeCursor(last.CreatedAt, last.ID)
		nextCursor = &token
	}

	return &repository.PostPage{Posts: visible, NextCursor: nextCursor, HasMore: hasMore}, nil
}

func (s *fakePostStore) Delete(ctx context.Context, id string) error {
	delete(s.f.posts, id)
	for key, like := range s.f.postLikes {
		if like.PostID == id {
			delete(s.f.postLikes, key)
		}
	}
	for commentID, comment := range s.f.comments {
		if comment.PostID == id {
			delete(s.f.comments, commentID)
		}
	}
	return nil
}

type fakeCommentStore struct{ f *fakeStores }

func (s *fakeCommentStore) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = s.f.nextID("comment")
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
		comment.UpdatedAt = comment.CreatedAt
	}
	s.f.comments[comment.ID] = *comment
	return nil
}

func (s *fakeCommentStore) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	comment, ok := s.f.comments[id]
	if !ok {
		return nil, nil
	}
	return &comment, nil
}

func (s *fakeCommentStore) FindByIDWithAuthor(ctx context.Context, id string) (*models.Comment, error) {
	comment, ok := s.f.comments[id]
	if !ok {
		return nil, nil
	}
	comment.User = s.f.users[comment.UserID]
	return &comment, nil
}

func (s *fakeCommentStore) ListByPost(ctx context.Context, postID string, parentCommentID *string) ([]models.Comment, error) {
	var matched []models.Comment
	for _, comment := range s.f.comments {
		if comment.PostID != postID {
			continue
		}
		if parentCommentID == nil {
			if comment.ParentCommentID != nil {
				continue
			}
		} else if comment.ParentCommentID == nil || *comment.ParentCommentID != *parentCommentID {
			continue
		}
		comment.User = s.f.users[comment.UserID]
		matched = append(matched, comment)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	return matched, nil
}

func (s *fakeCommentStore) CountByPost(ctx context.Context, postID string) (int64, error) {
	s.f.countByPostCalls++
	var n int64
	for _, comment := range s.f.comments {
		if comment.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (s *fakeCommentStore) CountReplies(ctx context.Context, commentID string) (int64, error) {
	s.f.countRepliesCalls++
	var n int64
	for _, comment := range s.f.comments {
		if comment.ParentCommentID != nil && *comment.ParentCommentID == commentID {
			n++
		}
	}
	return n, nil
}

func (s *fakeCommentStore) Delete(ctx context.Context, id string) error {
	delete(s.f.comments, id)
	return nil
}

type fakePostLikeStore struct{ f *fakeStores }

func (s *fakePostLikeStore) FindByUserAndPost(ctx context.Context, userID, postID string) (*models.PostLike, error) {
	like, ok := s.f.postLikes[userID+"|"+postID]
	if !ok {
		return nil, nil
	}
	return &like, nil
}

func (s *fakePostLikeStore) CountByPost(ctx context.Context, postID string) (int64, error) {
	s.f.postLikeCountCalls++
	var n int64
	for _, like := range s.f.postLikes {
		if like.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (s *fakePostLikeStore) Create(ctx context.Context, like *models.PostLike) (bool, error) {
	key := like.UserID + "|" + like.PostID
	if _, ok := s.f.postLikes[key]; ok {
		return false, nil
	}
	if like.ID == "" {
		like.ID = s.f.nextID("like")
	}
	s.f.postLikes[key] = *like
	return true, nil
}

func (s *fakePostLikeStore) Delete(ctx context.Context, userID, postID string) error {
	delete(s.f.postLikes, userID+"|"+postID)
	return nil
}

type fakeCommentLikeStore struct{ f *fakeStores }

func (s *fakeCommentLikeStore) FindByUserAndComment(ctx context.Context, userID, commentID string) (*models.CommentLike, error) {
	like, ok := s.f.commentLikes[userID+"|"+commentID]
	if !ok {
		return nil, nil
	}
	return &like, nil
}

func (s *fakeCommentLikeStore) CountByComment(ctx context.Context, commentID string) (int64, error) {
	var n int64
	for _, like := range s.f.commentLikes {
		if like.CommentID == commentID {
			n++
		}
	}
	return n, nil
}

func (s *fakeCommentLikeStore) Create(ctx context.Context, like *models.CommentLike) (bool, error) {
	key := like.UserID + "|" + like.CommentID
	if _, ok := s.f.commentLikes[key]; ok {
		return false, nil
	}
	if like.ID == "" {
		like.ID = s.f.nextID("clike")
	}
	s.f.commentLikes[key] = *like
	return true, nil
}

func (s *fakeCommentLikeStore) Delete(ctx context.Context, userID, commentID string) error {
	delete(s.f.commentLikes, userID+"|"+commentID)
	return nil
}

type fakeUserStore struct{ f *fakeStores }

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range s.f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := s.f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = s.f.nextID("user")
	}
	s.f.users[user.ID] = *user
	return nil
}

// failingCache is a cache whose backend is down: every read misses and
// every write reports failure.
type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (failingCache) Set(ctx context.Context, key string, v []byte, ttl time.Duration) bool {
	return false
}

func (failingCache) Delete(ctx context.Context, keys ...string) bool { return false }

func (failingCache) DeleteByPattern(ctx context.Context, pattern string) int { return 0 }
