package cache

import (
	"fmt"
	"time"
)

// TTLs are asymmetric on purpose: aggregate counts change far more often
// than post content, so they expire first. The TTL is also the upper bound
// on how long a reader can observe a value that raced a missed invalidation.
const (
	TTLCounts   = 2 * time.Minute
	TTLFeedPage = 5 * time.Minute
	TTLEntity   = 10 * time.Minute
)

// FeedPattern matches every cached feed page.
const FeedPattern = "posts:feed:*"

func PostKey(postID string) string {
	return "post:" + postID
}

// PostDataPattern matches the post snapshot and all of its count keys.
func PostDataPattern(postID string) string {
	return "post:" + postID + "*"
}

func PostLikeCountKey(postID string) string {
	return "post:" + postID + ":likes:count"
}

func PostCommentCountKey(postID string) string {
	return "post:" + postID + ":comments:count"
}

func CommentLikeCountKey(commentID string) string {
	return "comment:" + commentID + ":likes:count"
}

func CommentReplyCountKey(commentID string) string {
	return "comment:" + commentID + ":replies:count"
}

// FeedKey identifies one page of the feed for one viewer. Anonymous viewers
// share the "public" namespace; the first page uses "start" in place of a
// cursor token.
func FeedKey(viewerID *string, cursor string, limit int) string {
	viewer := "public"
	if viewerID != nil {
		viewer = *viewerID
	}
	if cursor == "" {
		cursor = "start"
	}
	return fmt.Sprintf("posts:feed:%s:%s:%d", viewer, cursor, limit)
}
