package handlers

import (
	"net/http"

	"buddyscript/services"

	"github.com/gin-gonic/gin"
)

type CreateCommentRequest struct {
	Content         string  `json:"content" binding:"required"`
	ParentCommentID *string `json:"parentCommentId"`
}

type CreateReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

func CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
		return
	}

	userID := c.GetString("userId")
	comment, err := svc.Comments.CreateComment(c.Request.Context(), userID, c.Param("postId"), services.CreateCommentInput{
		Content:         req.Content,
		ParentCommentID: req.ParentCommentID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func ListComments(c *gin.Context) {
	comments, err := svc.Comments.ListComments(c.Request.Context(), c.Param("postId"), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func CreateReply(c *gin.Context) {
	var req CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
		return
	}

	userID := c.GetString("userId")
	reply, err := svc.Comments.CreateReply(c.Request.Context(), userID, c.Param("commentId"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}

func ListReplies(c *gin.Context) {
	replies, err := svc.Comments.ListReplies(c.Request.Context(), c.Param("commentId"), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"replies": replies})
}

func DeleteComment(c *gin.Context) {
	userID := c.GetString("userId")
	if err := svc.Comments.DeleteComment(c.Request.Context(), c.Param("commentId"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
