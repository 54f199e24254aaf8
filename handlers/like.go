package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func LikePost(c *gin.Context) {
	userID := c.GetString("userId")
	result, err := svc.PostLikes.LikePost(c.Request.Context(), userID, c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}

	// A repeated like is acknowledged, not created.
	status := http.StatusCreated
	if result.Message != "" {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

func UnlikePost(c *gin.Context) {
	userID := c.GetString("userId")
	result, err := svc.PostLikes.UnlikePost(c.Request.Context(), userID, c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func LikeComment(c *gin.Context) {
	userID := c.GetString("userId")
	result, err := svc.CommentLikes.LikeComment(c.Request.Context(), userID, c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Message != "" {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

func UnlikeComment(c *gin.Context) {
	userID := c.GetString("userId")
	result, err := svc.CommentLikes.UnlikeComment(c.Request.Context(), userID, c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
