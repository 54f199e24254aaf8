package handlers

import (
	"net/http"
	"strconv"

	"buddyscript/services"

	"github.com/gin-gonic/gin"
)

type CreatePostRequest struct {
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"imageUrl"`
	IsPublic *bool   `json:"isPublic"`
}

func CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
		return
	}

	userID := c.GetString("userId")
	post, err := svc.Posts.CreatePost(c.Request.Context(), userID, services.CreatePostInput{
		Content:  req.Content,
		ImageURL: req.ImageURL,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func ListPosts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "limit must be an integer"})
			return
		}
		limit = n
	}

	page, err := svc.Posts.ListPosts(c.Request.Context(), viewerID(c), c.Query("cursor"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func GetPost(c *gin.Context) {
	post, err := svc.Posts.GetPostByID(c.Request.Context(), c.Param("postId"), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func DeletePost(c *gin.Context) {
	userID := c.GetString("userId")
	if err := svc.Posts.DeletePost(c.Request.Context(), c.Param("postId"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
