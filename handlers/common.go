package handlers

import (
	"errors"
	"log"
	"net/http"

	"buddyscript/services"
	"buddyscript/utils"

	"github.com/gin-gonic/gin"
)

// Services holds the service layer the handlers delegate to.
type Services struct {
	Auth         *services.AuthService
	Posts        *services.PostService
	Comments     *services.CommentService
	PostLikes    *services.PostLikeService
	CommentLikes *services.CommentLikeService
}

var svc *Services

// SetServices wires the service layer into the handler package.
func SetServices(s *Services) {
	svc = s
}

// respondError maps an application error onto the wire format. Anything
// that is not an AppError is an internal failure and stays opaque to the
// client.
func respondError(c *gin.Context, err error) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		c.JSON(utils.AppErrorToHTTPStatus(appErr.Code), gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "INTERNAL",
		"message": "Something went wrong",
	})
}

// viewerID returns the authenticated user's ID, or nil for anonymous
// requests on optional-auth routes.
func viewerID(c *gin.Context) *string {
	id := c.GetString("userId")
	if id == "" {
		return nil
	}
	return &id
}
