package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// UploadImage stores a post image in Cloudinary and returns its URL. The
// client attaches the URL to a post afterwards.
func UploadImage(c *gin.Context) {
	imageFile, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": "No image file provided"})
		return
	}
	defer imageFile.Close()

	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": "Cloudinary configuration error"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		Folder:         "buddyscript/posts",
		PublicID:       c.GetString("userId") + "_" + time.Now().Format("20060102150405"),
		Transformation: "c_limit,w_1280,h_1280,q_auto",
	}

	uploadResult, err := cld.Upload.Upload(ctx, imageFile, uploadParams)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": uploadResult.SecureURL})
}
