package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"yatube/db"
	"yatube/models"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const thumbSize = 320

// PostImageUpload attaches an image to the author's own post. The original
// and a thumbnail go to the default storage bucket.
func PostImageUpload(c *gin.Context, user *models.User) {
	post, err := models.PostByID(utils.StringToUInt64(c.Param("id")))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}
	bucketStorage := storage.GetDefaultStorage()
	if bucketStorage == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no storage configured"})
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()
	var original bytes.Buffer
	if _, err = original.ReadFrom(file); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := uuid.New().String()
	imagePath := "posts/" + key
	thumbPath := "posts/" + key + "-thumb.jpg"

	var thumb bytes.Buffer
	if _, err = utils.CreateThumb(thumbSize, bytes.NewReader(original.Bytes()), &thumb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image format"})
		return
	}
	if _, err = bucketStorage.Save(imagePath, bytes.NewReader(original.Bytes())); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error 1"})
		return
	}
	if _, err = bucketStorage.Save(thumbPath, &thumb); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error 2"})
		return
	}

	// Replacing an image leaves no orphan files behind
	deletePostImage(&post)

	bucketID := bucketStorage.GetBucket().ID
	post.BucketID = &bucketID
	post.ImagePath = imagePath
	post.ThumbPath = thumbPath
	if err = db.Instance.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 2"})
		return
	}
	c.JSON(http.StatusOK, postInfo(&post))
}

// ImageFetch serves a post's image or its thumbnail
func ImageFetch(c *gin.Context) {
	post, err := models.PostByID(utils.StringToUInt64(c.Query("id")))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	if post.ImagePath == "" || post.Bucket == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post has no image"})
		return
	}
	bucketStorage := storage.StorageFrom(post.Bucket)
	if bucketStorage == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error 1"})
		return
	}
	path := post.ImagePath
	if c.Query("thumb") == "1" && post.ThumbPath != "" {
		path = post.ThumbPath
	}
	bucketStorage.Serve(path, c.Request, c.Writer)
}

func deletePostImage(post *models.Post) {
	if post.ImagePath == "" || post.Bucket == nil {
		return
	}
	bucketStorage := storage.StorageFrom(post.Bucket)
	if bucketStorage == nil {
		return
	}
	_ = bucketStorage.Delete(post.ImagePath)
	if post.ThumbPath != "" {
		_ = bucketStorage.Delete(post.ThumbPath)
	}
}
