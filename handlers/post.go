package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"yatube/db"
	"yatube/models"
	"yatube/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type PostCreateRequest struct {
	Text      string `form:"text" binding:"required"`
	GroupSlug string `form:"group"`
}

type CommentCreateRequest struct {
	Text string `form:"text" binding:"required"`
}

type CommentInfo struct {
	ID        uint64 `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"`
	Author    string `json:"author"`
}

func PostDetail(c *gin.Context) {
	post, err := models.PostByID(utils.StringToUInt64(c.Param("id")))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	comments, err := models.CommentsForPost(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 2"})
		return
	}
	commentInfos := []CommentInfo{}
	for _, comment := range comments {
		commentInfos = append(commentInfos, CommentInfo{
			ID:        comment.ID,
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
			Author:    comment.User.Username,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"post":     postInfo(&post),
		"comments": commentInfos,
	})
}

func PostCreate(c *gin.Context, user *models.User) {
	r := PostCreateRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post := models.Post{
		UserID: user.ID,
		Text:   r.Text,
	}
	if r.GroupSlug != "" {
		group, err := models.GroupBySlug(r.GroupSlug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
			return
		}
		post.GroupID = &group.ID
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 2"})
		return
	}
	post.User = *user
	c.JSON(http.StatusOK, postInfo(&post))
}

// PostEdit lets the author change text and group. Anyone else is sent back
// to the post's read view instead of getting an error.
func PostEdit(c *gin.Context, user *models.User) {
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
	r := PostCreateRequest{}
	if err = c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post.Text = r.Text
	post.GroupID = nil
	post.Group = nil
	if r.GroupSlug != "" {
		group, err := models.GroupBySlug(r.GroupSlug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 2"})
			return
		}
		post.GroupID = &group.ID
		post.Group = &group
	}
	if err = db.Instance.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 3"})
		return
	}
	c.JSON(http.StatusOK, postInfo(&post))
}

func PostDelete(c *gin.Context, user *models.User) {
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
	deletePostImage(&post)
	if err = db.Instance.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 2"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": ""})
}

func CommentCreate(c *gin.Context, user *models.User) {
	post, err := models.PostByID(utils.StringToUInt64(c.Param("id")))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	r := CommentCreateRequest{}
	if err = c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment := models.Comment{
		UserID: user.ID,
		PostID: post.ID,
		Text:   r.Text,
	}
	if err = db.Instance.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 2"})
		return
	}
	c.JSON(http.StatusOK, CommentInfo{
		ID:        comment.ID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
		Author:    user.Username,
	})
}
