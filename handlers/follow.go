package handlers

import (
	"errors"
	"net/http"

	"yatube/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	err = models.FollowAuthor(user.ID, author.ID)
	if errors.Is(err, models.ErrSelfFollow) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 2"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "following": true})
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	if err = models.UnfollowAuthor(user.ID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 2"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "following": false})
}
