package handlers

import (
	"errors"
	"net/http"
	"time"

	"yatube/auth"
	"yatube/cache"
	"yatube/config"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FeedCache memoizes global feed renders; main wires it around the index route
var FeedCache = cache.NewPageCache("pages", time.Duration(config.FEED_CACHE_TTL)*time.Second)

func Index(c *gin.Context) {
	feed, err := models.GlobalFeed(pageParam(c), config.POSTS_PER_PAGE)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	c.JSON(http.StatusOK, feedResponse(&feed))
}

func GroupPosts(c *gin.Context) {
	group, feed, err := models.GroupFeed(c.Param("slug"), pageParam(c), config.POSTS_PER_PAGE)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group": gin.H{
			"title":       group.Title,
			"slug":        group.Slug,
			"description": group.Description,
		},
		"feed": feedResponse(&feed),
	})
}

func Profile(c *gin.Context) {
	author, feed, err := models.AuthorFeed(c.Param("username"), pageParam(c), config.POSTS_PER_PAGE)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	following := false
	if userID := auth.LoadSession(c).UserID(); userID != 0 {
		following = models.IsFollowing(userID, author.ID)
	}
	c.JSON(http.StatusOK, gin.H{
		"author": gin.H{
			"username": author.Username,
			"name":     author.Name,
		},
		"following": following,
		"feed":      feedResponse(&feed),
	})
}

func FollowIndex(c *gin.Context, user *models.User) {
	feed, err := models.FollowedFeed(user.ID, pageParam(c), config.POSTS_PER_PAGE)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	c.JSON(http.StatusOK, feedResponse(&feed))
}

// CacheInvalidate is the administrative clear for the feed render cache.
// Post writes deliberately don't call this; staleness up to the TTL is fine.
func CacheInvalidate(c *gin.Context, user *models.User) {
	FeedCache.Invalidate()
	c.JSON(http.StatusOK, gin.H{"error": ""})
}
