package handlers

import (
	"strconv"

	"yatube/models"

	"github.com/gin-gonic/gin"
)

type PostInfo struct {
	ID        uint64 `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"`
	Author    string `json:"author"`
	AuthorID  uint64 `json:"author_id"`
	Group     string `json:"group,omitempty"`
	HasImage  bool   `json:"has_image,omitempty"`
}

type FeedResponse struct {
	Posts    []PostInfo `json:"posts"`
	Page     int        `json:"page"`
	NumPages int        `json:"num_pages"`
	Total    int64      `json:"total"`
}

func postInfo(post *models.Post) PostInfo {
	info := PostInfo{
		ID:        post.ID,
		Text:      post.Text,
		CreatedAt: post.CreatedAt,
		Author:    post.User.Username,
		AuthorID:  post.UserID,
		HasImage:  post.ImagePath != "",
	}
	if post.Group != nil {
		info.Group = post.Group.Slug
	}
	return info
}

func feedResponse(feed *models.FeedPage) FeedResponse {
	response := FeedResponse{
		Posts:    []PostInfo{},
		Page:     feed.Page,
		NumPages: feed.NumPages,
		Total:    feed.Total,
	}
	for i := range feed.Posts {
		response.Posts = append(response.Posts, postInfo(&feed.Posts[i]))
	}
	return response
}

// pageParam reads the 1-based ?page= number; anything unparsable means page 1
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
