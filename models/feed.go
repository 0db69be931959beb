package models

import (
	"yatube/db"

	"gorm.io/gorm"
)

// FeedPage is one page of a feed: posts ordered newest first, with ties
// broken by ID so pagination is stable across calls.
type FeedPage struct {
	Posts    []Post
	Page     int
	NumPages int
	Total    int64
}

// GlobalFeed pages over all posts.
func GlobalFeed(page, perPage int) (FeedPage, error) {
	return paginate(db.Instance.Model(&Post{}), page, perPage)
}

// GroupFeed pages over the group's posts. Unknown slugs return
// gorm.ErrRecordNotFound.
func GroupFeed(slug string, page, perPage int) (Group, FeedPage, error) {
	group, err := GroupBySlug(slug)
	if err != nil {
		return group, FeedPage{}, err
	}
	feed, err := paginate(db.Instance.Model(&Post{}).Where("group_id = ?", group.ID), page, perPage)
	return group, feed, err
}

// AuthorFeed pages over the author's posts. Unknown usernames return
// gorm.ErrRecordNotFound.
func AuthorFeed(username string, page, perPage int) (User, FeedPage, error) {
	author, err := UserByUsername(username)
	if err != nil {
		return author, FeedPage{}, err
	}
	feed, err := paginate(db.Instance.Model(&Post{}).Where("user_id = ?", author.ID), page, perPage)
	return author, feed, err
}

// FollowedFeed pages over posts by authors the user follows. A user who
// follows nobody gets an empty page, not an error.
func FollowedFeed(userID uint64, page, perPage int) (FeedPage, error) {
	authors := db.Instance.Model(&Follow{}).Select("author_id").Where("user_id = ?", userID)
	return paginate(db.Instance.Model(&Post{}).Where("user_id IN (?)", authors), page, perPage)
}

// paginate applies the feed paging policy: 1-based page numbers, page < 1
// clamps to the first page, page past the end clamps to the last page, and
// an empty result set still yields a single empty page.
func paginate(query *gorm.DB, page, perPage int) (feed FeedPage, err error) {
	if err = query.Session(&gorm.Session{}).Count(&feed.Total).Error; err != nil {
		return
	}
	feed.NumPages = int((feed.Total + int64(perPage) - 1) / int64(perPage))
	if feed.NumPages < 1 {
		feed.NumPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > feed.NumPages {
		page = feed.NumPages
	}
	feed.Page = page
	feed.Posts = []Post{}
	err = query.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Preload("User").
		Preload("Group").
		Find(&feed.Posts).Error
	return
}
