package models

import "yatube/db"

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    uint64 `gorm:"index"`
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

// CommentsForPost returns the post's comments, newest first
func CommentsForPost(postID uint64) (comments []Comment, err error) {
	err = db.Instance.
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Preload("User").
		Find(&comments).Error
	return
}
