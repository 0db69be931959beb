package models

import (
	"errors"

	"yatube/db"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// Follow is a directed edge: user receives author's posts in their followed feed.
// The composite primary key keeps the edge unique per (user, author) pair.
type Follow struct {
	CreatedAt int64
	UserID    uint64 `gorm:"primaryKey;autoIncrement:false"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"primaryKey;autoIncrement:false"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:AuthorID"`
}

// FollowAuthor creates the edge if missing. Calling it twice leaves one edge.
func FollowAuthor(userID, authorID uint64) error {
	if userID == authorID {
		return ErrSelfFollow
	}
	f := Follow{UserID: userID, AuthorID: authorID}
	return db.Instance.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		FirstOrCreate(&f).Error
}

// UnfollowAuthor removes the edge; removing a missing edge is not an error.
func UnfollowAuthor(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

func IsFollowing(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}
