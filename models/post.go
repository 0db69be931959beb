package models

import (
	"yatube/db"
	"yatube/storage"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:post_order,priority:1"`
	UpdatedAt int64
	UserID    uint64 `gorm:"index"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`

	// Optional image attachment, stored in a storage bucket
	BucketID  *uint64
	Bucket    *storage.Bucket `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	ImagePath string          `gorm:"type:varchar(300)"`
	ThumbPath string          `gorm:"type:varchar(300)"`
}

// PostByID returns gorm.ErrRecordNotFound for unknown IDs
func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("User").Preload("Group").Preload("Bucket").First(&p, id).Error
	return
}
