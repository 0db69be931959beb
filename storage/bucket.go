package storage

import (
	"os"
	"strings"

	"yatube/db"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

type Bucket struct {
	ID            uint64 `gorm:"primaryKey"`
	CreatedAt     int64
	UpdatedAt     int64
	Name          string `gorm:"type:varchar(200)"`
	StorageType   StorageType
	Path          string // Path on a drive or a prefix in a S3 bucket
	Region        string `gorm:"type:varchar(50)"`  // S3 only
	AuthDetails   string `gorm:"type:varchar(400)"` // S3 only, "key:secret"
	SSEEncryption string `gorm:"type:varchar(50)"`
}

func (b *Bucket) Create() error {
	err := db.Instance.Create(b).Error
	if err != nil {
		return err
	}
	if b.StorageType == StorageTypeFile {
		return os.MkdirAll(b.Path, 0777)
	}
	return nil
}

// GetRemotePath prefixes the object key with the bucket's path, if any
func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return path
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + path
}

// CreateSVC creates an S3 client out of the bucket's auth details
func (b *Bucket) CreateSVC() *s3.S3 {
	auth := strings.SplitN(b.AuthDetails, ":", 2)
	if len(auth) != 2 {
		panic("S3 bucket auth details must be in 'key:secret' format")
	}
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(b.Region),
		Credentials: credentials.NewStaticCredentials(auth[0], auth[1], ""),
	}))
	return s3.New(sess)
}
