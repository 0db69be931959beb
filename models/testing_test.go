package models

import (
	"strings"
	"testing"
	"time"

	"yatube/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points db.Instance at a fresh in-memory database. Each test
// gets its own named shared-cache DB so connections from the pool see the
// same data.
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared&_foreign_keys=on"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test DB: %v", err)
	}
	db.Instance = conn
	Init()
}

func createTestUser(t *testing.T, username string) User {
	t.Helper()
	user, err := UserCreate(username, username, "test-password")
	if err != nil {
		t.Fatalf("creating user %s: %v", username, err)
	}
	return user
}

func createTestGroup(t *testing.T, slug string) Group {
	t.Helper()
	group := Group{Title: "Group " + slug, Slug: slug, Description: "about " + slug}
	if err := db.Instance.Create(&group).Error; err != nil {
		t.Fatalf("creating group %s: %v", slug, err)
	}
	return group
}

func createTestPost(t *testing.T, author *User, group *Group, text string, createdAt int64) Post {
	t.Helper()
	post := Post{UserID: author.ID, Text: text, CreatedAt: createdAt}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		t.Fatalf("creating post %q: %v", text, err)
	}
	return post
}

func testNow() int64 {
	return time.Now().Unix()
}
