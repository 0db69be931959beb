package models

import (
	"errors"
	"testing"

	"yatube/db"
)

func countFollows(t *testing.T, userID, authorID uint64) int64 {
	t.Helper()
	var count int64
	err := db.Instance.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("counting follows: %v", err)
	}
	return count
}

func TestFollowIsIdempotent(t *testing.T) {
	setupTestDB(t)
	reader := createTestUser(t, "reader")
	author := createTestUser(t, "author")

	for i := 0; i < 3; i++ {
		if err := FollowAuthor(reader.ID, author.ID); err != nil {
			t.Fatalf("FollowAuthor call %d: %v", i+1, err)
		}
	}
	if got := countFollows(t, reader.ID, author.ID); got != 1 {
		t.Errorf("edge count after repeated follows = %d, want 1", got)
	}
	if !IsFollowing(reader.ID, author.ID) {
		t.Error("IsFollowing = false, want true")
	}
}

func TestUnfollowIsIdempotent(t *testing.T) {
	setupTestDB(t)
	reader := createTestUser(t, "reader")
	author := createTestUser(t, "author")

	// Unfollowing without a prior follow is a no-op
	if err := UnfollowAuthor(reader.ID, author.ID); err != nil {
		t.Fatalf("UnfollowAuthor with no edge: %v", err)
	}

	if err := FollowAuthor(reader.ID, author.ID); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := UnfollowAuthor(reader.ID, author.ID); err != nil {
			t.Fatalf("UnfollowAuthor call %d: %v", i+1, err)
		}
	}
	if got := countFollows(t, reader.ID, author.ID); got != 0 {
		t.Errorf("edge count after unfollow = %d, want 0", got)
	}
	if IsFollowing(reader.ID, author.ID) {
		t.Error("IsFollowing = true, want false")
	}
}

func TestSelfFollowRejected(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "narcissist")

	err := FollowAuthor(user.ID, user.ID)
	if !errors.Is(err, ErrSelfFollow) {
		t.Errorf("FollowAuthor(self) err = %v, want ErrSelfFollow", err)
	}
	if got := countFollows(t, user.ID, user.ID); got != 0 {
		t.Errorf("edge count = %d, want 0", got)
	}
}

func TestFollowIsDirected(t *testing.T) {
	setupTestDB(t)
	reader := createTestUser(t, "reader")
	author := createTestUser(t, "author")

	if err := FollowAuthor(reader.ID, author.ID); err != nil {
		t.Fatal(err)
	}
	if IsFollowing(author.ID, reader.ID) {
		t.Error("reverse edge reported as existing")
	}
}
