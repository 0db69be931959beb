package models

import (
	"errors"
	"testing"
)

func TestUserLogin(t *testing.T) {
	setupTestDB(t)
	created := createTestUser(t, "leo")

	user, ok := UserLogin("leo", "test-password")
	if !ok || user.ID != created.ID {
		t.Errorf("login with correct password: ok=%v, id=%d", ok, user.ID)
	}
	if _, ok = UserLogin("leo", "wrong"); ok {
		t.Error("login succeeded with wrong password")
	}
	if _, ok = UserLogin("ghost", "test-password"); ok {
		t.Error("login succeeded for unknown user")
	}
}

func TestUsernameUnique(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "leo")
	if _, err := UserCreate("leo", "imposter", "other-password"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate username: err = %v, want ErrUsernameTaken", err)
	}
}

func TestSetPassword(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "leo")
	oldHash, oldSalt := user.Password, user.PassSalt

	if err := user.SetPassword("brand-new"); err != nil {
		t.Fatal(err)
	}
	if user.Password == oldHash || user.PassSalt == oldSalt {
		t.Error("hash and salt must both change on password change")
	}
	if _, ok := UserLogin("leo", "brand-new"); !ok {
		t.Error("login with new password failed")
	}
	if _, ok := UserLogin("leo", "test-password"); ok {
		t.Error("login still works with old password")
	}
}

func TestPasswordsSaltedPerUser(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t, "a")
	b := createTestUser(t, "b")
	// Same plain-text password must not produce the same hash
	if a.Password == b.Password {
		t.Error("identical hashes for two users with the same password")
	}
}
