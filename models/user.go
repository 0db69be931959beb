package models

import (
	"errors"

	"yatube/db"
	"yatube/utils"
)

var ErrUsernameTaken = errors.New("username is taken")

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Name      string `gorm:"type:varchar(100)"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
}

const saltSize = 60

func UserCreate(username, name, plainTextPassword string) (u User, err error) {
	var existing User
	if db.Instance.First(&existing, "username = ?", username).Error == nil {
		return u, ErrUsernameTaken
	}
	u.Username = username
	u.Name = name
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	return u, db.Instance.Create(&u).Error
}

// SetPassword re-salts and stores a new password
func (u *User) SetPassword(plainTextPassword string) error {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	return db.Instance.Model(u).Updates(map[string]interface{}{
		"password":  u.Password,
		"pass_salt": u.PassSalt,
	}).Error
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

// UserByUsername returns gorm.ErrRecordNotFound for unknown usernames
func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}
