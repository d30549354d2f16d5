package database

import (
	"errors"

	"gorm.io/gorm"
)

// Lookup helpers return (nil, nil) when the row doesn't exist, so callers
// can treat "missing" as a normal outcome instead of an error.

func UserByEmail(db *gorm.DB, email string) (*User, error) {
	var user User
	result := db.Where(&User{Email: email}).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func UserByID(db *gorm.DB, id uint) (*User, error) {
	var user User
	result := db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// PostByID loads a post along with its comments and their authors.
func PostByID(db *gorm.DB, id uint) (*BlogPost, error) {
	var post BlogPost
	result := db.Preload("Comments.User").First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

func PostByTitle(db *gorm.DB, title string) (*BlogPost, error) {
	var post BlogPost
	result := db.Where(&BlogPost{Title: title}).First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

func SessionByToken(db *gorm.DB, token string) (*Session, error) {
	var session Session
	result := db.Where(&Session{Token: token}).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &session, nil
}
