package database

import (
	"gorm.io/gorm"
)

// AdminUserID is the id of the account that administers the blog. There is
// no role column: the first account ever registered is the admin.
const AdminUserID uint = 1

type BlogPost struct {
	gorm.Model
	UserID   *uint  `gorm:"index"` // nullable: rows created before ownership tracking have no owner
	Title    string `gorm:"uniqueIndex;size:250"`
	Subtitle string `gorm:"size:250"`
	Date     string `gorm:"size:80"`
	Body     string `gorm:"type:text"`
	Author   string `gorm:"size:100"`
	ImgURL   string `gorm:"size:400"`

	Comments []Comment `gorm:"foreignKey:PostID"`
}

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;size:100"`
	PasswordHash string `gorm:"size:200"`
	Name         string `gorm:"size:100"`

	Posts    []BlogPost `gorm:"foreignKey:UserID"`
	Comments []Comment  `gorm:"foreignKey:UserID"`
}

// Session maps an opaque cookie token to a user. A session row pointing at
// a user that no longer exists resolves to no identity, not an error.
type Session struct {
	gorm.Model
	Token  string `gorm:"uniqueIndex;size:64"`
	UserID uint   `gorm:"index"`
}

type Comment struct {
	gorm.Model
	Body   string `gorm:"type:text"`
	UserID uint   `gorm:"index"`
	PostID uint   `gorm:"index"`

	User User
}
