package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	return db
}

func TestLookupsReturnNilOnMissing(t *testing.T) {
	db := newTestDB(t)

	user, err := UserByEmail(db, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = UserByID(db, 42)
	require.NoError(t, err)
	assert.Nil(t, user)

	post, err := PostByID(db, 42)
	require.NoError(t, err)
	assert.Nil(t, post)

	post, err = PostByTitle(db, "No Such Post")
	require.NoError(t, err)
	assert.Nil(t, post)

	session, err := SessionByToken(db, "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestTitleUniquenessEnforcedByStorage(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&BlogPost{Title: "Hello World", Subtitle: "one"}).Error)
	err := db.Create(&BlogPost{Title: "Hello World", Subtitle: "two"}).Error
	assert.Error(t, err)
}

func TestEmailUniquenessEnforcedByStorage(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&User{Email: "alice@example.com", Name: "Alice"}).Error)
	err := db.Create(&User{Email: "alice@example.com", Name: "Other Alice"}).Error
	assert.Error(t, err)
}

func TestPostByIDPreloadsCommentAuthors(t *testing.T) {
	db := newTestDB(t)

	user := User{Email: "bob@example.com", Name: "Bob"}
	require.NoError(t, db.Create(&user).Error)
	post := BlogPost{Title: "Hello World", Subtitle: "sub", UserID: &user.ID}
	require.NoError(t, db.Create(&post).Error)
	require.NoError(t, db.Create(&Comment{Body: "Nice post!", UserID: user.ID, PostID: post.ID}).Error)

	loaded, err := PostByID(db, post.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Comments, 1)
	assert.Equal(t, "Nice post!", loaded.Comments[0].Body)
	assert.Equal(t, "Bob", loaded.Comments[0].User.Name)
}

func TestDeletingPostLeavesCommentsBehind(t *testing.T) {
	db := newTestDB(t)

	user := User{Email: "bob@example.com", Name: "Bob"}
	require.NoError(t, db.Create(&user).Error)
	post := BlogPost{Title: "Hello World", Subtitle: "sub"}
	require.NoError(t, db.Create(&post).Error)
	require.NoError(t, db.Create(&Comment{Body: "orphan-to-be", UserID: user.ID, PostID: post.ID}).Error)

	require.NoError(t, db.Unscoped().Delete(&post).Error)

	// no cascade: the comment row outlives its post
	var count int64
	require.NoError(t, db.Model(&Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
