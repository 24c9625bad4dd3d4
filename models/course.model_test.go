package models_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Kunal-Ingale/Learn-Quest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}))
	return db
}

func TestCourseAssignsIDOnCreate(t *testing.T) {
	db := openTestDb(t)

	course := models.Course{
		OwnerID:    "user-1",
		PlaylistID: "PLabc",
		Title:      "Go Basics",
		VideoIDs:   []string{"v1", "v2"},
	}
	require.NoError(t, db.Create(&course).Error)

	assert.NotEmpty(t, course.ID)
	assert.Equal(t, 0, course.Progress)
	assert.Empty(t, course.CurrentVideoID)
	assert.False(t, course.CreatedAt.IsZero())
}

func TestCourseVideoIDsRoundTrip(t *testing.T) {
	db := openTestDb(t)

	ids := []string{"v3", "v1", "v2"}
	course := models.Course{OwnerID: "user-1", PlaylistID: "PLabc", Title: "T", VideoIDs: ids}
	require.NoError(t, db.Create(&course).Error)

	var loaded models.Course
	require.NoError(t, db.First(&loaded, "id = ?", course.ID).Error)
	// Order is playlist order and must survive storage untouched
	assert.Equal(t, ids, []string(loaded.VideoIDs))
}

// The (owner_id, playlist_id) unique index backs the convert pre-check: even if
// two concurrent creates both pass the check, the second insert must fail.
func TestCourseUniquePerOwnerAndPlaylist(t *testing.T) {
	db := openTestDb(t)

	first := models.Course{OwnerID: "user-1", PlaylistID: "PLabc", Title: "T", VideoIDs: []string{"v1"}}
	require.NoError(t, db.Create(&first).Error)

	duplicate := models.Course{OwnerID: "user-1", PlaylistID: "PLabc", Title: "T2", VideoIDs: []string{"v1"}}
	err := db.Create(&duplicate).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// A different owner may hold the same playlist
	other := models.Course{OwnerID: "user-2", PlaylistID: "PLabc", Title: "T", VideoIDs: []string{"v1"}}
	assert.NoError(t, db.Create(&other).Error)

	// The same owner may hold a different playlist
	second := models.Course{OwnerID: "user-1", PlaylistID: "PLxyz", Title: "T", VideoIDs: []string{"v1"}}
	assert.NoError(t, db.Create(&second).Error)
}
