package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course maps one YouTube playlist to an ordered list of video references, owned by one user.
// The (owner_id, playlist_id) unique index is the authoritative duplicate guard: the
// existence pre-check in the convert flow can race, the index cannot.
type Course struct {
	ID             string                      `json:"id" gorm:"primaryKey;type:text"`
	OwnerID        string                      `json:"userId" gorm:"not null;index;uniqueIndex:idx_owner_playlist"`
	PlaylistID     string                      `json:"playlistId" gorm:"not null;uniqueIndex:idx_owner_playlist"`
	Title          string                      `json:"title" gorm:"not null"`
	Description    string                      `json:"description"` // channel name, may be empty until resolved
	VideoIDs       datatypes.JSONSlice[string] `json:"videoIds" gorm:"not null"`
	Progress       int                         `json:"progress" gorm:"default:0"` // percentage 0-100, not monotonic
	CurrentVideoID string                      `json:"currentVideoId" gorm:"default:''"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"-"`
}

// BeforeCreate assigns an opaque id at insert time
func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
