package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post represents a post authored by a user.
type Post struct {
	ID      uint                        `gorm:"primaryKey" json:"id"`
	UserID  uint                        `gorm:"not null;index" json:"user_id"`
	User    User                        `gorm:"foreignKey:UserID" json:"user"`
	Title   string                      `gorm:"not null" json:"title"`
	Content string                      `gorm:"type:text;not null" json:"content"`
	Images  datatypes.JSONSlice[string] `json:"images"`
	// LikeCount is not persisted; computed at query time
	LikeCount int `gorm:"->" json:"like_count"`
	// Liked indicates whether the requesting user liked this post (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
