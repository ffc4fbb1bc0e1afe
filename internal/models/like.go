package models

import "time"

// PostLike is a like edge from a user to a post.
// The combination of UserID and PostID must be unique.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_like_edge" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_post_like_edge" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (PostLike) TableName() string {
	return "post_likes"
}

// CommentLike is a like edge from a user to a comment. PostID is carried
// alongside CommentID so a post cascade can remove comment-like edges
// without joining through comments.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_like_edge" json:"user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	CommentID uint      `gorm:"not null;index;uniqueIndex:idx_comment_like_edge" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (CommentLike) TableName() string {
	return "comment_likes"
}
