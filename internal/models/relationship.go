package models

import "time"

// RelationType distinguishes the kinds of directed user-to-user edges.
type RelationType string

const (
	// RelationFollow is a follow edge from FirstID to SecondID.
	RelationFollow RelationType = "Follow"
	// RelationBlock is a block edge from FirstID to SecondID.
	RelationBlock RelationType = "Block"
)

// Valid reports whether the relation type is one of the known kinds.
func (t RelationType) Valid() bool {
	return t == RelationFollow || t == RelationBlock
}

// UserRelationship is a directed edge between two users. The composite
// unique index guarantees at most one edge per (first, second, type)
// tuple; concurrent creates resolve to the same row.
type UserRelationship struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	FirstID      uint         `gorm:"column:user_id_first;not null;uniqueIndex:idx_user_relationship_edge" json:"user_id_first"`
	SecondID     uint         `gorm:"column:user_id_second;not null;index;uniqueIndex:idx_user_relationship_edge" json:"user_id_second"`
	RelationType RelationType `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_relationship_edge" json:"relation_type"`
	CreatedAt    time.Time    `json:"created_at"`

	First  User `gorm:"foreignKey:FirstID" json:"-"`
	Second User `gorm:"foreignKey:SecondID" json:"-"`
}

// TableName specifies the table name for GORM
func (UserRelationship) TableName() string {
	return "user_relationships"
}
