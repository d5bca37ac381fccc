// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a post record managed by the Postboard API.
//
// Content is nullable: an absent content is stored as NULL and serialized as
// JSON null, which is distinct from an empty string.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   *string   `gorm:"type:text" json:"content"`
	Published bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
