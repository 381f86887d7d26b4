package models

import "time"

// Comment is an immutable reply to a post. Text is required and trimmed before
// validation.
type Comment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"not null;index" json:"post_id"`
	Post   Post `gorm:"foreignKey:PostID" json:"-"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Text string `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `json:"createdAt"`
}
