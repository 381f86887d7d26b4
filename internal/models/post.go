package models

import "time"

// Media kinds for a post attachment
const (
	MediaKindImage = "image"
	MediaKindVideo = "video"
	MediaKindNone  = ""
)

// Post is a feed entry owned by a user. A post must carry non-empty text or a
// media URL; both counters only ever increase. Posts are never deleted.
type Post struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Text      string `gorm:"type:text" json:"text"`
	MediaURL  string `gorm:"size:1024" json:"media"`
	MediaType string `gorm:"size:32" json:"mediaType"`

	Approvals int `gorm:"default:0" json:"approvals"`
	Shares    int `gorm:"default:0" json:"shares"`

	CreatedAt time.Time `json:"createdAt"`
}

// HasContent reports whether the post satisfies the text-or-media invariant
func (p *Post) HasContent() bool {
	return p.Text != "" || p.MediaURL != ""
}
