package models

import (
	"encoding/json"
	"time"
)

// StringList is an ordered list of strings stored as a serialized JSON text
// column. It marshals to [] rather than null so list-valued profile fields are
// always arrays on the wire.
type StringList []string

// MarshalJSON emits an empty array for a nil list
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// User represents a VSXchangeZA account. Email is stored lowercase and compared
// case-insensitively; the password hash never leaves the server.
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"uniqueIndex;size:320;not null" json:"email"`

	PasswordHash string `gorm:"size:256;not null" json:"-"`

	FirstName string `gorm:"size:120" json:"firstName"`
	LastName  string `gorm:"size:120" json:"lastName"`
	Role      string `gorm:"size:50;default:client" json:"role"`
	Location  string `gorm:"size:200" json:"location"`
	Bio       string `gorm:"type:text" json:"bio"`
	AvatarURL string `gorm:"size:1024" json:"avatarUrl"`

	// Discoverable gates inclusion in /users search results. No column
	// default on purpose: gorm drops zero-valued fields carrying one from
	// INSERT, which would turn an explicit false into true. Creation paths
	// set this field themselves.
	Discoverable bool `json:"discoverable"`

	Skills    StringList `gorm:"type:text;serializer:json" json:"skills"`
	Portfolio StringList `gorm:"type:text;serializer:json" json:"portfolio"`
	Photos    StringList `gorm:"type:text;serializer:json" json:"photos"`
	Companies StringList `gorm:"type:text;serializer:json" json:"companies"`

	Rate         *float64 `json:"rate"`
	Availability string   `gorm:"size:200" json:"availability"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// AuthorSnapshot is the embedded author shape carried on posts and comments so
// the client never needs a second lookup.
type AuthorSnapshot struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatarUrl"`
}

// Author returns the snapshot of this user for embedding in feed items
func (u *User) Author() AuthorSnapshot {
	return AuthorSnapshot{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
}
