package model

import "time"

// Profile is a singleton-per-user record, upserted by user id.
type Profile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"-"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	UpdatedAt time.Time `json:"-"`
}
