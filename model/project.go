package model

import "time"

type Project struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string      `gorm:"not null" json:"title"`
	Year        string      `json:"year"`
	Category    string      `json:"category"`
	Description string      `gorm:"not null" json:"description"`
	Screenshots StringArray `gorm:"type:text" json:"screenshots"`
	CreatedAt   time.Time   `json:"created_at"`
}
