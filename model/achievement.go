package model

import "time"

type Achievement struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	// The stored column keeps the snake_case name while the JSON field uses
	// the alias the frontend expects.
	CertificatePDF string    `gorm:"column:certificate_pdf" json:"certificateUrl"`
	Category       string    `json:"category"`
	Year           string    `json:"year"`
	Image          string    `json:"image"`
	Video          string    `json:"video"`
	Tags           string    `json:"tags"`
	Reactions      CountMap  `gorm:"type:jsonb" json:"reactions"`
	CreatedAt      time.Time `json:"created_at"`
}
