// Package model defines database models
package model

import "time"

type Blog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Date      time.Time `json:"date"`
	Tools     string    `json:"tools"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	DocURL    string    `gorm:"column:doc_url" json:"doc_url"`
	ImageURL  string    `gorm:"column:image_url" json:"image_url"`
	VideoURL  string    `gorm:"column:video_url" json:"video_url"`
	Featured  bool      `json:"featured"`
	Published bool      `gorm:"default:true" json:"published"`
}
