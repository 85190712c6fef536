package model

import "github.com/Tanz2024/Portfolio/auth"

type User struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username        string    `gorm:"uniqueIndex;not null" json:"username"`
	Role            auth.Role `gorm:"type:varchar(16);not null" json:"role"`
	ProfileImageURL string    `gorm:"column:profile_image_url" json:"profile_image_url"`
}
