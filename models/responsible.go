package models

import "time"

// Responsible é a pessoa que opera um número.
type Responsible struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	Email     string     `gorm:"default:''" json:"email" form:"email"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
