package models

import "time"

// Group é um grupo WhatsApp gerenciado (link de convite).
type Group struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	URL       string     `gorm:"column:url;not null" json:"url" form:"url"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
