package models

import "time"

// WarmingNumber é um número usado no aquecimento de contas.
// Regra: numero é único por usuário (unique(user_id, numero)).
type WarmingNumber struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index;unique_index:ux_warming_number" json:"user_id"`
	Numero    string     `gorm:"not null;unique_index:ux_warming_number" json:"numero"`
	Descricao *string    `gorm:"type:text" json:"descricao"`
	URL       string     `gorm:"column:url;not null" json:"url"`
	CreatedAt *time.Time `json:"created_at"`
}

// WarmingGroup é um grupo usado no aquecimento.
// Regra: url é única por usuário (unique(user_id, url)).
type WarmingGroup struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index;unique_index:ux_warming_group" json:"user_id"`
	Nome      string     `gorm:"not null" json:"nome"`
	URL       string     `gorm:"column:url;not null;unique_index:ux_warming_group" json:"url"`
	CreatedAt *time.Time `json:"created_at"`
}
