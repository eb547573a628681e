package models

import "time"

// SecuritySettings guarda os dados de recuperação de conta (1 por usuário).
// O PIN é guardado apenas como hash bcrypt e nunca sai na API.
type SecuritySettings struct {
	ID                  int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID              int64      `gorm:"not null;unique_index" json:"user_id"`
	EmailRecuperacao    string     `gorm:"not null" json:"email_recuperacao"`
	MensagemRecuperacao string     `gorm:"type:text" json:"mensagem_recuperacao"`
	CodigoPin           string     `gorm:"column:codigo_pin" json:"-"`
	CreatedAt           *time.Time `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at"`
}

// DeviceEmail é um e-mail vinculado aos aparelhos do usuário.
type DeviceEmail struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index;unique_index:ux_device_email" json:"user_id"`
	Email     string     `gorm:"not null;unique_index:ux_device_email" json:"email"`
	CreatedAt *time.Time `json:"created_at"`
}
