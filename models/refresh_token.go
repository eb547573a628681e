package models

import "time"

// RefreshToken é um refresh token emitido no login.
// Só o hash SHA-512 fica no banco; o valor em texto vai apenas para o cliente.
type RefreshToken struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	TokenHash string     `gorm:"not null;unique_index" json:"-"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (rt RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt RefreshToken) IsExpired(now time.Time) bool {
	if rt.ExpiresAt == nil {
		return false
	}
	return now.After(*rt.ExpiresAt)
}

// Usable diz se o token ainda pode ser trocado por um novo par.
func (rt RefreshToken) Usable(now time.Time) bool {
	return !rt.IsRevoked() && !rt.IsExpired(now)
}
