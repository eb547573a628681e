package models

import "time"

/************************************************
/**** MARK: NUMBER STATUS ****/
/************************************************/
const NUMBER_STATUS_ACTIVE = "Ativo"
const NUMBER_STATUS_API = "API"
const NUMBER_STATUS_WARMING = "Aquecendo"
const NUMBER_STATUS_INACTIVE = "Inativo"
const NUMBER_STATUS_SUSPENDED = "Suspenso"

/************************************************
/**** MARK: NUMBER DEVICE ****/
/************************************************/
const NUMBER_DEVICE_PHONE = "Celular"
const NUMBER_DEVICE_EMULATOR = "Emulador"

// NumberStatuses lists the statuses in dashboard order.
var NumberStatuses = []string{
	NUMBER_STATUS_ACTIVE,
	NUMBER_STATUS_API,
	NUMBER_STATUS_WARMING,
	NUMBER_STATUS_INACTIVE,
	NUMBER_STATUS_SUSPENDED,
}

// WhatsNumber é um número WhatsApp gerenciado pelo painel.
type WhatsNumber struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID        int64      `gorm:"not null;index;unique_index:ux_whats_number" json:"user_id"`
	Number        string     `gorm:"not null;unique_index:ux_whats_number" json:"number" form:"number"`
	ProjectID     int64      `gorm:"not null;index" json:"project_id" form:"project_id"`
	ResponsibleID int64      `gorm:"not null;index" json:"responsible_id" form:"responsible_id"`
	Device        string     `gorm:"not null" json:"device" form:"device"`
	Status        string     `gorm:"not null;default:'Aquecendo';index" json:"status" form:"status"`
	URL           string     `gorm:"column:url;not null" json:"url"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func (n WhatsNumber) MissingFields() string {
	if n.Number == "" {
		return "number"
	} else if n.ProjectID <= 0 {
		return "project_id"
	} else if n.ResponsibleID <= 0 {
		return "responsible_id"
	} else if n.Device == "" {
		return "device"
	}
	return ""
}

func IsNumberStatusValid(status string) bool {
	for _, s := range NumberStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsNumberDeviceValid(device string) bool {
	return device == NUMBER_DEVICE_PHONE || device == NUMBER_DEVICE_EMULATOR
}
