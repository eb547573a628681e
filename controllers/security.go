package controllers

import (
	"net/http"
	"strings"

	"gestorzap/models"
	"gestorzap/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type SecurityRequest struct {
	EmailRecuperacao    string `json:"email_recuperacao" form:"email_recuperacao"`
	MensagemRecuperacao string `json:"mensagem_recuperacao" form:"mensagem_recuperacao"`
	CodigoPin           string `json:"codigo_pin" form:"codigo_pin"`
}

// SecurityResponse nunca devolve o PIN; has_pin indica se já existe um.
type SecurityResponse struct {
	EmailRecuperacao    string `json:"email_recuperacao"`
	MensagemRecuperacao string `json:"mensagem_recuperacao"`
	CodigoPin           string `json:"codigo_pin"`
	HasPin              bool   `json:"has_pin"`
}

type PinRequest struct {
	CodigoPin string `json:"codigo_pin" form:"codigo_pin"`
}

type DeviceEmailRequest struct {
	Email string `json:"email" form:"email"`
}

func securityResponse(s models.SecuritySettings) SecurityResponse {
	return SecurityResponse{
		EmailRecuperacao:    s.EmailRecuperacao,
		MensagemRecuperacao: s.MensagemRecuperacao,
		HasPin:              s.CodigoPin != "",
	}
}

// GET /api/security
func GetSecuritySettings(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var settings models.SecuritySettings
	err := db.Where("user_id = ?", user.ID).First(&settings).Error
	if err != nil && !gorm.IsRecordNotFoundError(err) {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"security": securityResponse(settings)})
}

// PUT /api/security
func SaveSecuritySettings(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var req SecurityRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.EmailRecuperacao = strings.TrimSpace(req.EmailRecuperacao)
	req.MensagemRecuperacao = strings.TrimSpace(req.MensagemRecuperacao)

	if req.EmailRecuperacao == "" || req.MensagemRecuperacao == "" || req.CodigoPin == "" {
		RespondError(c, "Preencha todos os campos", http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(req.EmailRecuperacao) {
		RespondError(c, "E-mail inválido!", http.StatusBadRequest)
		return
	}
	if !tools.ValidatePin(req.CodigoPin) {
		RespondError(c, "O PIN deve ter entre 4 e 8 caracteres", http.StatusBadRequest)
		return
	}

	hash, err := tools.HashSecret(req.CodigoPin, tools.PinCost)
	if err != nil {
		RespondError(c, "erro ao processar PIN", http.StatusInternalServerError)
		return
	}

	var settings models.SecuritySettings
	err = db.Where("user_id = ?", user.ID).First(&settings).Error
	if err != nil && !gorm.IsRecordNotFoundError(err) {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	settings.UserID = user.ID
	settings.EmailRecuperacao = req.EmailRecuperacao
	settings.MensagemRecuperacao = req.MensagemRecuperacao
	settings.CodigoPin = hash

	// Save faz insert quando ID == 0 e update caso contrário
	if err := db.Save(&settings).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"security": securityResponse(settings)})
}

// POST /api/security/verify-pin
func VerifySecurityPin(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var req PinRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.CodigoPin == "" {
		RespondError(c, "codigo_pin é obrigatório", http.StatusBadRequest)
		return
	}

	var settings models.SecuritySettings
	if err := db.Where("user_id = ?", user.ID).First(&settings).Error; err != nil || settings.CodigoPin == "" {
		RespondError(c, "PIN não configurado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"valid": tools.CheckSecret(settings.CodigoPin, req.CodigoPin)})
}

// GET /api/security/device-emails
func GetDeviceEmails(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	emails := []models.DeviceEmail{}
	if err := db.Where("user_id = ?", user.ID).
		Order("created_at asc, id asc").
		Find(&emails).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"emails": emails})
}

// POST /api/security/device-emails
func AddDeviceEmail(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var req DeviceEmailRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !tools.ValidateEmail(email) {
		RespondError(c, "E-mail inválido!", http.StatusBadRequest)
		return
	}

	var count int
	if err := db.Model(&models.DeviceEmail{}).
		Where("user_id = ? AND email = ?", user.ID, email).
		Count(&count).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if count > 0 {
		RespondError(c, "E-mail Duplicado", http.StatusConflict)
		return
	}

	row := models.DeviceEmail{UserID: user.ID, Email: email}
	if err := db.Create(&row).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"email": row})
}

// DELETE /api/security/device-emails/:email
func RemoveDeviceEmail(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	email := strings.TrimSpace(strings.ToLower(c.Param("email")))
	if email == "" {
		RespondError(c, "email é obrigatório", http.StatusBadRequest)
		return
	}

	res := db.Where("user_id = ? AND email = ?", user.ID, email).Delete(&models.DeviceEmail{})
	if res.Error != nil {
		RespondError(c, res.Error.Error(), http.StatusBadRequest)
		return
	}
	if res.RowsAffected == 0 {
		RespondError(c, "e-mail não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}
