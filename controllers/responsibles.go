package controllers

import (
	"net/http"
	"strings"

	"gestorzap/models"
	"gestorzap/tools"

	"github.com/gin-gonic/gin"
)

// GET /api/responsibles
func GetResponsibles(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	responsibles := []models.Responsible{}
	if err := db.Where("user_id = ?", user.ID).
		Order("name asc, id asc").
		Find(&responsibles).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"responsibles": responsibles})
}

// POST /api/responsibles
func CreateResponsible(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var responsible models.Responsible
	if err := c.Bind(&responsible); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	responsible.Name = strings.TrimSpace(responsible.Name)
	responsible.Email = strings.TrimSpace(responsible.Email)
	if responsible.Name == "" {
		RespondError(c, "name é obrigatório", http.StatusBadRequest)
		return
	}
	if responsible.Email != "" && !tools.ValidateEmail(responsible.Email) {
		RespondError(c, "E-mail inválido!", http.StatusBadRequest)
		return
	}
	responsible.ID = 0
	responsible.UserID = user.ID

	if err := db.Create(&responsible).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"responsible": responsible})
}

// PUT /api/responsibles/:id
func UpdateResponsible(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var body models.Responsible
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var responsible models.Responsible
	if err := findOwned(db, &responsible, id, user.ID); err != nil {
		RespondError(c, "responsável não encontrado", http.StatusNotFound)
		return
	}

	if name := strings.TrimSpace(body.Name); name != "" {
		responsible.Name = name
	}
	email := strings.TrimSpace(body.Email)
	if email != "" && !tools.ValidateEmail(email) {
		RespondError(c, "E-mail inválido!", http.StatusBadRequest)
		return
	}
	responsible.Email = email

	if err := db.Save(&responsible).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"responsible": responsible})
}

// DELETE /api/responsibles/:id
func DeleteResponsible(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var linked int
	if err := db.Model(&models.WhatsNumber{}).
		Where("user_id = ? AND responsible_id = ?", user.ID, id).
		Count(&linked).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if linked > 0 {
		RespondError(c, "responsável possui números vinculados", http.StatusConflict)
		return
	}

	res := db.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Responsible{})
	if res.Error != nil {
		RespondError(c, res.Error.Error(), http.StatusBadRequest)
		return
	}
	if res.RowsAffected == 0 {
		RespondError(c, "responsável não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}
