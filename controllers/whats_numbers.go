package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"gestorzap/models"
	"gestorzap/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// WhatsNumberUpdate traz só os campos enviados (PATCH semantics via PUT).
type WhatsNumberUpdate struct {
	Number        *string `json:"number"`
	ProjectID     *int64  `json:"project_id"`
	ResponsibleID *int64  `json:"responsible_id"`
	Device        *string `json:"device"`
	Status        *string `json:"status"`
}

// checkNumberRefs confirma que projeto e responsável pertencem ao usuário.
func checkNumberRefs(c *gin.Context, db *gorm.DB, userID, projectID, responsibleID int64) bool {
	if err := findOwned(db, &models.Project{}, projectID, userID); err != nil {
		RespondError(c, "projeto não encontrado", http.StatusBadRequest)
		return false
	}
	if err := findOwned(db, &models.Responsible{}, responsibleID, userID); err != nil {
		RespondError(c, "responsável não encontrado", http.StatusBadRequest)
		return false
	}
	return true
}

func numberTaken(db *gorm.DB, userID int64, number string, exceptID int64) (bool, error) {
	var count int
	err := db.Model(&models.WhatsNumber{}).
		Where("user_id = ? AND number = ? AND id <> ?", userID, number, exceptID).
		Count(&count).Error
	return count > 0, err
}

// GET /api/numbers?status=&project_id=
func GetWhatsNumbers(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	query := db.Where("user_id = ?", user.ID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !models.IsNumberStatusValid(status) {
			RespondError(c, "status inválido", http.StatusBadRequest)
			return
		}
		query = query.Where("status = ?", status)
	}
	if raw := strings.TrimSpace(c.Query("project_id")); raw != "" {
		projectID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || projectID <= 0 {
			RespondError(c, "project_id inválido", http.StatusBadRequest)
			return
		}
		query = query.Where("project_id = ?", projectID)
	}

	numbers := []models.WhatsNumber{}
	if err := query.Order("created_at desc, id desc").Find(&numbers).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"numbers": numbers})
}

// GET /api/numbers/:id
func GetWhatsNumberByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var number models.WhatsNumber
	if err := findOwned(db, &number, id, user.ID); err != nil {
		RespondError(c, "número não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"number": number})
}

// POST /api/numbers
func CreateWhatsNumber(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var number models.WhatsNumber
	if err := c.Bind(&number); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	number.Number = strings.TrimSpace(number.Number)

	if missing := number.MissingFields(); missing != "" {
		RespondError(c, "Faltando campo "+missing, http.StatusBadRequest)
		return
	}
	if !models.IsNumberDeviceValid(number.Device) {
		RespondError(c, "device inválido", http.StatusBadRequest)
		return
	}
	if number.Status == "" {
		number.Status = models.NUMBER_STATUS_WARMING
	} else if !models.IsNumberStatusValid(number.Status) {
		RespondError(c, "status inválido", http.StatusBadRequest)
		return
	}
	if !checkNumberRefs(c, db, user.ID, number.ProjectID, number.ResponsibleID) {
		return
	}

	number.ID = 0
	number.UserID = user.ID
	number.Number = tools.FormatBrazilNumber(number.Number)
	number.URL = tools.WhatsAppLink(number.Number)

	taken, err := numberTaken(db, user.ID, number.Number, 0)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if taken {
		RespondError(c, "número já cadastrado", http.StatusConflict)
		return
	}

	if err := db.Create(&number).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"number": number})
}

// PUT /api/numbers/:id
func UpdateWhatsNumber(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var body WhatsNumberUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var number models.WhatsNumber
	if err := findOwned(db, &number, id, user.ID); err != nil {
		RespondError(c, "número não encontrado", http.StatusNotFound)
		return
	}

	if body.Number != nil {
		raw := strings.TrimSpace(*body.Number)
		if raw == "" {
			RespondError(c, "number é obrigatório", http.StatusBadRequest)
			return
		}
		number.Number = tools.FormatBrazilNumber(raw)
		number.URL = tools.WhatsAppLink(number.Number)

		taken, err := numberTaken(db, user.ID, number.Number, number.ID)
		if err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		if taken {
			RespondError(c, "número já cadastrado", http.StatusConflict)
			return
		}
	}
	if body.Device != nil {
		if !models.IsNumberDeviceValid(*body.Device) {
			RespondError(c, "device inválido", http.StatusBadRequest)
			return
		}
		number.Device = *body.Device
	}
	if body.Status != nil {
		if !models.IsNumberStatusValid(*body.Status) {
			RespondError(c, "status inválido", http.StatusBadRequest)
			return
		}
		number.Status = *body.Status
	}
	if body.ProjectID != nil {
		number.ProjectID = *body.ProjectID
	}
	if body.ResponsibleID != nil {
		number.ResponsibleID = *body.ResponsibleID
	}
	if body.ProjectID != nil || body.ResponsibleID != nil {
		if !checkNumberRefs(c, db, user.ID, number.ProjectID, number.ResponsibleID) {
			return
		}
	}

	if err := db.Save(&number).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"number": number})
}

// DELETE /api/numbers/:id
func DeleteWhatsNumber(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	res := db.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.WhatsNumber{})
	if res.Error != nil {
		RespondError(c, res.Error.Error(), http.StatusBadRequest)
		return
	}
	if res.RowsAffected == 0 {
		RespondError(c, "número não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}
