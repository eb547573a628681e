package controllers

import (
	"net/http"
	"strings"

	"gestorzap/models"

	"github.com/gin-gonic/gin"
)

// UpdateCurrentUser updates the logged user ("me").
// Route: PUT /api/user
//
// Forbidden fields: id, email, password, status, created_at, updated_at.
func UpdateCurrentUser(c *gin.Context) {
	logged, db, ok := ownerSession(c)
	if !ok {
		return
	}

	// Bind to a generic map so we can ignore forbidden keys safely.
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	allowed := map[string]struct{}{
		"name": {},
	}
	updates := map[string]any{}
	for k, v := range payload {
		key := strings.ToLower(k)
		if _, isAllowed := allowed[key]; isAllowed {
			updates[key] = v
		}
	}
	payload = updates

	if len(payload) == 0 {
		u := logged
		u.Password = ""
		RespondSuccess(c, u)
		return
	}
	if name, _ := payload["name"].(string); strings.TrimSpace(name) == "" {
		RespondError(c, "name é obrigatório", http.StatusBadRequest)
		return
	}

	if err := db.Model(&models.User{}).
		Where("id = ?", logged.ID).
		Updates(payload).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var updated models.User
	if err := db.Where("id = ?", logged.ID).First(&updated).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	updated.Password = ""
	RespondSuccess(c, updated)
}
