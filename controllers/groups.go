package controllers

import (
	"net/http"
	"strings"

	"gestorzap/models"
	"gestorzap/tools"

	"github.com/gin-gonic/gin"
)

// GET /api/groups
func GetGroups(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	groups := []models.Group{}
	if err := db.Where("user_id = ?", user.ID).
		Order("created_at desc, id desc").
		Find(&groups).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"groups": groups})
}

// POST /api/groups
func CreateGroup(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var group models.Group
	if err := c.Bind(&group); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	group.Name = strings.TrimSpace(group.Name)
	group.URL = strings.TrimSpace(group.URL)
	if group.Name == "" {
		RespondError(c, "name é obrigatório", http.StatusBadRequest)
		return
	}
	if group.URL == "" {
		RespondError(c, "url é obrigatório", http.StatusBadRequest)
		return
	}
	if !tools.IsGroupInviteURL(group.URL) {
		RespondError(c, "url precisa ser um link de convite do WhatsApp", http.StatusBadRequest)
		return
	}
	group.ID = 0
	group.UserID = user.ID

	if err := db.Create(&group).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"group": group})
}

// PUT /api/groups/:id
func UpdateGroup(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var body models.Group
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var group models.Group
	if err := findOwned(db, &group, id, user.ID); err != nil {
		RespondError(c, "grupo não encontrado", http.StatusNotFound)
		return
	}

	if name := strings.TrimSpace(body.Name); name != "" {
		group.Name = name
	}
	if url := strings.TrimSpace(body.URL); url != "" {
		if !tools.IsGroupInviteURL(url) {
			RespondError(c, "url precisa ser um link de convite do WhatsApp", http.StatusBadRequest)
			return
		}
		group.URL = url
	}

	if err := db.Save(&group).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"group": group})
}

// DELETE /api/groups/:id
func DeleteGroup(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	res := db.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Group{})
	if res.Error != nil {
		RespondError(c, res.Error.Error(), http.StatusBadRequest)
		return
	}
	if res.RowsAffected == 0 {
		RespondError(c, "grupo não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}
