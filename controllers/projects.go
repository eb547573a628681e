package controllers

import (
	"net/http"
	"strings"

	"gestorzap/models"

	"github.com/gin-gonic/gin"
)

// likeEscaper faz % e _ da busca casarem literalmente.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// GET /api/projects?q=
func GetProjects(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	query := db.Where("user_id = ?", user.ID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, like, like)
	}

	projects := []models.Project{}
	if err := query.Order("created_at desc, id desc").Find(&projects).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"projects": projects})
}

// GET /api/projects/:id
func GetProjectByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var project models.Project
	if err := findOwned(db, &project, id, user.ID); err != nil {
		RespondError(c, "projeto não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"project": project})
}

// POST /api/projects
func CreateProject(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var project models.Project
	if err := c.Bind(&project); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		RespondError(c, "name é obrigatório", http.StatusBadRequest)
		return
	}
	project.ID = 0
	project.UserID = user.ID

	if err := db.Create(&project).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"project": project})
}

// PUT /api/projects/:id
func UpdateProject(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	var body models.Project
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var project models.Project
	if err := findOwned(db, &project, id, user.ID); err != nil {
		RespondError(c, "projeto não encontrado", http.StatusNotFound)
		return
	}

	if name := strings.TrimSpace(body.Name); name != "" {
		project.Name = name
	}
	project.Description = body.Description

	if err := db.Save(&project).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"project": project})
}

// DELETE /api/projects/:id
func DeleteProject(c *gin.Context) {
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
		Where("user_id = ? AND project_id = ?", user.ID, id).
		Count(&linked).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if linked > 0 {
		RespondError(c, "projeto possui números vinculados", http.StatusConflict)
		return
	}

	res := db.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Project{})
	if res.Error != nil {
		RespondError(c, res.Error.Error(), http.StatusBadRequest)
		return
	}
	if res.RowsAffected == 0 {
		RespondError(c, "projeto não encontrado", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}
