package controllers

import (
	"net/http"

	"gestorzap/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type DashboardResponse struct {
	NumbersByStatus map[string]int `json:"numbers_by_status"`
	Numbers         int            `json:"numbers"`
	Projects        int            `json:"projects"`
	Responsibles    int            `json:"responsibles"`
	Groups          int            `json:"groups"`
	WarmingNumbers  int            `json:"warming_numbers"`
	WarmingGroups   int            `json:"warming_groups"`
}

func countOwned(db *gorm.DB, model any, userID int64) (int, error) {
	var n int
	err := db.Model(model).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// GET /api/dashboard
func GetDashboard(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}

	resp := DashboardResponse{NumbersByStatus: map[string]int{}}
	for _, status := range models.NumberStatuses {
		resp.NumbersByStatus[status] = 0
	}

	rows, err := db.Model(&models.WhatsNumber{}).
		Select("status, count(*)").
		Where("user_id = ?", user.ID).
		Group("status").
		Rows()
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	for rows.Next() {
		var status string
		var total int
		if err := rows.Scan(&status, &total); err != nil {
			rows.Close()
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		resp.NumbersByStatus[status] = total
		resp.Numbers += total
	}
	// libera a conexão antes das próximas contagens
	rows.Close()
	if err := rows.Err(); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	counts := []struct {
		model any
		dst   *int
	}{
		{&models.Project{}, &resp.Projects},
		{&models.Responsible{}, &resp.Responsibles},
		{&models.Group{}, &resp.Groups},
		{&models.WarmingNumber{}, &resp.WarmingNumbers},
		{&models.WarmingGroup{}, &resp.WarmingGroups},
	}
	for _, ct := range counts {
		n, err := countOwned(db, ct.model, user.ID)
		if err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		*ct.dst = n
	}

	RespondSuccess(c, gin.H{"dashboard": resp})
}
