package controllers

import (
	"net/http"
	"strconv"

	dbpkg "gestorzap/db"
	"gestorzap/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, name+" é obrigatório", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, name+" inválido", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// ownerSession devolve o usuário logado e o DB da requisição,
// respondendo o erro quando algum dos dois falta.
func ownerSession(c *gin.Context) (models.User, *gorm.DB, bool) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return models.User{}, nil, false
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return models.User{}, nil, false
	}
	return user, db, true
}

// findOwned carrega o registro id do usuário em out.
func findOwned(db *gorm.DB, out any, id, userID int64) error {
	return db.Where("id = ? AND user_id = ?", id, userID).First(out).Error
}
