package controllers

import (
	"net/http"
	"strings"
	"time"

	dbpkg "gestorzap/db"
	"gestorzap/middleware"
	"gestorzap/models"
	"gestorzap/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	Token           string      `json:"token"`
	AccessExpiresAt int64       `json:"access_expires_at"`
	RefreshToken    string      `json:"refresh_token"`
	User            models.User `json:"user"`
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email e password são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, "usuário ou senha inválidos", http.StatusUnauthorized)
		return
	}
	if !tools.CheckSecret(user.Password, req.Password) {
		RespondError(c, "usuário ou senha inválidos", http.StatusUnauthorized)
		return
	}

	if user.Status == models.USER_STATUS_PENDING {
		RespondError(c, "usuário pendente de ativação", http.StatusForbidden)
		return
	}
	if user.Status == models.USER_STATUS_BLOCKED {
		RespondError(c, "usuário bloqueado", http.StatusForbidden)
		return
	}

	now := time.Now()
	signed, exp, err := issueAccessToken(user.ID, user.Email, now)
	if err != nil {
		RespondError(c, "erro ao assinar token", http.StatusInternalServerError)
		return
	}

	// sessão única: um login novo derruba os refresh tokens anteriores
	if err := revokeAllUserRefreshTokens(db, user.ID, now); err != nil {
		RespondError(c, "erro ao revogar sessões anteriores", http.StatusInternalServerError)
		return
	}
	refresh, err := issueRefreshToken(db, user.ID, now)
	if err != nil {
		RespondError(c, "erro ao gerar refresh token", http.StatusInternalServerError)
		return
	}

	middleware.Log(c).Info("login", zap.Int64("user_id", user.ID))

	user.Password = ""
	RespondSuccess(c, LoginResponse{
		Token:           signed,
		AccessExpiresAt: exp.Unix(),
		RefreshToken:    refresh,
		User:            user,
	})
}

// Logout revoga todos os refresh tokens do usuário logado.
func Logout(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}
	if err := revokeAllUserRefreshTokens(db, user.ID, time.Now()); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{"status": "logged_out"})
}
