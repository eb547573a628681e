package controllers

import (
	"errors"
	"strconv"
	"time"

	"gestorzap/config"

	"github.com/golang-jwt/jwt/v5"
)

// jwtClaims é o payload do access token emitido pelo Login:
//
//	{ "sub": "<userId>", "email": "...", "iat": ..., "exp": ... }
type jwtClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// UserID devolve o sub como id numérico (0 quando inválido).
func (c jwtClaims) UserID() int64 {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

var errNoSecret = errors.New("jwt_secret não configurado")

type authSettings struct {
	secret        string
	accessTTL     time.Duration
	refreshLen    int
	refreshMaxAge time.Duration
}

// sem segredo configurado nenhum token é emitido nem aceito
var auth = authSettings{
	accessTTL:     24 * time.Hour,
	refreshLen:    32,
	refreshMaxAge: 30 * 24 * time.Hour,
}

// Configure aplica a seção security da configuração aos handlers de autenticação.
func Configure(cfg config.Configuration) {
	auth.secret = cfg.Security.JwtSecret
	if cfg.Security.AccessTTLMinutes > 0 {
		auth.accessTTL = time.Duration(cfg.Security.AccessTTLMinutes) * time.Minute
	}
	if cfg.Security.RefreshCodeLen > 0 {
		auth.refreshLen = cfg.Security.RefreshCodeLen
	}
	if cfg.Security.RefreshCodeMaxValid > 0 {
		auth.refreshMaxAge = time.Duration(cfg.Security.RefreshCodeMaxValid) * 24 * time.Hour
	}
}

func getJWTSecret() string {
	return auth.secret
}

func signJWT(secret string, claims jwtClaims) (string, error) {
	if secret == "" {
		return "", errNoSecret
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// issueAccessToken assina o access token do usuário e devolve também a expiração.
func issueAccessToken(userID int64, email string, now time.Time) (string, time.Time, error) {
	exp := now.Add(auth.accessTTL)
	token, err := signJWT(getJWTSecret(), jwtClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	return token, exp, err
}

// parseJWT aceita apenas HS256 com exp e um sub numérico.
func parseJWT(token string, secret string) (jwtClaims, error) {
	var claims jwtClaims
	if secret == "" {
		return claims, errNoSecret
	}
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return jwtClaims{}, err
	}
	if claims.UserID() == 0 {
		return jwtClaims{}, jwt.ErrTokenInvalidSubject
	}
	return claims, nil
}
