package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"gestorzap/config"
	dbpkg "gestorzap/db"
	"gestorzap/middleware"
	"gestorzap/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type harness struct {
	t  *testing.T
	r  *gin.Engine
	db *gorm.DB
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := config.Configuration{Database: "sqlite3", DbPath: ":memory:", AutoMigrate: true}
	conf.Security.JwtSecret = "test-secret"
	db, err := dbpkg.Connect(conf, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r := gin.New()
	Initialize(r, conf, db, zap.NewNop())
	return &harness{t: t, r: r, db: db}
}

func (h *harness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type loginBody struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// signup registers and logs a user in, returning the access token.
func (h *harness) signup(email string) string {
	h.t.Helper()
	w := h.do(http.MethodPost, "/api/users", "", gin.H{"name": "Operador", "email": email, "password": "segredo123"})
	require.Equal(h.t, http.StatusOK, w.Code, w.Body.String())
	return h.login(email, "segredo123").Token
}

func (h *harness) login(email, password string) loginBody {
	h.t.Helper()
	w := h.do(http.MethodPost, "/api/login", "", gin.H{"email": email, "password": password})
	require.Equal(h.t, http.StatusOK, w.Code, w.Body.String())
	return decode[loginBody](h.t, w)
}

func TestHealthAndRequestID(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestAuthFlow(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/api/users", "", gin.H{"name": "Ana", "email": "Ana@Empresa.com", "password": "segredo123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[models.User](t, w)
	assert.Equal(t, "ana@empresa.com", created.Email)
	assert.Empty(t, created.Password)

	var stored models.User
	require.NoError(t, h.db.First(&stored, created.ID).Error)
	assert.True(t, strings.HasPrefix(stored.Password, "$2a$"))

	w = h.do(http.MethodPost, "/api/users", "", gin.H{"name": "Ana", "email": "ana@empresa.com", "password": "segredo123"})
	assert.Equal(t, http.StatusConflict, w.Code)
	w = h.do(http.MethodPost, "/api/users", "", gin.H{"name": "Ana", "email": "ana@", "password": "segredo123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = h.do(http.MethodPost, "/api/users", "", gin.H{"name": "Ana", "email": "b@empresa.com", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodPost, "/api/login", "", gin.H{"email": "ana@empresa.com", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	session := h.login("ana@empresa.com", "segredo123")
	require.NotEmpty(t, session.Token)
	require.NotEmpty(t, session.RefreshToken)

	w = h.do(http.MethodGet, "/api/me", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[struct {
		User models.User `json:"user"`
	}](t, w)
	assert.Equal(t, created.ID, me.User.ID)

	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodGet, "/api/me", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodGet, "/api/me", "garbage", nil).Code)

	w = h.do(http.MethodPost, "/api/refresh", "", gin.H{"refresh_token": session.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	refreshed := decode[struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}](t, w)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, session.RefreshToken, refreshed.RefreshToken)

	// rotated: the old refresh token is no longer usable
	w = h.do(http.MethodPost, "/api/refresh", "", gin.H{"refresh_token": session.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodPost, "/api/logout", refreshed.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = h.do(http.MethodPost, "/api/refresh", "", gin.H{"refresh_token": refreshed.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForgedPlaceholderTokenRejected(t *testing.T) {
	h := newHarness(t)
	h.signup("ana@empresa.com")
	var victim models.User
	require.NoError(t, h.db.Where("email = ?", "ana@empresa.com").First(&victim).Error)

	now := time.Now()
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(victim.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("CHANGE_ME"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodGet, "/api/warming/numbers", forged, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodGet, "/api/me", forged, nil).Code)
}

func TestUpdateCurrentUser(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	w := h.do(http.MethodPut, "/api/user", token, gin.H{"Name": "Ana Paula", "email": "hack@empresa.com", "status": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	u := decode[models.User](t, w)
	assert.Equal(t, "Ana Paula", u.Name)
	assert.Equal(t, "ana@empresa.com", u.Email)
	assert.Equal(t, models.USER_STATUS_AVAILABLE, u.Status)
}

func TestAuthorizerBlocksInactiveUsers(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	require.NoError(t, h.db.Model(&models.User{}).
		Where("email = ?", "ana@empresa.com").
		Update("status", models.USER_STATUS_BLOCKED).Error)

	assert.Equal(t, http.StatusForbidden, h.do(http.MethodGet, "/api/dashboard", token, nil).Code)
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/api/me", token, nil).Code)

	w := h.do(http.MethodPost, "/api/login", "", gin.H{"email": "ana@empresa.com", "password": "segredo123"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

type importBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Result  struct {
		Status     string                 `json:"status"`
		Parsed     int                    `json:"parsed"`
		Valid      int                    `json:"valid"`
		Duplicates int                    `json:"duplicates"`
		Inserted   []models.WarmingNumber `json:"inserted"`
	} `json:"result"`
}

func TestWarmingNumbersImport(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	w := h.do(http.MethodPost, "/api/warming/numbers/import", token,
		gin.H{"text": "+5511912345678 | test\n+5511912345678 | dup"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[importBody](t, w)
	assert.Equal(t, "saved", res.Result.Status)
	require.Len(t, res.Result.Inserted, 1)
	inserted := res.Result.Inserted[0]
	assert.Equal(t, "+5511912345678", inserted.Numero)
	assert.Equal(t, "https://wa.me/5511912345678", inserted.URL)
	require.NotNil(t, inserted.Descricao)
	assert.Equal(t, "test", *inserted.Descricao)

	w = h.do(http.MethodPost, "/api/warming/numbers/import", token, gin.H{"text": "+5511912345678"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "nothing_new", decode[importBody](t, w).Result.Status)

	w = h.do(http.MethodPost, "/api/warming/numbers/import", token, gin.H{"text": "5511912345678 | missing plus"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	res = decode[importBody](t, w)
	assert.Equal(t, "no_valid", res.Result.Status)
	assert.NotEmpty(t, res.Error)

	w = h.do(http.MethodPost, "/api/warming/numbers/import", token, gin.H{"text": "  "})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "empty", decode[importBody](t, w).Result.Status)

	w = h.do(http.MethodGet, "/api/warming/numbers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Numbers []models.WarmingNumber `json:"numbers"`
	}](t, w)
	require.Len(t, list.Numbers, 1)

	path := fmt.Sprintf("/api/warming/numbers/%d", inserted.ID)
	assert.Equal(t, http.StatusOK, h.do(http.MethodDelete, path, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodDelete, path, token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodDelete, "/api/warming/numbers/abc", token, nil).Code)
}

func TestWarmingNumbersImport_PersistenceFailure(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	// another writer stores the same number between the load and the insert
	raced := false
	h.db.Callback().Create().Before("gorm:create").Register("test:concurrent_writer", func(scope *gorm.Scope) {
		n, ok := scope.Value.(*models.WarmingNumber)
		if !ok || raced {
			return
		}
		raced = true
		_, err := scope.SQLDB().Exec(
			"INSERT INTO warming_numbers (user_id, numero, url) VALUES (?, ?, ?)",
			n.UserID, n.Numero, n.URL)
		require.NoError(t, err)
	})

	w := h.do(http.MethodPost, "/api/warming/numbers/import", token,
		gin.H{"text": "+5511900000001\n+5511900000002"})
	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
	res := decode[importBody](t, w)
	assert.Equal(t, "failed", res.Result.Status)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.Result.Inserted)
	assert.True(t, raced)

	w = h.do(http.MethodGet, "/api/warming/numbers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Numbers []models.WarmingNumber `json:"numbers"`
	}](t, w)
	assert.Empty(t, list.Numbers)
}

func TestWarmingTenantIsolation(t *testing.T) {
	h := newHarness(t)
	alice := h.signup("alice@empresa.com")
	bob := h.signup("bob@empresa.com")

	w := h.do(http.MethodPost, "/api/warming/numbers/import", alice, gin.H{"text": "+5511900000001"})
	require.Equal(t, http.StatusOK, w.Code)
	aliceID := decode[importBody](t, w).Result.Inserted[0].ID

	w = h.do(http.MethodGet, "/api/warming/numbers", bob, nil)
	list := decode[struct {
		Numbers []models.WarmingNumber `json:"numbers"`
	}](t, w)
	assert.Empty(t, list.Numbers)

	w = h.do(http.MethodPost, "/api/warming/numbers/import", bob, gin.H{"text": "+5511900000001"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodDelete, fmt.Sprintf("/api/warming/numbers/%d", aliceID), bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWarmingGroupsImport(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	w := h.do(http.MethodPost, "/api/warming/groups/import", token,
		gin.H{"text": "Team A | https://chat.whatsapp.com/xyz\nTeam B | https://example.com/abc\nsem url"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(http.MethodGet, "/api/warming/groups", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Groups []models.WarmingGroup `json:"groups"`
	}](t, w)
	require.Len(t, list.Groups, 1)
	assert.Equal(t, "Team A", list.Groups[0].Nome)
	assert.Equal(t, "https://chat.whatsapp.com/xyz", list.Groups[0].URL)

	path := fmt.Sprintf("/api/warming/groups/%d", list.Groups[0].ID)
	assert.Equal(t, http.StatusOK, h.do(http.MethodDelete, path, token, nil).Code)
}

func TestNumbersProjectsResponsibles(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")
	other := h.signup("bob@empresa.com")

	w := h.do(http.MethodPost, "/api/projects", token, gin.H{"name": "Loja", "description": "campanha de natal"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	project := decode[struct {
		Project models.Project `json:"project"`
	}](t, w).Project

	w = h.do(http.MethodPost, "/api/responsibles", token, gin.H{"name": "Carlos", "email": "carlos@empresa.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	responsible := decode[struct {
		Responsible models.Responsible `json:"responsible"`
	}](t, w).Responsible

	assert.Equal(t, http.StatusBadRequest,
		h.do(http.MethodPost, "/api/responsibles", token, gin.H{"name": "X", "email": "x@"}).Code)

	newNumber := gin.H{
		"number":         "(11) 91234-5678",
		"project_id":     project.ID,
		"responsible_id": responsible.ID,
		"device":         models.NUMBER_DEVICE_PHONE,
	}
	w = h.do(http.MethodPost, "/api/numbers", token, newNumber)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	number := decode[struct {
		Number models.WhatsNumber `json:"number"`
	}](t, w).Number
	assert.Equal(t, "+5511912345678", number.Number)
	assert.Equal(t, "https://wa.me/5511912345678", number.URL)
	assert.Equal(t, models.NUMBER_STATUS_WARMING, number.Status)

	assert.Equal(t, http.StatusConflict, h.do(http.MethodPost, "/api/numbers", token, newNumber).Code)

	newNumber["number"] = "+5511900000000"
	newNumber["device"] = "Tablet"
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/api/numbers", token, newNumber).Code)

	// project of another tenant
	newNumber["device"] = models.NUMBER_DEVICE_EMULATOR
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/api/numbers", other, newNumber).Code)

	numberPath := fmt.Sprintf("/api/numbers/%d", number.ID)
	w = h.do(http.MethodPut, numberPath, token, gin.H{"status": models.NUMBER_STATUS_ACTIVE})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPut, numberPath, token, gin.H{"status": "Voando"}).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, numberPath, other, nil).Code)

	w = h.do(http.MethodGet, "/api/numbers?status=Ativo", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	filtered := decode[struct {
		Numbers []models.WhatsNumber `json:"numbers"`
	}](t, w).Numbers
	require.Len(t, filtered, 1)
	assert.Equal(t, number.ID, filtered[0].ID)

	w = h.do(http.MethodGet, "/api/numbers?status=Inativo", token, nil)
	assert.Empty(t, decode[struct {
		Numbers []models.WhatsNumber `json:"numbers"`
	}](t, w).Numbers)

	projectPath := fmt.Sprintf("/api/projects/%d", project.ID)
	responsiblePath := fmt.Sprintf("/api/responsibles/%d", responsible.ID)
	assert.Equal(t, http.StatusConflict, h.do(http.MethodDelete, projectPath, token, nil).Code)
	assert.Equal(t, http.StatusConflict, h.do(http.MethodDelete, responsiblePath, token, nil).Code)

	assert.Equal(t, http.StatusOK, h.do(http.MethodDelete, numberPath, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodDelete, projectPath, other, nil).Code)
	assert.Equal(t, http.StatusOK, h.do(http.MethodDelete, projectPath, token, nil).Code)
	assert.Equal(t, http.StatusOK, h.do(http.MethodDelete, responsiblePath, token, nil).Code)
}

func TestProjectsSearch(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	for _, name := range []string{"Loja Centro", "Clínica", "Loja Norte"} {
		require.Equal(t, http.StatusOK, h.do(http.MethodPost, "/api/projects", token, gin.H{"name": name}).Code)
	}
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/api/projects", token, gin.H{"name": " "}).Code)

	w := h.do(http.MethodGet, "/api/projects?q=loja", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decode[struct {
		Projects []models.Project `json:"projects"`
	}](t, w).Projects
	require.Len(t, projects, 2)
	for _, p := range projects {
		assert.Contains(t, p.Name, "Loja")
	}
}

func TestProjectsSearch_WildcardsAreLiteral(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	for _, name := range []string{"100% Loja", "Loja Norte", "Loja_Sul"} {
		require.Equal(t, http.StatusOK, h.do(http.MethodPost, "/api/projects", token, gin.H{"name": name}).Code)
	}

	search := func(q string) []string {
		w := h.do(http.MethodGet, "/api/projects?q="+url.QueryEscape(q), token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		names := []string{}
		for _, p := range decode[struct {
			Projects []models.Project `json:"projects"`
		}](t, w).Projects {
			names = append(names, p.Name)
		}
		return names
	}

	assert.Equal(t, []string{"100% Loja"}, search("100%"))
	assert.Equal(t, []string{"100% Loja"}, search("%"))
	assert.Equal(t, []string{"Loja_Sul"}, search("_"))
	assert.Empty(t, search("loja\\"))
	assert.Len(t, search("loja"), 3)
}

func TestGroupsCRUD(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	assert.Equal(t, http.StatusBadRequest,
		h.do(http.MethodPost, "/api/groups", token, gin.H{"name": "Vendas", "url": "https://example.com"}).Code)

	w := h.do(http.MethodPost, "/api/groups", token, gin.H{"name": "Vendas", "url": "https://chat.whatsapp.com/abc"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	group := decode[struct {
		Group models.Group `json:"group"`
	}](t, w).Group

	path := fmt.Sprintf("/api/groups/%d", group.ID)
	w = h.do(http.MethodPut, path, token, gin.H{"name": "Vendas SP"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Vendas SP", decode[struct {
		Group models.Group `json:"group"`
	}](t, w).Group.Name)

	assert.Equal(t, http.StatusOK, h.do(http.MethodDelete, path, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodDelete, path, token, nil).Code)
}

type securityBody struct {
	Security struct {
		EmailRecuperacao    string `json:"email_recuperacao"`
		MensagemRecuperacao string `json:"mensagem_recuperacao"`
		CodigoPin           string `json:"codigo_pin"`
		HasPin              bool   `json:"has_pin"`
	} `json:"security"`
}

func TestSecuritySettings(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	w := h.do(http.MethodGet, "/api/security", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[securityBody](t, w).Security.HasPin)

	settings := gin.H{
		"email_recuperacao":    "recupera@empresa.com",
		"mensagem_recuperacao": "ligar para o suporte",
		"codigo_pin":           "123",
	}
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPut, "/api/security", token, settings).Code)
	settings["codigo_pin"] = "4321"
	settings["email_recuperacao"] = "recupera"
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPut, "/api/security", token, settings).Code)

	settings["email_recuperacao"] = "recupera@empresa.com"
	w = h.do(http.MethodPut, "/api/security", token, settings)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	saved := decode[securityBody](t, w).Security
	assert.True(t, saved.HasPin)
	assert.Empty(t, saved.CodigoPin)
	assert.NotContains(t, w.Body.String(), "4321")

	var row models.SecuritySettings
	require.NoError(t, h.db.First(&row).Error)
	assert.True(t, strings.HasPrefix(row.CodigoPin, "$2a$10$"))

	// upsert keeps a single row per owner
	settings["mensagem_recuperacao"] = "nova mensagem"
	require.Equal(t, http.StatusOK, h.do(http.MethodPut, "/api/security", token, settings).Code)
	var count int
	require.NoError(t, h.db.Model(&models.SecuritySettings{}).Count(&count).Error)
	assert.Equal(t, 1, count)

	w = h.do(http.MethodGet, "/api/security", token, nil)
	loaded := decode[securityBody](t, w).Security
	assert.Equal(t, "nova mensagem", loaded.MensagemRecuperacao)
	assert.Empty(t, loaded.CodigoPin)

	w = h.do(http.MethodPost, "/api/security/verify-pin", token, gin.H{"codigo_pin": "4321"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"valid": true}, decode[map[string]bool](t, w))
	w = h.do(http.MethodPost, "/api/security/verify-pin", token, gin.H{"codigo_pin": "0000"})
	assert.Equal(t, map[string]bool{"valid": false}, decode[map[string]bool](t, w))

	other := h.signup("bob@empresa.com")
	assert.Equal(t, http.StatusNotFound,
		h.do(http.MethodPost, "/api/security/verify-pin", other, gin.H{"codigo_pin": "4321"}).Code)
}

func TestDeviceEmails(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	require.Equal(t, http.StatusOK,
		h.do(http.MethodPost, "/api/security/device-emails", token, gin.H{"email": "cel1@empresa.com"}).Code)
	w := h.do(http.MethodPost, "/api/security/device-emails", token, gin.H{"email": "CEL1@empresa.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "E-mail Duplicado", decode[map[string]string](t, w)["error"])
	assert.Equal(t, http.StatusBadRequest,
		h.do(http.MethodPost, "/api/security/device-emails", token, gin.H{"email": "cel2"}).Code)

	w = h.do(http.MethodGet, "/api/security/device-emails", token, nil)
	emails := decode[struct {
		Emails []models.DeviceEmail `json:"emails"`
	}](t, w).Emails
	require.Len(t, emails, 1)
	assert.Equal(t, "cel1@empresa.com", emails[0].Email)

	assert.Equal(t, http.StatusOK,
		h.do(http.MethodDelete, "/api/security/device-emails/cel1@empresa.com", token, nil).Code)
	assert.Equal(t, http.StatusNotFound,
		h.do(http.MethodDelete, "/api/security/device-emails/cel1@empresa.com", token, nil).Code)
}

func TestDashboard(t *testing.T) {
	h := newHarness(t)
	token := h.signup("ana@empresa.com")

	w := h.do(http.MethodPost, "/api/projects", token, gin.H{"name": "Loja"})
	project := decode[struct {
		Project models.Project `json:"project"`
	}](t, w).Project
	w = h.do(http.MethodPost, "/api/responsibles", token, gin.H{"name": "Carlos"})
	responsible := decode[struct {
		Responsible models.Responsible `json:"responsible"`
	}](t, w).Responsible

	for i, status := range []string{models.NUMBER_STATUS_ACTIVE, models.NUMBER_STATUS_ACTIVE, models.NUMBER_STATUS_SUSPENDED} {
		w = h.do(http.MethodPost, "/api/numbers", token, gin.H{
			"number":         fmt.Sprintf("+551190000000%d", i),
			"project_id":     project.ID,
			"responsible_id": responsible.ID,
			"device":         models.NUMBER_DEVICE_PHONE,
			"status":         status,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	require.Equal(t, http.StatusOK,
		h.do(http.MethodPost, "/api/warming/numbers/import", token, gin.H{"text": "+5511911111111\n+5511922222222"}).Code)

	w = h.do(http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	dash := decode[struct {
		Dashboard struct {
			NumbersByStatus map[string]int `json:"numbers_by_status"`
			Numbers         int            `json:"numbers"`
			Projects        int            `json:"projects"`
			Responsibles    int            `json:"responsibles"`
			Groups          int            `json:"groups"`
			WarmingNumbers  int            `json:"warming_numbers"`
			WarmingGroups   int            `json:"warming_groups"`
		} `json:"dashboard"`
	}](t, w).Dashboard

	assert.Equal(t, 3, dash.Numbers)
	assert.Equal(t, 2, dash.NumbersByStatus[models.NUMBER_STATUS_ACTIVE])
	assert.Equal(t, 1, dash.NumbersByStatus[models.NUMBER_STATUS_SUSPENDED])
	assert.Equal(t, 0, dash.NumbersByStatus[models.NUMBER_STATUS_WARMING])
	assert.Len(t, dash.NumbersByStatus, len(models.NumberStatuses))
	assert.Equal(t, 1, dash.Projects)
	assert.Equal(t, 1, dash.Responsibles)
	assert.Equal(t, 0, dash.Groups)
	assert.Equal(t, 2, dash.WarmingNumbers)
	assert.Equal(t, 0, dash.WarmingGroups)
}
