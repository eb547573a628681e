package controllers

import (
	"errors"
	"net/http"

	"gestorzap/middleware"
	"gestorzap/warming"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WarmingImportRequest struct {
	Text string `json:"text" form:"text"`
}

// importStatusCodes mapeia o resultado do import para o código HTTP.
var importStatusCodes = map[string]int{
	warming.IMPORT_STATUS_SAVED:       http.StatusOK,
	warming.IMPORT_STATUS_EMPTY:       http.StatusOK,
	warming.IMPORT_STATUS_NO_VALID:    http.StatusUnprocessableEntity,
	warming.IMPORT_STATUS_NOTHING_NEW: http.StatusConflict,
	warming.IMPORT_STATUS_FAILED:      http.StatusInternalServerError,
}

var importMessages = map[string]string{
	warming.IMPORT_STATUS_SAVED:       "registros importados",
	warming.IMPORT_STATUS_EMPTY:       "nada para importar",
	warming.IMPORT_STATUS_NO_VALID:    "nenhum registro válido",
	warming.IMPORT_STATUS_NOTHING_NEW: "todos os registros já existem",
	warming.IMPORT_STATUS_FAILED:      "erro ao salvar registros",
}

func runImport[T any](c *gin.Context, b *warming.Book[T]) {
	var req WarmingImportRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	log := middleware.Log(c).With(
		zap.Int64("user_id", b.Owner()),
		zap.String("kind", b.Kind().Name()),
	)

	if err := b.Load(c.Request.Context()); err != nil {
		log.Error("warming load", zap.Error(err))
		RespondError(c, "erro ao carregar registros", http.StatusInternalServerError)
		return
	}

	res, err := warming.Import(c.Request.Context(), b, req.Text)
	if err != nil {
		log.Error("warming import", zap.Error(err))
	} else {
		log.Info("warming import",
			zap.String("status", res.Status),
			zap.Int("parsed", res.Parsed),
			zap.Int("inserted", len(res.Inserted)),
		)
	}

	RespondWithStatus(c, importStatusCodes[res.Status], importMessages[res.Status], gin.H{"result": res})
}

func listBook[T any](c *gin.Context, b *warming.Book[T], key string) {
	if err := b.Load(c.Request.Context()); err != nil {
		middleware.Log(c).Error("warming load", zap.Error(err))
		RespondError(c, "erro ao carregar registros", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{key: b.Records()})
}

func deleteFromBook[T any](c *gin.Context, b *warming.Book[T]) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	err := warming.Delete(c.Request.Context(), b, id)
	switch {
	case err == nil:
		RespondSuccess(c, gin.H{"status": "deleted"})
	case errors.Is(err, warming.ErrNotFound):
		RespondError(c, "registro não encontrado", http.StatusNotFound)
	default:
		middleware.Log(c).Error("warming delete", zap.Error(err), zap.Int64("id", id))
		RespondError(c, "erro ao remover registro", http.StatusInternalServerError)
	}
}

// GET /api/warming/numbers
func GetWarmingNumbers(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}
	listBook(c, warming.NewNumberBook(db, user.ID), "numbers")
}

// POST /api/warming/numbers/import
func ImportWarmingNumbers(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}
	runImport(c, warming.NewNumberBook(db, user.ID))
}

// DELETE /api/warming/numbers/:id
func DeleteWarmingNumber(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}
	deleteFromBook(c, warming.NewNumberBook(db, user.ID))
}

// GET /api/warming/groups
func GetWarmingGroups(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}
	listBook(c, warming.NewGroupBook(db, user.ID), "groups")
}

// POST /api/warming/groups/import
func ImportWarmingGroups(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}
	runImport(c, warming.NewGroupBook(db, user.ID))
}

// DELETE /api/warming/groups/:id
func DeleteWarmingGroup(c *gin.Context) {
	user, db, ok := ownerSession(c)
	if !ok {
		return
	}
	deleteFromBook(c, warming.NewGroupBook(db, user.ID))
}
