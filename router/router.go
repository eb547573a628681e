package router

import (
	"net/http"

	"gestorzap/config"
	"gestorzap/controllers"
	dbpkg "gestorzap/db"
	"gestorzap/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

// Initialize wires all routes and middlewares:
// public routes + authenticated routes + "validated" routes (Authorizer).
func Initialize(r *gin.Engine, cfg config.Configuration, db *gorm.DB, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	controllers.Configure(cfg)

	r.Use(gin.Recovery())
	r.Use(middleware.RequestContext(log))
	r.Use(middleware.CORSMiddleware())
	r.Use(dbpkg.SetDBtoContext(db))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/users", Logger(), controllers.CreateUser)
	api.POST("/login", Logger(), controllers.Login)
	api.POST("/refresh", Logger(), controllers.Refresh)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())
	auth.GET("/me", Logger(), controllers.Me)
	auth.POST("/logout", Logger(), controllers.Logout)

	// Validated routes (token + active user)
	validated := auth.Group("")
	validated.Use(Authorizer())

	validated.PUT("/user", Logger(), controllers.UpdateCurrentUser)

	// Dashboard
	validated.GET("/dashboard", Logger(), controllers.GetDashboard)

	// Warm-up (bulk import)
	validated.GET("/warming/numbers", Logger(), controllers.GetWarmingNumbers)
	validated.POST("/warming/numbers/import", Logger(), controllers.ImportWarmingNumbers)
	validated.DELETE("/warming/numbers/:id", Logger(), controllers.DeleteWarmingNumber)
	validated.GET("/warming/groups", Logger(), controllers.GetWarmingGroups)
	validated.POST("/warming/groups/import", Logger(), controllers.ImportWarmingGroups)
	validated.DELETE("/warming/groups/:id", Logger(), controllers.DeleteWarmingGroup)

	// Numbers
	validated.GET("/numbers", Logger(), controllers.GetWhatsNumbers)
	validated.GET("/numbers/:id", Logger(), controllers.GetWhatsNumberByID)
	validated.POST("/numbers", Logger(), controllers.CreateWhatsNumber)
	validated.PUT("/numbers/:id", Logger(), controllers.UpdateWhatsNumber)
	validated.DELETE("/numbers/:id", Logger(), controllers.DeleteWhatsNumber)

	// Projects
	validated.GET("/projects", Logger(), controllers.GetProjects)
	validated.GET("/projects/:id", Logger(), controllers.GetProjectByID)
	validated.POST("/projects", Logger(), controllers.CreateProject)
	validated.PUT("/projects/:id", Logger(), controllers.UpdateProject)
	validated.DELETE("/projects/:id", Logger(), controllers.DeleteProject)

	// Responsibles
	validated.GET("/responsibles", Logger(), controllers.GetResponsibles)
	validated.POST("/responsibles", Logger(), controllers.CreateResponsible)
	validated.PUT("/responsibles/:id", Logger(), controllers.UpdateResponsible)
	validated.DELETE("/responsibles/:id", Logger(), controllers.DeleteResponsible)

	// Groups
	validated.GET("/groups", Logger(), controllers.GetGroups)
	validated.POST("/groups", Logger(), controllers.CreateGroup)
	validated.PUT("/groups/:id", Logger(), controllers.UpdateGroup)
	validated.DELETE("/groups/:id", Logger(), controllers.DeleteGroup)

	// Security
	validated.GET("/security", Logger(), controllers.GetSecuritySettings)
	validated.PUT("/security", Logger(), controllers.SaveSecuritySettings)
	validated.POST("/security/verify-pin", Logger(), controllers.VerifySecurityPin)
	validated.GET("/security/device-emails", Logger(), controllers.GetDeviceEmails)
	validated.POST("/security/device-emails", Logger(), controllers.AddDeviceEmail)
	validated.DELETE("/security/device-emails/:email", Logger(), controllers.RemoveDeviceEmail)

	log.Info("routes initialized")
}
