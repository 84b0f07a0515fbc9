package handlers

import (
	"embed"
	"html/template"
	"time"

	"todo_manager/internal/logger"
	"todo_manager/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.html
var templateFS embed.FS

// SessionOptions controls the session cookie.
type SessionOptions struct {
	CookieName string
	Secure     bool
	TTL        time.Duration
}

const (
	defaultCookieName = "session"
	defaultSessionTTL = 24 * time.Hour
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	session  SessionOptions
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, session SessionOptions) *Handler {
	if session.CookieName == "" {
		session.CookieName = defaultCookieName
	}
	if session.TTL <= 0 {
		session.TTL = defaultSessionTTL
	}
	return &Handler{services: services, log: log, session: session}
}

func parseTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)
	router.SetHTMLTemplate(parseTemplates())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	router.GET("/", h.home)
	h.registerAuthRoutes(router)
	h.registerTaskRoutes(router)

	// Live analytics answers 401 instead of redirecting.
	router.GET("/ws/analytics", h.apiSessionMiddleware, h.wsAnalytics)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/register", h.registerPage)
	r.POST("/register", h.register)
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)
	r.GET("/logout", h.sessionMiddleware, h.logout)
}

func (h *Handler) registerTaskRoutes(r *gin.Engine) {
	authed := r.Group("/", h.sessionMiddleware)
	{
		authed.GET("/index", h.index)
		authed.POST("/task", h.addTask)
		authed.POST("/toggle", h.toggleTask)
		authed.POST("/edit", h.editTask)
		authed.GET("/delete/:taskId", h.deleteTask)
		authed.GET("/finished", h.resolveAll)
		authed.GET("/analytics", h.analytics)
		authed.GET("/activity", h.activity)
	}
}
