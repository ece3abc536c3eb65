package server

import (
	"net/http"
	"time"

	"actas-equipos/internal/config"
	"actas-equipos/internal/handlers"
	"actas-equipos/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Timeout(time.Duration(cfg.DBConnTimeout) * time.Second))

	r.Static("/static", cfg.StaticDir)
	r.Static("/pdfs", cfg.PDFDir)
	r.Static("/uploads", cfg.UploadDir)
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("actas_session", store))

	// PÚBLICO
	r.GET("/", h.Inicio)

	// ADMINISTRACIÓN
	admin := r.Group("/admin")
	admin.GET("", h.Dashboard)
	admin.GET("/acta/new", h.FormularioActa)
	admin.POST("/acta/create", h.CrearActa)
	admin.GET("/acta/:id", h.DetalleActa)
	admin.GET("/acta/:id/pdf", h.ActaPDF)
	admin.GET("/config", h.FormularioConfiguracion)
	admin.POST("/config", h.GuardarConfiguracion)

	// API (AJAX del formulario de actas)
	api := admin.Group("/api")
	api.GET("/equipos/:tipo", h.APIEquiposPorTipo)
	api.GET("/equipos/:tipo/disponibles", h.APIEquiposDisponibles)
	api.GET("/equipos/:tipo/:id", h.APIEquipoPorID)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
