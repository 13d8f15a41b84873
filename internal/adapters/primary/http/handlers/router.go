package handlers

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"titanguard/internal/adapters/primary/http/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewRouter assembles the gin engine: middleware chain, embedded page
// templates, and every route the service exposes.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Prometheus(),
		middleware.CORS(),
		gin.Recovery(),
	)

	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templateFS, "templates/*.html")))

	h.RegisterRoutes(router)
	return router
}
