package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bufu/storefront-api/internal/adapter/http/middleware"
	"github.com/bufu/storefront-api/internal/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

func NewRouter(h *StorefrontHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", h.ListProducts)
	// Both paths open the checkout for a product; kept for inbound links.
	r.GET("/products/:id", h.Checkout)
	r.GET("/checkout/:id", h.Checkout)
	r.GET("/confirmation", h.Confirmation)

	return r
}
