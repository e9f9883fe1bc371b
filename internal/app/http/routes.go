package routes

import (
	"gallery-app/internal/api/health"
	paintingsapi "gallery-app/internal/api/paintings"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/access"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health/", health.Check)

	p := r.Group("/paintings")
	p.Use(middleware.SanitizeInput())

	p.GET("/", middleware.RequireRole(access.ListPaintings), paintingsapi.ListPaintings)
	p.GET("/sold", middleware.RequireRole(access.ListSoldPaintings), paintingsapi.ListSoldPaintings)
	p.POST("/", middleware.RequireRole(access.CreatePainting), paintingsapi.CreatePainting)
	p.PUT("/:id", middleware.RequireRole(access.ReplacePainting), paintingsapi.ReplacePainting)
	p.PATCH("/:id", middleware.RequireRole(access.PatchPainting), paintingsapi.PatchPainting)
	p.PATCH("/:id/buy", middleware.RequireRole(access.BuyPainting), paintingsapi.BuyPainting)
}
