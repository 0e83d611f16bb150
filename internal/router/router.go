package router

import (
	"net/http"
	"strings"

	"github.com/chrmotors/complaint-service/api"
	"github.com/chrmotors/complaint-service/internal/handler"
	"github.com/chrmotors/complaint-service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func New(complaints *handler.ComplaintHandler, geo *handler.GeocodeHandler, log zerolog.Logger, production bool) http.Handler {
	if production {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log, production))

	r.GET("/health", handler.Health)
	r.GET("/ready", handler.Ready)
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/") })
	r.GET("/swagger/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = "/swagger/index.html"
			c.Request.RequestURI = "/swagger/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/complaint", complaints.Submit)
		apiGroup.GET("/complaints", complaints.List)
		apiGroup.GET("/complaints/:id", complaints.Get)
		apiGroup.POST("/test-drive", complaints.SubmitTestDrive)
		apiGroup.GET("/geocode/reverse", geo.Reverse)
	}

	return r
}
