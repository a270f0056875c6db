package api

import (
	"Postcraft/internal/api/config"
	"Postcraft/internal/api/middleware"
	"Postcraft/internal/api/view"
	"Postcraft/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ProcessedPrefix 本地成品图的静态访问路径
const ProcessedPrefix = "/static/processed"

func SetupRouter(cfg *config.Config, group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})
	r.MaxMultipartMemory = 32 << 20

	// TraceId & Logger & CORS & Metrics
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())
	logger.SetupGin(r, cfg.Logstash)

	r.SetHTMLTemplate(view.Templates())
	r.Static(ProcessedPrefix, cfg.Server.ProcessedDir)

	r.GET("/", group.PageHandler.Home)
	r.GET("/booking", group.PageHandler.Booking)
	r.GET("/dashboard", group.PageHandler.Dashboard)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		apiGroup.POST("/submit_booking", group.BookingHandler.Submit)
		apiGroup.POST("/chat_generate", group.GenerateHandler.ChatGenerate)
		apiGroup.POST("/confirm_post", group.PostHandler.ConfirmPost)

		apiGroup.GET("/posts", group.PostHandler.ListPosts)
		apiGroup.GET("/dashboard/stats", group.PostHandler.GetStats)
	}

	return r
}
