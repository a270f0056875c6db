package wire

import (
	"Postcraft/internal/api"
	"Postcraft/internal/api/config"
	"Postcraft/internal/api/handler"
	"Postcraft/internal/job"
	"Postcraft/internal/pkg/branding"
	"Postcraft/internal/pkg/cron"
	"Postcraft/internal/pkg/imagegen"
	"Postcraft/internal/pkg/llm"
	"Postcraft/internal/pkg/logger"
	"Postcraft/internal/pkg/mail"
	"Postcraft/internal/pkg/redis"
	"Postcraft/internal/pkg/social"
	"Postcraft/internal/repository"
	"Postcraft/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"
)

// Dependencies 由 main 负责建立的外部连接
type Dependencies struct {
	Model  llms.Model
	Cache  redis.Cache
	Host   service.ImageHost
	Mailer mail.Mailer
}

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(cfg *config.Config, db *gorm.DB, deps Dependencies) (*ApplicationContainer, error) {
	if deps.Cache == nil {
		deps.Cache = redis.NopCache{}
	}
	if deps.Host == nil {
		deps.Host = service.LocalImageHost{BaseURL: cfg.Server.BaseURL, Prefix: api.ProcessedPrefix}
	}
	if deps.Mailer == nil {
		deps.Mailer = mail.NewSMTPMailer(cfg.Mail)
	}

	postRepo := repository.NewPostRepository(db)

	compositor := branding.NewCompositor(branding.Options{
		BaseURL:  cfg.Server.BaseURL,
		LogoPath: cfg.Branding.LogoPath,
		FontPath: cfg.Branding.FontPath,
		Address:  cfg.Branding.Address,
	})
	generator := imagegen.NewGenerator(cfg.ImageGen.URL,
		time.Duration(cfg.ImageGen.Timeout)*time.Second, logger.NewHTTPTransport("imagegen"))
	captions := llm.NewCaptionGenerator(deps.Model, cfg.LLM)
	publisher := social.NewPublisher(cfg.Social, logger.NewHTTPTransport("social"))

	generateService := service.NewGenerateService(generator, compositor, deps.Host, captions,
		cfg.Server.UploadDir, cfg.Server.ProcessedDir)
	postService := service.NewPostService(postRepo, publisher, deps.Cache)
	dashboardService := service.NewDashboardService(postRepo, deps.Cache, time.Duration(cfg.Redis.StatsTTL)*time.Second)
	bookingService := service.NewBookingService(deps.Mailer)

	handlers := &api.HandlersGroup{
		PageHandler:     handler.NewPageHandler(dashboardService),
		BookingHandler:  handler.NewBookingHandler(bookingService),
		GenerateHandler: handler.NewGenerateHandler(generateService),
		PostHandler:     handler.NewPostHandler(postService, dashboardService),
	}

	router := api.SetupRouter(cfg, handlers)

	cronMgr := cron.NewCronManager(newMediaCleanupJob(cfg), cfg.Cron.MediaCleanSpec)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}

// newMediaCleanupJob 只清理上传原图，成品图的地址已写入 posts，不能删除
func newMediaCleanupJob(cfg *config.Config) *job.MediaCleanupJob {
	return job.NewMediaCleanupJob(time.Duration(cfg.Cron.MediaRetentionHours)*time.Hour, cfg.Server.UploadDir)
}
