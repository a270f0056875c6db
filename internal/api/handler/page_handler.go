package handler

import (
	"Postcraft/internal/service"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	dashboardSvc service.DashboardService
}

func NewPageHandler(dashboardSvc service.DashboardService) *PageHandler {
	return &PageHandler{
		dashboardSvc: dashboardSvc,
	}
}

func (s *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

func (s *PageHandler) Booking(c *gin.Context) {
	c.HTML(http.StatusOK, "booking.html", gin.H{"Success": false})
}

func (s *PageHandler) Dashboard(c *gin.Context) {
	dashboard, err := s.dashboardSvc.GetDashboard(c.Request.Context())
	if err != nil {
		log.ErrorContext(c.Request.Context(), "failed to render dashboard", "err", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", dashboard)
}
