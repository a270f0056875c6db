package handler

import (
	"Postcraft/internal/api/dto"
	"Postcraft/internal/pkg/response"
	"Postcraft/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc      service.PostService
	dashboardSvc service.DashboardService
}

func NewPostHandler(postSvc service.PostService, dashboardSvc service.DashboardService) *PostHandler {
	return &PostHandler{
		postSvc:      postSvc,
		dashboardSvc: dashboardSvc,
	}
}

func (s *PostHandler) ConfirmPost(c *gin.Context) {
	var req dto.ConfirmPostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	result, err := s.postSvc.ConfirmPost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.dashboardSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetStats(c *gin.Context) {
	stats, err := s.dashboardSvc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
