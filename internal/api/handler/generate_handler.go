package handler

import (
	"Postcraft/internal/pkg/response"
	"Postcraft/internal/service"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

type GenerateHandler struct {
	generateSvc service.GenerateService
}

func NewGenerateHandler(generateSvc service.GenerateService) *GenerateHandler {
	return &GenerateHandler{
		generateSvc: generateSvc,
	}
}

// ChatGenerate multipart 表单，file 与 prompt 均可选但至少提供一个
func (s *GenerateHandler) ChatGenerate(c *gin.Context) {
	var file *multipart.FileHeader
	fh, err := c.FormFile("file")
	switch {
	case err == nil:
		file = fh
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		response.BadRequest(c, err)
		return
	}

	result, err := s.generateSvc.Generate(c.Request.Context(), file, c.PostForm("prompt"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
