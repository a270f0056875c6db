package handler

import (
	"Postcraft/internal/api/dto"
	"Postcraft/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingSvc: bookingSvc,
	}
}

// Submit 表单提交，成功后重新渲染预约页
func (s *BookingHandler) Submit(c *gin.Context) {
	var req dto.BookingDTO
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	err := s.bookingSvc.SubmitBooking(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrParamInvalid) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, service.ErrMailSend.Error())
		return
	}

	c.HTML(http.StatusOK, "booking.html", gin.H{"Success": true})
}
