package service

import (
	"Postcraft/internal/api/dto"
	"Postcraft/internal/pkg/mail"
	"Postcraft/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"strings"
)

type BookingService interface {
	SubmitBooking(ctx context.Context, req *dto.BookingDTO) error
}

type bookingServiceImpl struct {
	mailer mail.Mailer
}

func NewBookingService(mailer mail.Mailer) BookingService {
	return &bookingServiceImpl{
		mailer: mailer,
	}
}

func (s *bookingServiceImpl) SubmitBooking(ctx context.Context, req *dto.BookingDTO) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return ErrParamInvalid
	}
	if err := util.ValidateDTO(req); err != nil {
		return fmt.Errorf("%w: %s", ErrParamInvalid, err.Error())
	}

	err := s.mailer.SendLead(ctx, mail.Lead{
		Name:    req.Name,
		Phone:   req.Phone,
		Date:    req.Date,
		Message: req.Message,
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to send booking mail", "name", req.Name, "err", err)
		return ErrMailSend
	}
	return nil
}
