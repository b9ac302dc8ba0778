package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
	"github.com/BruksfildServices01/inshape-booking/internal/httperr"
	"github.com/BruksfildServices01/inshape-booking/internal/httpresp"
	"github.com/BruksfildServices01/inshape-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/inshape-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/inshape-booking/internal/validators"
)

const (
	msgMissingFields = "Missing fields"
	msgInvalidBody   = "Invalid request body"
	msgBookingFailed = "Failed to book appointment"
)

type bookingCreator interface {
	Execute(ctx context.Context, in ucBooking.CreateBookingInput) (*domain.Result, error)
}

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	create bookingCreator
	log    *zap.Logger
}

func NewBookingHandler(create bookingCreator, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		create: create,
		log:    log,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

// BookRequest accepts any JSON type per field; falsy values read as empty.
type BookRequest struct {
	Name    validators.LooseString `json:"name" binding:"required"`
	Phone   validators.LooseString `json:"phone" binding:"required"`
	Email   validators.LooseString `json:"email"`
	Service validators.LooseString `json:"service" binding:"required"`
	Date    validators.LooseString `json:"date" binding:"required"` // YYYY-MM-DD
	Time    validators.LooseString `json:"time" binding:"required"` // HH:mm
}

type BookResponse struct {
	Status  string `json:"status"`
	EventID string `json:"eventId"`
}

////////////////////////////////////////////////////////
// BOOK
////////////////////////////////////////////////////////

func bindBookRequest(c *gin.Context) (BookRequest, error) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields, ok := validators.MissingFields(err); ok {
			return req, httperr.ErrValidation(msgMissingFields, fields...)
		}
		return req, httperr.ErrValidation(msgInvalidBody)
	}
	return req, nil
}

func (h *BookingHandler) Book(c *gin.Context) {
	requestID := middleware.RequestIDFrom(c)

	req, err := bindBookRequest(c)
	if err != nil {
		ve, _ := httperr.AsValidation(err)
		h.log.Info("booking rejected",
			zap.String("request_id", requestID),
			zap.String("reason", ve.Message),
			zap.Strings("missing", ve.Fields),
		)
		httperr.BadRequest(c, ve.Message)
		return
	}

	// The chain is not cancelled when the client goes away; stopping half
	// way would leave an event without its sheet row.
	ctx := context.WithoutCancel(c.Request.Context())

	res, err := h.create.Execute(ctx, ucBooking.CreateBookingInput{
		RequestID: requestID,
		Request: domain.Request{
			Name:    req.Name.String(),
			Phone:   req.Phone.String(),
			Email:   req.Email.String(),
			Service: req.Service.String(),
			Date:    req.Date.String(),
			Time:    req.Time.String(),
		},
	})
	if err != nil {
		// details are logged by the use case; the caller gets one message
		httperr.Internal(c, msgBookingFailed)
		return
	}

	httpresp.OK(c, BookResponse{
		Status:  domain.ResultSuccess,
		EventID: res.EventID,
	})
}
