package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/inshape-booking/internal/dto"
	"github.com/BruksfildServices01/inshape-booking/internal/httperr"
	"github.com/BruksfildServices01/inshape-booking/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/inshape-booking/internal/infra/repository"
)

type attemptLister interface {
	Execute(ctx context.Context, f infraRepo.BookingAttemptFilter) ([]dto.BookingAttemptListDTO, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type BookingAttemptsHandler struct {
	list attemptLister
	loc  *time.Location
	log  *zap.Logger
}

func NewBookingAttemptsHandler(list attemptLister, loc *time.Location, log *zap.Logger) *BookingAttemptsHandler {
	return &BookingAttemptsHandler{list: list, loc: loc, log: log}
}

// List pages through recorded /book attempts, newest first. from and to
// are calendar days in the booking time zone; to is inclusive.
func (h *BookingAttemptsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := infraRepo.BookingAttemptFilter{
		Outcome: c.Query("outcome"),
		Stage:   c.Query("stage"),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.ParseInLocation("2006-01-02", fromStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "Invalid from date")
			return
		}
		f.From = from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.ParseInLocation("2006-01-02", toStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "Invalid to date")
			return
		}
		f.To = to.AddDate(0, 0, 1)
	}

	attempts, total, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		h.log.Error("list booking attempts", zap.Error(err))
		httperr.Internal(c, "Failed to list booking attempts")
		return
	}

	httpresp.Page(c, page, limit, total, attempts)
}
