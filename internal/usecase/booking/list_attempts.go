package booking

import (
	"context"

	"github.com/BruksfildServices01/inshape-booking/internal/dto"
	infraRepo "github.com/BruksfildServices01/inshape-booking/internal/infra/repository"
	"github.com/BruksfildServices01/inshape-booking/internal/models"
)

type AttemptRepository interface {
	List(
		ctx context.Context,
		f infraRepo.BookingAttemptFilter,
	) ([]models.BookingAttempt, int64, error)
}

type ListBookingAttempts struct {
	repo AttemptRepository
}

func NewListBookingAttempts(
	repo AttemptRepository,
) *ListBookingAttempts {
	return &ListBookingAttempts{
		repo: repo,
	}
}

func (uc *ListBookingAttempts) Execute(
	ctx context.Context,
	f infraRepo.BookingAttemptFilter,
) ([]dto.BookingAttemptListDTO, int64, error) {

	attempts, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.BookingAttemptListDTO, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, dto.BookingAttemptListDTO{
			ID:        a.ID,
			RequestID: a.RequestID,
			Name:      a.Name,
			Phone:     a.Phone,
			Email:     a.Email,
			Service:   a.Service,
			Date:      a.Date,
			Time:      a.Time,
			Outcome:   a.Outcome,
			Stage:     a.Stage,
			EventID:   a.EventID,
			Error:     a.Error,
			CreatedAt: a.CreatedAt,
		})
	}

	return out, total, nil
}
