package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/inshape-booking/internal/models"
)

type BookingAttemptGormRepository struct {
	db *gorm.DB
}

func NewBookingAttemptGormRepository(db *gorm.DB) *BookingAttemptGormRepository {
	return &BookingAttemptGormRepository{db: db}
}

// BookingAttemptFilter narrows a listing; zero values mean "any".
type BookingAttemptFilter struct {
	Outcome string
	Stage   string
	From    time.Time
	To      time.Time

	Limit  int
	Offset int
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *BookingAttemptGormRepository) Create(
	ctx context.Context,
	attempt *models.BookingAttempt,
) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *BookingAttemptGormRepository) List(
	ctx context.Context,
	f BookingAttemptFilter,
) ([]models.BookingAttempt, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.BookingAttempt{})

	if f.Outcome != "" {
		q = q.Where("outcome = ?", f.Outcome)
	}
	if f.Stage != "" {
		q = q.Where("stage = ?", f.Stage)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attempts []models.BookingAttempt
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&attempts).Error; err != nil {
		return nil, 0, err
	}

	return attempts, total, nil
}
