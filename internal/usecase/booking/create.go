package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/inshape-booking/internal/audit"
	domain "github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
	"github.com/BruksfildServices01/inshape-booking/internal/models"
	"github.com/BruksfildServices01/inshape-booking/internal/notification"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	RequestID string
	Request   domain.Request
}

// Settings are fixed for the life of the process.
type Settings struct {
	CalendarID string
	Timezone   string
	Location   *time.Location

	SpreadsheetID string
	SheetRange    string
	SourceLabel   string

	TeamEmail string
	FromEmail string

	// EmailFailureFatal makes a failed notification fail the booking even
	// though the calendar event and sheet row already exist.
	EmailFailureFatal bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	calendar domain.Calendar
	sheet    domain.Sheet
	mailer   domain.Mailer // nil disables notifications
	audit    *audit.Dispatcher
	log      *zap.Logger
	settings Settings
	now      func() time.Time
}

func NewCreateBooking(
	calendar domain.Calendar,
	sheet domain.Sheet,
	mailer domain.Mailer,
	audit *audit.Dispatcher,
	log *zap.Logger,
	settings Settings,
) *CreateBooking {
	return &CreateBooking{
		calendar: calendar,
		sheet:    sheet,
		mailer:   mailer,
		audit:    audit,
		log:      log,
		settings: settings,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the booking chain in order and stops at the first failure.
// Nothing is rolled back: a calendar event created before a failed sheet
// append stays in the calendar.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*domain.Result, error) {

	req := in.Request
	log := uc.log.With(zap.String("request_id", in.RequestID))

	// --------------------------------------------------
	// 1️⃣ Time window
	// --------------------------------------------------
	window, err := domain.NewWindow(req.Date, req.Time, uc.settings.Location)
	if err != nil {
		return nil, uc.fail(log, in, "", domain.Fail(domain.StageWindow, err))
	}

	// --------------------------------------------------
	// 2️⃣ Calendar event
	// --------------------------------------------------
	eventID, err := uc.calendar.CreateEvent(
		ctx,
		uc.settings.CalendarID,
		domain.NewCalendarEvent(req, window, uc.settings.Timezone),
	)
	if err != nil {
		return nil, uc.fail(log, in, "", domain.Fail(domain.StageCalendar, err))
	}

	// --------------------------------------------------
	// 3️⃣ Sheet row
	// --------------------------------------------------
	if err := uc.sheet.AppendRow(
		ctx,
		uc.settings.SpreadsheetID,
		uc.settings.SheetRange,
		domain.SheetRow(req, uc.settings.SourceLabel, uc.now()),
	); err != nil {
		return nil, uc.fail(
			log.With(zap.Int("sheet_schema", domain.SheetSchemaVersion)),
			in, eventID, domain.Fail(domain.StageSheet, err),
		)
	}

	// --------------------------------------------------
	// 4️⃣ Notifications
	// --------------------------------------------------
	if err := uc.notify(ctx, req); err != nil {
		stageErr := domain.Fail(domain.StageEmail, err)
		if uc.settings.EmailFailureFatal {
			return nil, uc.fail(log, in, eventID, stageErr)
		}
		log.Warn("booking notification failed",
			zap.String("stage", string(domain.StageEmail)),
			zap.String("event_id", eventID),
			zap.Error(err),
		)
	}

	// --------------------------------------------------
	// 5️⃣ Audit
	// --------------------------------------------------
	uc.record(in, domain.OutcomeSuccess, "", eventID, nil)
	log.Info("booking created",
		zap.String("event_id", eventID),
		zap.String("service", req.Service),
		zap.Time("start", window.Start),
	)

	return &domain.Result{EventID: eventID}, nil
}

// notify sends the team notification and, when the customer left an
// address, the confirmation. The team mail goes first; if it fails the
// customer is not mailed.
func (uc *CreateBooking) notify(ctx context.Context, req domain.Request) error {
	if uc.mailer == nil {
		return nil
	}

	team, err := notification.TeamNotification(uc.settings.FromEmail, uc.settings.TeamEmail, req)
	if err != nil {
		return err
	}
	if err := uc.mailer.Send(ctx, team); err != nil {
		return fmt.Errorf("team notification: %w", err)
	}

	if !req.HasEmail() {
		return nil
	}

	confirmation, err := notification.CustomerConfirmation(uc.settings.FromEmail, req)
	if err != nil {
		return err
	}
	if err := uc.mailer.Send(ctx, confirmation); err != nil {
		return fmt.Errorf("customer confirmation: %w", err)
	}
	return nil
}

func (uc *CreateBooking) fail(
	log *zap.Logger,
	in CreateBookingInput,
	eventID string,
	err error,
) error {
	stage := domain.StageOf(err)

	log.Error("booking failed",
		zap.String("stage", string(stage)),
		zap.String("event_id", eventID),
		zap.Error(err),
	)
	uc.record(in, domain.OutcomeFailed, stage, eventID, err)

	return err
}

func (uc *CreateBooking) record(
	in CreateBookingInput,
	outcome domain.Outcome,
	stage domain.Stage,
	eventID string,
	err error,
) {
	if uc.audit == nil {
		return
	}

	attempt := models.BookingAttempt{
		RequestID: in.RequestID,
		Name:      in.Request.Name,
		Phone:     in.Request.Phone,
		Email:     in.Request.Email,
		Service:   in.Request.Service,
		Date:      in.Request.Date,
		Time:      in.Request.Time,
		Outcome:   string(outcome),
		Stage:     string(stage),
		EventID:   eventID,
	}
	if err != nil {
		attempt.Error = err.Error()
	}

	uc.audit.Dispatch(attempt)
}
