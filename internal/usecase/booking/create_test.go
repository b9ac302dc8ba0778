package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/inshape-booking/internal/audit"
	domain "github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
	"github.com/BruksfildServices01/inshape-booking/internal/models"
)

var fixedNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func testSettings(t *testing.T) Settings {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	return Settings{
		CalendarID:        "cal",
		Timezone:          "America/New_York",
		Location:          loc,
		SpreadsheetID:     "sheet-1",
		SheetRange:        "Sheet1!A:I",
		SourceLabel:       "Website",
		TeamEmail:         "team@inshape.test",
		FromEmail:         "bookings@inshape.test",
		EmailFailureFatal: true,
	}
}

func janeDoe() domain.Request {
	return domain.Request{
		Name:    "Jane Doe",
		Phone:   "555-1234",
		Email:   "jane@example.com",
		Service: "Personal Training",
		Date:    "2024-06-01",
		Time:    "10:00",
	}
}

type harness struct {
	cal    *fakeCalendar
	sheet  *fakeSheet
	mailer *fakeMailer
	uc     *CreateBooking
}

func newHarness(t *testing.T, settings Settings, withMailer bool) *harness {
	t.Helper()
	h := &harness{
		cal:    &fakeCalendar{},
		sheet:  &fakeSheet{},
		mailer: &fakeMailer{},
	}

	var mailer domain.Mailer
	if withMailer {
		mailer = h.mailer
	}

	h.uc = NewCreateBooking(h.cal, h.sheet, mailer, nil, zap.NewNop(), settings)
	h.uc.now = func() time.Time { return fixedNow }
	return h
}

func TestCreateBooking_JaneDoe(t *testing.T) {
	h := newHarness(t, testSettings(t), true)

	res, err := h.uc.Execute(context.Background(), CreateBookingInput{
		RequestID: "req-1",
		Request:   janeDoe(),
	})
	require.NoError(t, err)
	assert.Equal(t, "cal-evt-1", res.EventID)

	require.Len(t, h.cal.events, 1)
	ev := h.cal.events[0]
	assert.Equal(t, "Personal Training - Jane Doe", ev.Summary)
	assert.Contains(t, ev.Description, "555-1234")
	assert.Contains(t, ev.Description, "jane@example.com")
	assert.Equal(t, "America/New_York", ev.TimeZone)
	assert.Equal(t, "10:00", ev.Start.Format("15:04"))
	assert.Equal(t, "11:00", ev.End.Format("15:04"))
	assert.Equal(t, time.Hour, ev.End.Sub(ev.Start))

	require.Len(t, h.sheet.rows, 1)
	assert.Equal(t, "sheet-1", h.sheet.id)
	assert.Equal(t, "Sheet1!A:I", h.sheet.rng)
	assert.Equal(t, []any{
		"Jane Doe", "555-1234", "jane@example.com", "Personal Training",
		"2024-06-01", "10:00", "Booked", "Website", "2024-05-20T12:00:00Z",
	}, h.sheet.rows[0])

	require.Len(t, h.mailer.sent, 2)
	assert.Equal(t, "team@inshape.test", h.mailer.sent[0].To)
	assert.Equal(t, "jane@example.com", h.mailer.sent[1].To)
	for _, msg := range h.mailer.sent {
		assert.Equal(t, "bookings@inshape.test", msg.From)
		assert.Contains(t, msg.HTML, "Personal Training")
		assert.Contains(t, msg.HTML, "2024-06-01")
		assert.Contains(t, msg.HTML, "10:00")
	}
}

func TestCreateBooking_NoCustomerEmail(t *testing.T) {
	h := newHarness(t, testSettings(t), true)

	req := janeDoe()
	req.Email = ""

	_, err := h.uc.Execute(context.Background(), CreateBookingInput{Request: req})
	require.NoError(t, err)

	require.Len(t, h.mailer.sent, 1)
	assert.Equal(t, "team@inshape.test", h.mailer.sent[0].To)
	assert.Equal(t, "", h.sheet.rows[0][2])
}

func TestCreateBooking_NoMailerConfigured(t *testing.T) {
	h := newHarness(t, testSettings(t), false)

	res, err := h.uc.Execute(context.Background(), CreateBookingInput{Request: janeDoe()})
	require.NoError(t, err)
	assert.NotEmpty(t, res.EventID)
	assert.Empty(t, h.mailer.sent)
}

func TestCreateBooking_CalendarFailureShortCircuits(t *testing.T) {
	h := newHarness(t, testSettings(t), true)
	h.cal.err = errors.New("invalid_grant")

	res, err := h.uc.Execute(context.Background(), CreateBookingInput{Request: janeDoe()})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, domain.StageCalendar, domain.StageOf(err))

	assert.Empty(t, h.sheet.rows)
	assert.Empty(t, h.mailer.sent)
}

func TestCreateBooking_SheetFailureKeepsEventAndSkipsEmail(t *testing.T) {
	h := newHarness(t, testSettings(t), true)
	h.sheet.err = errors.New("quota")

	_, err := h.uc.Execute(context.Background(), CreateBookingInput{Request: janeDoe()})
	require.Error(t, err)
	assert.Equal(t, domain.StageSheet, domain.StageOf(err))

	assert.Len(t, h.cal.events, 1, "no compensating delete")
	assert.Empty(t, h.mailer.sent)
}

func TestCreateBooking_InvalidDateTouchesNothing(t *testing.T) {
	h := newHarness(t, testSettings(t), true)

	req := janeDoe()
	req.Date = "June 1st"

	_, err := h.uc.Execute(context.Background(), CreateBookingInput{Request: req})
	require.Error(t, err)
	assert.Equal(t, domain.StageWindow, domain.StageOf(err))

	assert.Empty(t, h.cal.events)
	assert.Empty(t, h.sheet.rows)
	assert.Empty(t, h.mailer.sent)
}

func TestCreateBooking_EmailFailure(t *testing.T) {
	t.Run("fatal", func(t *testing.T) {
		h := newHarness(t, testSettings(t), true)
		h.mailer.err = errors.New("resend 422")

		_, err := h.uc.Execute(context.Background(), CreateBookingInput{Request: janeDoe()})
		require.Error(t, err)
		assert.Equal(t, domain.StageEmail, domain.StageOf(err))
		assert.Len(t, h.cal.events, 1)
		assert.Len(t, h.sheet.rows, 1)
	})

	t.Run("best effort", func(t *testing.T) {
		settings := testSettings(t)
		settings.EmailFailureFatal = false
		h := newHarness(t, settings, true)
		h.mailer.err = errors.New("resend 422")

		res, err := h.uc.Execute(context.Background(), CreateBookingInput{Request: janeDoe()})
		require.NoError(t, err)
		assert.Equal(t, "cal-evt-1", res.EventID)
	})
}

func TestCreateBooking_NotIdempotent(t *testing.T) {
	h := newHarness(t, testSettings(t), true)
	in := CreateBookingInput{Request: janeDoe()}

	first, err := h.uc.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := h.uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, first.EventID, second.EventID)
	assert.Len(t, h.cal.events, 2)
	assert.Len(t, h.sheet.rows, 2)
}

type sinkFunc func(*models.BookingAttempt)

func (f sinkFunc) Record(_ context.Context, a *models.BookingAttempt) error {
	f(a)
	return nil
}

func TestCreateBooking_RecordsAttempts(t *testing.T) {
	var got []models.BookingAttempt
	d := audit.NewDispatcher(sinkFunc(func(a *models.BookingAttempt) {
		got = append(got, *a)
	}), zap.NewNop())

	cal := &fakeCalendar{}
	sheet := &fakeSheet{err: errors.New("quota")}
	uc := NewCreateBooking(cal, sheet, nil, d, zap.NewNop(), testSettings(t))

	_, err := uc.Execute(context.Background(), CreateBookingInput{RequestID: "req-9", Request: janeDoe()})
	require.Error(t, err)

	sheet.err = nil
	_, err = uc.Execute(context.Background(), CreateBookingInput{RequestID: "req-10", Request: janeDoe()})
	require.NoError(t, err)

	require.NoError(t, d.Close(context.Background()))
	require.Len(t, got, 2)

	assert.Equal(t, "req-9", got[0].RequestID)
	assert.Equal(t, "failed", got[0].Outcome)
	assert.Equal(t, "sheet", got[0].Stage)
	assert.Equal(t, "cal-evt-1", got[0].EventID)
	assert.Contains(t, got[0].Error, "quota")

	assert.Equal(t, "req-10", got[1].RequestID)
	assert.Equal(t, "success", got[1].Outcome)
	assert.Empty(t, got[1].Stage)
}
