package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
)

var jane = booking.Request{
	Name:    "Jane Doe",
	Phone:   "555-1234",
	Email:   "jane@example.com",
	Service: "Personal Training",
	Date:    "2024-06-01",
	Time:    "10:00",
}

func TestTeamNotification(t *testing.T) {
	msg, err := TeamNotification("bookings@inshape.test", "team@inshape.test", jane)
	require.NoError(t, err)

	assert.Equal(t, "bookings@inshape.test", msg.From)
	assert.Equal(t, "team@inshape.test", msg.To)
	assert.Equal(t, "New booking: Personal Training - Jane Doe", msg.Subject)
	for _, want := range []string{"Jane Doe", "555-1234", "jane@example.com", "Personal Training", "2024-06-01", "10:00"} {
		assert.Contains(t, msg.HTML, want)
	}
}

func TestTeamNotification_OmitsEmailLine(t *testing.T) {
	r := jane
	r.Email = ""

	msg, err := TeamNotification("from@x", "team@x", r)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "Email:")
}

func TestCustomerConfirmation(t *testing.T) {
	msg, err := CustomerConfirmation("bookings@inshape.test", jane)
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", msg.To)
	assert.Contains(t, msg.HTML, "Personal Training")
	assert.Contains(t, msg.HTML, "2024-06-01")
	assert.Contains(t, msg.HTML, "10:00")
}

func TestTemplates_EscapeInput(t *testing.T) {
	r := jane
	r.Name = `<script>alert(1)</script>`

	msg, err := TeamNotification("from@x", "team@x", r)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}
