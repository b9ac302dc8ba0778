package booking

// ===============================
// Labels
// ===============================

// StatusBooked is the literal written to the status column of the sheet.
const StatusBooked = "Booked"

// ResultSuccess is the status field of a successful /book response.
const ResultSuccess = "success"

// ===============================
// Attempt outcomes (audit trail)
// ===============================

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)
