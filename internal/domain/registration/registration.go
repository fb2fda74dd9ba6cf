package registration

import (
	"fmt"
	"time"

	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/geocoder89/eventdesk/internal/utils"
)

// Registration links a student to an event by name. The pair
// (StudentUsername, EventName) is unique across the ledger.
type Registration struct {
	StudentUsername  string
	EventName        string
	RegistrationDate string // free-form, written as DD-MM-YYYY HH:MM
}

// ErrAlreadyRegistered is returned when the student already holds a
// registration for the event.
var ErrAlreadyRegistered = fmt.Errorf("%w: already registered for this event", apperr.ErrDuplicate)

// ErrEventFull is returned when the event has no free seats.
var ErrEventFull = fmt.Errorf("%w: event is full", apperr.ErrCapacity)

// ErrNotFound is returned when no registration matches the student and event.
var ErrNotFound = fmt.Errorf("%w: registration not found", apperr.ErrNotFound)

// New stamps a registration with the given clock reading.
func New(student, eventName string, now time.Time) Registration {
	return Registration{
		StudentUsername:  student,
		EventName:        eventName,
		RegistrationDate: utils.FormatTimestamp(now),
	}
}
