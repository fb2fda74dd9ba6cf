package event

import (
	"fmt"

	"github.com/geocoder89/eventdesk/internal/apperr"
)

// Event is identified by its name, unique under case-insensitive comparison.
type Event struct {
	Name            string
	Date            string // DD-MM-YYYY
	Venue           string
	Capacity        int
	RegisteredCount int
}

var (
	ErrNameRequired            = fmt.Errorf("%w: event name cannot be empty", apperr.ErrValidation)
	ErrInvalidDate             = fmt.Errorf("%w: invalid date, use DD-MM-YYYY (year 2025 or later)", apperr.ErrValidation)
	ErrVenueRequired           = fmt.Errorf("%w: venue cannot be empty", apperr.ErrValidation)
	ErrInvalidCapacity         = fmt.Errorf("%w: capacity must be greater than 0", apperr.ErrValidation)
	ErrCapacityBelowRegistered = fmt.Errorf("%w: capacity cannot be less than registered count", apperr.ErrValidation)
	ErrUnknownField            = fmt.Errorf("%w: unknown event field", apperr.ErrValidation)
	ErrEmptySearch             = fmt.Errorf("%w: search term cannot be empty", apperr.ErrValidation)

	ErrDuplicateName = fmt.Errorf("%w: event with this name already exists", apperr.ErrDuplicate)
	ErrNotFound      = fmt.Errorf("%w: event not found", apperr.ErrNotFound)
)

type CreateEventRequest struct {
	Name     string `validate:"required"`
	Date     string `validate:"eventdate"`
	Venue    string `validate:"required"`
	Capacity int    `validate:"gt=0"`
}

func (e Event) AvailableSeats() int {
	return e.Capacity - e.RegisteredCount
}

func (e Event) HasAvailableSeats() bool {
	return e.RegisteredCount < e.Capacity
}

// RegisterStudent takes one seat. It is a no-op on a full event and
// reports whether a seat was taken.
func (e *Event) RegisterStudent() bool {
	if !e.HasAvailableSeats() {
		return false
	}
	e.RegisteredCount++
	return true
}

// UnregisterStudent frees one seat, never going below zero.
func (e *Event) UnregisterStudent() bool {
	if e.RegisteredCount <= 0 {
		return false
	}
	e.RegisteredCount--
	return true
}

// Occupancy is the percentage of seats taken.
func (e Event) Occupancy() float64 {
	if e.Capacity <= 0 {
		return 0
	}
	return float64(e.RegisteredCount) * 100.0 / float64(e.Capacity)
}
