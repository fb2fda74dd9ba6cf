package event

import "github.com/geocoder89/eventdesk/internal/utils"

// Normalize trims every string field of the request.
func (req CreateEventRequest) Normalize() CreateEventRequest {
	return CreateEventRequest{
		Name:     utils.Trim(req.Name),
		Date:     utils.Trim(req.Date),
		Venue:    utils.Trim(req.Venue),
		Capacity: req.Capacity,
	}
}

// NewFromCreateRequest builds a fresh event with no seats taken.
func NewFromCreateRequest(req CreateEventRequest) Event {
	return Event{
		Name:            req.Name,
		Date:            req.Date,
		Venue:           req.Venue,
		Capacity:        req.Capacity,
		RegisteredCount: 0,
	}
}
