package event

import (
	"slices"
	"strconv"
	"strings"

	"github.com/geocoder89/eventdesk/internal/utils"
)

// Field names an editable event attribute.
type Field string

const (
	FieldName     Field = "name"
	FieldDate     Field = "date"
	FieldVenue    Field = "venue"
	FieldCapacity Field = "capacity"
)

func (f Field) IsValid() bool {
	switch f {
	case FieldName, FieldDate, FieldVenue, FieldCapacity:
		return true
	default:
		return false
	}
}

// Edit is the outcome of EditEvent: the event before and after the change.
type Edit struct {
	Index  int
	Before Event
	After  Event
}

// Renamed reports whether the edit changed the event name.
func (e Edit) Renamed() bool {
	return e.Before.Name != e.After.Name
}

// IndexOfName finds an event by case-insensitive name.
func IndexOfName(events []Event, name string) (int, bool) {
	for i := range events {
		if utils.EqualFold(events[i].Name, name) {
			return i, true
		}
	}
	return -1, false
}

// IndexOfExact finds an event whose stored name equals name byte for byte.
// Registrations reference events this way.
func IndexOfExact(events []Event, name string) (int, bool) {
	for i := range events {
		if events[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// AddEvent appends a validated event with no seats taken. The input slice
// is never modified.
func AddEvent(events []Event, req CreateEventRequest) ([]Event, Event, error) {
	req = req.Normalize()

	if err := ValidateCreate(req); err != nil {
		return events, Event{}, err
	}

	if _, exists := IndexOfName(events, req.Name); exists {
		return events, Event{}, ErrDuplicateName
	}

	e := NewFromCreateRequest(req)
	out := append(slices.Clone(events), e)

	return out, e, nil
}

// EditEvent changes one field of the event at index (0-based).
func EditEvent(events []Event, index int, field Field, value string) ([]Event, Edit, error) {
	if index < 0 || index >= len(events) {
		return events, Edit{}, ErrNotFound
	}
	if !field.IsValid() {
		return events, Edit{}, ErrUnknownField
	}

	out := slices.Clone(events)
	before := out[index]
	current := &out[index]
	value = utils.Trim(value)

	switch field {
	case FieldName:
		if value == "" {
			return events, Edit{}, ErrNameRequired
		}
		for i := range out {
			if i != index && utils.EqualFold(out[i].Name, value) {
				return events, Edit{}, ErrDuplicateName
			}
		}
		current.Name = value

	case FieldDate:
		if !utils.IsValidDate(value) {
			return events, Edit{}, ErrInvalidDate
		}
		current.Date = value

	case FieldVenue:
		if value == "" {
			return events, Edit{}, ErrVenueRequired
		}
		current.Venue = value

	case FieldCapacity:
		capacity, err := strconv.Atoi(value)
		if err != nil || capacity <= 0 {
			return events, Edit{}, ErrInvalidCapacity
		}
		if capacity < current.RegisteredCount {
			return events, Edit{}, ErrCapacityBelowRegistered
		}
		current.Capacity = capacity
	}

	return out, Edit{Index: index, Before: before, After: *current}, nil
}

// DeleteEvent removes the event at index and returns it so the caller can
// purge the registrations that reference it.
func DeleteEvent(events []Event, index int) ([]Event, Event, error) {
	if index < 0 || index >= len(events) {
		return events, Event{}, ErrNotFound
	}

	removed := events[index]
	out := slices.Delete(slices.Clone(events), index, index+1)

	return out, removed, nil
}

// Search returns events whose name contains term, ignoring case.
func Search(events []Event, term string) ([]Event, error) {
	term = utils.ToLower(utils.Trim(term))
	if term == "" {
		return nil, ErrEmptySearch
	}

	out := make([]Event, 0)
	for _, e := range events {
		if strings.Contains(utils.ToLower(e.Name), term) {
			out = append(out, e)
		}
	}
	return out, nil
}

// FilterByDate returns events held on exactly date.
func FilterByDate(events []Event, date string) ([]Event, error) {
	date = utils.Trim(date)
	if !utils.IsValidDate(date) {
		return nil, ErrInvalidDate
	}

	out := make([]Event, 0)
	for _, e := range events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

type EventStat struct {
	Name       string
	Registered int
	Capacity   int
	Occupancy  float64
}

type Stats struct {
	TotalEvents     int
	TotalCapacity   int
	TotalRegistered int
	Occupancy       float64
	PerEvent        []EventStat
}

func ComputeStats(events []Event) Stats {
	s := Stats{
		TotalEvents: len(events),
		PerEvent:    make([]EventStat, 0, len(events)),
	}

	for _, e := range events {
		s.TotalCapacity += e.Capacity
		s.TotalRegistered += e.RegisteredCount
		s.PerEvent = append(s.PerEvent, EventStat{
			Name:       e.Name,
			Registered: e.RegisteredCount,
			Capacity:   e.Capacity,
			Occupancy:  e.Occupancy(),
		})
	}

	if s.TotalCapacity > 0 {
		s.Occupancy = float64(s.TotalRegistered) * 100.0 / float64(s.TotalCapacity)
	}
	return s
}
