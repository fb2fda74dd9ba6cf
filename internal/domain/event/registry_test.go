package event

import (
	"testing"

	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func techFest() Event {
	return Event{Name: "Tech Fest", Date: "15-03-2025", Venue: "Hall A", Capacity: 2, RegisteredCount: 0}
}

func TestAddEvent(t *testing.T) {
	valid := CreateEventRequest{Name: "  Robotics Expo ", Date: "20-04-2025", Venue: "Lab 3", Capacity: 40}

	tests := []struct {
		name     string
		existing []Event
		req      CreateEventRequest
		wantErr  error
		class    error
	}{
		{name: "success", req: valid},
		{name: "empty name", req: CreateEventRequest{Name: "   ", Date: "20-04-2025", Venue: "Lab 3", Capacity: 1}, wantErr: ErrNameRequired, class: apperr.ErrValidation},
		{name: "bad date", req: CreateEventRequest{Name: "X", Date: "2025-04-20", Venue: "Lab 3", Capacity: 1}, wantErr: ErrInvalidDate, class: apperr.ErrValidation},
		{name: "empty venue", req: CreateEventRequest{Name: "X", Date: "20-04-2025", Venue: "", Capacity: 1}, wantErr: ErrVenueRequired, class: apperr.ErrValidation},
		{name: "zero capacity", req: CreateEventRequest{Name: "X", Date: "20-04-2025", Venue: "Lab", Capacity: 0}, wantErr: ErrInvalidCapacity, class: apperr.ErrValidation},
		{name: "negative capacity", req: CreateEventRequest{Name: "X", Date: "20-04-2025", Venue: "Lab", Capacity: -5}, wantErr: ErrInvalidCapacity, class: apperr.ErrValidation},
		{
			name:     "duplicate differing only in case",
			existing: []Event{techFest()},
			req:      CreateEventRequest{Name: "TECH FEST", Date: "20-04-2025", Venue: "Lab", Capacity: 5},
			wantErr:  ErrDuplicateName,
			class:    apperr.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, created, err := AddEvent(tt.existing, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, tt.class)
				assert.Len(t, out, len(tt.existing))
				return
			}

			require.NoError(t, err)
			require.Len(t, out, len(tt.existing)+1)
			assert.Equal(t, "Robotics Expo", created.Name)
			assert.Equal(t, 0, created.RegisteredCount)
			assert.Equal(t, created, out[len(out)-1])
		})
	}
}

func TestAddEvent_ReportsEveryInvalidField(t *testing.T) {
	_, _, err := AddEvent(nil, CreateEventRequest{})

	assert.ErrorIs(t, err, ErrNameRequired)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.ErrorIs(t, err, ErrVenueRequired)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestAddEvent_DoesNotMutateInput(t *testing.T) {
	events := make([]Event, 1, 4)
	events[0] = techFest()

	out, _, err := AddEvent(events, CreateEventRequest{Name: "Other", Date: "01-01-2026", Venue: "V", Capacity: 1})
	require.NoError(t, err)

	assert.Len(t, events, 1)
	assert.Len(t, out, 2)
	assert.Equal(t, Event{}, events[:2][1], "spare capacity of the input must not be written")
}

func TestEditEvent(t *testing.T) {
	base := []Event{
		techFest(),
		{Name: "Art Show", Date: "01-05-2025", Venue: "Gallery", Capacity: 10, RegisteredCount: 4},
	}

	t.Run("rename", func(t *testing.T) {
		out, edit, err := EditEvent(base, 0, FieldName, " Tech Fest 2025 ")
		require.NoError(t, err)
		assert.Equal(t, "Tech Fest 2025", out[0].Name)
		assert.True(t, edit.Renamed())
		assert.Equal(t, "Tech Fest", edit.Before.Name)
		assert.Equal(t, "Tech Fest", base[0].Name, "input slice must stay untouched")
	})

	t.Run("rename to own name in other case", func(t *testing.T) {
		out, _, err := EditEvent(base, 0, FieldName, "TECH FEST")
		require.NoError(t, err)
		assert.Equal(t, "TECH FEST", out[0].Name)
	})

	t.Run("rename onto another event", func(t *testing.T) {
		_, _, err := EditEvent(base, 0, FieldName, "art show")
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("empty name", func(t *testing.T) {
		_, _, err := EditEvent(base, 0, FieldName, "  ")
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("date", func(t *testing.T) {
		out, _, err := EditEvent(base, 1, FieldDate, "02-05-2025")
		require.NoError(t, err)
		assert.Equal(t, "02-05-2025", out[1].Date)

		_, _, err = EditEvent(base, 1, FieldDate, "02-05-2020")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("venue", func(t *testing.T) {
		out, _, err := EditEvent(base, 1, FieldVenue, "Atrium")
		require.NoError(t, err)
		assert.Equal(t, "Atrium", out[1].Venue)
	})

	t.Run("capacity", func(t *testing.T) {
		out, _, err := EditEvent(base, 1, FieldCapacity, "4")
		require.NoError(t, err)
		assert.Equal(t, 4, out[1].Capacity)

		_, _, err = EditEvent(base, 1, FieldCapacity, "3")
		assert.ErrorIs(t, err, ErrCapacityBelowRegistered)

		_, _, err = EditEvent(base, 0, FieldCapacity, "0")
		assert.ErrorIs(t, err, ErrInvalidCapacity)

		_, _, err = EditEvent(base, 0, FieldCapacity, "ten")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("bad index", func(t *testing.T) {
		_, _, err := EditEvent(base, 2, FieldVenue, "x")
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		_, _, err = EditEvent(base, -1, FieldVenue, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, _, err := EditEvent(base, 0, Field("colour"), "red")
		assert.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestDeleteEvent(t *testing.T) {
	base := []Event{techFest(), {Name: "Art Show", Date: "01-05-2025", Venue: "G", Capacity: 1}}

	out, removed, err := DeleteEvent(base, 0)
	require.NoError(t, err)
	assert.Equal(t, "Tech Fest", removed.Name)
	require.Len(t, out, 1)
	assert.Equal(t, "Art Show", out[0].Name)
	assert.Len(t, base, 2)

	_, _, err = DeleteEvent(base, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeatGuards(t *testing.T) {
	e := techFest()

	assert.True(t, e.RegisterStudent())
	assert.True(t, e.RegisterStudent())
	assert.False(t, e.RegisterStudent(), "full event must not take another seat")
	assert.Equal(t, 2, e.RegisteredCount)
	assert.Equal(t, 0, e.AvailableSeats())
	assert.InDelta(t, 100.0, e.Occupancy(), 0.001)

	assert.True(t, e.UnregisterStudent())
	assert.True(t, e.UnregisterStudent())
	assert.False(t, e.UnregisterStudent(), "count must not go below zero")
	assert.Equal(t, 0, e.RegisteredCount)
}

func TestSearchAndFilter(t *testing.T) {
	events := []Event{
		techFest(),
		{Name: "Robotech Workshop", Date: "20-04-2025", Venue: "Lab", Capacity: 5},
		{Name: "Art Show", Date: "15-03-2025", Venue: "Gallery", Capacity: 5},
	}

	found, err := Search(events, " TECH ")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Tech Fest", found[0].Name)
	assert.Equal(t, "Robotech Workshop", found[1].Name)

	_, err = Search(events, "  ")
	assert.ErrorIs(t, err, ErrEmptySearch)

	onDate, err := FilterByDate(events, "15-03-2025")
	require.NoError(t, err)
	assert.Len(t, onDate, 2)

	_, err = FilterByDate(events, "15-3-2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats([]Event{
		{Name: "A", Capacity: 10, RegisteredCount: 5},
		{Name: "B", Capacity: 30, RegisteredCount: 5},
	})

	assert.Equal(t, 2, s.TotalEvents)
	assert.Equal(t, 40, s.TotalCapacity)
	assert.Equal(t, 10, s.TotalRegistered)
	assert.InDelta(t, 25.0, s.Occupancy, 0.001)
	require.Len(t, s.PerEvent, 2)
	assert.InDelta(t, 50.0, s.PerEvent[0].Occupancy, 0.001)

	empty := ComputeStats(nil)
	assert.Zero(t, empty.Occupancy)
}
