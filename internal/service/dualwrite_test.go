package service

import (
	"fmt"
	"testing"

	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/geocoder89/eventdesk/internal/domain/event"
	"github.com/geocoder89/eventdesk/internal/domain/registration"
	"github.com/geocoder89/eventdesk/internal/domain/user"
	"github.com/geocoder89/eventdesk/internal/repo/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryService(events []event.Event, regs []registration.Registration) (*Service, *memory.Collection[event.Event], *memory.Collection[registration.Registration]) {
	ev := memory.NewCollection(events...)
	rg := memory.NewCollection(regs...)
	svc := New(Deps{
		Events:        ev,
		Registrations: rg,
		Users:         memory.NewCollection[user.User](),
	})
	return svc, ev, rg
}

func TestDualWrite_EventsSaveFailureWritesNothing(t *testing.T) {
	svc, ev, rg := newMemoryService([]event.Event{{Name: "Tech Fest", Date: "15-03-2025", Venue: "Hall A", Capacity: 2}}, nil)
	ev.FailSaves(fmt.Errorf("%w: disk full", apperr.ErrIO))

	_, err := svc.Register(as(john), 0)
	require.ErrorIs(t, err, apperr.ErrIO)
	assert.Equal(t, 0, rg.Saves())

	regs, err := rg.LoadAll(t.Context())
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestDualWrite_RegistrationsFailureLeavesDriftForRepair(t *testing.T) {
	svc, ev, rg := newMemoryService([]event.Event{{Name: "Tech Fest", Date: "15-03-2025", Venue: "Hall A", Capacity: 2}}, nil)
	rg.FailSaves(fmt.Errorf("%w: disk full", apperr.ErrIO))

	_, err := svc.Register(as(john), 0)
	require.ErrorIs(t, err, apperr.ErrIO)
	assert.Equal(t, 1, ev.Saves(), "events are written first")

	report, err := svc.CheckConsistency(t.Context())
	require.NoError(t, err)
	require.Len(t, report.Mismatches, 1)
	assert.Equal(t, registration.CountMismatch{EventName: "Tech Fest", Stored: 1, Actual: 0}, report.Mismatches[0])

	rg.FailSaves(nil)
	_, err = svc.RepairConsistency(t.Context())
	require.NoError(t, err)

	events, err := ev.LoadAll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 0, events[0].RegisteredCount)
}

func TestDualWrite_LoadFailureStopsBeforeAnySave(t *testing.T) {
	svc, ev, rg := newMemoryService([]event.Event{{Name: "Tech Fest", Date: "15-03-2025", Venue: "Hall A", Capacity: 2}}, nil)
	rg.FailLoads(fmt.Errorf("%w: unreadable", apperr.ErrIO))

	_, _, err := svc.DeleteEvent(as(admin), 0)
	require.ErrorIs(t, err, apperr.ErrIO)
	assert.Equal(t, 0, ev.Saves())
}
