package registration

import (
	"testing"
	"time"

	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/geocoder89/eventdesk/internal/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 1, 9, 5, 0, 0, time.Local)

func TestRegister(t *testing.T) {
	ev := event.Event{Name: "Tech Fest", Date: "15-03-2025", Venue: "Hall A", Capacity: 2}

	regs, reg, err := Register(nil, &ev, "alice", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, Registration{StudentUsername: "alice", EventName: "Tech Fest", RegistrationDate: "01-03-2025 09:05"}, reg)
	assert.Equal(t, 1, ev.RegisteredCount)

	t.Run("duplicate leaves count unchanged", func(t *testing.T) {
		again, _, err := Register(regs, &ev, "alice", fixedNow)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
		assert.ErrorIs(t, err, apperr.ErrDuplicate)
		assert.Len(t, again, 1)
		assert.Equal(t, 1, ev.RegisteredCount)
	})

	regs, _, err = Register(regs, &ev, "bob", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 2, ev.RegisteredCount)

	t.Run("full event", func(t *testing.T) {
		out, _, err := Register(regs, &ev, "carol", fixedNow)
		assert.ErrorIs(t, err, ErrEventFull)
		assert.ErrorIs(t, err, apperr.ErrCapacity)
		assert.Len(t, out, 2)
		assert.Equal(t, 2, ev.RegisteredCount)
	})

	assert.Equal(t, 2, CountForEvent(regs, "Tech Fest"))
}

func TestUnregister(t *testing.T) {
	events := []event.Event{{Name: "Tech Fest", Capacity: 5, RegisteredCount: 2}}
	regs := []Registration{
		{StudentUsername: "alice", EventName: "Tech Fest"},
		{StudentUsername: "bob", EventName: "Tech Fest"},
	}

	outRegs, outEvents, err := Unregister(regs, events, "alice", "Tech Fest")
	require.NoError(t, err)
	require.Len(t, outRegs, 1)
	assert.Equal(t, "bob", outRegs[0].StudentUsername)
	assert.Equal(t, 1, outEvents[0].RegisteredCount)
	assert.Equal(t, 2, events[0].RegisteredCount, "input events must stay untouched")

	_, _, err = Unregister(outRegs, outEvents, "alice", "Tech Fest")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUnregister_EventGone(t *testing.T) {
	regs := []Registration{{StudentUsername: "alice", EventName: "Ghost"}}

	outRegs, outEvents, err := Unregister(regs, nil, "alice", "Ghost")
	require.NoError(t, err)
	assert.Empty(t, outRegs)
	assert.Empty(t, outEvents)
}

func TestCascadeDeleteByEvent(t *testing.T) {
	regs := []Registration{
		{StudentUsername: "alice", EventName: "E"},
		{StudentUsername: "bob", EventName: "Other"},
		{StudentUsername: "carol", EventName: "E"},
	}

	out, removed := CascadeDeleteByEvent(regs, "E")
	assert.Equal(t, 2, removed)
	require.Len(t, out, 1)
	assert.Equal(t, "bob", out[0].StudentUsername)
	assert.Zero(t, CountForEvent(out, "E"))
}

func TestRenameEvent(t *testing.T) {
	regs := []Registration{
		{StudentUsername: "alice", EventName: "Old"},
		{StudentUsername: "bob", EventName: "Other"},
	}

	out, n := RenameEvent(regs, "Old", "New")
	assert.Equal(t, 1, n)
	assert.Equal(t, "New", out[0].EventName)
	assert.Equal(t, "Old", regs[0].EventName)
}

func TestQueries(t *testing.T) {
	events := []event.Event{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	regs := []Registration{
		{StudentUsername: "alice", EventName: "B"},
		{StudentUsername: "bob", EventName: "A"},
		{StudentUsername: "alice", EventName: "A"},
	}

	mine := ForStudent(regs, "alice")
	require.Len(t, mine, 2)
	assert.Equal(t, "B", mine[0].EventName)
	assert.Equal(t, "A", mine[1].EventName)

	people := Participants(regs, "A")
	require.Len(t, people, 2)
	assert.Equal(t, "bob", people[0].StudentUsername)

	assert.Equal(t, []EventCount{{"A", 2}, {"B", 1}, {"C", 0}}, Summary(events, regs))
}

func TestAuditAndRepair(t *testing.T) {
	events := []event.Event{
		{Name: "A", Capacity: 1, RegisteredCount: 0},
		{Name: "B", Capacity: 5, RegisteredCount: 1},
	}
	regs := []Registration{
		{StudentUsername: "alice", EventName: "A"},
		{StudentUsername: "bob", EventName: "A"},
		{StudentUsername: "carol", EventName: "B"},
		{StudentUsername: "dave", EventName: "Deleted"},
	}

	rep := Audit(events, regs)
	assert.False(t, rep.Consistent())
	assert.Equal(t, []CountMismatch{{EventName: "A", Stored: 0, Actual: 2}}, rep.Mismatches)
	require.Len(t, rep.Dangling, 1)
	assert.Equal(t, "dave", rep.Dangling[0].StudentUsername)

	fixedEvents, fixedRegs := Repair(events, regs)
	assert.True(t, Audit(fixedEvents, fixedRegs).Consistent())
	assert.Len(t, fixedRegs, 3)
	assert.Equal(t, 2, fixedEvents[0].RegisteredCount)
	assert.Equal(t, 2, fixedEvents[0].Capacity)
	assert.Equal(t, 0, events[0].RegisteredCount)
}

// Any sequence of successful registers and unregisters keeps the stored
// count equal to the number of ledger rows for the event.
func TestCountMatchesLedgerAcrossOperations(t *testing.T) {
	events := []event.Event{{Name: "E", Capacity: 3}}
	var regs []Registration
	var err error

	steps := []struct {
		register bool
		student  string
	}{
		{true, "a"}, {true, "b"}, {true, "a"}, {false, "a"}, {true, "c"},
		{true, "d"}, {true, "e"}, {false, "x"}, {false, "b"}, {true, "a"},
	}

	for _, s := range steps {
		if s.register {
			regs, _, _ = Register(regs, &events[0], s.student, fixedNow)
		} else {
			var outRegs []Registration
			var outEvents []event.Event
			outRegs, outEvents, err = Unregister(regs, events, s.student, "E")
			if err == nil {
				regs, events = outRegs, outEvents
			}
		}

		assert.Equal(t, CountForEvent(regs, "E"), events[0].RegisteredCount)
		assert.LessOrEqual(t, events[0].RegisteredCount, events[0].Capacity)
	}
}
