package registration

import (
	"slices"
	"time"

	"github.com/geocoder89/eventdesk/internal/domain/event"
)

// IndexOf finds the first registration of student for eventName.
func IndexOf(regs []Registration, student, eventName string) (int, bool) {
	for i, r := range regs {
		if r.StudentUsername == student && r.EventName == eventName {
			return i, true
		}
	}
	return -1, false
}

// Register appends a registration for student and takes a seat on ev.
// Both effects happen together or not at all; the caller persists the
// event collection first, then the ledger.
func Register(regs []Registration, ev *event.Event, student string, now time.Time) ([]Registration, Registration, error) {
	if _, exists := IndexOf(regs, student, ev.Name); exists {
		return regs, Registration{}, ErrAlreadyRegistered
	}

	if !ev.HasAvailableSeats() {
		return regs, Registration{}, ErrEventFull
	}

	ev.RegisterStudent()

	reg := New(student, ev.Name, now)
	out := append(slices.Clone(regs), reg)

	return out, reg, nil
}

// Unregister removes the first registration of student for eventName and
// frees a seat on the matching event. The row is removed even when the
// event itself is gone.
func Unregister(regs []Registration, events []event.Event, student, eventName string) ([]Registration, []event.Event, error) {
	i, ok := IndexOf(regs, student, eventName)
	if !ok {
		return regs, events, ErrNotFound
	}

	outRegs := slices.Delete(slices.Clone(regs), i, i+1)
	outEvents := slices.Clone(events)

	if j, found := event.IndexOfExact(outEvents, eventName); found {
		outEvents[j].UnregisterStudent()
	}

	return outRegs, outEvents, nil
}

// CascadeDeleteByEvent drops every registration for eventName and reports
// how many were removed.
func CascadeDeleteByEvent(regs []Registration, eventName string) ([]Registration, int) {
	out := make([]Registration, 0, len(regs))

	for _, r := range regs {
		if r.EventName != eventName {
			out = append(out, r)
		}
	}

	return out, len(regs) - len(out)
}

// RenameEvent points registrations for oldName at newName.
func RenameEvent(regs []Registration, oldName, newName string) ([]Registration, int) {
	out := slices.Clone(regs)
	n := 0

	for i := range out {
		if out[i].EventName == oldName {
			out[i].EventName = newName
			n++
		}
	}

	return out, n
}

// ForStudent lists a student's registrations in ledger order.
func ForStudent(regs []Registration, student string) []Registration {
	out := make([]Registration, 0)
	for _, r := range regs {
		if r.StudentUsername == student {
			out = append(out, r)
		}
	}
	return out
}

// Participants lists the registrations for one event in ledger order.
func Participants(regs []Registration, eventName string) []Registration {
	out := make([]Registration, 0)
	for _, r := range regs {
		if r.EventName == eventName {
			out = append(out, r)
		}
	}
	return out
}

func CountForEvent(regs []Registration, eventName string) int {
	n := 0
	for _, r := range regs {
		if r.EventName == eventName {
			n++
		}
	}
	return n
}

type EventCount struct {
	EventName string
	Count     int
}

// Summary counts ledger rows per event, in event order.
func Summary(events []event.Event, regs []Registration) []EventCount {
	out := make([]EventCount, 0, len(events))
	for _, e := range events {
		out = append(out, EventCount{EventName: e.Name, Count: CountForEvent(regs, e.Name)})
	}
	return out
}
