package registration

import (
	"slices"

	"github.com/geocoder89/eventdesk/internal/domain/event"
)

type CountMismatch struct {
	EventName string
	Stored    int
	Actual    int
}

// Report describes drift between the event and registration collections.
type Report struct {
	Mismatches []CountMismatch
	Dangling   []Registration
}

func (r Report) Consistent() bool {
	return len(r.Mismatches) == 0 && len(r.Dangling) == 0
}

// Audit compares every event's stored count with its ledger rows and lists
// registrations whose event does not exist.
func Audit(events []event.Event, regs []Registration) Report {
	rep := Report{
		Mismatches: make([]CountMismatch, 0),
		Dangling:   make([]Registration, 0),
	}

	for _, e := range events {
		actual := CountForEvent(regs, e.Name)
		if actual != e.RegisteredCount {
			rep.Mismatches = append(rep.Mismatches, CountMismatch{
				EventName: e.Name,
				Stored:    e.RegisteredCount,
				Actual:    actual,
			})
		}
	}

	for _, r := range regs {
		if _, ok := event.IndexOfExact(events, r.EventName); !ok {
			rep.Dangling = append(rep.Dangling, r)
		}
	}

	return rep
}

// Repair returns collections that pass Audit: dangling rows are dropped and
// each count is set from the ledger. Capacity is raised when the ledger
// holds more rows than seats so that no registration is lost.
func Repair(events []event.Event, regs []Registration) ([]event.Event, []Registration) {
	outEvents := slices.Clone(events)
	outRegs := make([]Registration, 0, len(regs))

	for _, r := range regs {
		if _, ok := event.IndexOfExact(outEvents, r.EventName); ok {
			outRegs = append(outRegs, r)
		}
	}

	for i := range outEvents {
		actual := CountForEvent(outRegs, outEvents[i].Name)
		if actual > outEvents[i].Capacity {
			outEvents[i].Capacity = actual
		}
		outEvents[i].RegisteredCount = actual
	}

	return outEvents, outRegs
}
