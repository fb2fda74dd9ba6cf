package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/geocoder89/eventdesk/internal/domain/event"
	"github.com/geocoder89/eventdesk/internal/domain/registration"
	"github.com/geocoder89/eventdesk/internal/domain/user"
	"github.com/geocoder89/eventdesk/internal/service"
)

func (sh *Shell) table(write func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(sh.out, 0, 0, 2, ' ', 0)
	write(w)
	_ = w.Flush()
}

func (sh *Shell) printEvents(events []event.Event) {
	if len(events) == 0 {
		sh.printf("No events found.\n")
		return
	}

	sh.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "No.\tName\tDate\tVenue\tSeats")
		for i, e := range events {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d/%d\n", i+1, e.Name, e.Date, e.Venue, e.RegisteredCount, e.Capacity)
		}
	})
}

func (sh *Shell) printEventDetails(e event.Event) {
	sh.printf("\nEvent:     %s\n", e.Name)
	sh.printf("Date:      %s\n", e.Date)
	sh.printf("Venue:     %s\n", e.Venue)
	sh.printf("Capacity:  %d\n", e.Capacity)
	sh.printf("Available: %d\n", e.AvailableSeats())
}

func (sh *Shell) printRegistrations(regs []registration.Registration) {
	sh.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "No.\tEvent\tRegistered")
		for i, r := range regs {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, r.EventName, r.RegistrationDate)
		}
	})
}

func (sh *Shell) printStats(s event.Stats) {
	sh.printf("\n=== EVENT STATISTICS ===\n")
	sh.printf("Total events:          %d\n", s.TotalEvents)
	sh.printf("Total capacity:        %d\n", s.TotalCapacity)
	sh.printf("Total registrations:   %d\n", s.TotalRegistered)
	sh.printf("Overall occupancy:     %.1f%%\n", s.Occupancy)

	if len(s.PerEvent) == 0 {
		return
	}
	sh.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "Event\tRegistered\tCapacity\tOccupancy")
		for _, e := range s.PerEvent {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\n", e.Name, e.Registered, e.Capacity, e.Occupancy)
		}
	})
}

func (sh *Shell) printUsers(users []service.UserView) {
	sh.table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "Username\tFull Name\tRole")
		for _, u := range users {
			role := string(u.Role)
			if !u.Role.IsValid() {
				role += " (unknown)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.Username, u.FullName, role)
		}
	})
}

func (sh *Shell) printReport(r registration.Report) {
	if r.Consistent() {
		sh.printf("Events and registrations are consistent.\n")
		return
	}
	for _, m := range r.Mismatches {
		sh.printf("Count mismatch: %s stores %d, ledger has %d\n", m.EventName, m.Stored, m.Actual)
	}
	for _, d := range r.Dangling {
		sh.printf("Dangling registration: %s -> %s\n", d.StudentUsername, d.EventName)
	}
}

var editFields = []struct {
	label string
	field event.Field
}{
	{"Edit Name", event.FieldName},
	{"Edit Date", event.FieldDate},
	{"Edit Venue", event.FieldVenue},
	{"Edit Capacity", event.FieldCapacity},
}

func roleLabel(r user.Role) string {
	if r == user.RoleAdmin {
		return "Admin"
	}
	return "Student"
}
