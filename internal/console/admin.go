package console

import (
	"context"

	"github.com/geocoder89/eventdesk/internal/domain/event"
	"github.com/geocoder89/eventdesk/internal/domain/user"
	"github.com/geocoder89/eventdesk/internal/utils"
)

func (sh *Shell) adminMenu(ctx context.Context) error {
	for {
		sh.printf("\n=== ADMIN DASHBOARD ===\n")
		sh.printf("1. Manage Events\n2. View All Events\n3. View Event Statistics\n")
		sh.printf("4. View Registration Reports\n5. Manage Users\n6. Check Data Consistency\n7. Logout\n")

		choice, err := sh.prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = sh.manageEvents(ctx)
		case "2":
			sh.viewEvents(ctx)
		case "3":
			sh.viewStats(ctx)
		case "4":
			err = sh.viewReports(ctx)
		case "5":
			err = sh.manageUsers(ctx)
		case "6":
			err = sh.checkData(ctx)
		case "7":
			return nil
		default:
			sh.printf("Invalid choice! Please try again.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (sh *Shell) manageEvents(ctx context.Context) error {
	for {
		sh.printf("\n=== MANAGE EVENTS ===\n1. Add New Event\n2. Edit Event\n3. Delete Event\n4. Back to Dashboard\n")

		choice, err := sh.prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = sh.addEvent(ctx)
		case "2":
			err = sh.editEvent(ctx)
		case "3":
			err = sh.deleteEvent(ctx)
		case "4":
			return nil
		default:
			sh.printf("Invalid choice!\n")
		}
		if err != nil {
			return err
		}
	}
}

func (sh *Shell) addEvent(ctx context.Context) error {
	sh.printf("\n=== ADD NEW EVENT ===\n")

	var req event.CreateEventRequest
	var err error

	if req.Name, err = sh.prompt("Event name: "); err != nil {
		return err
	}
	if req.Date, err = sh.prompt("Date (DD-MM-YYYY): "); err != nil {
		return err
	}
	if req.Venue, err = sh.prompt("Venue: "); err != nil {
		return err
	}

	capacity, ok, err := sh.promptInt("Capacity: ")
	if err != nil {
		return err
	}
	if !ok {
		sh.fail(event.ErrInvalidCapacity)
		return nil
	}
	req.Capacity = capacity

	created, err := sh.svc.AddEvent(ctx, req)
	if err != nil {
		sh.fail(err)
		return nil
	}
	sh.printf("Event '%s' added successfully!\n", created.Name)
	return nil
}

// pickEvent lists the events and reads a 1-based selection.
func (sh *Shell) pickEvent(ctx context.Context, label string) (int, bool, error) {
	events, err := sh.svc.ListEvents(ctx)
	if err != nil {
		sh.fail(err)
		return 0, false, nil
	}
	if len(events) == 0 {
		sh.printf("No events available.\n")
		return 0, false, nil
	}

	sh.printEvents(events)
	index, ok, err := sh.choose(label, len(events))
	if err == nil && !ok {
		sh.printf("Invalid selection!\n")
	}
	return index, ok, err
}

func (sh *Shell) editEvent(ctx context.Context) error {
	sh.printf("\n=== EDIT EVENT ===\n")

	index, ok, err := sh.pickEvent(ctx, "Enter event number to edit (0 to cancel): ")
	if err != nil || !ok {
		return err
	}

	for {
		for i, f := range editFields {
			sh.printf("%d. %s\n", i+1, f.label)
		}
		sh.printf("%d. Done\n", len(editFields)+1)

		choice, valid, err := sh.promptInt("Enter your choice: ")
		if err != nil {
			return err
		}
		if valid && choice == len(editFields)+1 {
			return nil
		}
		if !valid || choice < 1 || choice > len(editFields) {
			sh.printf("Invalid choice!\n")
			continue
		}

		value, err := sh.prompt("New value: ")
		if err != nil {
			return err
		}

		edit, err := sh.svc.EditEvent(ctx, index, editFields[choice-1].field, value)
		if err != nil {
			sh.fail(err)
			continue
		}
		sh.printf("Event updated.\n")
		if edit.Renamed() {
			sh.printf("Registrations for '%s' now point at '%s'.\n", edit.Before.Name, edit.After.Name)
		}
	}
}

func (sh *Shell) deleteEvent(ctx context.Context) error {
	sh.printf("\n=== DELETE EVENT ===\n")

	index, ok, err := sh.pickEvent(ctx, "Enter event number to delete (0 to cancel): ")
	if err != nil || !ok {
		return err
	}

	sh.printf("This will also remove all registrations for this event!\n")
	answer, err := sh.prompt("Are you sure? (yes/no): ")
	if err != nil {
		return err
	}
	if utils.ToLower(answer) != "yes" {
		sh.printf("Deletion cancelled!\n")
		return nil
	}

	removed, purged, err := sh.svc.DeleteEvent(ctx, index)
	if err != nil {
		sh.fail(err)
		return nil
	}
	sh.printf("Event '%s' deleted successfully! %d registration(s) removed.\n", removed.Name, purged)
	return nil
}

func (sh *Shell) viewEvents(ctx context.Context) {
	events, err := sh.svc.ListEvents(ctx)
	if err != nil {
		sh.fail(err)
		return
	}
	sh.printf("\n=== ALL EVENTS ===\n")
	sh.printEvents(events)
}

func (sh *Shell) viewStats(ctx context.Context) {
	stats, err := sh.svc.EventStats(ctx)
	if err != nil {
		sh.fail(err)
		return
	}
	sh.printStats(stats)
}

func (sh *Shell) viewReports(ctx context.Context) error {
	sh.printf("\n=== REGISTRATION REPORTS ===\n")

	events, err := sh.svc.ListEvents(ctx)
	if err != nil {
		sh.fail(err)
		return nil
	}
	if len(events) == 0 {
		sh.printf("No events in the system!\n")
		return nil
	}

	sh.printEvents(events)
	choice, valid, err := sh.promptInt("Enter event number (0 to view summary): ")
	if err != nil {
		return err
	}

	switch {
	case valid && choice == 0:
		summary, err := sh.svc.RegistrationSummary(ctx)
		if err != nil {
			sh.fail(err)
			return nil
		}
		sh.printf("\n=== REGISTRATION SUMMARY ===\n")
		for _, c := range summary {
			sh.printf("%s: %d registrations\n", c.EventName, c.Count)
		}

	case valid && choice >= 1 && choice <= len(events):
		ev, people, err := sh.svc.Participants(ctx, choice-1)
		if err != nil {
			sh.fail(err)
			return nil
		}
		sh.printf("\n=== PARTICIPANTS FOR: %s ===\n", ev.Name)
		if len(people) == 0 {
			sh.printf("No registrations for this event!\n")
			return nil
		}
		for i, p := range people {
			sh.printf("  %d. %s (Registered: %s)\n", i+1, p.StudentUsername, p.RegistrationDate)
		}
		sh.printf("\nTotal Participants: %d\n", len(people))

	default:
		sh.printf("Invalid selection!\n")
	}
	return nil
}

func (sh *Shell) manageUsers(ctx context.Context) error {
	for {
		sh.printf("\n=== MANAGE USERS ===\n1. Add New Student\n2. View All Users\n3. Back\n")

		choice, err := sh.prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := sh.addStudent(ctx); err != nil {
				return err
			}
		case "2":
			users, err := sh.svc.ListUsers(ctx)
			if err != nil {
				sh.fail(err)
				continue
			}
			sh.printf("\n=== ALL USERS ===\n")
			sh.printUsers(users)
		case "3":
			return nil
		default:
			sh.printf("Invalid choice!\n")
		}
	}
}

func (sh *Shell) addStudent(ctx context.Context) error {
	sh.printf("\n=== ADD NEW STUDENT ===\n")

	var req user.CreateStudentRequest
	var err error

	if req.Username, err = sh.prompt("Username: "); err != nil {
		return err
	}
	if req.Password, err = sh.prompt("Password: "); err != nil {
		return err
	}
	if req.FullName, err = sh.prompt("Full name: "); err != nil {
		return err
	}

	created, err := sh.svc.AddStudent(ctx, req)
	if err != nil {
		sh.fail(err)
		return nil
	}
	sh.printf("%s account '%s' created for %s.\n", roleLabel(created.Role), created.Username, created.FullName)
	return nil
}

func (sh *Shell) checkData(ctx context.Context) error {
	report, err := sh.svc.Audit(ctx)
	if err != nil {
		sh.fail(err)
		return nil
	}

	sh.printf("\n=== DATA CONSISTENCY ===\n")
	sh.printReport(report)
	if report.Consistent() {
		return nil
	}

	answer, err := sh.prompt("Repair now? (yes/no): ")
	if err != nil {
		return err
	}
	if utils.ToLower(answer) != "yes" {
		return nil
	}

	if _, err := sh.svc.Repair(ctx); err != nil {
		sh.fail(err)
		return nil
	}
	sh.printf("Repaired %d mismatch(es) and %d dangling registration(s).\n", len(report.Mismatches), len(report.Dangling))
	return nil
}
