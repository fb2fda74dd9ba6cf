package console

import "context"

func (sh *Shell) studentMenu(ctx context.Context) error {
	for {
		sh.printf("\n=== STUDENT PORTAL ===\n1. Browse Available Events\n2. My Registrations\n3. Search Events\n4. Logout\n")

		choice, err := sh.prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = sh.browseEvents(ctx)
		case "2":
			err = sh.myRegistrations(ctx)
		case "3":
			err = sh.searchEvents(ctx)
		case "4":
			return nil
		default:
			sh.printf("Invalid choice! Please try again.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (sh *Shell) browseEvents(ctx context.Context) error {
	sh.printf("\n=== AVAILABLE EVENTS ===\n")

	index, ok, err := sh.pickEvent(ctx, "Enter event number to register (0 to go back): ")
	if err != nil || !ok {
		return err
	}

	reg, err := sh.svc.Register(ctx, index)
	if err != nil {
		sh.fail(err)
		return nil
	}
	sh.printf("Successfully registered for '%s' at %s!\n", reg.EventName, reg.RegistrationDate)
	return nil
}

func (sh *Shell) myRegistrations(ctx context.Context) error {
	for {
		regs, err := sh.svc.MyRegistrations(ctx)
		if err != nil {
			sh.fail(err)
			return nil
		}

		sh.printf("\n=== MY REGISTRATIONS ===\n")
		if len(regs) == 0 {
			sh.printf("You have not registered for any events yet.\n")
			return nil
		}
		sh.printRegistrations(regs)

		sh.printf("\n1. View Event Details\n2. Unregister from Event\n3. Back\n")
		choice, err := sh.prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			index, ok, err := sh.choose("Registration number: ", len(regs))
			if err != nil {
				return err
			}
			if !ok {
				sh.printf("Invalid selection!\n")
				continue
			}
			sh.showEvent(ctx, regs[index].EventName)

		case "2":
			index, ok, err := sh.choose("Registration number to cancel: ", len(regs))
			if err != nil {
				return err
			}
			if !ok {
				sh.printf("Invalid selection!\n")
				continue
			}
			name := regs[index].EventName
			if err := sh.svc.Unregister(ctx, name); err != nil {
				sh.fail(err)
				continue
			}
			sh.printf("Unregistered from '%s'.\n", name)

		case "3":
			return nil
		default:
			sh.printf("Invalid choice!\n")
		}
	}
}

// showEvent prints the details of the event called name, if it still exists.
func (sh *Shell) showEvent(ctx context.Context, name string) {
	events, err := sh.svc.ListEvents(ctx)
	if err != nil {
		sh.fail(err)
		return
	}
	for _, e := range events {
		if e.Name == name {
			sh.printEventDetails(e)
			return
		}
	}
	sh.printf("Event '%s' no longer exists.\n", name)
}

func (sh *Shell) searchEvents(ctx context.Context) error {
	sh.printf("\n=== SEARCH EVENTS ===\n1. Search by Name\n2. Filter by Date\n3. Back\n")

	choice, err := sh.prompt("Enter your choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		term, err := sh.prompt("Search term: ")
		if err != nil {
			return err
		}
		found, err := sh.svc.SearchEvents(ctx, term)
		if err != nil {
			sh.fail(err)
			return nil
		}
		sh.printEvents(found)

	case "2":
		date, err := sh.prompt("Date (DD-MM-YYYY): ")
		if err != nil {
			return err
		}
		found, err := sh.svc.FilterEventsByDate(ctx, date)
		if err != nil {
			sh.fail(err)
			return nil
		}
		sh.printEvents(found)

	case "3":
	default:
		sh.printf("Invalid choice!\n")
	}
	return nil
}
