package service

import (
	"context"

	"github.com/geocoder89/eventdesk/internal/auth"
	"github.com/geocoder89/eventdesk/internal/domain/event"
	"github.com/geocoder89/eventdesk/internal/domain/registration"
	"github.com/geocoder89/eventdesk/internal/domain/user"
	"github.com/geocoder89/eventdesk/internal/notifications"
)

func (s *Service) AddEvent(ctx context.Context, req event.CreateEventRequest) (event.Event, error) {
	var created event.Event

	err := s.run(ctx, "add_event", user.CapManageEvents, func(ctx context.Context, _ auth.Identity) error {
		events, err := s.events.LoadAll(ctx)
		if err != nil {
			return err
		}

		events, created, err = event.AddEvent(events, req)
		if err != nil {
			return err
		}
		return s.events.SaveAll(ctx, events)
	})
	return created, err
}

// EditEvent changes one field of the event at index. A rename rewrites the
// registrations that point at the old name, saved after the events.
func (s *Service) EditEvent(ctx context.Context, index int, field event.Field, value string) (event.Edit, error) {
	var edit event.Edit

	err := s.run(ctx, "edit_event", user.CapManageEvents, func(ctx context.Context, _ auth.Identity) error {
		events, err := s.events.LoadAll(ctx)
		if err != nil {
			return err
		}

		events, edit, err = event.EditEvent(events, index, field, value)
		if err != nil {
			return err
		}

		if !edit.Renamed() {
			return s.events.SaveAll(ctx, events)
		}

		regs, err := s.regs.LoadAll(ctx)
		if err != nil {
			return err
		}
		regs, moved := registration.RenameEvent(regs, edit.Before.Name, edit.After.Name)
		if moved == 0 {
			return s.events.SaveAll(ctx, events)
		}
		return s.saveBoth(ctx, events, regs)
	})
	return edit, err
}

// DeleteEvent removes the event at index and every registration for it.
// It returns the removed event and the number of purged registrations.
func (s *Service) DeleteEvent(ctx context.Context, index int) (event.Event, int, error) {
	var (
		removed event.Event
		purged  int
	)

	err := s.run(ctx, "delete_event", user.CapManageEvents, func(ctx context.Context, _ auth.Identity) error {
		events, regs, err := s.loadBoth(ctx)
		if err != nil {
			return err
		}

		events, removed, err = event.DeleteEvent(events, index)
		if err != nil {
			return err
		}
		regs, purged = registration.CascadeDeleteByEvent(regs, removed.Name)

		if err := s.saveBoth(ctx, events, regs); err != nil {
			return err
		}

		if purged > 0 {
			s.notify(ctx, notifications.Notice{
				Kind:      notifications.KindEventPurged,
				EventName: removed.Name,
				Affected:  purged,
			})
		}
		return nil
	})
	return removed, purged, err
}

func (s *Service) ListEvents(ctx context.Context) ([]event.Event, error) {
	var events []event.Event

	err := s.run(ctx, "list_events", user.CapViewEvents, func(ctx context.Context, _ auth.Identity) error {
		var err error
		events, err = s.events.LoadAll(ctx)
		return err
	})
	return events, err
}

func (s *Service) SearchEvents(ctx context.Context, term string) ([]event.Event, error) {
	var found []event.Event

	err := s.run(ctx, "search_events", user.CapSearchEvents, func(ctx context.Context, _ auth.Identity) error {
		events, err := s.events.LoadAll(ctx)
		if err != nil {
			return err
		}
		found, err = event.Search(events, term)
		return err
	})
	return found, err
}

func (s *Service) FilterEventsByDate(ctx context.Context, date string) ([]event.Event, error) {
	var found []event.Event

	err := s.run(ctx, "filter_events", user.CapSearchEvents, func(ctx context.Context, _ auth.Identity) error {
		events, err := s.events.LoadAll(ctx)
		if err != nil {
			return err
		}
		found, err = event.FilterByDate(events, date)
		return err
	})
	return found, err
}

func (s *Service) EventStats(ctx context.Context) (event.Stats, error) {
	var stats event.Stats

	err := s.run(ctx, "event_stats", user.CapViewStats, func(ctx context.Context, _ auth.Identity) error {
		events, err := s.events.LoadAll(ctx)
		if err != nil {
			return err
		}
		stats = event.ComputeStats(events)
		return nil
	})
	return stats, err
}
