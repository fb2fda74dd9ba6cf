package service

import (
	"context"

	"github.com/geocoder89/eventdesk/internal/auth"
	"github.com/geocoder89/eventdesk/internal/domain/event"
	"github.com/geocoder89/eventdesk/internal/domain/registration"
	"github.com/geocoder89/eventdesk/internal/domain/user"
	"github.com/geocoder89/eventdesk/internal/notifications"
	"github.com/geocoder89/eventdesk/internal/utils"
)

// Register signs the calling student up for the event at index.
func (s *Service) Register(ctx context.Context, index int) (registration.Registration, error) {
	var reg registration.Registration

	err := s.run(ctx, "register", user.CapRegister, func(ctx context.Context, id auth.Identity) error {
		events, regs, err := s.loadBoth(ctx)
		if err != nil {
			return err
		}

		if index < 0 || index >= len(events) {
			return event.ErrNotFound
		}

		regs, reg, err = registration.Register(regs, &events[index], id.Username, s.now())
		if err != nil {
			return err
		}

		if err := s.saveBoth(ctx, events, regs); err != nil {
			return err
		}

		s.notify(ctx, notifications.Notice{
			Kind:      notifications.KindRegistered,
			Student:   reg.StudentUsername,
			EventName: reg.EventName,
			At:        reg.RegistrationDate,
		})
		return nil
	})
	return reg, err
}

// Unregister cancels the calling student's registration for eventName.
func (s *Service) Unregister(ctx context.Context, eventName string) error {
	return s.run(ctx, "unregister", user.CapRegister, func(ctx context.Context, id auth.Identity) error {
		events, regs, err := s.loadBoth(ctx)
		if err != nil {
			return err
		}

		regs, events, err = registration.Unregister(regs, events, id.Username, eventName)
		if err != nil {
			return err
		}

		if err := s.saveBoth(ctx, events, regs); err != nil {
			return err
		}

		s.notify(ctx, notifications.Notice{
			Kind:      notifications.KindUnregistered,
			Student:   id.Username,
			EventName: eventName,
			At:        utils.FormatTimestamp(s.now()),
		})
		return nil
	})
}

// MyRegistrations lists the calling student's registrations in file order.
func (s *Service) MyRegistrations(ctx context.Context) ([]registration.Registration, error) {
	var mine []registration.Registration

	err := s.run(ctx, "my_registrations", user.CapViewRegistration, func(ctx context.Context, id auth.Identity) error {
		regs, err := s.regs.LoadAll(ctx)
		if err != nil {
			return err
		}
		mine = registration.ForStudent(regs, id.Username)
		return nil
	})
	return mine, err
}

// Participants lists the registrations for the event at index.
func (s *Service) Participants(ctx context.Context, index int) (event.Event, []registration.Registration, error) {
	var (
		ev    event.Event
		found []registration.Registration
	)

	err := s.run(ctx, "participants", user.CapViewReports, func(ctx context.Context, _ auth.Identity) error {
		events, regs, err := s.loadBoth(ctx)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(events) {
			return event.ErrNotFound
		}

		ev = events[index]
		found = registration.Participants(regs, ev.Name)
		return nil
	})
	return ev, found, err
}

func (s *Service) RegistrationSummary(ctx context.Context) ([]registration.EventCount, error) {
	var summary []registration.EventCount

	err := s.run(ctx, "registration_summary", user.CapViewReports, func(ctx context.Context, _ auth.Identity) error {
		events, regs, err := s.loadBoth(ctx)
		if err != nil {
			return err
		}
		summary = registration.Summary(events, regs)
		return nil
	})
	return summary, err
}
