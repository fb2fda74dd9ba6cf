// Package service runs every operation as load, mutate, save against the
// text-file collections, gated by the caller's capabilities.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/geocoder89/eventdesk/internal/actorctx"
	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/geocoder89/eventdesk/internal/auth"
	"github.com/geocoder89/eventdesk/internal/domain/event"
	"github.com/geocoder89/eventdesk/internal/domain/registration"
	"github.com/geocoder89/eventdesk/internal/domain/user"
	"github.com/geocoder89/eventdesk/internal/notifications"
	"github.com/geocoder89/eventdesk/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type EventStore interface {
	LoadAll(ctx context.Context) ([]event.Event, error)
	SaveAll(ctx context.Context, events []event.Event) error
}

type RegistrationStore interface {
	LoadAll(ctx context.Context) ([]registration.Registration, error)
	SaveAll(ctx context.Context, regs []registration.Registration) error
}

type UserStore interface {
	LoadAll(ctx context.Context) ([]user.User, error)
	SaveAll(ctx context.Context, users []user.User) error
}

type Deps struct {
	Events        EventStore
	Registrations RegistrationStore
	Users         UserStore

	Notifier notifications.Notifier
	Log      *slog.Logger
	Prom     *observability.Prom
	Session  *observability.SessionMetrics
	Now      func() time.Time
}

type Service struct {
	events EventStore
	regs   RegistrationStore
	users  UserStore

	notifier notifications.Notifier
	log      *slog.Logger
	prom     *observability.Prom
	session  *observability.SessionMetrics
	tracer   trace.Tracer
	now      func() time.Time
}

func New(d Deps) *Service {
	s := &Service{
		events:   d.Events,
		regs:     d.Registrations,
		users:    d.Users,
		notifier: d.Notifier,
		log:      d.Log,
		prom:     d.Prom,
		session:  d.Session,
		tracer:   otel.Tracer("eventdesk/service"),
		now:      d.Now,
	}
	if s.notifier == nil {
		s.notifier = notifications.Nop{}
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// run wraps one operation: it resolves the caller from ctx, checks the
// capability, and records the outcome in logs, metrics and a span.
func (s *Service) run(ctx context.Context, op string, c user.Capability, fn func(ctx context.Context, id auth.Identity) error) error {
	ctx, span := s.tracer.Start(ctx, "service."+op)
	defer span.End()

	start := time.Now()

	id, _ := actorctx.IdentityFrom(ctx)
	span.SetAttributes(
		attribute.String("session.id", id.SessionID),
		attribute.String("username", id.Username),
	)

	err := auth.Require(id, c)
	if err == nil {
		err = fn(ctx, id)
	}

	result := apperr.Class(err)
	d := time.Since(start)
	if s.prom != nil {
		s.prom.ObserveOp(op, result, d)
	}
	if s.session != nil {
		s.session.Observe(result, d)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)

		level := slog.LevelInfo
		if result == "io" || result == "unknown" {
			level = slog.LevelError
		}
		s.log.Log(ctx, level, "operation failed",
			"op", op,
			"class", result,
			"username", id.Username,
			"session_id", id.SessionID,
			"err", err,
		)
		return err
	}

	s.log.DebugContext(ctx, "operation ok",
		"op", op,
		"username", id.Username,
		"session_id", id.SessionID,
		"duration_ms", d.Milliseconds(),
	)
	return nil
}

// notify delivers n; a failed delivery is logged and never fails the
// operation that triggered it.
func (s *Service) notify(ctx context.Context, n notifications.Notice) {
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.log.WarnContext(ctx, "notification failed", "kind", n.Kind, "event", n.EventName, "err", err)
	}
}

// saveBoth persists events then registrations. When the second write fails
// the files are left out of step until the next repair.
func (s *Service) saveBoth(ctx context.Context, events []event.Event, regs []registration.Registration) error {
	if err := s.events.SaveAll(ctx, events); err != nil {
		return err
	}
	if err := s.regs.SaveAll(ctx, regs); err != nil {
		s.log.ErrorContext(ctx, "registrations not saved after events were; run eventdesk-check -repair", "err", err)
		return err
	}
	return nil
}

func (s *Service) loadBoth(ctx context.Context) ([]event.Event, []registration.Registration, error) {
	events, err := s.events.LoadAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	regs, err := s.regs.LoadAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return events, regs, nil
}
