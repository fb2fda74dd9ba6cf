package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/geocoder89/eventdesk/internal/domain/user"
	"github.com/geocoder89/eventdesk/internal/observability"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type UserStore interface {
	LoadAll(ctx context.Context) ([]user.User, error)
}

// Authenticator checks credentials against a fresh read of the user
// collection on every call.
type Authenticator struct {
	users  UserStore
	log    *slog.Logger
	prom   *observability.Prom
	tracer trace.Tracer
}

func NewAuthenticator(users UserStore, log *slog.Logger, p *observability.Prom) *Authenticator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Authenticator{
		users:  users,
		log:    log,
		prom:   p,
		tracer: otel.Tracer("eventdesk/auth"),
	}
}

// Authenticate returns the identity of the first user whose username and
// password both match exactly and whose role is admin or student. Rows
// with any other role are passed over.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (Identity, error) {
	ctx, span := a.tracer.Start(ctx, "auth.authenticate", trace.WithAttributes(attribute.String("username", username)))
	defer span.End()

	users, err := a.users.LoadAll(ctx)
	if err != nil {
		a.count("io")
		span.RecordError(err)
		return Identity{}, err
	}

	for _, u := range users {
		if u.Username != username || u.Password != password {
			continue
		}
		if !u.Role.IsValid() {
			a.log.WarnContext(ctx, "login with unknown role", "username", username, "role", u.Role)
			continue
		}

		id := Identity{
			SessionID: uuid.NewString(),
			Username:  u.Username,
			FullName:  u.FullName,
			Role:      u.Role,
		}
		a.count("ok")
		span.SetAttributes(attribute.String("session.id", id.SessionID), attribute.String("role", string(id.Role)))
		a.log.InfoContext(ctx, "login", "username", id.Username, "role", id.Role, "session_id", id.SessionID)
		return id, nil
	}

	a.count("invalid")
	return Identity{}, ErrInvalidCredentials
}

func (a *Authenticator) count(result string) {
	if a.prom != nil {
		a.prom.LoginAttempts.WithLabelValues(result).Inc()
	}
}

// IsIO reports whether a login failed because the user file was unusable.
func IsIO(err error) bool { return errors.Is(err, apperr.ErrIO) }
