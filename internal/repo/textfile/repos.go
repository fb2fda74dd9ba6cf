package textfile

import (
	"log/slog"

	"github.com/geocoder89/eventdesk/internal/domain/event"
	"github.com/geocoder89/eventdesk/internal/domain/registration"
	"github.com/geocoder89/eventdesk/internal/domain/user"
	"github.com/geocoder89/eventdesk/internal/observability"
	"github.com/geocoder89/eventdesk/internal/records"
)

type (
	EventsRepo        = Collection[event.Event]
	RegistrationsRepo = Collection[registration.Registration]
	UsersRepo         = Collection[user.User]
)

func NewEventsRepo(path string, log *slog.Logger, p *observability.Prom) *EventsRepo {
	return NewCollection(path, records.EventCodec,
		WithLogger[event.Event](log),
		WithProm[event.Event](p),
	)
}

func NewRegistrationsRepo(path string, log *slog.Logger, p *observability.Prom) *RegistrationsRepo {
	return NewCollection(path, records.RegistrationCodec,
		WithLogger[registration.Registration](log),
		WithProm[registration.Registration](p),
	)
}

// NewUsersRepo fails loads when the file is missing, since nobody could
// log in without it.
func NewUsersRepo(path string, log *slog.Logger, p *observability.Prom) *UsersRepo {
	return NewCollection(path, records.UserCodec,
		WithLogger[user.User](log),
		WithProm[user.User](p),
		RequireExists[user.User](),
	)
}
