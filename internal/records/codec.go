package records

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geocoder89/eventdesk/internal/domain/event"
	"github.com/geocoder89/eventdesk/internal/domain/registration"
	"github.com/geocoder89/eventdesk/internal/domain/user"
	"github.com/geocoder89/eventdesk/internal/utils"
)

// Codec turns one entity into one line and back. Lines never carry the
// trailing newline.
type Codec[T any] struct {
	Kind   Kind
	Encode func(T) string
	Decode func(string) (T, error)
}

var (
	EventCodec        = Codec[event.Event]{Kind: KindEvents, Encode: EncodeEvent, Decode: DecodeEvent}
	RegistrationCodec = Codec[registration.Registration]{Kind: KindRegistrations, Encode: EncodeRegistration, Decode: DecodeRegistration}
	UserCodec         = Codec[user.User]{Kind: KindUsers, Encode: EncodeUser, Decode: DecodeUser}
)

// fields splits a line on the kind's delimiter and trims every field.
// A line that is empty after trimming yields ErrBlankLine.
func fields(k Kind, line string) ([]string, error) {
	if utils.Trim(line) == "" {
		return nil, ErrBlankLine
	}

	parts := utils.Split(line, k.Delimiter())
	for i := range parts {
		parts[i] = utils.Trim(parts[i])
	}
	return parts, nil
}

func join(k Kind, parts ...string) string {
	return strings.Join(parts, string(k.Delimiter()))
}

// EncodeEvent always writes all five fields.
func EncodeEvent(e event.Event) string {
	return join(KindEvents,
		e.Name,
		e.Date,
		e.Venue,
		strconv.Itoa(e.Capacity),
		strconv.Itoa(e.RegisteredCount),
	)
}

// DecodeEvent needs name, date, venue and capacity; the registered count
// defaults to 0 when absent. Fields past the fifth are ignored.
func DecodeEvent(line string) (event.Event, error) {
	parts, err := fields(KindEvents, line)
	if err != nil {
		return event.Event{}, err
	}

	if len(parts) < 4 {
		return event.Event{}, fmt.Errorf("%w: event line has %d fields, want at least 4", ErrMalformedRecord, len(parts))
	}

	capacity, err := strconv.Atoi(parts[3])
	if err != nil {
		return event.Event{}, fmt.Errorf("%w: capacity %q: %v", ErrMalformedRecord, parts[3], err)
	}

	registered := 0
	if len(parts) > 4 {
		registered, err = strconv.Atoi(parts[4])
		if err != nil {
			return event.Event{}, fmt.Errorf("%w: registered count %q: %v", ErrMalformedRecord, parts[4], err)
		}
	}

	return event.Event{
		Name:            parts[0],
		Date:            parts[1],
		Venue:           parts[2],
		Capacity:        capacity,
		RegisteredCount: registered,
	}, nil
}

func EncodeRegistration(r registration.Registration) string {
	return join(KindRegistrations, r.StudentUsername, r.EventName, r.RegistrationDate)
}

// DecodeRegistration needs exactly three fields.
func DecodeRegistration(line string) (registration.Registration, error) {
	parts, err := fields(KindRegistrations, line)
	if err != nil {
		return registration.Registration{}, err
	}

	if len(parts) != 3 {
		return registration.Registration{}, fmt.Errorf("%w: registration line has %d fields, want 3", ErrMalformedRecord, len(parts))
	}

	return registration.Registration{
		StudentUsername:  parts[0],
		EventName:        parts[1],
		RegistrationDate: parts[2],
	}, nil
}

func EncodeUser(u user.User) string {
	return join(KindUsers, u.Username, u.Password, u.FullName, string(u.Role))
}

// DecodeUser needs at least four fields. The role is kept as stored, even
// when it is not a known role.
func DecodeUser(line string) (user.User, error) {
	parts, err := fields(KindUsers, line)
	if err != nil {
		return user.User{}, err
	}

	if len(parts) < 4 {
		return user.User{}, fmt.Errorf("%w: user line has %d fields, want at least 4", ErrMalformedRecord, len(parts))
	}

	return user.User{
		Username: parts[0],
		Password: parts[1],
		FullName: parts[2],
		Role:     user.Role(parts[3]),
	}, nil
}
