package apperr

import "errors"

// Class sentinels. Domain errors wrap one of these so callers can branch
// with errors.Is without knowing every concrete error.
var (
	ErrValidation = errors.New("validation error")
	ErrDuplicate  = errors.New("duplicate")
	ErrCapacity   = errors.New("capacity exceeded")
	ErrNotFound   = errors.New("not found")
	ErrIO         = errors.New("io error")
	ErrForbidden  = errors.New("forbidden")
)

var classes = []struct {
	err   error
	label string
}{
	{ErrValidation, "validation"},
	{ErrDuplicate, "duplicate"},
	{ErrCapacity, "capacity"},
	{ErrNotFound, "not_found"},
	{ErrIO, "io"},
	{ErrForbidden, "forbidden"},
}

// Class returns a stable label for err, "ok" for nil and "unknown" when no
// class sentinel is wrapped.
func Class(err error) string {
	if err == nil {
		return "ok"
	}

	for _, c := range classes {
		if errors.Is(err, c.err) {
			return c.label
		}
	}
	return "unknown"
}
