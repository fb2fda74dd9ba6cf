package user

import (
	"fmt"

	"github.com/geocoder89/eventdesk/internal/apperr"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// User is stored with a plaintext password.
type User struct {
	Username string
	Password string
	FullName string
	Role     Role
}

var (
	ErrUsernameRequired = fmt.Errorf("%w: username cannot be empty", apperr.ErrValidation)
	ErrPasswordRequired = fmt.Errorf("%w: password cannot be empty", apperr.ErrValidation)
	ErrFullNameRequired = fmt.Errorf("%w: full name cannot be empty", apperr.ErrValidation)
	ErrUsernameTaken    = fmt.Errorf("%w: username already exists", apperr.ErrDuplicate)
)
