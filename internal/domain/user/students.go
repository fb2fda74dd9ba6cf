package user

import (
	"errors"
	"fmt"
	"slices"

	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/geocoder89/eventdesk/internal/utils"
	"github.com/go-playground/validator/v10"
)

type CreateStudentRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	FullName string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var fieldErrors = map[string]error{
	"Username": ErrUsernameRequired,
	"Password": ErrPasswordRequired,
	"FullName": ErrFullNameRequired,
}

// Normalize trims every field. The user codec trims on decode, so an
// untrimmed password could never be matched at login.
func (req CreateStudentRequest) Normalize() CreateStudentRequest {
	return CreateStudentRequest{
		Username: utils.Trim(req.Username),
		Password: utils.Trim(req.Password),
		FullName: utils.Trim(req.FullName),
	}
}

func ValidateCreateStudent(req CreateStudentRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if mapped, ok := fieldErrors[fe.StructField()]; ok {
			errs = append(errs, mapped)
		}
	}
	return errors.Join(errs...)
}

// IndexOf finds the first user with exactly this username.
func IndexOf(users []User, username string) (int, bool) {
	for i, u := range users {
		if u.Username == username {
			return i, true
		}
	}
	return -1, false
}

// AddStudent appends a student account to the end of users.
func AddStudent(users []User, req CreateStudentRequest) ([]User, User, error) {
	req = req.Normalize()

	if err := ValidateCreateStudent(req); err != nil {
		return users, User{}, err
	}

	if _, taken := IndexOf(users, req.Username); taken {
		return users, User{}, ErrUsernameTaken
	}

	u := User{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Role:     RoleStudent,
	}

	return append(slices.Clone(users), u), u, nil
}
