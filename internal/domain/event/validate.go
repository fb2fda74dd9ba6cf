package event

import (
	"errors"
	"fmt"

	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/geocoder89/eventdesk/internal/utils"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("eventdate", func(fl validator.FieldLevel) bool {
		return utils.IsValidDate(fl.Field().String())
	})

	return v
}

// fieldErrors maps struct fields to the domain error reported for them.
var fieldErrors = map[string]error{
	"Name":     ErrNameRequired,
	"Date":     ErrInvalidDate,
	"Venue":    ErrVenueRequired,
	"Capacity": ErrInvalidCapacity,
}

// ValidateCreate checks a normalized request. Every failing field is
// reported; errors.Is works against each of them.
func ValidateCreate(req CreateEventRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if mapped, ok := fieldErrors[fe.StructField()]; ok {
			errs = append(errs, mapped)
		}
	}

	if len(errs) == 0 {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}

	return errors.Join(errs...)
}
