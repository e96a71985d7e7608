package app

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"bodyprogress/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type measurementInput struct {
	Weight  float64 `validate:"gt=0"`
	BodyFat float64 `validate:"gte=0,lte=100"`
}

func validateMeasurement(weight, bodyFat float64) error {
	if math.IsInf(weight, 0) || math.IsInf(bodyFat, 0) {
		return fmt.Errorf("%w: values must be finite", domain.ErrInvalidInput)
	}
	return validateStruct(measurementInput{Weight: weight, BodyFat: bodyFat})
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fieldMessage(e))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be > %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s failed %s", e.Field(), e.Tag())
	}
}

// parseDecimal parses a required user-entered decimal string.
func parseDecimal(name, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, name)
	}
	return v, nil
}
