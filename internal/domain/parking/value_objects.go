package parking

import (
	"errors"
	"strings"
	"unicode/utf8"

	"parking-system/internal/pkg/errs"
)

var ErrInvalidRegistration = errors.New("invalid vehicle registration number")

const (
	MinRegistrationLength = 2
	MaxRegistrationLength = 10
)

type Registration struct {
	value string
}

// NewRegistration trims surrounding whitespace and checks the remaining length.
func NewRegistration(s string) (Registration, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Registration{}, errs.MarkWithMessage(ErrInvalidRegistration,
			"vehicle registration number cannot be empty")
	}

	n := utf8.RuneCountInString(v)
	if n < MinRegistrationLength || n > MaxRegistrationLength {
		return Registration{}, errs.MarkWithMessage(ErrInvalidRegistration,
			"vehicle registration number must be between %d and %d characters long, got %d",
			MinRegistrationLength, MaxRegistrationLength, n)
	}

	return Registration{value: v}, nil
}

func (r Registration) Value() string {
	return r.value
}

func (r Registration) String() string {
	return r.value
}
