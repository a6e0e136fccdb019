package country

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCountryName = errors.New("invalid country name")
	ErrDuplicateCountry   = errors.New("duplicate country")
)

// InvalidNameError reports the team name that is not a recognized country.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid country name: %s", e.Name)
}

func (e *InvalidNameError) Unwrap() error {
	return ErrInvalidCountryName
}
