package usecase

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)

func invalidInputf(format string, args ...any) error {
	return crerr.Wrapf(ErrInvalidInput, format, args...)
}

// unavailable keeps both the sentinel and the scraper's cause reachable
// through errors.Is.
func unavailable(step string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, step, cause)
}
