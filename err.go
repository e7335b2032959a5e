package lifenav

import (
	"errors"
	"fmt"
)

// ErrNotOnboarded is returned by RequireOnboarded until the user finished onboarding.
var ErrNotOnboarded = errors.New("onboarding not completed")

// OpenError reports which store failed to load while opening a Navigator.
type OpenError struct {
	Store string
	Err   error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s store: %v", e.Store, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
