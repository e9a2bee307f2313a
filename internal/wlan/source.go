package wlan

import (
	"context"
	"errors"
)

// Source is the narrow seam to the operating system's saved-profile store.
// Parsing of the platform command lives behind it.
type Source interface {
	// ListProfiles returns saved profile names in the order the OS reports
	// them. A failed enumeration returns a *ListError; zero profiles is an
	// empty slice with a nil error.
	ListProfiles(ctx context.Context) ([]ProfileName, error)

	// FetchSecret reads the cleartext key of one profile. Failures are
	// reported through an Error credential, never a panic or a bare string.
	FetchSecret(ctx context.Context, name ProfileName) Credential
}

// ErrEmptyProfileName is recorded for profile entries whose name is blank.
var ErrEmptyProfileName = errors.New("profile name is empty")

// ListError reports that saved profiles could not be enumerated.
type ListError struct {
	Err error
}

func (e *ListError) Error() string {
	if e.Err == nil {
		return "failed to enumerate wireless profiles"
	}
	return "failed to enumerate wireless profiles: " + e.Err.Error()
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// IsListError reports whether err is an enumeration failure.
func IsListError(err error) bool {
	var listErr *ListError
	return errors.As(err, &listErr)
}
