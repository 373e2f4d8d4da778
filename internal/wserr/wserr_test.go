package wserr_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"wstrim/internal/wserr"
)

func TestRepositoryErrorMessagePassThrough(t *testing.T) {
	underlying := errors.New("repository does not exist")
	err := error(&wserr.RepositoryError{Err: underlying})

	if err.Error() != underlying.Error() {
		t.Errorf("Error() = %q, want the underlying message %q", err.Error(), underlying.Error())
	}
}

func TestIoErrorMessagePassThrough(t *testing.T) {
	underlying := fmt.Errorf("open %s: %w", "a.txt", os.ErrNotExist)
	err := error(&wserr.IoError{Err: underlying})

	if err.Error() != underlying.Error() {
		t.Errorf("Error() = %q, want the underlying message %q", err.Error(), underlying.Error())
	}
}

func TestErrorsAsSelectsKind(t *testing.T) {
	var repoErr *wserr.RepositoryError
	var ioErr *wserr.IoError

	err := error(&wserr.RepositoryError{Err: errors.New("diff failed")})
	if !errors.As(err, &repoErr) {
		t.Error("RepositoryError must be matched by errors.As")
	}
	if errors.As(err, &ioErr) {
		t.Error("RepositoryError must not match IoError")
	}
}

func TestUnwrapReachesSentinel(t *testing.T) {
	err := error(&wserr.IoError{Err: fmt.Errorf("rename: %w", os.ErrPermission)})

	if !errors.Is(err, os.ErrPermission) {
		t.Error("wrapped sentinel must be reachable through Unwrap")
	}
}
