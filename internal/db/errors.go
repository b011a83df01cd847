package db

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel errors for the store layer. Callers match with errors.Is.
var (
	// ErrNotFound is returned for explicit gets of rows that are
	// missing or belong to another identity. Listings never return it;
	// an empty result is a normal outcome there.
	ErrNotFound = errors.New("record not found")

	// ErrPermissionDenied is returned when the backend rejects an
	// operation on a row the caller does not own.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrRemoteUnavailable indicates the remote backend could not be
	// reached. At startup it triggers the synthetic fallback; at any
	// later point it propagates to the caller.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)

// translateRemoteErr maps gRPC status codes from the Firestore and
// Storage clients onto the sentinel taxonomy, wrapping the original
// error.
func translateRemoteErr(op string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s: %w: %v", op, ErrNotFound, err)
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%s: %w: %v", op, ErrPermissionDenied, err)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%s: %w: %v", op, ErrRemoteUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
