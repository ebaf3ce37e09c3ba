package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an insert violates the unique
	// constraint on username or email.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrStoreUnavailable wraps every other failure of a store operation
	// (connection loss, timeout, malformed row).
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery  = errors.New("error building sql query")
	ErrExecutingQuery    = errors.New("error executing sql query")
	ErrScanningRow       = errors.New("failed to scan user row")
	ErrScanningRows      = errors.New("failed to scan user rows")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
