package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityAlreadyExists is returned when a new user collides with an
	// existing username or email.
	ErrIdentityAlreadyExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a lookup matches no user record.
	ErrUserNotFound = errors.New("no user was found")

	// ErrResetCodeMismatch is returned by compare-and-swap reset updates
	// when the stored code changed, was cleared or expired in between.
	ErrResetCodeMismatch = errors.New("reset code is no longer current")

	// ErrExpenseNotFound is returned when the expense does not exist or
	// belongs to another user.
	ErrExpenseNotFound = errors.New("expense was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
