package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable is returned when the underlying SQLite engine
	// cannot be opened or migrated (missing permissions, corruption, no
	// space). Fatal for the current session; no automatic retry.
	ErrStoreUnavailable = errors.New("local store unavailable")

	// ErrDailyLogNotFound is returned when no log record exists for the
	// requested date. The service layer converts this into a default log
	// with all six category lists empty, so callers above the repository
	// never see it.
	ErrDailyLogNotFound = errors.New("daily log not found")

	// ErrProductNotFound is returned when no cached product exists for the
	// requested barcode.
	ErrProductNotFound = errors.New("product not found in cache")

	// ErrMealNotFound is returned when no saved meal exists for the
	// requested id.
	ErrMealNotFound = errors.New("meal not found")

	// ErrWeightEntryNotFound is returned when no weight measurement exists
	// for the requested date.
	ErrWeightEntryNotFound = errors.New("weight entry not found")

	// ErrSettingNotFound is returned when the settings table holds no value
	// for the requested key.
	ErrSettingNotFound = errors.New("setting not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrDecodingRecord is returned when a stored JSON document column
	// (daily log entries, meal foods) cannot be decoded.
	ErrDecodingRecord = errors.New("failed to decode stored record")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
