package service

import "errors"

var (
	// ErrImportParse marks a malformed import payload. Nothing is written
	// when this is returned; parsing happens before the first write.
	ErrImportParse = errors.New("import payload could not be parsed")

	// ErrImportWrite marks an individual record that failed to persist
	// during an import. The import loop continues past it.
	ErrImportWrite = errors.New("import record write failed")

	// ErrCascadeScan marks a cascade update that aborted mid-scan. Records
	// already written by the scan stay modified.
	ErrCascadeScan = errors.New("cascade update scan failed")

	// ErrUnknownCategory is returned for a meal-time category outside the
	// six known slots.
	ErrUnknownCategory = errors.New("unknown meal-time category")

	// ErrUnknownSection is returned when an export request names a section
	// that does not exist.
	ErrUnknownSection = errors.New("unknown export section")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)
