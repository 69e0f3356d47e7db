package adapter

import "errors"

// Sentinel errors mapped from HTTP responses of the food database API.
var (
	// ErrNotFound is returned when the database knows no product for the
	// requested barcode.
	ErrNotFound = errors.New("product not found in food database")

	// ErrRateLimited is returned when the API rejects the request due to
	// rate limiting (HTTP 429).
	ErrRateLimited = errors.New("food database rate limit exceeded")

	// ErrBadRequest is returned for malformed requests (HTTP 400).
	ErrBadRequest = errors.New("bad food database request")

	// ErrServerFailure is returned for 5xx responses from the food database.
	ErrServerFailure = errors.New("food database server failure")
)
