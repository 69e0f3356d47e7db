// Package adapter provides the transport layer for the remote food database.
//
// The primary abstraction is [FoodDataProvider], which decouples the service
// layer from the Open Food Facts HTTP API. Error values defined in errors.go
// are mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrNotFound] for
// an unknown barcode, [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/msavelyeva/nutrikeep/models"
)

// FoodDataProvider defines read-only access to a remote food database.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type FoodDataProvider interface {
	// LookupBarcode fetches the product identified by code. Returns
	// [ErrNotFound] (wrapped) when the database knows no such barcode.
	LookupBarcode(ctx context.Context, code string) (models.Product, error)

	// Search runs a full-text product search. page starts at 1.
	Search(ctx context.Context, query string, page int) ([]models.Product, error)
}
