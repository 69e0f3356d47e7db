// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Savelyeva

// Package transfer serialises the full store into portable text formats and
// parses such payloads back. Two formats are supported: indented JSON of the
// whole [models.ExportBundle], and a multi-section flat CSV layout where
// nested records (daily logs, meals) are flattened into one row per food
// entry and re-grouped on decode.
//
// Decoding is fail-fast: a malformed payload returns [ErrMalformedPayload]
// before any part of the bundle is handed to the caller, so imports never
// write half-parsed data.
package transfer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/msavelyeva/nutrikeep/models"
)

// Format selects the wire representation of an export payload.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var (
	// ErrUnknownFormat is returned for format strings other than "json"
	// and "csv".
	ErrUnknownFormat = errors.New("unknown transfer format")

	// ErrMalformedPayload is returned when a payload cannot be parsed:
	// invalid JSON, an unknown CSV section, a header row that does not
	// match the expected columns, or an unparseable field value.
	ErrMalformedPayload = errors.New("malformed transfer payload")
)

// ParseFormat maps a user-supplied format name to a [Format],
// case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode serialises bundle into the requested format. Sections absent from
// the bundle are omitted from the output. The CSV layout has no section for
// the product cache; see encodeCSV.
func Encode(bundle models.ExportBundle, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(bundle)
	case FormatCSV:
		return encodeCSV(bundle)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode parses a payload previously produced by [Encode] (or a compatible
// hand-written file) back into a bundle. Sections missing from the payload
// stay zero in the result.
func Decode(data []byte, format Format) (models.ExportBundle, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatCSV:
		return decodeCSV(data)
	default:
		return models.ExportBundle{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
