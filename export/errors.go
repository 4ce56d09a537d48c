// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrNilGraph is returned when a nil graph is written.
	ErrNilGraph = errors.New("export: graph is nil")
	// ErrNilResult is returned when a nil result is reported.
	ErrNilResult = errors.New("export: result is nil")
	// ErrMalformedGML is returned by ReadGML on input it cannot parse.
	ErrMalformedGML = errors.New("export: malformed GML")
	// ErrUnknownFormat is returned for an unsupported report format.
	ErrUnknownFormat = errors.New("export: unknown report format")
)
