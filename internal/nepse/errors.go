package nepse

import "errors"

var (
	// ErrSymbolNotFound is returned when a requested symbol is not present
	// in the exchange's security list.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrMalformedData is returned when the upstream responds with a body
	// that cannot be decoded into the expected shape.
	ErrMalformedData = errors.New("malformed upstream data")
)
