package suggestion

import "errors"

var (
	// ErrSuggestion covers failures of the generative model: network, quota,
	// timeouts and output that does not match the requested schema.
	ErrSuggestion = errors.New("suggestion service failed")

	ErrInvalidRequest = errors.New("invalid suggestion request")
	ErrDisabled       = errors.New("suggestions are not configured")
)
