package gateway

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured     = errors.New("AI gateway API key is not configured")
	ErrRateLimited       = errors.New("AI gateway rate limit exceeded")
	ErrCreditsDepleted   = errors.New("AI gateway credits depleted")
	ErrEmptyResponse     = errors.New("no response from AI")
	ErrMalformedResponse = errors.New("failed to parse AI response")
	ErrNoImage           = errors.New("no image generated")
)

// APIError is returned for any other non-2xx answer from the gateway.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("AI gateway returned status %d: %s", e.StatusCode, e.Body)
}
