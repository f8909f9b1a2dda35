package joke

import "fmt"

// NetworkError means no response was received at all.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("joke: request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError means the service answered with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       string // first bytes of the response body, for diagnostics
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("joke: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("joke: unexpected status %d: %s", e.StatusCode, e.Body)
}

// ParseError means the body could not be turned into a Joke.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("joke: parse response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
