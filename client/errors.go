package client

import (
	"fmt"
	"net/http"
)

// TransportError is a network fault or a non-2xx response.
type TransportError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int // 0 when no response arrived
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s %s: %d %s", e.Op, e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// PayloadError means the API answered 2xx with a body the console cannot use.
type PayloadError struct {
	Op     string
	Reason string
	Err    error
}

func (e *PayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed response: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: malformed response: %s", e.Op, e.Reason)
}

func (e *PayloadError) Unwrap() error { return e.Err }
