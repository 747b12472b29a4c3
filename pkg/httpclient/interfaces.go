package httpclient

import (
	"context"
	"fmt"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// ReadError reports a response whose headers arrived but whose body could not be read.
type ReadError struct {
	StatusCode int
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read response body (status %d): %v", e.StatusCode, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
