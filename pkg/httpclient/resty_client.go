package httpclient

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient with the specified timeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(timeout)}
}

// NewRestyHTTPClient exposes a configured resty.Client for callers needing custom verbs.
func NewRestyHTTPClient(timeout time.Duration) *resty.Client {
	return newRestyBaseClient(timeout)
}

func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	return c
}

// Get performs an HTTP GET request with the specified context, URL, and headers.
// The body is read by the adapter so read failures surface as *ReadError,
// separate from transport errors.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}

	raw := resp.RawBody()
	if raw == nil {
		return &bufferedResponse{status: resp.StatusCode()}, nil
	}
	defer raw.Close()

	body, err := io.ReadAll(raw)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Join(ctxErr, err)
		}
		return nil, &ReadError{StatusCode: resp.StatusCode(), Err: err}
	}
	return &bufferedResponse{status: resp.StatusCode(), body: body}, nil
}

// bufferedResponse holds a fully read response.
type bufferedResponse struct {
	status int
	body   []byte
}

func (r *bufferedResponse) Body() []byte    { return r.body }
func (r *bufferedResponse) StatusCode() int { return r.status }
