package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/segmentio/encoding/json"
)

// Upstream issues exactly one HTTP call per request. There is no retry and
// no timeout beyond what ctx carries.
type Upstream struct {
	client *http.Client
}

func NewUpstream(client *http.Client) *Upstream {
	return &Upstream{client: client}
}

// Call sends method to target, with body when it is non-nil, and returns the
// response payload. Transport errors, non-2xx statuses and bodies that are not
// JSON all end up as Failure.
func (u *Upstream) Call(ctx context.Context, method, target string, body []byte) Result {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return Failure(fmt.Errorf("build request: %w", err))
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return Failure(err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure(fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Failure(fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode))
	}

	if !json.Valid(payload) {
		return Failure(ErrUpstreamBody)
	}

	return Success(payload)
}
