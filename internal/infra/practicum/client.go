package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"
)

// The lineage of this poller relied on transport defaults and could block
// indefinitely on one request; a bounded timeout keeps the retry cadence alive.
const defaultTimeout = 30 * time.Second

// StatusError reports a reachable API answering with a non-success HTTP code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("homework statuses endpoint returned HTTP %d", e.Code)
}

// Client implements homework.Client against the Practicum homework-statuses API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// HomeworkStatuses queries the API for status events newer than fromDate.
// The body is decoded only as far as a generic JSON object; shape
// validation is the caller's concern (homework.CheckResponse).
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (homework.RawEnvelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build homework statuses request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	q := url.Values{}
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request homework statuses: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var raw homework.RawEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: response body is not a JSON object: %v", homework.ErrBadEnvelope, err)
	}
	return raw, nil
}
