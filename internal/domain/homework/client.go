package homework

import "context"

// Client defines an interface for querying the homework review API.
// This helps in decoupling the poll loop from the concrete HTTP transport.
type Client interface {
	// HomeworkStatuses returns status events newer than fromDate
	// (seconds since epoch).
	HomeworkStatuses(ctx context.Context, fromDate int64) (RawEnvelope, error)
}
