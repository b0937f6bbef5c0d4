package homework

import (
	"encoding/json"
	"fmt"
)

// CheckResponse validates the envelope shape and extracts the typed
// envelope. Both the "homeworks" and "current_date" keys must actually be
// present in the mapping, and "homeworks" must be a JSON array. Record
// order is preserved: the feed is chronological and index 0 is the newest
// entry.
func CheckResponse(raw RawEnvelope) (*Envelope, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrBadEnvelope)
	}
	rawHomeworks, ok := raw["homeworks"]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrBadEnvelope, "homeworks")
	}
	rawDate, ok := raw["current_date"]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q key", ErrBadEnvelope, "current_date")
	}

	// json.Unmarshal accepts null for a slice target; null is not a list.
	if string(rawHomeworks) == "null" {
		return nil, fmt.Errorf("%w: %q is null", ErrBadEnvelope, "homeworks")
	}
	var homeworks []Record
	if err := json.Unmarshal(rawHomeworks, &homeworks); err != nil {
		return nil, fmt.Errorf("%w: %q is not a list: %v", ErrBadEnvelope, "homeworks", err)
	}

	var currentDate int64
	if err := json.Unmarshal(rawDate, &currentDate); err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer timestamp: %v", ErrBadEnvelope, "current_date", err)
	}

	return &Envelope{CurrentDate: currentDate, Homeworks: homeworks}, nil
}
