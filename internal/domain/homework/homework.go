package homework

import "encoding/json"

// RawEnvelope is the API response body decoded as a generic JSON object,
// before its shape has been validated.
type RawEnvelope map[string]json.RawMessage

// Envelope is a validated homework-statuses response.
type Envelope struct {
	CurrentDate int64
	Homeworks   []Record
}

// Record describes the review state of one submission. Pointer fields so
// that absent or null values are distinguishable from empty strings.
type Record struct {
	HomeworkName *string `json:"homework_name"`
	Status       *string `json:"status"`
}
