package homework

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestParseStatusKnownVerdicts(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{"approved", `Status of review for "Project X" changed. Работа проверена: ревьюеру всё понравилось. Ура!`},
		{"reviewing", `Status of review for "Project X" changed. Работа взята на проверку ревьюером.`},
		{"rejected", `Status of review for "Project X" changed. Работа проверена: у ревьюера есть замечания.`},
	}
	for _, tc := range cases {
		rec := Record{HomeworkName: strPtr("Project X"), Status: strPtr(tc.status)}
		msg, ok, err := ParseStatus(rec)
		if err != nil {
			t.Fatalf("ParseStatus(%s): unexpected error: %v", tc.status, err)
		}
		if !ok {
			t.Fatalf("ParseStatus(%s): expected a notification", tc.status)
		}
		if msg != tc.want {
			t.Fatalf("ParseStatus(%s):\n got %q\nwant %q", tc.status, msg, tc.want)
		}
	}
}

func TestParseStatusAbsentStatusIsBenign(t *testing.T) {
	msg, ok, err := ParseStatus(Record{HomeworkName: strPtr("Lab 1")})
	if err != nil {
		t.Fatalf("expected no error for absent status, got %v", err)
	}
	if ok || msg != "" {
		t.Fatalf("expected no notification for absent status, got ok=%v msg=%q", ok, msg)
	}
}

func TestParseStatusUnknownStatus(t *testing.T) {
	_, _, err := ParseStatus(Record{HomeworkName: strPtr("Lab 1"), Status: strPtr("archived")})
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestParseStatusMissingHomeworkName(t *testing.T) {
	_, _, err := ParseStatus(Record{Status: strPtr("approved")})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}
