package homework

import "fmt"

// Verdicts maps each documented review status to its fixed verdict
// sentence. Never mutated at runtime.
var Verdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// ParseStatus maps one record to its notification text. ok is false with a
// nil error when the record carries no status yet — the normal "nothing to
// report" outcome, not a failure.
func ParseStatus(rec Record) (msg string, ok bool, err error) {
	if rec.Status == nil {
		return "", false, nil
	}
	verdict, known := Verdicts[*rec.Status]
	if !known {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownStatus, *rec.Status)
	}
	if rec.HomeworkName == nil {
		return "", false, fmt.Errorf("%w: %q", ErrMissingField, "homework_name")
	}
	return fmt.Sprintf("Status of review for %q changed. %s", *rec.HomeworkName, verdict), true, nil
}
