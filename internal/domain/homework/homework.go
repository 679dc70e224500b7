// internal/domain/homework/homework.go
package homework

import "context"

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the user-facing text for the status.
func (s Status) Verdict() (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Record is the most recent homework entry taken from an API response.
type Record struct {
	Name   string
	Status Status
}

// Fetcher retrieves the raw homework status payload changed since fromDate (unix seconds).
type Fetcher interface {
	FetchStatuses(ctx context.Context, fromDate int64) (any, error)
}
