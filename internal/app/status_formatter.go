package app

import (
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

// FormatStatus renders the chat message announcing a review status change.
func FormatStatus(rec homework.Record) (string, error) {
	verdict, ok := rec.Status.Verdict()
	if !ok {
		return "", unknownStatus(rec.Status)
	}
	return fmt.Sprintf(`Изменился статус проверки работы "%s". %s`, rec.Name, verdict), nil
}

func unknownStatus(status any) error {
	return homework.NewError(homework.KindUnknownStatus, "Неожиданный статус работы: %v", status)
}
