// internal/app/response_validator.go
package app

import (
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

// CheckResponse validates a raw API payload and returns its first homework
// record. The API lists submissions newest first, so only the first entry
// is ever looked at.
func CheckResponse(raw any) (homework.Record, error) {
	resp, ok := raw.(map[string]any)
	if !ok {
		return homework.Record{}, homework.NewError(homework.KindShape, "Ответ API не является словарем")
	}

	field, ok := resp["homeworks"]
	if !ok {
		return homework.Record{}, homework.NewError(homework.KindMissingField, `Отсутствует ключ "homeworks" в ответе API`)
	}

	homeworks, ok := field.([]any)
	if !ok {
		return homework.Record{}, homework.NewError(homework.KindShape, `Ответ "homeworks" данные не в виде списка`)
	}
	if len(homeworks) == 0 {
		return homework.Record{}, homework.NewError(homework.KindEmptyResult, "Список домашних работ пуст")
	}

	return parseRecord(homeworks[0])
}

func parseRecord(entry any) (homework.Record, error) {
	m, ok := entry.(map[string]any)
	if !ok {
		return homework.Record{}, homework.NewError(homework.KindShape, "Домашняя работа в ответе API не является словарем")
	}

	name, ok := m["homework_name"]
	if !ok {
		return homework.Record{}, missingKey("homework_name")
	}
	status, ok := m["status"]
	if !ok {
		return homework.Record{}, missingKey("status")
	}

	// Any status outside the verdict table, whatever its JSON type, is unknown.
	s, ok := status.(string)
	if !ok {
		return homework.Record{}, unknownStatus(status)
	}
	rec := homework.Record{Name: fmt.Sprint(name), Status: homework.Status(s)}
	if _, ok := rec.Status.Verdict(); !ok {
		return homework.Record{}, unknownStatus(rec.Status)
	}
	return rec, nil
}

func missingKey(key string) error {
	return homework.NewError(homework.KindMissingField, "Отсутствует ключ %q в ответе API", key)
}
