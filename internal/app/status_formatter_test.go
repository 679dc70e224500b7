package app

import (
	"errors"
	"testing"

	"homework_status_bot/internal/domain/homework"
)

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		rec  homework.Record
		want string
	}{
		{
			homework.Record{Name: "hw1", Status: homework.StatusApproved},
			`Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			homework.Record{Name: "hw1", Status: homework.StatusReviewing},
			`Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`,
		},
		{
			homework.Record{Name: `user__"final".zip`, Status: homework.StatusRejected},
			`Изменился статус проверки работы "user__"final".zip". Работа проверена: у ревьюера есть замечания.`,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.rec.Status), func(t *testing.T) {
			got, err := FormatStatus(tt.rec)
			if err != nil {
				t.Fatalf("FormatStatus() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatStatusUnknown(t *testing.T) {
	for _, status := range []homework.Status{"", "weird", "APPROVED", "approved "} {
		_, err := FormatStatus(homework.Record{Name: "hw", Status: status})
		if !errors.Is(err, homework.ErrUnknownStatus) {
			t.Errorf("FormatStatus(%q) error = %v, want ErrUnknownStatus", status, err)
		}
	}
}

func TestFormatValidatedPayload(t *testing.T) {
	rec, err := CheckResponse(decode(t, `{"homeworks":[{"homework_name":"hw1","status":"approved"}]}`))
	if err != nil {
		t.Fatalf("CheckResponse() error = %v", err)
	}
	got, err := FormatStatus(rec)
	if err != nil {
		t.Fatalf("FormatStatus() error = %v", err)
	}
	want := `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
