package book_appointment

import (
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-DentalCareService/internal/domain"
	"github.com/m04kA/SMC-DentalCareService/pkg/types"
)

// emailPattern синтаксис local-part@domain.tld:
// буквы/цифры/_.+- в локальной части, метки домена из букв/цифр/дефисов через точки
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// validateEmail проверяет синтаксис адреса электронной почты
func validateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return &ValidationError{
			Field:   "email",
			Message: "invalid email format",
		}
	}
	return nil
}

// parseDate разбирает дату бронирования (M/D/YYYY).
// Ошибка разбора фатальна для попытки — повторный ввод не предлагается
func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:   "date",
			Message: "invalid date format, expected M/D/YYYY",
		}
	}
	return date, nil
}

// parseTime разбирает время бронирования (h:mm AM/PM)
func parseTime(s string) (types.ClockTime, error) {
	clock, err := types.ParseClockTime(s)
	if err != nil {
		return "", &ValidationError{
			Field:   "time",
			Message: "invalid time format, expected h:mm AM/PM",
		}
	}
	return clock, nil
}
