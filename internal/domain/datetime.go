package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidDatetime возвращается при нераспознанной строке даты-времени
var ErrInvalidDatetime = errors.New("invalid datetime string")

// SplitDatetime разбирает ISO-подобную строку "YYYY-MM-DDTHH:MM[:SS]"
// (разделитель 'T' или пробел) на дату и время.
//
// Разбор выполняется срезами строки, а не time.Parse: провайдер ожидает
// локальные для компании дату и время, и конвертация через time.Time
// сдвигала бы их при несовпадении часовых поясов. Это осознанное решение
func SplitDatetime(s string) (date string, timeOfDay string, err error) {
	if len(s) < 16 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDatetime, s)
	}
	if s[4] != '-' || s[7] != '-' || (s[10] != 'T' && s[10] != ' ') || s[13] != ':' {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDatetime, s)
	}
	return s[:10], s[11:16], nil
}
