package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// timeLayout формат времени HH:MM (24 часа)
const timeLayout = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время дня в формате "HH:MM" (например, "09:30").
// Используется как идентификатор слота: слот идентифицируется временем своего начала.
// Значения сравниваются лексикографически, что для формата HH:MM совпадает
// с хронологическим порядком.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString.
// Также принимает форму "HH:MM:SS" и отбрасывает секунды - разные ревизии
// удалённого документа хранят время по-разному.
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	// Форма с секундами: "HH:MM:SS" -> "HH:MM"
	if len(s) == 8 && strings.Count(s, ":") == 2 {
		s = s[:5]
	}

	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return TimeString(s), nil
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// AddMinutes возвращает время через minutes минут.
// Возвращает ошибку, если исходное значение некорректно или результат
// выходит за пределы суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	result := parsed.Add(time.Duration(minutes) * time.Minute)

	// Переход через полночь считаем ошибкой: слоты не пересекают границу суток
	if result.Day() != parsed.Day() {
		return "", fmt.Errorf("%w: %q + %d minutes crosses midnight", ErrInvalidTimeString, string(t), minutes)
	}

	return TimeString(result.Format(timeLayout)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
