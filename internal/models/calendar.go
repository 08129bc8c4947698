package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	minutesPerDay   = 24 * 60
	timeOfDayLayout = "%02d:%02d"
)

// Date представляет календарный день без времени суток.
// Хранится как полночь UTC, в БД и JSON передается в формате YYYY-MM-DD.
type Date struct {
	t time.Time
}

// NewDate создает дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf возвращает календарный день момента t в его часовом поясе
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate разбирает дату в формате YYYY-MM-DD.
// Допускается хвост со временем (например, 2024-01-02T00:00:00Z).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// AddDays возвращает дату, сдвинутую на n дней
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil возвращает количество дней от d до other
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// Time возвращает полночь UTC этого дня
func (d Date) Time() time.Time { return d.t }

// Weekday возвращает день недели
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// IsZero сообщает, задана ли дата
func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format(dateLayout) }

// MarshalJSON реализует json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON реализует json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan реализует sql.Scanner. Драйверы возвращают DATE как time.Time либо как строку.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		*d = Date{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// TimeOfDay хранит время суток в минутах от полуночи, [0, 1440)
type TimeOfDay int

// NewTimeOfDay создает время суток; значения за пределами суток заворачиваются по модулю 24 часов
func NewTimeOfDay(hour, minute int) TimeOfDay {
	total := (hour*60 + minute) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return TimeOfDay(total)
}

// ParseTimeOfDay разбирает время в формате HH:MM или HH:MM:SS
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	s = strings.TrimSpace(s)
	var err error
	if strings.Count(s, ":") == 2 {
		_, err = fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec)
	} else {
		_, err = fmt.Sscanf(s, "%d:%d", &h, &m)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return NewTimeOfDay(h, m), nil
}

// Hour возвращает час
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute возвращает минуту часа
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf(timeOfDayLayout, t.Hour(), t.Minute())
}

// MarshalJSON реализует json.Marshaler
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON реализует json.Unmarshaler
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String() + ":00", nil
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimeOfDay(v.Hour(), v.Minute())
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	}
	return fmt.Errorf("cannot scan %T into TimeOfDay", src)
}
