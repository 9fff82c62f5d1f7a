package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// Seasons accepted as the first half of a semester key.
const (
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
)

// Semester is the (season, year) pair stored canonically as "Fall 2024".
type Semester struct {
	Season string `json:"season"`
	Year   int    `json:"year"`
}

// ParseSemester parses the canonical "<Season> <Year>" form.
func ParseSemester(raw string) (Semester, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), " ", 2)
	if len(parts) != 2 {
		return Semester{}, fmt.Errorf("malformed semester %q", raw)
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Semester{}, fmt.Errorf("malformed semester year %q", raw)
	}
	s := Semester{Season: parts[0], Year: year}
	if err := s.Validate(); err != nil {
		return Semester{}, err
	}
	return s, nil
}

// Validate checks the season name and year range.
func (s Semester) Validate() error {
	switch s.Season {
	case SeasonSpring, SeasonSummer, SeasonFall:
	default:
		return fmt.Errorf("unknown season %q", s.Season)
	}
	if s.Year < 1900 || s.Year > 9999 {
		return fmt.Errorf("semester year %d out of range", s.Year)
	}
	return nil
}

// String renders the canonical key.
func (s Semester) String() string {
	return s.Season + " " + strconv.Itoa(s.Year)
}

// Value implements driver.Valuer.
func (s Semester) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner.
func (s *Semester) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan semester: unsupported type %T", src)
	}
	parsed, err := ParseSemester(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
