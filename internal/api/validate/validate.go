package validate

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"

	"github.com/baharkarakas/exercise-tracker/internal/apperr"
	"github.com/baharkarakas/exercise-tracker/internal/models"
)

// RawExercise is an exercise as it arrives from a request body.
type RawExercise struct {
	Description string
	Duration    string
	Date        string
}

// ExerciseInput is a checked exercise, ready to be stored.
type ExerciseInput struct {
	description string
	duration    int
	date        models.Date
}

func (in ExerciseInput) Description() string { return in.description }
func (in ExerciseInput) Duration() int       { return in.duration }
func (in ExerciseInput) Date() models.Date   { return in.date }

// Exercise checks raw in order: required fields, duration, date. A missing
// date becomes today.
func Exercise(raw RawExercise, today models.Date) (ExerciseInput, error) {
	if !Required(raw.Description) || !Required(raw.Duration) {
		return ExerciseInput{}, apperr.ErrExerciseFields
	}
	dur, ok := ParseIntPrefix(raw.Duration)
	if !ok {
		return ExerciseInput{}, apperr.ErrDurationNotANumber
	}
	date := today
	if Required(raw.Date) {
		if date, ok = ParseDate(raw.Date); !ok {
			return ExerciseInput{}, apperr.ErrInvalidDate
		}
	}
	return ExerciseInput{description: raw.Description, duration: dur, date: date}, nil
}

// Required reports whether a field was supplied. Whitespace counts as supplied.
func Required(value string) bool { return value != "" }

// ParseIntPrefix reads the integer at the start of s the way a lenient
// string-to-int coercion does: leading whitespace and a sign are skipped, a
// 0x prefix switches to hex, and parsing stops at the first non-digit.
// "45abc" is 45, "abc" fails, and so does a value that overflows int.
func ParseIntPrefix(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, isSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], base, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return int(n), true
}

func isSpace(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' }

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		return true
	}
	return false
}

// dateLayouts are tried in order; the first that parses wins. The calendar day
// is taken as written, whatever zone offset the value carries.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-1-2",
	"2006-01",
	"2006",
	"Mon Jan 2 2006",
	"Mon Jan 2 2006 15:04:05 GMT-0700",
	"Jan 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006 15:04:05",
	"Jan 2, 2006 15:04:05",
	"January 2 2006",
	"January 2, 2006",
	"Monday, January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"1/2/2006",
	"2006/1/2",
	"2006/1/2 15:04",
	"2006/1/2 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
	time.UnixDate,
}

// ParseDate accepts ISO dates and the common human-readable forms, including
// the form dates are rendered in and the one JS Date.toString produces. Forms
// outside the layout list go through dateparse, read in UTC so a zone-less
// value keeps its written day.
func ParseDate(s string) (models.Date, bool) {
	s = strings.TrimSpace(s)
	// "... GMT+0000 (Coordinated Universal Time)"
	if i := strings.LastIndex(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}
	if s == "" {
		return models.Date{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.DateOf(t), true
		}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return models.Date{}, false
	}
	return models.DateOf(t), true
}
