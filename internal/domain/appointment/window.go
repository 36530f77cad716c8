package appointment

import (
	"regexp"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	DateLayout = "01/02/2006"
	TimeLayout = "3:04 PM"
)

var (
	dateRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/(0[1-9]|[12]\d|3[01])/\d{4}$`)
	timeRe = regexp.MustCompile(`^((0?[1-9])|(1[0-2])):[0-5][0-9] (AM|PM)$`)

	ErrInvalidDateTime = httperr.ValidationErr("invalid_date_or_time")
)

// Window is the slot an appointment occupies: [Start, End).
type Window struct {
	Date  string
	Time  string
	Start time.Time
	End   time.Time
}

func ValidDate(s string) bool {
	return dateRe.MatchString(s)
}

func ValidTime(s string) bool {
	return timeRe.MatchString(s)
}

// ParseDate parses an MM/DD/YYYY date at midnight in loc. Dates that do not
// exist in the calendar (02/30/2025) are rejected.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if !ValidDate(date) {
		return time.Time{}, ErrInvalidDateTime
	}
	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return d, nil
}

// ComputeWindow combines date (MM/DD/YYYY) and clock (hh:mm AM/PM) in loc.
func ComputeWindow(date, clock string, loc *time.Location) (Window, error) {
	if !ValidDate(date) || !ValidTime(clock) {
		return Window{}, ErrInvalidDateTime
	}

	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, loc)
	if err != nil {
		return Window{}, ErrInvalidDateTime
	}

	// A wall clock skipped by a DST jump is normalized by time; reject it
	// instead of storing a start that differs from the requested clock.
	wall, _ := time.Parse(DateLayout+" "+TimeLayout, date+" "+clock)
	if start.Day() != wall.Day() || start.Hour() != wall.Hour() || start.Minute() != wall.Minute() {
		return Window{}, ErrInvalidDateTime
	}

	return Window{
		Date:  date,
		Time:  clock,
		Start: start,
		End:   start.Add(models.AppointmentDuration),
	}, nil
}

// Overlaps uses half-open intervals; touching boundaries do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
