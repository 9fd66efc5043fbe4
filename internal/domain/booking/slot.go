package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	HoursPerDay   = 24
	minutesInHour = 60
)

var (
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidHour     = errors.New("invalid hour")
)

// Date is a calendar day without a time-of-day component.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) Time() time.Time    { return d.t }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) String() string     { return d.t.Format(DateLayout) }

// ParseHour extracts the hour from an "HH:MM" string; minutes are discarded.
// "24:00" is accepted so a slot can run to the end of the day.
func ParseHour(s string) (int, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute >= minutesInHour {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, s)
	}
	if hour < 0 || hour > HoursPerDay || (hour == HoursPerDay && minute != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, s)
	}
	return hour, nil
}

func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// TimeSlot is one requested or booked interval on a single day, in whole hours.
type TimeSlot struct {
	date      Date
	startHour int
	endHour   int
}

func NewTimeSlot(date Date, startHour, endHour int) (TimeSlot, error) {
	if date.IsZero() {
		return TimeSlot{}, fmt.Errorf("%w: date is required", ErrInvalidTimeSlot)
	}
	if startHour < 0 || endHour > HoursPerDay {
		return TimeSlot{}, fmt.Errorf("%w: hours must be within 00:00-24:00", ErrInvalidTimeSlot)
	}
	if endHour <= startHour {
		return TimeSlot{}, fmt.Errorf("%w: end %s must be after start %s",
			ErrInvalidTimeSlot, FormatHour(endHour), FormatHour(startHour))
	}
	return TimeSlot{date: date, startHour: startHour, endHour: endHour}, nil
}

// ParseTimeSlot builds a slot from the wire representation used by the booking widget.
func ParseTimeSlot(date, start, end string) (TimeSlot, error) {
	d, err := ParseDate(date)
	if err != nil {
		return TimeSlot{}, errors.Join(ErrInvalidTimeSlot, err)
	}
	startHour, err := ParseHour(start)
	if err != nil {
		return TimeSlot{}, errors.Join(ErrInvalidTimeSlot, err)
	}
	endHour, err := ParseHour(end)
	if err != nil {
		return TimeSlot{}, errors.Join(ErrInvalidTimeSlot, err)
	}
	return NewTimeSlot(d, startHour, endHour)
}

func (ts TimeSlot) Date() Date         { return ts.date }
func (ts TimeSlot) StartHour() int     { return ts.startHour }
func (ts TimeSlot) EndHour() int       { return ts.endHour }
func (ts TimeSlot) DurationHours() int { return ts.endHour - ts.startHour }

func (ts TimeSlot) TimeRange() string {
	return FormatHour(ts.startHour) + " - " + FormatHour(ts.endHour)
}

func (ts TimeSlot) String() string {
	return ts.date.String() + " " + ts.TimeRange()
}
