package reservation

import (
	"errors"
	"time"
)

var ErrInvalidTimeRange = errors.New("start time must be strictly before end time")

// Timestamp layouts accepted on the wire, in order of preference.
// The store persists second precision, so fractional seconds are not accepted.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

const WireTimeLayout = "2006-01-02 15:04:05"

// TimeRange is a half-open interval [start, end).
type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

// ParseTimeRange builds a TimeRange from wire timestamps.
// Any parse failure or an inverted/empty range yields ErrInvalidTimeRange.
func ParseTimeRange(startStr, endStr string) (TimeRange, error) {
	start, err := parseTimestamp(startStr)
	if err != nil {
		return TimeRange{}, ErrInvalidTimeRange
	}
	end, err := parseTimestamp(endStr)
	if err != nil {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return NewTimeRange(start, end)
}

func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (r TimeRange) Start() time.Time        { return r.start }
func (r TimeRange) End() time.Time          { return r.end }
func (r TimeRange) Duration() time.Duration { return r.end.Sub(r.start) }

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints ([8,12) vs [12,16)) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && r.end.After(other.start)
}

func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && t.Before(r.end)
}

// SlotWindow is one of the fixed daily booking windows. The engine itself
// accepts arbitrary ranges; these are a presentation convention for clients
// projecting reservations onto the daily grid.
type SlotWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func DailySlotWindows() []SlotWindow {
	return []SlotWindow{
		{Start: "08:00", End: "12:00"},
		{Start: "12:00", End: "16:00"},
		{Start: "16:00", End: "20:00"},
	}
}
