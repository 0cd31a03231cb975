package analytics

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/adanyl0v/quicktask-analytics/internal/models"
)

var (
	ErrMissingTimestamp     = errors.New("missing timestamp")
	ErrUnparseableTimestamp = errors.New("unparseable timestamp")
	ErrInvalidGroupBy       = errors.New("groupBy must be 'day' or 'week'")
)

type GroupBy string

const (
	GroupByDay  GroupBy = "day"
	GroupByWeek GroupBy = "week"
)

// ParseGroupBy accepts exactly "day" or "week". Callers substitute
// GroupByDay when the value was not supplied at all.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case GroupByDay:
		return GroupByDay, nil
	case GroupByWeek:
		return GroupByWeek, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGroupBy, s)
	}
}

const bucketKeyLayout = time.DateOnly

// Layouts with an explicit offset keep it, so the bucket follows the
// calendar date the timestamp was written in.
var offsetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04Z07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// NormalizeTimestamp converts any stored timestamp representation into a
// time.Time.
func NormalizeTimestamp(ts models.Timestamp) (time.Time, error) {
	switch ts.Kind {
	case models.TimestampAbsent:
		return time.Time{}, ErrMissingTimestamp
	case models.TimestampNative:
		return ts.Time.UTC(), nil
	case models.TimestampText:
		return parseTextTimestamp(ts.Text)
	case models.TimestampEpoch:
		return parseEpochTimestamp(ts.Epoch)
	default:
		return time.Time{}, ErrUnparseableTimestamp
	}
}

func parseTextTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingTimestamp
	}

	for _, layout := range offsetLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTimestamp, s)
}

// Epoch seconds of 0001-01-01T00:00:00Z and 9999-12-31T23:59:59Z.
const (
	minEpochSeconds = -62135596800
	maxEpochSeconds = 253402300799
)

func parseEpochTimestamp(seconds float64) (time.Time, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return time.Time{}, ErrUnparseableTimestamp
	}
	if seconds < minEpochSeconds || seconds >= maxEpochSeconds+1 {
		return time.Time{}, fmt.Errorf("%w: epoch %g out of range", ErrUnparseableTimestamp, seconds)
	}

	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC(), nil
}

// BucketKey returns the calendar date of t for GroupByDay, or the date of the
// Monday starting its ISO week for GroupByWeek.
func BucketKey(t time.Time, groupBy GroupBy) string {
	if groupBy == GroupByWeek {
		// time.Weekday starts on Sunday, ISO weeks on Monday.
		sinceMonday := (int(t.Weekday()) + 6) % 7
		t = t.AddDate(0, 0, -sinceMonday)
	}
	return t.Format(bucketKeyLayout)
}
