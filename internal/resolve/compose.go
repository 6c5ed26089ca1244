package resolve

import (
	"errors"
	"time"
)

var (
	// ErrNoMatch means the text carried neither a date nor a time.
	ErrNoMatch = errors.New("resolve: no date or time found")
	// ErrPastMoment means a moment was parsed but is not strictly after
	// the reference instant.
	ErrPastMoment = errors.New("resolve: moment is not in the future")
)

// Compose merges the two fragments against the reference instant into a
// concrete moment in ref's location. A date without a time defaults to
// 09:00. A time without a date means the next occurrence of that time.
// The result is always strictly after ref, otherwise ErrPastMoment.
func Compose(df *DateFragment, tf *TimeFragment, ref time.Time) (time.Time, error) {
	if df == nil && tf == nil {
		return time.Time{}, ErrNoMatch
	}

	year, month, day := ref.Date()
	if df != nil {
		if df.Relative {
			year, month, day = ref.AddDate(0, 0, df.Offset).Date()
		} else {
			if df.Year != 0 {
				year = df.Year
			}
			month = time.Month(df.Month)
			day = df.Day
		}
	}

	hour, minute := 9, 0
	if tf != nil {
		hour, minute = tf.Hour, tf.Minute
	}

	at := time.Date(year, month, day, hour, minute, 0, 0, ref.Location())

	if df == nil && !at.After(ref) {
		at = at.AddDate(0, 0, 1)
	}

	if !at.After(ref) {
		return time.Time{}, ErrPastMoment
	}
	return at, nil
}

// Resolve runs both matchers over text and composes their fragments.
func Resolve(text string, ref time.Time) (time.Time, error) {
	var df *DateFragment
	var tf *TimeFragment

	if f, ok := MatchDate(text); ok {
		df = &f
	}
	if f, ok := MatchTime(text, ref); ok {
		tf = &f
	}

	return Compose(df, tf, ref)
}
