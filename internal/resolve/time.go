package resolve

import (
	"regexp"
	"strings"
	"time"
)

// TimeFragment is a clock time extracted from text, already folded to
// 24-hour form.
type TimeFragment struct {
	Hour   int
	Minute int
}

var (
	clockMeridiemRx = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)\b`)
	clockRx         = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	hourMeridiemRx  = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	hourKanjiRx     = regexp.MustCompile(`(\d{1,2})時(間)?`)
	inMinutesRx     = regexp.MustCompile(`\bin (\d+) min(?:ute)?s?\b|(\d+)分後`)
	inHoursRx       = regexp.MustCompile(`\bin (\d+) hours?\b|(\d+)時間後`)
)

// MatchTime extracts the first clock time from text. A bare 1-2 digit
// number is never a time: every rule requires an explicit marker
// (colon, meridiem, 時, or a relative offset phrase). Relative offsets
// need ref and are resolved with duration addition, so "in 90 minutes"
// carries the hour overflow instead of leaving minute > 59.
func MatchTime(text string, ref time.Time) (TimeFragment, bool) {
	s := Normalize(text)

	switch {
	case strings.Contains(s, "midnight") || strings.Contains(s, "真夜中"):
		return TimeFragment{Hour: 0, Minute: 0}, true
	case strings.Contains(s, "noon") || strings.Contains(s, "正午"):
		return TimeFragment{Hour: 12, Minute: 0}, true
	}

	if m := clockMeridiemRx.FindStringSubmatch(s); m != nil {
		h, min := atoi(m[1]), atoi(m[2])
		if h <= 12 && min <= 59 {
			return TimeFragment{Hour: meridiem(h, m[3]), Minute: min}, true
		}
	}
	if m := clockRx.FindStringSubmatch(s); m != nil {
		h, min := atoi(m[1]), atoi(m[2])
		if h <= 23 && min <= 59 {
			return TimeFragment{Hour: h, Minute: min}, true
		}
	}
	if m := hourMeridiemRx.FindStringSubmatch(s); m != nil {
		if h := atoi(m[1]); h <= 12 {
			return TimeFragment{Hour: meridiem(h, m[2]), Minute: 0}, true
		}
	}
	for _, m := range hourKanjiRx.FindAllStringSubmatch(s, -1) {
		if m[2] != "" {
			// N時間後 is a relative offset, not a clock hour
			continue
		}
		if h := atoi(m[1]); h <= 23 {
			return TimeFragment{Hour: h, Minute: 0}, true
		}
	}
	if n, ok := firstNumber(inMinutesRx, s); ok {
		at := ref.Add(time.Duration(n) * time.Minute)
		return TimeFragment{Hour: at.Hour(), Minute: at.Minute()}, true
	}
	if n, ok := firstNumber(inHoursRx, s); ok {
		at := ref.Add(time.Duration(n) * time.Hour)
		return TimeFragment{Hour: at.Hour(), Minute: at.Minute()}, true
	}

	return TimeFragment{}, false
}

// meridiem folds a 12-hour clock hour: 12am becomes 0, pm hours below
// 12 gain 12, so 12pm stays 12.
func meridiem(hour int, marker string) int {
	hour %= 12
	if marker == "pm" {
		hour += 12
	}
	return hour
}

// firstNumber returns whichever alternation group captured digits.
func firstNumber(rx *regexp.Regexp, s string) (int, bool) {
	m := rx.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	for _, g := range m[1:] {
		if g != "" {
			return atoi(g), true
		}
	}
	return 0, false
}
