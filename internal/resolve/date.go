package resolve

import (
	"regexp"
	"strconv"
	"strings"
)

// DateFragment is a partially parsed calendar date: either a day offset
// relative to the reference instant, or an absolute year/month/day.
// Year 0 on an absolute fragment means the year was not written; the
// composer fills in the reference year and never rolls it forward.
type DateFragment struct {
	Relative bool
	Offset   int
	Year     int
	Month    int
	Day      int
}

type relativeDay struct {
	words  []string
	offset int
}

// Larger offsets first so "day after tomorrow" is not swallowed by the
// "tomorrow" family.
var relativeDays = []relativeDay{
	{[]string{"明々後日", "しあさって"}, 3},
	{[]string{"明後日", "あさって", "day after tomorrow"}, 2},
	{[]string{"明日", "あした", "tomorrow"}, 1},
	{[]string{"今日", "きょう", "today"}, 0},
}

var (
	ymdRx = regexp.MustCompile(`\b(\d{4})/(\d{1,2})/(\d{1,2})\b`)
	mdRx  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)
)

// MatchDate extracts the first date mention from text. Rules are tried
// in a fixed order and the first hit wins; multiple date mentions in one
// message are never merged.
func MatchDate(text string) (DateFragment, bool) {
	s := Normalize(text)

	for _, rel := range relativeDays {
		for _, w := range rel.words {
			if strings.Contains(s, w) {
				return DateFragment{Relative: true, Offset: rel.offset}, true
			}
		}
	}

	if m := ymdRx.FindStringSubmatch(s); m != nil {
		f := DateFragment{Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3])}
		if validMonthDay(f.Month, f.Day) {
			return f, true
		}
	}
	if m := mdRx.FindStringSubmatch(s); m != nil {
		f := DateFragment{Month: atoi(m[1]), Day: atoi(m[2])}
		if validMonthDay(f.Month, f.Day) {
			return f, true
		}
	}

	return DateFragment{}, false
}

func validMonthDay(month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// Operands are all regex-captured digit runs, so the error is ignored.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
