package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchDateRelative(t *testing.T) {
	cases := []struct {
		text   string
		offset int
	}{
		{"今日", 0},
		{"きょうの夜", 0},
		{"today", 0},
		{"明日", 1},
		{"あした", 1},
		{"Tomorrow at 5", 1},
		{"明後日", 2},
		{"あさって", 2},
		{"day after tomorrow", 2},
		{"明々後日", 3},
		{"しあさって", 3},
	}
	for _, tc := range cases {
		f, ok := MatchDate(tc.text)
		require.True(t, ok, tc.text)
		require.True(t, f.Relative, tc.text)
		require.Equal(t, tc.offset, f.Offset, tc.text)
	}
}

func TestMatchDateAbsolute(t *testing.T) {
	cases := []struct {
		text             string
		year, month, day int
	}{
		{"2025/6/15", 2025, 6, 15},
		{"2025年6月15日", 2025, 6, 15},
		{"２０２５／６／１５", 2025, 6, 15},
		{"6/15", 0, 6, 15},
		{"6月15日", 0, 6, 15},
		{"６月１５日", 0, 6, 15},
		{"リマインド 12/31 お願い", 0, 12, 31},
	}
	for _, tc := range cases {
		f, ok := MatchDate(tc.text)
		require.True(t, ok, tc.text)
		require.False(t, f.Relative, tc.text)
		require.Equal(t, tc.year, f.Year, tc.text)
		require.Equal(t, tc.month, f.Month, tc.text)
		require.Equal(t, tc.day, f.Day, tc.text)
	}
}

func TestMatchDateFirstRuleWins(t *testing.T) {
	// relative keyword outranks the numeric form
	f, ok := MatchDate("明日 2025/6/15")
	require.True(t, ok)
	require.True(t, f.Relative)
	require.Equal(t, 1, f.Offset)
}

func TestMatchDateNotFound(t *testing.T) {
	for _, text := range []string{
		"",
		"買い物",
		"buy milk",
		"13/45",
		"9:00", // time, not a date
	} {
		_, ok := MatchDate(text)
		require.False(t, ok, text)
	}
}

func TestMatchDateIdempotent(t *testing.T) {
	first, ok1 := MatchDate("明後日")
	second, ok2 := MatchDate("明後日")
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, first, second)
}
