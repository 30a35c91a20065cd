package hijri

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHijriKnownDate(t *testing.T) {
	// 1 Muharram 1446 fell on 7 July 2024 in the Umm al-Qura calendar.
	d, err := ToHijri(time.Date(2024, 7, 7, 12, 0, 0, 0, Zone))
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 1446, Month: 1, Day: 1}, d)
}

func TestToHijriConsistentAcrossUTCMidnight(t *testing.T) {
	// 01:00 AST is still the previous day in UTC; both instants are the same
	// civil day in the canonical zone and must convert identically.
	early := time.Date(2024, 7, 7, 1, 0, 0, 0, Zone)
	late := time.Date(2024, 7, 7, 23, 0, 0, 0, Zone)

	a, err := ToHijri(early)
	require.NoError(t, err)
	b, err := ToHijri(late)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestToGregorianRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 7, 13, 0, 0, 0, 0, Zone),
		time.Date(2025, 3, 1, 0, 0, 0, 0, Zone),
		time.Date(2026, 11, 20, 0, 0, 0, 0, Zone),
	}

	for _, want := range dates {
		h, err := ToHijri(want)
		require.NoError(t, err)

		got, err := ToGregorian(h.Year, h.Month, h.Day)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "round trip of %s gave %s", want, got)
	}
}

func TestToGregorianNotFound(t *testing.T) {
	// 1300 AH is far before the search window.
	_, err := ToGregorian(1300, 1, 1)
	assert.ErrorIs(t, err, ErrConversionNotFound)
}

func TestFirstSaturdayWithinFirstWeek(t *testing.T) {
	for month := 1; month <= 12; month++ {
		day, err := FirstSaturday(1446, month)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, day, 1)
		assert.LessOrEqual(t, day, 7, "month %d", month)

		g, err := ToGregorian(1446, month, day)
		require.NoError(t, err)
		assert.Equal(t, time.Saturday, g.Weekday(), "month %d", month)
	}
}

func TestFirstSaturdayInvalidArguments(t *testing.T) {
	_, err := FirstSaturday(0, 1)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = FirstSaturday(1446, 0)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = FirstSaturday(1446, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
