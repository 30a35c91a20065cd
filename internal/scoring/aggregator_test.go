package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nedhal-be/internal/hijri"
	"nedhal-be/internal/models"
)

var aggStart = time.Date(2025, 3, 1, 0, 0, 0, 0, hijri.Zone)

func entry(email string, day int, hours, extra string) models.Entry {
	return models.Entry{
		Timestamp: aggStart.AddDate(0, 0, day).Add(20 * time.Hour),
		Email:     email,
		Hours:     hours,
		Extra:     extra,
	}
}

func TestAggregateConsecutiveDays(t *testing.T) {
	var entries []models.Entry
	for day := 0; day < 5; day++ {
		entries = append(entries, entry("reader@example.com", day, "0:20:00", ""))
	}

	stats, skipped := Aggregate(entries, aggStart, aggStart.AddDate(0, 0, 4))
	require.Len(t, stats, 1)
	assert.Zero(t, skipped)

	s := stats[0]
	assert.Equal(t, 5, s.CurrentStreak)
	assert.Equal(t, 5, s.MaxStreak)
	assert.Equal(t, 5, s.Streak)
	assert.InDelta(t, 100.0, s.TotalMinutes, 1e-9)
	// 23 + 23*1.15 + three days at 23*1.2, all inside the protected week.
	assert.InDelta(t, 132.25, s.TotalIdeas, 1e-9)
	assert.Zero(t, s.Subtraction)
	assert.Nil(t, s.DeserveDisqual)
}

func TestAggregateSameDayAccumulates(t *testing.T) {
	entries := []models.Entry{
		entry("reader@example.com", 0, "0:10:00", ""),
		entry("reader@example.com", 0, "0:10:00", ""),
	}

	stats, _ := Aggregate(entries, aggStart, aggStart)
	require.Len(t, stats, 1)

	s := stats[0]
	assert.Equal(t, 1, s.CurrentStreak)
	assert.InDelta(t, 20.0, s.DailyMinutes[aggStart.Format("2006-01-02")], 1e-9)
	// Each entry is scored on its own minutes, not the day's sum.
	assert.InDelta(t, 20.0, s.TotalIdeas, 1e-9)
}

func TestAggregateGapResetsStreak(t *testing.T) {
	entries := []models.Entry{
		entry("reader@example.com", 0, "0:20:00", ""),
		entry("reader@example.com", 2, "0:20:00", ""),
	}

	stats, _ := Aggregate(entries, aggStart, aggStart.AddDate(0, 0, 2))
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].CurrentStreak)
	assert.Equal(t, 1, stats[0].MaxStreak)
}

func TestAggregateSubThresholdDayDoesNotExtendStreak(t *testing.T) {
	entries := []models.Entry{
		entry("reader@example.com", 0, "0:02:00", ""),
		entry("reader@example.com", 1, "0:20:00", ""),
	}

	stats, _ := Aggregate(entries, aggStart, aggStart.AddDate(0, 0, 1))
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].CurrentStreak)
}

func TestAggregatePenaltyAfterProtectedWeek(t *testing.T) {
	// A single 20-minute entry on day 8. With "now" on the same day the
	// penalized days are 7 and 9 (tomorrow), so the 23 raw ideas drop to 3.
	entries := []models.Entry{entry("reader@example.com", 8, "0:20:00", "")}

	stats, _ := Aggregate(entries, aggStart, aggStart.AddDate(0, 0, 8))
	require.Len(t, stats, 1)

	s := stats[0]
	assert.InDelta(t, 20.0, s.Subtraction, 1e-9)
	assert.InDelta(t, 3.0, s.TotalIdeas, 1e-9)
	assert.InDelta(t, 23.0, s.TotalIdeas+s.Subtraction, 1e-9)
	assert.Equal(t, 0, s.Streak)

	require.NotNil(t, s.DeserveDisqual)
	assert.Equal(t, aggStart.AddDate(0, 0, 7).Format("2006-01-02"), *s.DeserveDisqual)
}

func TestAggregateIdeasFlooredAtZero(t *testing.T) {
	entries := []models.Entry{entry("reader@example.com", 0, "0:20:00", "")}

	stats, _ := Aggregate(entries, aggStart, aggStart.AddDate(0, 0, 10))
	require.Len(t, stats, 1)

	s := stats[0]
	// Days 7..11 all missed: 50 against 23 raw ideas floors at zero. The
	// subtraction overtakes the ideas on the third penalized day.
	assert.InDelta(t, 50.0, s.Subtraction, 1e-9)
	assert.Zero(t, s.TotalIdeas)
	require.NotNil(t, s.DeserveDisqual)
	assert.Equal(t, aggStart.AddDate(0, 0, 9).Format("2006-01-02"), *s.DeserveDisqual)
}

func TestAggregateBonusCountedSeparately(t *testing.T) {
	entries := []models.Entry{entry("reader@example.com", 0, "0:10:00", "مراجعة كتاب")}

	stats, _ := Aggregate(entries, aggStart, aggStart)
	require.Len(t, stats, 1)

	s := stats[0]
	assert.InDelta(t, 30.0, s.TotalIdeas, 1e-9)
	assert.InDelta(t, 20.0, s.ExtraIdeas, 1e-9)
}

func TestAggregateSkipsMalformedRows(t *testing.T) {
	entries := []models.Entry{
		entry("reader@example.com", 0, "garbage", ""),
		entry("other@example.com", 0, "0:10:00", ""),
	}

	stats, skipped := Aggregate(entries, aggStart, aggStart)
	assert.Equal(t, 1, skipped)
	require.Len(t, stats, 1)
	assert.Equal(t, "other@example.com", stats[0].Email)
}

func TestAggregateUnsortedInput(t *testing.T) {
	entries := []models.Entry{
		entry("reader@example.com", 1, "0:20:00", ""),
		entry("reader@example.com", 0, "0:20:00", ""),
	}

	stats, _ := Aggregate(entries, aggStart, aggStart.AddDate(0, 0, 1))
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].CurrentStreak)
}
