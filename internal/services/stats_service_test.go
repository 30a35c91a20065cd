package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nedhal-be/internal/hijri"
	"nedhal-be/internal/models"
)

const firstSeason = "محرم 1446"

// Two participants inside the first season: Alice reads an hour on the 14th,
// Bob twenty minutes on kickoff day only.
func newStatsFixture(t *testing.T) *StatsService {
	t.Helper()

	entries := []models.Entry{
		{Timestamp: time.Date(2024, 7, 14, 20, 0, 0, 0, hijri.Zone), Email: "alice@example.com", Hours: "1:00:00"},
		{Timestamp: time.Date(2024, 7, 13, 21, 0, 0, 0, hijri.Zone), Email: "bob@example.com", Hours: "0:20:00"},
	}

	store := NewDataStore()
	store.Set(entries, nil, time.Now())
	return NewStatsService(store)
}

func TestLeaderboardRanksByIdeas(t *testing.T) {
	svc := newStatsFixture(t)
	now := time.Date(2024, 7, 16, 12, 0, 0, 0, hijri.Zone)

	lb, err := svc.Leaderboard(firstSeason, now)
	require.NoError(t, err)
	assert.Equal(t, firstSeason, lb.Season)
	assert.Zero(t, lb.SkippedRows)

	require.Len(t, lb.Participants, 2)
	assert.Equal(t, "Alice", lb.Participants[0].Name)
	assert.InDelta(t, 72.0, lb.Participants[0].TotalIdeas, 1e-9)
	assert.Equal(t, "Bob", lb.Participants[1].Name)
	assert.InDelta(t, 23.0, lb.Participants[1].TotalIdeas, 1e-9)

	// Nobody read yesterday, so no live streaks to rank.
	assert.Empty(t, lb.StreakBoard)
}

func TestLeaderboardAcceptsVariantSpelling(t *testing.T) {
	entries := []models.Entry{
		{Timestamp: time.Date(2024, 9, 20, 20, 0, 0, 0, hijri.Zone), Email: "alice@example.com", Hours: "0:30:00"},
	}
	store := NewDataStore()
	store.Set(entries, nil, time.Now())
	svc := NewStatsService(store)

	// Hamza-dropped spelling of ربيع الأول must hit the same data as the
	// canonical label.
	now := time.Date(2024, 9, 21, 12, 0, 0, 0, hijri.Zone)
	lb, err := svc.Leaderboard("ربيع الاول 1446", now)
	require.NoError(t, err)
	assert.Equal(t, "ربيع الأول 1446", lb.Season)
	require.Len(t, lb.Participants, 1)
	assert.Equal(t, "Alice", lb.Participants[0].Name)
}

func TestCountdown(t *testing.T) {
	svc := newStatsFixture(t)
	now := time.Date(2024, 7, 16, 0, 0, 0, 0, hijri.Zone)

	rows, err := svc.Countdown(firstSeason, now)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ascending by ideas: Bob first.
	assert.Equal(t, "Bob", rows[0].Name)
	assert.Equal(t, "danger", rows[0].Status)
	// ceil(23/10)=3 days, lifted to the end of the protected week (4 days out).
	assert.Equal(t, 4, rows[0].DaysRemaining)

	assert.Equal(t, "Alice", rows[1].Name)
	assert.Equal(t, "safe", rows[1].Status)
	assert.Equal(t, 8, rows[1].DaysRemaining)
}

func TestExpelledInWeekThree(t *testing.T) {
	svc := newStatsFixture(t)
	now := time.Date(2024, 7, 28, 12, 0, 0, 0, hijri.Zone)

	rows, err := svc.Expelled(firstSeason, now)
	require.NoError(t, err)

	byName := make(map[string]models.ExpelledRow)
	for _, r := range rows {
		byName[r.Name] = r
	}

	// Bob's 23 ideas were drained days ago.
	bob, ok := byName["Bob"]
	require.True(t, ok)
	assert.Equal(t, reasonZeroIdeas, bob.Reason)
	// Bob's 23 ideas fall below the subtraction on the third penalized day.
	assert.Equal(t, "2024-07-22", bob.ExpulsionDate)
}

func TestRecords(t *testing.T) {
	svc := newStatsFixture(t)
	now := time.Date(2024, 7, 16, 0, 0, 0, 0, hijri.Zone)

	rec, err := svc.Records(firstSeason, now)
	require.NoError(t, err)

	require.NotEmpty(t, rec.TopSingleDayMinutes)
	assert.Equal(t, 1, rec.TopSingleDayMinutes[0].Rank)
	assert.Equal(t, "Alice", rec.TopSingleDayMinutes[0].Name)
	assert.InDelta(t, 60.0, rec.TopSingleDayMinutes[0].Value, 1e-9)

	require.Len(t, rec.TopIdeas, 2)
	assert.Equal(t, "Alice", rec.TopIdeas[0].Name)
}

func TestSeasonsAndComparison(t *testing.T) {
	svc := newStatsFixture(t)
	now := time.Date(2024, 7, 16, 0, 0, 0, 0, hijri.Zone)

	infos, err := svc.Seasons(now)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, 1, infos[0].ID)
	assert.Equal(t, firstSeason, infos[0].Label)
	assert.Equal(t, "2024-07-13", infos[0].StartDate)

	comps, err := svc.Comparison(now)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, firstSeason, comps[0].Season)
	assert.Equal(t, 2, comps[0].Participants)
	assert.InDelta(t, 95.0, comps[0].TotalIdeas, 1e-9)
	assert.InDelta(t, 80.0, comps[0].TotalMinutes, 1e-9)
}

func TestParticipantNames(t *testing.T) {
	svc := newStatsFixture(t)
	now := time.Date(2024, 7, 16, 0, 0, 0, 0, hijri.Zone)

	names, err := svc.ParticipantNames(firstSeason, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestParticipantDetail(t *testing.T) {
	svc := newStatsFixture(t)
	now := time.Date(2024, 7, 16, 12, 0, 0, 0, hijri.Zone)

	detail, err := svc.ParticipantDetail("Alice", firstSeason, now)
	require.NoError(t, err)

	// Season days so far: 13th through 16th, with reading only on the 14th.
	assert.Equal(t, 3, detail.DaysWithoutReading)
	assert.InDelta(t, 60.0, detail.AvgMinutesPerDay, 1e-9)

	assert.InDelta(t, 72.0, detail.Invoice.ReadingIdeasBeforeFactor, 1e-9)
	assert.InDelta(t, 1.0, detail.Invoice.ContinuityFactor, 1e-9)
	assert.InDelta(t, 72.0, detail.Invoice.Total, 1e-9)
	assert.Zero(t, detail.Invoice.ExtraIdeas)
	assert.Zero(t, detail.Invoice.Subtraction)

	// One cell per day from kickoff to the next Hijri month.
	assert.NotEmpty(t, detail.Heatmap)
	assert.LessOrEqual(t, len(detail.Heatmap), 30)
	for _, cell := range detail.Heatmap {
		if cell.Date == "2024-07-14" {
			assert.InDelta(t, 60.0, cell.Minutes, 1e-9)
			assert.Equal(t, 2, cell.Level)
		}
	}
}

func TestParticipantDetailNotFound(t *testing.T) {
	svc := newStatsFixture(t)
	now := time.Date(2024, 7, 16, 0, 0, 0, 0, hijri.Zone)

	_, err := svc.ParticipantDetail("Nobody", firstSeason, now)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}
