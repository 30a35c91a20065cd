package scoring

import (
	"sort"
	"time"

	"nedhal-be/internal/hijri"
	"nedhal-be/internal/models"
	"nedhal-be/internal/utils"
)

const dayKeyFormat = "2006-01-02"

// participantState is the walking state of one participant while entries are
// folded in timestamp order.
type participantState struct {
	stat        *models.ParticipantStat
	lastDay     time.Time
	lastMinutes float64
	dailyIdeas  map[string]float64
}

// Aggregate folds a season's entries into one ParticipantStat per distinct
// participant. It is a pure function of (entries, seasonStart, now): no state
// survives between calls. Entries are sorted by timestamp defensively since
// streak detection relies on encounter order. The second return value counts
// rows skipped for malformed durations.
func Aggregate(entries []models.Entry, seasonStart, now time.Time) ([]models.ParticipantStat, int) {
	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	states := make(map[string]*participantState)
	skipped := 0

	for _, e := range sorted {
		minutes, err := DurationToMinutes(e.Hours)
		if err != nil {
			skipped++
			continue
		}

		st, ok := states[e.Email]
		if !ok {
			st = &participantState{
				stat: &models.ParticipantStat{
					Name:         utils.EmailToName(e.Email),
					Email:        e.Email,
					DailyMinutes: make(map[string]float64),
				},
				dailyIdeas: make(map[string]float64),
			}
			states[e.Email] = st
		}

		day := civilDay(e.Timestamp)
		switch {
		case !st.lastDay.IsZero() && day.Equal(st.lastDay.AddDate(0, 0, 1)) && st.lastMinutes >= MinQualifyingMinutes:
			// Consecutive qualifying day: the streak continues.
			st.stat.CurrentStreak++
			st.lastMinutes = minutes
			st.lastDay = day
		case !day.Equal(st.lastDay):
			// New non-consecutive day (or the prior day missed the
			// threshold): the streak restarts.
			st.stat.CurrentStreak = 1
			st.lastMinutes = minutes
			st.lastDay = day
		default:
			// Another entry on the same day accumulates without moving the
			// streak.
			st.lastMinutes += minutes
		}

		if st.stat.CurrentStreak > st.stat.MaxStreak {
			st.stat.MaxStreak = st.stat.CurrentStreak
		}

		key := day.Format(dayKeyFormat)
		earned := CalculateIdeas(minutes) * ContinuityFactor(st.stat.CurrentStreak)
		bonus := Bonus(e.Extra)

		st.stat.TotalIdeas += earned + bonus
		st.stat.ExtraIdeas += bonus
		st.stat.TotalMinutes += minutes
		st.stat.DailyMinutes[key] += minutes
		st.dailyIdeas[key] += earned + bonus
	}

	today := civilDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	start := civilDay(seasonStart)
	protectedEnd := start.AddDate(0, 0, ProtectedDays)
	yesterdayKey := today.AddDate(0, 0, -1).Format(dayKeyFormat)

	stats := make([]models.ParticipantStat, 0, len(states))
	for _, st := range states {
		runningIdeas := 0.0
		for d := start; !d.After(tomorrow); d = d.AddDate(0, 0, 1) {
			key := d.Format(dayKeyFormat)
			runningIdeas += st.dailyIdeas[key]
			if d.Before(protectedEnd) {
				continue
			}
			if st.stat.DailyMinutes[key] < MinQualifyingMinutes {
				st.stat.Subtraction += DailyPenalty
			}
			if st.stat.DeserveDisqual == nil && runningIdeas < st.stat.Subtraction {
				disqual := key
				st.stat.DeserveDisqual = &disqual
			}
		}

		st.stat.TotalIdeas -= st.stat.Subtraction
		if st.stat.TotalIdeas < 0 {
			st.stat.TotalIdeas = 0
		}

		// The reported streak dies the moment yesterday was missed, even if
		// the walking counter still holds the old run.
		if st.stat.DailyMinutes[yesterdayKey] >= MinQualifyingMinutes {
			st.stat.Streak = st.stat.CurrentStreak
		}

		stats = append(stats, *st.stat)
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats, skipped
}

// civilDay truncates an instant to midnight of its civil date in the
// canonical zone.
func civilDay(t time.Time) time.Time {
	local := t.In(hijri.Zone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, hijri.Zone)
}
