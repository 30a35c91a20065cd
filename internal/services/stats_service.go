package services

import (
	"errors"
	"math"
	"sort"
	"time"

	"nedhal-be/internal/hijri"
	"nedhal-be/internal/models"
	"nedhal-be/internal/scoring"
	"nedhal-be/internal/season"
)

var ErrParticipantNotFound = errors.New("stats: participant not found")

// Expulsion reasons shown verbatim on the dashboard.
const (
	reasonZeroIdeas    = "وصول الأفكار للصفر"
	reasonWeekThreeBar = "عدم تحقيق 100 فكرة بنهاية الأسبوع الثالث"
)

// StatsService runs the scoring engine over the current row snapshot and
// assembles the payloads the dashboard pages consume.
type StatsService struct {
	store *DataStore
}

func NewStatsService(store *DataStore) *StatsService {
	return &StatsService{store: store}
}

// seasonEntries filters the snapshot down to the rows belonging to one
// season. Rows whose season cannot be resolved are dropped.
func (s *StatsService) seasonEntries(label string) []models.Entry {
	var filtered []models.Entry
	for _, e := range s.store.Entries() {
		got, err := season.FromDate(e.Timestamp)
		if err != nil {
			continue
		}
		if got == label {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// SeasonStats aggregates one season. The label may arrive in a variant
// spelling and is folded to its canonical form before the entry filter. The
// second return value counts rows skipped for malformed durations.
func (s *StatsService) SeasonStats(label string, now time.Time) ([]models.ParticipantStat, int, error) {
	label, err := season.Canonical(label)
	if err != nil {
		return nil, 0, err
	}

	start, err := season.StartDate(label)
	if err != nil {
		return nil, 0, err
	}

	stats, skipped := scoring.Aggregate(s.seasonEntries(label), start, now)
	return stats, skipped, nil
}

// Leaderboard ranks a season's participants by ideas, plus the streak board.
// Zero rows are filtered the way the charts filter them.
func (s *StatsService) Leaderboard(label string, now time.Time) (*models.LeaderboardResponse, error) {
	label, err := season.Canonical(label)
	if err != nil {
		return nil, err
	}

	stats, skipped, err := s.SeasonStats(label, now)
	if err != nil {
		return nil, err
	}

	ranked := make([]models.ParticipantStat, 0, len(stats))
	for _, p := range stats {
		if p.TotalIdeas > 0 {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TotalIdeas > ranked[j].TotalIdeas })

	var streakBoard []models.RecordItem
	byStreak := make([]models.ParticipantStat, 0, len(stats))
	for _, p := range stats {
		if p.Streak > 0 {
			byStreak = append(byStreak, p)
		}
	}
	sort.SliceStable(byStreak, func(i, j int) bool { return byStreak[i].Streak > byStreak[j].Streak })
	for i, p := range byStreak {
		streakBoard = append(streakBoard, models.RecordItem{Rank: i + 1, Name: p.Name, Value: float64(p.Streak)})
	}

	return &models.LeaderboardResponse{
		Season:       label,
		Participants: ranked,
		StreakBoard:  streakBoard,
		SkippedRows:  skipped,
	}, nil
}

// Countdown projects how many days each participant can miss before the
// daily penalty drains their score, clamped between the ends of this and
// next season's protected weeks.
func (s *StatsService) Countdown(label string, now time.Time) ([]models.CountdownRow, error) {
	stats, _, err := s.SeasonStats(label, now)
	if err != nil {
		return nil, err
	}

	id, err := season.ID(label)
	if err != nil {
		return nil, err
	}

	thisStart, err := season.StartDate(label)
	if err != nil {
		return nil, err
	}
	nextStart, err := season.StartDate(season.Label(id + 1))
	if err != nil {
		return nil, err
	}

	day := 24 * time.Hour
	minDays := int(thisStart.AddDate(0, 0, scoring.ProtectedDays).Sub(now) / day)
	maxDays := int(nextStart.AddDate(0, 0, scoring.ProtectedDays).Sub(now) / day)

	var rows []models.CountdownRow
	for _, p := range stats {
		if p.TotalIdeas <= 0 {
			continue
		}

		remaining := int(math.Ceil(p.TotalIdeas / scoring.DailyPenalty))
		status := "danger"
		if remaining > 5 {
			status = "safe"
		} else if remaining > 3 {
			status = "warning"
		}

		clamped := remaining
		if clamped < minDays {
			clamped = minDays
		}
		if clamped > maxDays {
			clamped = maxDays
		}

		rows = append(rows, models.CountdownRow{
			Name:          p.Name,
			TotalIdeas:    p.TotalIdeas,
			DaysRemaining: clamped,
			Status:        status,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalIdeas < rows[j].TotalIdeas })
	return rows, nil
}

// Expelled lists participants currently eligible for expulsion: score at
// zero, or under 100 ideas once week 3 arrives. Only disqualifications from
// the last 8 days are shown.
func (s *StatsService) Expelled(label string, now time.Time) ([]models.ExpelledRow, error) {
	stats, _, err := s.SeasonStats(label, now)
	if err != nil {
		return nil, err
	}

	week, err := season.Week(label, now)
	if err != nil {
		return nil, err
	}

	var rows []models.ExpelledRow
	for _, p := range stats {
		var reason string
		switch {
		case p.TotalIdeas <= 0:
			reason = reasonZeroIdeas
		case week >= 3 && p.TotalIdeas < 100:
			reason = reasonWeekThreeBar
		default:
			continue
		}

		if p.DeserveDisqual == nil {
			continue
		}
		disqualDay, err := time.ParseInLocation("2006-01-02", *p.DeserveDisqual, hijri.Zone)
		if err != nil || now.Sub(disqualDay) > 8*24*time.Hour {
			continue
		}

		rows = append(rows, models.ExpelledRow{
			Name:          p.Name,
			TotalIdeas:    p.TotalIdeas,
			Reason:        reason,
			ExpulsionDate: *p.DeserveDisqual,
		})
	}

	return rows, nil
}

// Records builds the three top-3 boards of the records page.
func (s *StatsService) Records(label string, now time.Time) (*models.RecordsResponse, error) {
	stats, _, err := s.SeasonStats(label, now)
	if err != nil {
		return nil, err
	}

	type namedValue struct {
		name  string
		value float64
	}

	top3 := func(values []namedValue) []models.RecordItem {
		sort.SliceStable(values, func(i, j int) bool { return values[i].value > values[j].value })
		if len(values) > 3 {
			values = values[:3]
		}
		items := make([]models.RecordItem, len(values))
		for i, v := range values {
			items[i] = models.RecordItem{Rank: i + 1, Name: v.name, Value: v.value}
		}
		return items
	}

	var byDay, byStreak, byIdeas []namedValue
	for _, p := range stats {
		best := 0.0
		for _, m := range p.DailyMinutes {
			if m > best {
				best = m
			}
		}
		byDay = append(byDay, namedValue{p.Name, best})
		byStreak = append(byStreak, namedValue{p.Name, float64(p.MaxStreak)})
		byIdeas = append(byIdeas, namedValue{p.Name, p.TotalIdeas})
	}

	return &models.RecordsResponse{
		TopSingleDayMinutes: top3(byDay),
		TopStreaks:          top3(byStreak),
		TopIdeas:            top3(byIdeas),
	}, nil
}

// Seasons lists every season observed in the data, oldest first.
func (s *StatsService) Seasons(now time.Time) ([]models.SeasonInfo, error) {
	seen := make(map[int]bool)
	var infos []models.SeasonInfo

	for _, e := range s.store.Entries() {
		label, err := season.FromDate(e.Timestamp)
		if err != nil {
			continue
		}
		id, err := season.ID(label)
		if err != nil || seen[id] {
			continue
		}
		seen[id] = true

		start, err := season.StartDate(label)
		if err != nil {
			continue
		}
		infos = append(infos, models.SeasonInfo{
			ID:        id,
			Label:     label,
			StartDate: start.Format("2006-01-02"),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// Comparison aggregates every observed season for the cross-season page.
func (s *StatsService) Comparison(now time.Time) ([]models.SeasonComparison, error) {
	infos, err := s.Seasons(now)
	if err != nil {
		return nil, err
	}

	var rows []models.SeasonComparison
	for _, info := range infos {
		stats, _, err := s.SeasonStats(info.Label, now)
		if err != nil {
			return nil, err
		}

		row := models.SeasonComparison{Season: info.Label, Participants: len(stats)}
		for _, p := range stats {
			row.TotalIdeas += p.TotalIdeas
			row.TotalMinutes += p.TotalMinutes
			if p.DeserveDisqual != nil {
				row.CountExpelled++
			}
		}
		if row.Participants > 0 {
			row.AvgIdeas = row.TotalIdeas / float64(row.Participants)
			row.AvgMinutes = row.TotalMinutes / float64(row.Participants)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// ParticipantNames returns the display names of a season's participants.
func (s *StatsService) ParticipantNames(label string, now time.Time) ([]string, error) {
	stats, _, err := s.SeasonStats(label, now)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(stats))
	for i, p := range stats {
		names[i] = p.Name
	}
	return names, nil
}

// ParticipantDetail builds the individual-results view: days without
// reading, average per reading day, the idea invoice, and the monthly
// heatmap.
func (s *StatsService) ParticipantDetail(name, label string, now time.Time) (*models.ParticipantDetail, error) {
	stats, _, err := s.SeasonStats(label, now)
	if err != nil {
		return nil, err
	}

	var stat *models.ParticipantStat
	for i := range stats {
		if stats[i].Name == name {
			stat = &stats[i]
			break
		}
	}
	if stat == nil {
		return nil, ErrParticipantNotFound
	}

	start, err := season.StartDate(label)
	if err != nil {
		return nil, err
	}

	daysWithout := 0
	readingDays := 0
	today := now.In(hijri.Zone)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		if stat.DailyMinutes[d.Format("2006-01-02")] < scoring.MinQualifyingMinutes {
			daysWithout++
		}
	}
	for _, m := range stat.DailyMinutes {
		if m >= scoring.MinQualifyingMinutes {
			readingDays++
		}
	}

	avg := 0.0
	if readingDays > 0 {
		avg = stat.TotalMinutes / float64(readingDays)
	}

	factor := scoring.ContinuityFactor(stat.MaxStreak)
	readingIdeas := stat.TotalIdeas + stat.Subtraction - stat.ExtraIdeas
	invoice := models.IdeaInvoice{
		ReadingIdeasBeforeFactor: readingIdeas / factor,
		ExtraIdeas:               stat.ExtraIdeas,
		Subtraction:              stat.Subtraction,
		ContinuityFactor:         factor,
		Total:                    stat.TotalIdeas,
	}

	heatmap, err := buildHeatmap(stat, label, start)
	if err != nil {
		return nil, err
	}

	return &models.ParticipantDetail{
		Stat:               *stat,
		DaysWithoutReading: daysWithout,
		AvgMinutesPerDay:   avg,
		Invoice:            invoice,
		Heatmap:            heatmap,
	}, nil
}

// buildHeatmap lays the season's Hijri month out as one cell per day with a
// heat level derived from that day's ideas.
func buildHeatmap(stat *models.ParticipantStat, label string, start time.Time) ([]models.HeatmapCell, error) {
	h, err := hijri.ToHijri(start)
	if err != nil {
		return nil, err
	}

	nextYear, nextMonth := h.Year, h.Month+1
	if nextMonth > 12 {
		nextMonth = 1
		nextYear++
	}
	nextStart, err := hijri.ToGregorian(nextYear, nextMonth, 1)
	if err != nil {
		return nil, err
	}

	daysInMonth := int(math.Round(nextStart.Sub(start).Hours() / 24))
	cells := make([]models.HeatmapCell, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		d := start.AddDate(0, 0, day-1)
		key := d.Format("2006-01-02")
		minutes := stat.DailyMinutes[key]
		ideas := 0.0
		if minutes > 0 {
			ideas = scoring.CalculateIdeas(minutes)
		}
		cells = append(cells, models.HeatmapCell{
			Date:    key,
			Day:     day,
			Minutes: minutes,
			Ideas:   ideas,
			Level:   heatLevel(ideas),
		})
	}

	return cells, nil
}

func heatLevel(ideas float64) int {
	switch {
	case ideas == 0:
		return 0
	case ideas <= 50:
		return 1
	case ideas <= 100:
		return 2
	case ideas <= 150:
		return 3
	case ideas <= 200:
		return 4
	default:
		return 5
	}
}
