package models

// ParticipantStat is the aggregation output for one participant within a
// season: accumulated score after bonuses and penalties, streak state,
// per-day minutes, and disqualification status.
type ParticipantStat struct {
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	TotalIdeas    float64            `json:"totalIdeas"`
	TotalMinutes  float64            `json:"totalMinutes"`
	Streak        int                `json:"streak"`        // reported streak, zeroed if yesterday was missed
	CurrentStreak int                `json:"currentStreak"` // internal walking counter after the last entry
	MaxStreak     int                `json:"maxStreak"`
	DailyMinutes  map[string]float64 `json:"dailyMinutes"` // "YYYY-MM-DD" -> minutes
	ExtraIdeas    float64            `json:"extraIdeas"`
	Subtraction   float64            `json:"subtraction"`
	// DeserveDisqual is the first day ("YYYY-MM-DD") the running score fell
	// below the accumulated penalty, nil if it never did.
	DeserveDisqual *string `json:"deserveDisqual"`
}

// CountdownRow projects how many days a participant can survive on their
// current ideas before the penalty drains them.
type CountdownRow struct {
	Name          string  `json:"name"`
	TotalIdeas    float64 `json:"totalIdeas"`
	DaysRemaining int     `json:"daysRemaining"`
	Status        string  `json:"status"` // safe | warning | danger
}

// ExpelledRow is a participant currently eligible for expulsion.
type ExpelledRow struct {
	Name          string  `json:"name"`
	TotalIdeas    float64 `json:"totalIdeas"`
	Reason        string  `json:"reason"`
	ExpulsionDate string  `json:"expulsionDate"`
}

// RecordItem is one row of a top-3 records board.
type RecordItem struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// RecordsResponse holds the three record boards of the records page.
type RecordsResponse struct {
	TopSingleDayMinutes []RecordItem `json:"topSingleDayMinutes"`
	TopStreaks          []RecordItem `json:"topStreaks"`
	TopIdeas            []RecordItem `json:"topIdeas"`
}

// LeaderboardResponse is the current-results payload: participants ranked by
// ideas plus the streak ranking, zero rows filtered like the dashboard does.
type LeaderboardResponse struct {
	Season       string            `json:"season"`
	Participants []ParticipantStat `json:"participants"`
	StreakBoard  []RecordItem      `json:"streakBoard"`
	SkippedRows  int               `json:"skippedRows"`
}

// SeasonInfo describes one season for the season list.
type SeasonInfo struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	StartDate string `json:"startDate"`
	Week      int    `json:"week,omitempty"`
}

// SeasonComparison is one season's aggregate line in the cross-season view.
type SeasonComparison struct {
	Season        string  `json:"season"`
	Participants  int     `json:"participants"`
	TotalIdeas    float64 `json:"totalIdeas"`
	TotalMinutes  float64 `json:"totalMinutes"`
	AvgIdeas      float64 `json:"avgIdeas"`
	AvgMinutes    float64 `json:"avgMinutes"`
	CountExpelled int     `json:"countExpelled"`
}

// HeatmapCell is one day of the individual reading calendar.
type HeatmapCell struct {
	Date    string  `json:"date"`
	Day     int     `json:"day"` // 1-based day of the Hijri month
	Minutes float64 `json:"minutes"`
	Ideas   float64 `json:"ideas"`
	Level   int     `json:"level"` // 0..5 heat bucket
}

// IdeaInvoice decomposes a participant's final score the way the individual
// results card presents it.
type IdeaInvoice struct {
	ReadingIdeasBeforeFactor float64 `json:"readingIdeasBeforeFactor"`
	ExtraIdeas               float64 `json:"extraIdeas"`
	Subtraction              float64 `json:"subtraction"`
	ContinuityFactor         float64 `json:"continuityFactor"`
	Total                    float64 `json:"total"`
}

// ParticipantDetail is the individual-results payload.
type ParticipantDetail struct {
	Stat               ParticipantStat `json:"stat"`
	DaysWithoutReading int             `json:"daysWithoutReading"`
	AvgMinutesPerDay   float64         `json:"avgMinutesPerDay"`
	Invoice            IdeaInvoice     `json:"invoice"`
	Heatmap            []HeatmapCell   `json:"heatmap"`
}
