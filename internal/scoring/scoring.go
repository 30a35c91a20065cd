package scoring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinQualifyingMinutes is the daily threshold below which a day does not
	// count for streaks and attracts the penalty.
	MinQualifyingMinutes = 3.0

	// DailyPenalty is subtracted for every sub-threshold day after the
	// protected week.
	DailyPenalty = 10.0

	// ProtectedDays is the penalty-free opening stretch of a season.
	ProtectedDays = 7
)

var ErrMalformedDuration = errors.New("scoring: malformed duration")

// bonusIdeas maps an extra-activity tag to its flat credit, awarded once per
// matching entry regardless of duration.
var bonusIdeas = map[string]float64{
	"مراجعة كتاب":  20,
	"تلخيص كتاب":   15,
	"مشاركة فائدة": 5,
}

// DurationToMinutes converts an "H:MM:SS" form duration to minutes. Rows
// with non-numeric or missing components are rejected rather than poisoning
// totals downstream.
func DurationToMinutes(duration string) (float64, error) {
	parts := strings.Split(duration, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, duration)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, duration)
		}
		nums[i] = n
	}

	return float64(nums[0])*60 + float64(nums[1]) + float64(nums[2])/60, nil
}

// CalculateIdeas maps the minutes of a single entry to its raw idea score.
// The rate is keyed by the entry's total minutes, not blended across tiers:
// up to 15 minutes credit 1:1, up to 30 at 1.15, beyond that at 1.2.
func CalculateIdeas(minutes float64) float64 {
	switch {
	case minutes <= 15:
		return round2(minutes)
	case minutes <= 30:
		return round2(minutes * 1.15)
	default:
		return round2(minutes * 1.2)
	}
}

// Bonus returns the flat credit for an extra-activity tag, 0 for unknown or
// empty tags.
func Bonus(extra string) float64 {
	return bonusIdeas[strings.TrimSpace(extra)]
}

// ContinuityFactor is the streak multiplier compounded on top of the tier
// rate.
func ContinuityFactor(streak int) float64 {
	switch {
	case streak >= 3:
		return 1.2
	case streak == 2:
		return 1.15
	default:
		return 1.0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
