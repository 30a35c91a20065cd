package hijri

import (
	"errors"
	"fmt"
	"time"

	gohijri "github.com/hablullah/go-hijri"
)

// Zone is the canonical zone for all calendar math. Season boundaries are
// lived events in Arabia Standard Time, so every conversion and every entry
// timestamp is evaluated in it.
var Zone = time.FixedZone("AST", 3*60*60)

var (
	ErrInvalidMonth       = errors.New("hijri: year must be >= 1 and month in 1..12")
	ErrConversionNotFound = errors.New("hijri: no gregorian date maps to the requested hijri date")
)

// Date is a Hijri calendar date in the Umm al-Qura variant.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// The inverse conversion searches this window. Umm al-Qura tables cover it
// fully, and no season predates the competition era inside it.
var (
	searchStart = time.Date(1990, 1, 1, 0, 0, 0, 0, Zone)
	searchEnd   = time.Date(2070, 12, 31, 0, 0, 0, 0, Zone)
)

// ToHijri converts a Gregorian instant to its Umm al-Qura date. The instant
// is first reduced to a civil date in Zone so that call sites on either side
// of midnight UTC agree on the day.
func ToHijri(t time.Time) (Date, error) {
	local := t.In(Zone)
	civil := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	d, err := gohijri.CreateUmmAlQuraDate(civil)
	if err != nil {
		return Date{}, fmt.Errorf("hijri: convert %s: %w", local.Format("2006-01-02"), err)
	}

	return Date{Year: int(d.Year), Month: int(d.Month), Day: int(d.Day)}, nil
}

// FirstSaturday returns the day of the Hijri month on which its first
// Saturday falls (1 if the month opens on a Saturday). The result is always
// in 1..7.
func FirstSaturday(year, month int) (int, error) {
	if year < 1 || month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: got year=%d month=%d", ErrInvalidMonth, year, month)
	}

	first, err := ToGregorian(year, month, 1)
	if err != nil {
		return 0, err
	}

	offset := (int(time.Saturday) - int(first.Weekday()) + 7) % 7
	return 1 + offset, nil
}

// ToGregorian is the inverse conversion. It binary-searches the bounded
// Gregorian window using ToHijri, so both directions always agree on zone
// handling. Hijri dates ordered as (year, month, day) are monotonic in time,
// which is what makes the search valid.
func ToGregorian(year, month, day int) (time.Time, error) {
	if year < 1 || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: got year=%d month=%d", ErrInvalidMonth, year, month)
	}

	target := key(Date{Year: year, Month: month, Day: day})
	lo, hi := 0, int(searchEnd.Sub(searchStart).Hours()/24)

	for lo <= hi {
		mid := (lo + hi) / 2
		t := searchStart.AddDate(0, 0, mid)

		h, err := ToHijri(t)
		if err != nil {
			return time.Time{}, err
		}

		switch k := key(h); {
		case k == target:
			return t, nil
		case k < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return time.Time{}, fmt.Errorf("%w: %d-%02d-%02d", ErrConversionNotFound, year, month, day)
}

func key(d Date) int {
	return d.Year*10000 + d.Month*100 + d.Day
}
