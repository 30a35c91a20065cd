package season

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"nedhal-be/internal/hijri"
)

// FirstYear is the Hijri year of the first season (محرم 1446).
const FirstYear = 1446

var ErrUnknownMonthName = errors.New("season: unknown hijri month name")

// Canonical Arabic Hijri month names, indexed by month-1.
var monthNames = [12]string{
	"محرم",
	"صفر",
	"ربيع الأول",
	"ربيع الآخر",
	"جمادى الأولى",
	"جمادى الآخرة",
	"رجب",
	"شعبان",
	"رمضان",
	"شوال",
	"ذو القعدة",
	"ذو الحجة",
}

// Start dates of the early seasons, adjusted by the organizers (the third
// season was pushed a week for Rabi al-Mawlid holidays). Index i holds the
// start of season id i+1.
var startOverrides = []time.Time{
	time.Date(2024, 7, 13, 0, 0, 0, 0, hijri.Zone),  // محرم 1446
	time.Date(2024, 8, 10, 0, 0, 0, 0, hijri.Zone),  // صفر 1446
	time.Date(2024, 9, 14, 0, 0, 0, 0, hijri.Zone),  // ربيع الأول 1446
	time.Date(2024, 10, 5, 0, 0, 0, 0, hijri.Zone),  // ربيع الآخر 1446
	time.Date(2024, 11, 9, 0, 0, 0, 0, hijri.Zone),  // جمادى الأولى 1446
	time.Date(2024, 12, 7, 0, 0, 0, 0, hijri.Zone),  // جمادى الآخرة 1446
}

// cutover is the first rule-based season start (رجب 1446). Dates before it
// resolve against the override table, dates on or after it against the
// first-Saturday rule.
var cutover = time.Date(2025, 1, 4, 0, 0, 0, 0, hijri.Zone)

// ID maps a season label "<month name> <hijri year>" to its monotonic id.
// The first season (محرم 1446) is id 1. Month names are matched after
// orthography normalization, so hamza and diacritic variants parse.
func ID(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMonthName, label)
	}

	year, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMonthName, label)
	}

	name := normalizeArabic(strings.Join(fields[:len(fields)-1], " "))
	for i, canonical := range monthNames {
		if name == normalizeArabic(canonical) {
			return (year-FirstYear)*12 + i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMonthName, label)
}

// Label is the inverse of ID. Panics on non-positive ids; no season predates
// id 1.
func Label(id int) string {
	if id < 1 {
		panic(fmt.Sprintf("season: Label called with non-positive id %d", id))
	}
	month := (id - 1) % 12
	year := FirstYear + (id-1)/12
	return monthNames[month] + " " + strconv.Itoa(year)
}

// Canonical folds a season label to the exact form FromDate produces, so
// variant spellings accepted by ID compare equal to stored labels.
func Canonical(label string) (string, error) {
	id, err := ID(label)
	if err != nil {
		return "", err
	}
	return Label(id), nil
}

// StartDate resolves when a season began: the override table for the early
// manually-adjusted seasons, the first-Saturday rule afterwards.
func StartDate(label string) (time.Time, error) {
	id, err := ID(label)
	if err != nil {
		return time.Time{}, err
	}

	if id >= 1 && id <= len(startOverrides) {
		return startOverrides[id-1], nil
	}

	year := FirstYear + (id-1)/12
	month := (id-1)%12 + 1

	day, err := hijri.FirstSaturday(year, month)
	if err != nil {
		return time.Time{}, err
	}
	return hijri.ToGregorian(year, month, day)
}

// FromDate maps an instant to the label of the season it belongs to. Before
// the cutover this scans the override table for the last start at or before
// the date. After it, the date belongs to its Hijri month's season only once
// that month's first Saturday has arrived; earlier days still belong to the
// previous month's cycle.
func FromDate(t time.Time) (string, error) {
	if t.Before(cutover) {
		id := 1
		for i, start := range startOverrides {
			if !t.Before(start) {
				id = i + 1
			}
		}
		return Label(id), nil
	}

	h, err := hijri.ToHijri(t)
	if err != nil {
		return "", err
	}

	day, err := hijri.FirstSaturday(h.Year, h.Month)
	if err != nil {
		return "", err
	}

	year, month := h.Year, h.Month
	if h.Day < day {
		month--
		if month == 0 {
			month = 12
			year--
		}
	}

	return monthNames[month-1] + " " + strconv.Itoa(year), nil
}

// Current returns the label of the season containing now.
func Current(now time.Time) (string, error) {
	return FromDate(now)
}

// Week returns the 1-based week of the season at the given instant. The
// expulsion rule keys off week 3.
func Week(label string, now time.Time) (int, error) {
	start, err := StartDate(label)
	if err != nil {
		return 0, err
	}

	days := int(now.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days/7 + 1, nil
}

// MonthNames returns the canonical month-name table.
func MonthNames() [12]string {
	return monthNames
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeArabic folds hamza carriers and diacritics so that common
// spelling variants of the month names compare equal.
func normalizeArabic(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	out = strings.ReplaceAll(out, "ى", "ي")
	return strings.Join(strings.Fields(out), " ")
}
