package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nedhal-be/internal/hijri"
)

func TestIDLabelRoundTrip(t *testing.T) {
	for id := 1; id <= 240; id++ {
		got, err := ID(Label(id))
		require.NoError(t, err, "id %d label %q", id, Label(id))
		assert.Equal(t, id, got)
	}
}

func TestIDKnownLabels(t *testing.T) {
	id, err := ID("محرم 1446")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = ID("ذو الحجة 1446")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	id, err = ID("محرم 1447")
	require.NoError(t, err)
	assert.Equal(t, 13, id)
}

func TestIDSpellingVariants(t *testing.T) {
	// Hamza dropped from the alef.
	id, err := ID("ربيع الاول 1446")
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	// Extra inner whitespace.
	id, err = ID("جمادى  الأولى 1446")
	require.NoError(t, err)
	assert.Equal(t, 5, id)
}

func TestCanonical(t *testing.T) {
	got, err := Canonical("ربيع الاول 1446")
	require.NoError(t, err)
	assert.Equal(t, "ربيع الأول 1446", got)

	got, err = Canonical("محرم  1446")
	require.NoError(t, err)
	assert.Equal(t, "محرم 1446", got)

	_, err = Canonical("شهر غريب 1446")
	assert.ErrorIs(t, err, ErrUnknownMonthName)
}

func TestLabelNonPositiveID(t *testing.T) {
	assert.Panics(t, func() { Label(0) })
	assert.Panics(t, func() { Label(-3) })
}

func TestIDUnknownMonth(t *testing.T) {
	_, err := ID("شهر غريب 1446")
	assert.ErrorIs(t, err, ErrUnknownMonthName)

	_, err = ID("1446")
	assert.ErrorIs(t, err, ErrUnknownMonthName)

	_, err = ID("محرم سنة")
	assert.ErrorIs(t, err, ErrUnknownMonthName)
}

func TestStartDateOverrides(t *testing.T) {
	start, err := StartDate("محرم 1446")
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 7, 13, 0, 0, 0, 0, hijri.Zone)))

	// The third season was delayed a week past its rule date.
	start, err = StartDate("ربيع الأول 1446")
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 9, 14, 0, 0, 0, 0, hijri.Zone)))
}

func TestStartDateRuleBasedIsSaturday(t *testing.T) {
	for _, label := range []string{"رجب 1446", "شعبان 1446", "رمضان 1446"} {
		start, err := StartDate(label)
		require.NoError(t, err)
		assert.Equal(t, time.Saturday, start.Weekday(), label)
		assert.False(t, start.Before(time.Date(2025, 1, 1, 0, 0, 0, 0, hijri.Zone)), label)
	}
}

func TestFromDateOverrideRegion(t *testing.T) {
	label, err := FromDate(time.Date(2024, 9, 20, 10, 0, 0, 0, hijri.Zone))
	require.NoError(t, err)
	assert.Equal(t, "ربيع الأول 1446", label)

	// Between the rule date and the delayed kickoff the previous season is
	// still running.
	label, err = FromDate(time.Date(2024, 9, 10, 10, 0, 0, 0, hijri.Zone))
	require.NoError(t, err)
	assert.Equal(t, "صفر 1446", label)

	// Before the very first season everything clamps to it.
	label, err = FromDate(time.Date(2024, 7, 1, 0, 0, 0, 0, hijri.Zone))
	require.NoError(t, err)
	assert.Equal(t, "محرم 1446", label)
}

func TestFromDateAtRuleBasedStart(t *testing.T) {
	// The exact first-Saturday instant belongs to its own season, and the
	// day before still belongs to the previous one.
	for _, label := range []string{"رجب 1446", "رمضان 1446"} {
		start, err := StartDate(label)
		require.NoError(t, err)

		got, err := FromDate(start)
		require.NoError(t, err)
		assert.Equal(t, label, got)

		id, err := ID(label)
		require.NoError(t, err)
		got, err = FromDate(start.AddDate(0, 0, -1))
		require.NoError(t, err)
		assert.Equal(t, Label(id-1), got)
	}
}

func TestWeek(t *testing.T) {
	start := time.Date(2024, 7, 13, 0, 0, 0, 0, hijri.Zone)

	week, err := Week("محرم 1446", start)
	require.NoError(t, err)
	assert.Equal(t, 1, week)

	week, err = Week("محرم 1446", start.AddDate(0, 0, 15))
	require.NoError(t, err)
	assert.Equal(t, 3, week)
}
