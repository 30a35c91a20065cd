package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nedhal-be/internal/hijri"
	"nedhal-be/internal/models"
)

func TestParseTimestamp(t *testing.T) {
	ts, err := parseTimestamp("14/07/2024 20:15:00")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 7, 14, 20, 15, 0, 0, hijri.Zone)))

	// Unpadded day/month and no seconds.
	ts, err = parseTimestamp("1/7/2024 9:05")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 7, 1, 9, 5, 0, 0, hijri.Zone)))

	_, err = parseTimestamp("2024-07-14T20:15:00Z")
	assert.Error(t, err)

	_, err = parseTimestamp("")
	assert.Error(t, err)
}

func TestParseRowsDropsUnreadableTimestamps(t *testing.T) {
	s := &SheetsService{}
	entries := s.parseRows([]rawRow{
		{Timestamp: "14/07/2024 20:15:00", Email: " a@example.com ", Hours: "0:20:00", Extra: "<b>مشاركة فائدة</b>"},
		{Timestamp: "not a date", Email: "b@example.com", Hours: "0:20:00"},
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "a@example.com", entries[0].Email)
	assert.Equal(t, "مشاركة فائدة", entries[0].Extra)
}

func TestCheckEntries(t *testing.T) {
	ts := time.Date(2024, 7, 14, 20, 0, 0, 0, hijri.Zone)
	entries := []models.Entry{
		{Timestamp: ts, Email: "ok@example.com", Hours: "1:00:00"},
		{Timestamp: ts, Email: "long@example.com", Hours: "6:00:00"},
		{Timestamp: ts, Email: "typo@example.com", Hours: "30:00:00"},
		{Timestamp: ts, Email: "bad@example.com", Hours: "garbage"},
	}

	checked, warnings := CheckEntries(entries)
	require.Len(t, warnings, 2)

	// 360 minutes is implausible but kept as-is.
	assert.Equal(t, "Long", warnings[0].Name)
	assert.False(t, warnings[0].Repaired)
	assert.Equal(t, "6:00:00", checked[1].Hours)

	// 1800 minutes means the hours column held minutes; repaired.
	assert.Equal(t, "Typo", warnings[1].Name)
	assert.True(t, warnings[1].Repaired)
	assert.Equal(t, "0:30:00", checked[2].Hours)

	assert.Equal(t, "1:00:00", checked[0].Hours)
	assert.Equal(t, "garbage", checked[3].Hours)
}

func TestDataStoreSnapshot(t *testing.T) {
	store := NewDataStore()
	assert.Empty(t, store.Entries())
	assert.True(t, store.LoadedAt().IsZero())

	loaded := time.Now()
	entries := []models.Entry{{Email: "a@example.com"}}
	warnings := []models.AdminWarning{{Name: "A"}}
	store.Set(entries, warnings, loaded)

	assert.Equal(t, entries, store.Entries())
	assert.Equal(t, warnings, store.Warnings())
	assert.True(t, store.LoadedAt().Equal(loaded))
}
