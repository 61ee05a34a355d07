package jump

import (
	"testing"
	"time"

	"github.com/johnzhangfit/verttracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id uint, ts time.Time, variant string, height, weight float64) model.JumpRecord {
	return model.JumpRecord{
		ID:        id,
		CreatedAt: ts,
		Variant:   variant,
		Height:    height,
		Weight:    weight,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLocalDayShiftsAcrossMidnight(t *testing.T) {
	// 23:30 UTC with +2 lands on the next local day.
	ts := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, day(2025, 3, 11), LocalDay(ts, 2))

	// 00:30 UTC with -1 falls back to the previous local day.
	ts = time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, day(2025, 3, 9), LocalDay(ts, -1))

	assert.Equal(t, day(2025, 3, 10), LocalDay(ts, 0))
}

func TestAggregateNoneKeepsEveryRecord(t *testing.T) {
	records := []model.JumpRecord{
		record(1, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), model.VariantMax, 0.9, 80),
		record(2, time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC), model.VariantCMJ, 0.8, 81),
	}

	entries, err := Aggregate(records, "", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.VariantMax, entries[0].Variant)
	assert.Equal(t, model.VariantCMJ, entries[1].Variant)
	assert.Equal(t, 80.0, entries[0].Weight)
}

func TestAggregateMaxPicksBestPerDayWithEarliestTieBreak(t *testing.T) {
	records := []model.JumpRecord{
		record(1, time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC), model.VariantMax, 0.95, 80),
		record(2, time.Date(2025, 5, 1, 11, 0, 0, 0, time.UTC), model.VariantMax, 0.95, 82), // tie, later record
		record(3, time.Date(2025, 5, 1, 13, 0, 0, 0, time.UTC), model.VariantMax, 0.70, 82),
		record(4, time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC), model.VariantMax, 0.85, 81),
	}

	entries, err := Aggregate(records, AggregationMax, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint(1), entries[0].RecordID, "equal heights keep the earliest record")
	assert.Equal(t, 0.95, entries[0].Height)
	assert.Equal(t, day(2025, 5, 2), entries[1].Day)
}

func TestAggregateAvgAveragesHeightsPerDay(t *testing.T) {
	records := []model.JumpRecord{
		record(1, time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC), model.VariantCMJ, 0.6, 80),
		record(2, time.Date(2025, 5, 1, 11, 0, 0, 0, time.UTC), model.VariantCMJ, 0.8, 80),
		record(3, time.Date(2025, 5, 3, 9, 0, 0, 0, time.UTC), model.VariantCMJ, 0.9, 80),
	}

	entries, err := Aggregate(records, AggregationAvg, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.InDelta(t, 0.7, entries[0].Height, 1e-9)
	assert.InDelta(t, 0.9, entries[1].Height, 1e-9)
	// Averaged rows carry no weight or note.
	assert.Zero(t, entries[0].Weight)
	assert.Nil(t, entries[0].Note)
}

func TestAggregateUsesLocalDays(t *testing.T) {
	// Both records are the same UTC day, but +3 pushes the second one past
	// local midnight, so they must not be merged.
	records := []model.JumpRecord{
		record(1, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), model.VariantMax, 0.9, 80),
		record(2, time.Date(2025, 5, 1, 22, 0, 0, 0, time.UTC), model.VariantMax, 0.8, 80),
	}

	entries, err := Aggregate(records, AggregationMax, 3)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, day(2025, 5, 1), entries[0].Day)
	assert.Equal(t, day(2025, 5, 2), entries[1].Day)
}

func TestAggregateRejectsUnknownMode(t *testing.T) {
	_, err := Aggregate(nil, "median", 0)
	assert.ErrorContains(t, err, "aggregation must be either 'avg' or 'max'")
}

func TestConvertMultipliesInPlace(t *testing.T) {
	entries := []Entry{{Height: 1.5, Weight: 80}}
	Convert(entries, 100, 2.20462)
	assert.InDelta(t, 150, entries[0].Height, 1e-9)
	assert.InDelta(t, 176.3696, entries[0].Weight, 1e-4)
}

func TestSortByHeightIsNonDecreasingAndStable(t *testing.T) {
	entries := []Entry{
		{Height: 1.2, RecordID: 1},
		{Height: 0.9, RecordID: 2},
		{Height: 0.9, RecordID: 3},
		{Height: 1.5, RecordID: 4},
	}

	require.NoError(t, Sort(entries, OrderByHeight))

	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Height, entries[i].Height)
	}
	// Equal heights keep their original order.
	assert.Equal(t, uint(2), entries[0].RecordID)
	assert.Equal(t, uint(3), entries[1].RecordID)
}

func TestSortByDateAndWeight(t *testing.T) {
	entries := []Entry{
		{Day: day(2025, 5, 3), Weight: 70},
		{Day: day(2025, 5, 1), Weight: 90},
		{Day: day(2025, 5, 2), Weight: 80},
	}

	require.NoError(t, Sort(entries, OrderByDate))
	assert.Equal(t, day(2025, 5, 1), entries[0].Day)

	require.NoError(t, Sort(entries, OrderByWeight))
	assert.Equal(t, 70.0, entries[0].Weight)
}

func TestSortRejectsUnknownKey(t *testing.T) {
	err := Sort(nil, "note")
	assert.ErrorContains(t, err, "order-by must be either 'date', 'weight', or 'height'")
}
