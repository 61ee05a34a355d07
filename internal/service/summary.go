package service

import (
	"context"
	"strconv"
	"time"

	"github.com/johnzhangfit/verttracker/internal/apperrors"
	"github.com/johnzhangfit/verttracker/internal/jump"
	"github.com/johnzhangfit/verttracker/internal/units"
)

// JumpPoint is a height/date pair for the summary response.
type JumpPoint struct {
	Height float64
	Date   time.Time
}

// JumpSummary is the progress overview of one user's records. Pointer fields
// are nil when the user has no data to back them.
type JumpSummary struct {
	NumRecords int
	NumDays    int
	Highest    *JumpPoint
	Last       *JumpPoint

	// Height gained over rolling 6/12/24-month windows; nil when a window
	// has no baseline.
	Improvement6M  *float64
	Improvement12M *float64
	Improvement24M *float64
}

// Summary aggregates all of a user's records into counts, bests and rolling
// improvement windows, converted into the requested height unit.
func (s *JumpService) Summary(ctx context.Context, userID, heightUnit string) (*JumpSummary, error) {
	factor, err := units.HeightFactor(heightUnit)
	if err != nil {
		return nil, err
	}

	records, err := s.jumpRepo.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	summary := &JumpSummary{NumRecords: len(records)}
	if len(records) == 0 {
		return summary, nil
	}

	// Day grouping for the summary uses UTC days; the endpoint takes no
	// utc-offset parameter.
	dayMax, err := jump.Aggregate(records, jump.AggregationMax, 0)
	if err != nil {
		return nil, err
	}
	summary.NumDays = len(dayMax)

	highest := records[0]
	for _, r := range records[1:] {
		if r.Height > highest.Height {
			highest = r
		}
	}
	summary.Highest = &JumpPoint{
		Height: highest.Height * factor,
		Date:   jump.LocalDay(highest.CreatedAt, 0),
	}

	last := dayMax[len(dayMax)-1]
	summary.Last = &JumpPoint{Height: last.Height * factor, Date: last.Day}

	now := s.now()
	summary.Improvement6M = convertDiff(jump.Improvement(dayMax, now, 6), factor)
	summary.Improvement12M = convertDiff(jump.Improvement(dayMax, now, 12), factor)
	summary.Improvement24M = convertDiff(jump.Improvement(dayMax, now, 24), factor)

	return summary, nil
}

func convertDiff(diff *float64, factor float64) *float64 {
	if diff == nil {
		return nil
	}
	converted := *diff * factor
	return &converted
}

// PlotQuery carries the raw query-string tokens of the plot endpoint.
type PlotQuery struct {
	Years       string
	Variant     string
	Aggregation string
	HeightUnit  string
	UTCOffset   string
}

// PlotSeries produces the aggregated, converted height series for the
// trailing window of whole years that the plot endpoint renders.
func (s *JumpService) PlotSeries(ctx context.Context, userID string, q PlotQuery) ([]jump.Entry, error) {
	years, err := strconv.Atoi(q.Years)
	if err != nil || years <= 0 {
		return nil, apperrors.Validation("years must be a positive integer")
	}
	if err := validateVariant(q.Variant, true); err != nil {
		return nil, err
	}
	if q.Aggregation != jump.AggregationAvg && q.Aggregation != jump.AggregationMax {
		return nil, apperrors.Validation("aggregation must be either 'avg' or 'max'")
	}
	factor, err := units.HeightFactor(q.HeightUnit)
	if err != nil {
		return nil, err
	}
	utcOffset, err := parseUTCOffset(q.UTCOffset)
	if err != nil {
		return nil, err
	}

	records, err := s.jumpRepo.ListByUser(ctx, userID, q.Variant)
	if err != nil {
		return nil, err
	}

	entries, err := jump.Aggregate(records, q.Aggregation, utcOffset)
	if err != nil {
		return nil, err
	}
	jump.Convert(entries, factor, 1)

	cutoff := jump.LocalDay(s.now().AddDate(-years, 0, 0), utcOffset)
	series := entries[:0]
	for _, e := range entries {
		if !e.Day.Before(cutoff) {
			series = append(series, e)
		}
	}
	if len(series) == 0 {
		return nil, apperrors.Validation("no records to plot")
	}
	return series, nil
}
