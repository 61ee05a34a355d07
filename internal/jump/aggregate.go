package jump

import (
	"sort"
	"time"

	"github.com/johnzhangfit/verttracker/internal/apperrors"
	"github.com/johnzhangfit/verttracker/internal/model"
)

// Aggregation modes over same-day records.
const (
	AggregationAvg = "avg"
	AggregationMax = "max"
)

// Sort keys for presentation ordering.
const (
	OrderByDate   = "date"
	OrderByWeight = "weight"
	OrderByHeight = "height"
)

// Entry is one row of a jump series after day-shifting and optional
// aggregation. Height and Weight stay canonical SI until Convert is applied.
// Weight and Note are zero/nil on averaged rows.
type Entry struct {
	Day     time.Time
	Variant string
	Height  float64
	Weight  float64
	Note    *string

	// RecordID keeps insertion order around for tie-breaking.
	RecordID uint
}

// LocalDay shifts a UTC timestamp by utcOffset hours and truncates it to the
// local calendar day. A late-evening UTC record with a positive offset lands
// on the next local day.
func LocalDay(ts time.Time, utcOffset int) time.Time {
	shifted := ts.UTC().Add(time.Duration(utcOffset) * time.Hour)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// Aggregate reduces records to a day-ascending series. Mode "" keeps one entry
// per record, AggregationMax keeps the highest jump per local day (ties go to
// the earliest record), AggregationAvg averages the heights of each local day.
// Records must arrive in insertion (ID) order.
func Aggregate(records []model.JumpRecord, mode string, utcOffset int) ([]Entry, error) {
	switch mode {
	case "":
		entries := make([]Entry, 0, len(records))
		for _, r := range records {
			entries = append(entries, Entry{
				Day:      LocalDay(r.CreatedAt, utcOffset),
				Variant:  r.Variant,
				Height:   r.Height,
				Weight:   r.Weight,
				Note:     r.Note,
				RecordID: r.ID,
			})
		}
		return entries, nil
	case AggregationMax:
		return aggregateMax(records, utcOffset), nil
	case AggregationAvg:
		return aggregateAvg(records, utcOffset), nil
	default:
		return nil, apperrors.Validation("aggregation must be either 'avg' or 'max'")
	}
}

func aggregateMax(records []model.JumpRecord, utcOffset int) []Entry {
	best := make(map[time.Time]Entry)
	for _, r := range records {
		day := LocalDay(r.CreatedAt, utcOffset)
		cur, ok := best[day]
		if !ok || r.Height > cur.Height {
			best[day] = Entry{
				Day:      day,
				Variant:  r.Variant,
				Height:   r.Height,
				Weight:   r.Weight,
				Note:     r.Note,
				RecordID: r.ID,
			}
		}
	}
	return sortedByDay(best)
}

func aggregateAvg(records []model.JumpRecord, utcOffset int) []Entry {
	type acc struct {
		sum   float64
		count int
		entry Entry
	}
	days := make(map[time.Time]*acc)
	for _, r := range records {
		day := LocalDay(r.CreatedAt, utcOffset)
		a, ok := days[day]
		if !ok {
			a = &acc{entry: Entry{Day: day, Variant: r.Variant, RecordID: r.ID}}
			days[day] = a
		}
		a.sum += r.Height
		a.count++
	}
	entries := make(map[time.Time]Entry, len(days))
	for day, a := range days {
		a.entry.Height = a.sum / float64(a.count)
		entries[day] = a.entry
	}
	return sortedByDay(entries)
}

func sortedByDay(m map[time.Time]Entry) []Entry {
	entries := make([]Entry, 0, len(m))
	for _, e := range m {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Day.Before(entries[j].Day) })
	return entries
}

// Convert multiplies every entry into the requested units. Factors come from
// the units package; canonical values are never stored converted.
func Convert(entries []Entry, heightFactor, weightFactor float64) {
	for i := range entries {
		entries[i].Height *= heightFactor
		entries[i].Weight *= weightFactor
	}
}

// Sort orders entries ascending by the given key. The sort is stable, so
// same-key entries keep their original record order.
func Sort(entries []Entry, orderBy string) error {
	var less func(i, j int) bool
	switch orderBy {
	case OrderByDate:
		less = func(i, j int) bool { return entries[i].Day.Before(entries[j].Day) }
	case OrderByWeight:
		less = func(i, j int) bool { return entries[i].Weight < entries[j].Weight }
	case OrderByHeight:
		less = func(i, j int) bool { return entries[i].Height < entries[j].Height }
	default:
		return apperrors.Validation("order-by must be either 'date', 'weight', or 'height'")
	}
	sort.SliceStable(entries, less)
	return nil
}
