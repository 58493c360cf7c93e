// Package stats turns raw trip records into chart-ready series for the
// dashboard. Every function is pure: no clock access, no I/O, fresh output
// on each call. Records with a missing or unparseable arrival timestamp are
// silently excluded from time-bucketed views instead of failing the whole
// computation.
package stats

import (
	"sort"
	"strings"
	"time"
)

// NoData is the reserved series ID signaling "nothing matched". The
// presentation layer translates it; this package never emits display text.
const NoData = "NO_DATA"

// UnknownCompany labels trips whose company name is absent.
const UnknownCompany = "Unknown company"

// OthersLabel labels the synthetic bucket holding companies beyond the top N.
const OthersLabel = "Others"

const topCompanies = 5

const (
	StatusWaiting   = "WAITING"
	StatusCompleted = "COMPLETED"
	StatusUnloaded  = "UNLOADED"
	StatusCanceled  = "CANCELED"
	StatusUnknown   = "UNKNOWN"
)

const (
	colorAmber = "#F59E0B"
	colorGreen = "#22C55E"
	colorTeal  = "#14B8A6"
	colorRed   = "#EF4444"
	colorGray  = "#9CA3AF"
)

// TripRecord is the aggregation input. ArrivalAt is an ISO-8601 datetime
// string; an empty or unparseable value excludes the record from any
// date-bucketed view.
type TripRecord struct {
	ID           string
	CompanyName  string
	ArrivalAt    string
	UnloadStatus string
}

// SeriesPoint is a generic (label, count) pair. Color is set only by
// StatusForDay.
type SeriesPoint struct {
	ID    string `json:"id"`
	Value int64  `json:"value"`
	Color string `json:"color,omitempty"`
}

// DailyBucket holds per-status counts for one calendar day of the 7-day view.
type DailyBucket struct {
	Date      string `json:"date"`
	DayName   string `json:"day_name"`
	Waiting   int64  `json:"waiting"`
	Completed int64  `json:"completed"`
	Unloaded  int64  `json:"unloaded"`
	Canceled  int64  `json:"canceled"`
	Unknown   int64  `json:"unknown"`
}

// CalendarPoint is one calendar day's total trip count.
type CalendarPoint struct {
	Day   string `json:"day"`
	Value int64  `json:"value"`
}

// CompaniesAllTime counts trips per company across all time, descending,
// truncated to the top 5 plus an "Others" bucket. Empty input yields an
// empty slice, not the NoData sentinel; the month view behaves differently
// on purpose.
func CompaniesAllTime(trips []TripRecord) []SeriesPoint {
	counts := make(map[string]int64, len(trips))
	for _, trip := range trips {
		counts[companyLabel(trip.CompanyName)]++
	}
	return truncateTopN(sortedPoints(counts), topCompanies, OthersLabel)
}

// CompaniesForMonth is CompaniesAllTime restricted to trips arriving in the
// same calendar month and year as ref. Timestamps are interpreted in ref's
// location before the month is extracted. When the input is empty or
// nothing falls in the month, a single NoData sentinel point is returned.
func CompaniesForMonth(trips []TripRecord, ref time.Time) []SeriesPoint {
	loc := ref.Location()
	counts := make(map[string]int64)
	for _, trip := range trips {
		at, ok := ParseArrival(trip.ArrivalAt)
		if !ok {
			continue
		}
		at = at.In(loc)
		if at.Year() != ref.Year() || at.Month() != ref.Month() {
			continue
		}
		counts[companyLabel(trip.CompanyName)]++
	}
	if len(counts) == 0 {
		return []SeriesPoint{{ID: NoData, Value: 0}}
	}
	return truncateTopN(sortedPoints(counts), topCompanies, OthersLabel)
}

// StatusForDay counts trips arriving on ref's calendar day per normalized
// unload status, descending, each point colored from the fixed palette.
// Timestamps are interpreted in ref's location. Status cardinality is small,
// so no top-N truncation applies. Empty input or no match yields the NoData
// sentinel.
func StatusForDay(trips []TripRecord, ref time.Time) []SeriesPoint {
	loc := ref.Location()
	counts := make(map[string]int64)
	for _, trip := range trips {
		at, ok := ParseArrival(trip.ArrivalAt)
		if !ok {
			continue
		}
		at = at.In(loc)
		if at.Year() != ref.Year() || at.Month() != ref.Month() || at.Day() != ref.Day() {
			continue
		}
		counts[NormalizeStatus(trip.UnloadStatus)]++
	}
	if len(counts) == 0 {
		return []SeriesPoint{{ID: NoData, Value: 0}}
	}
	points := sortedPoints(counts)
	for i := range points {
		points[i].Color = StatusColor(points[i].ID)
	}
	return points
}

// DailyBreakdown returns exactly 7 buckets covering ref-6d through ref in
// ascending date order, each with per-status counters. Trips outside the
// window are dropped, never clipped into an edge bucket. Timestamps are
// interpreted in ref's location.
func DailyBreakdown(trips []TripRecord, ref time.Time) []DailyBucket {
	loc := ref.Location()
	start := dayStart(ref).AddDate(0, 0, -6)

	buckets := make([]DailyBucket, 7)
	index := make(map[string]int, 7)
	for i := range buckets {
		day := start.AddDate(0, 0, i)
		buckets[i] = DailyBucket{
			Date:    day.Format("2006-01-02"),
			DayName: day.Format("Mon"),
		}
		index[buckets[i].Date] = i
	}

	for _, trip := range trips {
		at, ok := ParseArrival(trip.ArrivalAt)
		if !ok {
			continue
		}
		pos, ok := index[at.In(loc).Format("2006-01-02")]
		if !ok {
			continue
		}
		switch ClosedStatus(trip.UnloadStatus) {
		case StatusWaiting:
			buckets[pos].Waiting++
		case StatusCompleted:
			buckets[pos].Completed++
		case StatusUnloaded:
			buckets[pos].Unloaded++
		case StatusCanceled:
			buckets[pos].Canceled++
		default:
			buckets[pos].Unknown++
		}
	}
	return buckets
}

// Calendar counts trips per distinct calendar day across all time. Unlike
// the reference-relative views, each timestamp keeps its own embedded offset
// when the date is extracted, since there is no reference instant to anchor
// a location. Output is sorted by day for stable responses, though callers
// must not rely on order.
func Calendar(trips []TripRecord) []CalendarPoint {
	counts := make(map[string]int64)
	for _, trip := range trips {
		at, ok := ParseArrival(trip.ArrivalAt)
		if !ok {
			continue
		}
		counts[at.Format("2006-01-02")]++
	}
	points := make([]CalendarPoint, 0, len(counts))
	for day, value := range counts {
		points = append(points, CalendarPoint{Day: day, Value: value})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day < points[j].Day })
	return points
}

// NormalizeStatus trims and uppercases a raw status code; absent becomes "-".
// Codes outside the closed set pass through so operators see them verbatim.
func NormalizeStatus(raw string) string {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return "-"
	}
	return raw
}

// ClosedStatus folds a raw status code into the fixed five-bucket set.
func ClosedStatus(raw string) string {
	switch NormalizeStatus(raw) {
	case StatusWaiting:
		return StatusWaiting
	case StatusCompleted:
		return StatusCompleted
	case StatusUnloaded:
		return StatusUnloaded
	case StatusCanceled:
		return StatusCanceled
	default:
		return StatusUnknown
	}
}

// StatusColor maps a normalized status code to its chart color.
func StatusColor(status string) string {
	switch status {
	case StatusWaiting:
		return colorAmber
	case StatusCompleted:
		return colorGreen
	case StatusUnloaded:
		return colorTeal
	case StatusCanceled:
		return colorRed
	default:
		return colorGray
	}
}

var arrivalLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseArrival parses a trip timestamp tolerantly, accepting the layouts the
// ingestion paths produce. It is the single definition of which arrival
// strings this system considers well formed; callers that validate input
// delegate here rather than keeping their own layout list.
func ParseArrival(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range arrivalLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func companyLabel(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UnknownCompany
	}
	return name
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sortedPoints(counts map[string]int64) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(counts))
	for id, value := range counts {
		points = append(points, SeriesPoint{ID: id, Value: value})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].ID < points[j].ID
	})
	return points
}

// truncateTopN keeps the first topCount points and folds the remainder into
// a single synthetic bucket. Shared by both company views so the bucketing
// rule cannot drift between them.
func truncateTopN(points []SeriesPoint, topCount int, label string) []SeriesPoint {
	if len(points) <= topCount {
		return points
	}
	var rest int64
	for _, point := range points[topCount:] {
		rest += point.Value
	}
	result := append(points[:topCount:topCount], SeriesPoint{ID: label, Value: rest})
	return result
}
