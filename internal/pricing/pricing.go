package pricing

import (
	"math"
	"time"

	"github.com/pricetrail/pricetrail/internal/domain/models"
)

// DateOnly truncates t to midnight UTC. All period arithmetic works at
// calendar-day granularity, so every date entering this package goes
// through this first.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether the closed date intervals [s1, e1] and [s2, e2]
// share at least one calendar day. A shared boundary day counts: a product
// cannot have two declared prices on the same day.
//
// Callers guarantee s1 <= e1 and s2 <= e2.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

// AveragePrice computes the mean effective daily price over the inclusive
// range [start, end]. The effective price of a day is the price of the
// first period covering it, or currentPrice when none does. The mean is
// rounded once, at the end, to the nearest integer.
//
// Periods are expected to be mutually non-overlapping, so at most one ever
// covers a day; if that invariant is broken upstream, the first period in
// slice order wins.
//
// Returns models.ErrInvalidPeriod when end is before start, which would
// otherwise iterate zero days and divide by zero.
func AveragePrice(currentPrice float64, periods []models.PricePeriod, start, end time.Time) (int64, error) {
	start = DateOnly(start)
	end = DateOnly(end)
	if end.Before(start) {
		return 0, models.ErrInvalidPeriod
	}

	var sum float64
	days := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		price := currentPrice
		for _, p := range periods {
			if p.Covers(day) {
				price = p.Price
				break
			}
		}
		sum += price
		days++
	}

	return int64(math.Round(sum / float64(days))), nil
}

// DayCount returns the number of calendar days in the inclusive range
// [start, end], or 0 when end is before start.
func DayCount(start, end time.Time) int {
	start = DateOnly(start)
	end = DateOnly(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
