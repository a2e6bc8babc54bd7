package rental

import (
	"iter"
	"time"

	"github.com/T3nda22/DungogWebsite2c/internal/httperr"
)

const DateLayout = "2006-01-02"

// ParseDate aceita somente YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_format")
	}
	return t, nil
}

func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// DayCount counts both endpoints: 2025-06-01 .. 2025-06-03 is 3 days.
// The same convention drives block materialization, so the number of
// priced days always equals the number of blocked days.
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func TotalPrice(pricePerDay float64, start, end time.Time) float64 {
	return pricePerDay * float64(DayCount(start, end))
}

// DatesIn percorre cada dia do intervalo, inclusive nas duas pontas
func DatesIn(start, end time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// FreeDates enumerates, in chronological order, every day of the horizon
// [start, start+horizonDays] that is not in the blocked set. The sequence
// is lazy and can be ranged over more than once.
func FreeDates(start time.Time, horizonDays int, blocked map[time.Time]bool) iter.Seq[time.Time] {
	end := start.AddDate(0, 0, horizonDays)
	return func(yield func(time.Time) bool) {
		for d := range DatesIn(start, end) {
			if blocked[d] {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// ValidateRange roda as validações do pedido na ordem do fluxo:
// formato, passado, intervalo invertido.
func ValidateRange(start, end, today time.Time) error {
	if start.Before(today) {
		return httperr.ErrBusiness("past_start_date")
	}
	if !start.Before(end) {
		return httperr.ErrBusiness("inverted_range")
	}
	return nil
}
