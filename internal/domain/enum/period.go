package enum

import (
	"fmt"
	"time"
)

// Period selects the reporting window for the stats endpoints
type Period string

const (
	PeriodDay      Period = "day"
	PeriodWeek     Period = "week"
	PeriodMonth    Period = "month"
	PeriodSixMonth Period = "6month"
	PeriodYear     Period = "year"
	PeriodAll      Period = "all"
	PeriodCustom   Period = "custom"
)

// ParsePeriod parses the wire form. Empty defaults to "all".
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodSixMonth, PeriodYear, PeriodAll, PeriodCustom:
		return Period(s), nil
	case "":
		return PeriodAll, nil
	}
	return PeriodAll, fmt.Errorf("unknown period %q", s)
}

// Range resolves the period into a half-open window [from, to) anchored at
// now. For PeriodAll both bounds are zero, meaning no filter. For
// PeriodCustom the caller-supplied bounds are used; from is truncated to the
// start of its day and to is extended to the end of its day so a same-day
// custom range still covers that whole day.
func (p Period) Range(now time.Time, customFrom, customTo time.Time) (time.Time, time.Time, error) {
	endOfToday := startOfDay(now).AddDate(0, 0, 1)

	switch p {
	case PeriodDay:
		return startOfDay(now), endOfToday, nil
	case PeriodWeek:
		return startOfDay(now).AddDate(0, 0, -6), endOfToday, nil
	case PeriodMonth:
		return startOfDay(now).AddDate(0, -1, 0), endOfToday, nil
	case PeriodSixMonth:
		return startOfDay(now).AddDate(0, -6, 0), endOfToday, nil
	case PeriodYear:
		return startOfDay(now).AddDate(-1, 0, 0), endOfToday, nil
	case PeriodAll:
		return time.Time{}, time.Time{}, nil
	case PeriodCustom:
		if customFrom.IsZero() || customTo.IsZero() {
			return time.Time{}, time.Time{}, fmt.Errorf("custom period requires from and to dates")
		}
		from := startOfDay(customFrom)
		to := startOfDay(customTo).AddDate(0, 0, 1)
		if to.Before(from) {
			return time.Time{}, time.Time{}, fmt.Errorf("custom period end is before start")
		}
		return from, to, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", string(p))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TrendBucket is the grouping granularity for the sales trend report
type TrendBucket string

const (
	TrendBucketHour  TrendBucket = "hour"
	TrendBucketDay   TrendBucket = "day"
	TrendBucketMonth TrendBucket = "month"
)

// BucketFor picks the grouping granularity the trend chart uses for a
// period: hourly for a single day, monthly for year-or-wider windows,
// daily otherwise.
func BucketFor(p Period) TrendBucket {
	switch p {
	case PeriodDay:
		return TrendBucketHour
	case PeriodYear, PeriodAll, PeriodSixMonth:
		return TrendBucketMonth
	default:
		return TrendBucketDay
	}
}
