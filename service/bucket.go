package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/AnTengye/accreditation/model"
)

// Fixed bucket cutoffs. An end date equal to a cutoff belongs to the earlier bucket.
var (
	endOf2024   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	endOfH12025 = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	endOf2025   = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
)

// ClassifyDateBucket places an end date into exactly one bucket.
// Missing or unparseable dates go to BucketUnknown.
func ClassifyDateBucket(end model.Date) model.Bucket {
	if !end.Valid {
		return model.BucketUnknown
	}
	switch t := end.Time; {
	case !t.After(endOf2024):
		return model.BucketEnded
	case !t.After(endOfH12025):
		return model.BucketH1_2025
	case !t.After(endOf2025):
		return model.BucketH2_2025
	default:
		return model.BucketFuture2026
	}
}

// TimePeriodStats counts contracts per bucket
type TimePeriodStats struct {
	Ended      int `json:"ended"`
	H1_2025    int `json:"h1_2025"`
	H2_2025    int `json:"h2_2025"`
	Future2026 int `json:"future_2026"`
	Unknown    int `json:"unknown"`
	Total      int `json:"total"`
}

// CalculateTimePeriodStats classifies every contract once
func CalculateTimePeriodStats(contracts []model.Contract) TimePeriodStats {
	var stats TimePeriodStats
	for _, c := range contracts {
		switch ClassifyDateBucket(c.EndDate) {
		case model.BucketEnded:
			stats.Ended++
		case model.BucketH1_2025:
			stats.H1_2025++
		case model.BucketH2_2025:
			stats.H2_2025++
		case model.BucketFuture2026:
			stats.Future2026++
		default:
			stats.Unknown++
		}
	}
	stats.Total = len(contracts)
	return stats
}

// TimelineFilter is the selector value of the timeline view
type TimelineFilter string

const (
	TimelineAll     TimelineFilter = "all"
	TimelineEnded   TimelineFilter = "ended"
	TimelineH12025  TimelineFilter = "h1-2025"
	TimelineH22025  TimelineFilter = "h2-2025"
	Timeline2026    TimelineFilter = "2026"
	TimelineUnknown TimelineFilter = "unknown"
)

var ErrUnknownTimelineFilter = errors.New("unknown timeline filter")

var timelineBuckets = map[TimelineFilter]model.Bucket{
	TimelineEnded:   model.BucketEnded,
	TimelineH12025:  model.BucketH1_2025,
	TimelineH22025:  model.BucketH2_2025,
	Timeline2026:    model.BucketFuture2026,
	TimelineUnknown: model.BucketUnknown,
}

// ParseTimelineFilter validates a selector value; the empty string means all
func ParseTimelineFilter(s string) (TimelineFilter, error) {
	f := TimelineFilter(s)
	if f == "" || f == TimelineAll {
		return TimelineAll, nil
	}
	if _, ok := timelineBuckets[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTimelineFilter, s)
	}
	return f, nil
}

// FilterTimeline returns the contracts whose end date falls in the selected bucket,
// in original order. TimelineAll returns the whole set.
func FilterTimeline(contracts []model.Contract, f TimelineFilter) []model.Contract {
	result := make([]model.Contract, 0, len(contracts))
	bucket, ok := timelineBuckets[f]
	for _, c := range contracts {
		if !ok || ClassifyDateBucket(c.EndDate) == bucket {
			result = append(result, c)
		}
	}
	return result
}
