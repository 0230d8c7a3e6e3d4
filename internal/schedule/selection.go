package schedule

import (
	"errors"
	"sort"
)

var ErrEmptySelection = errors.New("selection must contain at least one window")

// SelectionSummary describes a set of selected windows on one court/date.
type SelectionSummary struct {
	EffectiveStart     string  `json:"effective_start"`
	EffectiveEnd       string  `json:"effective_end"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	TotalPrice         float64 `json:"total_price"`
	IsConsecutive      bool    `json:"is_consecutive"`
}

// ComputeSelection summarises an arbitrary, possibly non-contiguous set of
// selected windows. Duration is the sum of the individual window lengths,
// not the span between the effective start and end — selecting 09:00-10:00
// and 14:00-15:00 is 2 hours, not 6. Price sums per window so non-uniform
// pricing carries through.
func ComputeSelection(windows []Window) (SelectionSummary, error) {
	if len(windows) == 0 {
		return SelectionSummary{}, ErrEmptySelection
	}

	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartTime < sorted[j].StartTime })

	summary := SelectionSummary{
		EffectiveStart: sorted[0].StartTime,
		EffectiveEnd:   sorted[len(sorted)-1].EndTime,
		IsConsecutive:  true,
	}
	for i, w := range sorted {
		start, ok1 := minuteOfDay(w.StartTime)
		end, ok2 := minuteOfDay(w.EndTime)
		if !ok1 || !ok2 {
			return SelectionSummary{}, errors.New("malformed window time in selection")
		}
		summary.TotalDurationHours += float64(end-start) / 60
		summary.TotalPrice += w.Price
		if i > 0 && sorted[i-1].EndTime != w.StartTime {
			summary.IsConsecutive = false
		}
	}
	return summary, nil
}
