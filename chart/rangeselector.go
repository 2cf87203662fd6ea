package chart

import "time"

// RangeStep is the calendar unit a preset counts backwards in.
type RangeStep int

const (
	StepDay RangeStep = iota
	StepMonth
	StepAll
)

// RangePreset is one button of the time range selector.
type RangePreset struct {
	LabelID string
	Count   int
	Step    RangeStep
}

func DefaultPresets() []RangePreset {
	return []RangePreset{
		{LabelID: "chart_range_week", Count: 7, Step: StepDay},
		{LabelID: "chart_range_month", Count: 1, Step: StepMonth},
		{LabelID: "chart_range_quarter", Count: 3, Step: StepMonth},
		{LabelID: "chart_range_all", Step: StepAll},
	}
}

// Window returns the [start, end] range the preset selects for data spanning
// min to max. The window trails back from max and never starts before min.
func (p RangePreset) Window(min, max time.Time) (time.Time, time.Time) {
	var start time.Time
	switch p.Step {
	case StepDay:
		start = max.AddDate(0, 0, -p.Count)
	case StepMonth:
		start = max.AddDate(0, -p.Count, 0)
	default:
		start = min
	}

	if start.Before(min) {
		start = min
	}
	return start, max
}
