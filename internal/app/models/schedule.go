package models

// ScheduleRule is one working-hours rule extracted from a doctor's free-form
// description. Day names are canonical lowercase English ("monday".."sunday").
type ScheduleRule struct {
	Days                []string      `json:"days"`
	StartTime           string        `json:"start_time"`
	EndTime             string        `json:"end_time"`
	SlotDurationMinutes int           `json:"slot_duration_minutes"`
	Breaks              []BreakWindow `json:"breaks,omitempty"`
}

type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BlockedPeriod is a normalized blocked entry: either a single date or an
// inclusive start/end range. Exactly one of the two forms is populated.
type BlockedPeriod struct {
	Date  string `json:"date,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// ScheduleStructure is the normalized output of schedule extraction, the
// input to slot generation.
type ScheduleStructure struct {
	Default   *ScheduleRule            `json:"default,omitempty"`
	Overrides map[string]*ScheduleRule `json:"overrides,omitempty"`
	Blocked   []BlockedPeriod          `json:"blocked,omitempty"`
}
