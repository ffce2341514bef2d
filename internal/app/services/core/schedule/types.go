package schedule

import "time"

// clock holds a local wall time (hour and minute).
type clock struct {
	H int
	M int
}

func (c clock) minutes() int {
	return c.H*60 + c.M
}

// breakSpan is a pause inside a working day during which no slot may overlap.
type breakSpan struct {
	Start clock
	End   clock
}

// dayRule is the effective working-hours rule for a single calendar day.
type dayRule struct {
	Start           clock
	End             clock
	DurationMinutes int
	Breaks          []breakSpan
}

// compiledSchedule is a schedule normalized for day-by-day expansion. All
// clamping and fallback handling happens while compiling, so the enumerator
// only ever sees well-formed rules.
type compiledSchedule struct {
	hasDefault  bool
	defaultRule dayRule
	defaultDays map[time.Weekday]bool
	overrides   map[time.Weekday]dayRule
	blocked     map[string]struct{}
}
