package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/exceptions"
	"slotly-service/internal/pkg/utils"
)

// minScheduleTextLength is the fewest characters a description must have
// before it is worth sending to the extraction model.
const minScheduleTextLength = 15

// offTopicKeywords flags descriptions that are clearly not about working
// hours, in English and Portuguese.
var offTopicKeywords = []string{"recipe", "receita", "bolo", "cake", "poem", "poema", "piada", "joke"}

// requiredScheduleFields must all be present on the default rule after
// extraction.
var requiredScheduleFields = []string{"days", "start_time", "end_time", "slot_duration_minutes"}

// Fallbacks applied while compiling loosely extracted rules.
var (
	fallbackStartClock = clock{H: 9}
	fallbackEndClock   = clock{H: 17}
)

const fallbackDurationMinutes = 30

// validateText runs the cheap checks that reject a request before any
// extraction call is made.
func validateText(text string) error {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minScheduleTextLength {
		return exceptions.ErrScheduleTextTooShort(errors.New(constvars.ErrDevScheduleTextTooShort))
	}
	lowered := strings.ToLower(text)
	for _, keyword := range offTopicKeywords {
		if strings.Contains(lowered, keyword) {
			return exceptions.ErrScheduleOffTopic(errors.New(constvars.ErrDevInvalidInput), keyword)
		}
	}
	return nil
}

// missingScheduleFields lists the required default-rule fields the extraction
// failed to produce, in a stable order.
func missingScheduleFields(structure *models.ScheduleStructure) []string {
	if structure == nil || structure.Default == nil {
		return requiredScheduleFields
	}
	var missing []string
	def := structure.Default
	if len(def.Days) == 0 {
		missing = append(missing, "days")
	}
	if strings.TrimSpace(def.StartTime) == "" {
		missing = append(missing, "start_time")
	}
	if strings.TrimSpace(def.EndTime) == "" {
		missing = append(missing, "end_time")
	}
	if def.SlotDurationMinutes == 0 {
		missing = append(missing, "slot_duration_minutes")
	}
	return missing
}

// validateStructure gates enumeration on the extracted structure carrying a
// usable default rule.
func validateStructure(structure *models.ScheduleStructure) error {
	if missing := missingScheduleFields(structure); len(missing) > 0 {
		return exceptions.ErrScheduleIncomplete(errors.New(constvars.ErrDevMissingRequiredFields), strings.Join(missing, ", "))
	}
	return nil
}

// parseClockFlex accepts "9:00", "09.30" and similar wall-time variants.
func parseClockFlex(s string) (clock, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return clock{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return clock{}, false
	}
	return clock{H: h, M: m}, true
}

// clockOrFallback substitutes the fallback when a wall time cannot be
// understood, so a partially garbled rule still yields a usable day.
func clockOrFallback(s string, fallback clock) clock {
	if c, ok := parseClockFlex(s); ok {
		return c
	}
	return fallback
}

func mapDayToken(s string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mon", "monday":
		return time.Monday, true
	case "tue", "tues", "tuesday":
		return time.Tuesday, true
	case "wed", "wednesday":
		return time.Wednesday, true
	case "thu", "thur", "thurs", "thursday":
		return time.Thursday, true
	case "fri", "friday":
		return time.Friday, true
	case "sat", "saturday":
		return time.Saturday, true
	case "sun", "sunday":
		return time.Sunday, true
	}
	return time.Sunday, false
}

// compileBreaks keeps only breaks with parsable bounds and a positive span.
func compileBreaks(breaks []models.BreakWindow) []breakSpan {
	var out []breakSpan
	for _, b := range breaks {
		start, ok1 := parseClockFlex(b.Start)
		end, ok2 := parseClockFlex(b.End)
		if !ok1 || !ok2 || start.minutes() >= end.minutes() {
			continue
		}
		out = append(out, breakSpan{Start: start, End: end})
	}
	return out
}

// compileRule normalizes the default rule. Unparsable times fall back to
// 09:00/17:00 and non-positive durations clamp to 30 minutes.
func compileRule(rule *models.ScheduleRule) dayRule {
	out := dayRule{
		Start:           clockOrFallback(rule.StartTime, fallbackStartClock),
		End:             clockOrFallback(rule.EndTime, fallbackEndClock),
		DurationMinutes: rule.SlotDurationMinutes,
		Breaks:          compileBreaks(rule.Breaks),
	}
	if out.DurationMinutes <= 0 {
		out.DurationMinutes = fallbackDurationMinutes
	}
	return out
}

// compileOverride normalizes a per-weekday override. An omitted duration
// inherits the default rule's duration, and omitted breaks inherit the
// default rule's breaks. An override carrying an explicitly empty break list
// means no breaks on that day.
func compileOverride(rule *models.ScheduleRule, defaultRule dayRule) dayRule {
	out := dayRule{
		Start:           clockOrFallback(rule.StartTime, fallbackStartClock),
		End:             clockOrFallback(rule.EndTime, fallbackEndClock),
		DurationMinutes: rule.SlotDurationMinutes,
	}
	if out.DurationMinutes <= 0 {
		out.DurationMinutes = defaultRule.DurationMinutes
	}
	if out.DurationMinutes <= 0 {
		out.DurationMinutes = fallbackDurationMinutes
	}
	if rule.Breaks == nil {
		out.Breaks = defaultRule.Breaks
	} else {
		out.Breaks = compileBreaks(rule.Breaks)
	}
	return out
}

// buildBlockedSet expands blocked entries into a set of ISO date keys. Range
// entries are inclusive on both ends and expanded one calendar day at a time.
// Entries that cannot be parsed are skipped.
func buildBlockedSet(periods []models.BlockedPeriod) map[string]struct{} {
	out := make(map[string]struct{})
	for _, p := range periods {
		if p.Date != "" {
			if parsed, err := time.Parse(utils.DateLayoutISO, p.Date); err == nil {
				out[parsed.Format(utils.DateLayoutISO)] = struct{}{}
			}
			continue
		}
		start, err1 := time.Parse(utils.DateLayoutISO, p.Start)
		end, err2 := time.Parse(utils.DateLayoutISO, p.End)
		if err1 != nil || err2 != nil || end.Before(start) {
			continue
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			out[d.Format(utils.DateLayoutISO)] = struct{}{}
		}
	}
	return out
}

// compileSchedule builds the expansion-ready form of an extracted structure.
func compileSchedule(structure *models.ScheduleStructure) compiledSchedule {
	cs := compiledSchedule{
		defaultDays: make(map[time.Weekday]bool),
		overrides:   make(map[time.Weekday]dayRule),
		blocked:     buildBlockedSet(structure.Blocked),
	}
	if structure.Default != nil {
		cs.hasDefault = true
		cs.defaultRule = compileRule(structure.Default)
		for _, token := range structure.Default.Days {
			if wd, ok := mapDayToken(token); ok {
				cs.defaultDays[wd] = true
			}
		}
	}
	for name, rule := range structure.Overrides {
		wd, ok := mapDayToken(name)
		if !ok || rule == nil {
			continue
		}
		cs.overrides[wd] = compileOverride(rule, cs.defaultRule)
	}
	return cs
}

// ruleFor resolves the working rule for one calendar day. A blocked date
// yields no rule at all, then a weekday override wins, then the default rule
// when the weekday is enabled. An override is honored even for weekdays
// excluded from the default days.
func (cs compiledSchedule) ruleFor(day time.Time) (dayRule, bool) {
	if _, blocked := cs.blocked[day.Format(utils.DateLayoutISO)]; blocked {
		return dayRule{}, false
	}
	if rule, ok := cs.overrides[day.Weekday()]; ok {
		return rule, true
	}
	if cs.hasDefault && cs.defaultDays[day.Weekday()] {
		return cs.defaultRule, true
	}
	return dayRule{}, false
}

// overlappingBreak reports the first break the candidate [t, t+dur) overlaps.
func overlappingBreak(t, dur int, breaks []breakSpan) (breakSpan, bool) {
	for _, b := range breaks {
		if t < b.End.minutes() && t+dur > b.Start.minutes() {
			return b, true
		}
	}
	return breakSpan{}, false
}

func minutesToHHMM(t int) string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// slotsForDay walks the working window emitting fixed-length slots. A
// candidate overlapping a break is not emitted; the cursor then either jumps
// to the break's end or steps over it one slot length at a time, depending on
// the strategy. A candidate that would run past the end of the window is
// dropped.
func slotsForDay(date string, rule dayRule, strategy string) []models.Slot {
	dur := rule.DurationMinutes
	end := rule.End.minutes()
	var out []models.Slot
	for t := rule.Start.minutes(); t+dur <= end; {
		if b, overlaps := overlappingBreak(t, dur, rule.Breaks); overlaps {
			if strategy == constvars.SlotBreakStrategySkip {
				t += dur
			} else {
				t = b.End.minutes()
			}
			continue
		}
		out = append(out, models.Slot{
			Date:            date,
			Time:            minutesToHHMM(t),
			DurationMinutes: dur,
			Status:          constvars.SlotStatusAvailable,
		})
		t += dur
	}
	return out
}

// generateSlots expands an extracted structure into every bookable slot over
// horizonDays consecutive calendar days starting at from. The result is
// ordered by date then time, eagerly materialized, and free of duplicates.
// The same input always produces the same output.
func generateSlots(structure *models.ScheduleStructure, from time.Time, horizonDays int, strategy string) []models.Slot {
	if structure == nil || horizonDays <= 0 {
		return nil
	}
	cs := compileSchedule(structure)
	first := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	last := first.AddDate(0, 0, horizonDays-1)
	var out []models.Slot
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		rule, ok := cs.ruleFor(d)
		if !ok {
			continue
		}
		out = append(out, slotsForDay(d.Format(utils.DateLayoutISO), rule, strategy)...)
	}
	return out
}
