package extraction

import (
	"errors"
	"strings"

	"slotly-service/internal/app/models"

	"github.com/tidwall/gjson"
)

// parseScheduleContent maps the loosely shaped model output onto the
// normalized schedule structure. The payload may arrive wrapped in a
// "schedule" key, carry overrides as either a day-keyed object or a list of
// day records, and mix blocked-date entry forms.
func parseScheduleContent(content string) (*models.ScheduleStructure, error) {
	cleaned := stripCodeFences(content)
	if !gjson.Valid(cleaned) {
		return nil, errors.New("model returned invalid JSON")
	}

	root := gjson.Parse(cleaned)
	if wrapped := root.Get("schedule"); wrapped.IsObject() {
		root = wrapped
	}

	structure := &models.ScheduleStructure{}

	defaultNode := root.Get("default")
	if !defaultNode.Exists() {
		// Some responses skip the wrapper entirely; then the whole object is
		// the default rule.
		defaultNode = root
	}
	structure.Default = parseRule(defaultNode)

	overridesNode := root.Get("overrides")
	switch {
	case overridesNode.IsObject():
		structure.Overrides = make(map[string]*models.ScheduleRule)
		overridesNode.ForEach(func(day, node gjson.Result) bool {
			name := strings.ToLower(strings.TrimSpace(day.String()))
			if rule := parseRule(node); name != "" && rule != nil {
				structure.Overrides[name] = rule
			}
			return true
		})
	case overridesNode.IsArray():
		structure.Overrides = make(map[string]*models.ScheduleRule)
		overridesNode.ForEach(func(_, node gjson.Result) bool {
			name := strings.ToLower(strings.TrimSpace(node.Get("day").String()))
			if rule := parseRule(node); name != "" && rule != nil {
				// Duplicate day records collapse to the last one.
				structure.Overrides[name] = rule
			}
			return true
		})
	}

	root.Get("blocked_dates").ForEach(func(_, entry gjson.Result) bool {
		switch {
		case entry.Type == gjson.String:
			structure.Blocked = append(structure.Blocked, models.BlockedPeriod{Date: entry.String()})
		case entry.IsObject() && entry.Get("date").Exists():
			structure.Blocked = append(structure.Blocked, models.BlockedPeriod{Date: entry.Get("date").String()})
		case entry.IsObject() && entry.Get("start").Exists():
			structure.Blocked = append(structure.Blocked, models.BlockedPeriod{
				Start: entry.Get("start").String(),
				End:   entry.Get("end").String(),
			})
		}
		return true
	})

	root.Get("blocked_date_ranges").ForEach(func(_, entry gjson.Result) bool {
		structure.Blocked = append(structure.Blocked, models.BlockedPeriod{
			Start: entry.Get("start").String(),
			End:   entry.Get("end").String(),
		})
		return true
	})

	return structure, nil
}

// parseRule reads one rule object. A missing "breaks" key stays nil while a
// present-but-empty list becomes an allocated empty slice; the generation
// engine relies on that distinction for override fallback.
func parseRule(node gjson.Result) *models.ScheduleRule {
	if !node.IsObject() {
		return nil
	}

	rule := &models.ScheduleRule{
		StartTime:           strings.TrimSpace(node.Get("start_time").String()),
		EndTime:             strings.TrimSpace(node.Get("end_time").String()),
		SlotDurationMinutes: int(node.Get("slot_duration_minutes").Int()),
	}

	node.Get("days").ForEach(func(_, day gjson.Result) bool {
		if name := strings.ToLower(strings.TrimSpace(day.String())); name != "" {
			rule.Days = append(rule.Days, name)
		}
		return true
	})

	if breaksNode := node.Get("breaks"); breaksNode.IsArray() {
		rule.Breaks = []models.BreakWindow{}
		breaksNode.ForEach(func(_, b gjson.Result) bool {
			rule.Breaks = append(rule.Breaks, models.BreakWindow{
				Start: strings.TrimSpace(b.Get("start").String()),
				End:   strings.TrimSpace(b.Get("end").String()),
			})
			return true
		})
	}

	return rule
}

// stripCodeFences removes the ```json fence some models wrap around their
// output despite being asked for raw JSON.
func stripCodeFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
