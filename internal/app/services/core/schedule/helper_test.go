package schedule

import (
	"testing"
	"time"

	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

// fixedMonday anchors generation on 2025-06-02 so weekday math is stable.
func fixedMonday() time.Time {
	return time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
}

func weekdaySchedule() *models.ScheduleStructure {
	return &models.ScheduleStructure{
		Default: &models.ScheduleRule{
			Days:                []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
			StartTime:           "09:00",
			EndTime:             "17:00",
			SlotDurationMinutes: 30,
		},
	}
}

func slotTimesOn(slots []models.Slot, date string) []string {
	var out []string
	for _, s := range slots {
		if s.Date == date {
			out = append(out, s.Time)
		}
	}
	return out
}

func TestGenerateSlotsWeekdaySchedule(t *testing.T) {
	slots := generateSlots(weekdaySchedule(), fixedMonday(), 7, constvars.SlotBreakStrategyJump)

	assert.Len(t, slots, 80, "five working days of sixteen half-hour slots each")
	assert.Equal(t, "2025-06-02", slots[0].Date, "first slot falls on the horizon start")
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, constvars.SlotStatusAvailable, slots[0].Status)
	assert.Equal(t, 30, slots[0].DurationMinutes)

	monday := slotTimesOn(slots, "2025-06-02")
	assert.Len(t, monday, 16)
	assert.Equal(t, "16:30", monday[len(monday)-1], "last slot of the day starts at 16:30")

	assert.Empty(t, slotTimesOn(slots, "2025-06-07"), "no slots on Saturday")
	assert.Empty(t, slotTimesOn(slots, "2025-06-08"), "no slots on Sunday")
}

func TestGenerateSlotsLunchBreak(t *testing.T) {
	structure := weekdaySchedule()
	structure.Default.Breaks = []models.BreakWindow{{Start: "12:00", End: "13:00"}}

	slots := generateSlots(structure, fixedMonday(), 7, constvars.SlotBreakStrategyJump)

	assert.Len(t, slots, 70, "fourteen slots per working day with the lunch hour removed")
	monday := slotTimesOn(slots, "2025-06-02")
	assert.NotContains(t, monday, "12:00")
	assert.NotContains(t, monday, "12:30")
	assert.Contains(t, monday, "11:30", "slot ending exactly at the break start is kept")
	assert.Contains(t, monday, "13:00", "enumeration resumes at the break end")
}

func TestGenerateSlotsBlockedRange(t *testing.T) {
	structure := weekdaySchedule()
	structure.Blocked = []models.BlockedPeriod{{Start: "2025-06-03", End: "2025-06-04"}}

	slots := generateSlots(structure, fixedMonday(), 7, constvars.SlotBreakStrategyJump)

	assert.Empty(t, slotTimesOn(slots, "2025-06-03"), "blocked Tuesday emits nothing")
	assert.Empty(t, slotTimesOn(slots, "2025-06-04"), "blocked Wednesday emits nothing")
	assert.Len(t, slots, 48, "remaining Monday, Thursday and Friday are unaffected")
}

func TestGenerateSlotsSingleBlockedDate(t *testing.T) {
	structure := weekdaySchedule()
	structure.Blocked = []models.BlockedPeriod{{Date: "2025-06-02"}}

	slots := generateSlots(structure, fixedMonday(), 7, constvars.SlotBreakStrategyJump)

	assert.Empty(t, slotTimesOn(slots, "2025-06-02"))
	assert.Len(t, slots, 64)
}

func TestGenerateSlotsMalformedBlockedEntriesSkipped(t *testing.T) {
	structure := weekdaySchedule()
	structure.Blocked = []models.BlockedPeriod{
		{Date: "not-a-date"},
		{Start: "2025-06-05", End: "2025-06-04"},
		{Start: "junk", End: "2025-06-05"},
	}

	slots := generateSlots(structure, fixedMonday(), 7, constvars.SlotBreakStrategyJump)

	assert.Len(t, slots, 80, "unparsable blocked entries must not abort or exclude anything")
}

func TestGenerateSlotsSaturdayOverride(t *testing.T) {
	structure := weekdaySchedule()
	structure.Overrides = map[string]*models.ScheduleRule{
		"saturday": {StartTime: "08:00", EndTime: "12:00", SlotDurationMinutes: 20},
	}

	slots := generateSlots(structure, fixedMonday(), 7, constvars.SlotBreakStrategyJump)

	saturday := slotTimesOn(slots, "2025-06-07")
	assert.Len(t, saturday, 12, "four hours of twenty-minute slots even though Saturday is not in the default days")
	assert.Equal(t, "08:00", saturday[0])
	assert.Equal(t, "11:40", saturday[len(saturday)-1])
	assert.Len(t, slots, 92, "weekday slots are unaffected by the override")

	for _, s := range slots {
		if s.Date == "2025-06-07" {
			assert.Equal(t, 20, s.DurationMinutes)
		} else {
			assert.Equal(t, 30, s.DurationMinutes)
		}
	}
}

func TestGenerateSlotsOverrideInheritsDefaults(t *testing.T) {
	structure := weekdaySchedule()
	structure.Default.Breaks = []models.BreakWindow{{Start: "12:00", End: "13:00"}}

	t.Run("Omitted Duration And Breaks", func(t *testing.T) {
		structure.Overrides = map[string]*models.ScheduleRule{
			"monday": {StartTime: "10:00", EndTime: "14:00"},
		}

		monday := slotTimesOn(generateSlots(structure, fixedMonday(), 1, constvars.SlotBreakStrategyJump), "2025-06-02")

		assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30", "13:00", "13:30"}, monday,
			"override inherits the default duration and lunch break")
	})

	t.Run("Explicitly Empty Breaks", func(t *testing.T) {
		structure.Overrides = map[string]*models.ScheduleRule{
			"monday": {StartTime: "10:00", EndTime: "14:00", Breaks: []models.BreakWindow{}},
		}

		monday := slotTimesOn(generateSlots(structure, fixedMonday(), 1, constvars.SlotBreakStrategyJump), "2025-06-02")

		assert.Len(t, monday, 8, "an empty break list means the day has no breaks")
		assert.Contains(t, monday, "12:00")
	})
}

func TestGenerateSlotsBlockedBeatsOverride(t *testing.T) {
	structure := weekdaySchedule()
	structure.Overrides = map[string]*models.ScheduleRule{
		"saturday": {StartTime: "08:00", EndTime: "12:00", SlotDurationMinutes: 20},
	}
	structure.Blocked = []models.BlockedPeriod{{Date: "2025-06-07"}}

	slots := generateSlots(structure, fixedMonday(), 7, constvars.SlotBreakStrategyJump)

	assert.Empty(t, slotTimesOn(slots, "2025-06-07"), "a blocked date wins over its weekday override")
	assert.Len(t, slots, 80)
}

func TestGenerateSlotsMalformedStartTime(t *testing.T) {
	structure := weekdaySchedule()
	structure.Default.StartTime = "9"

	slots := generateSlots(structure, fixedMonday(), 1, constvars.SlotBreakStrategyJump)

	assert.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].Time, "unparsable start time falls back to 09:00")
}

func TestGenerateSlotsDurationClamped(t *testing.T) {
	structure := weekdaySchedule()
	structure.Default.SlotDurationMinutes = -5

	slots := generateSlots(structure, fixedMonday(), 1, constvars.SlotBreakStrategyJump)

	assert.Len(t, slots, 16, "non-positive duration clamps to thirty minutes")
	assert.Equal(t, 30, slots[0].DurationMinutes)
}

func TestGenerateSlotsStrictContainment(t *testing.T) {
	structure := weekdaySchedule()
	structure.Default.EndTime = "17:10"

	monday := slotTimesOn(generateSlots(structure, fixedMonday(), 1, constvars.SlotBreakStrategyJump), "2025-06-02")

	assert.Equal(t, "16:30", monday[len(monday)-1], "a slot that would end past 17:10 is dropped")
}

func TestGenerateSlotsBreakJumpRealignsCursor(t *testing.T) {
	structure := weekdaySchedule()
	structure.Default.Breaks = []models.BreakWindow{{Start: "12:15", End: "12:45"}}

	monday := slotTimesOn(generateSlots(structure, fixedMonday(), 1, constvars.SlotBreakStrategyJump), "2025-06-02")

	assert.Len(t, monday, 14)
	assert.NotContains(t, monday, "12:00", "candidate overlapping the break head is dropped")
	assert.Contains(t, monday, "12:45", "cursor resumes exactly at the break end, off the half-hour grid")
	assert.Equal(t, "16:15", monday[len(monday)-1], "grid stays shifted for the rest of the day")
}

func TestGenerateSlotsBreakSkipStrategy(t *testing.T) {
	structure := weekdaySchedule()
	structure.Default.Breaks = []models.BreakWindow{{Start: "12:15", End: "12:45"}}

	monday := slotTimesOn(generateSlots(structure, fixedMonday(), 1, constvars.SlotBreakStrategySkip), "2025-06-02")

	assert.NotContains(t, monday, "12:00")
	assert.NotContains(t, monday, "12:30")
	assert.Contains(t, monday, "13:00", "skip strategy stays on the half-hour grid")
	assert.Equal(t, "16:30", monday[len(monday)-1])
}

func TestGenerateSlotsDeterministicAndOrdered(t *testing.T) {
	structure := weekdaySchedule()
	structure.Default.Breaks = []models.BreakWindow{{Start: "12:00", End: "13:00"}}
	structure.Overrides = map[string]*models.ScheduleRule{
		"saturday": {StartTime: "08:00", EndTime: "12:00", SlotDurationMinutes: 20},
	}
	structure.Blocked = []models.BlockedPeriod{{Date: "2025-06-04"}}

	first := generateSlots(structure, fixedMonday(), 14, constvars.SlotBreakStrategyJump)
	second := generateSlots(structure, fixedMonday(), 14, constvars.SlotBreakStrategyJump)

	assert.Equal(t, first, second, "identical input must produce identical output")
	assert.NotEmpty(t, first)

	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		ascending := prev.Date < cur.Date || (prev.Date == cur.Date && prev.Time < cur.Time)
		assert.True(t, ascending, "slots must be strictly ascending by date then time, got %s %s before %s %s",
			prev.Date, prev.Time, cur.Date, cur.Time)
	}
}

func TestGenerateSlotsHorizonBounds(t *testing.T) {
	slots := generateSlots(weekdaySchedule(), fixedMonday(), 14, constvars.SlotBreakStrategyJump)

	assert.Len(t, slots, 160, "two full working weeks")
	assert.Equal(t, "2025-06-13", slots[len(slots)-1].Date, "nothing beyond the fourteenth day")

	assert.Empty(t, generateSlots(weekdaySchedule(), fixedMonday(), 0, constvars.SlotBreakStrategyJump))
	assert.Empty(t, generateSlots(nil, fixedMonday(), 7, constvars.SlotBreakStrategyJump))
}

func TestValidateText(t *testing.T) {
	t.Run("Too Short", func(t *testing.T) {
		err := validateText("mon 9-5")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientScheduleTextTooShort, customErr.ClientMessage)
	})

	t.Run("Off Topic", func(t *testing.T) {
		err := validateText("Receita de Bolo de chocolate com cobertura")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientScheduleOffTopic, customErr.ClientMessage)
	})

	t.Run("Valid Description", func(t *testing.T) {
		assert.NoError(t, validateText("Monday to Friday from 9am to 5pm, 30 minute sessions"))
	})
}

func TestMissingScheduleFields(t *testing.T) {
	t.Run("No Structure", func(t *testing.T) {
		assert.Equal(t, []string{"days", "start_time", "end_time", "slot_duration_minutes"}, missingScheduleFields(nil))
	})

	t.Run("No Default Rule", func(t *testing.T) {
		structure := &models.ScheduleStructure{
			Overrides: map[string]*models.ScheduleRule{
				"saturday": {StartTime: "08:00", EndTime: "12:00", SlotDurationMinutes: 20},
			},
		}
		assert.Len(t, missingScheduleFields(structure), 4)
	})

	t.Run("Partial Default Rule", func(t *testing.T) {
		structure := &models.ScheduleStructure{
			Default: &models.ScheduleRule{
				Days:      []string{"monday"},
				StartTime: "09:00",
			},
		}
		assert.Equal(t, []string{"end_time", "slot_duration_minutes"}, missingScheduleFields(structure))
	})

	t.Run("Complete Default Rule", func(t *testing.T) {
		assert.Empty(t, missingScheduleFields(weekdaySchedule()))
	})
}

func TestValidateStructure(t *testing.T) {
	err := validateStructure(&models.ScheduleStructure{Default: &models.ScheduleRule{Days: []string{"monday"}}})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)

	assert.NoError(t, validateStructure(weekdaySchedule()))
}

func TestParseClockFlex(t *testing.T) {
	cases := []struct {
		in     string
		wantH  int
		wantM  int
		wantOK bool
	}{
		{"09:00", 9, 0, true},
		{"9:05", 9, 5, true},
		{"17.30", 17, 30, true},
		{" 08:15 ", 8, 15, true},
		{"9", 0, 0, false},
		{"25:00", 0, 0, false},
		{"12:75", 0, 0, false},
		{"noon", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := parseClockFlex(tc.in)
		assert.Equal(t, tc.wantOK, ok, "input %q", tc.in)
		if ok {
			assert.Equal(t, clock{H: tc.wantH, M: tc.wantM}, got, "input %q", tc.in)
		}
	}
}
