package availability

import (
	"testing"
	"time"

	"mentorhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-01-05 is a Monday.
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func rule(day int, start, end string) domain.AvailabilityRule {
	return domain.AvailabilityRule{
		MentorID:  1,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		Active:    true,
	}
}

func TestGenerateSlots_ExactWindow(t *testing.T) {
	slots := GenerateSlots([]domain.AvailabilityRule{rule(1, "09:00", "10:00")}, monday)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:30", slots[0].EndTime)
	assert.Equal(t, "09:30", slots[1].StartTime)
	assert.Equal(t, "10:00", slots[1].EndTime)
	assert.Equal(t, "2026-01-05", slots[0].Date)
}

func TestGenerateSlots_TrailingPartialWindowDropped(t *testing.T) {
	// 75-minute window: two full slots, the trailing 15 minutes are lost.
	slots := GenerateSlots([]domain.AvailabilityRule{rule(1, "09:00", "10:15")}, monday)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:30", slots[1].StartTime)
	assert.Equal(t, "10:00", slots[1].EndTime)
}

func TestGenerateSlots_WindowShorterThanSlot(t *testing.T) {
	slots := GenerateSlots([]domain.AvailabilityRule{rule(1, "09:00", "09:20")}, monday)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ContainedInRuleWindow(t *testing.T) {
	r := rule(1, "08:15", "11:45")
	slots := GenerateSlots([]domain.AvailabilityRule{r}, monday)

	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.GreaterOrEqual(t, s.StartTime, r.StartTime)
		assert.LessOrEqual(t, s.EndTime, r.EndTime)
	}
}

func TestGenerateSlots_WeekdayFilter(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(2, "09:00", "17:00"),
		rule(0, "09:00", "17:00"),
	}
	slots := GenerateSlots(rules, monday)
	assert.Empty(t, slots)
}

func TestGenerateSlots_OverlappingRulesProduceDuplicates(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(1, "09:00", "10:00"),
		rule(1, "09:30", "10:30"),
	}
	slots := GenerateSlots(rules, monday)

	require.Len(t, slots, 4)
	// the 09:30-10:00 window appears once per rule, in rule order
	assert.Equal(t, "09:30", slots[1].StartTime)
	assert.Equal(t, "09:30", slots[2].StartTime)
}

func TestGenerateSlots_PastDatesNotFiltered(t *testing.T) {
	past := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday
	slots := GenerateSlots([]domain.AvailabilityRule{rule(1, "09:00", "10:00")}, past)
	assert.Len(t, slots, 2)
}

func TestGenerateSlots_MalformedRuleSkipped(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(1, "not-a-time", "10:00"),
		rule(1, "09:00", "10:00"),
	}
	slots := GenerateSlots(rules, monday)
	assert.Len(t, slots, 2)
}
