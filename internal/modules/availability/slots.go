package availability

import (
	"fmt"
	"time"

	"mentorhub/internal/domain"
)

// SlotMinutes is the fixed size of a bookable window.
const SlotMinutes = 30

// Slot is a derived, non-persisted bookable window on a concrete date.
type Slot struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// GenerateSlots expands weekly rules into discrete slots for one date.
// Rules whose day does not match the date's weekday are skipped. Each
// matching rule is walked in SlotMinutes steps from its start; a trailing
// window shorter than SlotMinutes is dropped, not shortened. Results keep
// rule order and overlapping rules yield duplicate slots on purpose.
// Past dates are not filtered here.
func GenerateSlots(rules []domain.AvailabilityRule, date time.Time) []Slot {
	day := int(date.Weekday())
	dateStr := date.Format("2006-01-02")

	out := make([]Slot, 0)
	for _, r := range rules {
		if r.DayOfWeek != day {
			continue
		}

		start, err := parseHHMM(r.StartTime)
		if err != nil {
			continue
		}
		end, err := parseHHMM(r.EndTime)
		if err != nil {
			continue
		}

		for t := start; t+SlotMinutes <= end; t += SlotMinutes {
			out = append(out, Slot{
				Date:      dateStr,
				StartTime: formatHHMM(t),
				EndTime:   formatHHMM(t + SlotMinutes),
			})
		}
	}
	return out
}

// parseHHMM converts "HH:MM" to minutes since midnight.
func parseHHMM(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatHHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
