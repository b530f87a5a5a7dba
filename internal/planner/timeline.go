package planner

import (
	"fmt"

	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// stayDurationMinutes is the fixed length of the synthetic stay-location slot
// emitted at the start of a day.
const stayDurationMinutes = 10

// BuildTimeline lays the given stops along a wall-clock timeline between
// dayStart and dayEnd. A moving cursor starts at dayStart; each stop's length
// comes from the duration parser and consecutive slots are separated by
// gapMinutes (a function of transport mode only). A stop whose end would
// pass dayEnd is dropped along with everything after it — durations are never
// shrunk to fit. Travel-to-next is gapMinutes on every emitted slot except
// the last, which gets zero.
//
// When stay is non-nil a synthetic 10-minute slot for it is emitted first.
// It is subject to the same day bound: a window shorter than the stay slot
// yields an empty timeline.
func BuildTimeline(
	dayStart, dayEnd domain.ClockTime,
	gapMinutes int,
	stops []domain.StopRecord,
	stay *domain.StopRecord,
) []domain.TimelineSlot {
	var slots []domain.TimelineSlot
	cursor := dayStart

	if stay != nil {
		end := cursor.Add(stayDurationMinutes)
		if end > dayEnd {
			return nil
		}
		slots = append(slots, domain.TimelineSlot{
			Start:                    cursor,
			End:                      end,
			Place:                    *stay,
			EstimatedTravelToNextMin: gapMinutes,
		})
		cursor = end.Add(gapMinutes)
	}

	for _, stop := range stops {
		end := cursor.Add(ParseDurationMinutes(stop.Duration))
		if end > dayEnd {
			break
		}
		slots = append(slots, domain.TimelineSlot{
			Start:                    cursor,
			End:                      end,
			Place:                    stop,
			EstimatedTravelToNextMin: gapMinutes,
		})
		cursor = end.Add(gapMinutes)
	}

	if len(slots) > 0 {
		slots[len(slots)-1].EstimatedTravelToNextMin = 0
	}
	return slots
}

// StayRecord synthesizes the pseudo-stop for the traveller's stay location.
func StayRecord(location, stayType string, transport domain.Transport) domain.StopRecord {
	description := "Your stay"
	if stayType != "" {
		description = fmt.Sprintf("Your stay (%s)", stayType)
	}
	return domain.StopRecord{
		Name:        location,
		Duration:    fmt.Sprintf("%d min", stayDurationMinutes),
		Description: description,
		Activities:  []string{"drop your bags", "grab a map at the desk"},
		Nearby:      []string{},
		Food:        []string{},
		Transport:   string(transport),
		Tip:         "",
	}
}
