package planner

import (
	"fmt"
	"strings"

	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// Placeholder list entries used for synthesized must-visit stops. The
// explanation generator treats them like empty lists so it never presents
// generic filler as a concrete recommendation.
const (
	placeholderNearby = "Options vary by neighborhood"
	placeholderFood   = "Plenty of choices nearby"
)

// Explain renders one prose paragraph for a timeline slot. It draws only on
// the slot's own fields plus the day number, city, pace, and transport the
// caller supplies — never on other catalog entries, and it fabricates no
// facts. Sentences appear in a fixed order and optional ones are omitted
// when their source field is empty; the result is joined with single spaces.
func Explain(slot domain.TimelineSlot, dayNumber int, city string, transport domain.Transport, pace domain.Pace) string {
	place := slot.Place
	duration := slot.End.Minutes() - slot.Start.Minutes()

	sentences := []string{
		fmt.Sprintf("Day %d in %s: %s is scheduled from %s to %s, about %d minutes.",
			dayNumber, city, place.Name, slot.Start, slot.End, duration),
	}

	if len(place.Activities) > 0 {
		sentences = append(sentences, fmt.Sprintf("While there, plan to %s.", joinList(place.Activities)))
	}
	if hasConcrete(place.Nearby, placeholderNearby) {
		sentences = append(sentences, fmt.Sprintf("Nearby options include %s.", joinList(place.Nearby)))
	}
	if hasConcrete(place.Food, placeholderFood) {
		sentences = append(sentences, fmt.Sprintf("For food, consider %s.", joinList(place.Food)))
	}

	switch pace {
	case domain.PacePacked:
		sentences = append(sentences, "It fits a packed pace, keeping the day moving between stops.")
	case domain.PaceRelaxed:
		sentences = append(sentences, "It suits a relaxed pace, leaving unhurried time at the stop.")
	default:
		sentences = append(sentences, "It keeps a balanced pace, mixing sightseeing with downtime.")
	}

	sentences = append(sentences, fmt.Sprintf("Plan your connections by %s.", transportPhrase(transport)))

	if slot.EstimatedTravelToNextMin > 0 {
		sentences = append(sentences, fmt.Sprintf("Allow about %d minutes to reach the next stop.", slot.EstimatedTravelToNextMin))
	}
	if place.Tip != "" {
		sentences = append(sentences, fmt.Sprintf("Tip: %s", place.Tip))
	}

	return strings.Join(sentences, " ")
}

// hasConcrete reports whether the list carries real content rather than
// nothing or only the synthesized placeholder.
func hasConcrete(list []string, placeholder string) bool {
	if len(list) == 0 {
		return false
	}
	return len(list) != 1 || list[0] != placeholder
}

// joinList renders a list as natural prose: "a", "a and b", "a, b, and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// transportPhrase lowers the mode label into sentence position.
func transportPhrase(t domain.Transport) string {
	switch t {
	case domain.TransportWalking:
		return "walking"
	case domain.TransportPublicTransit:
		return "public transit"
	case domain.TransportRideshare:
		return "rideshare or taxi"
	case domain.TransportRentalCar:
		return "rental car"
	default:
		return strings.ToLower(string(t))
	}
}
