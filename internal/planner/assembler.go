package planner

import (
	"strings"

	"github.com/google/uuid"

	"github.com/wanderplan/trip-planner/backend/internal/catalog"
	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// budgetTips is advisory text echoed into the summary, selected by exact
// budget value.
var budgetTips = map[domain.Budget]string{
	domain.BudgetLow:    "Focus on public transit, free attractions, markets, and street food.",
	domain.BudgetMedium: "Mix paid attractions + 1 special experience. Use transit + occasional rideshare.",
	domain.BudgetHigh:   "Prioritize top experiences, private tours, and premium dining (book ahead).",
}

// transportTips is advisory text echoed into the summary, selected by exact
// transport value.
var transportTips = map[domain.Transport]string{
	domain.TransportPublicTransit: "Buy a transit day-pass if available; plan attractions by neighborhoods.",
	domain.TransportRideshare:     "Batch stops to reduce rides; avoid peak hours if possible.",
	domain.TransportWalking:       "Stay central; plan one neighborhood per day.",
	domain.TransportRentalCar:     "Great for day-trips; confirm parking rules and tolls.",
}

// Planner assembles itineraries from a stop catalog. The catalog is consumed
// read-only; all mutable selection state is scoped to a single Build call.
type Planner struct {
	catalog *catalog.Catalog
}

// New constructs a Planner over the given catalog.
func New(cat *catalog.Catalog) *Planner {
	return &Planner{catalog: cat}
}

// Build runs one generation: for each day it consumes must-visit entries
// first (bounded by the pace quota), fills the remainder from the catalog,
// lays the picks out on the clock timeline, and renders per-slot
// explanations. The used-name set is threaded through every day's selection
// so no stop name repeats across the whole itinerary.
//
// Build assumes a validated request (non-empty city, ordered dates); the day
// count is still clamped to at least one. It is synchronous and performs no
// I/O.
func (p *Planner) Build(req domain.TripRequest) domain.Itinerary {
	days := req.DayCount()
	quota := req.Pace.StopsPerDay()
	gap := req.Transport.TravelGapMinutes()
	avoid := req.AvoidSet()

	used := make(map[string]struct{})
	mustVisit := newMustVisitQueue(req.MustVisit, avoid)

	var stay *domain.StopRecord
	if strings.TrimSpace(req.StayLocation) != "" {
		rec := StayRecord(strings.TrimSpace(req.StayLocation), req.StayType, req.Transport)
		stay = &rec
	}

	itinerary := domain.Itinerary{
		SchemaVersion: domain.SchemaVersion,
		ID:            uuid.New(),
		Summary:       buildSummary(req, days),
		Days:          make([]domain.Day, 0, days),
	}

	for i := 0; i < days; i++ {
		stops := mustVisit.drawForDay(quota, req.Transport, used)
		if remaining := quota - len(stops); remaining > 0 {
			stops = append(stops, SelectStops(p.catalog, req.Interests, remaining, used, avoid)...)
		}

		day := domain.Day{
			Day:      i + 1,
			Date:     req.StartDate.AddDate(0, 0, i).Format("Mon, Jan 02"),
			Timeline: BuildTimeline(req.DayStart, req.DayEnd, gap, stops, stay),
		}
		for s := range day.Timeline {
			day.Timeline[s].Explanation = Explain(day.Timeline[s], day.Day, req.City, req.Transport, req.Pace)
		}
		itinerary.Days = append(itinerary.Days, day)
	}

	return itinerary
}

// mustVisitQueue is the global ordered list of user-requested stop names,
// consumed across days. Avoid-listed entries are consumed without ever
// occupying a slot and are not re-queued.
type mustVisitQueue struct {
	names []string
	avoid map[string]struct{}
	next  int
}

func newMustVisitQueue(names []string, avoid map[string]struct{}) *mustVisitQueue {
	q := &mustVisitQueue{avoid: avoid}
	for _, n := range names {
		if t := strings.TrimSpace(n); t != "" {
			q.names = append(q.names, t)
		}
	}
	return q
}

// drawForDay takes at most quota entries in list order, synthesizing a
// StopRecord for each and registering its name in used so catalog selection
// never duplicates it. Entries whose name is already in used, such as a name
// listed twice in the request, are consumed without occupying a slot.
func (q *mustVisitQueue) drawForDay(quota int, transport domain.Transport, used map[string]struct{}) []domain.StopRecord {
	var picks []domain.StopRecord
	for len(picks) < quota && q.next < len(q.names) {
		name := q.names[q.next]
		q.next++
		if _, skip := q.avoid[strings.ToLower(name)]; skip {
			continue
		}
		if _, dup := used[name]; dup {
			continue
		}
		picks = append(picks, mustVisitRecord(name, transport))
		used[name] = struct{}{}
	}
	return picks
}

// mustVisitRecord synthesizes a generic record for a user-requested stop.
// The planner knows nothing about the place, so every descriptive field is a
// fixed placeholder and the nominal length is two hours.
func mustVisitRecord(name string, transport domain.Transport) domain.StopRecord {
	return domain.StopRecord{
		Name:        name,
		Duration:    "2 hours",
		Description: "Traveler-requested stop.",
		Activities:  []string{"explore at your own pace"},
		Nearby:      []string{placeholderNearby},
		Food:        []string{placeholderFood},
		Transport:   string(transport),
		Tip:         "Confirm opening hours and tickets in advance.",
	}
}

// buildSummary echoes the normalized request plus advisory text chosen by
// exact-match lookup on budget and transport.
func buildSummary(req domain.TripRequest, days int) domain.Summary {
	interests := "Any"
	if len(req.Interests) > 0 {
		labels := make([]string, len(req.Interests))
		for i, it := range req.Interests {
			labels[i] = string(it)
		}
		interests = strings.Join(labels, ", ")
	}

	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		notes = "—"
	}

	return domain.Summary{
		City:         req.City,
		StartDate:    req.StartDate.Format("2006-01-02"),
		Days:         days,
		Budget:       req.Budget,
		Pace:         req.Pace,
		Interests:    interests,
		Transport:    string(req.Transport),
		BudgetTip:    budgetTips[req.Budget],
		TransportTip: transportTips[req.Transport],
		Notes:        notes,
	}
}
