// Package catalog holds the static stop catalog: a read-only mapping from
// interest category to an ordered list of candidate stops. It is
// configuration data, not logic; lookup is O(1) and iteration order is the
// fixed definition order so selection stays reproducible.
package catalog

import (
	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// Catalog is an immutable interest→stops mapping. Use Default() in
// production; tests may build smaller catalogs via New.
type Catalog struct {
	byInterest map[domain.Interest][]domain.StopRecord
}

// New builds a catalog from the given mapping. The mapping is not copied;
// callers must not mutate it afterwards.
func New(byInterest map[domain.Interest][]domain.StopRecord) *Catalog {
	return &Catalog{byInterest: byInterest}
}

// ByInterest returns the ordered stop list for one interest.
// The returned slice is shared and must not be mutated.
func (c *Catalog) ByInterest(tag domain.Interest) []domain.StopRecord {
	return c.byInterest[tag]
}

// All concatenates every interest's list in interest-definition order.
func (c *Catalog) All() []domain.StopRecord {
	var all []domain.StopRecord
	for _, tag := range domain.Interests() {
		all = append(all, c.byInterest[tag]...)
	}
	return all
}

// Default returns the built-in stop catalog: seven interests, one to three
// stops each. Durations are free text and run through the duration parser at
// timeline-build time.
func Default() *Catalog {
	return New(map[domain.Interest][]domain.StopRecord{
		domain.InterestFood: {
			{
				Name:        "Local Breakfast Café",
				Duration:    "45-60 min",
				Description: "A neighborhood café known for its morning pastries and strong coffee.",
				Activities:  []string{"try the signature pastry", "people-watch from a window seat"},
				Nearby:      []string{"fresh produce market", "bakery row"},
				Food:        []string{"regional breakfast plate", "house-roasted coffee"},
				Transport:   "Usually central; reachable on foot from most stays.",
				Tip:         "Arrive before 9 to skip the weekend line.",
			},
			{
				Name:        "Street Food Market",
				Duration:    "1-2 hours",
				Description: "Covered stalls serving the city's best-loved quick bites.",
				Activities:  []string{"graze across three or four stalls", "watch the cooks work the grills"},
				Nearby:      []string{"spice shops", "old market square"},
				Food:        []string{"grilled skewers", "seasonal fruit stands", "local dessert stalls"},
				Transport:   "Well served by transit; parking is scarce nearby.",
				Tip:         "Bring small bills — many stalls are cash only.",
			},
			{
				Name:        "Signature Dish Dinner",
				Duration:    "1.5 hours",
				Description: "A sit-down restaurant famous for the region's signature dish.",
				Activities:  []string{"order the tasting portion", "ask for the story behind the dish"},
				Nearby:      []string{"evening promenade", "dessert cafés"},
				Food:        []string{"the signature dish", "local wine pairing"},
				Transport:   "Short ride from the center; book a return trip in advance.",
				Tip:         "Reserve a table — walk-ins rarely get seated at peak hours.",
			},
		},
		domain.InterestNature: {
			{
				Name:        "Sunrise Viewpoint",
				Duration:    "1 hour",
				Description: "An easy overlook with wide views of the city and the hills beyond.",
				Activities:  []string{"catch the light over the skyline", "short loop walk at the top"},
				Nearby:      []string{"trailhead kiosk", "coffee cart (mornings only)"},
				Food:        []string{},
				Transport:   "Best reached by car or rideshare; the last stretch is a short climb.",
				Tip:         "Check the weather the night before — fog ruins the view.",
			},
			{
				Name:        "Botanical Garden",
				Duration:    "1.5-2 hours",
				Description: "Landscaped grounds with greenhouse collections and shaded paths.",
				Activities:  []string{"walk the greenhouse circuit", "find the seasonal bloom section"},
				Nearby:      []string{"sculpture lawn", "garden café"},
				Food:        []string{"garden café light lunch"},
				Transport:   "On the main transit line; a flat, walkable site.",
				Tip:         "Weekday mornings are the quietest.",
			},
			{
				Name:        "Riverside Walk",
				Duration:    "45 min",
				Description: "A flat riverside path popular with locals at golden hour.",
				Activities:  []string{"stroll the waterfront", "photograph the bridges"},
				Nearby:      []string{"boat rental dock", "riverside kiosks"},
				Food:        []string{"ice cream stands along the path"},
				Transport:   "Walkable from the old town; no car needed.",
				Tip:         "Go an hour before sunset for the best light.",
			},
		},
		domain.InterestHistory: {
			{
				Name:        "Old Town Walking Tour",
				Duration:    "2-3 hours",
				Description: "A guided loop through the oldest streets, squares, and facades.",
				Activities:  []string{"join the morning guided loop", "detour into the hidden courtyards"},
				Nearby:      []string{"cathedral square", "artisan lanes"},
				Food:        []string{"historic café off the main square"},
				Transport:   "Starts in the pedestrian zone; arrive by transit.",
				Tip:         "Wear solid shoes — the lanes are cobbled.",
			},
			{
				Name:        "City History Museum",
				Duration:    "2 hours",
				Description: "The main collection covering the city from founding to present.",
				Activities:  []string{"follow the chronological wing", "see the scale model of the old city"},
				Nearby:      []string{"archive library", "museum garden"},
				Food:        []string{"museum café"},
				Transport:   "Central; most visitors walk from the main square.",
				Tip:         "The audio guide is worth the small extra fee.",
			},
			{
				Name:        "Heritage Quarter",
				Duration:    "1-2 hours",
				Description: "A preserved district of workshops, guild houses, and small chapels.",
				Activities:  []string{"browse the restored workshops", "climb the old watchtower"},
				Nearby:      []string{"craft demonstration hall"},
				Food:        []string{"traditional bakery on the corner"},
				Transport:   "A short tram ride from the center.",
				Tip:         "Many workshops close early on Sundays.",
			},
		},
		domain.InterestShopping: {
			{
				Name:        "Artisan Bazaar",
				Duration:    "1-2 hours",
				Description: "Stalls and small shops selling locally made goods.",
				Activities:  []string{"hunt for handmade ceramics", "watch a weaving demonstration"},
				Nearby:      []string{"textile hall", "antique row"},
				Food:        []string{"tea house inside the bazaar"},
				Transport:   "Inside the pedestrian zone; leave the car behind.",
				Tip:         "Polite haggling is expected at the open stalls.",
			},
			{
				Name:        "Souvenir Street",
				Duration:    "1 hour",
				Description: "The classic strip for gifts, prints, and local sweets.",
				Activities:  []string{"pick up small gifts", "compare prices before buying"},
				Nearby:      []string{"postcard kiosks", "old pharmacy museum"},
				Food:        []string{"candied-nut carts"},
				Transport:   "Flat and central; easy on foot.",
				Tip:         "Shops two streets back are noticeably cheaper.",
			},
		},
		domain.InterestNightlife: {
			{
				Name:        "Night Market",
				Duration:    "2 hours",
				Description: "Food stalls, music, and crafts that open after dark.",
				Activities:  []string{"eat your way down the main row", "catch the street performers"},
				Nearby:      []string{"light installation bridge"},
				Food:        []string{"late-night noodle stalls", "dessert row"},
				Transport:   "Take a rideshare back — transit thins out late.",
				Tip:         "It gets packed after 9; go early for elbow room.",
			},
			{
				Name:        "Live Music Venue",
				Duration:    "2-3 hours",
				Description: "A storied club hosting local acts most nights of the week.",
				Activities:  []string{"catch the early set", "stay for the headline act"},
				Nearby:      []string{"record shop", "late-night diner"},
				Food:        []string{"bar snacks only — eat beforehand"},
				Transport:   "Central but loud streets; a short taxi is easiest late.",
				Tip:         "Check the door schedule — some nights are ticketed.",
			},
			{
				Name:        "Rooftop Lounge",
				Duration:    "1.5 hours",
				Description: "Skyline views and a quieter end to the evening.",
				Activities:  []string{"time your arrival for sunset", "try the house signature drink"},
				Nearby:      []string{"observation deck"},
				Food:        []string{"small plates menu"},
				Transport:   "Elevator access from the main street; any mode works.",
				Tip:         "Dress code applies after 8 PM.",
			},
		},
		domain.InterestAdventure: {
			{
				Name:        "Guided Bike Tour",
				Duration:    "3 hours",
				Description: "A guided ride linking the parks, riverbanks, and viewpoints.",
				Activities:  []string{"ride the riverside route", "stop at two panorama points"},
				Nearby:      []string{"bike rental hub"},
				Food:        []string{"picnic stop included on most tours"},
				Transport:   "Meets at the rental hub near the main station.",
				Tip:         "Book the morning slot — afternoon winds pick up.",
			},
			{
				Name:        "Kayak Rental",
				Duration:    "2-3 hours",
				Description: "Self-guided paddling on the calm stretch of the river.",
				Activities:  []string{"paddle the calm loop", "pull up at the island beach"},
				Nearby:      []string{"boathouse", "riverside showers"},
				Food:        []string{"boathouse snack bar"},
				Transport:   "Short bus ride from the center to the dock.",
				Tip:         "Waterproof bags are rented at the dock — take one.",
			},
		},
		domain.InterestRelax: {
			{
				Name:        "Spa & Massage",
				Duration:    "1.5 hours",
				Description: "A traditional bathhouse with modern treatment rooms.",
				Activities:  []string{"book the classic massage", "linger in the thermal pools"},
				Nearby:      []string{"quiet reading garden"},
				Food:        []string{"herbal tea lounge"},
				Transport:   "A short rideshare from the center.",
				Tip:         "Book treatments a day ahead; towels are provided.",
			},
			{
				Name:        "Park Picnic",
				Duration:    "1-2 hours",
				Description: "The big central park, best enjoyed with supplies from the market.",
				Activities:  []string{"claim a lawn spot by the pond", "rent a rowboat if the queue is short"},
				Nearby:      []string{"bandstand", "playground"},
				Food:        []string{"market deli boxes", "lemonade carts"},
				Transport:   "Multiple transit gates; flat paths throughout.",
				Tip:         "Weekend afternoons fill up — mornings are calmer.",
			},
			{
				Name:        "Sunset Promenade",
				Duration:    "1 hour",
				Description: "The classic evening walk along the old city walls.",
				Activities:  []string{"walk the full wall circuit", "pause at the western bastion for sunset"},
				Nearby:      []string{"wall-top café"},
				Food:        []string{"gelato stand at the south gate"},
				Transport:   "Start and end points are both near tram stops.",
				Tip:         "The wall lights come on at dusk — stay for the switch-on.",
			},
		},
	})
}
