// Package domain contains the core data types for the trip planner service.
// This package has zero dependencies on other internal packages and is
// imported by every other one (catalog, planner, store, handler).
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Budget is the traveller's spending tier.
type Budget string

const (
	BudgetLow    Budget = "Low"
	BudgetMedium Budget = "Medium"
	BudgetHigh   Budget = "High"
)

// ParseBudget normalizes a budget string. Empty input defaults to Medium.
func ParseBudget(s string) (Budget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return BudgetMedium, nil
	case "low":
		return BudgetLow, nil
	case "medium":
		return BudgetMedium, nil
	case "high":
		return BudgetHigh, nil
	}
	return "", fmt.Errorf("invalid budget %q", s)
}

// Pace controls how many stops are scheduled per day.
type Pace string

const (
	PaceRelaxed  Pace = "Relaxed"
	PaceBalanced Pace = "Balanced"
	PacePacked   Pace = "Packed"
)

// ParsePace normalizes a pace string. Empty input defaults to Balanced.
func ParsePace(s string) (Pace, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PaceBalanced, nil
	case "relaxed":
		return PaceRelaxed, nil
	case "balanced":
		return PaceBalanced, nil
	case "packed":
		return PacePacked, nil
	}
	return "", fmt.Errorf("invalid pace %q", s)
}

// StopsPerDay returns the daily stop quota for the pace.
func (p Pace) StopsPerDay() int {
	switch p {
	case PaceRelaxed:
		return 2
	case PacePacked:
		return 4
	default:
		return 3
	}
}

// Transport is the traveller's preferred way of getting between stops.
// The canonical values match the labels the original planner UI used.
type Transport string

const (
	TransportWalking       Transport = "Walking"
	TransportPublicTransit Transport = "Public Transit"
	TransportRideshare     Transport = "Rideshare/Taxi"
	TransportRentalCar     Transport = "Rental Car"
)

// ParseTransport normalizes a transport string, accepting both the enum-style
// spellings ("PublicTransit", "Rideshare") and the UI labels ("Public
// Transit", "Rideshare/Taxi"). Empty input defaults to Public Transit.
func ParseTransport(s string) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TransportPublicTransit, nil
	case "walking", "walk":
		return TransportWalking, nil
	case "public transit", "publictransit", "transit":
		return TransportPublicTransit, nil
	case "rideshare/taxi", "rideshare", "taxi":
		return TransportRideshare, nil
	case "rental car", "rentalcar":
		return TransportRentalCar, nil
	}
	return "", fmt.Errorf("invalid transport %q", s)
}

// TravelGapMinutes returns the fixed minutes inserted between consecutive
// timeline slots for this transport mode. The gap depends on mode only, never
// on actual stop locations.
func (t Transport) TravelGapMinutes() int {
	switch t {
	case TransportWalking:
		return 15
	case TransportPublicTransit:
		return 25
	case TransportRideshare:
		return 18
	case TransportRentalCar:
		return 20
	default:
		return 20
	}
}

// Interest is one of the fixed catalog categories.
type Interest string

const (
	InterestFood      Interest = "Food"
	InterestNature    Interest = "Nature"
	InterestHistory   Interest = "History"
	InterestShopping  Interest = "Shopping"
	InterestNightlife Interest = "Nightlife"
	InterestAdventure Interest = "Adventure"
	InterestRelax     Interest = "Relax"
)

// Interests lists every catalog category in definition order. The order is
// load-bearing: catalog fallback selection iterates it.
func Interests() []Interest {
	return []Interest{
		InterestFood, InterestNature, InterestHistory, InterestShopping,
		InterestNightlife, InterestAdventure, InterestRelax,
	}
}

// ParseInterest normalizes an interest string.
func ParseInterest(s string) (Interest, error) {
	for _, it := range Interests() {
		if strings.EqualFold(strings.TrimSpace(s), string(it)) {
			return it, nil
		}
	}
	return "", fmt.Errorf("invalid interest %q", s)
}

// maxDays caps trip length, matching the original planner's day slider.
const maxDays = 14

// TripRequest is the fully-validated input to itinerary generation.
// It is immutable once constructed and passed by value into the planner.
type TripRequest struct {
	City      string
	StartDate time.Time
	EndDate   *time.Time // nil when Days is supplied directly
	Days      int        // ignored when EndDate is set

	DayStart ClockTime
	DayEnd   ClockTime

	Budget    Budget
	Pace      Pace
	Interests []Interest
	Transport Transport

	Notes        string
	StayLocation string
	StayType     string

	MustVisit       []string // ordered; consumed across days
	Avoid           []string // matched case-insensitively against stop names
	FoodPreferences []string
}

// DayCount derives the number of itinerary days: date span + 1 when EndDate
// is set, otherwise Days, clamped to [1, 14].
func (r TripRequest) DayCount() int {
	days := r.Days
	if r.EndDate != nil {
		days = int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
	}
	if days < 1 {
		days = 1
	}
	if days > maxDays {
		days = maxDays
	}
	return days
}

// AvoidSet returns the lowercased avoid list as a set for O(1) lookups.
func (r TripRequest) AvoidSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Avoid))
	for _, a := range r.Avoid {
		if t := strings.ToLower(strings.TrimSpace(a)); t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}
