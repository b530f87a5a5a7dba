package domain

import (
	"github.com/google/uuid"
)

// SchemaVersion tags every serialized itinerary. Stored documents with a
// different version are treated as stale state and discarded on load.
const SchemaVersion = 2

// TimelineSlot places one stop at a concrete start/end time within a day.
// Immutable after creation; owned by its containing Day.
type TimelineSlot struct {
	Start ClockTime  `json:"start"`
	End   ClockTime  `json:"end"`
	Place StopRecord `json:"place"`

	// EstimatedTravelToNextMin is the fixed per-transport gap to the next
	// slot, zero for the last slot of a day.
	EstimatedTravelToNextMin int `json:"estimated_travel_to_next_min"`

	// Explanation is the locally generated prose for this slot. It is
	// derived data, embedded so the export document is self-contained.
	Explanation string `json:"explanation"`
}

// Day is one itinerary day: a 1-based index, a display date label, and an
// ordered timeline. Never mutated after assembly.
type Day struct {
	Day      int            `json:"day"`
	Date     string         `json:"date"` // e.g. "Mon, Jan 02"
	Timeline []TimelineSlot `json:"timeline"`
}

// Summary echoes the normalized trip request plus derived advisory text.
type Summary struct {
	City         string `json:"city"`
	StartDate    string `json:"start_date"` // "2006-01-02"
	Days         int    `json:"days"`
	Budget       Budget `json:"budget"`
	Pace         Pace   `json:"pace"`
	Interests    string `json:"interests"` // comma-joined, "Any" when none
	Transport    string `json:"transport"`
	BudgetTip    string `json:"budget_tip"`
	TransportTip string `json:"transport_tip"`
	Notes        string `json:"notes"` // "—" when empty
}

// Itinerary is the sole artifact of a generation run and the unit of
// export/serialization.
type Itinerary struct {
	SchemaVersion int       `json:"schema_version"`
	ID            uuid.UUID `json:"id"`
	Summary       Summary   `json:"summary"`
	Days          []Day     `json:"days"`
}

// Validate checks a deserialized itinerary for schema compatibility.
// Returns ErrStaleState when the document predates the current schema or is
// missing required fields.
func (it Itinerary) Validate() error {
	if it.SchemaVersion != SchemaVersion {
		return ErrStaleState
	}
	if it.ID == uuid.Nil || it.Summary.City == "" || len(it.Days) == 0 {
		return ErrStaleState
	}
	for _, d := range it.Days {
		if d.Day < 1 || d.Date == "" {
			return ErrStaleState
		}
	}
	return nil
}
