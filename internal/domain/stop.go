package domain

// StopRecord describes a single point of interest. Records come from the
// static catalog (shared, read-only) or are synthesized for a must-visit
// entry (owned by the day that created it).
//
// Every field is always present: an empty string or empty slice is the "none"
// value, so downstream code never needs existence checks.
type StopRecord struct {
	Name        string   `json:"name"`
	Duration    string   `json:"duration"` // free text, e.g. "45-60 min", "2-3 hours"
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
	Nearby      []string `json:"nearby"`
	Food        []string `json:"food"`
	Transport   string   `json:"transport"`
	Tip         string   `json:"tip"`
}
