package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day expressed as minutes since midnight.
// It marshals to the 12-hour display format with no leading zero on the hour
// ("9:00 AM", "12:15 PM"), which is also the export format, so serialized
// itineraries round-trip losslessly.
type ClockTime int

// NewClockTime builds a ClockTime from a 24-hour clock pair.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// ParseClockTime accepts either the 12-hour display format ("9:00 AM") or a
// 24-hour "15:04" string.
func ParseClockTime(s string) (ClockTime, error) {
	for _, layout := range []string{"3:04 PM", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewClockTime(t.Hour(), t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("invalid clock time %q", s)
}

// Add returns the clock time min minutes later.
func (c ClockTime) Add(min int) ClockTime {
	return c + ClockTime(min)
}

// Minutes returns the raw minutes-since-midnight value.
func (c ClockTime) Minutes() int {
	return int(c)
}

// String formats the time in 12-hour wall-clock form with no leading zero.
func (c ClockTime) String() string {
	h := (int(c) / 60) % 24
	m := int(c) % 60

	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, meridiem)
}

// MarshalJSON encodes the time as its display string.
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes either the display string or a 24-hour string.
func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
