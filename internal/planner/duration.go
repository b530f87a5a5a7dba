// Package planner implements the itinerary scheduling engine: duration
// parsing, deterministic stop selection, clock-time timeline layout,
// per-slot explanations, and the day-by-day assembler that ties them
// together.
package planner

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// fallbackMinutes is returned for any duration text that matches no pattern.
const fallbackMinutes = 90

// Range separators include the ASCII hyphen and the unicode dashes that show
// up in copy-pasted catalog text.
var (
	hourRangeRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[-–—]\s*(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)\b`)
	hourSingleRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)\b`)
	minuteRangeRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[-–—]\s*(\d+(?:\.\d+)?)\s*(?:minutes?|mins?)\b`)
	minuteRe      = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?)\b`)
)

// ParseDurationMinutes converts a free-text duration description into a
// positive minute count. Matching is case-insensitive and tried in priority
// order: hour range ("2-3 hours" → mean × 60), single hour value ("1.5
// hours"), minute range ("45-60 min" → mean), minute value ("45 min"), then
// a fixed 90-minute fallback.
// It never fails and has no side effects.
func ParseDurationMinutes(text string) int {
	s := strings.ToLower(text)

	if m := hourRangeRe.FindStringSubmatch(s); m != nil {
		low, err1 := strconv.ParseFloat(m[1], 64)
		high, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			return int(math.Round(60 * (low + high) / 2))
		}
	}

	if m := hourSingleRe.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(math.Round(60 * v))
		}
	}

	if m := minuteRangeRe.FindStringSubmatch(s); m != nil {
		low, err1 := strconv.ParseFloat(m[1], 64)
		high, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			return int(math.Round((low + high) / 2))
		}
	}

	if m := minuteRe.FindStringSubmatch(s); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return v
		}
	}

	return fallbackMinutes
}
