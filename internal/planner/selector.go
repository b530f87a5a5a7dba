package planner

import (
	"strings"

	"github.com/wanderplan/trip-planner/backend/internal/catalog"
	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// SelectStops picks up to n stops for one day. The candidate pool is the
// concatenation of catalog lists for the selected interests in selection
// order; with no interests selected, every list in definition order.
// Candidates already in used, or whose lowercased name is in avoid, are
// skipped. A second pass over the full catalog tops up toward n when the
// interest pool runs short. Fewer than n is returned only when the whole
// catalog is exhausted.
//
// used is shared across the whole generation run and mutated here; that is
// what keeps stop names unique across days. Selection is fully deterministic
// for fixed inputs.
func SelectStops(
	cat *catalog.Catalog,
	interests []domain.Interest,
	n int,
	used map[string]struct{},
	avoid map[string]struct{},
) []domain.StopRecord {
	var pool []domain.StopRecord
	if len(interests) == 0 {
		pool = cat.All()
	} else {
		for _, tag := range interests {
			pool = append(pool, cat.ByInterest(tag)...)
		}
	}

	picks := take(pool, n, used, avoid)
	if len(picks) < n {
		picks = append(picks, take(cat.All(), n-len(picks), used, avoid)...)
	}
	return picks
}

// take walks pool in order and accepts up to n candidates that pass the
// used/avoid filters, recording each accepted name in used.
func take(pool []domain.StopRecord, n int, used, avoid map[string]struct{}) []domain.StopRecord {
	var picks []domain.StopRecord
	for _, candidate := range pool {
		if len(picks) >= n {
			break
		}
		if _, ok := used[candidate.Name]; ok {
			continue
		}
		if _, ok := avoid[strings.ToLower(candidate.Name)]; ok {
			continue
		}
		picks = append(picks, candidate)
		used[candidate.Name] = struct{}{}
	}
	return picks
}
