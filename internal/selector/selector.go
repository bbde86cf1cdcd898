// Package selector implements weighted random selection with recency
// exclusion and feedback weighting. Selection is pure: callers own the
// recency window and history updates after a pick.
package selector

import (
	"github.com/fogoseda/party-api/internal/entities"
)

const (
	weightBase   = 1.0
	weightStep   = 0.2
	weightFloor  = 0.25
	weightCeil   = 1.6
	scoreMin     = -3
	scoreMax     = 3
	defaultScore = 0
)

// Identifiable is anything selectable by id
type Identifiable interface {
	GetID() string
}

// Options controls recency exclusion for a pick
type Options struct {
	// RecentIDs are excluded from selection while a wider candidate set exists
	RecentIDs []string

	// LastID is never picked twice in a row unless it is the only option
	LastID string
}

// Weight converts a feedback score into a selection weight,
// clamped to [0.25, 1.6]
func Weight(score int) float64 {
	w := weightBase + float64(score)*weightStep
	if w < weightFloor {
		return weightFloor
	}
	if w > weightCeil {
		return weightCeil
	}
	return w
}

// UpdateScore applies a feedback delta, clamping the result to [-3, 3]
func UpdateScore(score, delta int) int {
	return entities.ClampScore(score+delta, scoreMin, scoreMax)
}

// Pick selects one element from pool, excluding recent ids and the last
// pick where possible. Exclusions relax in two steps when they would empty
// the candidate set: first recency is dropped, then the last-pick exclusion.
// Returns false only when the pool itself is empty.
//
// rnd must return a uniform value in [0,1).
func Pick[T Identifiable](pool []T, scores map[string]int, opts Options, rnd func() float64) (T, bool) {
	var zero T
	if len(pool) == 0 {
		return zero, false
	}

	recent := make(map[string]struct{}, len(opts.RecentIDs))
	for _, id := range opts.RecentIDs {
		recent[id] = struct{}{}
	}

	candidates := make([]T, 0, len(pool))
	for _, item := range pool {
		if _, ok := recent[item.GetID()]; ok {
			continue
		}
		if item.GetID() == opts.LastID {
			continue
		}
		candidates = append(candidates, item)
	}
	if len(candidates) == 0 {
		for _, item := range pool {
			if item.GetID() != opts.LastID {
				candidates = append(candidates, item)
			}
		}
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	total := 0.0
	for _, item := range candidates {
		total += Weight(scoreOf(scores, item.GetID()))
	}

	roll := rnd() * total
	for _, item := range candidates {
		roll -= Weight(scoreOf(scores, item.GetID()))
		if roll <= 0 {
			return item, true
		}
	}
	// floating-point residue: fall back to the last candidate
	return candidates[len(candidates)-1], true
}

// PickEquivalent selects a replacement for current from pool: same type,
// same level, overlapping mode set, excluding current itself. Used by the
// "swap this item" flow so the draw context is preserved.
func PickEquivalent(pool []entities.Item, current entities.Item, scores map[string]int, opts Options, rnd func() float64) (entities.Item, bool) {
	equivalent := make([]entities.Item, 0, len(pool))
	for _, item := range pool {
		if item.ID == current.ID {
			continue
		}
		if item.Type != current.Type || item.Level != current.Level {
			continue
		}
		if !item.OverlapsMode(current) {
			continue
		}
		equivalent = append(equivalent, item)
	}
	return Pick(equivalent, scores, opts, rnd)
}

func scoreOf(scores map[string]int, id string) int {
	if scores == nil {
		return defaultScore
	}
	if score, ok := scores[id]; ok {
		return score
	}
	return defaultScore
}
