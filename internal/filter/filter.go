// Package filter narrows content collections by the active game
// configuration and escalates to fallback pools when the primary pool
// is empty.
package filter

import (
	"github.com/fogoseda/party-api/internal/entities"
	"github.com/fogoseda/party-api/internal/pkg/textnorm"
)

// CardCriteria is the card-variant filter configuration. All predicates
// are AND-combined; order does not affect the result.
type CardCriteria struct {
	Type         entities.ItemType
	Level        entities.Level
	Mode         entities.Mode
	Filters      entities.BanFilters
	BlockedWords []string
	Keyword      string
}

// Matches reports whether a single item passes every predicate
func (c CardCriteria) Matches(item entities.Item) bool {
	if item.Type != c.Type {
		return false
	}
	if item.Level != c.Level {
		return false
	}
	if !item.HasMode(c.Mode) {
		return false
	}
	if c.Filters.Excludes(item.Bans) {
		return false
	}
	if textnorm.ContainsAny(item.Text, c.BlockedWords) {
		return false
	}
	if !textnorm.Contains(item.Text, c.Keyword) {
		return false
	}
	return true
}

// Cards returns the items passing the criteria
func Cards(pool []entities.Item, c CardCriteria) []entities.Item {
	out := make([]entities.Item, 0, len(pool))
	for _, item := range pool {
		if c.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// CardPool builds the draw pool for the criteria. The primary pool is the
// non-fallback items passing every predicate. When it is empty, escalation
// uses the items flagged as fallback for the same type and level; those are
// generic fillers, so only the safety predicates (bans and blocked words)
// are re-applied. An empty result means the base collection cannot serve
// this criteria at all; callers disable the draw.
func CardPool(pool []entities.Item, c CardCriteria) []entities.Item {
	primary := make([]entities.Item, 0, len(pool))
	for _, item := range pool {
		if !item.Fallback && c.Matches(item) {
			primary = append(primary, item)
		}
	}
	if len(primary) > 0 {
		return primary
	}

	fallback := make([]entities.Item, 0, len(pool))
	for _, item := range pool {
		if !item.Fallback || item.Type != c.Type || item.Level != c.Level {
			continue
		}
		if c.Filters.Excludes(item.Bans) {
			continue
		}
		if textnorm.ContainsAny(item.Text, c.BlockedWords) {
			continue
		}
		fallback = append(fallback, item)
	}
	return fallback
}

// ActionCriteria is the board-variant filter configuration
type ActionCriteria struct {
	Zone     entities.Zone
	Category entities.Category
	Filters  entities.BanFilters
}

// Matches reports whether a single action passes every predicate
func (c ActionCriteria) Matches(action entities.BoardAction) bool {
	if action.Zone != c.Zone {
		return false
	}
	if action.Category != c.Category {
		return false
	}
	if c.Filters.Excludes(action.Bans) {
		return false
	}
	return true
}

// Actions returns the board actions passing the criteria
func Actions(pool []entities.BoardAction, c ActionCriteria) []entities.BoardAction {
	out := make([]entities.BoardAction, 0, len(pool))
	for _, action := range pool {
		if c.Matches(action) {
			out = append(out, action)
		}
	}
	return out
}

// ActionPool filters board actions with tiered fallback: the filtered
// pool first, then the same zone+category ignoring bans, then the same
// category across zones. Empty only when the base collection has nothing
// for the category.
func ActionPool(pool []entities.BoardAction, c ActionCriteria) []entities.BoardAction {
	filtered := Actions(pool, c)
	if len(filtered) > 0 {
		return filtered
	}

	sameZone := Actions(pool, ActionCriteria{Zone: c.Zone, Category: c.Category})
	if len(sameZone) > 0 {
		return sameZone
	}

	crossZone := make([]entities.BoardAction, 0, len(pool))
	for _, action := range pool {
		if action.Category == c.Category {
			crossZone = append(crossZone, action)
		}
	}
	return crossZone
}

// CardsByZone returns the deck cards for a zone that pass the ban
// filters, falling back to the zone ignoring bans, then the whole deck.
func CardsByZone(deck []entities.Card, zone entities.Zone, filters entities.BanFilters) []entities.Card {
	zoneFiltered := make([]entities.Card, 0, len(deck))
	zoneAll := make([]entities.Card, 0, len(deck))
	for _, card := range deck {
		if card.Zone != zone {
			continue
		}
		zoneAll = append(zoneAll, card)
		if !filters.Excludes(card.Bans) {
			zoneFiltered = append(zoneFiltered, card)
		}
	}
	if len(zoneFiltered) > 0 {
		return zoneFiltered
	}
	if len(zoneAll) > 0 {
		return zoneAll
	}
	return deck
}

// LowPool reports whether either card-variant pool is small enough to
// warrant the low-pool warning
func LowPool(truthCount, dareCount, threshold int) bool {
	return truthCount < threshold || dareCount < threshold
}
