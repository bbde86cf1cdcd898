// Package entities defines the domain types shared by both game variants.
package entities

// Level is the intensity tier of card-variant content
type Level string

// Card-variant levels
const (
	LevelLeve   Level = "leve"
	LevelQuente Level = "quente"
	LevelFogo   Level = "fogo"
)

// Valid reports whether the level is a known value
func (l Level) Valid() bool {
	switch l {
	case LevelLeve, LevelQuente, LevelFogo:
		return true
	}
	return false
}

// Zone is the intensity tier of a board region
type Zone string

// Board zones
const (
	ZoneLeve   Zone = "leve"
	ZoneQuente Zone = "quente"
	ZoneFinal  Zone = "final"
)

// Valid reports whether the zone is a known value
func (z Zone) Valid() bool {
	switch z {
	case ZoneLeve, ZoneQuente, ZoneFinal:
		return true
	}
	return false
}

// Mode is the player-configuration context of the card variant
type Mode string

// Card-variant modes
const (
	ModeSolo  Mode = "solo"
	ModeCasal Mode = "casal"
	ModeGrupo Mode = "grupo"
)

// Valid reports whether the mode is a known value
func (m Mode) Valid() bool {
	switch m {
	case ModeSolo, ModeCasal, ModeGrupo:
		return true
	}
	return false
}

// ItemType is the draw category of the card variant
type ItemType string

// Card-variant item types
const (
	ItemTruth ItemType = "truth"
	ItemDare  ItemType = "dare"
)

// Valid reports whether the item type is a known value
func (t ItemType) Valid() bool {
	return t == ItemTruth || t == ItemDare
}

// Category is the action category of the board variant
type Category string

// Board action categories
const (
	CategoryVerdade    Category = "verdade"
	CategoryDesafio    Category = "desafio"
	CategoryAcaoVisual Category = "acao_visual"
	CategoryEspecial   Category = "especial"
)

// Valid reports whether the category is a known value
func (c Category) Valid() bool {
	switch c {
	case CategoryVerdade, CategoryDesafio, CategoryAcaoVisual, CategoryEspecial:
		return true
	}
	return false
}

// TileType determines how landing on a tile resolves
type TileType string

// Tile types
const (
	TileVerdade      TileType = "verdade"
	TileDesafio      TileType = "desafio"
	TileAcaoVisual   TileType = "acao_visual"
	TileEspecial     TileType = "especial"
	TileComprarCarta TileType = "comprar_carta"
	TileFinish       TileType = "finish"
)

// Valid reports whether the tile type is a known value
func (t TileType) Valid() bool {
	switch t {
	case TileVerdade, TileDesafio, TileAcaoVisual, TileEspecial, TileComprarCarta, TileFinish:
		return true
	}
	return false
}

// ActionCategory returns the board action category a tile draws from.
// Only meaningful for verdade/desafio/acao_visual tiles.
func (t TileType) ActionCategory() (Category, bool) {
	switch t {
	case TileVerdade:
		return CategoryVerdade, true
	case TileDesafio:
		return CategoryDesafio, true
	case TileAcaoVisual:
		return CategoryAcaoVisual, true
	}
	return "", false
}

// Source records where a queued action came from
type Source string

// Action sources
const (
	SourceTile    Source = "tile"
	SourceNormal  Source = "normal"
	SourceEvent6  Source = "event6"
	SourceSpecial Source = "special"
)

// DirectiveKind is the effect of a special tile
type DirectiveKind string

// Special tile directives
const (
	DirectiveAdvance DirectiveKind = "advance"
	DirectiveBack    DirectiveKind = "back"
	DirectiveRepeat  DirectiveKind = "repeat"
)

// Valid reports whether the directive kind is a known value
func (d DirectiveKind) Valid() bool {
	switch d {
	case DirectiveAdvance, DirectiveBack, DirectiveRepeat:
		return true
	}
	return false
}
