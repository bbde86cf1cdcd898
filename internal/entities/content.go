package entities

// Bans are the content-exclusion flags an item may carry
type Bans struct {
	Nudez     bool `json:"nudez"`
	Dominacao bool `json:"dominacao"`
	Oral      bool `json:"oral"`
}

// BanFilters are the player-configured exclusions. A set flag removes
// every item carrying the matching ban.
type BanFilters struct {
	NoOral  bool `json:"noOral"`
	NoDom   bool `json:"noDom"`
	NoNudez bool `json:"noNudez"`
}

// Excludes reports whether the filters reject an item with the given bans
func (f BanFilters) Excludes(b Bans) bool {
	if f.NoOral && b.Oral {
		return true
	}
	if f.NoDom && b.Dominacao {
		return true
	}
	if f.NoNudez && b.Nudez {
		return true
	}
	return false
}

// Item is a card-variant content entry. Immutable once loaded.
type Item struct {
	ID       string   `json:"id"`
	Type     ItemType `json:"type"`
	Level    Level    `json:"level"`
	Mode     []Mode   `json:"mode"`
	Text     string   `json:"text"`
	Bans     Bans     `json:"bans"`
	Fallback bool     `json:"fallback,omitempty"`
}

// GetID returns the item id
func (i Item) GetID() string { return i.ID }

// HasMode reports whether the item is playable in the given mode
func (i Item) HasMode(m Mode) bool {
	for _, mode := range i.Mode {
		if mode == m {
			return true
		}
	}
	return false
}

// OverlapsMode reports whether the item shares at least one mode with other
func (i Item) OverlapsMode(other Item) bool {
	for _, mode := range other.Mode {
		if i.HasMode(mode) {
			return true
		}
	}
	return false
}

// BoardAction is a board-variant content entry tied to a zone and category.
// Immutable once loaded.
type BoardAction struct {
	ID        string   `json:"id"`
	Category  Category `json:"category"`
	Zone      Zone     `json:"zone"`
	Text      string   `json:"text"`
	Bans      Bans     `json:"bans"`
	Icon      string   `json:"icon,omitempty"`
	Mandatory bool     `json:"mandatory,omitempty"`
}

// GetID returns the action id
func (a BoardAction) GetID() string { return a.ID }

// Card is a board-variant deck entry (normal draw pile or event-6 pile)
type Card struct {
	ID   string `json:"id"`
	Zone Zone   `json:"zone"`
	Text string `json:"text"`
	Bans Bans   `json:"bans"`
}

// GetID returns the card id
func (c Card) GetID() string { return c.ID }
