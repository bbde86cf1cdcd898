package entities

// Directive is the effect payload of a special tile
type Directive struct {
	Kind   DirectiveKind `json:"kind"`
	Amount int           `json:"amount,omitempty"`
	Text   string        `json:"text,omitempty"`
}

// Tile is a single board position. Board topology never mutates at runtime.
type Tile struct {
	ID      int        `json:"id"`
	Zone    Zone       `json:"zone"`
	Type    TileType   `json:"type"`
	Row     int        `json:"row"`
	Col     int        `json:"col"`
	Special *Directive `json:"special,omitempty"`
}

// Connection is a directed edge in the board path
type Connection struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Board is the static tile graph of the board variant
type Board struct {
	Tiles       []Tile       `json:"tiles"`
	Connections []Connection `json:"connections"`
	Rows        int          `json:"rows"`
	Cols        int          `json:"cols"`

	byID map[int]*Tile
}

// Index builds the tile lookup table. Called once after load.
func (b *Board) Index() {
	b.byID = make(map[int]*Tile, len(b.Tiles))
	for i := range b.Tiles {
		b.byID[b.Tiles[i].ID] = &b.Tiles[i]
	}
}

// TileByID returns the tile with the given id
func (b *Board) TileByID(id int) (*Tile, bool) {
	if b.byID == nil {
		b.Index()
	}
	t, ok := b.byID[id]
	return t, ok
}

// MaxTileID returns the highest tile id on the board
func (b *Board) MaxTileID() int {
	maxID := 0
	for i := range b.Tiles {
		if b.Tiles[i].ID > maxID {
			maxID = b.Tiles[i].ID
		}
	}
	return maxID
}

// ClampPosition clamps a position into [1, MaxTileID]
func (b *Board) ClampPosition(pos int) int {
	if pos < 1 {
		return 1
	}
	if maxID := b.MaxTileID(); pos > maxID {
		return maxID
	}
	return pos
}
