package render

import (
	"sync"

	"github.com/fogoseda/party-api/internal/entities"
)

// Recorder captures projection events for inspection. Tests use it to
// assert per-step movement and warning emission without gomock ceremony.
type Recorder struct {
	mu sync.Mutex

	TokenUpdates   [][]entities.Player
	ActiveTiles    []int
	PreviewTiles   []int
	PendingActions []*entities.PendingAction
	CardChoices    [][]entities.Card
	Cards          []string
	Warnings       []string
}

// NewRecorder creates a renderer that records every event it receives
func NewRecorder() *Recorder { return &Recorder{} }

var _ Renderer = (*Recorder)(nil)

func (r *Recorder) RenderBoard(*entities.Board) {}

func (r *Recorder) UpdateTokens(players []entities.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]entities.Player, len(players))
	copy(snapshot, players)
	r.TokenUpdates = append(r.TokenUpdates, snapshot)
}

func (r *Recorder) SetActiveTile(tileID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ActiveTiles = append(r.ActiveTiles, tileID)
}

func (r *Recorder) SetPreviewTile(tileID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.PreviewTiles = append(r.PreviewTiles, tileID)
}

func (r *Recorder) RenderPendingAction(action *entities.PendingAction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.PendingActions = append(r.PendingActions, action)
}

func (r *Recorder) RenderCardChoice(cards []entities.Card) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]entities.Card, len(cards))
	copy(snapshot, cards)
	r.CardChoices = append(r.CardChoices, snapshot)
}

func (r *Recorder) RenderCard(item *entities.Item, marked string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	text := marked
	if text == "" && item != nil {
		text = item.Text
	}
	r.Cards = append(r.Cards, text)
}

func (r *Recorder) RenderHistory([]entities.HistoryEntry) {}

func (r *Recorder) RenderLeaderboard([]entities.Player) {}

func (r *Recorder) ShowWarning(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings = append(r.Warnings, message)
}

// LastTokenPositions returns the position of the named player across all
// token updates, in order
func (r *Recorder) LastTokenPositions(name string) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var positions []int
	for _, update := range r.TokenUpdates {
		for _, p := range update {
			if p.Name == name {
				positions = append(positions, p.Position)
			}
		}
	}
	return positions
}
