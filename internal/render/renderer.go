// Package render defines the presentation boundary. Orchestrators push
// state changes through the Renderer interface; implementations decide
// how to show them. The engine never depends on a concrete surface.
package render

import (
	"github.com/fogoseda/party-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_renderer.go -package=rendermock github.com/fogoseda/party-api/internal/render Renderer

// Renderer receives projection events from the orchestrators
type Renderer interface {
	// RenderBoard draws the full board layout
	RenderBoard(board *entities.Board)

	// UpdateTokens repositions player tokens. Called once per movement
	// step so surfaces can animate tile-by-tile.
	UpdateTokens(players []entities.Player)

	// SetActiveTile marks the tile the active player stands on
	SetActiveTile(tileID int)

	// SetPreviewTile marks a movement destination before the token
	// arrives; zero clears the preview
	SetPreviewTile(tileID int)

	// RenderPendingAction shows the action awaiting a decision; nil clears it
	RenderPendingAction(action *entities.PendingAction)

	// RenderCardChoice shows a purchase choice of cards; empty clears it
	RenderCardChoice(cards []entities.Card)

	// RenderCard shows a drawn card-variant item with the keyword-marked text
	RenderCard(item *entities.Item, marked string)

	// RenderHistory shows the history ledger, newest first
	RenderHistory(entries []entities.HistoryEntry)

	// RenderLeaderboard shows players ordered by score
	RenderLeaderboard(players []entities.Player)

	// ShowWarning surfaces a non-fatal gameplay warning (pool shortage etc.)
	ShowWarning(message string)
}

// Nop is a Renderer that discards every event
type Nop struct{}

// NewNop creates a renderer that ignores all projection events
func NewNop() *Nop { return &Nop{} }

var _ Renderer = (*Nop)(nil)

func (*Nop) RenderBoard(*entities.Board)                 {}
func (*Nop) UpdateTokens([]entities.Player)              {}
func (*Nop) SetActiveTile(int)                           {}
func (*Nop) SetPreviewTile(int)                          {}
func (*Nop) RenderPendingAction(*entities.PendingAction) {}
func (*Nop) RenderCardChoice([]entities.Card)            {}
func (*Nop) RenderCard(*entities.Item, string)           {}
func (*Nop) RenderHistory([]entities.HistoryEntry)       {}
func (*Nop) RenderLeaderboard([]entities.Player)         {}
func (*Nop) ShowWarning(string)                          {}
