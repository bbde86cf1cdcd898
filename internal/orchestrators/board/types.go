package board

import (
	"github.com/fogoseda/party-api/internal/entities"
)

// PlayerSetup describes one player joining a game
type PlayerSetup struct {
	Name  string
	Color string
}

// NewGameInput contains parameters for creating a game
type NewGameInput struct {
	// GameID is optional; one is generated when empty
	GameID  string
	Players []PlayerSetup
	Filters entities.BanFilters
}

// NewGameOutput contains the created game
type NewGameOutput struct {
	Session *entities.BoardSession
}

// AddPlayerInput contains parameters for adding a player to a game
type AddPlayerInput struct {
	GameID string
	Name   string
	Color  string
}

// AddPlayerOutput contains the updated game
type AddPlayerOutput struct {
	Session *entities.BoardSession
	Player  *entities.Player
}

// GetGameInput contains parameters for fetching a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the fetched game
type GetGameOutput struct {
	Session *entities.BoardSession
}

// ResetGameInput restarts a game keeping its players and filters
type ResetGameInput struct {
	GameID string
}

// ResetGameOutput contains the restarted game
type ResetGameOutput struct {
	Session *entities.BoardSession
}

// RollDiceInput contains parameters for the active player's roll
type RollDiceInput struct {
	GameID string
}

// RollDiceOutput contains the roll result
type RollDiceOutput struct {
	Session *entities.BoardSession

	// Roll is the die value; zero when the roll was consumed by a block
	Roll int

	// Blocked is set when the active player sat out this roll
	Blocked bool

	// TileID is the tile the token landed on; zero when blocked
	TileID int
}

// ChooseCardInput contains the card-choice decision
type ChooseCardInput struct {
	GameID string

	// Index selects one of the presented cards
	Index int

	// Dismiss picks one of the presented cards at random instead
	Dismiss bool
}

// ChooseCardOutput contains the chosen card
type ChooseCardOutput struct {
	Session *entities.BoardSession
	Card    *entities.Card
}

// Decision is the active player's answer to a pending action
type Decision string

// Decisions
const (
	DecisionExecute Decision = "execute"
	DecisionRefuse  Decision = "refuse"
)

// ResolveDecisionInput contains the accept/refuse decision
type ResolveDecisionInput struct {
	GameID   string
	Decision Decision
}

// ResolveDecisionOutput contains the resolution result
type ResolveDecisionOutput struct {
	Session *entities.BoardSession

	// ScoreDelta is the score change applied to the deciding player
	ScoreDelta int
}

// ApplyFeedbackInput rates a resolved action
type ApplyFeedbackInput struct {
	GameID string

	// ItemID is optional; the most recent resolved action is rated when empty
	ItemID string

	// Delta must be +1 or -1
	Delta int
}

// ApplyFeedbackOutput contains the updated score
type ApplyFeedbackOutput struct {
	Session *entities.BoardSession
	ItemID  string
	Score   int
}
