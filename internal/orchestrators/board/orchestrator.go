// Package board implements the board-variant orchestrator: dice rolls,
// tile-by-tile movement, the action queue, accept/refuse resolution with
// penalties and scoring, and turn handoff.
package board

//go:generate mockgen -destination=mock/mock_service.go -package=boardmock github.com/fogoseda/party-api/internal/orchestrators/board Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fogoseda/party-api/internal/config"
	"github.com/fogoseda/party-api/internal/content"
	"github.com/fogoseda/party-api/internal/entities"
	"github.com/fogoseda/party-api/internal/errors"
	"github.com/fogoseda/party-api/internal/filter"
	"github.com/fogoseda/party-api/internal/pkg/clock"
	"github.com/fogoseda/party-api/internal/pkg/idgen"
	"github.com/fogoseda/party-api/internal/pkg/roller"
	"github.com/fogoseda/party-api/internal/render"
	"github.com/fogoseda/party-api/internal/repositories/boardsession"
	"github.com/fogoseda/party-api/internal/repositories/collection"
	"github.com/fogoseda/party-api/internal/selector"
)

const (
	cardChoiceSize = 3

	warnNoActions = "Nenhuma ação disponível para esta casa com os filtros atuais"
	warnNoEvents  = "Nenhuma carta de evento disponível"
	warnNoCards   = "Nenhuma carta disponível para compra"
)

// Service defines the interface for board-variant operations
type Service interface {
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	ChooseCard(ctx context.Context, input *ChooseCardInput) (*ChooseCardOutput, error)
	ResolveDecision(ctx context.Context, input *ResolveDecisionInput) (*ResolveDecisionOutput, error)
	ApplyFeedback(ctx context.Context, input *ApplyFeedbackInput) (*ApplyFeedbackOutput, error)
}

// Config holds the dependencies for the board orchestrator
type Config struct {
	GameRepo    boardsession.Repository
	Library     *content.Library
	Renderer    render.Renderer
	Roller      roller.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Balance     config.Balance

	// CollectionRepo is optional; when set, user overlays are resolved
	// over the base action and card collections
	CollectionRepo collection.Repository
	OwnerID        string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameRepo == nil {
		vb.RequiredField("GameRepo")
	}
	if c.Library == nil {
		vb.RequiredField("Library")
	} else if c.Library.Board == nil {
		vb.Field("Library", "board topology is required")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	gameRepo       boardsession.Repository
	library        *content.Library
	board          *entities.Board
	renderer       render.Renderer
	roller         roller.Roller
	idGen          idgen.Generator
	clock          clock.Clock
	balance        config.Balance
	collectionRepo collection.Repository
	ownerID        string
	log            *slog.Logger
}

// NewOrchestrator creates a new board orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	balance := cfg.Balance
	if balance == (config.Balance{}) {
		balance = config.DefaultBalance()
	}

	return &orchestrator{
		gameRepo:       cfg.GameRepo,
		library:        cfg.Library,
		board:          cfg.Library.Board,
		renderer:       cfg.Renderer,
		roller:         cfg.Roller,
		idGen:          cfg.IDGenerator,
		clock:          cfg.Clock,
		balance:        balance,
		collectionRepo: cfg.CollectionRepo,
		ownerID:        cfg.OwnerID,
		log:            slog.Default().With("orchestrator", "board"),
	}, nil
}

// NewGame creates and persists a fresh game
func (o *orchestrator) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if len(input.Players) < o.balance.MinPlayers || len(input.Players) > o.balance.MaxPlayers {
		return nil, errors.InvalidArgumentf("player count must be between %d and %d, got %d",
			o.balance.MinPlayers, o.balance.MaxPlayers, len(input.Players))
	}

	players := make([]entities.Player, 0, len(input.Players))
	for i, setup := range input.Players {
		name := strings.TrimSpace(setup.Name)
		if name == "" {
			return nil, errors.InvalidArgumentf("player %d has no name", i+1)
		}
		players = append(players, entities.Player{
			ID:       o.idGen.Generate(),
			Name:     name,
			Color:    setup.Color,
			Position: 1,
		})
	}

	id := input.GameID
	if id == "" {
		id = o.idGen.Generate()
	}

	session := &entities.BoardSession{
		ID:             id,
		Players:        players,
		Filters:        input.Filters,
		FeedbackScores: make(map[string]int),
		CreatedAt:      o.clock.Now(),
	}

	if _, err := o.gameRepo.Save(ctx, boardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	o.renderer.RenderBoard(o.board)
	o.renderer.UpdateTokens(session.Players)

	o.log.InfoContext(ctx, "game created",
		"game_id", id,
		"players", len(players))

	return &NewGameOutput{Session: session}, nil
}

// AddPlayer joins a player to an existing game at the start tile
func (o *orchestrator) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}

	session, err := o.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if len(session.Players) >= o.balance.MaxPlayers {
		return nil, errors.FailedPreconditionf("game already has %d players", o.balance.MaxPlayers)
	}

	player := entities.Player{
		ID:       o.idGen.Generate(),
		Name:     name,
		Color:    input.Color,
		Position: 1,
	}
	session.Players = append(session.Players, player)

	if _, err := o.gameRepo.Save(ctx, boardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	o.renderer.UpdateTokens(session.Players)

	return &AddPlayerOutput{Session: session, Player: &player}, nil
}

// GetGame loads an existing game
func (o *orchestrator) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	session, err := o.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	return &GetGameOutput{Session: session}, nil
}

// ResetGame restarts a game, keeping the roster and filters
func (o *orchestrator) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	session, err := o.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	for i := range session.Players {
		session.Players[i].Position = 1
		session.Players[i].Score = 0
		session.Players[i].BlockedRounds = 0
		session.Players[i].InteractionBlocked = false
	}
	session.ActiveIndex = 0
	session.Pending = nil
	session.Queue = nil
	session.CardChoice = nil
	session.GameOver = false
	session.LastRoll = 0
	session.History = nil
	session.RecentIDs = nil
	session.PoolWarning = false

	if _, err := o.gameRepo.Save(ctx, boardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	o.renderer.UpdateTokens(session.Players)
	o.renderer.RenderPendingAction(nil)
	o.renderer.RenderHistory(nil)

	return &ResetGameOutput{Session: session}, nil
}

// RollDice performs the active player's roll: blocked players consume it,
// everyone else moves tile by tile and resolves the landing tile
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	session, err := o.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if session.GameOver {
		return nil, errors.FailedPrecondition("the game is over")
	}
	if !session.DiceEnabled() {
		return nil, errors.FailedPrecondition("an action is awaiting a decision")
	}

	player := session.ActivePlayer()
	if player == nil {
		return nil, errors.FailedPrecondition("the game has no players")
	}

	// A blocked player spends the roll sitting out.
	if player.BlockedRounds > 0 {
		player.BlockedRounds--
		if player.BlockedRounds == 0 {
			player.InteractionBlocked = false
		}
		session.AdvanceTurn()

		if _, err := o.gameRepo.Save(ctx, boardsession.SaveInput{Session: session}); err != nil {
			return nil, err
		}

		o.log.InfoContext(ctx, "blocked roll consumed",
			"game_id", session.ID,
			"player", player.Name)

		return &RollDiceOutput{Session: session, Blocked: true}, nil
	}

	roll, err := o.roller.Roll(1, 6)
	if err != nil {
		return nil, errors.Wrap(err, "dice roll failed")
	}
	session.LastRoll = roll

	actions, cards, events, err := o.pools(ctx)
	if err != nil {
		return nil, err
	}

	target := o.board.ClampPosition(player.Position + roll)
	o.moveStepwise(session, player, target)

	tile, ok := o.board.TileByID(target)
	if !ok {
		return nil, errors.Internalf("no tile with id %d", target)
	}

	o.resolveTile(session, tile, actions, cards)

	// A six grants an extra event card, resolved after the tile action.
	if roll == 6 && !session.GameOver {
		o.enqueueEventCard(session, tile.Zone, events)
	}

	o.settle(session)

	if _, err := o.gameRepo.Save(ctx, boardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	o.renderer.RenderHistory(session.History)

	o.log.InfoContext(ctx, "roll",
		"game_id", session.ID,
		"player", player.Name,
		"roll", roll,
		"tile", target)

	return &RollDiceOutput{
		Session: session,
		Roll:    roll,
		TileID:  target,
	}, nil
}

// ChooseCard resolves an open card choice; dismissal draws one of the
// presented cards at random
func (o *orchestrator) ChooseCard(ctx context.Context, input *ChooseCardInput) (*ChooseCardOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	session, err := o.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if len(session.CardChoice) == 0 {
		return nil, errors.FailedPrecondition("no card choice is open")
	}

	index := input.Index
	if input.Dismiss {
		index = int(o.roller.Float64() * float64(len(session.CardChoice)))
		if index >= len(session.CardChoice) {
			index = len(session.CardChoice) - 1
		}
	}
	if index < 0 || index >= len(session.CardChoice) {
		return nil, errors.OutOfRangef("card index %d outside [0,%d)", index, len(session.CardChoice))
	}

	chosen := session.CardChoice[index]
	session.CardChoice = nil

	// The chosen card resolves before anything already queued.
	session.Queue = append([]entities.PendingAction{{
		ItemID: chosen.ID,
		Source: entities.SourceNormal,
		Zone:   chosen.Zone,
		Text:   chosen.Text,
	}}, session.Queue...)
	session.RecentIDs = entities.PushRecent(session.RecentIDs, chosen.ID, o.balance.BoardRecentWindow)

	o.settle(session)

	if _, err := o.gameRepo.Save(ctx, boardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	return &ChooseCardOutput{Session: session, Card: &chosen}, nil
}

// ResolveDecision applies the active player's answer to the pending action
func (o *orchestrator) ResolveDecision(ctx context.Context, input *ResolveDecisionInput) (*ResolveDecisionOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}
	if input.Decision != DecisionExecute && input.Decision != DecisionRefuse {
		return nil, errors.InvalidArgumentf("invalid decision: %s", input.Decision)
	}

	session, err := o.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if session.Pending == nil {
		return nil, errors.FailedPrecondition("no action is awaiting a decision")
	}

	player := session.ActivePlayer()
	if player == nil {
		return nil, errors.FailedPrecondition("the game has no players")
	}

	pending := *session.Pending
	session.Pending = nil
	o.renderer.RenderPendingAction(nil)

	var delta int
	if input.Decision == DecisionRefuse {
		delta = o.refuse(session, player, pending)
	} else {
		actions, cards, _, perr := o.pools(ctx)
		if perr != nil {
			return nil, perr
		}
		delta = o.execute(session, player, pending, actions, cards)
	}

	o.settle(session)

	if _, err := o.gameRepo.Save(ctx, boardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	o.renderer.RenderHistory(session.History)
	o.renderer.RenderLeaderboard(session.Players)

	o.log.InfoContext(ctx, "decision",
		"game_id", session.ID,
		"player", player.Name,
		"decision", string(input.Decision),
		"score_delta", delta)

	return &ResolveDecisionOutput{Session: session, ScoreDelta: delta}, nil
}

// ApplyFeedback rates a resolved action, sharing ledger semantics with
// the card variant
func (o *orchestrator) ApplyFeedback(ctx context.Context, input *ApplyFeedbackInput) (*ApplyFeedbackOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}
	if input.Delta != 1 && input.Delta != -1 {
		return nil, errors.InvalidArgumentf("feedback delta must be +1 or -1, got %d", input.Delta)
	}

	session, err := o.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	// Only actions that were actually resolved in this game can be rated.
	itemID := input.ItemID
	if itemID == "" {
		for _, entry := range session.History {
			if !entry.Refused && entry.Source != entities.SourceSpecial {
				itemID = entry.ItemID
				break
			}
		}
		if itemID == "" {
			return nil, errors.FailedPrecondition("no resolved action to rate")
		}
	} else {
		rated := false
		for _, entry := range session.History {
			if !entry.Refused && entry.Source != entities.SourceSpecial && entry.ItemID == itemID {
				rated = true
				break
			}
		}
		if !rated {
			return nil, errors.InvalidArgumentf("item %s was not resolved in this game", itemID)
		}
	}

	score := selector.UpdateScore(session.FeedbackScores[itemID], input.Delta)
	session.FeedbackScores[itemID] = score

	if _, err := o.gameRepo.Save(ctx, boardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	return &ApplyFeedbackOutput{
		Session: session,
		ItemID:  itemID,
		Score:   score,
	}, nil
}

// refuse applies the refusal penalty: back three tiles clamped at the
// start, one blocked round with interactions off, one score point floored
// at zero
func (o *orchestrator) refuse(session *entities.BoardSession, player *entities.Player, pending entities.PendingAction) int {
	player.Position = o.board.ClampPosition(player.Position - o.balance.PenaltyTiles)
	player.BlockedRounds = o.balance.PenaltyRounds
	player.InteractionBlocked = true

	delta := 0
	if player.Score > 0 {
		delta = -o.balance.RefusePenaltyScore
		player.Score += delta
		if player.Score < 0 {
			player.Score = 0
		}
	}

	o.renderer.UpdateTokens(session.Players)
	o.pushActionHistory(session, player, pending, true)

	return delta
}

// execute applies the action's effects and awards the score
func (o *orchestrator) execute(session *entities.BoardSession, player *entities.Player, pending entities.PendingAction, actions []entities.BoardAction, cards []entities.Card) int {
	if pending.Directive != nil {
		o.applyDirective(session, player, pending.Directive, actions, cards)
	}

	delta := o.balance.ExecuteScore
	if pending.Mandatory {
		delta = o.balance.MandatoryScore
	}
	player.Score += delta

	o.pushActionHistory(session, player, pending, false)

	return delta
}

// applyDirective runs a special tile effect. Movement re-resolves the
// landing tile; repeat re-issues the most recent executed action.
func (o *orchestrator) applyDirective(session *entities.BoardSession, player *entities.Player, directive *entities.Directive, actions []entities.BoardAction, cards []entities.Card) {
	switch directive.Kind {
	case entities.DirectiveAdvance, entities.DirectiveBack:
		offset := directive.Amount
		if directive.Kind == entities.DirectiveBack {
			offset = -offset
		}
		target := o.board.ClampPosition(player.Position + offset)
		o.moveStepwise(session, player, target)

		if tile, ok := o.board.TileByID(target); ok {
			o.resolveTile(session, tile, actions, cards)
		}

	case entities.DirectiveRepeat:
		for _, entry := range session.History {
			if entry.Refused || entry.Source == entities.SourceSpecial || entry.ItemID == "" {
				continue
			}
			session.Queue = append([]entities.PendingAction{{
				ItemID:    entry.ItemID,
				Source:    entities.SourceSpecial,
				Category:  entry.Category,
				Zone:      entry.Zone,
				Text:      entry.Text,
				Mandatory: true,
			}}, session.Queue...)
			return
		}
		// nothing executed yet: the directive is a no-op
	}
}

// resolveTile dispatches the landing tile's effect
func (o *orchestrator) resolveTile(session *entities.BoardSession, tile *entities.Tile, actions []entities.BoardAction, cards []entities.Card) {
	switch tile.Type {
	case entities.TileVerdade, entities.TileDesafio, entities.TileAcaoVisual:
		category, _ := tile.Type.ActionCategory()
		o.enqueueAction(session, tile, category, actions)

	case entities.TileEspecial:
		if tile.Special == nil {
			return
		}
		session.Queue = append(session.Queue, entities.PendingAction{
			ItemID:    fmt.Sprintf("special-%d", tile.ID),
			Source:    entities.SourceSpecial,
			Zone:      tile.Zone,
			Text:      directiveText(tile.Special),
			Mandatory: true,
			Directive: tile.Special,
		})

	case entities.TileComprarCarta:
		o.openCardChoice(session, tile.Zone, cards)

	case entities.TileFinish:
		session.GameOver = true
		session.Queue = nil
		session.CardChoice = nil
		session.Pending = nil
		o.renderer.RenderLeaderboard(session.Players)
	}
}

// enqueueAction draws a zone and category matched action into the queue
func (o *orchestrator) enqueueAction(session *entities.BoardSession, tile *entities.Tile, category entities.Category, actions []entities.BoardAction) {
	pool := filter.ActionPool(actions, filter.ActionCriteria{
		Zone:     tile.Zone,
		Category: category,
		Filters:  session.Filters,
	})
	if len(pool) == 0 {
		session.PoolWarning = true
		o.renderer.ShowWarning(warnNoActions)
		return
	}

	action, ok := selector.Pick(pool, session.FeedbackScores, selector.Options{
		RecentIDs: session.RecentIDs,
	}, o.roller.Float64)
	if !ok {
		session.PoolWarning = true
		o.renderer.ShowWarning(warnNoActions)
		return
	}

	session.Queue = append(session.Queue, entities.PendingAction{
		ItemID:    action.ID,
		Source:    entities.SourceTile,
		Category:  action.Category,
		Zone:      action.Zone,
		Text:      action.Text,
		Icon:      action.Icon,
		Mandatory: action.Mandatory,
	})
	session.RecentIDs = entities.PushRecent(session.RecentIDs, action.ID, o.balance.BoardRecentWindow)
}

// enqueueEventCard draws the roll-of-six bonus card
func (o *orchestrator) enqueueEventCard(session *entities.BoardSession, zone entities.Zone, events []entities.Card) {
	pool := filter.CardsByZone(events, zone, session.Filters)
	if len(pool) == 0 {
		session.PoolWarning = true
		o.renderer.ShowWarning(warnNoEvents)
		return
	}

	card, ok := selector.Pick(pool, session.FeedbackScores, selector.Options{
		RecentIDs: session.RecentIDs,
	}, o.roller.Float64)
	if !ok {
		session.PoolWarning = true
		o.renderer.ShowWarning(warnNoEvents)
		return
	}

	session.Queue = append(session.Queue, entities.PendingAction{
		ItemID:    card.ID,
		Source:    entities.SourceEvent6,
		Zone:      card.Zone,
		Text:      card.Text,
		Mandatory: true,
	})
	session.RecentIDs = entities.PushRecent(session.RecentIDs, card.ID, o.balance.BoardRecentWindow)
}

// openCardChoice suspends the turn on a purchase choice
func (o *orchestrator) openCardChoice(session *entities.BoardSession, zone entities.Zone, cards []entities.Card) {
	pool := filter.CardsByZone(cards, zone, session.Filters)
	if len(pool) == 0 {
		session.PoolWarning = true
		o.renderer.ShowWarning(warnNoCards)
		return
	}

	// Taken cards leave the candidate pool so the choice stays distinct
	// even when the recency window covers the remainder.
	remaining := pool
	choice := make([]entities.Card, 0, cardChoiceSize)
	for len(choice) < cardChoiceSize && len(remaining) > 0 {
		card, ok := selector.Pick(remaining, session.FeedbackScores, selector.Options{
			RecentIDs: session.RecentIDs,
		}, o.roller.Float64)
		if !ok {
			break
		}
		choice = append(choice, card)

		kept := make([]entities.Card, 0, len(remaining)-1)
		for _, c := range remaining {
			if c.ID != card.ID {
				kept = append(kept, c)
			}
		}
		remaining = kept
	}

	session.CardChoice = choice
	o.renderer.RenderCardChoice(choice)
}

// settle promotes the next queued action, or hands the turn over when
// nothing is left to decide
func (o *orchestrator) settle(session *entities.BoardSession) {
	if session.GameOver || session.Pending != nil || len(session.CardChoice) > 0 {
		return
	}
	if len(session.Queue) > 0 {
		head := session.Queue[0]
		session.Queue = session.Queue[1:]
		session.Pending = &head
		o.renderer.RenderPendingAction(session.Pending)
		return
	}
	session.AdvanceTurn()
}

// moveStepwise walks the token one tile at a time so surfaces can animate
func (o *orchestrator) moveStepwise(session *entities.BoardSession, player *entities.Player, target int) {
	if target == player.Position {
		return
	}
	o.renderer.SetPreviewTile(target)

	step := 1
	if target < player.Position {
		step = -1
	}
	for player.Position != target {
		player.Position += step
		o.renderer.UpdateTokens(session.Players)
	}

	o.renderer.SetActiveTile(target)
	o.renderer.SetPreviewTile(0)
}

func (o *orchestrator) pushActionHistory(session *entities.BoardSession, player *entities.Player, pending entities.PendingAction, refused bool) {
	session.History = entities.PushHistory(session.History, entities.HistoryEntry{
		ItemID:    pending.ItemID,
		Timestamp: o.clock.Now(),
		Category:  pending.Category,
		Zone:      pending.Zone,
		Text:      pending.Text,
		Player:    player.Name,
		Roll:      session.LastRoll,
		TileID:    player.Position,
		Source:    pending.Source,
		Refused:   refused,
	}, o.balance.HistoryLimit)
}

// loadGame fetches a game merged over playable defaults
func (o *orchestrator) loadGame(ctx context.Context, id string) (*entities.BoardSession, error) {
	defaults := &entities.BoardSession{ID: id}

	out, err := o.gameRepo.Load(ctx, boardsession.LoadInput{GameID: id, Defaults: defaults})
	if err != nil {
		return nil, err
	}

	session := out.Session
	if session.FeedbackScores == nil {
		session.FeedbackScores = make(map[string]int)
	}
	for i := range session.Players {
		session.Players[i].Position = o.board.ClampPosition(session.Players[i].Position)
	}
	return session, nil
}

// pools resolves user overlays over the base board collections
func (o *orchestrator) pools(ctx context.Context) ([]entities.BoardAction, []entities.Card, []entities.Card, error) {
	if o.collectionRepo == nil {
		return o.library.Actions, o.library.Cards, o.library.EventCards, nil
	}

	out, err := o.collectionRepo.Load(ctx, collection.LoadInput{OwnerID: o.ownerID})
	if err != nil {
		return nil, nil, nil, err
	}
	return content.Overlay(o.library.Actions, out.Bundle.Actions),
		content.Overlay(o.library.Cards, out.Bundle.Cards),
		content.Overlay(o.library.EventCards, out.Bundle.EventCards),
		nil
}

func directiveText(d *entities.Directive) string {
	if d.Text != "" {
		return d.Text
	}
	switch d.Kind {
	case entities.DirectiveAdvance:
		return fmt.Sprintf("Avance %d casas", d.Amount)
	case entities.DirectiveBack:
		return fmt.Sprintf("Volte %d casas", d.Amount)
	case entities.DirectiveRepeat:
		return "Repita a última ação executada"
	}
	return ""
}
