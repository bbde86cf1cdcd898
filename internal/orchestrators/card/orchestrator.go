// Package card implements the card-variant session orchestrator: draw,
// swap, feedback, and settings flows over a persisted session.
package card

//go:generate mockgen -destination=mock/mock_service.go -package=cardmock github.com/fogoseda/party-api/internal/orchestrators/card Service

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
	"github.com/fogoseda/party-api/internal/pkg/textnorm"
	"github.com/fogoseda/party-api/internal/render"
	"github.com/fogoseda/party-api/internal/repositories/cardsession"
	"github.com/fogoseda/party-api/internal/repositories/collection"
	"github.com/fogoseda/party-api/internal/selector"
)

const (
	markOpen  = "["
	markClose = "]"

	warnLowPool = "Poucas cartas disponíveis com os filtros atuais"
)

// Service defines the interface for card-variant operations
type Service interface {
	NewSession(ctx context.Context, input *NewSessionInput) (*NewSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error)
	Swap(ctx context.Context, input *SwapInput) (*SwapOutput, error)
	ApplyFeedback(ctx context.Context, input *ApplyFeedbackInput) (*ApplyFeedbackOutput, error)

	SetLevel(ctx context.Context, input *SetLevelInput) (*UpdateSettingsOutput, error)
	SetMode(ctx context.Context, input *SetModeInput) (*UpdateSettingsOutput, error)
	SetFilters(ctx context.Context, input *SetFiltersInput) (*UpdateSettingsOutput, error)
	SetKeyword(ctx context.Context, input *SetKeywordInput) (*UpdateSettingsOutput, error)
	SetNoRepeat(ctx context.Context, input *SetNoRepeatInput) (*UpdateSettingsOutput, error)
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)
	BlockWord(ctx context.Context, input *BlockWordInput) (*BlockWordOutput, error)
	UnblockWord(ctx context.Context, input *UnblockWordInput) (*BlockWordOutput, error)

	ResetRepetition(ctx context.Context, input *ResetRepetitionInput) (*ResetRepetitionOutput, error)
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)
	HistoryText(ctx context.Context, input *HistoryTextInput) (*HistoryTextOutput, error)

	ShareLink(ctx context.Context, input *ShareLinkInput) (*ShareLinkOutput, error)
	ApplyShareLink(ctx context.Context, input *ApplyShareLinkInput) (*ApplyShareLinkOutput, error)
}

// Config holds the dependencies for the card orchestrator
type Config struct {
	SessionRepo cardsession.Repository
	Library     *content.Library
	Renderer    render.Renderer
	Roller      roller.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Balance     config.Balance

	// CollectionRepo is optional; when set, user overlays are resolved
	// over the base collections per draw
	CollectionRepo collection.Repository
	OwnerID        string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Library == nil {
		vb.RequiredField("Library")
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
	sessionRepo    cardsession.Repository
	library        *content.Library
	renderer       render.Renderer
	roller         roller.Roller
	idGen          idgen.Generator
	clock          clock.Clock
	balance        config.Balance
	collectionRepo collection.Repository
	ownerID        string
	log            *slog.Logger
}

// NewOrchestrator creates a new card orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	balance := cfg.Balance
	if balance == (config.Balance{}) {
		balance = config.DefaultBalance()
	}

	return &orchestrator{
		sessionRepo:    cfg.SessionRepo,
		library:        cfg.Library,
		renderer:       cfg.Renderer,
		roller:         cfg.Roller,
		idGen:          cfg.IDGenerator,
		clock:          cfg.Clock,
		balance:        balance,
		collectionRepo: cfg.CollectionRepo,
		ownerID:        cfg.OwnerID,
		log:            slog.Default().With("orchestrator", "card"),
	}, nil
}

// NewSession creates and persists a fresh session
func (o *orchestrator) NewSession(ctx context.Context, input *NewSessionInput) (*NewSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	level := input.Level
	if level == "" {
		level = entities.LevelLeve
	}
	if !level.Valid() {
		return nil, errors.InvalidArgumentf("invalid level: %s", level)
	}
	mode := input.Mode
	if mode == "" {
		mode = entities.ModeCasal
	}
	if !mode.Valid() {
		return nil, errors.InvalidArgumentf("invalid mode: %s", mode)
	}

	id := input.SessionID
	if id == "" {
		id = o.idGen.Generate()
	}

	now := o.clock.Now()
	session := &entities.CardSession{
		ID:             id,
		Level:          level,
		Mode:           mode,
		Theme:          input.Theme,
		NoRepeat:       o.balance.NoRepeatDefault,
		FeedbackScores: make(map[string]int),
		CreatedAt:      now,
	}

	if _, err := o.sessionRepo.Save(ctx, cardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	o.log.InfoContext(ctx, "session created",
		"session_id", id,
		"level", string(level),
		"mode", string(mode))

	return &NewSessionOutput{Session: session}, nil
}

// GetSession loads an existing session, falling back to defaults for
// missing or corrupt saved state
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: session}, nil
}

// Draw picks the next item for the session
func (o *orchestrator) Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	itemType, err := o.resolveKind(input.Kind)
	if err != nil {
		return nil, err
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	items, err := o.itemsPool(ctx)
	if err != nil {
		return nil, err
	}

	pool := filter.CardPool(items, o.criteria(session, itemType))
	if len(pool) == 0 {
		return nil, errors.FailedPreconditionf("no %s items match the current filters", itemType)
	}

	item, ok := selector.Pick(pool, session.FeedbackScores, selector.Options{
		RecentIDs: session.RecentIDs,
		LastID:    session.LastItemID,
	}, o.roller.Float64)
	if !ok {
		return nil, errors.FailedPrecondition("draw pool is empty")
	}

	o.recordDraw(session, item)

	lowPool := o.checkLowPool(session, items)

	if _, err := o.sessionRepo.Save(ctx, cardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	marked := textnorm.Mark(item.Text, session.Keyword, markOpen, markClose)
	o.renderer.RenderCard(&item, marked)
	o.renderer.RenderHistory(session.History)

	o.log.InfoContext(ctx, "draw",
		"session_id", session.ID,
		"item_id", item.ID,
		"type", string(item.Type))

	return &DrawOutput{
		Session: session,
		Item:    &item,
		Marked:  marked,
		LowPool: lowPool,
	}, nil
}

// Swap replaces the current item with an equivalent one: same type and
// level, overlapping mode, never the item itself
func (o *orchestrator) Swap(ctx context.Context, input *SwapInput) (*SwapOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentItemID == "" {
		return nil, errors.FailedPrecondition("no current item to swap")
	}

	items, err := o.itemsPool(ctx)
	if err != nil {
		return nil, err
	}

	current, ok := findItem(items, session.CurrentItemID)
	if !ok {
		return nil, errors.NotFoundf("current item %s not in collection", session.CurrentItemID)
	}

	pool := filter.CardPool(items, o.criteria(session, current.Type))
	replacement, ok := selector.PickEquivalent(pool, current, session.FeedbackScores, selector.Options{
		RecentIDs: session.RecentIDs,
		LastID:    session.LastItemID,
	}, o.roller.Float64)
	if !ok {
		return nil, errors.FailedPrecondition("no equivalent item available")
	}

	o.recordDraw(session, replacement)

	if _, err := o.sessionRepo.Save(ctx, cardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	marked := textnorm.Mark(replacement.Text, session.Keyword, markOpen, markClose)
	o.renderer.RenderCard(&replacement, marked)

	return &SwapOutput{
		Session: session,
		Item:    &replacement,
		Marked:  marked,
	}, nil
}

// ApplyFeedback rates the current item up or down
func (o *orchestrator) ApplyFeedback(ctx context.Context, input *ApplyFeedbackInput) (*ApplyFeedbackOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Delta != 1 && input.Delta != -1 {
		return nil, errors.InvalidArgumentf("feedback delta must be +1 or -1, got %d", input.Delta)
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentItemID == "" {
		return nil, errors.FailedPrecondition("no current item to rate")
	}

	score := selector.UpdateScore(session.FeedbackScores[session.CurrentItemID], input.Delta)
	session.FeedbackScores[session.CurrentItemID] = score

	if _, err := o.sessionRepo.Save(ctx, cardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	return &ApplyFeedbackOutput{
		Session: session,
		ItemID:  session.CurrentItemID,
		Score:   score,
	}, nil
}

// SetLevel changes the intensity level
func (o *orchestrator) SetLevel(ctx context.Context, input *SetLevelInput) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	return o.UpdateSettings(ctx, &UpdateSettingsInput{SessionID: input.SessionID, Level: &input.Level})
}

// SetMode changes the play mode
func (o *orchestrator) SetMode(ctx context.Context, input *SetModeInput) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	return o.UpdateSettings(ctx, &UpdateSettingsInput{SessionID: input.SessionID, Mode: &input.Mode})
}

// SetFilters changes the content ban filters
func (o *orchestrator) SetFilters(ctx context.Context, input *SetFiltersInput) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	return o.UpdateSettings(ctx, &UpdateSettingsInput{SessionID: input.SessionID, Filters: &input.Filters})
}

// SetKeyword changes the keyword filter
func (o *orchestrator) SetKeyword(ctx context.Context, input *SetKeywordInput) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	return o.UpdateSettings(ctx, &UpdateSettingsInput{SessionID: input.SessionID, Keyword: &input.Keyword})
}

// SetNoRepeat changes the recency window size
func (o *orchestrator) SetNoRepeat(ctx context.Context, input *SetNoRepeatInput) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	return o.UpdateSettings(ctx, &UpdateSettingsInput{SessionID: input.SessionID, NoRepeat: &input.NoRepeat})
}

// UpdateSettings applies any combination of settings changes, then
// re-checks the pool: the current item is swapped out if it no longer
// matches, and the low-pool warning is re-evaluated
func (o *orchestrator) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.Level != nil {
		if !input.Level.Valid() {
			return nil, errors.InvalidArgumentf("invalid level: %s", *input.Level)
		}
		session.Level = *input.Level
	}
	if input.Mode != nil {
		if !input.Mode.Valid() {
			return nil, errors.InvalidArgumentf("invalid mode: %s", *input.Mode)
		}
		session.Mode = *input.Mode
	}
	if input.Theme != nil {
		session.Theme = *input.Theme
	}
	if input.Filters != nil {
		session.Filters = *input.Filters
	}
	if input.Keyword != nil {
		session.Keyword = strings.TrimSpace(*input.Keyword)
	}
	if input.NoRepeat != nil {
		session.NoRepeat = o.balance.ClampNoRepeat(*input.NoRepeat)
		if len(session.RecentIDs) > session.NoRepeat {
			session.RecentIDs = session.RecentIDs[:session.NoRepeat]
		}
	}

	return o.finishSettingsChange(ctx, session)
}

// BlockWord adds a word to the block list
func (o *orchestrator) BlockWord(ctx context.Context, input *BlockWordInput) (*BlockWordOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	word := textnorm.Normalize(strings.TrimSpace(input.Word))
	if word == "" {
		return nil, errors.InvalidArgument("word cannot be empty")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	for _, existing := range session.BlockedWords {
		if existing == word {
			return o.finishBlockChange(ctx, session)
		}
	}
	session.BlockedWords = append(session.BlockedWords, word)

	return o.finishBlockChange(ctx, session)
}

// UnblockWord removes a word from the block list
func (o *orchestrator) UnblockWord(ctx context.Context, input *UnblockWordInput) (*BlockWordOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	word := textnorm.Normalize(strings.TrimSpace(input.Word))

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	kept := session.BlockedWords[:0]
	for _, existing := range session.BlockedWords {
		if existing != word {
			kept = append(kept, existing)
		}
	}
	session.BlockedWords = kept

	return o.finishBlockChange(ctx, session)
}

// ResetRepetition clears the recency window so every item is drawable again
func (o *orchestrator) ResetRepetition(ctx context.Context, input *ResetRepetitionInput) (*ResetRepetitionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	session.RecentIDs = nil
	session.LastItemID = ""

	if _, err := o.sessionRepo.Save(ctx, cardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	return &ResetRepetitionOutput{Session: session}, nil
}

// ClearHistory empties the history ledger
func (o *orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	session.History = nil

	if _, err := o.sessionRepo.Save(ctx, cardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	o.renderer.RenderHistory(nil)

	return &ClearHistoryOutput{Session: session}, nil
}

// HistoryText builds a copyable transcript, newest first
func (o *orchestrator) HistoryText(ctx context.Context, input *HistoryTextInput) (*HistoryTextOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, entry := range session.History {
		label := "Verdade"
		if entry.Type == entities.ItemDare {
			label = "Desafio"
		}
		fmt.Fprintf(&sb, "%s · %s (%s): %s\n",
			entry.Timestamp.Format("15:04"), label, entry.Level, entry.Text)
	}

	return &HistoryTextOutput{Text: sb.String()}, nil
}

// resolveKind maps a draw kind to an item type, flipping a coin for random
func (o *orchestrator) resolveKind(kind DrawKind) (entities.ItemType, error) {
	switch kind {
	case DrawTruth:
		return entities.ItemTruth, nil
	case DrawDare:
		return entities.ItemDare, nil
	case DrawRandom:
		if o.roller.Float64() < 0.5 {
			return entities.ItemTruth, nil
		}
		return entities.ItemDare, nil
	default:
		return "", errors.InvalidArgumentf("invalid draw kind: %s", kind)
	}
}

// loadSession fetches a session merged over playable defaults and
// normalizes the bits the rest of the flow relies on
func (o *orchestrator) loadSession(ctx context.Context, id string) (*entities.CardSession, error) {
	defaults := &entities.CardSession{
		ID:       id,
		Level:    entities.LevelLeve,
		Mode:     entities.ModeCasal,
		NoRepeat: o.balance.NoRepeatDefault,
	}

	out, err := o.sessionRepo.Load(ctx, cardsession.LoadInput{SessionID: id, Defaults: defaults})
	if err != nil {
		return nil, err
	}

	session := out.Session
	if !session.Level.Valid() {
		session.Level = entities.LevelLeve
	}
	if !session.Mode.Valid() {
		session.Mode = entities.ModeCasal
	}
	session.NoRepeat = o.balance.ClampNoRepeat(session.NoRepeat)
	if session.FeedbackScores == nil {
		session.FeedbackScores = make(map[string]int)
	}
	return session, nil
}

// itemsPool resolves user overlays over the base item collection
func (o *orchestrator) itemsPool(ctx context.Context) ([]entities.Item, error) {
	if o.collectionRepo == nil {
		return o.library.Items, nil
	}

	out, err := o.collectionRepo.Load(ctx, collection.LoadInput{OwnerID: o.ownerID})
	if err != nil {
		return nil, err
	}
	return content.Overlay(o.library.Items, out.Bundle.Items), nil
}

func (o *orchestrator) criteria(session *entities.CardSession, t entities.ItemType) filter.CardCriteria {
	return filter.CardCriteria{
		Type:         t,
		Level:        session.Level,
		Mode:         session.Mode,
		Filters:      session.Filters,
		BlockedWords: session.BlockedWords,
		Keyword:      session.Keyword,
	}
}

// recordDraw applies the bookkeeping shared by Draw and Swap: history
// push (skipping a duplicate head), recency update, current/last markers
func (o *orchestrator) recordDraw(session *entities.CardSession, item entities.Item) {
	if len(session.History) == 0 || session.History[0].ItemID != item.ID {
		session.History = entities.PushHistory(session.History, entities.HistoryEntry{
			ItemID:    item.ID,
			Timestamp: o.clock.Now(),
			Type:      item.Type,
			Level:     item.Level,
			Mode:      session.Mode,
			Text:      item.Text,
		}, o.balance.HistoryLimit)
	}
	session.RecentIDs = entities.PushRecent(session.RecentIDs, item.ID, session.NoRepeat)
	session.LastItemID = item.ID
	session.CurrentItemID = item.ID
}

// checkLowPool raises the shortage warning when either draw pool is thin
func (o *orchestrator) checkLowPool(session *entities.CardSession, items []entities.Item) bool {
	truthN := len(filter.CardPool(items, o.criteria(session, entities.ItemTruth)))
	dareN := len(filter.CardPool(items, o.criteria(session, entities.ItemDare)))
	if filter.LowPool(truthN, dareN, o.balance.LowPoolThreshold) {
		o.renderer.ShowWarning(warnLowPool)
		return true
	}
	return false
}

// finishSettingsChange revalidates the current item against the new
// settings, saves, and reports the low-pool state
func (o *orchestrator) finishSettingsChange(ctx context.Context, session *entities.CardSession) (*UpdateSettingsOutput, error) {
	items, err := o.itemsPool(ctx)
	if err != nil {
		return nil, err
	}

	swapped := o.revalidateCurrent(session, items)
	lowPool := o.checkLowPool(session, items)

	if _, err := o.sessionRepo.Save(ctx, cardsession.SaveInput{Session: session}); err != nil {
		return nil, err
	}

	if swapped != nil {
		o.renderer.RenderCard(swapped, textnorm.Mark(swapped.Text, session.Keyword, markOpen, markClose))
	}

	return &UpdateSettingsOutput{
		Session: session,
		Swapped: swapped,
		LowPool: lowPool,
	}, nil
}

func (o *orchestrator) finishBlockChange(ctx context.Context, session *entities.CardSession) (*BlockWordOutput, error) {
	out, err := o.finishSettingsChange(ctx, session)
	if err != nil {
		return nil, err
	}
	return &BlockWordOutput{
		Session: out.Session,
		Swapped: out.Swapped,
		LowPool: out.LowPool,
	}, nil
}

// revalidateCurrent swaps the current item when the active settings no
// longer admit it. Returns the replacement, or nil when nothing changed.
// An empty replacement pool clears the current item instead.
func (o *orchestrator) revalidateCurrent(session *entities.CardSession, items []entities.Item) *entities.Item {
	if session.CurrentItemID == "" {
		return nil
	}

	current, ok := findItem(items, session.CurrentItemID)
	if ok && o.criteria(session, current.Type).Matches(current) {
		return nil
	}

	itemType := current.Type
	if !ok {
		itemType = entities.ItemTruth
	}

	pool := filter.CardPool(items, o.criteria(session, itemType))
	replacement, picked := selector.Pick(pool, session.FeedbackScores, selector.Options{
		RecentIDs: session.RecentIDs,
		LastID:    session.LastItemID,
	}, o.roller.Float64)
	if !picked {
		session.CurrentItemID = ""
		return nil
	}

	o.recordDraw(session, replacement)
	return &replacement
}

func findItem(items []entities.Item, id string) (entities.Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return entities.Item{}, false
}
