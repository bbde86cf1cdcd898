package board_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fogoseda/party-api/internal/config"
	"github.com/fogoseda/party-api/internal/content"
	"github.com/fogoseda/party-api/internal/entities"
	"github.com/fogoseda/party-api/internal/errors"
	"github.com/fogoseda/party-api/internal/orchestrators/board"
	"github.com/fogoseda/party-api/internal/pkg/clock"
	"github.com/fogoseda/party-api/internal/pkg/idgen"
	"github.com/fogoseda/party-api/internal/pkg/roller"
	"github.com/fogoseda/party-api/internal/render"
	"github.com/fogoseda/party-api/internal/repositories/boardsession"
)

// testBoard is a 12-tile path: leve tiles 1-8, quente 9-11, finish at 12.
// Tile 4 advances two, tile 8 repeats, tile 11 goes back three.
func testBoard() *entities.Board {
	b := &entities.Board{
		Rows: 1,
		Cols: 12,
		Tiles: []entities.Tile{
			{ID: 1, Zone: entities.ZoneLeve, Type: entities.TileVerdade, Row: 1, Col: 1},
			{ID: 2, Zone: entities.ZoneLeve, Type: entities.TileDesafio, Row: 1, Col: 2},
			{ID: 3, Zone: entities.ZoneLeve, Type: entities.TileVerdade, Row: 1, Col: 3},
			{ID: 4, Zone: entities.ZoneLeve, Type: entities.TileEspecial, Row: 1, Col: 4,
				Special: &entities.Directive{Kind: entities.DirectiveAdvance, Amount: 2}},
			{ID: 5, Zone: entities.ZoneLeve, Type: entities.TileComprarCarta, Row: 1, Col: 5},
			{ID: 6, Zone: entities.ZoneLeve, Type: entities.TileAcaoVisual, Row: 1, Col: 6},
			{ID: 7, Zone: entities.ZoneLeve, Type: entities.TileDesafio, Row: 1, Col: 7},
			{ID: 8, Zone: entities.ZoneLeve, Type: entities.TileEspecial, Row: 1, Col: 8,
				Special: &entities.Directive{Kind: entities.DirectiveRepeat}},
			{ID: 9, Zone: entities.ZoneQuente, Type: entities.TileVerdade, Row: 1, Col: 9},
			{ID: 10, Zone: entities.ZoneQuente, Type: entities.TileDesafio, Row: 1, Col: 10},
			{ID: 11, Zone: entities.ZoneQuente, Type: entities.TileEspecial, Row: 1, Col: 11,
				Special: &entities.Directive{Kind: entities.DirectiveBack, Amount: 3}},
			{ID: 12, Zone: entities.ZoneFinal, Type: entities.TileFinish, Row: 1, Col: 12},
		},
		Connections: []entities.Connection{
			{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 4, To: 5},
			{From: 5, To: 6}, {From: 6, To: 7}, {From: 7, To: 8}, {From: 8, To: 9},
			{From: 9, To: 10}, {From: 10, To: 11}, {From: 11, To: 12},
		},
	}
	b.Index()
	return b
}

func testLibrary() *content.Library {
	return &content.Library{
		Actions: []entities.BoardAction{
			{ID: "av1", Category: entities.CategoryVerdade, Zone: entities.ZoneLeve,
				Text: "Conte a melhor lembrança de vocês dois"},
			{ID: "av2", Category: entities.CategoryVerdade, Zone: entities.ZoneLeve,
				Text: "Qual apelido carinhoso você nunca revelou?"},
			{ID: "ad1", Category: entities.CategoryDesafio, Zone: entities.ZoneLeve,
				Text: "Sussurre algo no ouvido do parceiro"},
			{ID: "avv1", Category: entities.CategoryAcaoVisual, Zone: entities.ZoneLeve,
				Text: "Faça sua pose mais sedutora", Icon: "pose"},
			{ID: "avq1", Category: entities.CategoryVerdade, Zone: entities.ZoneQuente,
				Text: "Qual foi o beijo mais marcante?"},
			{ID: "adq1", Category: entities.CategoryDesafio, Zone: entities.ZoneQuente,
				Text: "Beije o pescoço do parceiro por dez segundos"},
		},
		Cards: []entities.Card{
			{ID: "c1", Zone: entities.ZoneLeve, Text: "Dê um elogio sincero"},
			{ID: "c2", Zone: entities.ZoneLeve, Text: "Abrace por vinte segundos"},
			{ID: "c3", Zone: entities.ZoneLeve, Text: "Olhe nos olhos por um minuto"},
			{ID: "c4", Zone: entities.ZoneLeve, Text: "Conte uma qualidade do parceiro"},
		},
		EventCards: []entities.Card{
			{ID: "e1", Zone: entities.ZoneLeve, Text: "Todos trocam de lugar"},
			{ID: "e2", Zone: entities.ZoneQuente, Text: "Escolha alguém para repetir sua ação"},
		},
		Board: testBoard(),
	}
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     boardsession.Repository
	recorder *render.Recorder
	rolls    *roller.Scripted
	service  board.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = boardsession.NewInMemoryRepository()
	s.recorder = render.NewRecorder()
	s.rolls = &roller.Scripted{Rolls: []int{2}, Floats: []float64{0}}

	svc, err := board.NewOrchestrator(&board.Config{
		GameRepo:    s.repo,
		Library:     testLibrary(),
		Renderer:    s.recorder,
		Roller:      s.rolls,
		IDGenerator: idgen.NewSequential("p"),
		Clock:       clock.NewFixed(time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)),
		Balance:     config.DefaultBalance(),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *OrchestratorTestSuite) newGame() string {
	out, err := s.service.NewGame(s.ctx, &board.NewGameInput{
		Players: []board.PlayerSetup{
			{Name: "Ana", Color: "red"},
			{Name: "Bruno", Color: "blue"},
		},
	})
	s.Require().NoError(err)
	return out.Session.ID
}

// saveGame writes a crafted state so tests can start mid-game
func (s *OrchestratorTestSuite) saveGame(session *entities.BoardSession) {
	_, err := s.repo.Save(s.ctx, boardsession.SaveInput{Session: session})
	s.Require().NoError(err)
}

func midGame(id string) *entities.BoardSession {
	return &entities.BoardSession{
		ID: id,
		Players: []entities.Player{
			{ID: "p1", Name: "Ana", Color: "red", Position: 1},
			{ID: "p2", Name: "Bruno", Color: "blue", Position: 1},
		},
		FeedbackScores: map[string]int{},
	}
}

func (s *OrchestratorTestSuite) TestNewGameValidatesPlayerCount() {
	_, err := s.service.NewGame(s.ctx, &board.NewGameInput{
		Players: []board.PlayerSetup{{Name: "Solo"}},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	seven := make([]board.PlayerSetup, 7)
	for i := range seven {
		seven[i] = board.PlayerSetup{Name: "Jogador"}
	}
	_, err = s.service.NewGame(s.ctx, &board.NewGameInput{Players: seven})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddPlayerUpToMax() {
	id := s.newGame()

	for i := 0; i < 4; i++ {
		_, err := s.service.AddPlayer(s.ctx, &board.AddPlayerInput{GameID: id, Name: "Extra"})
		s.Require().NoError(err)
	}
	_, err := s.service.AddPlayer(s.ctx, &board.AddPlayerInput{GameID: id, Name: "Sétimo"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRollDiceMovesStepwiseAndEnqueues() {
	id := s.newGame()

	out, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	s.Equal(2, out.Roll)
	s.Equal(3, out.TileID)

	// token walked one tile at a time; the first update is game creation
	s.Equal([]int{1, 2, 3}, s.recorder.LastTokenPositions("Ana"))

	s.Require().NotNil(out.Session.Pending)
	s.Equal(entities.SourceTile, out.Session.Pending.Source)
	s.Equal(entities.CategoryVerdade, out.Session.Pending.Category)
	s.Empty(out.Session.Queue)
	s.False(out.Session.DiceEnabled())
}

func (s *OrchestratorTestSuite) TestRollWhilePendingFails() {
	id := s.newGame()

	_, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)

	_, err = s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRollSixQueuesExactlyOneEventCard() {
	id := s.newGame()
	s.rolls.Rolls = []int{6}

	out, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	s.Equal(7, out.TileID)

	// tile action pending, event card queued behind it: exactly two
	s.Require().NotNil(out.Session.Pending)
	s.Equal(entities.SourceTile, out.Session.Pending.Source)
	s.Require().Len(out.Session.Queue, 1)
	s.Equal(entities.SourceEvent6, out.Session.Queue[0].Source)
	s.True(out.Session.Queue[0].Mandatory)

	// executing both hands the turn over
	_, err = s.service.ResolveDecision(s.ctx, &board.ResolveDecisionInput{GameID: id, Decision: board.DecisionExecute})
	s.Require().NoError(err)
	resolved, err := s.service.ResolveDecision(s.ctx, &board.ResolveDecisionInput{GameID: id, Decision: board.DecisionExecute})
	s.Require().NoError(err)
	s.Nil(resolved.Session.Pending)
	s.Equal(1, resolved.Session.ActiveIndex)
	s.True(resolved.Session.DiceEnabled())
}

func (s *OrchestratorTestSuite) TestRefusePenalty() {
	id := "game_refuse"
	session := midGame(id)
	session.Players[0].Position = 10
	session.Players[0].Score = 5
	session.Pending = &entities.PendingAction{
		ItemID: "adq1",
		Source: entities.SourceTile,
		Zone:   entities.ZoneQuente,
		Text:   "Beije o pescoço do parceiro por dez segundos",
	}
	s.saveGame(session)

	out, err := s.service.ResolveDecision(s.ctx, &board.ResolveDecisionInput{GameID: id, Decision: board.DecisionRefuse})
	s.Require().NoError(err)

	ana := out.Session.Players[0]
	s.Equal(7, ana.Position)
	s.Equal(1, ana.BlockedRounds)
	s.True(ana.InteractionBlocked)
	s.Equal(4, ana.Score)
	s.Equal(-1, out.ScoreDelta)

	s.Require().NotEmpty(out.Session.History)
	s.True(out.Session.History[0].Refused)
	s.Equal(1, out.Session.ActiveIndex)
}

func (s *OrchestratorTestSuite) TestRefuseNearStartClampsAtOne() {
	id := "game_clamp"
	session := midGame(id)
	session.Players[0].Position = 2
	session.Pending = &entities.PendingAction{ItemID: "av1", Source: entities.SourceTile, Text: "x"}
	s.saveGame(session)

	out, err := s.service.ResolveDecision(s.ctx, &board.ResolveDecisionInput{GameID: id, Decision: board.DecisionRefuse})
	s.Require().NoError(err)
	s.Equal(1, out.Session.Players[0].Position)
	// score was already zero; it stays there
	s.Equal(0, out.Session.Players[0].Score)
	s.Equal(0, out.ScoreDelta)
}

func (s *OrchestratorTestSuite) TestBlockedPlayerConsumesRoll() {
	id := "game_blocked"
	session := midGame(id)
	session.Players[0].BlockedRounds = 1
	session.Players[0].InteractionBlocked = true
	s.saveGame(session)

	out, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	s.True(out.Blocked)
	s.Zero(out.Roll)

	ana := out.Session.Players[0]
	s.Equal(0, ana.BlockedRounds)
	s.False(ana.InteractionBlocked)
	s.Equal(1, ana.Position)
	s.Equal(1, out.Session.ActiveIndex)
}

func (s *OrchestratorTestSuite) TestFinishEndsGame() {
	id := "game_finish"
	session := midGame(id)
	session.Players[0].Position = 10
	s.saveGame(session)
	s.rolls.Rolls = []int{4}

	out, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	// movement clamps at the last tile
	s.Equal(12, out.TileID)
	s.True(out.Session.GameOver)
	s.Nil(out.Session.Pending)
	s.Empty(out.Session.Queue)
	s.False(out.Session.DiceEnabled())

	_, err = s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestFinishWithRollSixQueuesNothing() {
	id := "game_finish6"
	session := midGame(id)
	session.Players[0].Position = 8
	s.saveGame(session)
	s.rolls.Rolls = []int{6}

	out, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	s.True(out.Session.GameOver)
	s.Empty(out.Session.Queue)
}

func (s *OrchestratorTestSuite) TestCardPurchaseChoice() {
	id := "game_cards"
	session := midGame(id)
	session.Players[0].Position = 3
	s.saveGame(session)
	s.rolls.Rolls = []int{2}

	out, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	s.Equal(5, out.TileID)
	s.Len(out.Session.CardChoice, 3)
	s.Nil(out.Session.Pending)
	s.False(out.Session.DiceEnabled())

	// rolling while the choice is open is rejected
	_, err = s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().Error(err)

	chosen, err := s.service.ChooseCard(s.ctx, &board.ChooseCardInput{GameID: id, Index: 1})
	s.Require().NoError(err)
	s.Empty(chosen.Session.CardChoice)
	s.Require().NotNil(chosen.Session.Pending)
	s.Equal(entities.SourceNormal, chosen.Session.Pending.Source)
	s.Equal(chosen.Card.ID, chosen.Session.Pending.ItemID)
}

func (s *OrchestratorTestSuite) TestCardChoiceDismissPicksRandomly() {
	id := "game_dismiss"
	session := midGame(id)
	session.Players[0].Position = 3
	s.saveGame(session)
	s.rolls.Rolls = []int{2}

	out, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	presented := out.Session.CardChoice
	s.Require().Len(presented, 3)

	// 0.5 lands on the middle card
	s.rolls.Floats = []float64{0.5}
	chosen, err := s.service.ChooseCard(s.ctx, &board.ChooseCardInput{GameID: id, Dismiss: true})
	s.Require().NoError(err)
	s.Equal(presented[1].ID, chosen.Card.ID)
}

func (s *OrchestratorTestSuite) TestCardPurchaseOffersThreeDespiteRecency() {
	id := "game_recent_cards"
	session := midGame(id)
	session.Players[0].Position = 3
	// the recency window covers most of the deck
	session.RecentIDs = []string{"c1", "c2", "c3"}
	s.saveGame(session)
	s.rolls.Rolls = []int{2}

	out, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	s.Require().Len(out.Session.CardChoice, 3)

	seen := make(map[string]bool, 3)
	for _, card := range out.Session.CardChoice {
		s.False(seen[card.ID], "card %s presented twice", card.ID)
		seen[card.ID] = true
	}
}

func (s *OrchestratorTestSuite) TestSpecialAdvanceReResolvesLanding() {
	id := s.newGame()
	s.rolls.Rolls = []int{3}

	out, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	s.Equal(4, out.TileID)
	s.Require().NotNil(out.Session.Pending)
	s.Equal(entities.SourceSpecial, out.Session.Pending.Source)
	s.Require().NotNil(out.Session.Pending.Directive)

	resolved, err := s.service.ResolveDecision(s.ctx, &board.ResolveDecisionInput{GameID: id, Decision: board.DecisionExecute})
	s.Require().NoError(err)

	ana := resolved.Session.Players[0]
	s.Equal(6, ana.Position)
	// directives are mandatory: +3
	s.Equal(3, ana.Score)
	s.Equal(3, resolved.ScoreDelta)

	// landing tile drew a visual action for the same player
	s.Require().NotNil(resolved.Session.Pending)
	s.Equal("avv1", resolved.Session.Pending.ItemID)
	s.Equal(0, resolved.Session.ActiveIndex)
}

func (s *OrchestratorTestSuite) TestRepeatDirectiveReissuesLastExecuted() {
	id := "game_repeat"
	session := midGame(id)
	session.Players[0].Position = 7
	session.History = []entities.HistoryEntry{
		{ItemID: "special-4", Source: entities.SourceSpecial, Player: "Ana", Text: "Avance 2 casas"},
		{ItemID: "ad1", Source: entities.SourceTile, Category: entities.CategoryDesafio,
			Zone: entities.ZoneLeve, Player: "Ana", Text: "Sussurre algo no ouvido do parceiro"},
		{ItemID: "av1", Source: entities.SourceTile, Refused: true, Player: "Bruno", Text: "recusada"},
	}
	s.saveGame(session)
	s.rolls.Rolls = []int{1}

	out, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	s.Equal(8, out.TileID)

	resolved, err := s.service.ResolveDecision(s.ctx, &board.ResolveDecisionInput{GameID: id, Decision: board.DecisionExecute})
	s.Require().NoError(err)
	s.Require().NotNil(resolved.Session.Pending)
	// the refused entry and the special are skipped
	s.Equal("ad1", resolved.Session.Pending.ItemID)
	s.True(resolved.Session.Pending.Mandatory)
}

func (s *OrchestratorTestSuite) TestRepeatDirectiveWithoutHistoryIsNoOp() {
	id := "game_repeat_empty"
	session := midGame(id)
	session.Players[0].Position = 7
	s.saveGame(session)
	s.rolls.Rolls = []int{1}

	_, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)

	resolved, err := s.service.ResolveDecision(s.ctx, &board.ResolveDecisionInput{GameID: id, Decision: board.DecisionExecute})
	s.Require().NoError(err)
	s.Nil(resolved.Session.Pending)
	s.Equal(1, resolved.Session.ActiveIndex)
}

func (s *OrchestratorTestSuite) TestExecuteScoresPlain() {
	id := s.newGame()

	_, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)

	resolved, err := s.service.ResolveDecision(s.ctx, &board.ResolveDecisionInput{GameID: id, Decision: board.DecisionExecute})
	s.Require().NoError(err)
	s.Equal(2, resolved.ScoreDelta)
	s.Equal(2, resolved.Session.Players[0].Score)
	s.False(resolved.Session.History[0].Refused)
}

func (s *OrchestratorTestSuite) TestApplyFeedbackDefaultsToLastExecuted() {
	id := s.newGame()

	_, err := s.service.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	resolved, err := s.service.ResolveDecision(s.ctx, &board.ResolveDecisionInput{GameID: id, Decision: board.DecisionExecute})
	s.Require().NoError(err)
	itemID := resolved.Session.History[0].ItemID

	out, err := s.service.ApplyFeedback(s.ctx, &board.ApplyFeedbackInput{GameID: id, Delta: -1})
	s.Require().NoError(err)
	s.Equal(itemID, out.ItemID)
	s.Equal(-1, out.Score)
}

func (s *OrchestratorTestSuite) TestApplyFeedbackRejectsUnresolvedItem() {
	id := "game_fb_unknown"
	session := midGame(id)
	session.History = []entities.HistoryEntry{
		{ItemID: "av1", Source: entities.SourceTile, Refused: true, Text: "x"},
		{ItemID: "ad1", Source: entities.SourceTile, Text: "y"},
	}
	s.saveGame(session)

	// an id the game never resolved
	_, err := s.service.ApplyFeedback(s.ctx, &board.ApplyFeedbackInput{GameID: id, ItemID: "avq1", Delta: 1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	// a refused entry cannot be rated either
	_, err = s.service.ApplyFeedback(s.ctx, &board.ApplyFeedbackInput{GameID: id, ItemID: "av1", Delta: 1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	out, err := s.service.ApplyFeedback(s.ctx, &board.ApplyFeedbackInput{GameID: id, ItemID: "ad1", Delta: 1})
	s.Require().NoError(err)
	s.Equal("ad1", out.ItemID)
	s.Equal(1, out.Score)
}

func (s *OrchestratorTestSuite) TestResetGameKeepsRoster() {
	id := "game_reset"
	session := midGame(id)
	session.Players[0].Position = 9
	session.Players[0].Score = 7
	session.GameOver = true
	session.History = []entities.HistoryEntry{{ItemID: "ad1", Text: "x"}}
	s.saveGame(session)

	out, err := s.service.ResetGame(s.ctx, &board.ResetGameInput{GameID: id})
	s.Require().NoError(err)
	s.Len(out.Session.Players, 2)
	s.Equal(1, out.Session.Players[0].Position)
	s.Zero(out.Session.Players[0].Score)
	s.False(out.Session.GameOver)
	s.Empty(out.Session.History)
	s.True(out.Session.DiceEnabled())
}

func (s *OrchestratorTestSuite) TestEmptyActionPoolWarnsAndPassesTurn() {
	svc, err := board.NewOrchestrator(&board.Config{
		GameRepo: s.repo,
		Library: &content.Library{
			Board:      testBoard(),
			EventCards: testLibrary().EventCards,
		},
		Renderer:    s.recorder,
		Roller:      s.rolls,
		IDGenerator: idgen.NewSequential("p"),
		Clock:       clock.New(),
	})
	s.Require().NoError(err)

	id := "game_empty_pool"
	s.saveGame(midGame(id))

	out, err := svc.RollDice(s.ctx, &board.RollDiceInput{GameID: id})
	s.Require().NoError(err)
	s.True(out.Session.PoolWarning)
	s.Nil(out.Session.Pending)
	// nothing to decide: the turn moves on
	s.Equal(1, out.Session.ActiveIndex)
	s.NotEmpty(s.recorder.Warnings)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
