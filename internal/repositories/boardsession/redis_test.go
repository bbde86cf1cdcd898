package boardsession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/fogoseda/party-api/internal/entities"
	"github.com/fogoseda/party-api/internal/pkg/clock"
	redisclient "github.com/fogoseda/party-api/internal/redis"
	"github.com/fogoseda/party-api/internal/repositories/boardsession"
	"github.com/fogoseda/party-api/internal/testutils"
)

const testGameID = "game_123"

func defaultGame() *entities.BoardSession {
	return &entities.BoardSession{
		ID: testGameID,
		Players: []entities.Player{
			{ID: "p1", Name: "Ana", Color: "red", Position: 1},
			{ID: "p2", Name: "Bruno", Color: "blue", Position: 1},
		},
	}
}

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    boardsession.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	repo, err := boardsession.NewRedisRepository(&boardsession.Config{
		Client: s.client,
		Clock:  clock.NewFixed(time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestLoadMissingReturnsDefaults() {
	out, err := s.repo.Load(s.ctx, boardsession.LoadInput{
		GameID:   testGameID,
		Defaults: defaultGame(),
	})
	s.Require().NoError(err)
	s.False(out.Restored)
	s.Len(out.Session.Players, 2)
	s.Equal(1, out.Session.Players[0].Position)
}

func (s *RedisRepositoryTestSuite) TestSaveThenLoadRoundTrip() {
	game := defaultGame()
	game.Players[0].Position = 14
	game.Players[0].Score = 9
	game.Players[1].BlockedRounds = 1
	game.Players[1].InteractionBlocked = true
	game.ActiveIndex = 1
	game.LastRoll = 6
	game.Pending = &entities.PendingAction{
		ItemID:   "a-quente-003",
		Source:   entities.SourceTile,
		Category: entities.CategoryDesafio,
		Zone:     entities.ZoneQuente,
		Text:     "Beije o pescoço do parceiro por 15 segundos",
	}
	game.Queue = []entities.PendingAction{
		{ItemID: "e6-001", Source: entities.SourceEvent6, Mandatory: true, Text: "Troque de lugar"},
	}

	_, err := s.repo.Save(s.ctx, boardsession.SaveInput{Session: game})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, boardsession.LoadInput{
		GameID:   testGameID,
		Defaults: defaultGame(),
	})
	s.Require().NoError(err)
	s.True(out.Restored)
	s.Equal(14, out.Session.Players[0].Position)
	s.Equal(9, out.Session.Players[0].Score)
	s.True(out.Session.Players[1].InteractionBlocked)
	s.Equal(1, out.Session.ActiveIndex)
	s.Require().NotNil(out.Session.Pending)
	s.Equal(entities.SourceTile, out.Session.Pending.Source)
	s.Require().Len(out.Session.Queue, 1)
	s.True(out.Session.Queue[0].Mandatory)
	s.False(out.Session.DiceEnabled())
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	game := defaultGame()
	game.GameOver = true
	_, err := s.repo.Save(s.ctx, boardsession.SaveInput{Session: game})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, boardsession.DeleteInput{GameID: testGameID})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, boardsession.LoadInput{
		GameID:   testGameID,
		Defaults: defaultGame(),
	})
	s.Require().NoError(err)
	s.False(out.Restored)
	s.False(out.Session.GameOver)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func TestLoadCorruptPayloadFallsBackToDefaults(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClientWithSetup(t, func(mr *miniredis.Miniredis) {
		mr.Set("board_session:"+testGameID, `{"players": [`)
	})
	defer cleanup()

	repo, err := boardsession.NewRedisRepository(&boardsession.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := repo.Load(context.Background(), boardsession.LoadInput{
		GameID:   testGameID,
		Defaults: defaultGame(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Restored {
		t.Error("expected corrupt payload to not count as restored")
	}
	if len(out.Session.Players) != 2 {
		t.Errorf("expected default players, got %d", len(out.Session.Players))
	}
}
