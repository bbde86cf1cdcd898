package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fogoseda/party-api/internal/content"
	"github.com/fogoseda/party-api/internal/entities"
)

func TestLoadEmbeddedCollections(t *testing.T) {
	lib, err := content.Load()
	require.NoError(t, err)

	assert.Empty(t, lib.Problems, "embedded content must be clean")
	assert.NotEmpty(t, lib.Items)
	assert.NotEmpty(t, lib.Actions)
	assert.NotEmpty(t, lib.Cards)
	assert.NotEmpty(t, lib.EventCards)
	require.NotNil(t, lib.Board)

	finish := 0
	for _, tile := range lib.Board.Tiles {
		if tile.Type == entities.TileFinish {
			finish++
		}
	}
	assert.Equal(t, 1, finish)
}

func TestLoadPoolsCoverEveryContext(t *testing.T) {
	lib, err := content.Load()
	require.NoError(t, err)

	// every level/type pair of the card variant has content
	for _, level := range []entities.Level{entities.LevelLeve, entities.LevelQuente, entities.LevelFogo} {
		for _, itemType := range []entities.ItemType{entities.ItemTruth, entities.ItemDare} {
			found := false
			for _, item := range lib.Items {
				if item.Level == level && item.Type == itemType {
					found = true
					break
				}
			}
			assert.True(t, found, "no items for %s/%s", level, itemType)
		}
	}

	// every board zone has an event-6 card
	for _, zone := range []entities.Zone{entities.ZoneLeve, entities.ZoneQuente, entities.ZoneFinal} {
		found := false
		for _, card := range lib.EventCards {
			if card.Zone == zone {
				found = true
				break
			}
		}
		assert.True(t, found, "no event cards for zone %s", zone)
	}
}

func TestValidateItemsDropsInvalid(t *testing.T) {
	items := []entities.Item{
		{ID: "ok", Type: entities.ItemTruth, Level: entities.LevelLeve, Mode: []entities.Mode{entities.ModeCasal}, Text: "valida"},
		{ID: "", Type: entities.ItemTruth, Level: entities.LevelLeve, Mode: []entities.Mode{entities.ModeCasal}, Text: "sem id"},
		{ID: "ok", Type: entities.ItemTruth, Level: entities.LevelLeve, Mode: []entities.Mode{entities.ModeCasal}, Text: "duplicada"},
		{ID: "bad-level", Type: entities.ItemTruth, Level: "inferno", Mode: []entities.Mode{entities.ModeCasal}, Text: "nivel"},
		{ID: "no-text", Type: entities.ItemDare, Level: entities.LevelLeve, Mode: []entities.Mode{entities.ModeCasal}},
		{ID: "no-mode", Type: entities.ItemDare, Level: entities.LevelLeve, Text: "modo"},
	}

	valid, problems := content.ValidateItems(items)
	require.Len(t, valid, 1)
	assert.Equal(t, "ok", valid[0].ID)
	assert.Len(t, problems, 5)
}

func TestValidateActionsVisualNeedsIcon(t *testing.T) {
	actions := []entities.BoardAction{
		{ID: "visual-no-icon", Category: entities.CategoryAcaoVisual, Zone: entities.ZoneLeve, Text: "pose"},
		{ID: "visual-icon", Category: entities.CategoryAcaoVisual, Zone: entities.ZoneLeve, Text: "pose", Icon: "statue"},
		{ID: "verdade", Category: entities.CategoryVerdade, Zone: entities.ZoneLeve, Text: "conta"},
	}

	valid, problems := content.ValidateActions(actions)
	assert.Len(t, valid, 2)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "visual-no-icon")
}

func TestValidateBoardRejectsBrokenTopology(t *testing.T) {
	t.Run("no finish", func(t *testing.T) {
		board := &entities.Board{Tiles: []entities.Tile{
			{ID: 1, Zone: entities.ZoneLeve, Type: entities.TileVerdade},
		}}
		assert.Error(t, content.ValidateBoard(board))
	})

	t.Run("duplicate id", func(t *testing.T) {
		board := &entities.Board{Tiles: []entities.Tile{
			{ID: 1, Zone: entities.ZoneLeve, Type: entities.TileVerdade},
			{ID: 1, Zone: entities.ZoneLeve, Type: entities.TileFinish},
		}}
		assert.Error(t, content.ValidateBoard(board))
	})

	t.Run("special without directive", func(t *testing.T) {
		board := &entities.Board{Tiles: []entities.Tile{
			{ID: 1, Zone: entities.ZoneLeve, Type: entities.TileEspecial},
			{ID: 2, Zone: entities.ZoneFinal, Type: entities.TileFinish},
		}}
		assert.Error(t, content.ValidateBoard(board))
	})

	t.Run("advance without amount", func(t *testing.T) {
		board := &entities.Board{Tiles: []entities.Tile{
			{ID: 1, Zone: entities.ZoneLeve, Type: entities.TileEspecial,
				Special: &entities.Directive{Kind: entities.DirectiveAdvance}},
			{ID: 2, Zone: entities.ZoneFinal, Type: entities.TileFinish},
		}}
		assert.Error(t, content.ValidateBoard(board))
	})

	t.Run("back with negative amount", func(t *testing.T) {
		board := &entities.Board{Tiles: []entities.Tile{
			{ID: 1, Zone: entities.ZoneLeve, Type: entities.TileEspecial,
				Special: &entities.Directive{Kind: entities.DirectiveBack, Amount: -2}},
			{ID: 2, Zone: entities.ZoneFinal, Type: entities.TileFinish},
		}}
		assert.Error(t, content.ValidateBoard(board))
	})

	t.Run("repeat needs no amount", func(t *testing.T) {
		board := &entities.Board{Tiles: []entities.Tile{
			{ID: 1, Zone: entities.ZoneLeve, Type: entities.TileEspecial,
				Special: &entities.Directive{Kind: entities.DirectiveRepeat}},
			{ID: 2, Zone: entities.ZoneFinal, Type: entities.TileFinish},
		}}
		assert.NoError(t, content.ValidateBoard(board))
	})

	t.Run("connection to unknown tile", func(t *testing.T) {
		board := &entities.Board{
			Tiles: []entities.Tile{
				{ID: 1, Zone: entities.ZoneLeve, Type: entities.TileVerdade},
				{ID: 2, Zone: entities.ZoneFinal, Type: entities.TileFinish},
			},
			Connections: []entities.Connection{{From: 1, To: 9}},
		}
		assert.Error(t, content.ValidateBoard(board))
	})

	t.Run("valid", func(t *testing.T) {
		board := &entities.Board{
			Tiles: []entities.Tile{
				{ID: 1, Zone: entities.ZoneLeve, Type: entities.TileVerdade},
				{ID: 2, Zone: entities.ZoneFinal, Type: entities.TileFinish},
			},
			Connections: []entities.Connection{{From: 1, To: 2}},
		}
		assert.NoError(t, content.ValidateBoard(board))
	})
}

func TestOverlayReplacesById(t *testing.T) {
	base := []entities.Item{
		{ID: "a", Text: "original a"},
		{ID: "b", Text: "original b"},
	}
	overrides := []entities.Item{
		{ID: "b", Text: "override b"},
		{ID: "c", Text: "new c"},
	}

	resolved := content.Overlay(base, overrides)
	require.Len(t, resolved, 3)
	assert.Equal(t, "original a", resolved[0].Text)
	assert.Equal(t, "override b", resolved[1].Text)
	assert.Equal(t, "new c", resolved[2].Text)

	// base untouched
	assert.Equal(t, "original b", base[1].Text)
}

func TestParseBundle(t *testing.T) {
	t.Run("malformed is rejected whole", func(t *testing.T) {
		_, _, err := content.ParseBundle([]byte("{not json"))
		assert.Error(t, err)
	})

	t.Run("invalid entries dropped", func(t *testing.T) {
		raw := []byte(`{"items":[{"id":"x","type":"truth","level":"leve","mode":["casal"],"text":"ok"},{"id":"","type":"truth","level":"leve","mode":["casal"],"text":"sem id"}]}`)
		bundle, problems, err := content.ParseBundle(raw)
		require.NoError(t, err)
		assert.Len(t, bundle.Items, 1)
		assert.Len(t, problems, 1)
	})
}

func TestBundleRoundTrip(t *testing.T) {
	bundle := &content.Bundle{
		Items: []entities.Item{{ID: "x", Type: entities.ItemTruth, Level: entities.LevelLeve, Mode: []entities.Mode{entities.ModeCasal}, Text: "ok"}},
	}
	data, err := content.ExportBundle(bundle)
	require.NoError(t, err)

	parsed, problems, err := content.ParseBundle(data)
	require.NoError(t, err)
	assert.Empty(t, problems)
	assert.Equal(t, bundle.Items, parsed.Items)
}
