package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fogoseda/party-api/internal/pkg/textnorm"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain ascii", "Verdade", "verdade"},
		{"cedilla and tilde", "Ação", "acao"},
		{"acute accents", "histórico está", "historico esta"},
		{"already normalized", "desafio", "desafio"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, textnorm.Normalize(tc.input))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, textnorm.Contains("Faça uma massagem", "massagem"))
	assert.True(t, textnorm.Contains("Faça uma massagem", "FAÇA"))
	assert.True(t, textnorm.Contains("Faça uma massagem", "faca"))
	assert.True(t, textnorm.Contains("qualquer texto", ""))
	assert.False(t, textnorm.Contains("Faça uma massagem", "beijo"))
}

func TestContainsAny(t *testing.T) {
	blocked := []string{"beijo", "dança"}
	assert.True(t, textnorm.ContainsAny("Uma DANCA sensual", blocked))
	assert.False(t, textnorm.ContainsAny("Uma massagem", blocked))
	assert.False(t, textnorm.ContainsAny("Uma massagem", nil))
	assert.False(t, textnorm.ContainsAny("Uma massagem", []string{""}))
}

func TestMatchRanges(t *testing.T) {
	t.Run("accented text plain term", func(t *testing.T) {
		ranges := textnorm.MatchRanges("Ação rápida", "acao")
		if assert.Len(t, ranges, 1) {
			assert.Equal(t, 0, ranges[0].Start)
			assert.Equal(t, 3, ranges[0].End)
		}
	})

	t.Run("multiple hits", func(t *testing.T) {
		ranges := textnorm.MatchRanges("toca, toca de novo", "toca")
		assert.Len(t, ranges, 2)
	})

	t.Run("no hit", func(t *testing.T) {
		assert.Empty(t, textnorm.MatchRanges("nada aqui", "xyz"))
	})

	t.Run("empty term", func(t *testing.T) {
		assert.Empty(t, textnorm.MatchRanges("texto", " "))
	})
}

func TestMark(t *testing.T) {
	marked := textnorm.Mark("Ação rápida", "acao", "[", "]")
	assert.Equal(t, "[Ação] rápida", marked)

	assert.Equal(t, "sem termo", textnorm.Mark("sem termo", "zzz", "[", "]"))
}
