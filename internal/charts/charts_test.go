package charts

import (
	"bytes"
	"testing"

	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/summary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderSpending(t *testing.T) {
	breakdown := []summary.CategoryAmount{
		{Category: "Food", Amount: decimal.RequireFromString("85.50")},
		{Category: "Transport", Amount: decimal.RequireFromString("42.50")},
	}

	img, err := RenderSpending(breakdown, "February 2024")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestRenderSpending_SingleCategory(t *testing.T) {
	img, err := RenderSpending([]summary.CategoryAmount{
		{Category: "Food", Amount: decimal.NewFromInt(10)},
	}, "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestRenderSpending_NoData(t *testing.T) {
	_, err := RenderSpending(nil, "empty")
	require.ErrorIs(t, err, ErrNoData)

	_, err = RenderSpending([]summary.CategoryAmount{{Category: "Food", Amount: decimal.Zero}}, "zero")
	require.ErrorIs(t, err, ErrNoData)
}

func TestRenderChallenges(t *testing.T) {
	img, err := RenderChallenges(model.SeedUser().Challenges, "Challenges")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))

	img, err = RenderChallenges(model.SeedUser().Challenges[:1], "One")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestRenderChallenges_NoData(t *testing.T) {
	_, err := RenderChallenges(nil, "")
	require.ErrorIs(t, err, ErrNoData)

	_, err = RenderChallenges([]model.Challenge{{Title: "New", AmountNeeded: 100}}, "")
	require.ErrorIs(t, err, ErrNoData)
}
