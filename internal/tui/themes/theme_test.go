package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, CatppuccinMocha.Primary, GetTheme("catppuccin-mocha").Primary)
	assert.Equal(t, Default.Primary, GetTheme("monee").Primary)
	assert.Equal(t, Default.Primary, GetTheme("unknown").Primary)
}

func TestGetCategoryIcon(t *testing.T) {
	assert.Equal(t, "🥬", GetCategoryIcon("Food"))
	assert.Equal(t, "📦", GetCategoryIcon("Mystery"))
}
