package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-battle/internal/config"
	"math-battle/internal/defs"
)

func TestBattleRenderer_Renderable(t *testing.T) {
	lib, err := defs.LoadDefaults()
	require.NoError(t, err)
	r := NewBattleRenderer(lib)

	ogre := r.Renderable("ogre")
	assert.InDelta(t, config.EnemyRadius*1.4, ogre.Radius, 1e-4)
	assert.Equal(t, uint8(180), ogre.Color.R)

	unknown := r.Renderable("dragon")
	assert.Equal(t, config.EnemyColor, unknown.Color)
	assert.Len(t, r.renderables, 2)
}
