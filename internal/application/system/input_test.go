package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestAxis(t *testing.T) {
	assert.Equal(t, 0.0, axis(false, false))
	assert.Equal(t, -1.0, axis(true, false))
	assert.Equal(t, 1.0, axis(false, true))
	assert.Equal(t, 0.0, axis(true, true), "opposite keys cancel")
}

func TestDefaultKeyBindings(t *testing.T) {
	keys := DefaultKeyBindings()

	assert.Equal(t, ebiten.KeyW, keys.Forward)
	assert.Equal(t, ebiten.KeySpace, keys.Jump)
	assert.Equal(t, ebiten.KeyShiftLeft, keys.Sprint)
	assert.Equal(t, ebiten.KeyControlLeft, keys.Crouch)

	seen := map[ebiten.Key]bool{}
	for _, k := range []ebiten.Key{
		keys.Forward, keys.Back, keys.Left, keys.Right, keys.TurnLeft, keys.TurnRight,
		keys.Jump, keys.Sprint, keys.Crouch, keys.Dash, keys.Slide, keys.WallRun,
	} {
		assert.False(t, seen[k], "key %v bound twice", k)
		seen[k] = true
	}
}
