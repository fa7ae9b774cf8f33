package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestStance_String(t *testing.T) {
	tests := []struct {
		stance   Stance
		expected string
	}{
		{StanceStanding, "Standing"},
		{StanceCrouching, "Crouching"},
		{StanceProning, "Proning"},
		{Stance(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stance.String())
		})
	}
}

func TestAnimEvent_String(t *testing.T) {
	assert.Equal(t, "JumpLiftoff", AnimJumpLiftoff.String())
	assert.Equal(t, "FlipStart", AnimFlipStart.String())
	assert.Equal(t, "FlipEnd", AnimFlipEnd.String())
	assert.Equal(t, "ProneTransitionStart", AnimProneTransitionStart.String())
	assert.Equal(t, "ProneTransitionEnd", AnimProneTransitionEnd.String())
	assert.Equal(t, "Unknown", AnimEvent(42).String())
}

func TestObstacle_Contains(t *testing.T) {
	box := Obstacle{Min: mgl64.Vec3{0, 0, 100}, Max: mgl64.Vec3{10, 10, 120}}

	assert.True(t, box.Contains(mgl64.Vec3{5, 5, 110}, 0))
	assert.False(t, box.Contains(mgl64.Vec3{5, 5, 90}, 0))
	assert.True(t, box.Contains(mgl64.Vec3{5, 5, 90}, 10), "radius grows the box")
	assert.False(t, box.Contains(mgl64.Vec3{30, 5, 110}, 10))
}

func TestArena_InBounds(t *testing.T) {
	arena := &Arena{Width: 100, Depth: 50}

	assert.True(t, arena.InBounds(mgl64.Vec3{50, 25, 0}))
	assert.False(t, arena.InBounds(mgl64.Vec3{-1, 25, 0}))
	assert.False(t, arena.InBounds(mgl64.Vec3{50, 51, 0}))
}
