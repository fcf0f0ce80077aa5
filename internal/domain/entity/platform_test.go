package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScreenW = 850.0

func createTestPlatform(x, y float64) *Platform {
	return NewPlatform(1, x, y, 95, 14)
}

func TestNewPlatform(t *testing.T) {
	p := createTestPlatform(10, 20)

	require.NotNil(t, p)
	assert.Equal(t, EntityID(1), p.ID)
	assert.Equal(t, CapNone, p.Caps)
	assert.False(t, p.Consumed)
	assert.False(t, p.HasSpring())
	assert.Equal(t, uint8(255), p.Tint.A)
}

func TestPlatform_AttachSpring(t *testing.T) {
	p := createTestPlatform(100, 300)
	p.AttachSpring(13, 8, 14)

	assert.True(t, p.HasSpring())
	assert.Equal(t, p.CenterX(), p.Spring.CenterX(), "spring centered on platform")
	assert.Equal(t, 292.0, p.Spring.Y, "spring sits on top edge")
	assert.Equal(t, 141.0, p.Spring.X)
	assert.False(t, p.Spring.Popped)
}

func TestPlatform_Move(t *testing.T) {
	t.Run("even parity moves right", func(t *testing.T) {
		p := createTestPlatform(100, 0)
		p.Move(3, testScreenW)
		assert.Equal(t, 103.0, p.X)
		assert.Equal(t, 0, p.Parity)
	})

	t.Run("odd parity moves left", func(t *testing.T) {
		p := createTestPlatform(100, 0)
		p.Parity = 1
		p.Move(3, testScreenW)
		assert.Equal(t, 97.0, p.X)
	})

	t.Run("flips past right edge", func(t *testing.T) {
		p := createTestPlatform(testScreenW-94, 0)
		p.Move(3, testScreenW)
		assert.Equal(t, 1, p.Parity)
		assert.Equal(t, testScreenW-97, p.X)
	})

	t.Run("flips past left edge", func(t *testing.T) {
		p := createTestPlatform(-1, 0)
		p.Parity = 1
		p.Move(3, testScreenW)
		assert.Equal(t, 2, p.Parity)
		assert.Equal(t, 2.0, p.X)
	})

	t.Run("bounces between edges", func(t *testing.T) {
		p := createTestPlatform(0, 0)
		for i := 0; i < 2000; i++ {
			p.Move(3, testScreenW)
			assert.GreaterOrEqual(t, p.X, -3.0)
			assert.LessOrEqual(t, p.Right(), testScreenW+3)
		}
	})
}

func TestPlatform_ManageCloud(t *testing.T) {
	t.Run("untouched cloud stays", func(t *testing.T) {
		p := createTestPlatform(100, 0)
		p.Caps = CapCloud | CapMover
		p.ManageCloud(950)
		assert.Equal(t, 100.0, p.X)
		assert.True(t, p.Caps.Has(CapMover))
	})

	t.Run("consumed cloud is parked", func(t *testing.T) {
		p := createTestPlatform(100, 0)
		p.Caps = CapCloud | CapMover
		p.AttachSpring(13, 8, 14)
		p.Consumed = true

		p.ManageCloud(950)

		assert.Equal(t, 950.0, p.X)
		assert.False(t, p.Caps.Has(CapMover))
		assert.False(t, p.HasSpring())
		assert.True(t, p.IsCloud())
	})
}

func TestPlatform_Update_SpringFollowsPlatform(t *testing.T) {
	p := createTestPlatform(400, 300)
	p.Caps = CapMover
	p.AttachSpring(13, 8, 14)

	for i := 0; i < 500; i++ {
		p.Y += 1.5
		p.Update(3, testScreenW, 950)
		require.Equal(t, p.CenterX(), p.Spring.CenterX(), "frame %d", i)
		require.Equal(t, p.Y-p.Spring.Height, p.Spring.Y, "frame %d", i)
	}
}

func TestPlatform_Update_PoppedSpringSitsHigher(t *testing.T) {
	p := createTestPlatform(400, 300)
	p.AttachSpring(13, 8, 14)

	p.Spring.Pop()
	p.Update(3, testScreenW, 950)

	assert.True(t, p.Spring.Popped)
	assert.Equal(t, 14.0, p.Spring.Height)
	assert.Equal(t, 286.0, p.Spring.Y)
}

func TestPlatform_Update_OnlyPresentCapabilities(t *testing.T) {
	p := createTestPlatform(400, 300)
	p.Consumed = true

	p.Update(3, testScreenW, 950)

	assert.Equal(t, 400.0, p.X, "plain platform neither moves nor parks")
}
