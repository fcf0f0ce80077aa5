package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hopper/internal/application/system"
)

func TestFrameInput_OmitsReleasedKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 10, L: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":10,"l":true}`, string(data))
}

func TestReplayer_Poll(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, U: true},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.Poll()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Left: true}, input)

	// Frame 1
	input, ok = replayer.Poll()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Right: true, Up: true}, input)

	// Frame 2
	input, ok = replayer.Poll()
	require.True(t, ok)
	assert.Equal(t, system.InputState{}, input)

	// End of frames
	_, ok = replayer.Poll()
	assert.False(t, ok)
}

func TestReplayer_IsInputSource(t *testing.T) {
	var _ system.InputSource = NewReplayer(ReplayData{})
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, system.InputState{}))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.Poll()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.Poll()
	replayer.Poll()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFramesAndSeed(t *testing.T) {
	replayer := NewReplayer(ReplayData{Seed: 99999, Frames: make([]FrameInput, 10)})

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, int64(99999), replayer.Seed())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, system.InputState{Right: true}))

	// Advance to end
	replayer.Poll()
	replayer.Poll()
	replayer.Poll()
	_, ok := replayer.Poll()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.Poll()
	assert.True(t, ok)
	assert.True(t, input.Right)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, system.InputState{Left: true, Down: true})

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Len(t, data.Frames, 60)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.True(t, frame.L)
		assert.True(t, frame.D)
		assert.False(t, frame.R)
		assert.False(t, frame.U)
	}
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		raw, err := json.Marshal(CreateTestReplayData(4, system.InputState{Up: true}))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		data, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, int64(12345), data.Seed)
		assert.Len(t, data.Frames, 4)
		assert.True(t, data.Frames[3].U)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "failed to decode replay")
	})

	t.Run("unknown version", func(t *testing.T) {
		path := filepath.Join(dir, "v2.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"2.0","seed":1,"frames":[]}`), 0o644))

		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "unsupported replay version")
	})
}
