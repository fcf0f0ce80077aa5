package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hopper/internal/application/replay"
	"github.com/younwookim/hopper/internal/application/scene"
	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/application/system"
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// scriptedSource plays a fixed list of inputs, then runs dry
type scriptedSource struct {
	frames []system.InputState
	polls  int
}

func (s *scriptedSource) Poll() (system.InputState, bool) {
	if s.polls >= len(s.frames) {
		return system.InputState{}, false
	}
	in := s.frames[s.polls]
	s.polls++
	return in, true
}

func idleFrames(n int) []system.InputState {
	return make([]system.InputState, n)
}

func createTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	if opts.Input == nil {
		opts.Input = &scriptedSource{frames: idleFrames(1000)}
	}
	p, err := New(config.Default(), opts)
	require.NoError(t, err)
	p.pauseKey = func() bool { return false }
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p, err := New(config.Default(), Options{Seed: 7})
	require.NoError(t, err)

	assert.NotNil(t, p.Session())
	assert.Equal(t, int64(7), p.Seed())
	assert.Equal(t, state.StateRunning, p.State())
	assert.IsType(t, system.KeyboardInput{}, p.input)
	assert.Nil(t, p.recorder)
	assert.False(t, p.Halted())
}

func TestNewPlaying_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Field.Spawn.PlatformCount = 2

	p, err := New(cfg, Options{})

	assert.Nil(t, p)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestPlaying_Update_AdvancesSession(t *testing.T) {
	src := &scriptedSource{frames: idleFrames(10)}
	p := createTestPlaying(t, Options{Input: src})

	for i := 0; i < 5; i++ {
		next, err := p.Update(1.0 / 60.0)
		assert.NoError(t, err)
		assert.Nil(t, next, "Should return nil when continuing to play")
	}

	assert.Equal(t, 5, p.Session().Frame())
	assert.Equal(t, 5, src.polls)
}

func TestPlaying_Pause(t *testing.T) {
	src := &scriptedSource{frames: idleFrames(10)}
	p := createTestPlaying(t, Options{Input: src})

	press := false
	p.pauseKey = func() bool { return press }

	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, 1, p.Session().Frame())

	press = true
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, state.StatePaused, p.State())

	press = false
	_, _ = p.Update(1.0 / 60.0)
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, 1, p.Session().Frame(), "paused scene does not simulate")
	assert.Equal(t, 1, src.polls, "paused scene does not consume input")
	assert.False(t, p.Halted())

	press = true
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, state.StateRunning, p.State())
	assert.Equal(t, 2, p.Session().Frame())
}

func TestPlaying_HaltsWhenInputRunsDry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	p := createTestPlaying(t, Options{Seed: 3, Input: &scriptedSource{frames: idleFrames(3)}, RecordPath: path})

	for i := 0; i < 5; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}

	assert.True(t, p.Halted())
	assert.Equal(t, 3, p.Session().Frame())
	assert.False(t, p.recorder.IsRecording())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), data.Seed)
	assert.Len(t, data.Frames, 3)
}

func TestPlaying_FreezeHaltsAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frozen.json")
	p := createTestPlaying(t, Options{Seed: 1, RecordPath: path})

	// Well below the freeze line
	p.Session().Avatar().Y = 900

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)

	assert.Equal(t, state.StateFrozen, p.State())
	assert.True(t, p.Halted())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 1)

	// Halted scene ignores further updates
	_, err = p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Session().Frame())
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_replay.json")
	p := createTestPlaying(t, Options{RecordPath: path})

	assert.NotNil(t, p.recorder)

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)

	assert.Equal(t, 1, p.recorder.FrameCount())
}

func TestPlaying_OnExitWithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_playing_onexit.json")
	p := createTestPlaying(t, Options{RecordPath: path})

	_, _ = p.Update(1.0 / 60.0)
	_, _ = p.Update(1.0 / 60.0)

	assert.NotPanics(t, func() {
		p.OnExit()
	})

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 2)
}

func TestPlaying_OnEnter(t *testing.T) {
	p := createTestPlaying(t, Options{})

	assert.NotPanics(t, func() {
		p.OnEnter()
	})
}

func TestPlaying_Layout(t *testing.T) {
	p := createTestPlaying(t, Options{})

	w, h := p.Layout(1, 1)
	assert.Equal(t, 850, w)
	assert.Equal(t, 800, h)
}

func TestPlaying_HUDText(t *testing.T) {
	p := createTestPlaying(t, Options{})

	assert.Equal(t, "Score: 0 Cloud: 1.70 Move: 1.80", p.hudText())
}

func TestPlaying_RecycleForgetsSpringAnimation(t *testing.T) {
	p := createTestPlaying(t, Options{})

	pl := entity.NewPlatform(500, 10, 10, 95, 14)
	pl.AttachSpring(13, 8, 14)
	p.springs.Step([]*entity.Platform{pl})
	require.Equal(t, 1, p.springs.Len())

	p.handleEvents([]system.Event{system.RecycledEvent{PlatformID: 500, Score: 1}})

	assert.Equal(t, 0, p.springs.Len())
}

func TestSpringAnimator(t *testing.T) {
	a := newSpringAnimator(60)
	pl := entity.NewPlatform(1, 100, 100, 95, 14)
	pl.AttachSpring(13, 8, 14)

	assert.Equal(t, 8.0, a.Height(pl), "unseen spring draws at its real height")

	a.Step([]*entity.Platform{pl})
	assert.Equal(t, 8.0, a.Height(pl))

	pl.Spring.Pop()
	a.Step([]*entity.Platform{pl})
	first := a.Height(pl)
	assert.Greater(t, first, 8.0)
	assert.Less(t, first, 14.0, "pop is eased, not instant")

	for i := 0; i < 600; i++ {
		a.Step([]*entity.Platform{pl})
	}
	assert.InDelta(t, 14.0, a.Height(pl), 0.01)

	a.Forget(pl.ID)
	assert.Equal(t, 0, a.Len())
}

func TestSpringAnimator_SkipsPlatformsWithoutSpring(t *testing.T) {
	a := newSpringAnimator(60)
	a.Step([]*entity.Platform{entity.NewPlatform(1, 0, 0, 95, 14)})
	assert.Equal(t, 0, a.Len())
}

func TestRoundedRectParts(t *testing.T) {
	t.Run("square corners", func(t *testing.T) {
		rects, circles := roundedRectParts(0, 0, 95, 14, 0, 0)
		assert.Equal(t, []rect{{0, 0, 95, 14}}, rects)
		assert.Empty(t, circles)
	})

	t.Run("platform", func(t *testing.T) {
		rects, circles := roundedRectParts(10, 20, 95, 14, 6, 6)
		assert.Equal(t, []rect{
			{10, 26, 95, 2},
			{16, 20, 83, 6},
			{16, 28, 83, 6},
		}, rects)
		assert.Equal(t, []circle{
			{16, 26, 6}, {99, 26, 6},
			{16, 28, 6}, {99, 28, 6},
		}, circles)
	})

	t.Run("avatar top only", func(t *testing.T) {
		rects, circles := roundedRectParts(0, 0, 35, 50, 15, 0)
		assert.Equal(t, []rect{{0, 15, 35, 35}, {15, 0, 5, 15}}, rects)
		assert.Equal(t, []circle{{15, 15, 15}, {20, 15, 15}}, circles)
	})

	t.Run("radius clamped", func(t *testing.T) {
		_, circles := roundedRectParts(0, 0, 20, 10, 30, 30)
		for _, c := range circles {
			assert.Equal(t, float32(5), c.R)
		}
	})
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(12345)

	r.RecordFrame(system.InputState{Left: true})
	r.RecordFrame(system.InputState{Up: true, Down: true})

	data := r.Data()
	assert.Equal(t, replay.FormatVersion, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, []replay.FrameInput{
		{F: 0, L: true},
		{F: 1, U: true, D: true},
	}, data.Frames)
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder(12345)

	assert.True(t, r.IsRecording())

	r.Stop()

	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder(12345)
	r.Stop()

	r.RecordFrame(system.InputState{Left: true})

	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1)
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}
