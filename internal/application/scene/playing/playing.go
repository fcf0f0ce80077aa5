// Package playing provides the main gameplay scene.
package playing

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/hopper/internal/application/scene"
	"github.com/younwookim/hopper/internal/application/session"
	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/application/system"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// Options configures a Playing scene
type Options struct {
	// Seed drives all field generation. The same seed and inputs replay the
	// same session.
	Seed int64
	// Input is polled once per frame. Defaults to the keyboard.
	Input system.InputSource
	// RecordPath enables input recording when not empty
	RecordPath string
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	session *session.Session
	state   state.GameState
	input   system.InputSource
	springs *springAnimator
	screenW int
	screenH int

	// inputDone is set once a finite input source runs dry
	inputDone bool

	pauseKey func() bool

	seed int64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	sess, err := session.New(cfg, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return nil, err
	}

	input := opts.Input
	if input == nil {
		input = system.KeyboardInput{}
	}

	p := &Playing{
		config:  cfg,
		session: sess,
		state:   state.StateRunning,
		input:   input,
		springs: newSpringAnimator(cfg.Physics.Display.Framerate),
		screenW: cfg.Physics.Display.ScreenWidth,
		screenH: cfg.Physics.Display.ScreenHeight,
		pauseKey: func() bool {
			return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
		},
		seed:           opts.Seed,
		recordFilename: opts.RecordPath,
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.Seed)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, opts.Seed)
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.Halted() {
		return nil, nil
	}

	if p.pauseKey() {
		p.togglePause()
	}
	if p.state == state.StatePaused {
		return nil, nil
	}

	input, ok := p.input.Poll()
	if !ok {
		p.inputDone = true
		log.Printf("Input finished at frame %d (score: %d)", p.session.Frame(), p.session.Score())
		p.saveRecording()
		return nil, nil
	}

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.handleEvents(p.session.Update(input))
	p.springs.Step(p.session.Field().Platforms())

	return nil, nil // nil = stay on this scene
}

func (p *Playing) togglePause() {
	switch p.state {
	case state.StateRunning:
		p.state = state.StatePaused
	case state.StatePaused:
		p.state = state.StateRunning
	}
}

func (p *Playing) handleEvents(events []system.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case system.RecycledEvent:
			p.springs.Forget(ev.PlatformID)
		case system.RampEvent:
			log.Printf("Difficulty up at %d: %d platforms, speed %.1f, cloud odds %.2f, move odds %.2f",
				ev.Score, ev.TargetCount, ev.Speed, ev.CloudOdds, ev.MoveOdds)
		case system.FrozenEvent:
			log.Printf("Frozen at frame %d (score: %d)", ev.Frame, ev.Score)
			// Auto-save recording on freeze
			p.saveRecording()
		}
	}
}

// saveRecording saves the current recording to file and stops it
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Halted reports whether the session froze or the input source ran out
func (p *Playing) Halted() bool {
	return p.session.State().Halted() || p.inputDone
}

// State returns the scene state: running, paused or frozen
func (p *Playing) State() state.GameState {
	if p.session.State() == state.StateFrozen {
		return state.StateFrozen
	}
	return p.state
}

// Session exposes the running session
func (p *Playing) Session() *session.Session {
	return p.session
}

// Seed returns the seed the session was generated from
func (p *Playing) Seed() int64 {
	return p.seed
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
