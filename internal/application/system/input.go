package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// InputState holds the held state of the four directions for one frame
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// InputSource produces one InputState per frame. ok is false once the source
// has nothing more to give (a finished replay).
type InputSource interface {
	Poll() (input InputState, ok bool)
}

// KeyboardInput reads the arrow keys, with WASD as an alternative
type KeyboardInput struct{}

// Poll reads the current keyboard state
func (KeyboardInput) Poll() (InputState, bool) {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}, true
}

// InputSystem applies player input to the avatar
type InputSystem struct {
	speed   float64
	screenW float64
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.GameConfig) *InputSystem {
	return &InputSystem{
		speed:   cfg.Entities.Avatar.Speed,
		screenW: float64(cfg.Physics.Display.ScreenWidth),
	}
}

// UpdateAvatar refreshes the avatar's bounds and applies horizontal input.
// Holding up arms a bounce; Down is not used by the avatar.
func (s *InputSystem) UpdateAvatar(avatar *entity.Avatar, input InputState) {
	avatar.UpdateDerived()
	avatar.ApplyHorizontalInput(input.Left, input.Right, input.Up, s.speed, s.screenW)
}
