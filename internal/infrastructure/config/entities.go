package config

import "image/color"

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Avatar   AvatarConfig   `json:"avatar"`
	Platform PlatformConfig `json:"platform"`
	Spring   SpringConfig   `json:"spring"`
}

type AvatarConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"` // Horizontal pixels per frame while a direction is held
	Color  RGB     `json:"color"`
}

type PlatformConfig struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Roundness float64 `json:"roundness"`
	Speed     float64 `json:"speed"` // Initial horizontal speed of moving platforms
	Color     RGB     `json:"color"`
	CloudTint RGB     `json:"cloudTint"`
}

type SpringConfig struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	PoppedHeight float64 `json:"poppedHeight"`
	Color        RGB     `json:"color"`
}

// RGB is an opaque color
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Color returns the opaque color.RGBA for c
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
