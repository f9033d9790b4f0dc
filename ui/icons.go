package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size        int
	FaceColor   color.RGBA
	BorderColor color.RGBA
	SectorColor color.RGBA
	HandColor   color.RGBA
}

// DefaultIconConfig returns the tray icon colors.
func DefaultIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FaceColor:   color.RGBA{238, 238, 236, 255}, // Off white
		BorderColor: color.RGBA{117, 117, 117, 255}, // Dark gray
		SectorColor: color.RGBA{245, 158, 41, 255},  // Orange
		HandColor:   color.RGBA{224, 27, 36, 255},   // Red
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
	cache  map[int][]byte
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config, cache: make(map[int][]byte)}
}

// ForAngle returns the icon for a dial angle in degrees. Icons are
// quantized to whole ticks and cached, so a running countdown only
// re-encodes once per minute.
func (g *IconGenerator) ForAngle(angle float64) []byte {
	step := int(math.Ceil(angle * common.TotalTicks / 360))
	if icon, ok := g.cache[step]; ok {
		return icon
	}
	icon := g.Generate(float64(step) * 360 / common.TotalTicks)
	g.cache[step] = icon
	return icon
}

// Generate creates a PNG dial icon with the sector up to angle filled.
func (g *IconGenerator) Generate(angle float64) []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := eggtimer.Point{X: float64(size) / 2, Y: float64(size) / 2}
	radius := float64(size)/2 - 1

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := eggtimer.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			dist := math.Hypot(p.X-center.X, p.Y-center.Y)

			switch {
			case dist > radius:
				continue
			case dist > radius-1.5:
				img.Set(x, y, g.config.BorderColor)
			case angle > 0 && eggtimer.Angle(p, center) <= angle:
				img.Set(x, y, g.config.SectorColor)
			default:
				img.Set(x, y, g.config.FaceColor)
			}
		}
	}

	g.drawHand(img, center, radius-3, angle)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		common.LogWarn("Failed to encode tray icon: %v", err)
	}
	return buf.Bytes()
}

// drawHand draws the pointer from the center towards angle.
func (g *IconGenerator) drawHand(img *image.RGBA, center eggtimer.Point, length, angle float64) {
	for r := 0.0; r <= length; r += 0.5 {
		p := eggtimer.PointOnDial(center, r, angle)
		img.Set(int(p.X), int(p.Y), g.config.HandColor)
	}
}
