package tonearm

import (
	"errors"
	"time"

	"github.com/lixenwraith/turntable/constants"
	"github.com/lixenwraith/turntable/groove"
	"github.com/lixenwraith/turntable/vmath"
)

var (
	ErrNoGrooves          = errors.New("tonearm: calibration table has no content grooves")
	ErrNoAnchor           = errors.New("tonearm: no viewport anchor to draw against")
	ErrAlreadyInitialized = errors.New("tonearm: already initialized")
)

// Config carries the geometry and timing the tonearm runs with
type Config struct {
	Arm             groove.Arm
	ParkedAngle     float64
	PixelsPerDegree float64

	ParkDuration         time.Duration
	AutoMoveDuration     time.Duration
	KeyboardMoveDuration time.Duration

	SettleImpulse   float64
	SettleFrequency float64
	SettleDamping   float64
	SettleMax       time.Duration
	FPS             int
}

// DefaultConfig returns the stock turntable configuration
func DefaultConfig() Config {
	return Config{
		Arm:                  groove.DefaultArm(),
		ParkedAngle:          constants.ParkedAngle,
		PixelsPerDegree:      constants.PixelsPerDegree,
		ParkDuration:         constants.ParkDuration,
		AutoMoveDuration:     constants.AutoMoveDuration,
		KeyboardMoveDuration: constants.KeyboardMoveDuration,
		SettleImpulse:        constants.SettleImpulse,
		SettleFrequency:      constants.SettleFrequency,
		SettleDamping:        constants.SettleDamping,
		SettleMax:            constants.SettleMaxDuration,
		FPS:                  constants.DefaultFPS,
	}
}

// Viewport maps viewBox points to percent of the host zone
type Viewport interface {
	Percent(p vmath.Point) (x, y float64)
}

// ViewBoxViewport is a zone exactly covered by the viewBox
type ViewBoxViewport struct {
	Width, Height float64
}

// DefaultViewport covers the stock 1000x700 viewBox
func DefaultViewport() ViewBoxViewport {
	return ViewBoxViewport{Width: constants.ViewBoxWidth, Height: constants.ViewBoxHeight}
}

func (v ViewBoxViewport) Percent(p vmath.Point) (x, y float64) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0
	}
	return p.X / v.Width * 100, p.Y / v.Height * 100
}
