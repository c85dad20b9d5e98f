package tween

import "math"

// Ease maps linear progress in [0, 1] to eased progress
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

func Power1Out(t float64) float64 { return 1 - (1-t)*(1-t) }

func Power2Out(t float64) float64 { return 1 - math.Pow(1-t, 3) }

func Power2InOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// BounceOut is the classic four-segment bounce
func BounceOut(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
