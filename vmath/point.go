package vmath

import (
	"math"
)

// Point is a float64 2D position in viewBox units
// Screen convention: y grows downward, so positive rotation is clockwise on screen
type Point struct {
	X, Y float64
}

func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

func PAdd(a, b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y}
}

func PSub(a, b Point) Point {
	return Point{a.X - b.X, a.Y - b.Y}
}

func PScale(p Point, s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RotatePoint rotates p about origin by angleDeg degrees
// Angle 0 returns p unchanged; rotating back by -angleDeg restores p within float tolerance
func RotatePoint(p, origin Point, angleDeg float64) Point {
	if angleDeg == 0 {
		return p
	}
	sin, cos := math.Sincos(DegToRad(angleDeg))
	dx := p.X - origin.X
	dy := p.Y - origin.Y
	return Point{
		X: origin.X + dx*cos - dy*sin,
		Y: origin.Y + dx*sin + dy*cos,
	}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Clamp bounds v to [lo, hi]; caller guarantees lo <= hi
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Lerp interpolates a → b by t in [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DistanceToSegment returns the shortest distance from p to segment ab
func DistanceToSegment(p, a, b Point) float64 {
	ab := PSub(b, a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return Distance(p, a)
	}
	ap := PSub(p, a)
	t := Clamp((ap.X*ab.X+ap.Y*ab.Y)/lenSq, 0, 1)
	return Distance(p, PAdd(a, PScale(ab, t)))
}
