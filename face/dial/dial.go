// Package dial positions the hour/minute/second indicator dots on the
// circular path around the display center.
package dial

import "fiftyeight/face/fastmath"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// OnCircle maps a phase in [0,1) onto a circle of the given radius.
// Phase 0 is the top of the circle (12 o'clock) and phase advances
// clockwise.
func OnCircle(phase float32, radius int, center Point) Point {
	angle := phase*fastmath.TwoPi - fastmath.HalfPi
	r := float32(radius)
	return Point{
		X: center.X + int(fastmath.Rint(r*fastmath.Cos(angle))),
		Y: center.Y + int(fastmath.Rint(r*fastmath.Sin(angle))),
	}
}

// SecondPhase is the second hand's position within the minute.
func SecondPhase(second int) float32 {
	return float32(second) / 60
}

// MinutePhase is the minute hand's position within the hour.
func MinutePhase(minute int) float32 {
	return float32(minute) / 60
}

// HourPhase is the hour hand's position within the 12-hour dial. The
// minute contribution makes the hour dot creep continuously instead of
// jumping once per hour.
func HourPhase(hour, minute int) float32 {
	return (float32(hour%12) + float32(minute)/60) / 12
}
