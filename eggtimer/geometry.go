package eggtimer

import (
	"math"

	"github.com/yllada/egg-timer/common"
)

// Point is a position in screen coordinates, y growing downward.
type Point struct {
	X float64
	Y float64
}

// Angle returns the clock angle of touch around center in degrees,
// clockwise from 12 o'clock, in [0, 360).
//
// A touch level with the center saturates to 90 or 270 degrees; a touch on
// the center itself yields 0.
func Angle(touch, center Point) float64 {
	dx := touch.X - center.X
	dy := touch.Y - center.Y

	if dy == 0 {
		switch {
		case dx > 0:
			return 90
		case dx < 0:
			return 270
		default:
			return 0
		}
	}

	angle := math.Atan(math.Abs(dx)/math.Abs(dy)) * 180 / math.Pi

	if dx > 0 {
		if dy > 0 {
			angle = 180 - angle
		}
	} else {
		if dy > 0 {
			angle = 180 + angle
		} else {
			angle = 360 - angle
		}
	}

	if angle >= 360 {
		angle -= 360
	}
	return angle
}

// SecondsForAngle converts a dial angle to whole seconds of countdown.
func SecondsForAngle(angle float64) int {
	seconds := math.Round(angle / 360 * common.DialCapacity)
	return common.ClampSeconds(int(seconds))
}

// AngleForSeconds converts a countdown duration to its dial angle.
func AngleForSeconds(seconds int) float64 {
	return float64(common.ClampSeconds(seconds)) / common.DialCapacity * 360
}

// PointOnDial returns the point at radius from center in the direction of
// angle. Renderers use it to place ticks, labels and the pointer.
func PointOnDial(center Point, radius, angle float64) Point {
	rad := angle * math.Pi / 180
	return Point{
		X: center.X + radius*math.Sin(rad),
		Y: center.Y - radius*math.Cos(rad),
	}
}
