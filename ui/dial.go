package ui

import (
	"fmt"
	"math"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
)

type rgb struct{ r, g, b float64 }

// dialPalette holds the colors of one theme variant.
type dialPalette struct {
	face, rim, sector, tick, label, hand rgb
}

var (
	lightDial = dialPalette{
		face:   rgb{0.98, 0.98, 0.97},
		rim:    rgb{0.80, 0.80, 0.78},
		sector: rgb{0.96, 0.62, 0.16},
		tick:   rgb{0.35, 0.35, 0.35},
		label:  rgb{0.20, 0.20, 0.20},
		hand:   rgb{0.88, 0.11, 0.14},
	}
	darkDial = dialPalette{
		face:   rgb{0.18, 0.18, 0.19},
		rim:    rgb{0.32, 0.32, 0.34},
		sector: rgb{0.90, 0.55, 0.10},
		tick:   rgb{0.80, 0.80, 0.80},
		label:  rgb{0.92, 0.92, 0.92},
		hand:   rgb{0.96, 0.33, 0.33},
	}
)

// Dial draws the egg timer face and turns drag gestures into controller
// calls.
type Dial struct {
	area     *gtk.DrawingArea
	ctrl     *eggtimer.Controller
	angle    float64
	dragging bool
	startX   float64
	startY   float64
}

// NewDial creates the dial widget bound to ctrl.
func NewDial(ctrl *eggtimer.Controller) *Dial {
	d := &Dial{
		area: gtk.NewDrawingArea(),
		ctrl: ctrl,
	}

	d.area.SetContentWidth(common.DialSize)
	d.area.SetContentHeight(common.DialSize)
	d.area.SetHAlign(gtk.AlignCenter)
	d.area.AddCSSClass("dial")
	d.area.SetDrawFunc(d.draw)

	// The window cannot be resized, so the first allocation is final.
	d.area.ConnectResize(func(width, height int) {
		d.ctrl.MeasureCenter(eggtimer.Point{X: float64(width) / 2, Y: float64(height) / 2})
	})

	drag := gtk.NewGestureDrag()
	drag.ConnectDragBegin(d.onDragBegin)
	drag.ConnectDragUpdate(d.onDragUpdate)
	drag.ConnectDragEnd(d.onDragEnd)
	d.area.AddController(drag)

	return d
}

// Widget returns the drawing area.
func (d *Dial) Widget() *gtk.DrawingArea {
	return d.area
}

// SetAngle redraws the dial at angle degrees.
func (d *Dial) SetAngle(angle float64) {
	if angle == d.angle {
		return
	}
	d.angle = angle
	d.area.QueueDraw()
}

func (d *Dial) onDragBegin(startX, startY float64) {
	// Accepted or refused once per gesture.
	if !d.ctrl.CanDrag() {
		d.dragging = false
		return
	}
	d.dragging = true
	d.startX, d.startY = startX, startY
	d.ctrl.Drag(eggtimer.Point{X: startX, Y: startY})
}

func (d *Dial) onDragUpdate(offsetX, offsetY float64) {
	if !d.dragging {
		return
	}
	d.ctrl.Drag(eggtimer.Point{X: d.startX + offsetX, Y: d.startY + offsetY})
}

func (d *Dial) onDragEnd(offsetX, offsetY float64) {
	if !d.dragging {
		return
	}
	d.dragging = false
	d.ctrl.Release(eggtimer.Point{X: d.startX + offsetX, Y: d.startY + offsetY})
}

func (d *Dial) palette() dialPalette {
	if manager := adw.StyleManagerGetDefault(); manager != nil && manager.Dark() {
		return darkDial
	}
	return lightDial
}

func setColor(cr *cairo.Context, c rgb) {
	cr.SetSourceRGB(c.r, c.g, c.b)
}

// dialAngle converts a dial angle, clockwise from 12 o'clock in degrees,
// to cairo radians.
func dialAngle(degrees float64) float64 {
	return (degrees - 90) * math.Pi / 180
}

func (d *Dial) draw(_ *gtk.DrawingArea, cr *cairo.Context, width, height int) {
	p := d.palette()
	center := eggtimer.Point{X: float64(width) / 2, Y: float64(height) / 2}
	radius := math.Min(float64(width), float64(height))/2 - common.DialMargin

	// Face
	setColor(cr, p.face)
	cr.Arc(center.X, center.Y, radius, 0, 2*math.Pi)
	cr.FillPreserve()
	setColor(cr, p.rim)
	cr.SetLineWidth(2)
	cr.Stroke()

	// Remaining time
	if d.angle > 0 {
		setColor(cr, p.sector)
		cr.MoveTo(center.X, center.Y)
		cr.Arc(center.X, center.Y, radius-1, dialAngle(0), dialAngle(d.angle))
		cr.ClosePath()
		cr.Fill()
	}

	// Ticks
	setColor(cr, p.tick)
	for i := 0; i < common.TotalTicks; i++ {
		angle := float64(i) * 360 / common.TotalTicks
		length, lineWidth := 8.0, 1.5
		if i%common.TicksPerLabel == 0 {
			length, lineWidth = 16.0, 3.0
		}
		outer := eggtimer.PointOnDial(center, radius-4, angle)
		inner := eggtimer.PointOnDial(center, radius-4-length, angle)
		cr.SetLineWidth(lineWidth)
		cr.MoveTo(inner.X, inner.Y)
		cr.LineTo(outer.X, outer.Y)
		cr.Stroke()
	}

	// Labels
	setColor(cr, p.label)
	cr.SelectFontFace("Sans", cairo.FontSlantNormal, cairo.FontWeightBold)
	cr.SetFontSize(16)
	labels := common.TotalTicks / common.TicksPerLabel
	for i := 0; i < labels; i++ {
		text := fmt.Sprintf("%02d", i*common.TicksPerLabel)
		pos := eggtimer.PointOnDial(center, radius-40, float64(i)*360/float64(labels))
		ext := cr.TextExtents(text)
		cr.MoveTo(pos.X-ext.Width/2-ext.XBearing, pos.Y-ext.Height/2-ext.YBearing)
		cr.ShowText(text)
	}

	// Hand
	tip := eggtimer.PointOnDial(center, radius-24, d.angle)
	setColor(cr, p.hand)
	cr.SetLineWidth(4)
	cr.MoveTo(center.X, center.Y)
	cr.LineTo(tip.X, tip.Y)
	cr.Stroke()
	cr.Arc(center.X, center.Y, 9, 0, 2*math.Pi)
	cr.Fill()
}
