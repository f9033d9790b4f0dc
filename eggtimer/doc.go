// Package eggtimer implements the dial and countdown logic of Egg Timer,
// independent of any UI toolkit.
//
// The package is organized around three pieces:
//
//   - Geometry: Angle converts a touch point into a clock angle relative to
//     the dial center; SecondsForAngle and AngleForSeconds map between the
//     angle and the countdown duration.
//   - Controller: the countdown state machine. It owns a single State record,
//     accepts drag and button input, and drives a one second tick through a
//     Scheduler.
//   - Formatting: FormatClock renders the remaining time as MM:SS.
//
// # Event Flow
//
//  1. The frontend measures the dial center once and calls MeasureCenter
//  2. Drag moves call Drag while CanDrag reports true
//  3. Release commits the duration and starts the countdown
//  4. Every tick decrements the remaining time until it expires
//  5. Each transition publishes an Event to the subscribers
//
// # Thread Safety
//
// Controller is not safe for concurrent use. All calls, including ticks,
// must run on the host event loop. TickerScheduler hands ticks to a
// common.Dispatcher for exactly that reason.
package eggtimer
