// Package anim holds the widget state and the timer-driven animation loop.
//
//   - [State]: grid size, wave position/direction, color phase, playback
//   - [Schedule]: cancellable handle for the recurring tick
//   - [Widget]: State plus Schedule, the only place front-ends mutate state
//
// # Timer Discipline
//
// Ticks are delivered as one-shot callbacks tagged with a generation number.
// Pausing, changing speed or column count, and closing the widget all bump
// the generation, so a callback scheduled before the change is dropped
// instead of advancing the wave. Resuming always starts a fresh interval.
//
// # Thread Safety
//
// Widget is NOT thread-safe. It is meant to be driven from a single event
// loop (a bubbletea Update or a raylib frame loop).
package anim
