// Package gui runs the wave widget in a raylib desktop window. It shares the
// state and tick schedule of the terminal front-end; the frame loop feeds
// elapsed frame time to the schedule instead of using timer callbacks.
package gui
