// Package wave computes the per-cell pattern of the bouncing color wave.
//
// Everything here is a pure function of the grid geometry, the wave
// position and the color phase:
//
//   - [Generate]: one row of [Cell] values
//   - [Grid]: a full rows x cols frame
//   - [ColorOf]: maps a cell to a color using HSL bands
//
// # Wave Width
//
// Intensity falls off linearly over [FalloffRadius] columns on each side of
// the wave center, so up to seven columns are lit at once even though the
// controls describe the wave as six columns wide.
package wave
