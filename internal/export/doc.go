// Package export writes rendered frames out of the terminal: single frames as
// SVG and recordings as animated GIF.
package export
