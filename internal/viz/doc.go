// Package viz renders the wave widget in the terminal.
//
// The package implements the interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the bubbletea model, owning an [anim.Widget]
//   - [RenderGrid]: background-colored cell blocks for one frame
//   - Theme selection with 5 built-in panel color schemes
//
// # Key Bindings
//
//	Space    - Play/Pause
//	R        - Reset wave position and color phase
//	Tab      - Select rows, cols or speed
//	←/→      - Step the selected control
//	Enter    - Type a value for the selected control
//	T        - Cycle themes
//	G        - Toggle GIF recording
//	?        - Show all key bindings
//	Q        - Quit
//
// # Recording
//
// G starts capturing one GIF frame per tick; pressing it again (or quitting)
// writes the file named by the gif_path config key.
package viz
