package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/wavegrid/internal/anim"
	"github.com/san-kum/wavegrid/internal/config"
	"github.com/san-kum/wavegrid/internal/wave"
)

const (
	cellPx   = 24
	gapPx    = 2
	marginPx = 20
	hudPx    = 280

	windowW = marginPx*2 + anim.MaxDim*cellPx + hudPx
	windowH = marginPx*2 + anim.MaxDim*cellPx
)

// Monochrome HUD palette
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColPlaying = rl.NewColor(0, 255, 136, 255)
	ColPaused  = rl.NewColor(255, 170, 0, 255)
)

type App struct {
	Widget   *anim.Widget
	ShowHelp bool
	quit     bool
}

func NewApp(cfg *config.Config) *App {
	return &App{Widget: anim.NewWidget(cfg.InitialState())}
}

// Run opens a window and blocks until it is closed.
func Run(cfg *config.Config) {
	rl.InitWindow(windowW, windowH, "wavegrid")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	defer rl.CloseWindow()

	app := NewApp(cfg)
	defer app.Widget.Close()
	app.Widget.Start()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	st := a.Widget.State()
	switch {
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		a.quit = true
		return
	case rl.IsKeyPressed(rl.KeySpace):
		a.Widget.TogglePlay()
	case rl.IsKeyPressed(rl.KeyR):
		a.Widget.Reset()
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyK):
		a.Widget.SetRows(st.Rows + 1)
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyJ):
		a.Widget.SetRows(st.Rows - 1)
	case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyL):
		a.Widget.SetCols(st.Cols + 1)
	case rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyH):
		a.Widget.SetCols(st.Cols - 1)
	case rl.IsKeyPressed(rl.KeyEqual):
		a.Widget.SetSpeed(st.SpeedMs + anim.SpeedStep)
	case rl.IsKeyPressed(rl.KeyMinus):
		a.Widget.SetSpeed(st.SpeedMs - anim.SpeedStep)
	case rl.IsKeyPressed(rl.KeySlash):
		a.ShowHelp = !a.ShowHelp
	}

	dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	a.Widget.Advance(dt)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	st := a.Widget.State()
	for row, cells := range st.Frame() {
		for col, c := range cells {
			x, y, size := cellRect(row, col)
			rl.DrawRectangle(x, y, size, size, toRL(wave.CellColor(c, st.Phase)))
		}
	}
	a.DrawHUD(st)

	rl.EndDrawing()
}

func (a *App) DrawHUD(st anim.State) {
	x := int32(marginPx*2 + anim.MaxDim*cellPx)
	y := int32(marginPx)
	if st.Playing {
		rl.DrawText("PLAYING", x, y, 20, ColPlaying)
	} else {
		rl.DrawText("PAUSED", x, y, 20, ColPaused)
	}
	y += 36
	for _, line := range hudLines(st) {
		rl.DrawText(line, x, y, 16, ColText)
		y += 22
	}
	y += 16
	help := []string{"SPACE play/pause  R reset", "? keys"}
	if a.ShowHelp {
		help = []string{
			"SPACE  play/pause",
			"R      reset",
			"UP/DN  rows",
			"LT/RT  cols",
			"-/=    speed",
			"Q      quit",
		}
	}
	for _, line := range help {
		rl.DrawText(line, x, y, 14, ColTextDim)
		y += 18
	}
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), x, windowH-marginPx-14, 14, ColTextDim)
}

func hudLines(st anim.State) []string {
	stats := st.Stats()
	return []string{
		fmt.Sprintf("position   %d / %d", stats.Position, st.MaxPosition()),
		fmt.Sprintf("direction  %s", stats.Direction),
		fmt.Sprintf("band       %d / %d", stats.Band, wave.Bands),
		fmt.Sprintf("next band  %ds", stats.SecondsToNextBand),
		fmt.Sprintf("grid       %dx%d", st.Rows, st.Cols),
		fmt.Sprintf("speed      %dms", stats.SpeedMs),
	}
}

// cellRect returns the top-left corner and side of a cell in window pixels.
func cellRect(row, col int) (x, y, size int32) {
	return int32(marginPx + col*cellPx), int32(marginPx + row*cellPx), cellPx - gapPx
}

func toRL(c colorful.Color) rl.Color {
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}
