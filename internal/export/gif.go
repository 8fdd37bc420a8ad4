package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/san-kum/wavegrid/internal/wave"
)

// ErrEmptyRecording is returned when saving a recording with no frames.
var ErrEmptyRecording = errors.New("export: recording has no frames")

// Recorder accumulates frames for an animated GIF.
type Recorder struct {
	cellSize int
	frames   []*image.Paletted
	delays   []int
}

func NewRecorder(cellSize int) *Recorder {
	if cellSize <= 0 {
		cellSize = 12
	}
	return &Recorder{cellSize: cellSize}
}

// Len returns the number of captured frames.
func (r *Recorder) Len() int { return len(r.frames) }

// Capture rasterizes a frame. delay is how long the frame stays on screen.
func (r *Recorder) Capture(frame [][]wave.Cell, phase int, delay time.Duration) {
	if len(frame) == 0 {
		return
	}
	rows, cols := len(frame), len(frame[0])
	img := image.NewPaletted(image.Rect(0, 0, cols*r.cellSize, rows*r.cellSize), palette.Plan9)
	for row, cells := range frame {
		for col, c := range cells {
			idx := uint8(img.Palette.Index(wave.CellColor(c, phase)))
			baseX, baseY := col*r.cellSize, row*r.cellSize
			for py := 0; py < r.cellSize-1; py++ {
				for px := 0; px < r.cellSize-1; px++ {
					img.SetColorIndex(baseX+px, baseY+py, idx)
				}
			}
		}
	}
	r.frames = append(r.frames, img)

	cs := int(delay / (10 * time.Millisecond))
	if cs < 2 {
		cs = 2
	}
	r.delays = append(r.delays, cs)
}

// Encode writes the recording as a looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrEmptyRecording
	}
	anim := gif.GIF{LoopCount: 0}
	for i, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delays[i])
	}
	return gif.EncodeAll(w, &anim)
}

// Save encodes the recording to path.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return ErrEmptyRecording
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Encode(f)
}
