package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// ExportOptions configures the offline animation export.
type ExportOptions struct {
	Path   string
	Frames int
	FPS    int
}

// ExportGIF renders the scene offline into a looping animated GIF. The
// clock advances in fixed steps of 1000/fps milliseconds, so equal seeds
// and options give byte-identical output. The first frame renders at delta
// zero, like the first frame of a live session.
func ExportGIF(scene *Scene, surf FrameImager, opts ExportOptions) error {
	if opts.Frames <= 0 {
		return fmt.Errorf("frame count %d, want > 0", opts.Frames)
	}
	if opts.FPS <= 0 || opts.FPS > 100 {
		return fmt.Errorf("fps %d, want 1..100", opts.FPS)
	}

	stepMS := 1000.0 / float64(opts.FPS)
	delay := 100 / opts.FPS // GIF delay unit is 1/100 s

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, opts.Frames),
		Delay:     make([]int, 0, opts.Frames),
		LoopCount: 0,
	}

	renderer := New()
	for f := 0; f < opts.Frames; f++ {
		if f > 0 {
			scene.Advance(stepMS)
		}
		renderer.Frame(scene, surf)

		src := surf.Image()
		frame := image.NewPaletted(src.Bounds(), palette.Plan9)
		draw.Draw(frame, frame.Rect, src, src.Bounds().Min, draw.Src)
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, delay)
	}

	file, err := os.Create(opts.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", opts.Path, err)
	}
	defer file.Close()

	if err := gif.EncodeAll(file, out); err != nil {
		return fmt.Errorf("encoding %s: %w", opts.Path, err)
	}
	return nil
}
