package render

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func TestExportGIF(t *testing.T) {
	scene := mustScene(t, 4)
	scene.EdgeShading = true
	surf := newFakeSurface(64, 64)
	path := filepath.Join(t.TempDir(), "out.gif")

	opts := ExportOptions{Path: path, Frames: 5, FPS: 25}
	if err := ExportGIF(scene, surf, opts); err != nil {
		t.Fatalf("ExportGIF: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer file.Close()

	decoded, err := gif.DecodeAll(file)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(decoded.Image) != opts.Frames {
		t.Errorf("%d frames, want %d", len(decoded.Image), opts.Frames)
	}
	if decoded.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0 (loop forever)", decoded.LoopCount)
	}
	for i, d := range decoded.Delay {
		if d != 100/opts.FPS {
			t.Errorf("frame %d delay = %d, want %d", i, d, 100/opts.FPS)
		}
	}

	// 5 frames render the full edge pipeline each time.
	if want := 5 * 32 * 10; len(surf.strokes) != want {
		t.Errorf("%d strokes across frames, want %d", len(surf.strokes), want)
	}
}

func TestExportGIFRejectsBadOptions(t *testing.T) {
	scene := mustScene(t, 2)
	surf := newFakeSurface(8, 8)
	bad := []ExportOptions{
		{Path: "x.gif", Frames: 0, FPS: 25},
		{Path: "x.gif", Frames: 10, FPS: 0},
		{Path: "x.gif", Frames: 10, FPS: 500},
	}
	for _, opts := range bad {
		if err := ExportGIF(scene, surf, opts); err == nil {
			t.Errorf("ExportGIF(%+v) accepted bad options", opts)
		}
	}
}
