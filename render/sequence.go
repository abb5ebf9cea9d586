package render

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/albertmrtnz25/galkit/snapshot"
)

// SequenceOptions control how a snapshot directory becomes a video.
type SequenceOptions struct {
	FrameOptions
	// Type selects the rendered particle population. All overrides it
	// and renders every particle in the snapshot.
	Type snapshot.Type
	All  bool
	// FPS is the video frame rate.
	FPS int
	// FrameDir, when non empty, additionally saves every frame as a PNG
	// in this directory.
	FrameDir string
}

// DefaultSequenceOptions renders the disk population at 10 fps.
func DefaultSequenceOptions() SequenceOptions {
	return SequenceOptions{
		FrameOptions: DefaultFrameOptions(),
		Type:         snapshot.Disk,
		FPS:          10,
	}
}

// Sequence renders every snapshot in dir into an AVI video at out.
// Unreadable snapshots are logged and skipped; it is an error for every
// snapshot to fail.
func Sequence(dir, out string, order binary.ByteOrder, opt SequenceOptions) error {
	files, err := snapshot.Files(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("render: no snapshot files in %s", dir)
	}

	video, err := NewVideo(out, opt.Size, opt.Size, opt.FPS)
	if err != nil {
		return err
	}

	rendered := 0
	for _, file := range files {
		s, err := snapshot.Read(file, order)
		if err != nil {
			log.Printf("render: skipping %v", err)
			continue
		}

		x, v := s.X, s.V
		if !opt.All {
			p := s.Part(opt.Type)
			x, v = p.X, p.V
		}
		img := Frame(x, v, s.Header.Time, opt.FrameOptions)
		if err := video.AddFrame(img); err != nil {
			video.Close()
			return err
		}
		rendered++

		if opt.FrameDir != "" {
			name := filepath.Base(file) + ".png"
			err := savePNG(filepath.Join(opt.FrameDir, name), img)
			if err != nil {
				video.Close()
				return err
			}
		}
	}

	if rendered == 0 {
		video.Close()
		return fmt.Errorf(
			"render: none of the %d snapshots in %s were readable",
			len(files), dir,
		)
	}
	return video.Close()
}

func savePNG(file string, img image.Image) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
