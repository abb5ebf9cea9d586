package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

const jpegQuality = 90

// Video assembles a sequence of frames into a motion JPEG AVI file. All
// frames must share the same dimensions.
type Video struct {
	w      mjpeg.AviWriter
	width  int
	height int
	buf    bytes.Buffer
}

// NewVideo creates an AVI file at the given path.
func NewVideo(file string, width, height, fps int) (*Video, error) {
	if width < 1 || height < 1 || fps < 1 {
		return nil, fmt.Errorf("render: bad video geometry %dx%d@%d",
			width, height, fps)
	}
	w, err := mjpeg.New(file, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, err
	}
	return &Video{w: w, width: width, height: height}, nil
}

// AddFrame encodes img as JPEG and appends it to the video.
func (v *Video) AddFrame(img image.Image) error {
	b := img.Bounds()
	if b.Dx() != v.width || b.Dy() != v.height {
		return fmt.Errorf("render: frame is %dx%d, video is %dx%d",
			b.Dx(), b.Dy(), v.width, v.height)
	}

	v.buf.Reset()
	err := jpeg.Encode(&v.buf, img, &jpeg.Options{Quality: jpegQuality})
	if err != nil {
		return err
	}
	return v.w.AddFrame(v.buf.Bytes())
}

// Close finalizes the AVI index and closes the file.
func (v *Video) Close() error { return v.w.Close() }
