package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Projection selects the pair of particle coordinates a frame plots.
type Projection int

const (
	// XY, XZ and YZ are spatial projections.
	XY Projection = iota
	XZ
	YZ
	// ZVz plots vertical position against vertical velocity, a phase
	// space view that makes vertical heating visible.
	ZVz
)

func (p Projection) String() string {
	switch p {
	case XY:
		return "xy"
	case XZ:
		return "xz"
	case YZ:
		return "yz"
	case ZVz:
		return "z-vz"
	}
	return fmt.Sprintf("Projection(%d)", int(p))
}

// ParseProjection converts a config string into a Projection.
func ParseProjection(s string) (Projection, error) {
	switch s {
	case "xy", "XY":
		return XY, nil
	case "xz", "XZ":
		return XZ, nil
	case "yz", "YZ":
		return YZ, nil
	case "z-vz", "zvz", "ZVz":
		return ZVz, nil
	}
	return 0, fmt.Errorf("render: unknown projection %q", s)
}

// FrameOptions control how particle frames are rasterized.
type FrameOptions struct {
	// Size is the width and height of the square frame in pixels.
	Size int
	// Limit is the half width of the plotted region in position units.
	Limit float64
	// VLimit is the half width of the velocity axis, used only by the
	// ZVz projection.
	VLimit float64
	// Projection selects the plotted coordinate pair.
	Projection Projection
}

// DefaultFrameOptions returns options that frame a Milky Way sized disk.
func DefaultFrameOptions() FrameOptions {
	return FrameOptions{Size: 512, Limit: 50, VLimit: 300, Projection: XY}
}

var (
	background = color.RGBA{0, 0, 20, 255}
	foreground = color.RGBA{255, 240, 200, 255}
	boxColor   = color.RGBA{80, 80, 100, 255}
	labelColor = color.RGBA{200, 200, 200, 255}
)

// Frame rasterizes one particle population into a square scatter image.
// Particles outside the plotted region are dropped, and the snapshot time
// is stamped into the top left corner.
func Frame(x, v [][3]float32, time float64, opt FrameOptions) *image.RGBA {
	if opt.Size < 1 || opt.Limit <= 0 {
		panic("render: need a positive frame size and limit")
	}

	img := image.NewRGBA(image.Rect(0, 0, opt.Size, opt.Size))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)
	for i := 0; i < opt.Size; i++ {
		img.Set(i, 0, boxColor)
		img.Set(i, opt.Size-1, boxColor)
		img.Set(0, i, boxColor)
		img.Set(opt.Size-1, i, boxColor)
	}

	for i := range x {
		h, k, ok := project(x[i], v, i, opt)
		if !ok {
			continue
		}
		px := int((h/opt.Limit + 1) / 2 * float64(opt.Size))
		// Flip so that positive k is up.
		py := int((1 - k/kLimit(opt)) / 2 * float64(opt.Size))
		if px < 0 || px >= opt.Size || py < 0 || py >= opt.Size {
			continue
		}
		img.Set(px, py, foreground)
	}

	addLabel(img, 8, 16, fmt.Sprintf("t = %.3f", time))
	return img
}

// project maps particle i onto the frame's horizontal and vertical
// coordinates. ok is false when the particle falls outside the frame.
func project(xi [3]float32, v [][3]float32, i int, opt FrameOptions) (h, k float64, ok bool) {
	switch opt.Projection {
	case XY:
		h, k = float64(xi[0]), float64(xi[1])
	case XZ:
		h, k = float64(xi[0]), float64(xi[2])
	case YZ:
		h, k = float64(xi[1]), float64(xi[2])
	case ZVz:
		h, k = float64(xi[2]), float64(v[i][2])
	}
	return h, k, h >= -opt.Limit && h < opt.Limit &&
		k >= -kLimit(opt) && k < kLimit(opt)
}

// kLimit is the vertical axis half width, which differs from Limit only
// for the phase space projection.
func kLimit(opt FrameOptions) float64 {
	if opt.Projection == ZVz && opt.VLimit > 0 {
		return opt.VLimit
	}
	return opt.Limit
}

func addLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}
