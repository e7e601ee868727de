package water

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"golang.org/x/image/draw"

	"github.com/Faultbox/wavefield/pkg/math"
	"github.com/Faultbox/wavefield/pkg/wave"
)

// Bake modes.
const (
	ModeColor  = "color"
	ModeHeight = "height"
)

// ErrUnknownMode is returned for a bake mode other than ModeColor or ModeHeight.
var ErrUnknownMode = errors.New("unknown bake mode")

// BakeOptions controls a top-down render of the surface over a grid's extent.
type BakeOptions struct {
	Width, Height int       // output size in pixels
	Supersample   int       // render at k times the size and downsample; <= 1 disables
	Grid          *Grid     // world region covered by the image
	Eye           math.Vec3 // viewer position used for the fresnel view vector
	Time          float32
	Params        wave.Params
	Mode          string
}

func (o BakeOptions) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("bake size %dx%d must be positive", o.Width, o.Height)
	}
	if o.Grid == nil {
		return errors.New("bake needs a grid")
	}
	return nil
}

// pixelXZ maps the center of pixel (px, py) of a w x h image onto the grid.
// Image rows run along +Z.
func (o BakeOptions) pixelXZ(px, py, w, h int) (x, z float32) {
	lo, hi := o.Grid.Bounds()
	u := (float32(px) + 0.5) / float32(w)
	v := (float32(py) + 0.5) / float32(h)
	return lo.X + u*(hi.X-lo.X), lo.Z + v*(hi.Z-lo.Z)
}

// Render bakes one frame in the configured mode.
func Render(ctx context.Context, f wave.Field, opts BakeOptions) (image.Image, error) {
	switch opts.Mode {
	case "", ModeColor:
		return Bake(ctx, f, opts)
	case ModeHeight:
		return BakeHeight(ctx, f, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}
}

// Bake renders the shaded surface color. Each pixel is shaded as the fragment
// shader would shade the displaced point under it, with the view vector
// pointing at opts.Eye.
func Bake(ctx context.Context, f wave.Field, opts BakeOptions) (*image.NRGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	k := max(opts.Supersample, 1)
	w, h := opts.Width*k, opts.Height*k
	p := opts.Params
	baseY := opts.Grid.Origin.Y

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	err := forEachRow(ctx, h, func(py int) {
		for px := 0; px < w; px++ {
			x, z := opts.pixelXZ(px, py, w, h)
			y := baseY + f.Height(x, z, opts.Time, &p)
			view := opts.Eye.Sub(math.Vec3{X: x, Y: y, Z: z}).Normalize()
			img.SetNRGBA(px, py, f.Color(x, z, opts.Time, view, &p).NRGBA())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("bake: %w", err)
	}
	if k == 1 {
		return img, nil
	}

	out := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out, nil
}

// BakeHeight renders a 16-bit heightmap. Heights map linearly from
// [-Bound, Bound] onto the full gray range, so 32768 is the undisturbed level.
func BakeHeight(ctx context.Context, f wave.Field, opts BakeOptions) (*image.Gray16, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	p := opts.Params
	bound := wave.Bound(&p)
	w, h := opts.Width, opts.Height

	img := image.NewGray16(image.Rect(0, 0, w, h))
	err := forEachRow(ctx, h, func(py int) {
		for px := 0; px < w; px++ {
			x, z := opts.pixelXZ(px, py, w, h)
			v := float32(0.5)
			if bound > 0 {
				v = math.Clamp(f.Height(x, z, opts.Time, &p)/bound*0.5+0.5, 0, 1)
			}
			img.SetGray16(px, py, color.Gray16{Y: uint16(v*65535 + 0.5)})
		}
	})
	if err != nil {
		return nil, fmt.Errorf("bake height: %w", err)
	}
	return img, nil
}

// FrameFunc receives each baked frame with its index and time.
type FrameFunc func(index int, t float32, img image.Image) error

// BakeFrames renders a sequence starting at opts.Time, advancing a wave.Clock
// by 1/fps between frames.
func BakeFrames(ctx context.Context, f wave.Field, opts BakeOptions, frames int, fps float64, fn FrameFunc) error {
	if fps <= 0 {
		return fmt.Errorf("fps %v must be positive", fps)
	}
	step := time.Duration(float64(time.Second) / fps)

	var clock wave.Clock
	clock.Set(float64(opts.Time))
	for i := 0; i < frames; i++ {
		opts.Time = clock.Elapsed()
		img, err := Render(ctx, f, opts)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := fn(i, opts.Time, img); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		clock.Advance(step)
	}
	return nil
}
