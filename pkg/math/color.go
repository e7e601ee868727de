package math

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBadColor is returned when a hex color string cannot be parsed.
var ErrBadColor = errors.New("invalid hex color")

// RGB is a linear color with channels in [0, 1].
// In YAML it is written as "#rrggbb".
type RGB struct {
	R, G, B float32
}

// RGBA is an RGB color with straight (non-premultiplied) alpha.
type RGBA struct {
	R, G, B, A float32
}

// ParseHex parses "#rrggbb", "rrggbb" or the short "#rgb" form.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return RGB{
		R: float32(v>>16&0xff) / 255,
		G: float32(v>>8&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}

// MustParseHex is like ParseHex but panics on error. Intended for constants.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb", clamping each channel.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Mix blends c toward other by w (GLSL mix per channel).
func (c RGB) Mix(other RGB, w float32) RGB {
	return RGB{Mix(c.R, other.R, w), Mix(c.G, other.G, w), Mix(c.B, other.B, w)}
}

// WithAlpha returns c with the given alpha.
func (c RGB) WithAlpha(a float32) RGBA {
	return RGBA{c.R, c.G, c.B, a}
}

// Array returns the channels as an array, as taken by uniform uploads and color editors.
func (c RGB) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// MarshalYAML writes the color as a hex string.
func (c RGB) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// UnmarshalYAML reads a hex string.
func (c *RGB) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{c.R, c.G, c.B}
}

// NRGBA converts to an 8-bit straight-alpha color for image output.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float32) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}
