package core

import (
	"fmt"
	"image/color"
)

// Color is a straight (non-premultiplied) RGBA color used by every renderer backend.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Palette used by the screens.
var (
	ColorBlack     = RGB(0, 0, 0)
	ColorWhite     = RGB(0xff, 0xff, 0xff)
	ColorRed       = RGB(0xff, 0, 0)
	ColorGreen     = RGB(0, 0xff, 0)
	ColorGray      = RGB(0x80, 0x80, 0x80)
	ColorDarkGray  = RGB(0x30, 0x30, 0x30)
	ColorHighlight = RGBA(0xff, 0xff, 0xff, 0x40)
	ColorSelection = RGBA(0x00, 0x80, 0xff, 0x60)
	ColorCursor    = RGBA(0xff, 0xff, 0x00, 0x80)
)

// Opaque reports whether the color fully covers what is beneath it.
func (c Color) Opaque() bool {
	return c.A == 0xff
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to the image/color representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any image/color value.
func FromColor(src color.Color) Color {
	n := color.NRGBAModel.Convert(src).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Over composites c on top of dst using source-over blending.
// The result is opaque whenever dst is opaque.
func (c Color) Over(dst Color) Color {
	if c.A == 0xff {
		return c
	}
	if c.A == 0 {
		return dst
	}
	sa := uint32(c.A)
	da := uint32(dst.A) * (0xff - sa) / 0xff
	outA := sa + da
	if outA == 0 {
		return Color{}
	}
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*sa + uint32(d)*da) / outA)
	}
	return Color{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: uint8(outA),
	}
}
