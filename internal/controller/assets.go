package controller

import (
	"image"
	"image/color"
)

// squaresSize is the edge of the generated block texture in pixels.
const squaresSize = 64

// SquaresImage generates the block texture: nested square outlines on a dark fill.
func SquaresImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, squaresSize, squaresSize))
	fill := color.NRGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
	line := color.NRGBA{R: 0xd2, G: 0x69, B: 0x1e, A: 0xff}

	for y := 0; y < squaresSize; y++ {
		for x := 0; x < squaresSize; x++ {
			// Distance to the nearest edge picks the ring.
			d := min(x, y, squaresSize-1-x, squaresSize-1-y)
			if d%8 < 2 {
				img.SetNRGBA(x, y, line)
			} else {
				img.SetNRGBA(x, y, fill)
			}
		}
	}
	return img
}
