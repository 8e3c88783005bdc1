package reliefd

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// A PixelGrid is a 2D grid of 8-bit intensity samples.
//
// Rows are scanlines, each Width() samples long.
type PixelGrid interface {
	Width() int
	Height() int
	IntensityAt(row, col int) uint8
}

// A GrayGrid is an in-memory PixelGrid stored in row-major
// order.
type GrayGrid struct {
	W      int
	H      int
	Values []uint8
}

// NewGrayGrid creates a grid from row-major intensities.
// The values slice is used directly, not copied.
func NewGrayGrid(width, height int, values []uint8) *GrayGrid {
	if len(values) != width*height {
		panic("number of values does not match grid dimensions")
	}
	return &GrayGrid{W: width, H: height, Values: values}
}

func (g *GrayGrid) Width() int {
	return g.W
}

func (g *GrayGrid) Height() int {
	return g.H
}

func (g *GrayGrid) IntensityAt(row, col int) uint8 {
	return g.Values[row*g.W+col]
}

// An ImageGrid exposes the luma of an image as a PixelGrid
// after rotating it by 270 degrees clockwise.
//
// Scanline r of the grid is column W-1-r of the source
// image, read from top to bottom.
type ImageGrid struct {
	gray *image.Gray
}

// NewImageGrid converts img to grayscale and wraps it.
func NewImageGrid(img image.Image) *ImageGrid {
	gray, ok := img.(*image.Gray)
	if !ok {
		bounds := img.Bounds()
		gray = image.NewGray(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				gray.SetGray(x, y, color.GrayModel.Convert(img.At(x, y)).(color.Gray))
			}
		}
	}
	return &ImageGrid{gray: gray}
}

// Width is the source image's height.
func (i *ImageGrid) Width() int {
	return i.gray.Bounds().Dy()
}

// Height is the source image's width.
func (i *ImageGrid) Height() int {
	return i.gray.Bounds().Dx()
}

func (i *ImageGrid) IntensityAt(row, col int) uint8 {
	bounds := i.gray.Bounds()
	x := bounds.Max.X - 1 - row
	y := bounds.Min.Y + col
	return i.gray.GrayAt(x, y).Y
}

// Downscale shrinks img so that neither side exceeds
// maxSize, preserving the aspect ratio.
//
// If the image already fits, or maxSize is not positive,
// img is returned unchanged.
func Downscale(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}
	longest := maxOf(w, h)
	newW := maxOf(1, w*maxSize/longest)
	newH := maxOf(1, h*maxSize/longest)
	res := image.NewGray(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(res, res.Bounds(), img, bounds, draw.Src, nil)
	return res
}
