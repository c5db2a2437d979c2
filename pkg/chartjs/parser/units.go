package parser

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// EMUToPixels converts EMU (English Metric Units) to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

// cellPixelsWidth and cellPixelsHeight are Excel's default column width and
// row height in pixels, used when a drawing anchor carries no explicit extent.
const (
	cellPixelsWidth  = 64
	cellPixelsHeight = 20
)

// anchorPixels estimates the size of a two-cell anchor spanning the given
// number of columns and rows.
func anchorPixels(cols, rows int) (width, height int) {
	return cols * cellPixelsWidth, rows * cellPixelsHeight
}
