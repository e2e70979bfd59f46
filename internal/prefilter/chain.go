package prefilter

import "github.com/gogpu/fontsrc/rawmem"

// Pass filters a w×h region in place with the given kernel size.
type Pass func(pixels rawmem.View[byte], w, h, stride, kernel int)

// Chain is the pair of passes run over a rasterized glyph.
type Chain struct {
	// Width runs first, with the horizontal kernel.
	Width Pass
	// Height runs second, with the vertical kernel.
	Height Pass
}

// Box is the default chain: box filters along rows, then along columns.
var Box = Chain{Width: Horizontal, Height: Vertical}

// Apply runs c.Width when kernelWidth > 0, then c.Height when
// kernelHeight > 0.
func (c Chain) Apply(pixels rawmem.View[byte], w, h, stride, kernelWidth, kernelHeight int) {
	if kernelWidth > 0 {
		c.Width(pixels, w, h, stride, kernelWidth)
	}
	if kernelHeight > 0 {
		c.Height(pixels, w, h, stride, kernelHeight)
	}
}
