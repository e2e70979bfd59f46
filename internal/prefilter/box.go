package prefilter

import "github.com/gogpu/fontsrc/rawmem"

// MaxKernel is the largest supported kernel size.
const MaxKernel = 8

const ringMask = MaxKernel - 1

// Horizontal applies a box filter of the given kernel along each row of the
// w×h region at pixels. Rows are stride bytes apart.
func Horizontal(pixels rawmem.View[byte], w, h, stride, kernel int) {
	if kernel <= 1 || w <= 0 {
		return
	}
	var ring [MaxKernel]byte
	safe := w - kernel

	row := pixels
	for y := 0; y < h; y++ {
		ring = [MaxKernel]byte{}
		total := 0

		i := 0
		for ; i <= safe; i++ {
			p := row.At(i)
			total += int(p) - int(ring[i&ringMask])
			ring[(i+kernel)&ringMask] = p
			row.Set(i, byte(total/kernel))
		}
		for ; i < w; i++ {
			total -= int(ring[i&ringMask])
			row.Set(i, byte(total/kernel))
		}

		row = row.Add(stride)
	}
}

// Vertical applies a box filter of the given kernel down each column of the
// w×h region at pixels. Rows are stride bytes apart.
func Vertical(pixels rawmem.View[byte], w, h, stride, kernel int) {
	if kernel <= 1 || h <= 0 {
		return
	}
	var ring [MaxKernel]byte
	safe := h - kernel

	col := pixels
	for x := 0; x < w; x++ {
		ring = [MaxKernel]byte{}
		total := 0

		i := 0
		for ; i <= safe; i++ {
			p := col.At(i * stride)
			total += int(p) - int(ring[i&ringMask])
			ring[(i+kernel)&ringMask] = p
			col.Set(i*stride, byte(total/kernel))
		}
		for ; i < h; i++ {
			total -= int(ring[i&ringMask])
			col.Set(i*stride, byte(total/kernel))
		}

		col = col.Add(1)
	}
}
