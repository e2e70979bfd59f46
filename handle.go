package fontsrc

// fontHandle owns a backend's parsed font. It has exactly one owner, the
// source that created it, and releases the font exactly once.
type fontHandle[F any] struct {
	font     F
	release  func(F)
	released bool
}

func newFontHandle[F any](f F, release func(F)) *fontHandle[F] {
	return &fontHandle[F]{font: f, release: release}
}

// get returns the font. It panics once the handle is released.
func (h *fontHandle[F]) get() F {
	if h.released {
		panic("fontsrc: font source used after Close")
	}
	return h.font
}

// close releases the font. It reports false if the handle was already
// released.
func (h *fontHandle[F]) close() bool {
	if h.released {
		return false
	}
	h.released = true
	if h.release != nil {
		h.release(h.font)
	}
	var zero F
	h.font = zero
	return true
}
