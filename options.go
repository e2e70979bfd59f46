package fontsrc

import (
	"fmt"

	"github.com/gogpu/fontsrc/internal/prefilter"
)

// MaxKernel is the largest supported prefilter kernel.
const MaxKernel = prefilter.MaxKernel

// Settings controls how a FontSource rasterizes glyphs.
// The zero value selects the area-coverage rasterizer with no prefilter.
type Settings struct {
	// UseOldRasterizer selects the legacy supersampled scanline rasterizer.
	UseOldRasterizer bool

	// KernelWidth is the horizontal box prefilter size in pixels. Glyph
	// boxes grow by KernelWidth on the right. 0 disables the pass.
	KernelWidth int

	// KernelHeight is the vertical box prefilter size in pixels. Glyph
	// boxes grow by KernelHeight at the bottom. 0 disables the pass.
	KernelHeight int
}

// Validate reports ErrInvalidKernel when a kernel is outside [0, MaxKernel].
func (s Settings) Validate() error {
	if s.KernelWidth < 0 || s.KernelWidth > MaxKernel {
		return fmt.Errorf("%w: width %d not in [0, %d]", ErrInvalidKernel, s.KernelWidth, MaxKernel)
	}
	if s.KernelHeight < 0 || s.KernelHeight > MaxKernel {
		return fmt.Errorf("%w: height %d not in [0, %d]", ErrInvalidKernel, s.KernelHeight, MaxKernel)
	}
	return nil
}

// Option configures Open and OpenFile.
type Option func(*openConfig)

// openConfig holds configuration for opening a font source.
type openConfig struct {
	settings Settings
	backend  string
}

// defaultOpenConfig returns the default open configuration.
func defaultOpenConfig() openConfig {
	return openConfig{
		backend: defaultBackendName,
	}
}

// WithSettings replaces all rasterization settings.
func WithSettings(s Settings) Option {
	return func(c *openConfig) {
		c.settings = s
	}
}

// WithOldRasterizer selects the legacy scanline rasterizer when old is true.
func WithOldRasterizer(old bool) Option {
	return func(c *openConfig) {
		c.settings.UseOldRasterizer = old
	}
}

// WithKernel sets the prefilter kernel sizes.
func WithKernel(width, height int) Option {
	return func(c *openConfig) {
		c.settings.KernelWidth = width
		c.settings.KernelHeight = height
	}
}

// WithBackend selects the font backend by registered name.
// The default is "ximage" (golang.org/x/image/font/sfnt); "gotext" uses
// github.com/go-text/typesetting.
//
// Custom backends can be registered with RegisterLoader.
func WithBackend(name string) Option {
	return func(c *openConfig) {
		c.backend = name
	}
}
