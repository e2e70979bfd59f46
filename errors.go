package fontsrc

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fontsrc package.
var (
	// ErrInvalidInput is returned when the font data is empty.
	ErrInvalidInput = errors.New("fontsrc: empty font data")

	// ErrFontLoad matches every *FontLoadError.
	ErrFontLoad = errors.New("fontsrc: font load failed")

	// ErrClosed is returned by Close on a source that is already closed.
	ErrClosed = errors.New("fontsrc: font source already closed")

	// ErrInvalidKernel is returned when a prefilter kernel is outside
	// [0, MaxKernel].
	ErrInvalidKernel = errors.New("fontsrc: invalid prefilter kernel")
)

// errDegenerateMetrics is wrapped in a FontLoadError when a font's ascent
// equals its descent and no pixel scale can be derived.
var errDegenerateMetrics = errors.New("ascent equals descent")

// FontLoadError is returned when a backend cannot build a font handle from
// the supplied bytes.
type FontLoadError struct {
	// Backend is the registered name of the backend that failed.
	Backend string

	// Err is the underlying parser error.
	Err error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("fontsrc: %s backend failed to load font: %v", e.Backend, e.Err)
}

// Unwrap returns the underlying error.
func (e *FontLoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFontLoad.
func (e *FontLoadError) Is(target error) bool {
	return target == ErrFontLoad
}
