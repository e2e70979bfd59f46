package prefilter

import (
	"fmt"
	"slices"
	"testing"

	"github.com/gogpu/fontsrc/rawmem"
)

// recorder returns a chain whose passes append "name:kernel" to calls.
func recorder(calls *[]string) Chain {
	record := func(name string) Pass {
		return func(_ rawmem.View[byte], _, _, _, kernel int) {
			*calls = append(*calls, fmt.Sprintf("%s:%d", name, kernel))
		}
	}
	return Chain{Width: record("width"), Height: record("height")}
}

func TestChain_Order(t *testing.T) {
	tests := []struct {
		name         string
		kernelWidth  int
		kernelHeight int
		want         []string
	}{
		{"no kernels", 0, 0, nil},
		{"width only", 2, 0, []string{"width:2"}},
		{"height only", 0, 3, []string{"height:3"}},
		{"both", 2, 3, []string{"width:2", "height:3"}},
		{"both equal", 4, 4, []string{"width:4", "height:4"}},
	}

	buf := make([]byte, 16)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			recorder(&calls).Apply(rawmem.Of(buf), 4, 4, 4, tt.kernelWidth, tt.kernelHeight)
			if !slices.Equal(calls, tt.want) {
				t.Errorf("calls = %v, want %v", calls, tt.want)
			}
		})
	}
}

func TestBox_Apply(t *testing.T) {
	// 3x4 region with ink in the top-left pixel and kernel margins of
	// 1 column and 2 rows.
	buf := []byte{
		90, 0, 0,
		0, 0, 0,
		0, 0, 0,
		0, 0, 0,
	}
	Box.Apply(rawmem.Of(buf), 3, 4, 3, 2, 3)

	// Width pass: row 0 becomes 45 45 0.
	// Height pass: each of those columns becomes 15 15 15 0.
	want := []byte{
		15, 15, 0,
		15, 15, 0,
		15, 15, 0,
		0, 0, 0,
	}
	if !slices.Equal(buf, want) {
		t.Errorf("Apply() = %v, want %v", buf, want)
	}
}
