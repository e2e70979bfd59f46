// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts glyph outlines into 8-bit coverage masks.
//
// Two rasterizers implement [GlyphRasterizer]:
//   - [Vector] accumulates exact signed area per pixel using
//     golang.org/x/image/vector.
//   - [Scanline] is the legacy rasterizer: it samples every pixel row on
//     [SupersampleScale] sub-scanlines and accumulates exact horizontal span
//     coverage, filling with the non-zero winding rule.
//
// Both write into a rawmem.View with an explicit row stride, so a glyph can
// be drawn straight into a caller-owned atlas region.
package raster
