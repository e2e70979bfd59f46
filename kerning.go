package fontsrc

// KernKey packs a glyph pair into a kerning cache key. The first glyph is
// rotated by 16 bits before being combined with the second, so (a, b) and
// (b, a) map to different keys for 16-bit glyph ids.
func KernKey(a, b GlyphID) uint32 {
	k := uint32(a)
	return ((k << 16) | (k >> 16)) ^ uint32(b)
}

// KerningCache memoizes unscaled kerning values by KernKey.
// Entries are never evicted. The zero value is ready to use.
//
// KerningCache is not safe for concurrent use; each FontSource owns one.
type KerningCache struct {
	values  map[uint32]int
	pending map[uint32]struct{}
}

// GetOrCompute returns the cached value for key, calling compute and storing
// its result on the first request. It panics if compute asks for the same
// key again before returning.
func (c *KerningCache) GetOrCompute(key uint32, compute func() int) int {
	if v, ok := c.values[key]; ok {
		return v
	}
	if _, busy := c.pending[key]; busy {
		panic("fontsrc: kerning cache: reentrant computation for the same key")
	}

	if c.pending == nil {
		c.pending = make(map[uint32]struct{})
	}
	c.pending[key] = struct{}{}
	defer delete(c.pending, key)

	v := compute()
	if c.values == nil {
		c.values = make(map[uint32]int)
	}
	c.values[key] = v
	return v
}

// Lookup returns the cached value for key without computing it.
func (c *KerningCache) Lookup(key uint32) (int, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of cached entries.
func (c *KerningCache) Len() int {
	return len(c.values)
}

// kernAdvance returns the kerning of (a, b) in pixels, truncated toward
// zero. lookup is called at most once per pair and returns font units.
func kernAdvance(c *KerningCache, a, b GlyphID, scale float32, lookup func(a, b GlyphID) int) int {
	v := c.GetOrCompute(KernKey(a, b), func() int { return lookup(a, b) })
	return int(float32(v) * scale)
}
