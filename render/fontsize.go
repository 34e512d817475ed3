package render

import "sync"

// FontSizeCache maps (font family, requested size) pairs to the scale
// factor that converts a requested size into the size whose rendered
// line box matches it. It is append-only and never evicted: the input
// domain is the set of distinct font sizes in one document, which is
// small and finite.
//
// One cache is shared process-wide across all StyleState instances.
// Lines may be rendered from multiple goroutines, so access is guarded
// by a mutex.
type FontSizeCache struct {
	mu     sync.Mutex
	scales map[string]map[float64]float64
}

// NewFontSizeCache returns an empty cache.
func NewFontSizeCache() *FontSizeCache {
	return &FontSizeCache{scales: make(map[string]map[float64]float64)}
}

// Scale returns size²/measured-height for the pair, consulting surface
// at most once per distinct (family, size) for the cache lifetime.
func (c *FontSizeCache) Scale(family string, size float64, surface Surface) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	byFamily := c.scales[family]
	if byFamily == nil {
		byFamily = make(map[float64]float64)
		c.scales[family] = byFamily
	}
	if v, ok := byFamily[size]; ok {
		return v
	}

	v := size
	if height := surface.LineHeight(family, size); height > 0 {
		v = size * size / height
	}
	byFamily[size] = v
	return v
}
