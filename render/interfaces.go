package render

// Surface measures rendered text. LineHeight returns the rendered
// line-box height in pixels for the given font family at the given
// pixel size. Calls are synchronous and expected to be cheap; results
// are cached process-wide by FontSizeCache, so a surface is consulted
// at most once per distinct (family, size) pair.
type Surface interface {
	LineHeight(family string, size float64) float64
}

// Clock supplies the playback rate used to convert keyframe time to
// real duration. The rate is read once at timeline construction.
type Clock interface {
	Rate() float64
}

// FixedClock is a Clock with a constant rate.
type FixedClock float64

// Rate returns the constant rate.
func (c FixedClock) Rate() float64 { return float64(c) }
