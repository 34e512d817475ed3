package ass

import "assweb/css"

// Color is an RGB triple with an embedded alpha component in [0, 1].
// Script colors carry their own alpha; inline alpha overrides replace it
// only at resolution time.
type Color struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns the color with its alpha replaced by override when
// override is non-nil. A nil override keeps the embedded alpha.
func (c Color) WithAlpha(override *float64) Color {
	if override != nil {
		c.A = *override
	}
	return c
}

// String renders the color as a CSS rgba() component value.
func (c Color) String() string {
	return "rgba(" +
		css.FormatInt(int(c.R)) + ", " +
		css.FormatInt(int(c.G)) + ", " +
		css.FormatInt(int(c.B)) + ", " +
		css.FormatFloat(c.A) + ")"
}
