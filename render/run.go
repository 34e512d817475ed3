package render

import (
	"github.com/beevik/etree"

	"assweb/ass"
	"assweb/css"
)

// Run describes one emitted fragment of a dialogue line as seen by
// Resolve. TextOnly is false when the run mixes non-text children
// (inline drawings, images), which changes font-size calibration and
// the corrective scale transform.
type Run struct {
	Text     string
	TextOnly bool
}

// Shadow is a single text-shadow entry: an offset, a blur radius and a
// color, all in output pixels.
type Shadow struct {
	X, Y  float64
	Blur  float64
	Color ass.Color
}

// String renders the entry as a CSS text-shadow component.
func (s Shadow) String() string {
	return css.Px(s.X) + " " + css.Px(s.Y) + " " + css.Px(s.Blur) + " " + s.Color.String()
}

// ShadowList renders shadows as a comma-joined text-shadow value.
func ShadowList(shadows []Shadow) string {
	out := ""
	for i, s := range shadows {
		if i > 0 {
			out += ", "
		}
		out += s.String()
	}
	return out
}

// FilterDef is an SVG filter definition ready to be registered with the
// backend's defs section. Element is the <filter> element itself; the
// backend serializes or adopts it into whatever document it maintains.
type FilterDef struct {
	ID      string
	Element *etree.Element
}

// ResolvedRun is the full visual property set for one run. Props apply
// to the run itself. Wrapper, when non-nil, describes an outer container
// the run must be placed in (filter reference, 3-D perspective).
// Shadows keeps the text-shadow entries in structured form; Props
// already carries their serialized text-shadow declaration.
type ResolvedRun struct {
	Props   css.PropertySet
	Shadows []Shadow
	Filter  *FilterDef
	Wrapper *css.PropertySet
}

// LineBreak is a break marker with explicit vertical spacing in output
// pixels.
type LineBreak struct {
	LineHeight float64
}
