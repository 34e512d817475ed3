package render

import (
	"strings"

	"assweb/css"
)

// Resolve computes the full visual property set for one emitted run
// from the current attribute values. It is a total function: every
// numeric input is accepted and non-positive geometry degenerates
// gracefully instead of failing.
func (s *StyleState) Resolve(run *Run, anims *AnimationTimeline) *ResolvedRun {
	out := &ResolvedRun{}
	props := &out.Props

	s.resolveFont(run, props)
	s.resolveDecoration(props)
	s.resolveTransform(run, props)

	if s.letterSpacing != 0 {
		props.Set("letter-spacing", css.Px(s.letterSpacing*s.scaleX))
	}

	props.Set("color", s.primaryColor.WithAlpha(s.primaryAlpha).String())

	s.resolveOutline(out)
	s.resolveDropShadow(out)
	if len(out.Shadows) > 0 {
		props.Set("text-shadow", ShadowList(out.Shadows))
	}

	s.resolveWrapper(out)

	if anims != nil && !anims.Empty() {
		props.Set("-webkit-animation", anims.Directive())
		props.Set("animation", anims.Directive())
	}

	return out
}

// resolveFont picks the displayed font size through the measurement
// cache. A text-only run is calibrated at fontSize×fontScaleY; a run
// with non-text children at the unscaled fontSize, since its children
// are scaled by the transform instead.
func (s *StyleState) resolveFont(run *Run, props *css.PropertySet) {
	size := s.fontSize
	if run.TextOnly {
		size *= s.fontScaleY
	}
	factor := s.cache.Scale(s.fontName, size, s.surface)

	props.Set("font-family", css.FontFamilyList(s.settings.Families(s.fontName)))
	props.Set("font-size", css.Px(factor*s.scaleY))
	props.Set("line-height", css.Px(s.scaleY*s.fontSize))

	if s.italic {
		props.Set("font-style", "italic")
	}
	if weight := s.bold.fontWeight(); weight != "normal" {
		props.Set("font-weight", weight)
	}
}

// resolveDecoration composes underline and strike-through into a single
// text-decoration directive; both may be present at once.
func (s *StyleState) resolveDecoration(props *css.PropertySet) {
	parts := make([]string, 0, 2)
	if s.underline {
		parts = append(parts, "underline")
	}
	if s.strikeOut {
		parts = append(parts, "line-through")
	}
	if len(parts) > 0 {
		props.Set("text-decoration", strings.Join(parts, " "))
	}
}

// resolveTransform builds the transform in fixed order: corrective
// scale, Y rotation, X rotation, inverted Z rotation, shear. Any
// non-empty transform forces inline-block display so the transform has
// a rendering origin.
func (s *StyleState) resolveTransform(run *Run, props *css.PropertySet) {
	var parts []string

	if run.TextOnly {
		// Font size is calibrated with the vertical scale; one
		// vertical corrective component restores the axis ratio.
		if s.fontScaleX != s.fontScaleY && s.fontScaleX != 0 {
			parts = append(parts, "scaleY("+css.FormatFloat(s.fontScaleY/s.fontScaleX)+")")
		}
	} else {
		if s.fontScaleX != 1 {
			parts = append(parts, "scaleX("+css.FormatFloat(s.fontScaleX)+")")
		}
		if s.fontScaleY != 1 {
			parts = append(parts, "scaleY("+css.FormatFloat(s.fontScaleY)+")")
		}
	}

	if s.rotationY != nil {
		parts = append(parts, "rotateY("+css.Deg(*s.rotationY)+")")
	}
	if s.rotationX != nil {
		parts = append(parts, "rotateX("+css.Deg(*s.rotationX)+")")
	}
	if s.rotationZ != 0 {
		parts = append(parts, "rotateZ("+css.Deg(-s.rotationZ)+")")
	}

	if s.skewX != nil || s.skewY != nil {
		// Skews default to zero only here, not at set time.
		kx := floatOr(s.skewX, 0)
		ky := floatOr(s.skewY, 0)
		parts = append(parts, "matrix(1, "+css.FormatFloat(ky)+", "+css.FormatFloat(kx)+", 1, 0, 0)")
	}

	if len(parts) == 0 {
		return
	}
	transform := strings.Join(parts, " ")
	props.Set("-webkit-transform", transform)
	props.Set("transform", transform)
	props.Set("display", "inline-block")
}

// resolveOutline produces the outline geometry: an SVG filter on the
// filter path, or brute-force stacked shadows on the fallback path.
func (s *StyleState) resolveOutline(out *ResolvedRun) {
	w := clampRadius(s.outlineWidth * s.scaleX)
	h := clampRadius(s.outlineHeight * s.scaleY)
	color := s.outlineColor.WithAlpha(s.outlineAlpha)

	if s.settings.EnableSVG {
		out.Filter = s.buildFilter(w, h, color)
		return
	}
	if w > 0 || h > 0 {
		out.Shadows = append(out.Shadows, stackOutline(w, h, s.gaussianBlur, color)...)
	}
}

// resolveDropShadow appends the drop shadow after any outline-derived
// entries. The offsets are compensated for the font scale the run is
// already drawn at.
func (s *StyleState) resolveDropShadow(out *ResolvedRun) {
	if s.shadowDepthX == 0 && s.shadowDepthY == 0 {
		return
	}
	out.Shadows = append(out.Shadows, Shadow{
		X:     s.shadowDepthX * s.scaleX / s.fontScaleX,
		Y:     s.shadowDepthY * s.scaleY / s.fontScaleY,
		Color: s.shadowColor.WithAlpha(s.shadowAlpha),
	})
}

// resolveWrapper decides whether the run needs an outer container: a
// filter reference, and a perspective carrier when a 3-D rotation is
// present. The wrapper must itself be inline-block for either to take
// effect.
func (s *StyleState) resolveWrapper(out *ResolvedRun) {
	needPerspective := s.rotationX != nil || s.rotationY != nil
	if out.Filter == nil && !needPerspective {
		return
	}

	wrapper := &css.PropertySet{}
	wrapper.Set("display", "inline-block")
	if out.Filter != nil {
		ref := "url(#" + out.Filter.ID + ")"
		wrapper.Set("-webkit-filter", ref)
		wrapper.Set("filter", ref)
	}
	if needPerspective {
		wrapper.Set("-webkit-perspective", "400px")
		wrapper.Set("perspective", "400px")
	}
	out.Wrapper = wrapper
}
