package render

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"assweb/ass"
	"assweb/css"
)

// blurKernel is the fixed 3×3 convolution applied once per edge-blur
// level after the outline stage.
const blurKernel = "1 2 1 2 4 2 1 2 1"

// buildFilter assembles a single SVG filter combining the outline and
// blur stages for this run. Returns nil when neither stage produces
// content. w and h are the outline half-axes in output pixels, already
// clamped non-negative.
func (s *StyleState) buildFilter(w, h float64, outlineColor ass.Color) *FilterDef {
	hasOutline := w > 0 || h > 0
	hasBlur := s.gaussianBlur > 0 || s.blur > 0
	if !hasOutline && !hasBlur {
		return nil
	}

	id := fmt.Sprintf("assweb-filter-%d-%d", s.id, s.nextFilterID)
	s.nextFilterID++

	filter := etree.NewElement("filter")
	filter.CreateAttr("id", id)
	// Filter region larger than the glyph box so dilations and blur
	// are not clipped.
	filter.CreateAttr("x", "-50%")
	filter.CreateAttr("y", "-50%")
	filter.CreateAttr("width", "200%")
	filter.CreateAttr("height", "200%")

	last := "SourceGraphic"

	if hasOutline {
		step := 1.0
		if s.gaussianBlur > 0 && !s.settings.PreciseOutlines {
			step = s.gaussianBlur
		}
		steps := ellipseSteps(w, h, step)
		s.log.Debug("outline filter",
			zap.Float64("width", w), zap.Float64("height", h),
			zap.Float64("step", step), zap.Int("dilations", len(steps)))

		for i, st := range steps {
			dilate := filter.CreateElement("feMorphology")
			dilate.CreateAttr("in", "SourceAlpha")
			dilate.CreateAttr("operator", "dilate")
			dilate.CreateAttr("radius", css.FormatFloat(st.X)+" "+css.FormatFloat(st.Y))
			dilate.CreateAttr("result", fmt.Sprintf("dilate-%d", i))
		}

		mask := filter.CreateElement("feMerge")
		mask.CreateAttr("result", "outline-mask")
		for i := range steps {
			mask.CreateElement("feMergeNode").CreateAttr("in", fmt.Sprintf("dilate-%d", i))
		}

		flood := filter.CreateElement("feFlood")
		flood.CreateAttr("flood-color", outlineColor.String())
		flood.CreateAttr("result", "outline-color")

		comp := filter.CreateElement("feComposite")
		comp.CreateAttr("in", "outline-color")
		comp.CreateAttr("in2", "outline-mask")
		comp.CreateAttr("operator", "in")
		comp.CreateAttr("result", "outline")

		last = "outline"
	}

	if s.gaussianBlur > 0 {
		blur := filter.CreateElement("feGaussianBlur")
		blur.CreateAttr("in", last)
		blur.CreateAttr("stdDeviation", css.FormatFloat(s.gaussianBlur))
		blur.CreateAttr("result", "gaussian")
		last = "gaussian"
	}

	for i := 0; float64(i) < s.blur; i++ {
		conv := filter.CreateElement("feConvolveMatrix")
		conv.CreateAttr("in", last)
		conv.CreateAttr("order", "3 3")
		conv.CreateAttr("kernelMatrix", blurKernel)
		conv.CreateAttr("result", fmt.Sprintf("blur-%d", i))
		last = fmt.Sprintf("blur-%d", i)
	}

	// With an outline the blurred border sits under the untouched
	// glyphs; without one the processed source is the whole output.
	if hasOutline {
		merge := filter.CreateElement("feMerge")
		merge.CreateElement("feMergeNode").CreateAttr("in", last)
		merge.CreateElement("feMergeNode").CreateAttr("in", "SourceGraphic")
	}

	return &FilterDef{ID: id, Element: filter}
}
