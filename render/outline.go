package render

import (
	"math"

	"assweb/ass"
)

// DilationStep is one rectangular dilation radius pair used to build up
// an elliptical outline in the filter path.
type DilationStep struct {
	X, Y float64
}

// ellipseSteps approximates an axis-aligned ellipse with half-axes w
// and h as a union of rectangular dilations. The shorter axis is walked
// in increments of step; at each position the orthogonal extent is the
// ellipse equation solved for the other axis. The exact corner is
// appended when the stepped walk overshoots it, so the union always
// reaches the full extent of both axes.
//
// A coarser step trades outline smoothness for fewer composited layers.
func ellipseSteps(w, h, step float64) []DilationStep {
	if step <= 0 {
		step = 1
	}

	switch {
	case w == 0 && h == 0:
		return []DilationStep{{0, 0}}
	case w == 0:
		return []DilationStep{{0, h}}
	case h == 0:
		return []DilationStep{{w, 0}}
	}

	var steps []DilationStep
	if w <= h {
		for x := 0.0; x <= w; x += step {
			y := h / w * math.Sqrt(w*w-x*x)
			steps = append(steps, DilationStep{x, y})
		}
		if last := steps[len(steps)-1]; last.X != w {
			steps = append(steps, DilationStep{w, 0})
		}
	} else {
		for y := 0.0; y <= h; y += step {
			x := w / h * math.Sqrt(h*h-y*y)
			steps = append(steps, DilationStep{x, y})
		}
		if last := steps[len(steps)-1]; last.Y != h {
			steps = append(steps, DilationStep{0, h})
		}
	}
	return steps
}

// stackOutline brute-forces the same ellipse as individual shadow
// entries, one per integer point of the first quadrant mirrored into
// all four. Zero axes are deduplicated so a point never appears twice.
// Cost is O(w×h); this is the compatibility path for backends without
// filter primitives and is expected to be far more expensive than the
// dilation path.
func stackOutline(w, h, blurRadius float64, color ass.Color) []Shadow {
	if w == 0 && h == 0 {
		return nil
	}

	var shadows []Shadow
	add := func(x, y float64) {
		shadows = append(shadows, Shadow{X: x, Y: y, Blur: blurRadius, Color: color})
	}

	for x := 0.0; x <= w; x++ {
		maxY := h
		if w != 0 {
			maxY = h * math.Sqrt(1-x*x/(w*w))
		}
		for y := 0.0; y <= maxY; y++ {
			add(x, y)
			if x != 0 {
				add(-x, y)
			}
			if y != 0 {
				add(x, -y)
			}
			if x != 0 && y != 0 {
				add(-x, -y)
			}
		}
	}
	return shadows
}

// clampRadius keeps filter radii non-negative. Setters accept any
// value; geometry is the only place that clamps.
func clampRadius(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
