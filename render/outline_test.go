package render

import (
	"math"
	"testing"

	"assweb/ass"
)

func TestEllipseStepsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want []DilationStep
	}{
		{"both zero", 0, 0, []DilationStep{{0, 0}}},
		{"width zero", 0, 3, []DilationStep{{0, 3}}},
		{"height zero", 4, 0, []DilationStep{{4, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ellipseSteps(tt.w, tt.h, 1)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d steps, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("step %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEllipseStepsWalksShorterAxis(t *testing.T) {
	// Wide ellipse: the vertical axis is shorter, so y positions are
	// the integer walk and x extents come from the ellipse equation.
	steps := ellipseSteps(5, 2, 1)

	if steps[0] != (DilationStep{5, 0}) {
		t.Errorf("first step = %+v, want {5 0}", steps[0])
	}
	last := steps[len(steps)-1]
	if last.Y != 2 {
		t.Errorf("last step = %+v, want the full vertical extent", last)
	}
	for i, st := range steps[:len(steps)-1] {
		wantX := 5.0 / 2.0 * math.Sqrt(2*2-st.Y*st.Y)
		if math.Abs(st.X-wantX) > 1e-9 {
			t.Errorf("step %d = %+v, want x %v", i, st, wantX)
		}
	}
}

func TestEllipseStepsCornerIncluded(t *testing.T) {
	// A fractional extent makes the integer walk overshoot; the exact
	// corner must still be present.
	steps := ellipseSteps(2.5, 7, 1)
	last := steps[len(steps)-1]
	if last != (DilationStep{2.5, 0}) {
		t.Errorf("last step = %+v, want the exact corner {2.5 0}", last)
	}
}

func TestEllipseStepsSymmetry(t *testing.T) {
	a := ellipseSteps(2, 5, 1)
	b := ellipseSteps(5, 2, 1)

	if len(a) != len(b) {
		t.Fatalf("step counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].Y || a[i].Y != b[i].X {
			t.Errorf("step %d: %+v is not the axis swap of %+v", i, a[i], b[i])
		}
	}
}

func TestEllipseStepsCoarse(t *testing.T) {
	fine := ellipseSteps(6, 6, 1)
	coarse := ellipseSteps(6, 6, 3)
	if len(coarse) >= len(fine) {
		t.Errorf("coarse stepping produced %d steps, fine %d", len(coarse), len(fine))
	}
}

func TestStackOutlineDedup(t *testing.T) {
	shadows := stackOutline(2, 2, 0, ass.Color{A: 1})

	seen := make(map[[2]float64]int)
	for _, s := range shadows {
		seen[[2]float64{s.X, s.Y}]++
	}
	for pt, n := range seen {
		if n > 1 {
			t.Errorf("point %v emitted %d times", pt, n)
		}
	}
	if seen[[2]float64{0, 0}] != 1 {
		t.Error("origin missing")
	}
	if seen[[2]float64{0, 2}] != 1 || seen[[2]float64{0, -2}] != 1 {
		t.Error("vertical extremes missing")
	}
	if seen[[2]float64{2, 0}] != 1 || seen[[2]float64{-2, 0}] != 1 {
		t.Error("horizontal extremes missing")
	}
}

func TestStackOutlineZeroWidth(t *testing.T) {
	shadows := stackOutline(0, 3, 0, ass.Color{A: 1})

	var atTop int
	for _, s := range shadows {
		if s.X != 0 {
			t.Errorf("entry %+v off the vertical axis", s)
		}
		if s.Y == 3 {
			atTop++
		}
	}
	if atTop != 1 {
		t.Errorf("%d entries at (0, 3), want exactly one", atTop)
	}
}

func TestStackOutlineBlurRadius(t *testing.T) {
	shadows := stackOutline(1, 1, 2.5, ass.Color{A: 1})
	for _, s := range shadows {
		if s.Blur != 2.5 {
			t.Errorf("entry %+v lost the blur radius", s)
		}
	}
}

func TestStackOutlineEmpty(t *testing.T) {
	if got := stackOutline(0, 0, 0, ass.Color{A: 1}); got != nil {
		t.Errorf("got %d entries for zero outline, want none", len(got))
	}
}
