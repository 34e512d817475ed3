package render

import (
	"fmt"
	"strings"

	"assweb/css"
)

// Keyframe is one moment of an animation: a time in seconds and the
// property values to hold at that moment. Properties are emitted
// verbatim in order.
type Keyframe struct {
	Time  float64
	Props []css.Declaration
}

// AnimationDelay pairs a generated animation name with its start offset
// in seconds. The backend materializes delays relative to playback.
type AnimationDelay struct {
	Name  string
	Delay float64
}

// AnimationTimeline accumulates independently timed keyframe sequences
// for one dialogue line into a single playback-rate-scaled timeline:
// named keyframe rule text, one composite animation directive, and an
// ordered table of per-animation start delays.
//
// Created once per line render, grows monotonically during tag
// processing and is read exactly once when the run's final output is
// produced. Never shared across concurrent renders.
type AnimationTimeline struct {
	id   int
	rate float64
	next int

	styleText strings.Builder
	directive strings.Builder
	delays    []AnimationDelay
}

// NewAnimationTimeline creates the timeline for the line identified by
// id. The clock's rate is read once here.
func NewAnimationTimeline(id int, clock Clock) *AnimationTimeline {
	return &AnimationTimeline{id: id, rate: clock.Rate()}
}

// Add appends exactly one new named animation built from keyframes.
// keyframes must be non-empty and ordered by non-decreasing time; that
// is the caller's contract and is not re-checked here.
//
// Each keyframe's percentage position is 100×(t−start)/(end−start),
// except that a zero-length animation maps every keyframe to 100%. The
// generated name is deterministic and unique within the instance.
func (t *AnimationTimeline) Add(timingFunction string, keyframes []Keyframe) {
	start := keyframes[0].Time
	end := keyframes[len(keyframes)-1].Time

	var rules strings.Builder
	for _, kf := range keyframes {
		position := 100.0
		if end != start {
			position = 100 * (kf.Time - start) / (end - start)
		}
		rules.WriteString("\t" + css.FormatFloat(position) + "% {\n")
		for _, d := range kf.Props {
			rules.WriteString("\t\t" + d.Property + ": " + d.Value + ";\n")
		}
		rules.WriteString("\t}\n")
	}

	name := fmt.Sprintf("animation-%d-%d", t.id, t.next)
	t.next++

	for _, atRule := range []string{"@-webkit-keyframes", "@keyframes"} {
		t.styleText.WriteString(atRule + " " + name + " {\n")
		t.styleText.WriteString(rules.String())
		t.styleText.WriteString("}\n")
	}

	if t.directive.Len() > 0 {
		t.directive.WriteString(", ")
	}
	t.directive.WriteString(name + " " + css.FormatFloat((end-start)/t.rate) + "s " + timingFunction)

	t.delays = append(t.delays, AnimationDelay{Name: name, Delay: start})
}

// Empty reports whether no animation has been added.
func (t *AnimationTimeline) Empty() bool {
	return t.next == 0
}

// StyleText returns the accumulated keyframe rule blocks, prefixed and
// standard forms both, ready to append to the shared style sheet.
func (t *AnimationTimeline) StyleText() string {
	return t.styleText.String()
}

// Directive returns the comma-joined "name duration timing-function"
// value applying every accumulated animation at once.
func (t *AnimationTimeline) Directive() string {
	return t.directive.String()
}

// Delays returns the per-animation start offsets in creation order. The
// returned slice is owned by the timeline and must not be modified.
func (t *AnimationTimeline) Delays() []AnimationDelay {
	return t.delays
}

// Delay looks up the start offset recorded for name.
func (t *AnimationTimeline) Delay(name string) (float64, bool) {
	for _, d := range t.delays {
		if d.Name == name {
			return d.Delay, true
		}
	}
	return 0, false
}
