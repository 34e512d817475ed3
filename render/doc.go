// Package render resolves the accumulated inline style state of one
// dialogue line into a backend-agnostic visual property set.
//
// The tag-processing layer drives StyleState setters and contributes
// keyframe lists to an AnimationTimeline while it walks a line's
// override tags; each time a text run is emitted it calls Resolve once
// and hands the result, together with the timeline's current snapshot,
// to the compositing backend.
//
// The package deliberately knows nothing about subtitle syntax, playback
// scheduling, or the backend's representation. Its only outward
// dependencies are two narrow capabilities: a Surface that measures a
// rendered line box for font-size calibration and a Clock that supplies
// the playback rate animations are scaled by.
package render
