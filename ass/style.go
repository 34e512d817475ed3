// Package ass holds the value types a script's style section resolves to:
// colors with embedded alpha and the immutable per-line base style that
// inline overrides fall back to.
package ass

// Style is an immutable snapshot of a dialogue line's base style. A line
// render reads it but never mutates it; inline overrides that are reset
// to their unset state resolve back to these values.
type Style struct {
	Name string

	FontName string
	FontSize float64

	PrimaryColor   Color
	SecondaryColor Color
	OutlineColor   Color
	ShadowColor    Color

	Bold      bool
	Italic    bool
	Underline bool
	StrikeOut bool

	// OutlineThickness and ShadowDepth are the script's uniform border
	// and shadow values. Width/height and X/Y overrides both default to
	// the same uniform value.
	OutlineThickness float64
	ShadowDepth      float64

	// FontScaleX and FontScaleY are scale factors (1 means unscaled),
	// not the script's percent representation.
	FontScaleX float64
	FontScaleY float64

	LetterSpacing float64

	// RotationZ is the script's frz/angle value in degrees. X and Y
	// rotations have no base-style counterpart and default to absent.
	RotationZ float64
}
