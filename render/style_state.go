package render

import (
	"go.uber.org/zap"

	"assweb/ass"
	"assweb/config"
	"assweb/css"
)

// BoldValue is either an on/off toggle or an explicit numeric font
// weight. Scripts say \b1 and \b0 but also \b300, \b700 and friends.
type BoldValue struct {
	Weight  float64 // numeric weight, meaningful when Numeric is true
	On      bool    // toggle, meaningful when Numeric is false
	Numeric bool
}

// BoldToggle returns a toggle value.
func BoldToggle(on bool) BoldValue { return BoldValue{On: on} }

// BoldWeight returns an explicit numeric weight.
func BoldWeight(w float64) BoldValue { return BoldValue{Weight: w, Numeric: true} }

// fontWeight renders the value for a font-weight declaration.
func (b BoldValue) fontWeight() string {
	switch {
	case b.Numeric:
		return css.FormatFloat(b.Weight)
	case b.On:
		return "bold"
	default:
		return "normal"
	}
}

// StyleState owns the current style attribute values for one dialogue
// line instance. The tag-processing layer mutates it through setters as
// it walks the line's override tags; Resolve reads it once per emitted
// run. It is created per line render and never shared across concurrent
// renders.
//
// Attributes fall into three default groups. Most attributes, when set
// to nil ("unset"), fall back to the base style's value. Rotation X/Y,
// skew X/Y and the four alpha overrides fall back to absent instead.
// The two blur strengths fall back to zero. These rules must not be
// conflated: an unset rotation-X is no rotation at all, not the base
// style's rotation.
type StyleState struct {
	id  int
	log *zap.Logger

	settings *config.Settings
	cache    *FontSizeCache
	surface  Surface

	defaultStyle *ass.Style

	// scaleX and scaleY convert script coordinates to output pixels
	// (output resolution over script resolution). They are fixed for
	// the line and not reachable from override tags.
	scaleX, scaleY float64

	italic    bool
	bold      BoldValue
	underline bool
	strikeOut bool

	outlineWidth  float64
	outlineHeight float64
	shadowDepthX  float64
	shadowDepthY  float64

	fontName      string
	fontSize      float64
	fontScaleX    float64
	fontScaleY    float64
	letterSpacing float64

	rotationX *float64
	rotationY *float64
	rotationZ float64
	skewX     *float64
	skewY     *float64

	primaryColor   ass.Color
	secondaryColor ass.Color
	outlineColor   ass.Color
	shadowColor    ass.Color

	primaryAlpha   *float64
	secondaryAlpha *float64
	outlineAlpha   *float64
	shadowAlpha    *float64

	blur         float64
	gaussianBlur float64

	nextFilterID int
}

// NewStyleState creates the style state for one line render. id is the
// owning line's stable identity, used to namespace generated filter
// ids. style is the line's base style and is never mutated.
func NewStyleState(id int, style *ass.Style, scaleX, scaleY float64, settings *config.Settings, cache *FontSizeCache, surface Surface, log *zap.Logger) *StyleState {
	if log == nil {
		log = zap.NewNop()
	}
	if settings == nil {
		settings = config.Default()
	}
	s := &StyleState{
		id:           id,
		log:          log.Named("style"),
		settings:     settings,
		cache:        cache,
		surface:      surface,
		defaultStyle: style,
		scaleX:       scaleX,
		scaleY:       scaleY,
	}
	s.Reset(nil)
	return s
}

// Reset reinitializes every attribute from style, or from the base
// style when style is nil. Rotation X/Y and skew X/Y become absent, the
// blur strengths become zero and the alpha overrides become absent.
// Callable repeatedly; a style-change tag mid-line resets onto the new
// named style without touching output already resolved.
func (s *StyleState) Reset(style *ass.Style) {
	if style == nil {
		style = s.defaultStyle
	}

	s.italic = style.Italic
	s.bold = BoldToggle(style.Bold)
	s.underline = style.Underline
	s.strikeOut = style.StrikeOut

	s.outlineWidth = style.OutlineThickness
	s.outlineHeight = style.OutlineThickness
	s.shadowDepthX = style.ShadowDepth
	s.shadowDepthY = style.ShadowDepth

	s.fontName = style.FontName
	s.fontSize = style.FontSize
	s.fontScaleX = style.FontScaleX
	s.fontScaleY = style.FontScaleY
	s.letterSpacing = style.LetterSpacing

	s.rotationX = nil
	s.rotationY = nil
	s.rotationZ = style.RotationZ
	s.skewX = nil
	s.skewY = nil

	s.primaryColor = style.PrimaryColor
	s.secondaryColor = style.SecondaryColor
	s.outlineColor = style.OutlineColor
	s.shadowColor = style.ShadowColor

	s.primaryAlpha = nil
	s.secondaryAlpha = nil
	s.outlineAlpha = nil
	s.shadowAlpha = nil

	s.blur = 0
	s.gaussianBlur = 0
}

// Setters accept a concrete value or nil for "unset". All are total:
// out-of-range values are stored as-is and only clamped where resolve
// geometry requires a non-negative radius.

// SetItalic sets the italic flag; nil restores the base style's value.
func (s *StyleState) SetItalic(v *bool) {
	s.italic = boolOr(v, s.defaultStyle.Italic)
}

// SetBold sets the weight; nil restores the base style's toggle.
func (s *StyleState) SetBold(v *BoldValue) {
	if v == nil {
		s.bold = BoldToggle(s.defaultStyle.Bold)
		return
	}
	s.bold = *v
}

// SetUnderline sets the underline flag; nil restores the base style's value.
func (s *StyleState) SetUnderline(v *bool) {
	s.underline = boolOr(v, s.defaultStyle.Underline)
}

// SetStrikeOut sets the strike-through flag; nil restores the base style's value.
func (s *StyleState) SetStrikeOut(v *bool) {
	s.strikeOut = boolOr(v, s.defaultStyle.StrikeOut)
}

// SetOutline sets both outline dimensions; nil restores the base
// style's uniform thickness.
func (s *StyleState) SetOutline(v *float64) {
	s.SetOutlineWidth(v)
	s.SetOutlineHeight(v)
}

// SetOutlineWidth sets the horizontal outline thickness.
func (s *StyleState) SetOutlineWidth(v *float64) {
	s.outlineWidth = floatOr(v, s.defaultStyle.OutlineThickness)
}

// SetOutlineHeight sets the vertical outline thickness.
func (s *StyleState) SetOutlineHeight(v *float64) {
	s.outlineHeight = floatOr(v, s.defaultStyle.OutlineThickness)
}

// SetShadowDepth sets both shadow offsets; nil restores the base
// style's uniform depth.
func (s *StyleState) SetShadowDepth(v *float64) {
	s.SetShadowDepthX(v)
	s.SetShadowDepthY(v)
}

// SetShadowDepthX sets the horizontal shadow offset.
func (s *StyleState) SetShadowDepthX(v *float64) {
	s.shadowDepthX = floatOr(v, s.defaultStyle.ShadowDepth)
}

// SetShadowDepthY sets the vertical shadow offset.
func (s *StyleState) SetShadowDepthY(v *float64) {
	s.shadowDepthY = floatOr(v, s.defaultStyle.ShadowDepth)
}

// SetFontName sets the font family; nil restores the base style's font.
func (s *StyleState) SetFontName(v *string) {
	s.fontName = stringOr(v, s.defaultStyle.FontName)
}

// SetFontSize sets the font size; nil restores the base style's size.
func (s *StyleState) SetFontSize(v *float64) {
	s.fontSize = floatOr(v, s.defaultStyle.FontSize)
}

// SetFontScaleX sets the horizontal font scale factor.
func (s *StyleState) SetFontScaleX(v *float64) {
	s.fontScaleX = floatOr(v, s.defaultStyle.FontScaleX)
}

// SetFontScaleY sets the vertical font scale factor.
func (s *StyleState) SetFontScaleY(v *float64) {
	s.fontScaleY = floatOr(v, s.defaultStyle.FontScaleY)
}

// SetLetterSpacing sets the letter spacing; nil restores the base style's value.
func (s *StyleState) SetLetterSpacing(v *float64) {
	s.letterSpacing = floatOr(v, s.defaultStyle.LetterSpacing)
}

// SetRotationX sets the X-axis rotation in degrees; nil means no rotation.
func (s *StyleState) SetRotationX(v *float64) {
	s.rotationX = cloneFloat(v)
}

// SetRotationY sets the Y-axis rotation in degrees; nil means no rotation.
func (s *StyleState) SetRotationY(v *float64) {
	s.rotationY = cloneFloat(v)
}

// SetRotationZ sets the Z-axis rotation in degrees; nil restores the
// base style's angle.
func (s *StyleState) SetRotationZ(v *float64) {
	s.rotationZ = floatOr(v, s.defaultStyle.RotationZ)
}

// SetSkewX sets the X shear factor; nil means no shear.
func (s *StyleState) SetSkewX(v *float64) {
	s.skewX = cloneFloat(v)
}

// SetSkewY sets the Y shear factor; nil means no shear.
func (s *StyleState) SetSkewY(v *float64) {
	s.skewY = cloneFloat(v)
}

// SetPrimaryColor sets the fill color; nil restores the base style's color.
func (s *StyleState) SetPrimaryColor(v *ass.Color) {
	s.primaryColor = colorOr(v, s.defaultStyle.PrimaryColor)
}

// SetSecondaryColor sets the karaoke pre-highlight color.
func (s *StyleState) SetSecondaryColor(v *ass.Color) {
	s.secondaryColor = colorOr(v, s.defaultStyle.SecondaryColor)
}

// SetOutlineColor sets the outline color; nil restores the base style's color.
func (s *StyleState) SetOutlineColor(v *ass.Color) {
	s.outlineColor = colorOr(v, s.defaultStyle.OutlineColor)
}

// SetShadowColor sets the shadow color; nil restores the base style's color.
func (s *StyleState) SetShadowColor(v *ass.Color) {
	s.shadowColor = colorOr(v, s.defaultStyle.ShadowColor)
}

// SetPrimaryAlpha overrides the fill color's alpha; nil keeps the
// color's own alpha. Resolution of the override is deferred to Resolve.
func (s *StyleState) SetPrimaryAlpha(v *float64) {
	s.primaryAlpha = cloneFloat(v)
}

// SetSecondaryAlpha overrides the secondary color's alpha.
func (s *StyleState) SetSecondaryAlpha(v *float64) {
	s.secondaryAlpha = cloneFloat(v)
}

// SetOutlineAlpha overrides the outline color's alpha.
func (s *StyleState) SetOutlineAlpha(v *float64) {
	s.outlineAlpha = cloneFloat(v)
}

// SetShadowAlpha overrides the shadow color's alpha.
func (s *StyleState) SetShadowAlpha(v *float64) {
	s.shadowAlpha = cloneFloat(v)
}

// SetBlur sets the edge-blur strength; nil resets to zero.
func (s *StyleState) SetBlur(v *float64) {
	s.blur = floatOr(v, 0)
}

// SetGaussianBlur sets the Gaussian blur radius; nil resets to zero.
func (s *StyleState) SetGaussianBlur(v *float64) {
	s.gaussianBlur = floatOr(v, 0)
}

// LineBreak returns a break marker whose vertical spacing matches the
// current font size at output scale.
func (s *StyleState) LineBreak() LineBreak {
	return LineBreak{LineHeight: s.scaleY * s.fontSize}
}

// Base-default resolution helpers. Kept separate from the absent and
// zero groups above so the three default policies stay visible at each
// setter.

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func colorOr(v *ass.Color, def ass.Color) ass.Color {
	if v == nil {
		return def
	}
	return *v
}

// cloneFloat copies the pointee so later caller mutation cannot leak in.
func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
