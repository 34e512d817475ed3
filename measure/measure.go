// Package measure provides an OpenType-backed text measurement surface.
// It exists for embeddings that have no rendering surface of their own
// to calibrate font sizes against; anything that can report a rendered
// line-box height can replace it.
package measure

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontBank parses OpenType fonts and measures their line boxes. It
// implements the renderer's measurement capability: LineHeight returns
// the line-box height in pixels for a family at a pixel size.
//
// Registration happens up front, before any line render; after that the
// bank is read-only and safe for concurrent measurement.
type FontBank struct {
	log   *zap.Logger
	fonts map[string]*sfnt.Font
}

// NewFontBank returns an empty bank.
func NewFontBank(log *zap.Logger) *FontBank {
	if log == nil {
		log = zap.NewNop()
	}
	return &FontBank{
		log:   log.Named("fontbank"),
		fonts: make(map[string]*sfnt.Font),
	}
}

// Register parses data as an OpenType font and stores it under family.
func (b *FontBank) Register(family string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("unable to parse font %q: %w", family, err)
	}
	b.fonts[family] = f
	b.log.Debug("registered font", zap.String("family", family), zap.Int("bytes", len(data)))
	return nil
}

// RegisterAll registers every font in the map, accumulating failures so
// one broken font does not hide the others.
func (b *FontBank) RegisterAll(fonts map[string][]byte) error {
	var err error
	for family, data := range fonts {
		err = multierr.Append(err, b.Register(family, data))
	}
	return err
}

// LineHeight returns the rendered line-box height in pixels for family
// at the given pixel size. An unregistered family measures as its
// nominal size, which leaves font-size calibration a no-op for it.
func (b *FontBank) LineHeight(family string, size float64) float64 {
	f, ok := b.fonts[family]
	if !ok {
		b.log.Warn("font not registered, using nominal size", zap.String("family", family))
		return size
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		b.log.Warn("unable to create face", zap.String("family", family), zap.Error(err))
		return size
	}
	defer face.Close()

	return float64(face.Metrics().Height) / 64
}
