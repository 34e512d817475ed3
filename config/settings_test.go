package config

import (
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
	if !Default().EnableSVG {
		t.Error("filter path should be the default")
	}
}

func TestLoad(t *testing.T) {
	data := []byte(`
enable_svg: false
precise_outlines: true
fallback_fonts: [Verdana, sans-serif]
font_map:
  Open Sans: [Open Sans, Lato]
`)
	s, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.EnableSVG || !s.PreciseOutlines {
		t.Errorf("flags not applied: %+v", s)
	}
	if len(s.FallbackFonts) != 2 || s.FallbackFonts[0] != "Verdana" {
		t.Errorf("fallback fonts = %v", s.FallbackFonts)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	s, err := Load([]byte("precise_outlines: true\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.EnableSVG {
		t.Error("unset fields should keep their defaults")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	if _, err := Load([]byte("enable_svg: [")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidateAccumulates(t *testing.T) {
	s := Default()
	s.FontMap = map[string][]string{
		"":     nil,
		"Lato": {""},
	}
	err := s.Validate()
	if err == nil {
		t.Fatal("expected validation failures")
	}
	// Empty name, empty family list and empty mapped family are three
	// independent failures and all must surface.
	if got := len(multierr.Errors(err)); got != 3 {
		t.Errorf("got %d errors (%v), want 3", got, err)
	}
}

func TestFamilies(t *testing.T) {
	s := Default()
	s.FallbackFonts = []string{"Arial", "sans-serif"}
	s.FontMap = map[string][]string{"Script Font": {"Real One", "Real Two"}}

	tests := []struct {
		name string
		font string
		want string
	}{
		{"mapped", "Script Font", "Real One,Real Two,Arial,sans-serif"},
		{"unmapped", "Lato", "Lato,Arial,sans-serif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Join(s.Families(tt.font), ","); got != tt.want {
				t.Errorf("Families(%q) = %q, want %q", tt.font, got, tt.want)
			}
		})
	}
}
