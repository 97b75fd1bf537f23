package rendering

import (
	"os"
	"path/filepath"
)

// Font family names as exposed to the document stylesheet.
const (
	FamilyDefault = "dejavusans"
	FamilyBengali = "notosansbengali"
	// FamilyBengaliAlias shadows the engine's built-in Bengali fallback
	// family so script substitution lands on the bundled Noto face.
	FamilyBengaliAlias = "freeserif"
	// FamilyCustom is the family name for a shop-uploaded font.
	FamilyCustom = "srpos-custom"
)

// Bundled font file names, relative to the font directory.
const (
	fileDejaVu        = "DejaVuSans.ttf"
	fileDejaVuBold    = "DejaVuSans-Bold.ttf"
	fileBengali       = "NotoSansBengali-Regular.ttf"
	fileBengaliBold   = "NotoSansBengali-Bold.ttf"
)

// BengaliFontFiles returns the bundled Bengali font file names, relative to
// the font directory. The print view links them in its @font-face rules.
func BengaliFontFiles() (regular, bold string) {
	return fileBengali, fileBengaliBold
}

// FontConfigurator builds the engine setup from the bundled font directory
// and the shop's document settings.
type FontConfigurator struct {
	// FontDir is the directory holding the bundled .ttf files.
	FontDir string
}

// Configure assembles an EngineConfig. customFontFile is the absolute path
// of a shop-uploaded font, or empty. A custom font only becomes the default
// family when the Bengali bundle is absent; otherwise it would break the
// engine's script substitution for Bengali runs.
func (c FontConfigurator) Configure(customFontFile string, watermark *WatermarkSpec) EngineConfig {
	cfg := EngineConfig{
		DefaultFamily: FamilyDefault,
		PageSize:      "A4",
		Margins:       DefaultMargins(),
		Watermark:     watermark,
	}

	if f := c.bundled(fileDejaVu); f != "" {
		cfg.Fonts = append(cfg.Fonts, FontSpec{Family: FamilyDefault, File: f})
	}
	if f := c.bundled(fileDejaVuBold); f != "" {
		cfg.Fonts = append(cfg.Fonts, FontSpec{Family: FamilyDefault, Style: "B", File: f})
	}

	hasBengali := false
	if f := c.bundled(fileBengali); f != "" {
		hasBengali = true
		cfg.Fonts = append(cfg.Fonts, FontSpec{
			Family: FamilyBengali,
			File:   f,
			Alias:  FamilyBengaliAlias,
		})
		if b := c.bundled(fileBengaliBold); b != "" {
			cfg.Fonts = append(cfg.Fonts, FontSpec{
				Family: FamilyBengali,
				Style:  "B",
				File:   b,
				Alias:  FamilyBengaliAlias,
			})
		}
		cfg.BackupFamilies = append(cfg.BackupFamilies, FamilyBengali)
	}
	cfg.BackupFamilies = append(cfg.BackupFamilies, FamilyDefault)

	if customFontFile != "" && fileExists(customFontFile) {
		cfg.Fonts = append(cfg.Fonts, FontSpec{Family: FamilyCustom, File: customFontFile})
		if !hasBengali {
			cfg.DefaultFamily = FamilyCustom
		}
	}

	return cfg
}

func (c FontConfigurator) bundled(name string) string {
	path := filepath.Join(c.FontDir, name)
	if !fileExists(path) {
		return ""
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
