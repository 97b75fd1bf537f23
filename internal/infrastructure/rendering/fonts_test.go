package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFakeFont(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("\x00\x01\x00\x00"), 0o644))
	return path
}

func familyBy(cfg EngineConfig, family, style string) (FontSpec, bool) {
	for _, f := range cfg.Fonts {
		if f.Family == family && f.Style == style {
			return f, true
		}
	}
	return FontSpec{}, false
}

func TestConfigureFullBundle(t *testing.T) {
	dir := t.TempDir()
	writeFakeFont(t, dir, "DejaVuSans.ttf")
	writeFakeFont(t, dir, "DejaVuSans-Bold.ttf")
	writeFakeFont(t, dir, "NotoSansBengali-Regular.ttf")
	writeFakeFont(t, dir, "NotoSansBengali-Bold.ttf")

	cfg := FontConfigurator{FontDir: dir}.Configure("", nil)

	assert.Equal(t, FamilyDefault, cfg.DefaultFamily)
	assert.Equal(t, "A4", cfg.PageSize)
	assert.Equal(t, []string{FamilyBengali, FamilyDefault}, cfg.BackupFamilies)

	bn, ok := familyBy(cfg, FamilyBengali, "")
	require.True(t, ok)
	assert.Equal(t, FamilyBengaliAlias, bn.Alias)
	_, ok = familyBy(cfg, FamilyBengali, "B")
	assert.True(t, ok)
	_, ok = familyBy(cfg, FamilyDefault, "B")
	assert.True(t, ok)
}

func TestConfigureCustomFontWithoutBengali(t *testing.T) {
	dir := t.TempDir()
	writeFakeFont(t, dir, "DejaVuSans.ttf")
	custom := writeFakeFont(t, dir, "ShopFont.ttf")

	cfg := FontConfigurator{FontDir: dir}.Configure(custom, nil)

	assert.Equal(t, FamilyCustom, cfg.DefaultFamily)
	spec, ok := familyBy(cfg, FamilyCustom, "")
	require.True(t, ok)
	assert.Equal(t, custom, spec.File)
}

func TestConfigureCustomFontNeverDefaultWithBengali(t *testing.T) {
	dir := t.TempDir()
	writeFakeFont(t, dir, "DejaVuSans.ttf")
	writeFakeFont(t, dir, "NotoSansBengali-Regular.ttf")
	custom := writeFakeFont(t, dir, "ShopFont.ttf")

	cfg := FontConfigurator{FontDir: dir}.Configure(custom, nil)

	assert.Equal(t, FamilyDefault, cfg.DefaultFamily)
	_, ok := familyBy(cfg, FamilyCustom, "")
	assert.True(t, ok, "custom family still registered")
}

func TestConfigureMissingCustomFontIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFakeFont(t, dir, "DejaVuSans.ttf")

	cfg := FontConfigurator{FontDir: dir}.Configure(filepath.Join(dir, "missing.ttf"), nil)

	assert.Equal(t, FamilyDefault, cfg.DefaultFamily)
	_, ok := familyBy(cfg, FamilyCustom, "")
	assert.False(t, ok)
}

func TestConfigureEmptyFontDir(t *testing.T) {
	cfg := FontConfigurator{FontDir: t.TempDir()}.Configure("", nil)

	assert.Empty(t, cfg.Fonts)
	assert.Equal(t, FamilyDefault, cfg.DefaultFamily)
	assert.Equal(t, []string{FamilyDefault}, cfg.BackupFamilies)
}
