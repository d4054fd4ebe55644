package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/storey/pkg/building"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pagodaTOML = `
name = "pagoda"
sides = 8

[[levels]]
height = 2.0
base = 1.5
top = 1.2

[[levels]]
height = 1.0
base = 1.2
top = 0.4
`

const pagodaYAML = `
name: pagoda
sides: 8
levels:
  - {height: 2, base: 1.5, top: 1.2}
  - {height: 1, base: 1.2, top: 0.4}
`

var pagoda = building.Params{
	Name:  "pagoda",
	Sides: 8,
	Levels: []building.Level{
		{Height: 2, BaseRadius: 1.5, TopRadius: 1.2},
		{Height: 1, BaseRadius: 1.2, TopRadius: 0.4},
	},
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	p, err := Load(writeFile(t, "pagoda.toml", pagodaTOML))
	require.NoError(t, err)
	assert.Equal(t, pagoda, p)
}

func TestLoadYAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		p, err := Load(writeFile(t, "pagoda"+ext, pagodaYAML))
		require.NoError(t, err, ext)
		assert.Equal(t, pagoda, p, ext)
	}
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	p, err := Load(writeFile(t, "wide.toml", "sides = 40\n[[levels]]\nheight = 1.0\nbase = 1.0\ntop = 1.0\n"))
	require.NoError(t, err)
	assert.Equal(t, 40, p.Sides)
	assert.ErrorIs(t, p.Validate(), building.ErrInvalidParameter)

	p, err = Load(writeFile(t, "nosides.yaml", "levels:\n  - {height: 1, base: 1, top: 1}\n"))
	require.NoError(t, err)
	assert.Zero(t, p.Sides)
	require.Len(t, p.Levels, 1)
}

func TestLevelsKeyMatchesAcrossFormats(t *testing.T) {
	fromTOML, err := Load(writeFile(t, "tower.toml", "[[levels]]\nheight = 1.0\nbase = 2.0\ntop = 1.0\n"))
	require.NoError(t, err)
	fromYAML, err := Load(writeFile(t, "tower.yaml", "levels:\n  - {height: 1, base: 2, top: 1}\n"))
	require.NoError(t, err)
	assert.Equal(t, fromTOML, fromYAML)

	_, err = Load(writeFile(t, "singular.toml", "[[level]]\nheight = 1.0\nbase = 2.0\ntop = 1.0\n"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "typo.toml", "sides = 6\nsidez = 7\n"))
	assert.Error(t, err)

	_, err = DecodeYAML(strings.NewReader("sides: 6\nlevels:\n  - {height: 1, bottom: 1, top: 1}\n"))
	assert.Error(t, err)
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load(writeFile(t, "pagoda.json", "{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
