//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultRoot, cfg.Root)
	require.Equal(t, "", cfg.EpicsVersion)
	require.Equal(t, "", cfg.Site)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GEM_SW_ROOT", "/data/gem_sw")
	t.Setenv("GEM_EPICS_RELEASE", "R3.14.12.6")
	t.Setenv("GEM_SITE", "CP")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/data/gem_sw", cfg.Root)
	require.Equal(t, "R3.14.12.6", cfg.EpicsVersion)
	// Sites are normalized to lowercase.
	require.Equal(t, "cp", cfg.Site)
}

func TestLoad_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "gemver.yaml")
	content := `
root: /data/gem_sw
epics_version: R3.14.12.4
site: mk
exclude:
  - lab
  - sim
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)
	require.Equal(t, "/data/gem_sw", cfg.Root)
	require.Equal(t, "R3.14.12.4", cfg.EpicsVersion)
	require.Equal(t, "mk", cfg.Site)
	require.Equal(t, []string{"lab", "sim"}, cfg.Exclude)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
