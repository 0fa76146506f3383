//go:build unit
// +build unit

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gemsw/gemver/pkg/deploy"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
}

func TestEpicsVersions(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"prod/R3.14.12.6",
		"prod/R3.14.12.4",
		"prod/redirector", // not an R directory
		"work/R3.14.12.6",
	)
	// Stray file with an R name must not be listed.
	require.NoError(t, os.WriteFile(filepath.Join(root, "prod", "README"), nil, 0o644))

	c := New(root)
	require.Equal(t, []string{"R3.14.12.4", "R3.14.12.6"}, c.EpicsVersions(deploy.MaturityProd))
	require.Equal(t, []string{"R3.14.12.6"}, c.EpicsVersions(deploy.MaturityWork))
	require.Equal(t, "R3.14.12.6", c.LatestEpicsVersion(deploy.MaturityProd))
}

func TestEpicsVersions_MissingMaturityDir(t *testing.T) {
	c := New(t.TempDir())
	require.Empty(t, c.EpicsVersions(deploy.MaturityProd))
	require.Equal(t, "", c.LatestEpicsVersion(deploy.MaturityProd))
}

func TestIOCListings(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"prod/R3.14.12.6/ioc/mcs/cp/1-2-BR314",
		"prod/R3.14.12.6/ioc/mcs/cp/1-3-BR314",
		"prod/R3.14.12.6/ioc/gcal/mk/2-1",
	)

	c := New(root)
	require.Equal(t, []string{"gcal", "mcs"}, c.IOCs("R3.14.12.6", deploy.MaturityProd))
	require.Equal(t, []string{"1-2-BR314", "1-3-BR314"}, c.IOCVersions("mcs", "R3.14.12.6", "cp"))
	require.Empty(t, c.IOCVersions("mcs", "R3.14.12.6", "mk"))
	require.Empty(t, c.IOCs("R9.9.9.9", deploy.MaturityProd))
}

func TestSupportModuleListings(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"prod/R3.14.12.6/support/iocStats/3-1-14-3-BR314",
		"prod/R3.14.12.6/support/astlib/1-8",
		"work/R3.14.12.6/support/astlib",
	)

	c := New(root)
	require.Equal(t, []string{"astlib", "iocStats"}, c.SupportModules("R3.14.12.6", deploy.MaturityProd))
	require.Equal(t, []string{"astlib"}, c.SupportModules("R3.14.12.6", deploy.MaturityWork))
	require.Equal(t, []string{"3-1-14-3-BR314"}, c.SupportModuleVersions("iocStats", "R3.14.12.6"))
	require.Empty(t, c.SupportModuleVersions("motor", "R3.14.12.6"))
}

func TestRedirectorLinks(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "prod/redirector")
	boot := filepath.Join(root, "boot")
	require.NoError(t, os.WriteFile(boot, nil, 0o644))
	require.NoError(t, os.Symlink(boot, filepath.Join(root, "prod/redirector/mcs-cp-ioc")))
	require.NoError(t, os.Symlink(boot, filepath.Join(root, "prod/redirector/gcal-cp-ioc")))
	// Plain files in the redirector directory are not links.
	require.NoError(t, os.WriteFile(filepath.Join(root, "prod/redirector/notes.txt"), nil, 0o644))

	c := New(root)
	require.Equal(t, []string{"gcal-cp-ioc", "mcs-cp-ioc"}, c.RedirectorLinks())
}

func TestRedirectorLinks_MissingDir(t *testing.T) {
	require.Empty(t, New(t.TempDir()).RedirectorLinks())
}
