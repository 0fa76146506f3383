//go:build unit
// +build unit

package deploy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTree lays out a minimal deployment tree with one active prod IOC:
// the redirector link points at the boot binary under the release's bin
// directory, like configure-ioc leaves it.
func newTree(t *testing.T) (root string) {
	t.Helper()
	root = t.TempDir()
	top := filepath.Join(root, "prod", "R3.14.12.6", "ioc", "mcs", "cp", "1-2-BR314")
	boot := filepath.Join(top, "bin", "RTEMS-mvme2307", "mcs-cp-ioc.boot")
	require.NoError(t, os.MkdirAll(filepath.Dir(boot), 0o755))
	require.NoError(t, os.WriteFile(boot, []byte("boot"), 0o644))

	redirector := filepath.Join(root, "prod", "redirector")
	require.NoError(t, os.MkdirAll(redirector, 0o755))
	require.NoError(t, os.Symlink(boot, filepath.Join(redirector, "mcs-cp-ioc")))

	work := filepath.Join(root, "work", "R3.14.12.6", "ioc", "mcs", "cp")
	require.NoError(t, os.MkdirAll(work, 0o755))
	return root
}

func TestResolveCurrent(t *testing.T) {
	root := newTree(t)
	r := NewResolver(root)

	e, err := r.ResolveCurrent("mcs-cp-ioc")
	require.NoError(t, err)
	require.Equal(t, "mcs-cp-ioc", e.Name)
	require.Equal(t, MaturityProd, e.Maturity)
	require.Equal(t, "R3.14.12.6", e.EpicsVersion)
	require.Equal(t, "mcs", e.TargetName)
	require.Equal(t, "cp", e.Site)
	require.Equal(t, "1-2-BR314", e.Release)
	require.Equal(t, "RTEMS-mvme2307", e.BSP)
	require.Equal(t, "mcs-cp-ioc.boot", e.Boot)
	require.Equal(t, filepath.Join(root, "prod/R3.14.12.6/ioc/mcs/cp/1-2-BR314"), e.Path)
}

func TestResolveCurrent_ChainedLinks(t *testing.T) {
	root := newTree(t)
	redirector := filepath.Join(root, "prod", "redirector")
	// A link to a link still resolves to the final boot binary.
	require.NoError(t, os.Symlink(filepath.Join(redirector, "mcs-cp-ioc"), filepath.Join(redirector, "alias-ioc")))

	e, err := NewResolver(root).ResolveCurrent("alias-ioc")
	require.NoError(t, err)
	require.Equal(t, "alias-ioc", e.Name)
	require.Equal(t, "1-2-BR314", e.Release)
}

func TestResolveCurrent_MissingLink(t *testing.T) {
	r := NewResolver(newTree(t))

	_, err := r.ResolveCurrent("gcal-mk-ioc")
	require.ErrorIs(t, err, ErrEntityNotFound)

	var notFound *EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "gcal-mk-ioc", notFound.Name)
}

func TestResolveCurrent_NoBinSegment(t *testing.T) {
	root := newTree(t)
	target := filepath.Join(root, "prod", "R3.14.12.6", "ioc", "mcs", "cp", "1-2-BR314")
	require.NoError(t, os.Symlink(target, filepath.Join(root, "prod", "redirector", "odd-ioc")))

	_, err := NewResolver(root).ResolveCurrent("odd-ioc")
	require.ErrorIs(t, err, ErrNonStandardDeployment)

	var nonStandard *NonStandardDeploymentError
	require.ErrorAs(t, err, &nonStandard)
	require.Equal(t, "odd-ioc", nonStandard.Link)
}

func TestResolveSpec_Numeric(t *testing.T) {
	root := newTree(t)
	e, err := NewResolver(root).ResolveSpec(ParseSpec("mcs:1-2-BR314"), "R3.14.12.6", "cp")
	require.NoError(t, err)
	require.Equal(t, "mcs-cp-ioc", e.Name)
	require.Equal(t, "1-2-BR314", e.Release)
	require.False(t, e.Baseline)
}

func TestResolveSpec_Work(t *testing.T) {
	root := newTree(t)
	e, err := NewResolver(root).ResolveSpec(ParseSpec("mcs:work"), "R3.14.12.6", "cp")
	require.NoError(t, err)
	require.Equal(t, MaturityWork, e.Maturity)
	require.Equal(t, "", e.Release)
	require.Equal(t, "work", e.Version())
}

func TestResolveSpec_ExplicitPath(t *testing.T) {
	root := newTree(t)
	top := filepath.Join(root, "prod", "R3.14.12.6", "ioc", "mcs", "cp", "1-2-BR314")
	e, err := NewResolver(root).ResolveSpec(ParseSpec("mcs:"+top), "R3.14.12.6", "cp")
	require.NoError(t, err)
	require.Equal(t, MaturityProd, e.Maturity)
	require.Equal(t, top, e.Path)
}

func TestResolveSpec_DefaultsToCurrent(t *testing.T) {
	root := newTree(t)
	e, err := NewResolver(root).ResolveSpec(ParseSpec("mcs-cp-ioc"), "R3.14.12.6", "cp")
	require.NoError(t, err)
	require.Equal(t, "1-2-BR314", e.Release)
}

func TestResolveSpec_SiteOverride(t *testing.T) {
	root := newTree(t)
	// Default site mk, spec says cp: the spec wins.
	e, err := NewResolver(root).ResolveSpec(ParseSpec("mcs/cp:1-2-BR314"), "R3.14.12.6", "mk")
	require.NoError(t, err)
	require.Equal(t, "cp", e.Site)
}

func TestResolveSpec_UnknownVersion(t *testing.T) {
	root := newTree(t)
	_, err := NewResolver(root).ResolveSpec(ParseSpec("mcs:9-9"), "R3.14.12.6", "cp")
	require.ErrorIs(t, err, ErrEntityNotFound)

	var notFound *EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "mcs", notFound.Name)
	require.Contains(t, notFound.Path, "9-9")
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		in   string
		want Spec
	}{
		{"mcs:current", Spec{Target: "mcs", Version: "current"}},
		{"mcs", Spec{Target: "mcs", Version: "current"}},
		{"mcs/cp:1-2", Spec{Target: "mcs", Site: "cp", Version: "1-2"}},
		{"*mcs:work", Spec{Target: "mcs", Version: "work", Baseline: true}},
		{"mcs:/some/path", Spec{Target: "mcs", Version: "/some/path"}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseSpec(tt.in), "spec %q", tt.in)
	}
}
