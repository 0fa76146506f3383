// Package deploy models deployed entities (IOC instances and support
// modules) and decodes the fixed path convention
// <root>/<maturity>/<epics>/<area>/<target>[/<site>][/<release>] into
// structured identity.
package deploy

// Maturity is the software maturity stage of a deployed entity.
// Unknown doubles as the permissive fallback for test and otherwise
// ill-formed deployments.
type Maturity int

const (
	MaturityUnknown Maturity = iota
	MaturityProd
	MaturityWork
)

// String returns the directory name the maturity maps to in the tree.
func (m Maturity) String() string {
	switch m {
	case MaturityProd:
		return "prod"
	case MaturityWork:
		return "work"
	default:
		return "test"
	}
}

// ParseMaturity maps a path segment to a Maturity. Anything that is not
// prod or work classifies as unknown.
func ParseMaturity(s string) Maturity {
	switch s {
	case "prod":
		return MaturityProd
	case "work":
		return MaturityWork
	default:
		return MaturityUnknown
	}
}

// Area distinguishes IOC instances from shared support modules.
type Area string

const (
	AreaIOC     Area = "ioc"
	AreaSupport Area = "support"
)

// Entity is one deployed unit. It is constructed by Decode or by the
// Resolver, never persisted, and immutable after construction.
type Entity struct {
	// Name is the display label: the redirector link name, the
	// <target>-<site>-ioc convention, or the support module name.
	Name         string
	Area         Area
	TargetName   string
	Site         string // empty for support modules
	Maturity     Maturity
	EpicsVersion string
	Release      string // empty unless maturity is prod
	BSP          string // e.g. RTEMS-mvme2307, from a redirector link target
	Boot         string // boot image name, from a redirector link target
	Path         string // deployment top directory, when known
	Baseline     bool
}

// Version returns a non-empty version string for printing: the release
// when one exists, the maturity otherwise.
func (e Entity) Version() string {
	if e.Release != "" {
		return e.Release
	}
	return e.Maturity.String()
}

// IOCName builds the conventional IOC display name from a target name and
// a site, e.g. ("mcs", "cp") -> "mcs-cp-ioc".
func IOCName(target, site string) string {
	return target + "-" + site + "-ioc"
}

// Sites are the telescope sites entities deploy to: Cerro Pachón and
// Mauna Kea.
var Sites = []string{"cp", "mk"}
