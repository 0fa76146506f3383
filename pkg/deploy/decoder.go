package deploy

import (
	"path/filepath"
	"strings"
)

// Decode interprets path against the fixed deployment convention rooted
// at root and returns the entity it denotes.
//
// Production entities require every segment up to the release to be
// present; work entities tolerate the missing release segment. A path
// that is too short, outside the root, or under an unrecognized maturity
// or area decodes with maturity forced to unknown rather than failing:
// the tree is expected to contain legacy and partially-migrated entries.
// Note this can mask genuinely malformed deployments; callers that care
// should report unknown-maturity entities visibly.
func Decode(root, path string) Entity {
	unknown := Entity{Maturity: MaturityUnknown, Path: path}

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return unknown
	}
	segs := strings.Split(filepath.ToSlash(rel), "/")
	if len(segs) < 3 {
		return unknown
	}

	maturity := ParseMaturity(segs[0])
	if maturity == MaturityUnknown {
		return unknown
	}

	e := Entity{
		Maturity:     maturity,
		EpicsVersion: segs[1],
		Area:         Area(segs[2]),
	}

	// Number of convention segments for this area and maturity. The
	// site segment only exists for IOCs, the release only for prod.
	var want int
	switch e.Area {
	case AreaIOC:
		want = 5
	case AreaSupport:
		want = 4
	default:
		return unknown
	}
	if maturity == MaturityProd {
		want++
	}
	if len(segs) < want {
		return unknown
	}

	e.TargetName = segs[3]
	e.Name = e.TargetName
	if e.Area == AreaIOC {
		e.Site = segs[4]
		e.Name = IOCName(e.TargetName, e.Site)
	}
	if maturity == MaturityProd {
		e.Release = segs[want-1]
	}
	e.Path = filepath.Join(append([]string{root}, segs[:want]...)...)
	return e
}
