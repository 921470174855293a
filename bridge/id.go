package bridge

import (
	"runtime"
	"sync/atomic"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/layout"
)

// Odd multiplier spreading sequential entity ids across the seed space
const entitySeedMultiplier uint32 = 2654435761

var siteCounter atomic.Uint32

// NewSite returns a process-unique call-site id
// Assign it to a package-level variable so it stays stable across frames:
//
//	var headerSite = bridge.NewSite()
func NewSite() uint32 {
	return siteCounter.Add(1)
}

// AutoID derives the element id of a call site within an entity's binding
// The same (entity, site) pair yields the same id every frame
func AutoID(e core.Entity, site uint32) layout.ElementID {
	return layout.HashNumber(site, uint32(e)*entitySeedMultiplier)
}

// IndexedID derives the id of the index-th repetition of a call site
func IndexedID(e core.Entity, site, index uint32) layout.ElementID {
	return AutoID(e, layout.HashNumber(index, site).ID)
}

// callerSite folds the program counter of a caller into a site id
// skip counts frames above the function calling callerSite
func callerSite(skip int) uint32 {
	pc, _, _, ok := runtime.Caller(skip + 2)
	if !ok {
		return 0
	}
	return uint32(pc) ^ uint32(uint64(pc)>>32)
}
