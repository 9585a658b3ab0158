package domain

import "fmt"

// Portal partitions the catalog into audience segments. Each portal keys its
// own slice of the programs table; the Program shape is shared.
type Portal string

const (
	PortalYLGroups     Portal = "YL_GROUPS"
	PortalYLIndividual Portal = "YL_INDIVIDUAL"
	PortalAdults       Portal = "ADULTS"
)

// portalInfo is the single lookup table from a portal to its persistence
// namespace and the prefix used when deriving factory ids.
type portalInfo struct {
	key      string // portal_type column value
	idPrefix string // "" for the canonical set
}

var portalTable = map[Portal]portalInfo{
	PortalYLGroups:     {key: "YL_GROUPS", idPrefix: ""},
	PortalYLIndividual: {key: "YL_INDIVIDUAL", idPrefix: "ind-"},
	PortalAdults:       {key: "ADULTS", idPrefix: "adult-"},
}

// Portals returns all portals in display order.
func Portals() []Portal {
	return []Portal{PortalYLGroups, PortalYLIndividual, PortalAdults}
}

func ParsePortal(s string) (Portal, error) {
	p := Portal(s)
	if _, ok := portalTable[p]; !ok {
		return "", fmt.Errorf("unknown portal %q", s)
	}
	return p, nil
}

func (p Portal) Valid() bool {
	_, ok := portalTable[p]
	return ok
}

// Key is the value stored in the portal_type column.
func (p Portal) Key() string { return portalTable[p].key }

func (p Portal) idPrefix() string { return portalTable[p].idPrefix }
