package graph

// Universe holds the adjacency list of star systems within support range of
// each other, plus the owner of each system.
type Universe struct {
	// Adj maps system name -> names of adjacent systems
	Adj map[string][]string
	// SystemOwner maps system name -> owning faction
	SystemOwner map[string]string
}

// NewUniverse creates an empty Universe with initialized maps.
func NewUniverse() *Universe {
	return &Universe{
		Adj:         make(map[string][]string),
		SystemOwner: make(map[string]string),
	}
}

// AddLink adds a one-way link. Adjacency computed from distances is
// symmetric, so callers add both directions.
func (u *Universe) AddLink(fromSystem, toSystem string) {
	u.Adj[fromSystem] = append(u.Adj[fromSystem], toSystem)
}

// SetOwner associates a system with its owner.
func (u *Universe) SetOwner(system, owner string) {
	u.SystemOwner[system] = owner
}
