package galaxy

import (
	"math"

	"roguewar-client/internal/dataobj"
	"roguewar-client/internal/graph"
)

// StarSystemConst holds the static data of one system: its position and the
// faction that held it at the start.
type StarSystemConst struct {
	Name          string
	PosX          float64
	PosY          float64
	OriginalOwner string

	adjacent []string // filled by StarMapConstants.MapAdjacents, never serialized
}

// AdjacentSystems returns the names of all systems within support range.
func (c *StarSystemConst) AdjacentSystems() []string {
	return c.adjacent
}

// Distance returns the euclidean distance between two systems.
func (c *StarSystemConst) Distance(other *StarSystemConst) float64 {
	return math.Hypot(c.PosX-other.PosX, c.PosY-other.PosY)
}

func (c *StarSystemConst) TypeTag() string { return "StarSystemConst" }

func (c *StarSystemConst) Fields() []dataobj.Field {
	return []dataobj.Field{
		dataobj.String("name", &c.Name),
		dataobj.Float("posx", &c.PosX),
		dataobj.Float("posy", &c.PosY),
		dataobj.String("originalOwner", &c.OriginalOwner),
	}
}

func (c *StarSystemConst) SubObjects() []dataobj.SubObjectMap { return nil }

func (c *StarSystemConst) MarshalJSON() ([]byte, error) { return dataobj.ToJSON(c, false) }

func (c *StarSystemConst) UnmarshalJSON(data []byte) error { return dataobj.FromJSON(c, data) }

// StarMapConstants is the static data of the whole map.
type StarMapConstants struct {
	Systems []*StarSystemConst
}

// FindSystem returns the constants of the named system.
func (m *StarMapConstants) FindSystem(name string) (*StarSystemConst, bool) {
	for _, c := range m.Systems {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// MapAdjacents recomputes every system's adjacency list: two distinct systems
// are adjacent when their euclidean distance is at most maxDistance. Lists
// are cleared first, so repeated calls give the same result.
func (m *StarMapConstants) MapAdjacents(maxDistance float64) {
	for _, c := range m.Systems {
		c.adjacent = nil
	}
	for _, c := range m.Systems {
		for _, other := range m.Systems {
			if other.Name == c.Name {
				continue
			}
			// bounding box first, sqrt only for candidates inside it
			if math.Abs(c.PosX-other.PosX) > maxDistance || math.Abs(c.PosY-other.PosY) > maxDistance {
				continue
			}
			if c.Distance(other) <= maxDistance {
				c.adjacent = append(c.adjacent, other.Name)
			}
		}
	}
}

// Universe builds a jump graph from the computed adjacency lists. Owners come
// from current when given, otherwise from each system's original owner.
func (m *StarMapConstants) Universe(current *StarMap) *graph.Universe {
	u := graph.NewUniverse()
	for _, c := range m.Systems {
		u.SetOwner(c.Name, c.OriginalOwner)
		for _, name := range c.adjacent {
			u.AddLink(c.Name, name)
		}
	}
	if current != nil {
		for _, s := range current.Systems {
			if _, ok := u.SystemOwner[s.Name]; ok {
				u.SetOwner(s.Name, s.Owner)
			}
		}
	}
	return u
}

func (m *StarMapConstants) TypeTag() string { return "StarMapConst" }

func (m *StarMapConstants) Fields() []dataobj.Field { return nil }

func (m *StarMapConstants) SubObjects() []dataobj.SubObjectMap {
	return []dataobj.SubObjectMap{
		dataobj.ListOf("Coordinates", &m.Systems),
	}
}

func (m *StarMapConstants) MarshalJSON() ([]byte, error) { return dataobj.ToJSON(m, false) }

func (m *StarMapConstants) UnmarshalJSON(data []byte) error { return dataobj.FromJSON(m, data) }
