package galaxy

import "roguewar-client/internal/dataobj"

// StarMap is the current state of every system, in server order.
type StarMap struct {
	Systems []*StarSystem
}

// FindSystemsByOwner returns the systems held by owner, preserving map order.
func (m *StarMap) FindSystemsByOwner(owner string) []*StarSystem {
	var out []*StarSystem
	for _, s := range m.Systems {
		if s.Owner == owner {
			out = append(out, s)
		}
	}
	return out
}

// FindSystem returns the system with the given name.
func (m *StarMap) FindSystem(name string) (*StarSystem, bool) {
	for _, s := range m.Systems {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// OwnerCounts returns how many systems each owner holds.
func (m *StarMap) OwnerCounts() map[string]int {
	counts := make(map[string]int)
	for _, s := range m.Systems {
		counts[s.Owner]++
	}
	return counts
}

func (m *StarMap) TypeTag() string { return "StarMap" }

func (m *StarMap) Fields() []dataobj.Field { return nil }

func (m *StarMap) SubObjects() []dataobj.SubObjectMap {
	return []dataobj.SubObjectMap{
		dataobj.ListOf("starsystems", &m.Systems),
	}
}

func (m *StarMap) MarshalJSON() ([]byte, error) { return dataobj.ToJSON(m, false) }

func (m *StarMap) UnmarshalJSON(data []byte) error { return dataobj.FromJSON(m, data) }
