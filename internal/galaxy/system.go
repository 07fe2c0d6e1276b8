package galaxy

import "roguewar-client/internal/dataobj"

// StarSystem is the live state of one system on the map.
type StarSystem struct {
	Name          string
	Owner         string
	Players       int  // active players in the system
	ImmuneFromWar bool // no war missions can target it
	MarkerType    int  // bitfield, non-zero while an event is running
	Factions      []*FactionControl
}

// HasEvent reports whether any event marker bit is set.
func (s *StarSystem) HasEvent() bool {
	return s.MarkerType != 0
}

// Faction returns the control record for the named faction.
func (s *StarSystem) Faction(name string) (*FactionControl, bool) {
	for _, f := range s.Factions {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

func (s *StarSystem) TypeTag() string { return "StarSystem" }

func (s *StarSystem) Fields() []dataobj.Field {
	return []dataobj.Field{
		dataobj.String("name", &s.Name),
		dataobj.String("owner", &s.Owner),
		dataobj.LenientInt("Players", &s.Players),
		dataobj.Bool("immuneFromWar", &s.ImmuneFromWar),
		dataobj.LenientInt("markerType", &s.MarkerType),
	}
}

func (s *StarSystem) SubObjects() []dataobj.SubObjectMap {
	return []dataobj.SubObjectMap{
		dataobj.ListOf("factions", &s.Factions),
	}
}

func (s *StarSystem) MarshalJSON() ([]byte, error) { return dataobj.ToJSON(s, false) }

func (s *StarSystem) UnmarshalJSON(data []byte) error { return dataobj.FromJSON(s, data) }
