package galaxy

import "roguewar-client/internal/dataobj"

// DefaultSupportRadius is the adjacency radius used when the server does not
// provide one.
const DefaultSupportRadius = 50

// GlobalData holds server-wide constants.
type GlobalData struct {
	SupportRadius float64 // maximum distance for system support
}

func (g *GlobalData) TypeTag() string { return "GlobalData" }

func (g *GlobalData) Fields() []dataobj.Field {
	return []dataobj.Field{
		dataobj.Float("SupportRadius", &g.SupportRadius),
	}
}

func (g *GlobalData) SubObjects() []dataobj.SubObjectMap { return nil }

func (g *GlobalData) MarshalJSON() ([]byte, error) { return dataobj.ToJSON(g, false) }

func (g *GlobalData) UnmarshalJSON(data []byte) error { return dataobj.FromJSON(g, data) }
