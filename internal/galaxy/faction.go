package galaxy

import (
	"regexp"

	"roguewar-client/internal/dataobj"
)

// FactionControl is the control level a faction holds over a system and the
// number of its players currently active there.
type FactionControl struct {
	Name          string
	Control       float64
	ActivePlayers int
}

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// PrettyName splits the camel-cased faction name into words.
func (f *FactionControl) PrettyName() string {
	return camelBoundary.ReplaceAllString(f.Name, "${1} ${2}")
}

func (f *FactionControl) TypeTag() string { return "fctControl" }

func (f *FactionControl) Fields() []dataobj.Field {
	return []dataobj.Field{
		dataobj.String("Name", &f.Name),
		dataobj.LenientFloat("control", &f.Control),
		dataobj.LenientInt("ActivePlayers", &f.ActivePlayers),
	}
}

func (f *FactionControl) SubObjects() []dataobj.SubObjectMap { return nil }

func (f *FactionControl) MarshalJSON() ([]byte, error) { return dataobj.ToJSON(f, false) }

func (f *FactionControl) UnmarshalJSON(data []byte) error { return dataobj.FromJSON(f, data) }
