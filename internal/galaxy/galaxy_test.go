package galaxy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roguewar-client/internal/dataobj"
)

const mapPayload = `{
	"starsystems": [
		{"name": "Terra", "owner": "Empire", "Players": 12, "immuneFromWar": true, "markerType": 0,
		 "factions": [{"Name": "RedSunAlliance", "control": 40, "ActivePlayers": 3},
		              {"Name": "Empire", "control": 60, "ActivePlayers": 9}]},
		{"name": "Vega", "owner": "Rebels", "Players": 4, "immuneFromWar": false, "markerType": 2, "factions": []},
		{"name": "Sol", "owner": "Empire", "Players": 0, "immuneFromWar": false, "markerType": 0}
	]
}`

func loadMap(t *testing.T) *StarMap {
	t.Helper()
	m := &StarMap{}
	require.NoError(t, dataobj.FromJSON(m, []byte(mapPayload)))
	return m
}

func TestStarMap_FromJSON(t *testing.T) {
	m := loadMap(t)

	require.Len(t, m.Systems, 3)
	terra := m.Systems[0]
	assert.Equal(t, "Terra", terra.Name)
	assert.Equal(t, "Empire", terra.Owner)
	assert.Equal(t, 12, terra.Players)
	assert.True(t, terra.ImmuneFromWar)
	require.Len(t, terra.Factions, 2)
	assert.Equal(t, 40.0, terra.Factions[0].Control)
	assert.Equal(t, 3, terra.Factions[0].ActivePlayers)

	assert.True(t, m.Systems[1].HasEvent())
	assert.False(t, terra.HasEvent())
	assert.Empty(t, m.Systems[2].Factions, "missing factions key gives an empty list")
}

func TestStarMap_FindSystemsByOwner(t *testing.T) {
	m := loadMap(t)

	empire := m.FindSystemsByOwner("Empire")
	require.Len(t, empire, 2)
	assert.Equal(t, "Terra", empire[0].Name)
	assert.Equal(t, "Sol", empire[1].Name)

	assert.Empty(t, m.FindSystemsByOwner("Pirates"))
	assert.Equal(t, map[string]int{"Empire": 2, "Rebels": 1}, m.OwnerCounts())
}

func TestStarMap_FindSystem(t *testing.T) {
	m := loadMap(t)

	vega, ok := m.FindSystem("Vega")
	require.True(t, ok)
	assert.Equal(t, "Rebels", vega.Owner)

	_, ok = m.FindSystem("Nowhere")
	assert.False(t, ok)
}

func TestStarSystem_Faction(t *testing.T) {
	terra := loadMap(t).Systems[0]

	f, ok := terra.Faction("Empire")
	require.True(t, ok)
	assert.Equal(t, 9, f.ActivePlayers)

	_, ok = terra.Faction("Pirates")
	assert.False(t, ok)
}

func TestFactionControl_PrettyName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"RedSunAlliance", "Red Sun Alliance"},
		{"Empire", "Empire"},
		{"lowerCase", "lower Case"},
		{"ABCCorp", "ABCCorp"},
		{"", ""},
	}
	for _, tt := range tests {
		f := &FactionControl{Name: tt.name}
		if got := f.PrettyName(); got != tt.want {
			t.Errorf("PrettyName(%q) = %q, want %q", tt.name, got, tt.want)
		}
		assert.Equal(t, tt.name, f.Name, "PrettyName must not modify Name")
	}
}

func TestWireFieldNames(t *testing.T) {
	m := loadMap(t)
	tree := dataobj.ToValueTree(m)

	systems, ok := tree["starsystems"].([]any)
	require.True(t, ok)
	terra := systems[0].(dataobj.Tree)
	for _, key := range []string{"name", "owner", "Players", "immuneFromWar", "markerType", "factions"} {
		assert.Contains(t, terra, key)
	}
	faction := terra["factions"].([]any)[0].(dataobj.Tree)
	for _, key := range []string{"Name", "control", "ActivePlayers"} {
		assert.Contains(t, faction, key)
	}

	consts := &StarMapConstants{Systems: []*StarSystemConst{{Name: "Terra", PosX: 1, PosY: 2, OriginalOwner: "Empire"}}}
	ctree := dataobj.ToValueTree(consts)
	coords, ok := ctree["Coordinates"].([]any)
	require.True(t, ok)
	assert.Equal(t, dataobj.Tree{"name": "Terra", "posx": 1.0, "posy": 2.0, "originalOwner": "Empire"}, coords[0])

	gtree := dataobj.ToValueTree(&GlobalData{SupportRadius: 50})
	assert.Equal(t, dataobj.Tree{"SupportRadius": 50.0}, gtree)
}

func TestRoundTrip_AllEntities(t *testing.T) {
	entities := []struct {
		name  string
		src   dataobj.Object
		fresh func() dataobj.Object
	}{
		{"FactionControl", &FactionControl{Name: "RedSunAlliance", Control: 12.5, ActivePlayers: 4}, func() dataobj.Object { return &FactionControl{} }},
		{"StarSystem", loadMap(t).Systems[0], func() dataobj.Object { return &StarSystem{} }},
		{"StarMap", loadMap(t), func() dataobj.Object { return &StarMap{} }},
		{"StarSystemConst", &StarSystemConst{Name: "Sol", PosX: -3.5, PosY: 8, OriginalOwner: "Empire"}, func() dataobj.Object { return &StarSystemConst{} }},
		{"StarMapConstants", &StarMapConstants{Systems: []*StarSystemConst{{Name: "Sol"}}}, func() dataobj.Object { return &StarMapConstants{} }},
		{"GlobalData", &GlobalData{SupportRadius: 42}, func() dataobj.Object { return &GlobalData{} }},
	}

	for _, e := range entities {
		t.Run(e.name, func(t *testing.T) {
			dst := e.fresh()
			require.NoError(t, dataobj.FromValueTree(dst, dataobj.ToValueTree(e.src)))
			assert.True(t, dataobj.Equal(e.src, dst))

			viaJSON := e.fresh()
			data, err := dataobj.ToJSON(e.src, true)
			require.NoError(t, err)
			require.NoError(t, dataobj.FromJSON(viaJSON, data))
			assert.True(t, dataobj.Equal(e.src, viaJSON))
		})
	}
}

func TestRoundTrip_NestedContent(t *testing.T) {
	src := loadMap(t)
	dst := &StarMap{}
	require.NoError(t, dataobj.FromValueTree(dst, dataobj.ToValueTree(src)))

	require.Len(t, dst.Systems, len(src.Systems))
	for i := range src.Systems {
		assert.True(t, dataobj.Equal(src.Systems[i], dst.Systems[i]))
		require.Len(t, dst.Systems[i].Factions, len(src.Systems[i].Factions))
		for j := range src.Systems[i].Factions {
			assert.True(t, dataobj.Equal(src.Systems[i].Factions[j], dst.Systems[i].Factions[j]))
		}
	}
}

func TestEncodingJSONInterop(t *testing.T) {
	var m StarMap
	require.NoError(t, json.Unmarshal([]byte(mapPayload), &m))
	require.Len(t, m.Systems, 3)

	out, err := json.Marshal(&m)
	require.NoError(t, err)

	var again StarMap
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, "Vega", again.Systems[1].Name)
	assert.Equal(t, 2, again.Systems[1].MarkerType)
}

func TestFromJSON_Truncated(t *testing.T) {
	m := &StarMap{}
	assert.NotPanics(t, func() {
		err := dataobj.FromJSON(m, []byte(mapPayload[:40]))
		assert.Error(t, err)
	})
}

func TestFromJSON_BadFieldType(t *testing.T) {
	m := loadMap(t)
	err := dataobj.FromJSON(m, []byte(`{"starsystems": [{"name": 7, "owner": "X"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "StarSystem.name")
	assert.Len(t, m.Systems, 3, "failed decode leaves the map untouched")
}

func TestFromJSON_LooseNumbers(t *testing.T) {
	payload := `{"starsystems": [
		{"name": "Terra", "owner": "Empire", "Players": "4", "markerType": "0",
		 "factions": [{"Name": "Empire", "control": "", "ActivePlayers": 0},
		              {"Name": "Rebels", "control": "High", "ActivePlayers": ""},
		              {"Name": "Pirates", "control": "12.5", "ActivePlayers": "2"}]},
		{"name": "Vega", "owner": "Rebels", "Players": 1, "markerType": 2,
		 "factions": [{"Name": "Rebels", "control": 80, "ActivePlayers": 1}]}
	]}`

	m := &StarMap{}
	require.NoError(t, dataobj.FromJSON(m, []byte(payload)))
	require.Len(t, m.Systems, 2, "one odd faction record does not drop the map")

	terra := m.Systems[0]
	assert.Equal(t, 4, terra.Players)
	assert.False(t, terra.HasEvent())
	require.Len(t, terra.Factions, 3)
	assert.Equal(t, 0.0, terra.Factions[0].Control)
	assert.Equal(t, 0.0, terra.Factions[1].Control)
	assert.Equal(t, 0, terra.Factions[1].ActivePlayers)
	assert.Equal(t, 12.5, terra.Factions[2].Control)
	assert.Equal(t, 2, terra.Factions[2].ActivePlayers)

	assert.Equal(t, 80.0, m.Systems[1].Factions[0].Control)
	assert.True(t, m.Systems[1].HasEvent())
}
