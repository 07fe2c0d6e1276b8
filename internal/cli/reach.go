package cli

import (
	"sort"
	"strconv"

	"roguewar-client/internal/dataobj"
	"roguewar-client/internal/galaxy"
)

// reachEntry is one system within jump range of the origin.
type reachEntry struct {
	Name  string
	Jumps int
	Owner string
}

func (e *reachEntry) TypeTag() string { return "reachEntry" }

func (e *reachEntry) Fields() []dataobj.Field {
	return []dataobj.Field{
		dataobj.String("name", &e.Name),
		dataobj.Int("jumps", &e.Jumps),
		dataobj.String("originalOwner", &e.Owner),
	}
}

func (e *reachEntry) SubObjects() []dataobj.SubObjectMap { return nil }

// reachReport lists the systems within MaxJumps of Origin, nearest first.
type reachReport struct {
	Origin   string
	MaxJumps int
	Owners   []string
	Systems  []*reachEntry
}

func (r *reachReport) TypeTag() string { return "reach" }

func (r *reachReport) Fields() []dataobj.Field {
	return []dataobj.Field{
		dataobj.String("origin", &r.Origin),
		dataobj.Int("maxJumps", &r.MaxJumps),
		dataobj.Strings("owners", &r.Owners),
	}
}

func (r *reachReport) SubObjects() []dataobj.SubObjectMap {
	return []dataobj.SubObjectMap{
		dataobj.ListOf("systems", &r.Systems),
	}
}

func newReachReport(consts *galaxy.StarMapConstants, origin string, maxJumps int) *reachReport {
	u := consts.Universe(nil)
	reach := u.SystemsWithinRadius(origin, maxJumps)

	r := &reachReport{Origin: origin, MaxJumps: maxJumps, Owners: u.OwnersOf(reach)}
	for name, jumps := range reach {
		r.Systems = append(r.Systems, &reachEntry{Name: name, Jumps: jumps, Owner: u.SystemOwner[name]})
	}
	sort.Slice(r.Systems, func(i, j int) bool {
		a, b := r.Systems[i], r.Systems[j]
		if a.Jumps != b.Jumps {
			return a.Jumps < b.Jumps
		}
		return a.Name < b.Name
	})
	return r
}

func (r *reachReport) table() table {
	t := table{headers: []string{"system", "jumps", "original owner"}}
	for _, e := range r.Systems {
		t.rows = append(t.rows, []string{e.Name, strconv.Itoa(e.Jumps), e.Owner})
	}
	return t
}
