package graph

import (
	"container/heap"
	"sort"
)

// SystemsWithinRadius returns all systems reachable from origin within maxJumps,
// mapped to their distance in jumps.
func (u *Universe) SystemsWithinRadius(origin string, maxJumps int) map[string]int {
	return u.SystemsWithinRadiusOwnedBy(origin, maxJumps, "")
}

// SystemsWithinRadiusOwnedBy returns systems reachable within maxJumps where
// every system after origin on the path is held by owner. Use "" for no filter.
func (u *Universe) SystemsWithinRadiusOwnedBy(origin string, maxJumps int, owner string) map[string]int {
	result := make(map[string]int)
	result[origin] = 0

	queue := []string{origin}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		dist := result[current]
		if dist >= maxJumps {
			continue
		}
		for _, neighbor := range u.Adj[current] {
			if owner != "" && u.SystemOwner[neighbor] != owner {
				continue
			}
			if _, visited := result[neighbor]; !visited {
				result[neighbor] = dist + 1
				queue = append(queue, neighbor)
			}
		}
	}
	return result
}

// ShortestPath returns the shortest jump count between origin and dest using Dijkstra.
// Returns -1 if no path exists.
func (u *Universe) ShortestPath(origin, dest string) int {
	return u.ShortestPathOwnedBy(origin, dest, "")
}

// ShortestPathOwnedBy returns the shortest jump count using only systems held
// by owner. Use "" for no filter. Returns -1 if no path exists.
func (u *Universe) ShortestPathOwnedBy(origin, dest, owner string) int {
	if origin == dest {
		return 0
	}
	if owner != "" {
		if u.SystemOwner[origin] != owner || u.SystemOwner[dest] != owner {
			return -1
		}
	}

	best := map[string]int{origin: 0}
	open := &frontier{{system: origin}}

	for open.Len() > 0 {
		cur := heap.Pop(open).(hop)
		if cur.system == dest {
			return cur.jumps
		}
		if cur.jumps > best[cur.system] {
			continue
		}
		for _, next := range u.Adj[cur.system] {
			if owner != "" && u.SystemOwner[next] != owner {
				continue
			}
			if j, seen := best[next]; seen && j <= cur.jumps+1 {
				continue
			}
			best[next] = cur.jumps + 1
			heap.Push(open, hop{system: next, jumps: cur.jumps + 1})
		}
	}
	return -1
}

// OwnersOf returns the sorted, distinct owners of the given systems.
// Systems without a known owner are skipped.
func (u *Universe) OwnersOf(systems map[string]int) []string {
	seen := make(map[string]struct{})
	for name := range systems {
		if o, ok := u.SystemOwner[name]; ok && o != "" {
			seen[o] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for o := range seen {
		out = append(out, o)
	}
	sort.Strings(out)
	return out
}

// HeldBy returns the sorted names of the systems owner holds.
func (u *Universe) HeldBy(owner string) []string {
	var out []string
	for name, o := range u.SystemOwner {
		if o == owner {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// hop is a frontier entry: a system and the jumps taken to reach it.
type hop struct {
	system string
	jumps  int
}

// frontier is a min-heap of hops ordered by jump count.
type frontier []hop

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].jumps < f[j].jumps }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(hop)) }
func (f *frontier) Pop() any {
	last := len(*f) - 1
	h := (*f)[last]
	*f = (*f)[:last]
	return h
}
