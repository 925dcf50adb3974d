package analyzer

import "sort"

// Route is a compressed group of chains that all share the same ordered
// sequence of interior waypoint modules. Heads is the set of downstream
// modules observed starting a chain with that middle, and Tails is the set
// of upstream modules observed ending one.
type Route struct {
	Heads  []Module
	Middle []Module
	Tails  []Module
}

// CompressChains groups chains by their ordered middle sequence, unioning
// the heads and tails of every chain that shares a middle. The result is
// sorted by middle for determinism.
func CompressChains(chains []Chain) []Route {
	type bucket struct {
		middle []Module
		heads  map[Module]bool
		tails  map[Module]bool
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, c := range chains {
		middle := c.Middle()
		key := middleKey(middle)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{middle: middle, heads: map[Module]bool{}, tails: map[Module]bool{}}
			buckets[key] = b
			order = append(order, key)
		}
		b.heads[c.Head()] = true
		b.tails[c.Tail()] = true
	}

	routes := make([]Route, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		routes = append(routes, Route{
			Heads:  sortedModules(b.heads),
			Middle: b.middle,
			Tails:  sortedModules(b.tails),
		})
	}
	sort.Slice(routes, func(i, j int) bool { return middleKey(routes[i].Middle) < middleKey(routes[j].Middle) })
	return routes
}

func middleKey(middle []Module) string {
	var key string
	for _, m := range middle {
		key += string(m) + "\x00"
	}
	return key
}

func sortedModules(set map[Module]bool) []Module {
	out := make([]Module, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
