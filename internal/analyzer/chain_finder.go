package analyzer

// Chain is one illegal import path: a module in the downstream (lower)
// layer that, through zero or more intermediate modules, ends up importing
// a module in the upstream (higher) layer. Chain[0] is the downstream
// endpoint (the "head") and Chain[len(Chain)-1] is the upstream endpoint
// (the "tail"); anything between is the "middle".
type Chain []Module

// Middle returns the interior waypoints of the chain, excluding the head
// and tail endpoints.
func (c Chain) Middle() []Module {
	if len(c) <= 2 {
		return nil
	}
	return c[1 : len(c)-1]
}

// Head returns the downstream endpoint of the chain.
func (c Chain) Head() Module { return c[0] }

// Tail returns the upstream endpoint of the chain.
func (c Chain) Tail() Module { return c[len(c)-1] }

const maxChainSearchDepth = 64

// FindChains finds every simple import chain that runs from a descendant of
// downstream to a descendant of upstream, within the working view of g
// obtained by hiding every module that belongs to one of otherSameContainerLayers
// (layers that sit, in the same container, between or alongside the
// downstream/upstream pair being checked). Modules belonging to other
// containers are never hidden: they remain valid interior waypoints.
//
// The search treats each side as a bundle without building a synthetic
// node: it runs once per concrete downstream head, never steps onto a
// second downstream module, and ends a chain at the first upstream module
// it reaches, so a direct edge from any downstream descendant into any
// upstream descendant is found in one step, while interior (non-layer)
// waypoint modules are still walked individually.
func FindChains(g *ImportGraph, downstream, upstream Module, otherSameContainerLayers []Module) []Chain {
	downSet := moduleSet(g.Descendants(downstream))
	upSet := moduleSet(g.Descendants(upstream))
	if len(downSet) == 0 || len(upSet) == 0 {
		return nil
	}

	hidden := map[Module]bool{}
	for _, layer := range otherSameContainerLayers {
		if layer == downstream || layer == upstream {
			continue
		}
		for _, m := range g.Descendants(layer) {
			hidden[m] = true
		}
	}

	// Build adjacency over the working view: hidden modules are excised
	// (their edges are dropped, they're never visited), and every
	// downstream/upstream descendant is treated as interchangeable for
	// the purposes of reachability, but we still need the concrete
	// head/tail module for reporting, so we search per concrete starting
	// head and stop as soon as we enter upSet.
	adjacency := make(map[Module][]Module)
	for _, di := range g.AllDirectImports() {
		if hidden[di.Importer] || hidden[di.Imported] {
			continue
		}
		adjacency[di.Importer] = append(adjacency[di.Importer], di.Imported)
	}

	var chains []Chain
	for head := range downSet {
		chains = append(chains, findChainsFrom(head, adjacency, downSet, upSet)...)
	}
	return chains
}

// findChainsFrom enumerates simple paths starting at head that leave the
// downstream set immediately (the next hop is outside downSet) and
// terminate the first time they land in upSet. Paths that re-enter downSet
// after leaving it are not pursued further down that branch, since any
// illegal route from that re-entry point is already discovered by treating
// that module as its own head.
func findChainsFrom(head Module, adjacency map[Module][]Module, downSet, upSet map[Module]bool) []Chain {
	var results []Chain
	visited := map[Module]bool{head: true}
	path := []Module{head}

	var walk func(current Module)
	walk = func(current Module) {
		if len(path) > maxChainSearchDepth {
			return
		}
		for _, next := range adjacency[current] {
			if downSet[next] {
				// Only the original head may be a downstream module; a
				// chain through a second downstream module is reported
				// starting from that module instead.
				continue
			}
			if visited[next] {
				continue
			}
			path = append(path, next)
			if upSet[next] {
				chain := make(Chain, len(path))
				copy(chain, path)
				results = append(results, chain)
			} else {
				visited[next] = true
				walk(next)
				delete(visited, next)
			}
			path = path[:len(path)-1]
		}
	}
	walk(head)
	return results
}

func moduleSet(modules []Module) map[Module]bool {
	out := make(map[Module]bool, len(modules))
	for _, m := range modules {
		out[m] = true
	}
	return out
}
