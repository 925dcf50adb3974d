package analyzer

import "sort"

// PackageDependency witnesses that a downstream (lower) layer illegally
// imports an upstream (higher) layer, with every distinct route the
// violation takes collapsed into Routes.
type PackageDependency struct {
	Upstream   Module
	Downstream Module
	Routes     []Route
}

// FindIllegalDependenciesForLayers checks every container in containers (or
// the whole graph, if containers is empty) against the ordered layers list
// (highest layer first, per architectural convention: earlier entries may
// not be imported by later ones) and returns every illegal package
// dependency found, deduplicated by (container, upstream, downstream) pair
// and sorted for determinism.
//
// layers must contain at least two entries for any violation to be
// detectable. An unknown container produces a *NoSuchContainerError.
func FindIllegalDependenciesForLayers(g *ImportGraph, layers []string, containers []string) ([]PackageDependency, error) {
	var all []PackageDependency

	for _, container := range ResolveContainers(containers) {
		resolved, err := ResolveLayersForContainer(g, layers, container)
		if err != nil {
			return nil, err
		}
		if len(resolved) < 2 {
			continue
		}

		allModules := make([]Module, len(resolved))
		for i, r := range resolved {
			allModules[i] = r.module
		}

		for upperIdx := 0; upperIdx < len(resolved); upperIdx++ {
			for lowerIdx := upperIdx + 1; lowerIdx < len(resolved); lowerIdx++ {
				upstream := resolved[upperIdx].module
				downstream := resolved[lowerIdx].module

				others := make([]Module, 0, len(allModules)-2)
				for i, m := range allModules {
					if i == upperIdx || i == lowerIdx {
						continue
					}
					others = append(others, m)
				}

				chains := FindChains(g, downstream, upstream, others)
				if len(chains) == 0 {
					continue
				}
				all = append(all, PackageDependency{
					Upstream:   upstream,
					Downstream: downstream,
					Routes:     CompressChains(chains),
				})
			}
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Downstream != all[j].Downstream {
			return all[i].Downstream < all[j].Downstream
		}
		return all[i].Upstream < all[j].Upstream
	})
	return all, nil
}
