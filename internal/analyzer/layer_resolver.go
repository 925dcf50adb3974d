package analyzer

import "fmt"

// NoSuchContainerError is returned when a requested container does not
// correspond to any module present in the graph.
type NoSuchContainerError struct {
	Container string
}

func (e *NoSuchContainerError) Error() string {
	return fmt.Sprintf("no such container: %q", e.Container)
}

// resolvedLayer is one entry of an ordered layer list, resolved to the
// concrete top-level module that represents it within a container.
type resolvedLayer struct {
	name   string
	module Module
}

// ResolveLayersForContainer maps an ordered list of layer names onto the
// concrete modules that exist in g for a single container. Container may be
// "" to mean "no container" (layers are themselves top-level modules).
//
// A layer whose corresponding module is absent from g is silently dropped,
// mirroring the fact that an architecture contract may name layers that a
// particular codebase simply hasn't grown yet. If container is non-empty
// and no module in g is the container itself or a descendant of it,
// ResolveLayersForContainer returns a *NoSuchContainerError.
func ResolveLayersForContainer(g *ImportGraph, layers []string, container Module) ([]resolvedLayer, error) {
	if container != "" && !containerExists(g, container) {
		return nil, &NoSuchContainerError{Container: container.String()}
	}

	resolved := make([]resolvedLayer, 0, len(layers))
	for _, name := range layers {
		candidate := layerModule(container, name)
		if g.HasModule(candidate) {
			resolved = append(resolved, resolvedLayer{name: name, module: candidate})
			continue
		}
		// A layer need not be an existing module in its own right as long
		// as some descendant of it is present (e.g. "high.api" exists but
		// bare "high" was never imported directly).
		if len(g.Descendants(candidate)) > 0 {
			resolved = append(resolved, resolvedLayer{name: name, module: candidate})
		}
	}
	return resolved, nil
}

func layerModule(container Module, layer string) Module {
	if container == "" {
		return Module(layer)
	}
	return container.Join(layer)
}

func containerExists(g *ImportGraph, container Module) bool {
	for _, m := range g.Modules() {
		if m.IsSelfOrDescendantOf(container) {
			return true
		}
	}
	return false
}

// ResolveContainers returns containers verbatim as Modules when containers
// is non-empty, or a single "" sentinel container (meaning: layers resolve
// directly against top-level modules) when containers is empty.
func ResolveContainers(containers []string) []Module {
	if len(containers) == 0 {
		return []Module{""}
	}
	out := make([]Module, len(containers))
	for i, c := range containers {
		out[i] = Module(c)
	}
	return out
}
