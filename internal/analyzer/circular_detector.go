package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// CycleSeverity classifies how disruptive a circular dependency is likely
// to be to untangle, based on how many modules participate and whether any
// of them is widely depended upon.
type CycleSeverity string

const (
	CycleSeverityLow      CycleSeverity = "low"      // direct two-module cycles
	CycleSeverityMedium   CycleSeverity = "medium"   // three to five modules
	CycleSeverityHigh     CycleSeverity = "high"     // six to nine modules
	CycleSeverityCritical CycleSeverity = "critical" // ten or more modules, or a high fan-in module involved
)

var cycleSeverityRank = map[CycleSeverity]int{
	CycleSeverityLow:      1,
	CycleSeverityMedium:   2,
	CycleSeverityHigh:     3,
	CycleSeverityCritical: 4,
}

// highFanInThreshold is the incoming-edge count above which a module
// participating in a cycle is treated as core infrastructure, escalating
// the cycle's severity regardless of its size.
const highFanInThreshold = 10

// CircularDependency is one strongly connected component of an ImportGraph
// with more than one module: a set of modules that import each other,
// directly or transitively, forming a cycle.
type CircularDependency struct {
	Modules     []Module
	Witnesses   []Chain // direct internal edges that close the cycle
	Severity    CycleSeverity
	Size        int
	Description string
}

// CircularDependencyResult is the outcome of scanning a graph for circular
// dependencies.
type CircularDependencyResult struct {
	HasCircularDependencies bool
	TotalCycles             int
	TotalModulesInCycles    int
	CircularDependencies    []*CircularDependency

	LowSeverityCycles      int
	MediumSeverityCycles   int
	HighSeverityCycles     int
	CriticalSeverityCycles int

	LargestCycle       *CircularDependency // most modules
	MostComplexCycle   *CircularDependency // most witness edges
	CoreInfrastructure []Module            // modules appearing in more than one cycle
}

// DetectCircularDependencies finds every strongly connected component of
// graph containing more than one module, using Tarjan's algorithm, and
// summarizes each one as a CircularDependency.
func DetectCircularDependencies(graph *ImportGraph) *CircularDependencyResult {
	result := &CircularDependencyResult{}

	for _, component := range stronglyConnectedComponents(graph) {
		if len(component) < 2 {
			continue
		}
		result.CircularDependencies = append(result.CircularDependencies, describeCycle(graph, component))
	}

	sort.Slice(result.CircularDependencies, func(i, j int) bool {
		a, b := result.CircularDependencies[i], result.CircularDependencies[j]
		if a.Severity != b.Severity {
			return cycleSeverityRank[a.Severity] > cycleSeverityRank[b.Severity]
		}
		return a.Size > b.Size
	})

	result.HasCircularDependencies = len(result.CircularDependencies) > 0
	result.TotalCycles = len(result.CircularDependencies)
	summarizeCycles(result)
	return result
}

// HasCircularDependencies is a cheap check for whether graph contains any
// circular dependency at all.
func HasCircularDependencies(graph *ImportGraph) bool {
	for _, component := range stronglyConnectedComponents(graph) {
		if len(component) >= 2 {
			return true
		}
	}
	return false
}

// tarjan holds the bookkeeping for one run of Tarjan's strongly-connected-
// components algorithm over an ImportGraph. It is never reused across runs.
type tarjan struct {
	graph   *ImportGraph
	counter int
	stack   []Module
	onStack map[Module]bool
	index   map[Module]int
	lowLink map[Module]int
	found   [][]Module
}

// stronglyConnectedComponents returns every strongly connected component of
// graph (including singletons, which callers filter out when they only care
// about actual cycles).
func stronglyConnectedComponents(graph *ImportGraph) [][]Module {
	t := &tarjan{
		graph:   graph,
		onStack: make(map[Module]bool),
		index:   make(map[Module]int),
		lowLink: make(map[Module]int),
	}
	for _, m := range graph.Modules() {
		if _, seen := t.index[m]; !seen {
			t.visit(m)
		}
	}
	return t.found
}

// visit is the recursive core of Tarjan's algorithm: it assigns m a
// discovery index and low-link value, then pops a complete component off
// the stack once a root (a module whose low-link equals its own index) is
// reached.
func (t *tarjan) visit(m Module) {
	t.index[m] = t.counter
	t.lowLink[m] = t.counter
	t.counter++

	t.stack = append(t.stack, m)
	t.onStack[m] = true

	for _, next := range t.graph.ModulesDirectlyImportedBy(m) {
		if _, seen := t.index[next]; !seen {
			t.visit(next)
			t.lowLink[m] = min(t.lowLink[m], t.lowLink[next])
		} else if t.onStack[next] {
			t.lowLink[m] = min(t.lowLink[m], t.index[next])
		}
	}

	if t.lowLink[m] != t.index[m] {
		return
	}

	var component []Module
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		component = append(component, top)
		if top == m {
			break
		}
	}
	sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
	t.found = append(t.found, component)
}

// describeCycle builds a CircularDependency from one strongly connected
// component, including its witness chains, severity, and description.
func describeCycle(graph *ImportGraph, component []Module) *CircularDependency {
	cycle := &CircularDependency{
		Modules:   component,
		Size:      len(component),
		Witnesses: cycleWitnesses(graph, component),
	}
	cycle.Severity = classifySeverity(graph, cycle)
	cycle.Description = describeCycleModules(cycle.Modules)
	return cycle
}

// cycleWitnesses finds every direct import between two modules of the same
// component by filtering each member's direct imports down to those that
// land inside the component. A cycle's component is already
// known to be strongly connected, so (unlike an arbitrary layer-violation
// chain) every edge found this way needs no further path search to confirm
// it closes part of the cycle.
func cycleWitnesses(graph *ImportGraph, component []Module) []Chain {
	inComponent := moduleSet(component)

	var chains []Chain
	for _, from := range component {
		for _, to := range graph.ModulesDirectlyImportedBy(from) {
			if inComponent[to] {
				chains = append(chains, Chain{from, to})
			}
		}
	}
	return chains
}

// classifySeverity grades a cycle by its size, escalating to critical if any
// participating module has a large number of direct importers.
func classifySeverity(graph *ImportGraph, cycle *CircularDependency) CycleSeverity {
	for _, m := range cycle.Modules {
		if len(graph.ModulesThatDirectlyImport(m)) > highFanInThreshold {
			return CycleSeverityCritical
		}
	}
	switch {
	case cycle.Size >= 10:
		return CycleSeverityCritical
	case cycle.Size >= 6:
		return CycleSeverityHigh
	case cycle.Size >= 3:
		return CycleSeverityMedium
	default:
		return CycleSeverityLow
	}
}

func describeCycleModules(modules []Module) string {
	if len(modules) == 2 {
		return fmt.Sprintf("direct circular dependency between %s and %s", modules[0], modules[1])
	}
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.String()
	}
	return fmt.Sprintf("circular dependency involving %d modules: %s", len(modules), strings.Join(names, " -> "))
}

// summarizeCycles fills in the severity breakdown, largest/most-complex
// pointers, and core-infrastructure list on an already-populated result.
func summarizeCycles(result *CircularDependencyResult) {
	if len(result.CircularDependencies) == 0 {
		return
	}

	appearances := make(map[Module]int)

	for _, cycle := range result.CircularDependencies {
		switch cycle.Severity {
		case CycleSeverityLow:
			result.LowSeverityCycles++
		case CycleSeverityMedium:
			result.MediumSeverityCycles++
		case CycleSeverityHigh:
			result.HighSeverityCycles++
		case CycleSeverityCritical:
			result.CriticalSeverityCycles++
		}

		for _, m := range cycle.Modules {
			appearances[m]++
		}

		if result.LargestCycle == nil || cycle.Size > result.LargestCycle.Size {
			result.LargestCycle = cycle
		}
		if result.MostComplexCycle == nil || len(cycle.Witnesses) > len(result.MostComplexCycle.Witnesses) {
			result.MostComplexCycle = cycle
		}
	}

	result.TotalModulesInCycles = len(appearances)

	var core []Module
	for m, count := range appearances {
		if count > 1 {
			core = append(core, m)
		}
	}
	sort.Slice(core, func(i, j int) bool { return core[i] < core[j] })
	result.CoreInfrastructure = core
}

// GetCycleBreakingSuggestions turns a detection result into human-readable
// refactoring hints. Returns nil if the graph has no cycles.
func GetCycleBreakingSuggestions(result *CircularDependencyResult) []string {
	if !result.HasCircularDependencies {
		return nil
	}

	var suggestions []string

	if result.LargestCycle != nil {
		suggestions = append(suggestions, fmt.Sprintf(
			"break the largest cycle (%d modules) by extracting shared functionality into a separate module",
			result.LargestCycle.Size))
	}

	if len(result.CoreInfrastructure) > 0 {
		names := make([]string, len(result.CoreInfrastructure))
		for i, m := range result.CoreInfrastructure {
			names[i] = m.String()
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"refactor modules that appear in more than one cycle: %s", strings.Join(names, ", ")))
	}

	if result.CriticalSeverityCycles > 0 {
		suggestions = append(suggestions, "apply the dependency inversion principle to critical-severity cycles")
	}

	return suggestions
}
