package validation

import (
	"fmt"
	"strings"
)

// Revalidator is a node of the dependency graph.
type Revalidator interface {
	ID() string
	Revalidate() Result
}

// Edge is a declared dependency: Dependent is revalidated when Source changes.
type Edge struct {
	Source    string `json:"source" yaml:"source"`
	Dependent string `json:"dependent" yaml:"dependent"`
}

// GraphOption configures a Graph.
type GraphOption func(*Graph)

// WithGraphObserver attaches an observer notified after each propagation.
func WithGraphObserver(observer Observer) GraphOption {
	return func(g *Graph) {
		if observer != nil {
			g.observer = observer
		}
	}
}

// Graph is the directed set of source -> dependent edges. Propagation is a
// single hop: a dependent's revalidation never walks further edges.
type Graph struct {
	nodes    map[string]Revalidator
	edges    map[string][]string
	sources  []string
	observer Observer
}

// NewGraph returns an empty graph.
func NewGraph(options ...GraphOption) *Graph {
	g := &Graph{
		nodes:    make(map[string]Revalidator),
		edges:    make(map[string][]string),
		observer: NopObserver{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// Register adds a node. Identifiers must be unique.
func (g *Graph) Register(node Revalidator) error {
	id := strings.TrimSpace(node.ID())
	if id == "" {
		return fmt.Errorf("%w: empty identifier", ErrUnknownField)
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateField, id)
	}
	g.nodes[id] = node
	return nil
}

// AddEdge declares that dependent must be revalidated whenever source
// changes. Both ends must be registered. Repeated edges are ignored; edges
// that would close a cycle are rejected.
func (g *Graph) AddEdge(source, dependent string) error {
	source = strings.TrimSpace(source)
	dependent = strings.TrimSpace(dependent)

	if _, ok := g.nodes[source]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, source)
	}
	if _, ok := g.nodes[dependent]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, dependent)
	}
	if source == dependent {
		return fmt.Errorf("%w: %q", ErrSelfDependency, source)
	}
	for _, existing := range g.edges[source] {
		if existing == dependent {
			return nil
		}
	}
	if g.reaches(dependent, source) {
		return fmt.Errorf("%w: %q -> %q", ErrCycle, source, dependent)
	}

	if _, seen := g.edges[source]; !seen {
		g.sources = append(g.sources, source)
	}
	g.edges[source] = append(g.edges[source], dependent)
	return nil
}

func (g *Graph) reaches(from, to string) bool {
	visited := make(map[string]struct{})
	stack := []string{from}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == to {
			return true
		}
		if _, done := visited[current]; done {
			continue
		}
		visited[current] = struct{}{}
		stack = append(stack, g.edges[current]...)
	}
	return false
}

// Dependents returns the dependents of source in declaration order.
func (g *Graph) Dependents(source string) []string {
	deps := g.edges[strings.TrimSpace(source)]
	if len(deps) == 0 {
		return nil
	}
	return append([]string(nil), deps...)
}

// Edges returns every edge, grouped by source in declaration order.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, source := range g.sources {
		for _, dependent := range g.edges[source] {
			out = append(out, Edge{Source: source, Dependent: dependent})
		}
	}
	return out
}

// OnValueChanged revalidates every dependent of id, synchronously and in
// declaration order, and returns their results. It does not revalidate id
// itself and does not cascade past the first hop.
func (g *Graph) OnValueChanged(id string) []Result {
	id = strings.TrimSpace(id)
	deps := g.edges[id]
	if len(deps) == 0 {
		return nil
	}
	results := make([]Result, 0, len(deps))
	for _, dep := range deps {
		results = append(results, g.nodes[dep].Revalidate())
	}
	g.observer.OnPropagate(id, results)
	return results
}
