package cayley

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/group"
)

// Graph is the Cayley graph of a materialized group: one vertex per
// element in canonical order, one edge family per connection generator.
// Immutable after Build.
type Graph struct {
	g        *group.Group
	conn     []algebra.Element
	adj      [][]int
	dist     []int
	diameter int
}

// Build constructs the Cayley graph of g and runs the word-metric sweep.
// Returns ErrNilGroup for nil input and group.ErrRequiresMaterialized
// for order-only groups.
func Build(g *group.Group, opts ...Option) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if !g.Materialized() {
		return nil, fmt.Errorf("%w: cayley graph", group.ErrRequiresMaterialized)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cg := &Graph{g: g, conn: connectionSet(g, o.Inverses)}
	if err := cg.wire(); err != nil {
		return nil, err
	}
	if err := cg.sweep(o); err != nil {
		return nil, err
	}
	return cg, nil
}

// connectionSet collects the generators (and inverses when symmetric),
// identity-free and deduplicated, preserving generator order.
func connectionSet(g *group.Group, inverses bool) []algebra.Element {
	gens := g.Generators()
	seen := make(map[string]struct{}, 2*gens.Len())
	conn := make([]algebra.Element, 0, 2*gens.Len())
	add := func(e algebra.Element) {
		if e.IsIdentity() {
			return
		}
		if _, dup := seen[e.Key()]; dup {
			return
		}
		seen[e.Key()] = struct{}{}
		conn = append(conn, e)
	}
	for _, s := range gens.Elements() {
		add(s)
	}
	if inverses {
		for _, s := range gens.Elements() {
			add(s.Inverse())
		}
	}
	return conn
}

// wire fills the adjacency lists: adj[v][k] is the vertex of
// element(v)·conn[k].
func (cg *Graph) wire() error {
	n := cg.g.Order()
	cg.adj = make([][]int, n)
	for v := 0; v < n; v++ {
		row := make([]int, len(cg.conn))
		for k, s := range cg.conn {
			prod, err := cg.g.Element(v).Compose(s)
			if err != nil {
				return err
			}
			w, ok := cg.g.Index(prod)
			if !ok {
				// closure guarantees membership
				return fmt.Errorf("cayley: product %v escaped the group", prod)
			}
			row[k] = w
		}
		cg.adj[v] = row
	}
	return nil
}

// sweep runs breadth-first search from the identity vertex, labeling
// every vertex with its word length and recording the diameter.
func (cg *Graph) sweep(o Options) error {
	n := len(cg.adj)
	cg.dist = make([]int, n)
	for v := range cg.dist {
		cg.dist[v] = -1
	}
	cg.dist[0] = 0
	queue := make([]int, 0, n)
	queue = append(queue, 0)
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		v := queue[0]
		queue = queue[1:]
		for _, w := range cg.adj[v] {
			if cg.dist[w] < 0 {
				cg.dist[w] = cg.dist[v] + 1
				if cg.dist[w] > cg.diameter {
					cg.diameter = cg.dist[w]
				}
				queue = append(queue, w)
			}
		}
	}
	return nil
}

// Group returns the underlying group.
func (cg *Graph) Group() *group.Group { return cg.g }

// Order returns the number of vertices.
func (cg *Graph) Order() int { return len(cg.adj) }

// Degree returns the size of the connection set (the common out-degree).
func (cg *Graph) Degree() int { return len(cg.conn) }

// Connection returns the connection set in adjacency-slot order.
func (cg *Graph) Connection() []algebra.Element {
	return append([]algebra.Element(nil), cg.conn...)
}

// Neighbors returns the neighbor vertices of v in connection order,
// one entry per generator (repeats possible when generators collide).
func (cg *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= len(cg.adj) {
		return nil, fmt.Errorf("%w: %d", ErrVertexRange, v)
	}
	return append([]int(nil), cg.adj[v]...), nil
}

// WordLength returns the word-metric distance from the identity to
// vertex v: the least number of connection generators whose product is
// element(v).
func (cg *Graph) WordLength(v int) (int, error) {
	if v < 0 || v >= len(cg.dist) {
		return 0, fmt.Errorf("%w: %d", ErrVertexRange, v)
	}
	return cg.dist[v], nil
}

// Diameter returns the largest word length over all vertices.
func (cg *Graph) Diameter() int { return cg.diameter }

// Adjacency exports the graph as a dense 0/1 matrix, collapsing
// parallel edges, for spectral analysis with gonum.
func (cg *Graph) Adjacency() *mat.Dense {
	n := len(cg.adj)
	a := mat.NewDense(n, n, nil)
	for v, row := range cg.adj {
		for _, w := range row {
			a.Set(v, w, 1)
		}
	}
	return a
}
