package debugkit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// NavGraph is a small directed weighted graph for way-finding queries:
// vertices sit at world positions, arcs connect them one way with a
// positive path length. It is independent of the ECS scene; AI modules
// build one from whatever level data they have.
//
// All methods are fail-fast: malformed arguments (nil or foreign vertices,
// non-positive lengths) panic. Single-threaded like the rest of the kit.
type NavGraph struct {
	vertices map[string]*NavVertex
	arcCount int
	tree     *rtreego.Rtree
}

// NavVertex is a graph node with a position and its outgoing arcs.
type NavVertex struct {
	id       string
	position mgl32.Vec3
	arcs     []*NavArc
	graph    *NavGraph
}

// NavArc is an immutable one-way connection. Removing an arc never removes
// its reverse; use RemoveArcPair for that.
type NavArc struct {
	from           *NavVertex
	to             *NavVertex
	pathLength     float32
	startDirection mgl32.Vec3 // unit vector from start toward end
}

func NewNavGraph() *NavGraph {
	return &NavGraph{
		vertices: make(map[string]*NavVertex),
		tree:     rtreego.NewTree(3, 2, 8),
	}
}

// AddVertex creates a vertex at position. An empty id gets a generated one.
// Panics when the id is already taken.
func (g *NavGraph) AddVertex(id string, position mgl32.Vec3) *NavVertex {
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := g.vertices[id]; exists {
		panic(fmt.Sprintf("vertex %q already exists", id))
	}

	vertex := &NavVertex{
		id:       id,
		position: position,
		graph:    g,
	}
	g.vertices[id] = vertex
	g.tree.Insert(&navVertexEntry{vertex: vertex})
	return vertex
}

// Vertex looks a vertex up by id.
func (g *NavGraph) Vertex(id string) (*NavVertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// Vertices returns every vertex sorted by id.
func (g *NavGraph) Vertices() []*NavVertex {
	res := make([]*NavVertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		res = append(res, v)
	}
	slices.SortFunc(res, func(a, b *NavVertex) int {
		return strings.Compare(a.id, b.id)
	})
	return res
}

func (g *NavGraph) NumVertices() int { return len(g.vertices) }
func (g *NavGraph) NumArcs() int     { return g.arcCount }

// AddArc creates a one-way arc. Endpoints must be distinct vertices of this
// graph at distinct positions; pathLength must be positive.
func (g *NavGraph) AddArc(from, to *NavVertex, pathLength float32) *NavArc {
	g.checkOwned(from)
	g.checkOwned(to)
	if from == to {
		panic("arc endpoints must be distinct")
	}
	if pathLength <= 0 {
		panic(fmt.Sprintf("path length must be positive, got %f", pathLength))
	}

	offset := to.position.Sub(from.position)
	if offset.Len() == 0 {
		panic(fmt.Sprintf("vertices %q and %q are at the same position", from.id, to.id))
	}

	arc := &NavArc{
		from:           from,
		to:             to,
		pathLength:     pathLength,
		startDirection: offset.Normalize(),
	}
	from.arcs = append(from.arcs, arc)
	g.arcCount++
	return arc
}

// AddArcPair creates both directions with the same path length.
func (g *NavGraph) AddArcPair(v1, v2 *NavVertex, pathLength float32) (*NavArc, *NavArc) {
	return g.AddArc(v1, v2, pathLength), g.AddArc(v2, v1, pathLength)
}

// RemoveArc removes a single arc; its reverse (if any) stays. Returns false
// when the arc isn't in the graph.
func (g *NavGraph) RemoveArc(arc *NavArc) bool {
	if arc == nil {
		panic("arc must not be nil")
	}
	from := arc.from
	idx := slices.Index(from.arcs, arc)
	if idx < 0 {
		return false
	}
	from.arcs = slices.Delete(from.arcs, idx, idx+1)
	g.arcCount--
	return true
}

// RemoveArcPair removes the arc and its reverse.
func (g *NavGraph) RemoveArcPair(arc *NavArc) {
	if reverse := g.ReverseOf(arc); reverse != nil {
		g.RemoveArc(reverse)
	}
	g.RemoveArc(arc)
}

// ReverseOf finds the first arc going the opposite way, or nil.
func (g *NavGraph) ReverseOf(arc *NavArc) *NavArc {
	if arc == nil {
		panic("arc must not be nil")
	}
	for _, candidate := range arc.to.arcs {
		if candidate.to == arc.from {
			return candidate
		}
	}
	return nil
}

// FindFurthest relaxes shortest-path distances from start (plain recursive
// relaxation with revisit pruning, no priority queue; weights are positive
// so it converges) and returns the reachable vertex whose shortest path is
// longest, with that distance. The start itself is returned for a vertex
// with no outgoing arcs.
func (g *NavGraph) FindFurthest(start *NavVertex) (*NavVertex, float32) {
	g.checkOwned(start)

	distances := make(map[*NavVertex]float32)
	var relax func(v *NavVertex, distance float32)
	relax = func(v *NavVertex, distance float32) {
		if known, seen := distances[v]; seen && known <= distance {
			return
		}
		distances[v] = distance
		for _, arc := range v.arcs {
			relax(arc.to, distance+arc.pathLength)
		}
	}
	relax(start, 0)

	furthest := start
	best := float32(0)
	for _, v := range g.Vertices() {
		if distance, ok := distances[v]; ok && distance > best {
			furthest = v
			best = distance
		}
	}
	return furthest, best
}

// IsConnectedWithout reports whether to is reachable from from when the
// skip arc is ignored, i.e. whether removing that arc would keep the two
// vertices connected. Depth-first with a visited set.
func (g *NavGraph) IsConnectedWithout(from, to *NavVertex, skip *NavArc) bool {
	g.checkOwned(from)
	g.checkOwned(to)

	visited := make(set[*NavVertex])
	var visit func(v *NavVertex) bool
	visit = func(v *NavVertex) bool {
		if v == to {
			return true
		}
		visited[v] = struct{}{}
		for _, arc := range v.arcs {
			if arc == skip {
				continue
			}
			if _, seen := visited[arc.to]; seen {
				continue
			}
			if visit(arc.to) {
				return true
			}
		}
		return false
	}
	return visit(from)
}

func (g *NavGraph) checkOwned(v *NavVertex) {
	if v == nil {
		panic("vertex must not be nil")
	}
	if v.graph != g {
		panic(fmt.Sprintf("vertex %q does not belong to this graph", v.id))
	}
}

func (v *NavVertex) Id() string           { return v.id }
func (v *NavVertex) Position() mgl32.Vec3 { return v.position }
func (v *NavVertex) NumArcs() int         { return len(v.arcs) }
func (v *NavVertex) Arcs() []*NavArc      { return slices.Clone(v.arcs) }

func (a *NavArc) From() *NavVertex           { return a.from }
func (a *NavArc) To() *NavVertex             { return a.to }
func (a *NavArc) PathLength() float32        { return a.pathLength }
func (a *NavArc) StartDirection() mgl32.Vec3 { return a.startDirection }

func (v *NavVertex) String() string {
	return fmt.Sprintf("NavVertex(%s %s)", v.id, FormatVec3(v.position))
}

func (a *NavArc) String() string {
	return fmt.Sprintf("NavArc(%s -> %s len=%s)", a.from.id, a.to.id, TrimFloat(a.pathLength))
}
