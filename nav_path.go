package debugkit

import (
	"container/heap"
	"slices"
	"strings"

	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl32"
)

// navVertexEntry wraps a vertex for R-tree storage. Vertices are points, so
// the rect is a tiny box around the position.
type navVertexEntry struct {
	vertex *NavVertex
}

const navPointExtent = 1e-6

func (e *navVertexEntry) Bounds() rtreego.Rect {
	p := e.vertex.position
	rect, err := rtreego.NewRect(
		rtreego.Point{float64(p.X()), float64(p.Y()), float64(p.Z())},
		[]float64{navPointExtent, navPointExtent, navPointExtent},
	)
	if err != nil {
		panic(err)
	}
	return rect
}

// NearestVertex returns the graph vertex closest to pos, or nil for an
// empty graph.
func (g *NavGraph) NearestVertex(pos mgl32.Vec3) *NavVertex {
	if len(g.vertices) == 0 {
		return nil
	}
	point := rtreego.Point{float64(pos.X()), float64(pos.Y()), float64(pos.Z())}
	nearest := g.tree.NearestNeighbor(point)
	if nearest == nil {
		return nil
	}
	return nearest.(*navVertexEntry).vertex
}

// VerticesWithin returns the vertices inside the world-space box, sorted by
// id.
func (g *NavGraph) VerticesWithin(min, max mgl32.Vec3) []*NavVertex {
	lengths := max.Sub(min)
	rect, err := rtreego.NewRect(
		rtreego.Point{float64(min.X()), float64(min.Y()), float64(min.Z())},
		[]float64{float64(lengths.X()), float64(lengths.Y()), float64(lengths.Z())},
	)
	if err != nil {
		panic(err)
	}

	var res []*NavVertex
	for _, spatial := range g.tree.SearchIntersect(rect) {
		res = append(res, spatial.(*navVertexEntry).vertex)
	}
	slices.SortFunc(res, func(a, b *NavVertex) int {
		return strings.Compare(a.id, b.id)
	})
	return res
}

// pathNode for A*
type pathNode struct {
	vertex  *NavVertex
	g, h, f float32
	parent  *pathNode
	index   int // for heap
}

type pathQueue []*pathNode

func (pq pathQueue) Len() int           { return len(pq) }
func (pq pathQueue) Less(i, j int) bool { return pq[i].f < pq[j].f }
func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *pathQueue) Push(x any) {
	n := len(*pq)
	node := x.(*pathNode)
	node.index = n
	*pq = append(*pq, node)
}
func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*pq = old[0 : n-1]
	return node
}

// FindPath computes the shortest path from from to to with A* (straight-
// line distance heuristic, admissible since arc lengths are at least the
// distance between their endpoints in well-formed graphs). Returns the
// vertices in order including both endpoints, plus the total path length.
// ok is false when to is unreachable.
func (g *NavGraph) FindPath(from, to *NavVertex) (path []*NavVertex, total float32, ok bool) {
	g.checkOwned(from)
	g.checkOwned(to)

	openSet := &pathQueue{}
	heap.Init(openSet)

	startNode := &pathNode{vertex: from, h: Distance(from.position, to.position)}
	startNode.f = startNode.h
	heap.Push(openSet, startNode)

	closedSet := make(set[*NavVertex])
	openNodes := map[*NavVertex]*pathNode{from: startNode}

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*pathNode)
		delete(openNodes, current.vertex)

		if current.vertex == to {
			for node := current; node != nil; node = node.parent {
				path = append([]*NavVertex{node.vertex}, path...)
			}
			return path, current.g, true
		}

		closedSet[current.vertex] = struct{}{}

		for _, arc := range current.vertex.arcs {
			neighbor := arc.to
			if _, closed := closedSet[neighbor]; closed {
				continue
			}

			tentativeG := current.g + arc.pathLength

			node, exists := openNodes[neighbor]
			if !exists {
				node = &pathNode{
					vertex: neighbor,
					g:      tentativeG,
					h:      Distance(neighbor.position, to.position),
					parent: current,
				}
				node.f = node.g + node.h
				heap.Push(openSet, node)
				openNodes[neighbor] = node
			} else if tentativeG < node.g {
				node.g = tentativeG
				node.f = node.g + node.h
				node.parent = current
				heap.Fix(openSet, node.index)
			}
		}
	}

	return nil, 0, false
}
