package core

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"
)

// Pathfinder runs A* searches over graph snapshots.
// The zero value uses the Euclidean heuristic.
type Pathfinder struct {
	Heuristic Heuristic
}

// NewPathfinder creates a pathfinder with the given heuristic (nil means Euclidean).
func NewPathfinder(h Heuristic) *Pathfinder {
	return &Pathfinder{Heuristic: h}
}

// FindPath runs A* with the Euclidean heuristic. See Pathfinder.FindPath.
func FindPath(g *Graph, start, goal Coord) ([]Coord, error) {
	var p Pathfinder
	return p.FindPath(g, start, goal)
}

// FindPath returns the coordinates from start to goal inclusive.
// An unreachable goal yields an empty, non-nil slice and a nil error.
// start == goal yields [start] regardless of walkability.
// Out-of-bounds start or goal returns an error wrapping ErrOutOfBounds.
//
// Non-walkable neighbours are never entered; the start cell itself may be
// non-walkable. Among open nodes with equal priority the one inserted first
// is expanded first, which keeps results deterministic.
func (p *Pathfinder) FindPath(g *Graph, start, goal Coord) ([]Coord, error) {
	if err := g.dims.check(start); err != nil {
		return nil, err
	}
	if err := g.dims.check(goal); err != nil {
		return nil, err
	}
	if start == goal {
		return []Coord{start}, nil
	}

	h := p.Heuristic
	if h == nil {
		h = Euclidean
	}

	s := search{
		costFromStart: make(map[*Node]int),
		cameFrom:      make(map[*Node]*Node),
		inOpen:        make(map[*Node]*openItem),
		closed:        mapset.New[*Node](),
	}

	startNode := g.node(start)
	goalNode := g.node(goal)

	s.costFromStart[startNode] = 0
	s.push(startNode, h(start, goal))

	for s.open.Len() > 0 {
		current := heap.Pop(&s.open).(*openItem).node
		delete(s.inOpen, current)

		if current == goalNode {
			return s.reconstruct(current), nil
		}
		s.closed.Put(current)

		for _, nb := range current.neighbors {
			if s.closed.Has(nb) || !nb.walkable {
				continue
			}
			tentative := s.costFromStart[current] + StepCost
			if prev, seen := s.costFromStart[nb]; seen && tentative >= prev {
				continue
			}
			s.cameFrom[nb] = current
			s.costFromStart[nb] = tentative
			priority := float64(tentative) + h(nb.pos, goal)

			if item, ok := s.inOpen[nb]; ok {
				// Keep the first insertion sequence for the tie-break.
				item.priority = priority
				heap.Fix(&s.open, item.index)
			} else {
				s.push(nb, priority)
			}
		}
	}

	return []Coord{}, nil
}

// search holds the bookkeeping of a single A* run.
type search struct {
	open          openSet
	inOpen        map[*Node]*openItem
	closed        mapset.Set[*Node]
	costFromStart map[*Node]int
	cameFrom      map[*Node]*Node
	seq           uint64
}

func (s *search) push(n *Node, priority float64) {
	item := &openItem{node: n, priority: priority, seq: s.seq}
	s.seq++
	heap.Push(&s.open, item)
	s.inOpen[n] = item
}

// reconstruct walks cameFrom back from the goal and reverses the result.
func (s *search) reconstruct(goal *Node) []Coord {
	path := []Coord{goal.pos}
	for n, ok := s.cameFrom[goal]; ok; n, ok = s.cameFrom[n] {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type openItem struct {
	node     *Node
	priority float64
	seq      uint64
	index    int
}

// openSet is a min-heap on (priority, seq).
type openSet []*openItem

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *openSet) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
