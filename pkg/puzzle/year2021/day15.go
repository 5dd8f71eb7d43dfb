package year2021

import (
	"container/heap"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/geom"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Day15 finds the lowest-risk path through a cave of chitons.
type Day15 struct {
	risk [][]int
}

func (d *Day15) Info() puzzle.Info {
	return puzzle.Info{Name: "Chiton", Year: 2021, Day: 15}
}

func (d *Day15) SetInput(lines []string) error {
	d.risk = nil
	grid, err := puzzle.DigitGrid(lines)
	if err != nil {
		return err
	}
	for y, row := range grid {
		for _, r := range row {
			if r == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "line %d: risk level 0 is not allowed", y+1)
			}
		}
	}
	d.risk = grid
	return nil
}

// PartOne returns the lowest total risk from top left to bottom right.
func (d *Day15) PartOne() (int64, error) {
	if d.risk == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return lowestRisk(d.risk, 1), nil
}

// PartTwo does the same on the map tiled five times in each direction,
// where every tile step adds one to the risk and 9 wraps to 1.
func (d *Day15) PartTwo() (int64, error) {
	if d.risk == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	return lowestRisk(d.risk, 5), nil
}

func lowestRisk(tile [][]int, repeat int) int64 {
	th, tw := len(tile), len(tile[0])
	h, w := th*repeat, tw*repeat
	riskAt := func(p geom.Point2) int {
		r := tile[p.Y%th][p.X%tw] + p.Y/th + p.X/tw
		return (r-1)%9 + 1
	}

	dist := make([]int64, h*w)
	for i := range dist {
		dist[i] = -1
	}
	target := geom.Point2{X: w - 1, Y: h - 1}
	q := &riskQueue{{p: geom.Point2{}, risk: 0}}
	dist[0] = 0
	for q.Len() > 0 {
		cur := heap.Pop(q).(riskItem)
		if cur.p == target {
			return cur.risk
		}
		if cur.risk > dist[cur.p.Y*w+cur.p.X] {
			continue
		}
		for _, step := range geom.Orthogonal {
			n := cur.p.Add(step)
			if !n.InBounds(w, h) {
				continue
			}
			nr := cur.risk + int64(riskAt(n))
			if i := n.Y*w + n.X; dist[i] < 0 || nr < dist[i] {
				dist[i] = nr
				heap.Push(q, riskItem{p: n, risk: nr})
			}
		}
	}
	return dist[h*w-1]
}

type riskItem struct {
	p    geom.Point2
	risk int64
}

// riskQueue is a min-heap of positions ordered by accumulated risk.
type riskQueue []riskItem

func (q riskQueue) Len() int           { return len(q) }
func (q riskQueue) Less(i, j int) bool { return q[i].risk < q[j].risk }
func (q riskQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *riskQueue) Push(x any)        { *q = append(*q, x.(riskItem)) }
func (q *riskQueue) Pop() any {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]
	return item
}
