package planner

import "math"

// MatrixQueryContext is the matrix-mode analogue of PlannerQueryContext:
// it wraps one PlannerQueryContext (reused per row, exactly as route()
// reuses it per query) plus the per-target resolution buffers that live
// for the duration of one row. Buffers grow on first use and are reused
// across rows and across requests.
type MatrixQueryContext struct {
	Row *PlannerQueryContext

	targetResolved     []bool
	targetBestCost     []float64
	targetBestArrival  []int64
}

// NewMatrixQueryContext allocates a context sized for a graph with
// nodeCount nodes.
func NewMatrixQueryContext(nodeCount int32) *MatrixQueryContext {
	return &MatrixQueryContext{Row: NewPlannerQueryContext(nodeCount)}
}

// resetRow clears the row's PlannerQueryContext and re-sizes/clears the
// target buffers for n unique targets.
func (m *MatrixQueryContext) resetRow(n int) {
	m.Row.Reset()

	if cap(m.targetResolved) < n {
		m.targetResolved = make([]bool, n)
		m.targetBestCost = make([]float64, n)
		m.targetBestArrival = make([]int64, n)
	} else {
		m.targetResolved = m.targetResolved[:n]
		m.targetBestCost = m.targetBestCost[:n]
		m.targetBestArrival = m.targetBestArrival[:n]
	}
	for i := 0; i < n; i++ {
		m.targetResolved[i] = false
		m.targetBestCost[i] = math.Inf(1)
		m.targetBestArrival[i] = 0
	}
}

func (m *MatrixQueryContext) resolve(idx int, cost float64, arrival int64) {
	m.targetResolved[idx] = true
	m.targetBestCost[idx] = cost
	m.targetBestArrival[idx] = arrival
}

func (m *MatrixQueryContext) unresolvedCount() int {
	n := 0
	for _, r := range m.targetResolved {
		if !r {
			n++
		}
	}

	return n
}

func (m *MatrixQueryContext) maxResolvedCost() float64 {
	best := math.Inf(-1)
	for i, r := range m.targetResolved {
		if r && m.targetBestCost[i] > best {
			best = m.targetBestCost[i]
		}
	}

	return best
}
