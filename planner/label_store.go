package planner

// labelStore is the per-query label arena (spec §9): append-only parallel
// arrays indexed by an integer label id, never individually freed — only
// truncated wholesale on reset. This mirrors the teacher's distaste for
// per-node heap allocation in the dijkstra hot loop, generalized from one
// slot per vertex to one slot per (edge, arrival) label.
type labelStore struct {
	edgeID      []int32
	gScore      []float32
	arrival     []int64
	predecessor []int32
	active      []bool
}

func newLabelStore() *labelStore {
	return &labelStore{}
}

// reset truncates every array to length zero without releasing backing
// storage, so a query context that has grown to its steady-state size
// never reallocates on subsequent queries.
func (s *labelStore) reset() {
	s.edgeID = s.edgeID[:0]
	s.gScore = s.gScore[:0]
	s.arrival = s.arrival[:0]
	s.predecessor = s.predecessor[:0]
	s.active = s.active[:0]
}

func (s *labelStore) append(edgeID int32, g float32, arrival int64, predecessor int32) int32 {
	id := int32(len(s.edgeID))
	s.edgeID = append(s.edgeID, edgeID)
	s.gScore = append(s.gScore, g)
	s.arrival = append(s.arrival, arrival)
	s.predecessor = append(s.predecessor, predecessor)
	s.active = append(s.active, true)

	return id
}

func (s *labelStore) isActive(id int32) bool { return s.active[id] }

func (s *labelStore) deactivate(id int32) { s.active[id] = false }

// dominates reports whether the already-stored label id dominates a
// candidate (g, arrival) pair: spec §4.4's "A dominates B iff g_a ≤ g_b AND
// arr_a ≤ arr_b", read with id playing the role of A.
func (s *labelStore) dominates(id int32, g float32, arrival int64) bool {
	return s.gScore[id] <= g && s.arrival[id] <= arrival
}

// dominatesLabel reports whether a candidate (g, arrival) pair dominates
// the already-stored label id — the mirror image of dominates, used to
// find existing labels the new one should deactivate.
func (s *labelStore) dominatesLabel(g float32, arrival int64, id int32) bool {
	return g <= s.gScore[id] && arrival <= s.arrival[id]
}
