package planner

// activeLabelLists is the per-edge active-label-list structure from spec
// §9: an integer-keyed map from edge_id to a small dynamic array of label
// ids. Cleared on reset via a "touched edges" list, so a query that only
// ever touches a tiny fraction of the graph's edges never pays for
// clearing the whole map.
type activeLabelLists struct {
	byEdge  map[int32][]int32
	touched []int32
}

func newActiveLabelLists() *activeLabelLists {
	return &activeLabelLists{byEdge: make(map[int32][]int32)}
}

// reset truncates (not deletes) the label-id slice for every touched edge,
// so the underlying backing arrays are reused across queries.
func (a *activeLabelLists) reset() {
	for _, e := range a.touched {
		if lst, ok := a.byEdge[e]; ok {
			a.byEdge[e] = lst[:0]
		}
	}
	a.touched = a.touched[:0]
}

func (a *activeLabelLists) touch(edgeID int32) {
	a.touched = append(a.touched, edgeID)
}

// insert implements spec §4.4's dominance-insert: scan the active list for
// edgeID; if any active label dominates the candidate, discard it (return
// false); otherwise deactivate any active labels the candidate dominates,
// append the new label to the arena, and record it in the active list.
func (a *activeLabelLists) insert(labels *labelStore, edgeID int32, g float32, arrival int64, predecessor int32) (int32, bool) {
	lst := a.byEdge[edgeID]
	for _, id := range lst {
		if labels.isActive(id) && labels.dominates(id, g, arrival) {
			return -1, false
		}
	}
	for _, id := range lst {
		if labels.isActive(id) && labels.dominatesLabel(g, arrival, id) {
			labels.deactivate(id)
		}
	}

	newID := labels.append(edgeID, g, arrival, predecessor)
	a.touch(edgeID)
	a.byEdge[edgeID] = append(a.byEdge[edgeID], newID)

	return newID, true
}
