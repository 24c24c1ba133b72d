package planner

// MatrixTargetIndex is spec §3's deduplicated unique target list plus
// per-column index: first-occurrence order fixes the unique ordering, so two
// requests whose targets first appear in the same order (wherever their
// later duplicates sit) compile to the same unique list, a prerequisite for
// spec §8's duplicate-column determinism property.
type MatrixTargetIndex struct {
	Unique []int32
	// columnToUnique[c] is the index into Unique that original column c
	// refers to.
	columnToUnique []int
	nodeToUnique   map[int32]int
}

// NewMatrixTargetIndex deduplicates targets by first occurrence.
func NewMatrixTargetIndex(targets []int32) *MatrixTargetIndex {
	unique := make([]int32, 0, len(targets))
	pos := make(map[int32]int, len(targets))
	columnToUnique := make([]int, len(targets))

	for i, t := range targets {
		idx, ok := pos[t]
		if !ok {
			idx = len(unique)
			pos[t] = idx
			unique = append(unique, t)
		}
		columnToUnique[i] = idx
	}

	return &MatrixTargetIndex{Unique: unique, columnToUnique: columnToUnique, nodeToUnique: pos}
}

// ColumnUniqueIndex returns the index into Unique that original column c
// refers to.
func (m *MatrixTargetIndex) ColumnUniqueIndex(c int) int { return m.columnToUnique[c] }

// Len returns the number of unique targets.
func (m *MatrixTargetIndex) Len() int { return len(m.Unique) }

// NodeUniqueIndex returns the unique-index for node, if node appears among
// the unique targets. O(1): backed by the map built once at construction.
func (m *MatrixTargetIndex) NodeUniqueIndex(node int32) (int, bool) {
	idx, ok := m.nodeToUnique[node]

	return idx, ok
}
