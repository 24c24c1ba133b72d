package planner

import "fmt"

// SearchBudget enforces spec §4.6's deterministic stop points for a
// point-to-point query. A non-positive field means that dimension is
// unbounded — grounded on the teacher's tsp.bbEngine soft-deadline style:
// cheap counter comparisons checked at well-defined points in the loop
// rather than scattered defensive checks.
type SearchBudget struct {
	MaxSettledStates int
	MaxLabels        int
	MaxFrontierSize  int
}

func unbounded(limit int) bool { return limit <= 0 }

// CheckSettledStates returns a reason-coded error once count exceeds
// MaxSettledStates.
func (b SearchBudget) CheckSettledStates(count int) error {
	if !unbounded(b.MaxSettledStates) && count > b.MaxSettledStates {
		return fmt.Errorf("%w: settled=%d limit=%d", ErrBudgetSettledStates, count, b.MaxSettledStates)
	}

	return nil
}

// CheckLabels returns a reason-coded error once count exceeds MaxLabels.
func (b SearchBudget) CheckLabels(count int) error {
	if !unbounded(b.MaxLabels) && count > b.MaxLabels {
		return fmt.Errorf("%w: labels=%d limit=%d", ErrBudgetLabels, count, b.MaxLabels)
	}

	return nil
}

// CheckFrontierSize returns a reason-coded error once size exceeds
// MaxFrontierSize.
func (b SearchBudget) CheckFrontierSize(size int) error {
	if !unbounded(b.MaxFrontierSize) && size > b.MaxFrontierSize {
		return fmt.Errorf("%w: frontier=%d limit=%d", ErrBudgetFrontierSize, size, b.MaxFrontierSize)
	}

	return nil
}

// MatrixBudget is SearchBudget's matrix-mode counterpart: per-row bounds
// plus one per-request bound shared across all rows of a single matrix()
// call (spec §4.6).
type MatrixBudget struct {
	MaxRowWorkStates     int
	MaxRowLabels         int
	MaxRowFrontierSize   int
	MaxRequestWorkStates int
}

// CheckRowWork returns a reason-coded error once count exceeds
// MaxRowWorkStates.
func (b MatrixBudget) CheckRowWork(count int) error {
	if !unbounded(b.MaxRowWorkStates) && count > b.MaxRowWorkStates {
		return fmt.Errorf("%w: row_work=%d limit=%d", ErrBudgetRowWork, count, b.MaxRowWorkStates)
	}

	return nil
}

// CheckRowLabels returns a reason-coded error once count exceeds
// MaxRowLabels.
func (b MatrixBudget) CheckRowLabels(count int) error {
	if !unbounded(b.MaxRowLabels) && count > b.MaxRowLabels {
		return fmt.Errorf("%w: row_labels=%d limit=%d", ErrBudgetRowLabels, count, b.MaxRowLabels)
	}

	return nil
}

// CheckRowFrontier returns a reason-coded error once size exceeds
// MaxRowFrontierSize.
func (b MatrixBudget) CheckRowFrontier(size int) error {
	if !unbounded(b.MaxRowFrontierSize) && size > b.MaxRowFrontierSize {
		return fmt.Errorf("%w: row_frontier=%d limit=%d", ErrBudgetRowFrontier, size, b.MaxRowFrontierSize)
	}

	return nil
}

// CheckRequestWork returns a reason-coded error once count, accumulated
// across every row of the request so far, exceeds MaxRequestWorkStates.
func (b MatrixBudget) CheckRequestWork(count int) error {
	if !unbounded(b.MaxRequestWorkStates) && count > b.MaxRequestWorkStates {
		return fmt.Errorf("%w: request_work=%d limit=%d", ErrBudgetRequestWork, count, b.MaxRequestWorkStates)
	}

	return nil
}
