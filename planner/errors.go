package planner

import "errors"

// Sentinel errors, grouped by the taxonomy in spec §7: contract mismatch,
// budget exceeded (one code per kind), numeric safety, reconstruction.
var (
	ErrContractMismatch = errors.New("planner: cost engine graph/profile store does not match planner construction")

	ErrBudgetSettledStates = errors.New("planner: max_settled_states exceeded")
	ErrBudgetLabels        = errors.New("planner: max_labels exceeded")
	ErrBudgetFrontierSize  = errors.New("planner: max_frontier_size exceeded")
	ErrBudgetRowWork       = errors.New("planner: max_row_work_states exceeded")
	ErrBudgetRowLabels     = errors.New("planner: max_row_labels exceeded")
	ErrBudgetRowFrontier   = errors.New("planner: max_row_frontier_size exceeded")
	ErrBudgetRequestWork   = errors.New("planner: max_request_work_states exceeded")

	ErrNonFinitePriority  = errors.New("planner: frontier priority is non-finite or negative")
	ErrNonFiniteEdgeCost  = errors.New("planner: edge cost is non-finite during replay")
	ErrNonFiniteCumulative = errors.New("planner: cumulative path cost is non-finite during replay")

	ErrReconstructionMismatch = errors.New("planner: reconstructed edge path is discontinuous")
)
