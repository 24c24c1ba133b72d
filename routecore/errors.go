package routecore

import (
	"errors"
	"fmt"

	"github.com/AayushPS/taro/heuristic"
	"github.com/AayushPS/taro/planner"
)

// RouteError is the boundary error type every RouteCore operation returns
// on failure: a stable reason code (grouped by subsystem per spec §6/§7)
// plus the underlying cause. Grounded on matrix's "wrap with a stable
// prefix, let callers errors.Is against the sentinel" convention
// (matrixErrorf), generalized into a named type so the code survives
// unwrapping unambiguously.
type RouteError struct {
	Code string
	Err  error
}

func (e *RouteError) Error() string { return fmt.Sprintf("%s: %v", e.Code, e.Err) }
func (e *RouteError) Unwrap() error { return e.Err }

func wrapf(code string, sentinel error, detailFmt string, args ...any) error {
	return &RouteError{Code: code, Err: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(detailFmt, args...))}
}

func wrap(code string, err error) error {
	return &RouteError{Code: code, Err: err}
}

// Reason-code prefixes, grouped by subsystem (spec §6's "stable textual
// prefix convention grouped by subsystem"). Never change these strings:
// downstream ops tooling asserts on them.
const (
	codeValidation    = "route-core-validation"
	codeContract      = "contract-mismatch"
	codeBudget        = "budget-exceeded"
	codeNumericSafety = "numeric-safety"
	codeHeuristicCfg  = "heuristic-configuration"
	codeLiveOverlay   = "live-overlay-input"
	codeUnknownID     = "unknown-id"
)

// Input validation sentinels (spec §7).
var (
	ErrBlankID                    = errors.New("routecore: external id is blank")
	ErrUnknownID                  = errors.New("routecore: external id not recognized by the id mapper")
	ErrAlgorithmHeuristicMismatch = errors.New("routecore: dijkstra requires the none heuristic")
	ErrNilIDMapper                = errors.New("routecore: id mapper is required")
	ErrEmptyMatrixSources         = errors.New("routecore: matrix request has no sources")
	ErrEmptyMatrixTargets         = errors.New("routecore: matrix request has no targets")
)

// Heuristic configuration sentinels (spec §7).
var ErrHeuristicNotConfigured = errors.New("routecore: requested heuristic was not configured for this instance")

// validationErr wraps one of the sentinels above under the stable
// route-core-validation code.
func validationErr(sentinel error, detail string) error {
	if detail == "" {
		return wrap(codeValidation, sentinel)
	}

	return wrapf(codeValidation, sentinel, "%s", detail)
}

// unknownIDErr is reported under its own code (codeUnknownID) rather than
// the generic validation code, since callers commonly branch on "is this
// id simply unrecognized" separately from "is this request malformed".
func unknownIDErr(external string) error {
	return wrapf(codeUnknownID, ErrUnknownID, "id=%q", external)
}

// fromKernel re-codes an error surfaced by cost/overlay/heuristic/planner
// into a RouteError, preserving the underlying sentinel for errors.Is
// while attaching the subsystem-appropriate reason code.
func fromKernel(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, planner.ErrContractMismatch),
		errors.Is(err, heuristic.ErrLandmarkSignatureMismatch),
		errors.Is(err, planner.ErrReconstructionMismatch):
		return wrap(codeContract, err)
	case isBudgetError(err):
		return wrap(codeBudget, err)
	case errors.Is(err, planner.ErrNonFinitePriority),
		errors.Is(err, planner.ErrNonFiniteEdgeCost),
		errors.Is(err, planner.ErrNonFiniteCumulative):
		return wrap(codeNumericSafety, err)
	default:
		return wrap(codeValidation, err)
	}
}

var budgetSentinelLabels = map[error]string{
	planner.ErrBudgetSettledStates: "settled_states",
	planner.ErrBudgetLabels:        "labels",
	planner.ErrBudgetFrontierSize:  "frontier_size",
	planner.ErrBudgetRowWork:       "row_work_states",
	planner.ErrBudgetRowLabels:     "row_labels",
	planner.ErrBudgetRowFrontier:   "row_frontier_size",
	planner.ErrBudgetRequestWork:   "request_work_states",
}

// isBudgetError reports whether err matches any of the planner's seven
// distinct budget-exceeded sentinels.
func isBudgetError(err error) bool {
	return budgetReasonLabel(err) != ""
}

// budgetReasonLabel returns a low-cardinality label naming which budget
// kind a budget-exceeded error belongs to, or "" if err isn't one. Used
// for the metrics label instead of the error string, whose "%d exceeded"
// detail would otherwise produce one label value per call.
func budgetReasonLabel(err error) string {
	for sentinel, label := range budgetSentinelLabels {
		if errors.Is(err, sentinel) {
			return label
		}
	}

	return ""
}
