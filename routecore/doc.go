// Package routecore is the thin facade RouteCore wraps around the
// planner/cost/overlay/heuristic kernels: request validation, external-id
// translation, dispatch to the point-to-point or matrix planner, and
// response assembly back into external ids. Grounded on matrix/api.go's
// "facades delegate, never duplicate kernel logic" style, generalized from
// a single-package wrapper into a cross-package one.
package routecore
