package lptext

// Status classifies the outcome of a solve independently of which backend
// produced it. Each backend maps its native status vocabulary onto this set.
type Status int

const (
	// StatusUnknown indicates a backend outcome with no clearer mapping.
	StatusUnknown Status = iota
	// StatusOptimal indicates an optimal solution was found.
	StatusOptimal
	// StatusInfeasible indicates the constraints admit no solution.
	StatusInfeasible
	// StatusUnbounded indicates the objective can be improved without limit.
	StatusUnbounded
	// StatusIterationLimit indicates the backend stopped on a resource limit.
	StatusIterationLimit
	// StatusNotSolved indicates the solve never produced a solution, for
	// example because the input failed to parse or the backend gave up.
	StatusNotSolved
	// StatusUndefined indicates the backend left the solution undefined.
	StatusUndefined
)

// String returns the wire name of the status as exposed in results.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusIterationLimit:
		return "iteration_limit"
	case StatusNotSolved:
		return "not_solved"
	case StatusUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}
