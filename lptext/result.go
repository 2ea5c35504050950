package lptext

import "github.com/pkg/errors"

// Constraint is one parsed constraint row. Coeffs always holds exactly one
// entry per variable known to the problem, zero-padded, so every constraint
// is matrix-row compatible.
type Constraint struct {
	Coeffs map[string]float64
	Op     Operator
	RHS    float64
}

// Result is the normalized outcome of one Solve call. A Result is either
// fully successful or fully a failure description; no partial results.
type Result struct {
	Success bool
	Status  Status

	// Populated on success.
	Solution       map[string]float64
	ObjectiveValue float64

	// Echo of the parsed problem, for presentation layers. Populated on
	// success only.
	VariableNames     []string
	ObjectiveCoeffs   map[string]float64
	ObjectiveConstant float64
	Constraints       []Constraint

	// SolverLog carries the backend's diagnostic trail verbatim so callers
	// can surface low-level output without understanding it.
	SolverLog string

	// Error is a human-readable failure description when Success is false.
	Error string
}

// IsOptimal returns true if the solve found an optimal solution.
func (r *Result) IsOptimal() bool {
	return r.Success && r.Status == StatusOptimal
}

// IsInfeasible returns true if the constraints admit no solution.
func (r *Result) IsInfeasible() bool {
	return r.Status == StatusInfeasible
}

// IsUnbounded returns true if the objective is unbounded.
func (r *Result) IsUnbounded() bool {
	return r.Status == StatusUnbounded
}

// Value returns the solution value for a variable by name.
// Returns 0 if the variable is not part of the solution.
func (r *Result) Value(name string) float64 {
	return r.Solution[name]
}

// Err maps a failure result back into the error taxonomy. It returns nil
// for successful results.
func (r *Result) Err() error {
	if r.Success {
		return nil
	}
	switch r.Status {
	case StatusInfeasible:
		return ErrInfeasible
	case StatusUnbounded:
		return ErrUnbounded
	case StatusIterationLimit:
		return ErrIterationLimit
	}
	return errors.New(r.Error)
}
