package lptext

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBackends() []Backend {
	return []Backend{BackendSimplex, BackendGLPK, BackendCLP}
}

func newSolver(t *testing.T, b Backend) Solver {
	t.Helper()
	s, err := New(b)
	require.NoError(t, err)
	return s
}

// The scenario table runs against every backend: the same input must yield
// the same normalized result no matter which engine solved it.
var solveScenarios = []struct {
	name        string
	objective   string
	constraints string
	maximize    bool
	wantValue   float64
	wantVars    map[string]float64
}{
	{
		name:      "production planning",
		objective: "x + y - 50",
		constraints: "50x+24y<=2400\n" +
			"30x+33y<=2100\n" +
			"x>=45\n" +
			"y>=5",
		maximize: true,
		// x + y is 51.25 at the optimum; the parsed constant -50 is added
		// back into the reported objective.
		wantValue: 1.25,
		wantVars:  map[string]float64{"x": 45, "y": 6.25},
	},
	{
		name:        "simple maximization",
		objective:   "3x + 2y",
		constraints: "x+y<=4\n2x+y<=5",
		maximize:    true,
		wantValue:   9,
		wantVars:    map[string]float64{"x": 1, "y": 3},
	},
	{
		name:        "minimization with constant",
		objective:   "Min Z = 2x + 10",
		constraints: "x >= 3",
		maximize:    false,
		wantValue:   16,
		wantVars:    map[string]float64{"x": 3},
	},
	{
		name:        "equality constraint",
		objective:   "2x + y",
		constraints: "x + y = 4\nx <= 1",
		maximize:    true,
		wantValue:   5,
		wantVars:    map[string]float64{"x": 1, "y": 3},
	},
}

func TestSolveScenarios(t *testing.T) {
	for _, b := range testBackends() {
		for _, tc := range solveScenarios {
			t.Run(fmt.Sprintf("%s/%s", b, tc.name), func(t *testing.T) {
				res := newSolver(t, b).Solve(tc.objective, tc.constraints, tc.maximize)

				require.True(t, res.Success, "error: %s", res.Error)
				require.Equal(t, StatusOptimal, res.Status)
				assert.Equal(t, "optimal", res.Status.String())
				assert.InDelta(t, tc.wantValue, res.ObjectiveValue, 1e-3)
				for name, want := range tc.wantVars {
					assert.InDelta(t, want, res.Value(name), 1e-3, "variable %s", name)
				}
				assert.NotEmpty(t, res.SolverLog)
			})
		}
	}
}

func TestSolveInfeasible(t *testing.T) {
	for _, b := range testBackends() {
		t.Run(b.String(), func(t *testing.T) {
			res := newSolver(t, b).Solve("x+y", "x+y<=1\nx+y>=2", true)

			require.False(t, res.Success)
			assert.Equal(t, StatusInfeasible, res.Status)
			assert.ErrorIs(t, res.Err(), ErrInfeasible)
			assert.NotEmpty(t, res.Error)
		})
	}
}

// Backends differ on unbounded problems: some report unboundedness, others
// return an extreme finite vertex. Both outcomes are accepted.
func TestSolveUnbounded(t *testing.T) {
	for _, b := range testBackends() {
		t.Run(b.String(), func(t *testing.T) {
			res := newSolver(t, b).Solve("x+y", "x-y>=1", true)

			if res.Success {
				assert.GreaterOrEqual(t, res.ObjectiveValue, 1000.0)
			} else {
				assert.Equal(t, StatusUnbounded, res.Status)
				assert.ErrorIs(t, res.Err(), ErrUnbounded)
			}
		})
	}
}

func TestSolveParseFailureAbortsWholeSolve(t *testing.T) {
	for _, b := range testBackends() {
		t.Run(b.String(), func(t *testing.T) {
			res := newSolver(t, b).Solve("x + y", "x <= 4\nx + y\ny <= 2", true)

			require.False(t, res.Success)
			assert.Equal(t, StatusNotSolved, res.Status)
			assert.Contains(t, res.Error, `"x + y"`)
			assert.Contains(t, res.Error, "invalid constraint format")
			assert.Nil(t, res.Solution)
		})
	}
}

func TestSolveEmptyObjective(t *testing.T) {
	for _, b := range testBackends() {
		t.Run(b.String(), func(t *testing.T) {
			res := newSolver(t, b).Solve("", "", true)

			require.True(t, res.Success)
			assert.Equal(t, StatusOptimal, res.Status)
			assert.Empty(t, res.Solution)
			assert.Zero(t, res.ObjectiveValue)
		})
	}
}

// Minimizing a non-negative objective with no constraints at all must land
// on the zero vector; only the non-negativity bounds are active.
func TestSolveNoConstraintsMinimize(t *testing.T) {
	for _, b := range testBackends() {
		t.Run(b.String(), func(t *testing.T) {
			res := newSolver(t, b).Solve("x + y", "", false)

			require.True(t, res.Success, "error: %s", res.Error)
			assert.InDelta(t, 0, res.ObjectiveValue, 1e-9)
			assert.InDelta(t, 0, res.Value("x"), 1e-9)
			assert.InDelta(t, 0, res.Value("y"), 1e-9)
		})
	}
}

func TestSolveNoConstraintsMaximize(t *testing.T) {
	for _, b := range testBackends() {
		t.Run(b.String(), func(t *testing.T) {
			res := newSolver(t, b).Solve("x + y", "", true)

			if res.Success {
				assert.GreaterOrEqual(t, res.ObjectiveValue, 1000.0)
			} else {
				assert.Equal(t, StatusUnbounded, res.Status)
			}
		})
	}
}

// Re-deriving the objective from the echoed coefficients, constant and
// solution must reproduce the reported objective value.
func TestSolveRoundTrip(t *testing.T) {
	for _, b := range testBackends() {
		for _, tc := range solveScenarios {
			t.Run(fmt.Sprintf("%s/%s", b, tc.name), func(t *testing.T) {
				res := newSolver(t, b).Solve(tc.objective, tc.constraints, tc.maximize)
				require.True(t, res.Success)

				derived := res.ObjectiveConstant
				for name, coeff := range res.ObjectiveCoeffs {
					derived += coeff * res.Solution[name]
				}
				assert.InDelta(t, res.ObjectiveValue, derived, 1e-6)
			})
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	for _, b := range testBackends() {
		t.Run(b.String(), func(t *testing.T) {
			s := newSolver(t, b)
			first := s.Solve("3x + 2y", "x+y<=4\n2x+y<=5", true)
			second := s.Solve("3x + 2y", "x+y<=4\n2x+y<=5", true)
			assert.Equal(t, first, second)
		})
	}
}

// Every backend must agree on feasible, bounded problems. Optimal vertices
// are not always unique (the transportation example has tied shipping
// plans), so only the objective value and the problem echo are compared.
func TestCrossBackendEquivalence(t *testing.T) {
	for _, ex := range Examples() {
		t.Run(ex.Name, func(t *testing.T) {
			results := make([]*Result, 0, len(testBackends()))
			for _, b := range testBackends() {
				res := newSolver(t, b).Solve(ex.Objective, ex.Constraints, ex.Maximize)
				require.True(t, res.Success, "backend %s: %s", b, res.Error)
				require.Equal(t, StatusOptimal, res.Status, "backend %s", b)
				results = append(results, res)
			}
			ref := results[0]
			for i, res := range results[1:] {
				assert.InDelta(t, ref.ObjectiveValue, res.ObjectiveValue, 1e-3,
					"objective mismatch between %s and %s", testBackends()[0], testBackends()[i+1])
				require.Equal(t, ref.VariableNames, res.VariableNames)
			}
		})
	}
}

func TestSolveEchoesParsedProblem(t *testing.T) {
	res := newSolver(t, BackendSimplex).Solve("3x + 2y", "x+y<=4\n2x+y<=5", true)
	require.True(t, res.Success)

	assert.Equal(t, []string{"x", "y"}, res.VariableNames)
	assert.Equal(t, map[string]float64{"x": 3, "y": 2}, res.ObjectiveCoeffs)
	assert.Zero(t, res.ObjectiveConstant)
	require.Len(t, res.Constraints, 2)
	assert.Equal(t, Constraint{Coeffs: map[string]float64{"x": 1, "y": 1}, Op: LessEq, RHS: 4}, res.Constraints[0])
	assert.Equal(t, Constraint{Coeffs: map[string]float64{"x": 2, "y": 1}, Op: LessEq, RHS: 5}, res.Constraints[1])
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(Backend(99))
	require.Error(t, err)
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusOptimal:        "optimal",
		StatusInfeasible:     "infeasible",
		StatusUnbounded:      "unbounded",
		StatusIterationLimit: "iteration_limit",
		StatusNotSolved:      "not_solved",
		StatusUndefined:      "undefined",
		StatusUnknown:        "unknown",
		Status(42):           "unknown",
	}
	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}
}

func TestResultErr(t *testing.T) {
	assert.NoError(t, (&Result{Success: true, Status: StatusOptimal}).Err())
	assert.ErrorIs(t, (&Result{Status: StatusInfeasible}).Err(), ErrInfeasible)
	assert.ErrorIs(t, (&Result{Status: StatusUnbounded}).Err(), ErrUnbounded)
	assert.ErrorIs(t, (&Result{Status: StatusIterationLimit}).Err(), ErrIterationLimit)
	assert.EqualError(t, (&Result{Status: StatusNotSolved, Error: "boom"}).Err(), "boom")
}
