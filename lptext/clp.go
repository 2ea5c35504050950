package lptext

import (
	"fmt"
	"math"
	"strings"

	"github.com/lanl/clp"
	"gonum.org/v1/gonum/floats"
)

// clpSolver drives the COIN-OR CLP primal solver through its dense-problem
// loader. Rows are given as [lower, coefficients..., upper]; the objective
// value is recomputed from the returned column solution.
type clpSolver struct {
	cfg config
}

// CLP simplex statuses 3 and 4; the Go binding does not export names for
// them.
const (
	clpStoppedOnIterations clp.SimplexStatus = 3
	clpStoppedDueToErrors  clp.SimplexStatus = 4
)

func (s *clpSolver) Solve(objectiveText, constraintsText string, maximize bool) *Result {
	return runSolve(s.cfg, BackendCLP, objectiveText, constraintsText, maximize, s.solveProblem)
}

func (s *clpSolver) solveProblem(p *Problem) *Result {
	n := len(p.Variables)
	c := p.costVector()

	bounds := make([][2]float64, n)
	for i := range bounds {
		bounds[i] = [2]float64{0, math.Inf(1)} // x >= 0, no upper bound
	}

	aub, bub, aeq, beq := p.partition()
	rows := make([][]float64, 0, len(aub)+len(aeq))
	for i, coeffs := range aub {
		rows = append(rows, clpRow(math.Inf(-1), coeffs, bub[i]))
	}
	for i, coeffs := range aeq {
		rows = append(rows, clpRow(beq[i], coeffs, beq[i]))
	}

	simp := clp.NewSimplex()
	simp.EasyLoadDenseProblem(c, bounds, rows)
	simp.SetOptimizationDirection(clp.Minimize)
	status := simp.Primal(clp.NoValuesPass, clp.NoStartFinishOptions)

	var log strings.Builder
	fmt.Fprintf(&log, "clp backend: %d variables, %d rows\nprimal status: %v\n", n, len(rows), status)

	switch status {
	case clp.Optimal:
		x := simp.PrimalColumnSolution()
		obj := floats.Dot(c, x)
		fmt.Fprintf(&log, "objective (minimization form): %g\n", obj)
		return p.successResult(x, obj, log.String())
	case clp.Infeasible:
		return p.failureResult(StatusInfeasible, ErrInfeasible, log.String())
	case clp.Unbounded:
		// Dual infeasibility of the primal problem means the objective is
		// unbounded below.
		return p.failureResult(StatusUnbounded, ErrUnbounded, log.String())
	case clpStoppedOnIterations:
		return p.failureResult(StatusIterationLimit, ErrIterationLimit, log.String())
	case clpStoppedDueToErrors:
		return p.failureResult(StatusNotSolved, nil, log.String())
	default:
		return p.failureResult(StatusUnknown, nil, log.String())
	}
}

// clpRow packs one constraint into CLP's [lower, coefficients..., upper]
// dense row form.
func clpRow(lower float64, coeffs []float64, upper float64) []float64 {
	row := make([]float64, 0, len(coeffs)+2)
	row = append(row, lower)
	row = append(row, coeffs...)
	return append(row, upper)
}
