package lptext

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	convexlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// simplexSolver drives gonum's dense simplex method. It assembles explicit
// inequality and equality matrices, converts them to standard form and
// recovers the original variables from the standard-form vertex.
type simplexSolver struct {
	cfg config
}

func (s *simplexSolver) Solve(objectiveText, constraintsText string, maximize bool) *Result {
	return runSolve(s.cfg, BackendSimplex, objectiveText, constraintsText, maximize, s.solveProblem)
}

func (s *simplexSolver) solveProblem(p *Problem) *Result {
	n := len(p.Variables)
	c := p.costVector()
	aub, bub, aeq, beq := p.partition()

	// lp.Convert treats the variables as free, so the standing x >= 0
	// invariant enters as explicit -x_i <= 0 rows.
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		row[i] = -1
		aub = append(aub, row)
		bub = append(bub, 0)
	}

	g := denseMatrix(aub, n)
	var a mat.Matrix
	if len(aeq) > 0 {
		a = denseMatrix(aeq, n)
	}
	cStd, aStd, bStd := convexlp.Convert(c, g, bub, a, beq)

	var log strings.Builder
	fmt.Fprintf(&log, "simplex backend: %d variables, %d inequality rows, %d equality rows\n",
		n, len(bub), len(beq))

	opt, xStd, err := convexlp.Simplex(cStd, aStd, bStd, s.cfg.tol, nil)
	if err != nil {
		fmt.Fprintf(&log, "status: %v\n", err)
		return p.failureResult(simplexStatus(err), err, log.String())
	}

	// Convert splits each variable into positive and negative parts; the
	// standard-form vertex is laid out [x+, x-, slacks].
	x := make([]float64, n)
	for i := range x {
		x[i] = xStd[i] - xStd[n+i]
	}
	fmt.Fprintf(&log, "status: optimal\nobjective (minimization form): %g\n", opt)
	return p.successResult(x, opt, log.String())
}

// simplexStatus maps gonum's simplex errors onto the shared status set.
func simplexStatus(err error) Status {
	switch err {
	case convexlp.ErrInfeasible:
		return StatusInfeasible
	case convexlp.ErrUnbounded:
		return StatusUnbounded
	case convexlp.ErrSingular, convexlp.ErrLinSolve, convexlp.ErrZeroColumn, convexlp.ErrZeroRow:
		return StatusNotSolved
	}
	return StatusUnknown
}

// denseMatrix packs dense rows into a gonum matrix with one column per
// variable.
func denseMatrix(rows [][]float64, cols int) *mat.Dense {
	m := mat.NewDense(len(rows), cols, nil)
	for i, r := range rows {
		m.SetRow(i, r)
	}
	return m
}
