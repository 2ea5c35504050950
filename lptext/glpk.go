package lptext

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lukpank/go-glpk/glpk"
)

// glpkSolver builds an algebraic GLPK model - named columns, a linear
// objective, linear constraint rows - and solves it through the MIP-capable
// branch-and-cut entry point, recovering values from the solved decision
// variables. All columns are continuous here, so branch-and-cut reduces to
// the underlying LP solve.
type glpkSolver struct {
	cfg config
}

func (s *glpkSolver) Solve(objectiveText, constraintsText string, maximize bool) *Result {
	return runSolve(s.cfg, BackendGLPK, objectiveText, constraintsText, maximize, s.solveProblem)
}

func (s *glpkSolver) solveProblem(p *Problem) *Result {
	lp := glpk.New()
	defer lp.Delete()
	lp.SetProbName("lptext")
	lp.SetObjName("Z")
	// Maximization is handled upstream by negating the cost vector, like
	// every other backend.
	lp.SetObjDir(glpk.MIN)

	c := p.costVector()
	cols := make([]int, len(p.Variables))
	for i, name := range p.Variables {
		col := lp.AddCols(1)
		cols[i] = col
		lp.SetColName(col, name)
		lp.SetColBnds(col, glpk.LO, 0, 0) // x >= 0, no upper bound
		lp.SetObjCoef(col, c[i])
	}

	aub, bub, aeq, beq := p.partition()
	addRow := func(coeffs []float64) int {
		row := lp.AddRows(1)
		// ind[0] and val[0] are ignored by SetMatRow; zero coefficients
		// are filtered out.
		ind := make([]int32, 1, len(coeffs)+1)
		val := make([]float64, 1, len(coeffs)+1)
		for j, v := range coeffs {
			if v != 0 {
				ind = append(ind, int32(cols[j]))
				val = append(val, v)
			}
		}
		lp.SetMatRow(row, ind, val)
		return row
	}
	for i, coeffs := range aub {
		row := addRow(coeffs)
		lp.SetRowName(row, fmt.Sprintf("r%d", row))
		lp.SetRowBnds(row, glpk.UP, 0, bub[i])
	}
	for i, coeffs := range aeq {
		row := addRow(coeffs)
		lp.SetRowName(row, fmt.Sprintf("r%d", row))
		lp.SetRowBnds(row, glpk.FX, beq[i], beq[i])
	}

	var log strings.Builder
	fmt.Fprintf(&log, "glpk backend: %d columns, %d rows\n", len(cols), len(aub)+len(aeq))
	s.appendModelEcho(lp, &log)

	iocp := glpk.NewIocp()
	iocp.SetPresolve(true)
	if err := lp.Intopt(iocp); err != nil {
		fmt.Fprintf(&log, "intopt: %v\n", err)
		status := glpkOptStatus(err)
		return p.failureResult(status, &BackendError{Backend: BackendGLPK, Err: err}, log.String())
	}

	switch st := lp.MipStatus(); st {
	case glpk.OPT:
		x := make([]float64, len(cols))
		for i, col := range cols {
			x[i] = lp.MipColVal(col)
		}
		obj := lp.MipObjVal()
		fmt.Fprintf(&log, "status: optimal\nobjective (minimization form): %g\n", obj)
		return p.successResult(x, obj, log.String())
	case glpk.NOFEAS:
		fmt.Fprintf(&log, "status: no feasible solution\n")
		return p.failureResult(StatusInfeasible, nil, log.String())
	case glpk.FEAS:
		fmt.Fprintf(&log, "status: feasible but not proven optimal\n")
		return p.failureResult(StatusNotSolved, nil, log.String())
	case glpk.UNDEF:
		fmt.Fprintf(&log, "status: solution undefined\n")
		return p.failureResult(StatusUndefined, nil, log.String())
	default:
		fmt.Fprintf(&log, "status: %v\n", st)
		return p.failureResult(StatusUnknown, nil, log.String())
	}
}

// appendModelEcho dumps the model in CPLEX LP format into the solver log so
// callers can inspect exactly what GLPK was given. The dump goes through a
// scratch file that is removed before returning on every path.
func (s *glpkSolver) appendModelEcho(lp *glpk.Prob, log *strings.Builder) {
	tmp, err := os.CreateTemp("", "lptext-*.lp")
	if err != nil {
		return
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	if err := lp.WriteLP(nil, path); err != nil {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	log.Write(data)
}

// glpkOptStatus maps the errors of GLPK's branch-and-cut driver onto the
// shared status set. Infeasibility and unboundedness of the LP relaxation
// surface as ENOPFS and ENODFS when the presolver is on.
func glpkOptStatus(err error) Status {
	var oe glpk.OptError
	if !errors.As(err, &oe) {
		return StatusUnknown
	}
	switch oe {
	case glpk.ENOPFS:
		return StatusInfeasible
	case glpk.ENODFS:
		return StatusUnbounded
	case glpk.EITLIM, glpk.ETMLIM:
		return StatusIterationLimit
	case glpk.EFAIL:
		return StatusNotSolved
	}
	return StatusUnknown
}
