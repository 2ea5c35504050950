package lptext

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Problem is the coefficient model shared by every backend: the parsed
// objective, the canonical variable order, and the parsed constraints.
// A Problem is built fresh per solve call and never mutated afterwards.
type Problem struct {
	// Variables in ascending lexicographic order. This order, not the order
	// of first appearance, fixes the column order of every vector and
	// matrix handed to a backend and the key order of result maps.
	Variables []string

	Objective map[string]float64
	Constant  float64
	Maximize  bool

	Constraints []Constraint
}

// newProblem runs the steps every adapter shares: parse the objective, fix
// the canonical variable order, split the constraint text into non-empty
// lines and parse each against that order. A parse failure on any single
// line aborts the whole build; no partial constraint set is ever solved.
func newProblem(objectiveText, constraintsText string, maximize bool) (*Problem, error) {
	coeffs, names, constant, err := ParseObjective(objectiveText)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing objective %q", objectiveText)
	}

	vars := make([]string, len(names))
	copy(vars, names)
	sort.Strings(vars)

	p := &Problem{
		Variables: vars,
		Objective: coeffs,
		Constant:  constant,
		Maximize:  maximize,
	}

	for _, line := range strings.Split(constraintsText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rowCoeffs, op, rhs, err := ParseConstraint(line, p.Variables)
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing constraint %q", line)
		}
		p.Constraints = append(p.Constraints, Constraint{Coeffs: rowCoeffs, Op: op, RHS: rhs})
	}
	return p, nil
}

// costVector returns the objective coefficients in canonical order, negated
// when maximizing: every backend is driven in minimization form.
func (p *Problem) costVector() []float64 {
	c := make([]float64, len(p.Variables))
	for i, v := range p.Variables {
		c[i] = p.Objective[v]
	}
	if p.Maximize {
		floats.Scale(-1, c)
	}
	return c
}

// row returns one constraint's dense coefficient row in canonical order.
func (p *Problem) row(c Constraint) []float64 {
	r := make([]float64, len(p.Variables))
	for i, v := range p.Variables {
		r[i] = c.Coeffs[v]
	}
	return r
}

// partition splits the constraints into inequality and equality rows,
// folding every >= row onto the <= side by negating both sides.
func (p *Problem) partition() (aub [][]float64, bub []float64, aeq [][]float64, beq []float64) {
	for _, c := range p.Constraints {
		r := p.row(c)
		switch c.Op {
		case GreaterEq:
			floats.Scale(-1, r)
			aub = append(aub, r)
			bub = append(bub, -c.RHS)
		case Equal:
			aeq = append(aeq, r)
			beq = append(beq, c.RHS)
		default:
			aub = append(aub, r)
			bub = append(bub, c.RHS)
		}
	}
	return aub, bub, aeq, beq
}

// objectiveValue maps a backend's minimization objective back to user
// space: un-negated for maximization, then the parsed constant added back.
func (p *Problem) objectiveValue(backendObj float64) float64 {
	if p.Maximize {
		backendObj = -backendObj
	}
	return backendObj + p.Constant
}

// successResult assembles an optimal result from a solution vector in
// canonical variable order and the backend's minimization objective.
func (p *Problem) successResult(x []float64, backendObj float64, log string) *Result {
	sol := make(map[string]float64, len(p.Variables))
	for i, v := range p.Variables {
		sol[v] = x[i]
	}
	return &Result{
		Success:           true,
		Status:            StatusOptimal,
		Solution:          sol,
		ObjectiveValue:    p.objectiveValue(backendObj),
		VariableNames:     p.Variables,
		ObjectiveCoeffs:   p.Objective,
		ObjectiveConstant: p.Constant,
		Constraints:       p.Constraints,
		SolverLog:         log,
	}
}

// emptyResult is the short-circuit for a problem with no variables: nothing
// to optimize, trivially optimal at the parsed constant.
func (p *Problem) emptyResult() *Result {
	r := p.successResult(nil, 0, "empty model: nothing to optimize\n")
	return r
}

// failureResult assembles a failure description for the given normalized
// status. The backend's own error, if any, is appended to the message.
func (p *Problem) failureResult(status Status, err error, log string) *Result {
	msg := "optimization failed: " + status.String()
	if err != nil {
		msg += ": " + err.Error()
	}
	return &Result{
		Status:    status,
		SolverLog: log,
		Error:     msg,
	}
}

// parseFailure wraps a parse error as a failure result. The backend never
// ran, so the status is not_solved.
func parseFailure(err error) *Result {
	return &Result{
		Status: StatusNotSolved,
		Error:  err.Error(),
	}
}
