// Package lptext solves linear programs stated as free-form algebraic text.
//
// An objective such as "Max Z = 3x + 2y" and constraints given one per line
// ("x+y<=4", "2x+y<=5") are parsed into a coefficient model and handed to a
// numerical backend; the backend's outcome is normalized into a single
// Result schema regardless of which backend ran. Variables are always
// non-negative with no upper bound.
//
// Example:
//
//	solver, err := lptext.New(lptext.BackendSimplex)
//	if err != nil {
//		log.Fatal(err)
//	}
//	res := solver.Solve("3x + 2y", "x+y<=4\n2x+y<=5", true)
//	if res.IsOptimal() {
//		fmt.Println(res.ObjectiveValue, res.Solution)
//	}
package lptext

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// ----------------------------------------------------------------------------
// Solver contract
// ----------------------------------------------------------------------------

// Solver solves a textual linear program. Implementations are safe for use
// from multiple goroutines as long as each call site uses its own instance;
// a call's intermediate matrices belong solely to that call.
type Solver interface {
	// Solve parses the objective and the constraints (one per line, blank
	// lines ignored) and runs the backend. A Result is always returned;
	// failures are encoded in its Status and Error fields, never panicked
	// or left as backend-native errors.
	Solve(objectiveText, constraintsText string, maximize bool) *Result
}

// Backend selects the numerical engine behind a Solver.
type Backend int

const (
	// BackendSimplex builds dense matrices and solves them with gonum's
	// simplex method.
	BackendSimplex Backend = iota
	// BackendGLPK builds an algebraic model and solves it through GLPK's
	// branch-and-cut entry point.
	BackendGLPK
	// BackendCLP builds dense rows and solves them with the COIN-OR CLP
	// primal solver.
	BackendCLP
)

// String returns a human-readable name of the backend.
func (b Backend) String() string {
	switch b {
	case BackendSimplex:
		return "simplex"
	case BackendGLPK:
		return "glpk"
	case BackendCLP:
		return "clp"
	default:
		return "unknown"
	}
}

// New returns a Solver backed by the selected engine.
func New(backend Backend, opts ...Option) (Solver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	switch backend {
	case BackendSimplex:
		return &simplexSolver{cfg: *cfg}, nil
	case BackendGLPK:
		return &glpkSolver{cfg: *cfg}, nil
	case BackendCLP:
		return &clpSolver{cfg: *cfg}, nil
	}
	return nil, errors.Errorf("lptext: unknown backend %d", backend)
}

// ----------------------------------------------------------------------------
// Options
// ----------------------------------------------------------------------------

// Option configures a Solver.
type Option func(*config)

type config struct {
	logger *slog.Logger
	tol    float64
}

func defaultConfig() *config {
	return &config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tol:    1e-10,
	}
}

// WithLogger injects a structured logger for per-call diagnostics. The
// default discards everything; there is no package-global logging state.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithTolerance sets the numerical tolerance passed to backends that take
// one.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		c.tol = tol
	}
}

// ----------------------------------------------------------------------------
// Shared solve pipeline
// ----------------------------------------------------------------------------

// runSolve performs the steps common to every adapter: build the problem,
// short-circuit the empty model, delegate to the backend, and log the
// outcome.
func runSolve(cfg config, backend Backend, objectiveText, constraintsText string, maximize bool, solve func(*Problem) *Result) *Result {
	p, err := newProblem(objectiveText, constraintsText, maximize)
	if err != nil {
		cfg.logger.Error("parse failed", "backend", backend, "err", err)
		return parseFailure(err)
	}
	cfg.logger.Debug("model built",
		"backend", backend,
		"variables", len(p.Variables),
		"constraints", len(p.Constraints),
		"maximize", maximize)

	if len(p.Variables) == 0 {
		return p.emptyResult()
	}

	r := solve(p)
	if r.Success {
		cfg.logger.Info("solved", "backend", backend, "status", r.Status, "objective", r.ObjectiveValue)
	} else {
		cfg.logger.Warn("not solved", "backend", backend, "status", r.Status, "err", r.Error)
	}
	return r
}
