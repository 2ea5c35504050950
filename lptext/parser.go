package lptext

import (
	"regexp"
	"strconv"
	"strings"
)

// ----------------------------------------------------------------------------
// Expression grammar
// ----------------------------------------------------------------------------

var (
	// prefixRe strips an optional direction prefix such as "Max Z =" or
	// "min profit =" from the front of an objective.
	prefixRe = regexp.MustCompile(`^(?i:max|min)\s+[a-zA-Z]\w*\s*=\s*`)

	// termRe matches one signed linear term: an optional sign, an optional
	// numeric coefficient, an optional '*', then a variable identifier.
	termRe = regexp.MustCompile(`([+-]?\s*\d*\.?\d*)\s*\*?\s*([a-zA-Z]\w*)`)

	// constRe finds a standalone signed numeric literal in whatever text is
	// left after the variable-bearing terms have been removed.
	constRe = regexp.MustCompile(`[+-]?\s*\d+\.?\d*`)

	// relRe splits a constraint at the first relational operator.
	relRe = regexp.MustCompile(`^\s*(.+?)\s*(<=|>=|=)\s*(.+?)\s*$`)
)

// Operator is the relational operator of a constraint.
type Operator string

const (
	LessEq    Operator = "<="
	GreaterEq Operator = ">="
	Equal     Operator = "="
)

type term struct {
	coeff float64
	name  string
}

// parseCoeff normalizes the coefficient text of one term. An empty
// coefficient or a bare "+" means 1, a bare "-" means -1.
func parseCoeff(raw string) (float64, error) {
	c := strings.ReplaceAll(raw, " ", "")
	switch c {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	v, err := strconv.ParseFloat(c, 64)
	if err != nil {
		return 0, &ParseError{Token: raw, Msg: "unparsable coefficient"}
	}
	return v, nil
}

// scanTerms extracts every variable-bearing term from s, left to right.
func scanTerms(s string) ([]term, error) {
	matches := termRe.FindAllStringSubmatch(s, -1)
	terms := make([]term, 0, len(matches))
	for _, m := range matches {
		c, err := parseCoeff(m[1])
		if err != nil {
			return nil, err
		}
		terms = append(terms, term{coeff: c, name: m[2]})
	}
	return terms, nil
}

// stripTerms removes the first occurrence of each matched term from s,
// leaving only text that carries no variable. The residue is where a
// constant term is searched for.
func stripTerms(s string) string {
	rest := s
	for _, m := range termRe.FindAllString(s, -1) {
		rest = strings.Replace(rest, m, "", 1)
	}
	return strings.TrimSpace(rest)
}

// ----------------------------------------------------------------------------
// Objective and constraint parsing
// ----------------------------------------------------------------------------

// ParseObjective parses an objective such as "Max Z = 3x1 + 2x2 - 5" into a
// coefficient map, the variable names in first-seen order, and the trailing
// constant term (-5 above; 0 when absent). The direction prefix is optional.
//
// When a variable appears more than once the later coefficient overwrites
// the earlier one ("2x + 3x" yields 3, not 5). That matches the term
// scanner's long-standing behavior and is relied upon by callers; do not
// change it to summation.
func ParseObjective(text string) (coeffs map[string]float64, variables []string, constant float64, err error) {
	clean := prefixRe.ReplaceAllString(strings.TrimSpace(text), "")

	terms, err := scanTerms(clean)
	if err != nil {
		return nil, nil, 0, err
	}
	coeffs = make(map[string]float64, len(terms))
	for _, t := range terms {
		if _, seen := coeffs[t.name]; !seen {
			variables = append(variables, t.name)
		}
		coeffs[t.name] = t.coeff
	}

	if rest := stripTerms(clean); rest != "" {
		if m := constRe.FindString(rest); m != "" {
			constant, err = strconv.ParseFloat(strings.ReplaceAll(m, " ", ""), 64)
			if err != nil {
				return nil, nil, 0, &ParseError{Token: m, Msg: "unparsable constant"}
			}
		}
	}
	return coeffs, variables, constant, nil
}

// ParseConstraint parses one constraint line such as "2x1 + x2 <= 8" or
// "y >= 3x" against the known variable set. Variables found on the right
// side are moved to the left by subtracting their coefficients, so
// "y >= 3x" yields the same row as "-3x + y >= 0". The returned map has
// exactly one entry per known variable, zero-padded for variables the line
// does not mention; terms naming unknown variables are ignored.
func ParseConstraint(text string, variables []string) (map[string]float64, Operator, float64, error) {
	m := relRe.FindStringSubmatch(text)
	if m == nil {
		return nil, "", 0, &ParseError{Line: text, Msg: "invalid constraint format"}
	}
	lhs, op, rhs := m[1], Operator(m[2]), m[3]

	coeffs := make(map[string]float64, len(variables))
	for _, v := range variables {
		coeffs[v] = 0
	}

	lhsTerms, err := scanTerms(lhs)
	if err != nil {
		return nil, "", 0, err
	}
	for _, t := range lhsTerms {
		if _, known := coeffs[t.name]; known {
			coeffs[t.name] = t.coeff
		}
	}

	rhsTerms, err := scanTerms(rhs)
	if err != nil {
		return nil, "", 0, err
	}
	for _, t := range rhsTerms {
		if _, known := coeffs[t.name]; known {
			coeffs[t.name] -= t.coeff
		}
	}

	// A pure variable-to-variable constraint leaves no residue and an
	// implicit right-hand side of 0.
	var rhsConst float64
	if rest := stripTerms(rhs); rest != "" {
		if v, perr := strconv.ParseFloat(rest, 64); perr == nil {
			rhsConst = v
		} else if lit := constRe.FindString(rest); lit != "" {
			rhsConst, err = strconv.ParseFloat(strings.ReplaceAll(lit, " ", ""), 64)
			if err != nil {
				return nil, "", 0, &ParseError{Line: text, Token: lit, Msg: "unparsable right-hand side"}
			}
		}
	}
	return coeffs, op, rhsConst, nil
}
