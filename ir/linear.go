package ir

import (
	"fmt"
	"strings"
)

// Term is one coefficient*variable summand of a linear expression.
type Term struct {
	Coeff int64
	Var   Variable
}

// LinearExpression is an affine combination of typed variables over
// int64 coefficients. It is a value type, immutable once built; all
// arithmetic helpers return fresh expressions. Terms keep insertion
// order and hold at most one term per variable.
type LinearExpression struct {
	terms []Term
	cst   int64
}

// Const builds the constant expression n.
func Const(n int64) LinearExpression {
	return LinearExpression{cst: n}
}

// VarExpr builds the expression 1*v.
func VarExpr(v Variable) LinearExpression {
	return LinearExpression{terms: []Term{{Coeff: 1, Var: v}}}
}

// Terms returns the non-constant summands in insertion order.
func (e LinearExpression) Terms() []Term { return e.terms }

// Constant returns the constant summand.
func (e LinearExpression) Constant() int64 { return e.cst }

// IsConstant reports whether the expression has no variables.
func (e LinearExpression) IsConstant() bool { return len(e.terms) == 0 }

// SingleVariable yields (v, true) when the expression is exactly 1*v.
func (e LinearExpression) SingleVariable() (Variable, bool) {
	if len(e.terms) == 1 && e.terms[0].Coeff == 1 && e.cst == 0 {
		return e.terms[0].Var, true
	}
	return Variable{}, false
}

// IsVariableOrConstant reports whether the expression is a bare variable
// or a constant. Several statement constructors restrict operands to
// this shape.
func (e LinearExpression) IsVariableOrConstant() bool {
	if e.IsConstant() {
		return true
	}
	_, ok := e.SingleVariable()
	return ok
}

// Variables returns the referenced variables in insertion order.
func (e LinearExpression) Variables() []Variable {
	vs := make([]Variable, 0, len(e.terms))
	for _, t := range e.terms {
		vs = append(vs, t.Var)
	}
	return vs
}

// AddTerm returns e + k*v, dropping the term if its coefficient cancels.
func (e LinearExpression) AddTerm(k int64, v Variable) LinearExpression {
	terms := make([]Term, 0, len(e.terms)+1)
	found := false
	for _, t := range e.terms {
		if t.Var.Equal(v) {
			found = true
			if c := t.Coeff + k; c != 0 {
				terms = append(terms, Term{Coeff: c, Var: t.Var})
			}
			continue
		}
		terms = append(terms, t)
	}
	if !found && k != 0 {
		terms = append(terms, Term{Coeff: k, Var: v})
	}
	return LinearExpression{terms: terms, cst: e.cst}
}

// Plus returns e + n.
func (e LinearExpression) Plus(n int64) LinearExpression {
	terms := append([]Term(nil), e.terms...)
	return LinearExpression{terms: terms, cst: e.cst + n}
}

// Add returns e + o.
func (e LinearExpression) Add(o LinearExpression) LinearExpression {
	res := e.Plus(o.cst)
	for _, t := range o.terms {
		res = res.AddTerm(t.Coeff, t.Var)
	}
	return res
}

// Sub returns e - o.
func (e LinearExpression) Sub(o LinearExpression) LinearExpression {
	return e.Add(o.Mul(-1))
}

// Mul returns k*e.
func (e LinearExpression) Mul(k int64) LinearExpression {
	if k == 0 {
		return Const(0)
	}
	terms := make([]Term, 0, len(e.terms))
	for _, t := range e.terms {
		terms = append(terms, Term{Coeff: t.Coeff * k, Var: t.Var})
	}
	return LinearExpression{terms: terms, cst: e.cst * k}
}

func (e LinearExpression) String() string {
	var sb strings.Builder
	for i, t := range e.terms {
		switch {
		case t.Coeff == 1:
			if i > 0 {
				sb.WriteString(" + ")
			}
		case t.Coeff == -1:
			if i > 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString("-")
			}
		case t.Coeff < 0 && i > 0:
			fmt.Fprintf(&sb, " - %d*", -t.Coeff)
		default:
			if i > 0 {
				sb.WriteString(" + ")
			}
			fmt.Fprintf(&sb, "%d*", t.Coeff)
		}
		sb.WriteString(t.Var.String())
	}
	switch {
	case len(e.terms) == 0:
		fmt.Fprintf(&sb, "%d", e.cst)
	case e.cst > 0:
		fmt.Fprintf(&sb, " + %d", e.cst)
	case e.cst < 0:
		fmt.Fprintf(&sb, " - %d", -e.cst)
	}
	return sb.String()
}

// ConstraintKind relates a linear expression to zero.
type ConstraintKind int

const (
	// Equality is e = 0.
	Equality ConstraintKind = iota
	// Disequality is e != 0.
	Disequality
	// Inequality is e <= 0.
	Inequality
	// StrictInequality is e < 0.
	StrictInequality
)

func (k ConstraintKind) String() string {
	switch k {
	case Equality:
		return "="
	case Disequality:
		return "!="
	case Inequality:
		return "<="
	case StrictInequality:
		return "<"
	default:
		return "?"
	}
}

// LinearConstraint is a linear expression related to zero. Like
// expressions it is an immutable value.
type LinearConstraint struct {
	exp  LinearExpression
	kind ConstraintKind
}

func NewConstraint(e LinearExpression, kind ConstraintKind) LinearConstraint {
	return LinearConstraint{exp: e, kind: kind}
}

// Comparison builders over expressions. All normalize to e OP 0.

// Eq builds e1 = e2.
func Eq(e1, e2 LinearExpression) LinearConstraint {
	return NewConstraint(e1.Sub(e2), Equality)
}

// Neq builds e1 != e2.
func Neq(e1, e2 LinearExpression) LinearConstraint {
	return NewConstraint(e1.Sub(e2), Disequality)
}

// Leq builds e1 <= e2.
func Leq(e1, e2 LinearExpression) LinearConstraint {
	return NewConstraint(e1.Sub(e2), Inequality)
}

// Lt builds e1 < e2.
func Lt(e1, e2 LinearExpression) LinearConstraint {
	return NewConstraint(e1.Sub(e2), StrictInequality)
}

// Geq builds e1 >= e2.
func Geq(e1, e2 LinearExpression) LinearConstraint {
	return Leq(e2, e1)
}

// Gt builds e1 > e2.
func Gt(e1, e2 LinearExpression) LinearConstraint {
	return Lt(e2, e1)
}

func (c LinearConstraint) Expression() LinearExpression { return c.exp }
func (c LinearConstraint) Kind() ConstraintKind         { return c.kind }

// Variables returns the variables referenced by the constraint.
func (c LinearConstraint) Variables() []Variable {
	return c.exp.Variables()
}

// IsTautology reports whether the constraint trivially holds.
func (c LinearConstraint) IsTautology() bool {
	if !c.exp.IsConstant() {
		return false
	}
	n := c.exp.Constant()
	switch c.kind {
	case Equality:
		return n == 0
	case Disequality:
		return n != 0
	case Inequality:
		return n <= 0
	case StrictInequality:
		return n < 0
	}
	return false
}

// IsContradiction reports whether the constraint trivially fails.
func (c LinearConstraint) IsContradiction() bool {
	return c.exp.IsConstant() && !c.IsTautology()
}

func (c LinearConstraint) String() string {
	switch {
	case c.IsTautology():
		return "true"
	case c.IsContradiction():
		return "false"
	}
	// Move the constant to the right-hand side for readability.
	lhs := c.exp.Plus(-c.exp.Constant())
	return fmt.Sprintf("%s %s %d", lhs, c.kind, -c.exp.Constant())
}
