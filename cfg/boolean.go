package cfg

import (
	"fmt"

	"github.com/kamilababayeva/crab/ir"
)

// BoolOp is the operator of a boolean binary statement.
type BoolOp int

const (
	BoolAnd BoolOp = iota
	BoolOr
	BoolXor
)

func (op BoolOp) String() string {
	switch op {
	case BoolAnd:
		return "&"
	case BoolOr:
		return "|"
	case BoolXor:
		return "^"
	default:
		return "?"
	}
}

// BoolBinaryOp is lhs = left OP right over boolean variables.
type BoolBinaryOp struct {
	stmtBase
	lhs   ir.Variable
	op    BoolOp
	left  ir.Variable
	right ir.Variable
}

func NewBoolBinaryOp(lhs ir.Variable, op BoolOp, left, right ir.Variable, info DebugInfo) *BoolBinaryOp {
	s := &BoolBinaryOp{
		stmtBase: makeStmt(KindBoolBinaryOp, info),
		lhs: lhs, op: op, left: left, right: right,
	}
	s.live.addDef(lhs)
	s.live.addUse(left)
	s.live.addUse(right)
	return s
}

func (s *BoolBinaryOp) Lhs() ir.Variable   { return s.lhs }
func (s *BoolBinaryOp) Op() BoolOp         { return s.op }
func (s *BoolBinaryOp) Left() ir.Variable  { return s.left }
func (s *BoolBinaryOp) Right() ir.Variable { return s.right }

func (s *BoolBinaryOp) Clone() Statement {
	return NewBoolBinaryOp(s.lhs, s.op, s.left, s.right, s.info)
}

func (s *BoolBinaryOp) Accept(v *Visitor) {
	if v.VisitBoolBinaryOp != nil {
		v.VisitBoolBinaryOp(s)
	}
}

func (s *BoolBinaryOp) String() string {
	return fmt.Sprintf("%s = %s %s %s", s.lhs, s.left, s.op, s.right)
}

// BoolAssignCst reifies the truth value of a linear constraint into a
// boolean variable.
type BoolAssignCst struct {
	stmtBase
	lhs ir.Variable
	rhs ir.LinearConstraint
}

func NewBoolAssignCst(lhs ir.Variable, rhs ir.LinearConstraint) *BoolAssignCst {
	s := &BoolAssignCst{stmtBase: makeStmt(KindBoolAssignCst, NoDebug), lhs: lhs, rhs: rhs}
	s.live.addDef(lhs)
	s.live.addUses(rhs.Variables()...)
	return s
}

func (s *BoolAssignCst) Lhs() ir.Variable         { return s.lhs }
func (s *BoolAssignCst) Rhs() ir.LinearConstraint { return s.rhs }

func (s *BoolAssignCst) Clone() Statement {
	return NewBoolAssignCst(s.lhs, s.rhs)
}

func (s *BoolAssignCst) Accept(v *Visitor) {
	if v.VisitBoolAssignCst != nil {
		v.VisitBoolAssignCst(s)
	}
}

func (s *BoolAssignCst) String() string {
	return fmt.Sprintf("%s = (%s)", s.lhs, s.rhs)
}

// BoolAssignVar copies a boolean variable, optionally negated.
type BoolAssignVar struct {
	stmtBase
	lhs     ir.Variable
	rhs     ir.Variable
	negated bool
}

func NewBoolAssignVar(lhs, rhs ir.Variable, negated bool) *BoolAssignVar {
	s := &BoolAssignVar{stmtBase: makeStmt(KindBoolAssignVar, NoDebug), lhs: lhs, rhs: rhs, negated: negated}
	s.live.addDef(lhs)
	s.live.addUse(rhs)
	return s
}

func (s *BoolAssignVar) Lhs() ir.Variable { return s.lhs }
func (s *BoolAssignVar) Rhs() ir.Variable { return s.rhs }
func (s *BoolAssignVar) IsNegated() bool  { return s.negated }

func (s *BoolAssignVar) Clone() Statement {
	return NewBoolAssignVar(s.lhs, s.rhs, s.negated)
}

func (s *BoolAssignVar) Accept(v *Visitor) {
	if v.VisitBoolAssignVar != nil {
		v.VisitBoolAssignVar(s)
	}
}

func (s *BoolAssignVar) String() string {
	if s.negated {
		return fmt.Sprintf("%s = not(%s)", s.lhs, s.rhs)
	}
	return fmt.Sprintf("%s = %s", s.lhs, s.rhs)
}

// BoolAssume restricts paths to those where the boolean variable holds,
// or where it does not if negated.
type BoolAssume struct {
	stmtBase
	cond    ir.Variable
	negated bool
}

func NewBoolAssume(cond ir.Variable, negated bool) *BoolAssume {
	s := &BoolAssume{stmtBase: makeStmt(KindBoolAssume, NoDebug), cond: cond, negated: negated}
	s.live.addUse(cond)
	return s
}

func (s *BoolAssume) Cond() ir.Variable { return s.cond }
func (s *BoolAssume) IsNegated() bool   { return s.negated }

func (s *BoolAssume) Clone() Statement {
	return NewBoolAssume(s.cond, s.negated)
}

func (s *BoolAssume) Accept(v *Visitor) {
	if v.VisitBoolAssume != nil {
		v.VisitBoolAssume(s)
	}
}

func (s *BoolAssume) String() string {
	if s.negated {
		return fmt.Sprintf("assume (not(%s))", s.cond)
	}
	return fmt.Sprintf("assume (%s)", s.cond)
}

// BoolSelect is lhs = ite(cond, left, right) over boolean variables.
type BoolSelect struct {
	stmtBase
	lhs   ir.Variable
	cond  ir.Variable
	left  ir.Variable
	right ir.Variable
}

func NewBoolSelect(lhs, cond, left, right ir.Variable) *BoolSelect {
	s := &BoolSelect{
		stmtBase: makeStmt(KindBoolSelect, NoDebug),
		lhs: lhs, cond: cond, left: left, right: right,
	}
	s.live.addDef(lhs)
	s.live.addUse(cond)
	s.live.addUse(left)
	s.live.addUse(right)
	return s
}

func (s *BoolSelect) Lhs() ir.Variable   { return s.lhs }
func (s *BoolSelect) Cond() ir.Variable  { return s.cond }
func (s *BoolSelect) Left() ir.Variable  { return s.left }
func (s *BoolSelect) Right() ir.Variable { return s.right }

func (s *BoolSelect) Clone() Statement {
	return NewBoolSelect(s.lhs, s.cond, s.left, s.right)
}

func (s *BoolSelect) Accept(v *Visitor) {
	if v.VisitBoolSelect != nil {
		v.VisitBoolSelect(s)
	}
}

func (s *BoolSelect) String() string {
	return fmt.Sprintf("%s = ite(%s,%s,%s)", s.lhs, s.cond, s.left, s.right)
}

// BoolAssert demands that the boolean variable holds on all paths.
type BoolAssert struct {
	stmtBase
	cond ir.Variable
}

func NewBoolAssert(cond ir.Variable, info DebugInfo) *BoolAssert {
	s := &BoolAssert{stmtBase: makeStmt(KindBoolAssert, info), cond: cond}
	s.live.addUse(cond)
	return s
}

func (s *BoolAssert) Cond() ir.Variable { return s.cond }

func (s *BoolAssert) Clone() Statement {
	return NewBoolAssert(s.cond, s.info)
}

func (s *BoolAssert) Accept(v *Visitor) {
	if v.VisitBoolAssert != nil {
		v.VisitBoolAssert(s)
	}
}

func (s *BoolAssert) String() string {
	return fmt.Sprintf("assert (%s)", s.cond)
}
