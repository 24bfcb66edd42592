package cfg

import (
	"fmt"

	"github.com/kamilababayeva/crab/ir"
)

// BinOp is the arithmetic operator of a binary statement.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpSDiv
	OpUDiv
	OpSRem
	OpURem
	OpAnd
	OpOr
	OpXor
	OpShl
	OpLShr
	OpAShr
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpSDiv:
		return "/"
	case OpUDiv:
		return "/_u"
	case OpSRem:
		return "%"
	case OpURem:
		return "%_u"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	case OpShl:
		return "<<"
	case OpLShr:
		return ">>_l"
	case OpAShr:
		return ">>_a"
	default:
		return "?"
	}
}

// BinaryOp is lhs = left OP right over numeric operands.
type BinaryOp struct {
	stmtBase
	lhs   ir.Variable
	op    BinOp
	left  ir.LinearExpression
	right ir.LinearExpression
}

func NewBinaryOp(lhs ir.Variable, op BinOp, left, right ir.LinearExpression, info DebugInfo) *BinaryOp {
	s := &BinaryOp{
		stmtBase: makeStmt(KindBinaryOp, info),
		lhs: lhs, op: op, left: left, right: right,
	}
	s.live.addDef(lhs)
	s.live.addUses(left.Variables()...)
	s.live.addUses(right.Variables()...)
	return s
}

func (s *BinaryOp) Lhs() ir.Variable           { return s.lhs }
func (s *BinaryOp) Op() BinOp                  { return s.op }
func (s *BinaryOp) Left() ir.LinearExpression  { return s.left }
func (s *BinaryOp) Right() ir.LinearExpression { return s.right }

func (s *BinaryOp) Clone() Statement {
	return NewBinaryOp(s.lhs, s.op, s.left, s.right, s.info)
}

func (s *BinaryOp) Accept(v *Visitor) {
	if v.VisitBinaryOp != nil {
		v.VisitBinaryOp(s)
	}
}

func (s *BinaryOp) String() string {
	return fmt.Sprintf("%s = %s%s%s", s.lhs, s.left, s.op, s.right)
}

// Assign is lhs = rhs for a numeric lhs and a linear rhs.
type Assign struct {
	stmtBase
	lhs ir.Variable
	rhs ir.LinearExpression
}

func NewAssign(lhs ir.Variable, rhs ir.LinearExpression) *Assign {
	s := &Assign{stmtBase: makeStmt(KindAssign, NoDebug), lhs: lhs, rhs: rhs}
	s.live.addDef(lhs)
	s.live.addUses(rhs.Variables()...)
	return s
}

func (s *Assign) Lhs() ir.Variable         { return s.lhs }
func (s *Assign) Rhs() ir.LinearExpression { return s.rhs }

func (s *Assign) Clone() Statement {
	return NewAssign(s.lhs, s.rhs)
}

func (s *Assign) Accept(v *Visitor) {
	if v.VisitAssign != nil {
		v.VisitAssign(s)
	}
}

func (s *Assign) String() string {
	return fmt.Sprintf("%s = %s", s.lhs, s.rhs)
}

// Assume restricts all paths through its block to those satisfying the
// constraint.
type Assume struct {
	stmtBase
	cst ir.LinearConstraint
}

func NewAssume(cst ir.LinearConstraint) *Assume {
	s := &Assume{stmtBase: makeStmt(KindAssume, NoDebug), cst: cst}
	s.live.addUses(cst.Variables()...)
	return s
}

func (s *Assume) Constraint() ir.LinearConstraint { return s.cst }

func (s *Assume) Clone() Statement {
	return NewAssume(s.cst)
}

func (s *Assume) Accept(v *Visitor) {
	if v.VisitAssume != nil {
		v.VisitAssume(s)
	}
}

func (s *Assume) String() string {
	return fmt.Sprintf("assume (%s)", s.cst)
}

// Unreachable marks its block as dead code.
type Unreachable struct {
	stmtBase
}

func NewUnreachable() *Unreachable {
	return &Unreachable{stmtBase: makeStmt(KindUnreachable, NoDebug)}
}

func (s *Unreachable) Clone() Statement {
	return NewUnreachable()
}

func (s *Unreachable) Accept(v *Visitor) {
	if v.VisitUnreachable != nil {
		v.VisitUnreachable(s)
	}
}

func (s *Unreachable) String() string {
	return "unreachable"
}

// Havoc forgets everything known about its variable.
type Havoc struct {
	stmtBase
	lhs ir.Variable
}

func NewHavoc(lhs ir.Variable) *Havoc {
	s := &Havoc{stmtBase: makeStmt(KindHavoc, NoDebug), lhs: lhs}
	s.live.addDef(lhs)
	return s
}

func (s *Havoc) Variable() ir.Variable { return s.lhs }

func (s *Havoc) Clone() Statement {
	return NewHavoc(s.lhs)
}

func (s *Havoc) Accept(v *Visitor) {
	if v.VisitHavoc != nil {
		v.VisitHavoc(s)
	}
}

func (s *Havoc) String() string {
	return fmt.Sprintf("%s =*", s.lhs)
}

// Select is lhs = ite(cond, left, right). A select is not strictly
// needed (it can be simulated by splitting blocks) but front ends emit
// many of them, so supporting it natively avoids a blow up in the size
// of the CFG.
type Select struct {
	stmtBase
	lhs   ir.Variable
	cond  ir.LinearConstraint
	left  ir.LinearExpression
	right ir.LinearExpression
}

func NewSelect(lhs ir.Variable, cond ir.LinearConstraint, left, right ir.LinearExpression) *Select {
	s := &Select{
		stmtBase: makeStmt(KindSelect, NoDebug),
		lhs: lhs, cond: cond, left: left, right: right,
	}
	s.live.addDef(lhs)
	s.live.addUses(cond.Variables()...)
	s.live.addUses(left.Variables()...)
	s.live.addUses(right.Variables()...)
	return s
}

func (s *Select) Lhs() ir.Variable           { return s.lhs }
func (s *Select) Cond() ir.LinearConstraint  { return s.cond }
func (s *Select) Left() ir.LinearExpression  { return s.left }
func (s *Select) Right() ir.LinearExpression { return s.right }

func (s *Select) Clone() Statement {
	return NewSelect(s.lhs, s.cond, s.left, s.right)
}

func (s *Select) Accept(v *Visitor) {
	if v.VisitSelect != nil {
		v.VisitSelect(s)
	}
}

func (s *Select) String() string {
	return fmt.Sprintf("%s = ite(%s,%s,%s)", s.lhs, s.cond, s.left, s.right)
}

// Assert demands the constraint on all paths through its block.
type Assert struct {
	stmtBase
	cst ir.LinearConstraint
}

func NewAssert(cst ir.LinearConstraint, info DebugInfo) *Assert {
	s := &Assert{stmtBase: makeStmt(KindAssert, info), cst: cst}
	s.live.addUses(cst.Variables()...)
	return s
}

func (s *Assert) Constraint() ir.LinearConstraint { return s.cst }

func (s *Assert) Clone() Statement {
	return NewAssert(s.cst, s.info)
}

func (s *Assert) Accept(v *Visitor) {
	if v.VisitAssert != nil {
		v.VisitAssert(s)
	}
}

func (s *Assert) String() string {
	return fmt.Sprintf("assert (%s)", s.cst)
}

// CastOp is the conversion performed by an integer cast.
type CastOp int

const (
	CastTrunc CastOp = iota
	CastSExt
	CastZExt
)

func (op CastOp) String() string {
	switch op {
	case CastTrunc:
		return "trunc"
	case CastSExt:
		return "sext"
	case CastZExt:
		return "zext"
	default:
		return "?"
	}
}

// IntCast converts between integer widths with explicit semantics:
// truncation narrows, sign/zero extension widens.
type IntCast struct {
	stmtBase
	op  CastOp
	src ir.Variable
	dst ir.Variable
}

func NewIntCast(op CastOp, src, dst ir.Variable, info DebugInfo) *IntCast {
	s := &IntCast{stmtBase: makeStmt(KindIntCast, info), op: op, src: src, dst: dst}
	s.live.addUse(src)
	s.live.addDef(dst)
	return s
}

func (s *IntCast) Op() CastOp       { return s.op }
func (s *IntCast) Src() ir.Variable { return s.src }
func (s *IntCast) Dst() ir.Variable { return s.dst }
func (s *IntCast) SrcWidth() int    { return s.src.Width() }
func (s *IntCast) DstWidth() int    { return s.dst.Width() }

func (s *IntCast) Clone() Statement {
	return NewIntCast(s.op, s.src, s.dst, s.info)
}

func (s *IntCast) Accept(v *Visitor) {
	if v.VisitIntCast != nil {
		v.VisitIntCast(s)
	}
}

func (s *IntCast) String() string {
	return fmt.Sprintf("%s %s:%d to %s:%d", s.op, s.src, s.SrcWidth(), s.dst, s.DstWidth())
}
