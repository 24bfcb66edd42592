package ir

import "fmt"

// PtrOp relates two pointer operands.
type PtrOp int

const (
	PtrEq PtrOp = iota
	PtrDiseq
)

func (op PtrOp) String() string {
	if op == PtrEq {
		return "=="
	}
	return "!="
}

type ptrCstShape int

const (
	ptrCstTautology ptrCstShape = iota
	ptrCstContradiction
	ptrCstUnary  // lhs OP null
	ptrCstBinary // lhs OP rhs
)

// PointerConstraint constrains one or two pointer variables, possibly
// against null. Immutable value.
type PointerConstraint struct {
	shape ptrCstShape
	op    PtrOp
	lhs   Variable
	rhs   Variable
}

func PtrTautology() PointerConstraint {
	return PointerConstraint{shape: ptrCstTautology}
}

func PtrContradiction() PointerConstraint {
	return PointerConstraint{shape: ptrCstContradiction}
}

// PtrEqNull builds v == null.
func PtrEqNull(v Variable) PointerConstraint {
	return PointerConstraint{shape: ptrCstUnary, op: PtrEq, lhs: v}
}

// PtrDiseqNull builds v != null.
func PtrDiseqNull(v Variable) PointerConstraint {
	return PointerConstraint{shape: ptrCstUnary, op: PtrDiseq, lhs: v}
}

// PtrEqual builds p == q.
func PtrEqual(p, q Variable) PointerConstraint {
	return PointerConstraint{shape: ptrCstBinary, op: PtrEq, lhs: p, rhs: q}
}

// PtrDisequal builds p != q.
func PtrDisequal(p, q Variable) PointerConstraint {
	return PointerConstraint{shape: ptrCstBinary, op: PtrDiseq, lhs: p, rhs: q}
}

func (c PointerConstraint) IsTautology() bool     { return c.shape == ptrCstTautology }
func (c PointerConstraint) IsContradiction() bool { return c.shape == ptrCstContradiction }
func (c PointerConstraint) IsUnary() bool         { return c.shape == ptrCstUnary }
func (c PointerConstraint) Op() PtrOp             { return c.op }
func (c PointerConstraint) Lhs() Variable         { return c.lhs }
func (c PointerConstraint) Rhs() Variable         { return c.rhs }

func (c PointerConstraint) String() string {
	switch c.shape {
	case ptrCstTautology:
		return "true"
	case ptrCstContradiction:
		return "false"
	case ptrCstUnary:
		return fmt.Sprintf("%s %s null", c.lhs, c.op)
	default:
		return fmt.Sprintf("%s %s %s", c.lhs, c.op, c.rhs)
	}
}
