package cfg

import (
	"fmt"
	"io"
	"strings"

	"github.com/kamilababayeva/crab/ir"
)

// Block is a basic block: an ordered statement sequence plus the
// labels of its predecessor and successor blocks. Blocks are created
// through Cfg.Insert and identified by label; adjacency is always kept
// symmetric, so an edge recorded on one endpoint is recorded on the
// other.
type Block struct {
	label Label
	stmts []Statement
	prev  []Label
	next  []Label
	track Precision
	// insertFront redirects the next statement insertion to the front
	// of the block, then resets.
	insertFront bool
	live        ir.VarSet
}

func newBlock(label Label, track Precision) *Block {
	return &Block{label: label, track: track, live: ir.MakeVarSet()}
}

func (b *Block) Label() Label { return b.label }

// Statements returns the block's statement sequence in execution
// order. The slice is shared; callers must not mutate it.
func (b *Block) Statements() []Statement { return b.stmts }

func (b *Block) Size() int { return len(b.stmts) }

// Live returns the union of the use and def sets of every statement
// in the block. It only grows as statements are added.
func (b *Block) Live() ir.VarSet { return b.live }

// SetInsertPointFront makes the next inserted statement go to the
// front of the block instead of the back.
func (b *Block) SetInsertPointFront() { b.insertFront = true }

func (b *Block) insert(s Statement) {
	if b.insertFront {
		b.stmts = append([]Statement{s}, b.stmts...)
		b.insertFront = false
	} else {
		b.stmts = append(b.stmts, s)
	}
	lv := s.Live()
	b.live = b.live.Join(ir.MakeVarSet(lv.Uses()...)).Join(ir.MakeVarSet(lv.Defs()...))
}

// Prev returns the labels of the predecessor blocks.
func (b *Block) Prev() []Label { return append([]Label(nil), b.prev...) }

// Next returns the labels of the successor blocks.
func (b *Block) Next() []Label { return append([]Label(nil), b.next...) }

func addLabel(s []Label, l Label) []Label {
	for _, x := range s {
		if x == l {
			return s
		}
	}
	return append(s, l)
}

func removeLabel(s []Label, l Label) []Label {
	for i, x := range s {
		if x == l {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// AddSuccessor records the edge b -> o on both endpoints. Adding an
// existing edge is a no-op.
func (b *Block) AddSuccessor(o *Block) {
	b.next = addLabel(b.next, o.label)
	o.prev = addLabel(o.prev, b.label)
}

// RemoveSuccessor erases the edge b -> o from both endpoints.
func (b *Block) RemoveSuccessor(o *Block) {
	b.next = removeLabel(b.next, o.label)
	o.prev = removeLabel(o.prev, b.label)
}

// MergeBack appends the statements of o to the end of b, joining the
// live sets. Edges are untouched.
func (b *Block) MergeBack(o *Block) {
	b.stmts = append(b.stmts, o.stmts...)
	b.live = b.live.Join(o.live)
}

// MergeFront prepends the statements of o to the front of b, joining
// the live sets.
func (b *Block) MergeFront(o *Block) {
	b.stmts = append(append([]Statement(nil), o.stmts...), b.stmts...)
	b.live = b.live.Join(o.live)
}

// Clone deep-copies the block: statements, adjacency and live set all
// become independent of the original.
func (b *Block) Clone() *Block {
	c := newBlock(b.label, b.track)
	c.stmts = make([]Statement, len(b.stmts))
	for i, s := range b.stmts {
		c.stmts[i] = s.Clone()
	}
	c.prev = append([]Label(nil), b.prev...)
	c.next = append([]Label(nil), b.next...)
	c.live = b.live
	return c
}

func (b *Block) hasKind(kinds ...StmtKind) bool {
	for _, s := range b.stmts {
		for _, k := range kinds {
			if s.Kind() == k {
				return true
			}
		}
	}
	return false
}

// Numeric statement builders.

func (b *Block) BinaryOp(lhs ir.Variable, op BinOp, e1, e2 ir.LinearExpression) {
	b.insert(NewBinaryOp(lhs, op, e1, e2, NoDebug))
}

func (b *Block) Add(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpAdd, e1, e2)
}

func (b *Block) Sub(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpSub, e1, e2)
}

func (b *Block) Mul(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpMul, e1, e2)
}

func (b *Block) Div(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpSDiv, e1, e2)
}

func (b *Block) UDiv(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpUDiv, e1, e2)
}

func (b *Block) Rem(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpSRem, e1, e2)
}

func (b *Block) URem(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpURem, e1, e2)
}

func (b *Block) BitwiseAnd(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpAnd, e1, e2)
}

func (b *Block) BitwiseOr(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpOr, e1, e2)
}

func (b *Block) BitwiseXor(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpXor, e1, e2)
}

func (b *Block) Shl(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpShl, e1, e2)
}

func (b *Block) LShr(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpLShr, e1, e2)
}

func (b *Block) AShr(lhs ir.Variable, e1, e2 ir.LinearExpression) {
	b.BinaryOp(lhs, OpAShr, e1, e2)
}

func (b *Block) Assign(lhs ir.Variable, rhs ir.LinearExpression) {
	b.insert(NewAssign(lhs, rhs))
}

func (b *Block) Assume(cst ir.LinearConstraint) {
	b.insert(NewAssume(cst))
}

func (b *Block) Havoc(v ir.Variable) {
	b.insert(NewHavoc(v))
}

func (b *Block) Unreachable() {
	b.insert(NewUnreachable())
}

func (b *Block) Select(lhs ir.Variable, cond ir.LinearConstraint, e1, e2 ir.LinearExpression) {
	b.insert(NewSelect(lhs, cond, e1, e2))
}

// SelectVar is Select with a variable condition, read as v >= 1.
func (b *Block) SelectVar(lhs, v ir.Variable, e1, e2 ir.LinearExpression) {
	cond := ir.Geq(ir.VarExpr(v), ir.Const(1))
	b.insert(NewSelect(lhs, cond, e1, e2))
}

func (b *Block) Assertion(cst ir.LinearConstraint, info DebugInfo) {
	b.insert(NewAssert(cst, info))
}

func (b *Block) Truncate(src, dst ir.Variable, info DebugInfo) {
	b.insert(NewIntCast(CastTrunc, src, dst, info))
}

func (b *Block) SExt(src, dst ir.Variable, info DebugInfo) {
	b.insert(NewIntCast(CastSExt, src, dst, info))
}

func (b *Block) ZExt(src, dst ir.Variable, info DebugInfo) {
	b.insert(NewIntCast(CastZExt, src, dst, info))
}

// Function call builders.

func (b *Block) CallSite(fn string, lhs, args []ir.Variable) {
	b.insert(NewCallSite(fn, lhs, args))
}

func (b *Block) Ret(vs ...ir.Variable) {
	b.insert(NewReturn(vs))
}

// Boolean statement builders.

func (b *Block) BoolBinaryOp(lhs ir.Variable, op BoolOp, v1, v2 ir.Variable) {
	b.insert(NewBoolBinaryOp(lhs, op, v1, v2, NoDebug))
}

func (b *Block) BoolAnd(lhs, v1, v2 ir.Variable) {
	b.BoolBinaryOp(lhs, BoolAnd, v1, v2)
}

func (b *Block) BoolOr(lhs, v1, v2 ir.Variable) {
	b.BoolBinaryOp(lhs, BoolOr, v1, v2)
}

func (b *Block) BoolXor(lhs, v1, v2 ir.Variable) {
	b.BoolBinaryOp(lhs, BoolXor, v1, v2)
}

func (b *Block) BoolAssignCst(lhs ir.Variable, rhs ir.LinearConstraint) {
	b.insert(NewBoolAssignCst(lhs, rhs))
}

func (b *Block) BoolAssignVar(lhs, rhs ir.Variable) {
	b.insert(NewBoolAssignVar(lhs, rhs, false))
}

func (b *Block) BoolNotAssignVar(lhs, rhs ir.Variable) {
	b.insert(NewBoolAssignVar(lhs, rhs, true))
}

func (b *Block) BoolAssume(v ir.Variable) {
	b.insert(NewBoolAssume(v, false))
}

func (b *Block) BoolNotAssume(v ir.Variable) {
	b.insert(NewBoolAssume(v, true))
}

func (b *Block) BoolSelect(lhs, cond, v1, v2 ir.Variable) {
	b.insert(NewBoolSelect(lhs, cond, v1, v2))
}

func (b *Block) BoolAssert(v ir.Variable, info DebugInfo) {
	b.insert(NewBoolAssert(v, info))
}

// Array statement builders. These apply only when the graph tracks
// array contents; against a lower precision they do nothing and
// report false.

func (b *Block) ArrayAssume(arr ir.Variable, lb, ub, val ir.LinearExpression) bool {
	if b.track < TrackArr {
		return false
	}
	b.insert(NewArrayAssume(arr, lb, ub, val))
	return true
}

func (b *Block) ArrayStore(arr ir.Variable, lb, ub, val ir.LinearExpression, elemSize uint64, singleton bool) bool {
	if b.track < TrackArr {
		return false
	}
	b.insert(NewArrayStore(arr, lb, ub, val, elemSize, singleton))
	return true
}

func (b *Block) ArrayLoad(lhs, arr ir.Variable, index ir.LinearExpression, elemSize uint64) bool {
	if b.track < TrackArr {
		return false
	}
	b.insert(NewArrayLoad(lhs, arr, index, elemSize))
	return true
}

func (b *Block) ArrayAssign(lhs, rhs ir.Variable) bool {
	if b.track < TrackArr {
		return false
	}
	b.insert(NewArrayAssign(lhs, rhs))
	return true
}

// Pointer statement builders, gated the same way on pointer tracking.

func (b *Block) PtrLoad(lhs, rhs ir.Variable, info DebugInfo) bool {
	if b.track < TrackPtr {
		return false
	}
	b.insert(NewPtrLoad(lhs, rhs, info))
	return true
}

func (b *Block) PtrStore(lhs, rhs ir.Variable, info DebugInfo) bool {
	if b.track < TrackPtr {
		return false
	}
	b.insert(NewPtrStore(lhs, rhs, info))
	return true
}

func (b *Block) PtrAssign(lhs, rhs ir.Variable, offset ir.LinearExpression) bool {
	if b.track < TrackPtr {
		return false
	}
	b.insert(NewPtrAssign(lhs, rhs, offset))
	return true
}

func (b *Block) PtrObject(lhs ir.Variable, address uint64) bool {
	if b.track < TrackPtr {
		return false
	}
	b.insert(NewPtrObject(lhs, address))
	return true
}

func (b *Block) PtrFunction(lhs ir.Variable, fn ir.VarName) bool {
	if b.track < TrackPtr {
		return false
	}
	b.insert(NewPtrFunction(lhs, fn))
	return true
}

func (b *Block) PtrNull(lhs ir.Variable) bool {
	if b.track < TrackPtr {
		return false
	}
	b.insert(NewPtrNull(lhs))
	return true
}

func (b *Block) PtrAssume(cst ir.PointerConstraint) bool {
	if b.track < TrackPtr {
		return false
	}
	b.insert(NewPtrAssume(cst))
	return true
}

func (b *Block) PtrAssert(cst ir.PointerConstraint, info DebugInfo) bool {
	if b.track < TrackPtr {
		return false
	}
	b.insert(NewPtrAssert(cst, info))
	return true
}

// Write renders the block in the textual graph format: label, one
// indented statement per line, then the successor list.
func (b *Block) Write(w io.Writer) {
	fmt.Fprintf(w, "%s:\n", b.label)
	for _, s := range b.stmts {
		fmt.Fprintf(w, "  %s;\n", s)
	}
	fmt.Fprint(w, "  --> [")
	for i, l := range b.next {
		if i > 0 {
			fmt.Fprint(w, ";")
		}
		fmt.Fprint(w, l)
	}
	fmt.Fprint(w, "]\n")
}

func (b *Block) String() string {
	var sb strings.Builder
	b.Write(&sb)
	return sb.String()
}
