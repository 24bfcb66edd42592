package cfg

import (
	"fmt"

	"github.com/kamilababayeva/crab/ir"
)

// PtrLoad is lhs = *rhs.
type PtrLoad struct {
	stmtBase
	lhs ir.Variable
	rhs ir.Variable
}

func NewPtrLoad(lhs, rhs ir.Variable, info DebugInfo) *PtrLoad {
	if rhs.Type() != ir.PtrType {
		panic(statementError("pointer load through non-pointer variable %s", rhs.WriteTyped()))
	}
	s := &PtrLoad{stmtBase: makeStmt(KindPtrLoad, info), lhs: lhs, rhs: rhs}
	s.live.addDef(lhs)
	s.live.addUse(lhs)
	s.live.addUse(rhs)
	return s
}

func (s *PtrLoad) Lhs() ir.Variable { return s.lhs }
func (s *PtrLoad) Rhs() ir.Variable { return s.rhs }

func (s *PtrLoad) Clone() Statement {
	return NewPtrLoad(s.lhs, s.rhs, s.info)
}

func (s *PtrLoad) Accept(v *Visitor) {
	if v.VisitPtrLoad != nil {
		v.VisitPtrLoad(s)
	}
}

func (s *PtrLoad) String() string {
	return fmt.Sprintf("%s = *(%s)", s.lhs, s.rhs)
}

// PtrStore is *lhs = rhs.
type PtrStore struct {
	stmtBase
	lhs ir.Variable
	rhs ir.Variable
}

func NewPtrStore(lhs, rhs ir.Variable, info DebugInfo) *PtrStore {
	if lhs.Type() != ir.PtrType {
		panic(statementError("pointer store through non-pointer variable %s", lhs.WriteTyped()))
	}
	s := &PtrStore{stmtBase: makeStmt(KindPtrStore, info), lhs: lhs, rhs: rhs}
	s.live.addUse(lhs)
	s.live.addUse(rhs)
	return s
}

func (s *PtrStore) Lhs() ir.Variable { return s.lhs }
func (s *PtrStore) Rhs() ir.Variable { return s.rhs }

func (s *PtrStore) Clone() Statement {
	return NewPtrStore(s.lhs, s.rhs, s.info)
}

func (s *PtrStore) Accept(v *Visitor) {
	if v.VisitPtrStore != nil {
		v.VisitPtrStore(s)
	}
}

func (s *PtrStore) String() string {
	return fmt.Sprintf("*(%s) = %s", s.lhs, s.rhs)
}

// PtrAssign is lhs = rhs + offset, pointer arithmetic with a linear
// offset.
type PtrAssign struct {
	stmtBase
	lhs    ir.Variable
	rhs    ir.Variable
	offset ir.LinearExpression
}

func NewPtrAssign(lhs, rhs ir.Variable, offset ir.LinearExpression) *PtrAssign {
	if lhs.Type() != ir.PtrType || rhs.Type() != ir.PtrType {
		panic(statementError("pointer assignment between non-pointer variables %s and %s",
			lhs.WriteTyped(), rhs.WriteTyped()))
	}
	s := &PtrAssign{stmtBase: makeStmt(KindPtrAssign, NoDebug), lhs: lhs, rhs: rhs, offset: offset}
	s.live.addDef(lhs)
	s.live.addUse(rhs)
	s.live.addUses(offset.Variables()...)
	return s
}

func (s *PtrAssign) Lhs() ir.Variable            { return s.lhs }
func (s *PtrAssign) Rhs() ir.Variable            { return s.rhs }
func (s *PtrAssign) Offset() ir.LinearExpression { return s.offset }

func (s *PtrAssign) Clone() Statement {
	return NewPtrAssign(s.lhs, s.rhs, s.offset)
}

func (s *PtrAssign) Accept(v *Visitor) {
	if v.VisitPtrAssign != nil {
		v.VisitPtrAssign(s)
	}
}

func (s *PtrAssign) String() string {
	return fmt.Sprintf("%s = %s + %s", s.lhs, s.rhs, s.offset)
}

// PtrObject makes lhs point at the statically allocated memory object
// identified by address.
type PtrObject struct {
	stmtBase
	lhs     ir.Variable
	address uint64
}

func NewPtrObject(lhs ir.Variable, address uint64) *PtrObject {
	if lhs.Type() != ir.PtrType {
		panic(statementError("object address into non-pointer variable %s", lhs.WriteTyped()))
	}
	s := &PtrObject{stmtBase: makeStmt(KindPtrObject, NoDebug), lhs: lhs, address: address}
	s.live.addDef(lhs)
	return s
}

func (s *PtrObject) Lhs() ir.Variable { return s.lhs }
func (s *PtrObject) Address() uint64  { return s.address }

func (s *PtrObject) Clone() Statement {
	return NewPtrObject(s.lhs, s.address)
}

func (s *PtrObject) Accept(v *Visitor) {
	if v.VisitPtrObject != nil {
		v.VisitPtrObject(s)
	}
}

func (s *PtrObject) String() string {
	return fmt.Sprintf("%s = &(%d)", s.lhs, s.address)
}

// PtrFunction makes lhs point at a function.
type PtrFunction struct {
	stmtBase
	lhs ir.Variable
	fn  ir.VarName
}

func NewPtrFunction(lhs ir.Variable, fn ir.VarName) *PtrFunction {
	if lhs.Type() != ir.PtrType {
		panic(statementError("function address into non-pointer variable %s", lhs.WriteTyped()))
	}
	s := &PtrFunction{stmtBase: makeStmt(KindPtrFunction, NoDebug), lhs: lhs, fn: fn}
	s.live.addDef(lhs)
	return s
}

func (s *PtrFunction) Lhs() ir.Variable { return s.lhs }
func (s *PtrFunction) Func() ir.VarName { return s.fn }

func (s *PtrFunction) Clone() Statement {
	return NewPtrFunction(s.lhs, s.fn)
}

func (s *PtrFunction) Accept(v *Visitor) {
	if v.VisitPtrFunction != nil {
		v.VisitPtrFunction(s)
	}
}

func (s *PtrFunction) String() string {
	return fmt.Sprintf("%s = &(%s)", s.lhs, s.fn)
}

// PtrNull makes lhs the null pointer.
type PtrNull struct {
	stmtBase
	lhs ir.Variable
}

func NewPtrNull(lhs ir.Variable) *PtrNull {
	if lhs.Type() != ir.PtrType {
		panic(statementError("null assignment into non-pointer variable %s", lhs.WriteTyped()))
	}
	s := &PtrNull{stmtBase: makeStmt(KindPtrNull, NoDebug), lhs: lhs}
	s.live.addDef(lhs)
	return s
}

func (s *PtrNull) Lhs() ir.Variable { return s.lhs }

func (s *PtrNull) Clone() Statement {
	return NewPtrNull(s.lhs)
}

func (s *PtrNull) Accept(v *Visitor) {
	if v.VisitPtrNull != nil {
		v.VisitPtrNull(s)
	}
}

func (s *PtrNull) String() string {
	return fmt.Sprintf("%s = NULL", s.lhs)
}

// PtrAssume restricts paths to those satisfying a pointer constraint.
type PtrAssume struct {
	stmtBase
	cst ir.PointerConstraint
}

func NewPtrAssume(cst ir.PointerConstraint) *PtrAssume {
	s := &PtrAssume{stmtBase: makeStmt(KindPtrAssume, NoDebug), cst: cst}
	s.live.addUses(ptrCstVars(cst)...)
	return s
}

func (s *PtrAssume) Constraint() ir.PointerConstraint { return s.cst }

func (s *PtrAssume) Clone() Statement {
	return NewPtrAssume(s.cst)
}

func (s *PtrAssume) Accept(v *Visitor) {
	if v.VisitPtrAssume != nil {
		v.VisitPtrAssume(s)
	}
}

func (s *PtrAssume) String() string {
	return fmt.Sprintf("assume_ptr (%s)", s.cst)
}

// PtrAssert demands a pointer constraint on all paths through its
// block.
type PtrAssert struct {
	stmtBase
	cst ir.PointerConstraint
}

func NewPtrAssert(cst ir.PointerConstraint, info DebugInfo) *PtrAssert {
	s := &PtrAssert{stmtBase: makeStmt(KindPtrAssert, info), cst: cst}
	s.live.addUses(ptrCstVars(cst)...)
	return s
}

func (s *PtrAssert) Constraint() ir.PointerConstraint { return s.cst }

func (s *PtrAssert) Clone() Statement {
	return NewPtrAssert(s.cst, s.info)
}

func (s *PtrAssert) Accept(v *Visitor) {
	if v.VisitPtrAssert != nil {
		v.VisitPtrAssert(s)
	}
}

func (s *PtrAssert) String() string {
	return fmt.Sprintf("assert_ptr (%s)", s.cst)
}

func ptrCstVars(cst ir.PointerConstraint) []ir.Variable {
	switch {
	case cst.IsTautology() || cst.IsContradiction():
		return nil
	case cst.IsUnary():
		return []ir.Variable{cst.Lhs()}
	default:
		return []ir.Variable{cst.Lhs(), cst.Rhs()}
	}
}
