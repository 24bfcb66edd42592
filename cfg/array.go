package cfg

import (
	"fmt"

	"github.com/kamilababayeva/crab/ir"
)

// ArrayAssume constrains the content of an array over an index range:
// every cell between the lower and upper bound holds the given value.
type ArrayAssume struct {
	stmtBase
	arr ir.Variable
	lb  ir.LinearExpression
	ub  ir.LinearExpression
	val ir.LinearExpression
}

func NewArrayAssume(arr ir.Variable, lb, ub, val ir.LinearExpression) *ArrayAssume {
	if !arr.Type().IsArray() {
		panic(statementError("array assume on non-array variable %s", arr.WriteTyped()))
	}
	if !val.IsVariableOrConstant() {
		panic(statementError("array assume value %s must be a variable or constant", val))
	}
	s := &ArrayAssume{stmtBase: makeStmt(KindArrayAssume, NoDebug), arr: arr, lb: lb, ub: ub, val: val}
	s.live.addUse(arr)
	s.live.addUses(lb.Variables()...)
	s.live.addUses(ub.Variables()...)
	s.live.addUses(val.Variables()...)
	return s
}

func (s *ArrayAssume) Array() ir.Variable              { return s.arr }
func (s *ArrayAssume) LowerBound() ir.LinearExpression { return s.lb }
func (s *ArrayAssume) UpperBound() ir.LinearExpression { return s.ub }
func (s *ArrayAssume) Value() ir.LinearExpression      { return s.val }

func (s *ArrayAssume) Clone() Statement {
	return NewArrayAssume(s.arr, s.lb, s.ub, s.val)
}

func (s *ArrayAssume) Accept(v *Visitor) {
	if v.VisitArrayAssume != nil {
		v.VisitArrayAssume(s)
	}
}

func (s *ArrayAssume) String() string {
	return fmt.Sprintf("assume (forall l in [%s,%s] :: %s[l] = %s)", s.lb, s.ub, s.arr, s.val)
}

// ArrayStore writes a value into the index range [lb, ub] of an array.
// The write is a strong update only when the range denotes a single
// cell of a singleton memory object.
type ArrayStore struct {
	stmtBase
	arr       ir.Variable
	lb        ir.LinearExpression
	ub        ir.LinearExpression
	val       ir.LinearExpression
	elemSize  uint64
	singleton bool
}

func NewArrayStore(arr ir.Variable, lb, ub, val ir.LinearExpression, elemSize uint64, singleton bool) *ArrayStore {
	if !arr.Type().IsArray() {
		panic(statementError("array store on non-array variable %s", arr.WriteTyped()))
	}
	if !val.IsVariableOrConstant() {
		panic(statementError("array store value %s must be a variable or constant", val))
	}
	s := &ArrayStore{
		stmtBase: makeStmt(KindArrayStore, NoDebug),
		arr: arr, lb: lb, ub: ub, val: val,
		elemSize: elemSize, singleton: singleton,
	}
	s.live.addDef(arr)
	s.live.addUse(arr)
	s.live.addUses(lb.Variables()...)
	s.live.addUses(ub.Variables()...)
	s.live.addUses(val.Variables()...)
	return s
}

func (s *ArrayStore) Array() ir.Variable              { return s.arr }
func (s *ArrayStore) LowerBound() ir.LinearExpression { return s.lb }
func (s *ArrayStore) UpperBound() ir.LinearExpression { return s.ub }
func (s *ArrayStore) Value() ir.LinearExpression      { return s.val }
func (s *ArrayStore) ElemSize() uint64                { return s.elemSize }
func (s *ArrayStore) IsSingleton() bool               { return s.singleton }

func (s *ArrayStore) Clone() Statement {
	return NewArrayStore(s.arr, s.lb, s.ub, s.val, s.elemSize, s.singleton)
}

func (s *ArrayStore) Accept(v *Visitor) {
	if v.VisitArrayStore != nil {
		v.VisitArrayStore(s)
	}
}

func (s *ArrayStore) String() string {
	return fmt.Sprintf("%s[%s...%s] = %s", s.arr, s.lb, s.ub, s.val)
}

// ArrayLoad reads one cell of an array into a scalar variable.
type ArrayLoad struct {
	stmtBase
	lhs      ir.Variable
	arr      ir.Variable
	index    ir.LinearExpression
	elemSize uint64
}

func NewArrayLoad(lhs, arr ir.Variable, index ir.LinearExpression, elemSize uint64) *ArrayLoad {
	if !arr.Type().IsArray() {
		panic(statementError("array load from non-array variable %s", arr.WriteTyped()))
	}
	s := &ArrayLoad{
		stmtBase: makeStmt(KindArrayLoad, NoDebug),
		lhs: lhs, arr: arr, index: index, elemSize: elemSize,
	}
	s.live.addDef(lhs)
	s.live.addUse(arr)
	s.live.addUses(index.Variables()...)
	return s
}

func (s *ArrayLoad) Lhs() ir.Variable           { return s.lhs }
func (s *ArrayLoad) Array() ir.Variable         { return s.arr }
func (s *ArrayLoad) Index() ir.LinearExpression { return s.index }
func (s *ArrayLoad) ElemSize() uint64           { return s.elemSize }

func (s *ArrayLoad) Clone() Statement {
	return NewArrayLoad(s.lhs, s.arr, s.index, s.elemSize)
}

func (s *ArrayLoad) Accept(v *Visitor) {
	if v.VisitArrayLoad != nil {
		v.VisitArrayLoad(s)
	}
}

func (s *ArrayLoad) String() string {
	return fmt.Sprintf("%s = %s[%s]", s.lhs, s.arr, s.index)
}

// ArrayAssign copies one whole array into another.
type ArrayAssign struct {
	stmtBase
	lhs ir.Variable
	rhs ir.Variable
}

func NewArrayAssign(lhs, rhs ir.Variable) *ArrayAssign {
	if !lhs.Type().IsArray() || !rhs.Type().IsArray() {
		panic(statementError("array assignment between non-array variables %s and %s",
			lhs.WriteTyped(), rhs.WriteTyped()))
	}
	s := &ArrayAssign{stmtBase: makeStmt(KindArrayAssign, NoDebug), lhs: lhs, rhs: rhs}
	s.live.addDef(lhs)
	s.live.addUse(rhs)
	return s
}

func (s *ArrayAssign) Lhs() ir.Variable { return s.lhs }
func (s *ArrayAssign) Rhs() ir.Variable { return s.rhs }

func (s *ArrayAssign) Clone() Statement {
	return NewArrayAssign(s.lhs, s.rhs)
}

func (s *ArrayAssign) Accept(v *Visitor) {
	if v.VisitArrayAssign != nil {
		v.VisitArrayAssign(s)
	}
}

func (s *ArrayAssign) String() string {
	return fmt.Sprintf("%s = %s", s.lhs, s.rhs)
}
