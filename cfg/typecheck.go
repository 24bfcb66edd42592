package cfg

import (
	"fmt"
	"sort"

	uf "github.com/spakin/disjoint"

	"github.com/kamilababayeva/crab/ir"
)

// TypeChecker validates a graph in a single forward pass: scalar
// statements must agree on operand types and bit widths, casts must
// actually narrow or widen, and the graph itself must be well formed.
// Pointer, array, call and return statements are not yet checked.
//
// Variables that appear together in one statement must share a type
// and width, and the constraint is transitive: assigning x to y and y
// to z forces all three into one congruence class. Classes are built
// with union-find and verified homogeneous at the end of the pass.
type TypeChecker struct {
	cfg     Ref
	classes map[string]*uf.Element
	err     error
}

func NewTypeChecker(cfg Ref) *TypeChecker {
	return &TypeChecker{cfg: cfg, classes: map[string]*uf.Element{}}
}

// Run checks the whole graph and returns the first violation found,
// or nil when the graph is well typed.
func (tc *TypeChecker) Run() error {
	if tc.cfg.Size() < 1 {
		return fmt.Errorf("typecheck: graph must have at least one block")
	}
	if !tc.cfg.HasExit() {
		return fmt.Errorf("typecheck: graph must have an exit block")
	}
	if tc.cfg.Size() == 1 && tc.cfg.Entry() != tc.cfg.Exit() {
		return fmt.Errorf("typecheck: singleton graph entry %s and exit %s must coincide",
			tc.cfg.Entry(), tc.cfg.Exit())
	}

	v := tc.visitor()
	tc.cfg.ForEach(func(b *Block) {
		if tc.err != nil {
			return
		}
		v.VisitBlock(b)
	})
	if tc.err != nil {
		return tc.err
	}
	return tc.checkClasses()
}

func (tc *TypeChecker) fail(s Statement, format string, args ...interface{}) {
	if tc.err == nil {
		tc.err = fmt.Errorf("typecheck: "+format+" in '%s'", append(args, s)...)
	}
}

func (tc *TypeChecker) checkNum(s Statement, v ir.Variable) {
	if !v.Type().IsNumeric() {
		tc.fail(s, "expected numeric variable, got %s", v.WriteTyped())
	}
}

func (tc *TypeChecker) checkBool(s Statement, v ir.Variable) {
	if v.Type() != ir.BoolType || v.Width() != 1 {
		tc.fail(s, "expected boolean variable of width 1, got %s", v.WriteTyped())
	}
}

func (tc *TypeChecker) checkInt(s Statement, v ir.Variable) {
	if v.Type() != ir.IntType || v.Width() <= 1 {
		tc.fail(s, "expected integer variable of width > 1, got %s", v.WriteTyped())
	}
}

// unify merges the given variables into one congruence class and
// checks on the spot that they already agree on type and width.
func (tc *TypeChecker) unify(s Statement, vars ...ir.Variable) {
	if len(vars) == 0 {
		return
	}
	first := vars[0]
	var root *uf.Element
	for _, v := range vars {
		if v.Type() != first.Type() || v.Width() != first.Width() {
			tc.fail(s, "mixed operand types %s and %s", first.WriteTyped(), v.WriteTyped())
			return
		}
		e, ok := tc.classes[v.Name().String()]
		if !ok {
			e = uf.NewElement()
			e.Data = v
			tc.classes[v.Name().String()] = e
		}
		if root == nil {
			root = e
		} else {
			uf.Union(root, e)
		}
	}
}

// checkClasses verifies every congruence class is homogeneous in type
// and width after all transitive merges.
func (tc *TypeChecker) checkClasses() error {
	names := make([]string, 0, len(tc.classes))
	for n := range tc.classes {
		names = append(names, n)
	}
	sort.Strings(names)

	rep := map[*uf.Element]ir.Variable{}
	for _, n := range names {
		e := tc.classes[n]
		v := e.Data.(ir.Variable)
		root := e.Find()
		w, ok := rep[root]
		if !ok {
			rep[root] = v
			continue
		}
		if v.Type() != w.Type() || v.Width() != w.Width() {
			return fmt.Errorf("typecheck: variables %s and %s flow together but disagree on type",
				w.WriteTyped(), v.WriteTyped())
		}
	}
	return nil
}

func exprVars(es ...ir.LinearExpression) []ir.Variable {
	var vs []ir.Variable
	for _, e := range es {
		vs = append(vs, e.Variables()...)
	}
	return vs
}

func (tc *TypeChecker) visitor() *Visitor {
	return &Visitor{
		VisitBinaryOp: func(s *BinaryOp) {
			tc.checkNum(s, s.Lhs())
			for _, v := range exprVars(s.Left(), s.Right()) {
				tc.checkNum(s, v)
			}
			tc.unify(s, append([]ir.Variable{s.Lhs()}, exprVars(s.Left(), s.Right())...)...)
		},
		VisitAssign: func(s *Assign) {
			tc.checkNum(s, s.Lhs())
			tc.unify(s, append([]ir.Variable{s.Lhs()}, s.Rhs().Variables()...)...)
		},
		VisitAssume: func(s *Assume) {
			for _, v := range s.Constraint().Variables() {
				tc.checkNum(s, v)
			}
			tc.unify(s, s.Constraint().Variables()...)
		},
		VisitAssert: func(s *Assert) {
			for _, v := range s.Constraint().Variables() {
				tc.checkNum(s, v)
			}
			tc.unify(s, s.Constraint().Variables()...)
		},
		VisitSelect: func(s *Select) {
			tc.checkNum(s, s.Lhs())
			vars := append([]ir.Variable{s.Lhs()}, s.Cond().Variables()...)
			vars = append(vars, exprVars(s.Left(), s.Right())...)
			for _, v := range vars[1:] {
				tc.checkNum(s, v)
			}
			tc.unify(s, vars...)
		},
		VisitIntCast: func(s *IntCast) {
			tc.checkInt(s, s.Src())
			tc.checkInt(s, s.Dst())
			switch s.Op() {
			case CastTrunc:
				if s.SrcWidth() <= s.DstWidth() {
					tc.fail(s, "truncation must strictly decrease width (%d to %d)",
						s.SrcWidth(), s.DstWidth())
				}
			case CastSExt, CastZExt:
				if s.SrcWidth() >= s.DstWidth() {
					tc.fail(s, "extension must strictly increase width (%d to %d)",
						s.SrcWidth(), s.DstWidth())
				}
			}
		},
		VisitBoolBinaryOp: func(s *BoolBinaryOp) {
			tc.checkBool(s, s.Lhs())
			tc.checkBool(s, s.Left())
			tc.checkBool(s, s.Right())
		},
		VisitBoolAssignCst: func(s *BoolAssignCst) {
			tc.checkBool(s, s.Lhs())
			for _, v := range s.Rhs().Variables() {
				tc.checkNum(s, v)
			}
			tc.unify(s, s.Rhs().Variables()...)
		},
		VisitBoolAssignVar: func(s *BoolAssignVar) {
			tc.checkBool(s, s.Lhs())
			tc.checkBool(s, s.Rhs())
		},
		VisitBoolAssume: func(s *BoolAssume) {
			tc.checkBool(s, s.Cond())
		},
		VisitBoolSelect: func(s *BoolSelect) {
			tc.checkBool(s, s.Lhs())
			tc.checkBool(s, s.Cond())
			tc.checkBool(s, s.Left())
			tc.checkBool(s, s.Right())
		},
		VisitBoolAssert: func(s *BoolAssert) {
			tc.checkBool(s, s.Cond())
		},
	}
}
