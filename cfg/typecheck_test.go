package cfg

import (
	"strings"
	"testing"

	"github.com/kamilababayeva/crab/ir"
)

func TestTypeCheckAccepts(t *testing.T) {
	fac := ir.NewVariableFactory()
	g := buildIncr(fac)
	if err := NewTypeChecker(g.Ref()).Run(); err != nil {
		t.Errorf("well-typed graph rejected: %v", err)
	}
}

func TestTypeCheckSanity(t *testing.T) {
	t.Run("no exit", func(t *testing.T) {
		g := New("entry", TrackNum)
		if err := NewTypeChecker(g.Ref()).Run(); err == nil {
			t.Errorf("graph without exit must be rejected")
		}
	})

	t.Run("singleton entry != exit", func(t *testing.T) {
		g := NewWithExit("entry", "exit", TrackNum)
		if err := NewTypeChecker(g.Ref()).Run(); err == nil {
			t.Errorf("singleton graph with distinct exit label must be rejected")
		}
	})

	t.Run("singleton entry == exit", func(t *testing.T) {
		g := NewWithExit("entry", "entry", TrackNum)
		if err := NewTypeChecker(g.Ref()).Run(); err != nil {
			t.Errorf("singleton graph with coinciding labels rejected: %v", err)
		}
	})
}

func singleton(track Precision) (*Cfg, *Block) {
	g := NewWithExit("entry", "entry", track)
	return g, g.GetNode("entry")
}

func TestTypeCheckMixedWidths(t *testing.T) {
	fac := ir.NewVariableFactory()
	x := fac.Var("x", ir.IntType, 64)
	y := fac.Var("y", ir.IntType, 32)

	g, b := singleton(TrackNum)
	b.Add(y, ir.VarExpr(x), ir.Const(1))

	err := NewTypeChecker(g.Ref()).Run()
	if err == nil {
		t.Fatalf("mixed operand widths must be rejected")
	}
	if !strings.Contains(err.Error(), "y = x+1") {
		t.Errorf("error must identify the statement, got %v", err)
	}
}

func TestTypeCheckBooleanWidth(t *testing.T) {
	fac := ir.NewVariableFactory()
	wide := fac.Var("w", ir.BoolType, 8)
	ok := fac.Var("b", ir.BoolType, 1)

	g, b := singleton(TrackNum)
	b.BoolAnd(ok, ok, wide)

	if err := NewTypeChecker(g.Ref()).Run(); err == nil {
		t.Errorf("boolean of width 8 must be rejected")
	}

	g2, b2 := singleton(TrackNum)
	b2.BoolAnd(ok, ok, ok)
	if err := NewTypeChecker(g2.Ref()).Run(); err != nil {
		t.Errorf("well-typed boolean op rejected: %v", err)
	}
}

func TestTypeCheckNonNumericArithmetic(t *testing.T) {
	fac := ir.NewVariableFactory()
	p := fac.Var("p", ir.PtrType, 0)
	x := fac.Var("x", ir.IntType, 32)

	g, b := singleton(TrackNum)
	b.Add(x, ir.VarExpr(p), ir.Const(1))

	if err := NewTypeChecker(g.Ref()).Run(); err == nil {
		t.Errorf("pointer operand in arithmetic must be rejected")
	}
}

func TestTypeCheckCasts(t *testing.T) {
	fac := ir.NewVariableFactory()
	i8 := fac.Var("a", ir.IntType, 8)
	i32 := fac.Var("b", ir.IntType, 32)

	t.Run("narrowing trunc", func(t *testing.T) {
		g, b := singleton(TrackNum)
		b.Truncate(i32, i8, NoDebug)
		if err := NewTypeChecker(g.Ref()).Run(); err != nil {
			t.Errorf("valid truncation rejected: %v", err)
		}
	})

	t.Run("widening trunc", func(t *testing.T) {
		g, b := singleton(TrackNum)
		b.Truncate(i8, i32, NoDebug)
		if err := NewTypeChecker(g.Ref()).Run(); err == nil {
			t.Errorf("widening truncation must be rejected")
		}
	})

	t.Run("narrowing sext", func(t *testing.T) {
		g, b := singleton(TrackNum)
		b.SExt(i32, i8, NoDebug)
		if err := NewTypeChecker(g.Ref()).Run(); err == nil {
			t.Errorf("narrowing extension must be rejected")
		}
	})

	t.Run("widening zext", func(t *testing.T) {
		g, b := singleton(TrackNum)
		b.ZExt(i8, i32, NoDebug)
		if err := NewTypeChecker(g.Ref()).Run(); err != nil {
			t.Errorf("valid extension rejected: %v", err)
		}
	})

	t.Run("width one", func(t *testing.T) {
		one := fac.Var("c", ir.IntType, 1)
		g, b := singleton(TrackNum)
		b.ZExt(one, i32, NoDebug)
		if err := NewTypeChecker(g.Ref()).Run(); err == nil {
			t.Errorf("casts require integer width > 1")
		}
	})
}

func TestTypeCheckTransitiveClasses(t *testing.T) {
	fac := ir.NewVariableFactory()
	// The same name flows through two statements with inconsistent
	// attributes: each statement is locally well typed, only the
	// congruence class exposes the clash.
	v32 := ir.NewVariable(fac.Name("v"), ir.IntType, 32)
	v64 := ir.NewVariable(fac.Name("v"), ir.IntType, 64)
	a := fac.Var("a", ir.IntType, 32)
	u := fac.Var("u", ir.IntType, 64)

	g, b := singleton(TrackNum)
	b.Assign(a, ir.VarExpr(v32))
	b.Assign(u, ir.VarExpr(v64))

	if err := NewTypeChecker(g.Ref()).Run(); err == nil {
		t.Errorf("transitively inconsistent widths must be rejected")
	}
}

func TestTypeCheckExemptFamilies(t *testing.T) {
	fac := ir.NewVariableFactory()
	p := fac.Var("p", ir.PtrType, 0)
	arr := fac.Var("A", ir.ArrIntType, 0)
	x := fac.Var("x", ir.IntType, 32)

	g, b := singleton(TrackArr)
	b.PtrNull(p)
	b.ArrayLoad(x, arr, ir.Const(0), 4)
	b.CallSite("f", nil, []ir.Variable{x})
	b.Ret(x)

	if err := NewTypeChecker(g.Ref()).Run(); err != nil {
		t.Errorf("pointer/array/call/return are exempt, got %v", err)
	}
}
