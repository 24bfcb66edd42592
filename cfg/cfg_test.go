package cfg

import (
	"strings"
	"testing"

	"github.com/kamilababayeva/crab/ir"
)

// buildIncr builds the graph of
//
//	declare incr(x:int) -> (z:int)
//	entry: y = x + 1
//	exit:  z = y + 2; return z
func buildIncr(fac *ir.VariableFactory) *Cfg {
	x := fac.Var("x", ir.IntType, 32)
	y := fac.Var("y", ir.IntType, 32)
	z := fac.Var("z", ir.IntType, 32)

	decl := NewFunctionDecl("incr", []ir.Variable{x}, []ir.Variable{z})
	g := NewFunction(decl, "entry", "exit", TrackNum)

	entry := g.GetNode("entry")
	exit := g.Insert("exit")
	entry.AddSuccessor(exit)

	entry.Add(y, ir.VarExpr(x), ir.Const(1))
	exit.Add(z, ir.VarExpr(y), ir.Const(2))
	exit.Ret(z)
	return g
}

func TestInsertIdempotent(t *testing.T) {
	g := New("entry", TrackNum)
	b1 := g.Insert("bb1")
	b2 := g.Insert("bb1")
	if b1 != b2 {
		t.Errorf("inserting an existing label must return the existing block")
	}
	if g.Size() != 2 {
		t.Errorf("expected 2 blocks, got %d", g.Size())
	}
}

func TestAdjacencySymmetry(t *testing.T) {
	g := New("entry", TrackNum)
	a := g.GetNode("entry")
	b := g.Insert("bb1")

	a.AddSuccessor(b)
	a.AddSuccessor(b)
	if len(a.Next()) != 1 || a.Next()[0] != "bb1" {
		t.Errorf("expected single successor bb1, got %v", a.Next())
	}
	if len(b.Prev()) != 1 || b.Prev()[0] != "entry" {
		t.Errorf("expected single predecessor entry, got %v", b.Prev())
	}

	a.RemoveSuccessor(b)
	if len(a.Next()) != 0 || len(b.Prev()) != 0 {
		t.Errorf("removing an edge must detach both endpoints")
	}
}

func TestRemoveDetaches(t *testing.T) {
	g := New("entry", TrackNum)
	a := g.GetNode("entry")
	b := g.Insert("bb1")
	c := g.Insert("bb2")
	a.AddSuccessor(b)
	b.AddSuccessor(c)

	g.Remove("bb1")
	if g.HasNode("bb1") {
		t.Fatalf("bb1 should be gone")
	}
	if len(a.Next()) != 0 {
		t.Errorf("entry still points at removed block: %v", a.Next())
	}
	if len(c.Prev()) != 0 {
		t.Errorf("bb2 still pointed at by removed block: %v", c.Prev())
	}
}

func TestRemoveEntryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("removing the entry block must panic")
		}
	}()
	New("entry", TrackNum).Remove("entry")
}

func TestGetNodeUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("looking up an unknown label must panic")
		}
	}()
	New("entry", TrackNum).GetNode("nope")
}

func TestExitWithoutExitPanics(t *testing.T) {
	g := New("entry", TrackNum)
	if g.HasExit() {
		t.Fatalf("graph should have no exit")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Exit on a graph without one must panic")
		}
	}()
	g.Exit()
}

func TestStatementLiveSets(t *testing.T) {
	fac := ir.NewVariableFactory()
	x := fac.Var("x", ir.IntType, 32)
	y := fac.Var("y", ir.IntType, 32)

	s := NewBinaryOp(y, OpAdd, ir.VarExpr(x), ir.Const(1), NoDebug)
	lv := s.Live()
	if len(lv.Defs()) != 1 || !lv.Defs()[0].Equal(y) {
		t.Errorf("expected def {y}, got %v", lv.Defs())
	}
	if len(lv.Uses()) != 1 || !lv.Uses()[0].Equal(x) {
		t.Errorf("expected use {x}, got %v", lv.Uses())
	}

	// Duplicate operands collapse in the live set.
	d := NewBinaryOp(y, OpAdd, ir.VarExpr(x), ir.VarExpr(x), NoDebug)
	if len(d.Live().Uses()) != 1 {
		t.Errorf("duplicate uses must be deduplicated")
	}
}

func TestBlockLiveGrows(t *testing.T) {
	fac := ir.NewVariableFactory()
	x := fac.Var("x", ir.IntType, 32)
	y := fac.Var("y", ir.IntType, 32)

	g := New("entry", TrackNum)
	b := g.GetNode("entry")
	if b.Live().Size() != 0 {
		t.Fatalf("fresh block must have an empty live set")
	}
	b.Assign(y, ir.VarExpr(x))
	if !b.Live().Contains(x) || !b.Live().Contains(y) {
		t.Errorf("live set must include uses and defs, got %s", b.Live())
	}
}

func TestGetVars(t *testing.T) {
	fac := ir.NewVariableFactory()
	g := buildIncr(fac)

	vars := g.GetVars()
	if vars.Size() != 3 {
		t.Fatalf("expected 3 variables, got %s", vars)
	}
	for _, n := range []string{"x", "y", "z"} {
		if !vars.Contains(fac.Var(n, ir.IntType, 32)) {
			t.Errorf("expected %s in %s", n, vars)
		}
	}
}

func TestInsertPointFront(t *testing.T) {
	fac := ir.NewVariableFactory()
	x := fac.Var("x", ir.IntType, 32)

	g := New("entry", TrackNum)
	b := g.GetNode("entry")
	b.Assign(x, ir.Const(1))
	b.SetInsertPointFront()
	b.Havoc(x)
	b.Assign(x, ir.Const(2))

	stmts := b.Statements()
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(stmts))
	}
	if stmts[0].Kind() != KindHavoc {
		t.Errorf("front insertion must place the statement first")
	}
	if stmts[2].Kind() != KindAssign {
		t.Errorf("the flag must reset after one insertion")
	}
}

func TestMergeOrder(t *testing.T) {
	fac := ir.NewVariableFactory()
	x := fac.Var("x", ir.IntType, 32)
	y := fac.Var("y", ir.IntType, 32)

	g := New("entry", TrackNum)
	a := g.GetNode("entry")
	b := g.Insert("bb1")
	a.Assign(x, ir.Const(1))
	b.Assign(y, ir.Const(2))

	a.MergeBack(b)
	if len(a.Statements()) != 2 || a.Statements()[1].String() != "y = 2" {
		t.Errorf("merge back must append, got %v", a.Statements())
	}
	if !a.Live().Contains(y) {
		t.Errorf("merge must join live sets")
	}

	c := g.Insert("bb2")
	c.Assign(y, ir.Const(3))
	a.MergeFront(c)
	if a.Statements()[0].String() != "y = 3" {
		t.Errorf("merge front must prepend, got %v", a.Statements())
	}
}

func TestCloneIndependence(t *testing.T) {
	fac := ir.NewVariableFactory()
	g := buildIncr(fac)
	c := g.Clone()

	w := fac.Var("w", ir.IntType, 32)
	g.GetNode("entry").Havoc(w)
	g.Insert("extra")

	if c.Size() != 2 {
		t.Errorf("clone gained a block from the original")
	}
	if c.GetNode("entry").Size() != 1 {
		t.Errorf("clone gained a statement from the original")
	}
	if !c.HasExit() || c.Exit() != "exit" {
		t.Errorf("clone must keep exit metadata")
	}
	if _, ok := c.FunctionDecl(); !ok {
		t.Errorf("clone must keep the function declaration")
	}
}

func TestPrecisionGating(t *testing.T) {
	fac := ir.NewVariableFactory()
	arr := fac.Var("A", ir.ArrIntType, 0)
	i := fac.Var("i", ir.IntType, 32)
	v := fac.Var("v", ir.IntType, 32)
	p := fac.Var("p", ir.PtrType, 0)

	num := New("entry", TrackNum).GetNode("entry")
	if num.ArrayLoad(v, arr, ir.VarExpr(i), 4) {
		t.Errorf("array load must not apply under numeric tracking")
	}
	if num.PtrNull(p) {
		t.Errorf("pointer null must not apply under numeric tracking")
	}
	if num.Size() != 0 {
		t.Errorf("gated builders must leave the block untouched")
	}

	ptr := New("entry", TrackPtr).GetNode("entry")
	if !ptr.PtrNull(p) {
		t.Errorf("pointer statements must apply under pointer tracking")
	}
	if ptr.ArrayAssign(arr, arr) {
		t.Errorf("array statements must not apply under pointer tracking")
	}

	all := New("entry", TrackArr).GetNode("entry")
	if !all.ArrayLoad(v, arr, ir.VarExpr(i), 4) || !all.PtrNull(p) {
		t.Errorf("array tracking must admit every statement family")
	}
	if all.Size() != 2 {
		t.Errorf("expected 2 statements, got %d", all.Size())
	}
}

func TestArrayPreconditions(t *testing.T) {
	fac := ir.NewVariableFactory()
	i := fac.Var("i", ir.IntType, 32)
	arr := fac.Var("A", ir.ArrIntType, 0)

	t.Run("non-array target", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("array store into a scalar must panic")
			}
		}()
		New("entry", TrackArr).GetNode("entry").
			ArrayStore(i, ir.Const(0), ir.Const(0), ir.VarExpr(i), 4, false)
	})

	t.Run("compound value", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("array store of a compound expression must panic")
			}
		}()
		New("entry", TrackArr).GetNode("entry").
			ArrayStore(arr, ir.Const(0), ir.Const(0), ir.VarExpr(i).Plus(1), 4, false)
	})
}

func TestFunctionDeclDisjoint(t *testing.T) {
	fac := ir.NewVariableFactory()
	x := fac.Var("x", ir.IntType, 32)
	defer func() {
		if recover() == nil {
			t.Errorf("overlapping inputs and outputs must panic")
		}
	}()
	NewFunctionDecl("f", []ir.Variable{x}, []ir.Variable{x})
}

func TestReverseView(t *testing.T) {
	fac := ir.NewVariableFactory()
	g := buildIncr(fac)
	r := g.Reverse()

	if r.Entry() != "exit" || r.Exit() != "entry" {
		t.Errorf("reversed view must swap entry and exit")
	}
	if !r.HasExit() {
		t.Errorf("reversed view always has an exit")
	}
	if got := r.NextNodes("exit"); len(got) != 1 || got[0] != "entry" {
		t.Errorf("reversed successors of exit must be {entry}, got %v", got)
	}
	if got := r.PrevNodes("exit"); len(got) != 0 {
		t.Errorf("reversed predecessors of exit must be empty, got %v", got)
	}

	stmts := r.GetNode("exit").Statements()
	if len(stmts) != 2 || stmts[0].Kind() != KindReturn {
		t.Errorf("reversed block must read back to front, got %v", stmts)
	}

	// The view is read-through: the underlying block is untouched.
	if g.GetNode("exit").Statements()[0].Kind() == KindReturn {
		t.Errorf("reversing must not mutate the underlying block")
	}
}

func TestReverseRequiresExit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("reversing a graph without an exit must panic")
		}
	}()
	New("entry", TrackNum).Reverse()
}

func TestCallSiteRendering(t *testing.T) {
	fac := ir.NewVariableFactory()
	a := fac.Var("a", ir.IntType, 32)
	b := fac.Var("b", ir.IntType, 32)
	r := fac.Var("r", ir.IntType, 32)

	cs := NewCallSite("max", []ir.Variable{r}, []ir.Variable{a, b})
	if got := cs.String(); got != "r = call max(a,b)" {
		t.Errorf("unexpected call rendering %q", got)
	}
	if len(cs.Live().Defs()) != 1 || len(cs.Live().Uses()) != 2 {
		t.Errorf("call site live set must def outputs and use inputs")
	}

	void := NewCallSite("log", nil, []ir.Variable{a})
	if got := void.String(); got != "call log(a)" {
		t.Errorf("unexpected void call rendering %q", got)
	}
}

func TestWriteDeterministic(t *testing.T) {
	fac := ir.NewVariableFactory()
	g := buildIncr(fac)
	first := g.String()
	for i := 0; i < 10; i++ {
		if got := g.String(); got != first {
			t.Fatalf("rendering must be deterministic:\n%s\nvs\n%s", first, got)
		}
	}
	if !strings.HasPrefix(first, "declare incr(x:int) -> (z:int)\nentry:\n") {
		t.Errorf("unexpected rendering:\n%s", first)
	}
}

func TestSignatureHash(t *testing.T) {
	fac := ir.NewVariableFactory()
	g1 := buildIncr(fac)
	g2 := buildIncr(fac)
	if !g1.Equal(g2) {
		t.Errorf("graphs with identical signatures must compare equal")
	}

	x := fac.Var("x", ir.IntType, 32)
	z := fac.Var("z", ir.IntType, 64)
	other := NewFunction(NewFunctionDecl("incr", []ir.Variable{x}, []ir.Variable{z}),
		"entry", "exit", TrackNum)
	if g1.Equal(other) {
		t.Errorf("differing output widths must hash differently")
	}
}

func TestKindPredicates(t *testing.T) {
	if !KindAssume.IsAssume() || !KindBoolAssume.IsAssume() || !KindPtrAssume.IsAssume() {
		t.Errorf("all assume variants must satisfy IsAssume")
	}
	if KindAssume.IsAssert() || !KindBoolAssert.IsAssert() {
		t.Errorf("IsAssert must cover exactly the assert variants")
	}
	if !KindArrayLoad.IsArrRead() || KindArrayStore.IsArrRead() {
		t.Errorf("IsArrRead must single out array loads")
	}
	if !KindPtrStore.IsPtrWrite() || KindPtrLoad.IsPtrWrite() {
		t.Errorf("IsPtrWrite must single out pointer stores")
	}
}

func TestHashWithoutDeclPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("hashing an undeclared graph must panic")
		}
	}()
	New("entry", TrackNum).Hash()
}
