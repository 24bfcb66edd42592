package cfg

import (
	"testing"

	"github.com/kamilababayeva/crab/ir"
)

func TestSimplifyFusesLinearChain(t *testing.T) {
	fac := ir.NewVariableFactory()
	g := buildIncr(fac)

	g.Simplify()

	if g.Size() != 1 {
		t.Fatalf("expected a single fused block, got %d:\n%s", g.Size(), g)
	}
	if g.Entry() != "entry" || g.Exit() != "entry" {
		t.Errorf("exit must follow the fused block, got entry=%s exit=%s", g.Entry(), g.Exit())
	}

	stmts := g.GetNode("entry").Statements()
	want := []string{"y = x+1", "z = y+2", "return z"}
	if len(stmts) != len(want) {
		t.Fatalf("expected %d statements, got %v", len(want), stmts)
	}
	for i, w := range want {
		if stmts[i].String() != w {
			t.Errorf("statement %d: expected %q, got %q", i, w, stmts[i])
		}
	}

	if g.GetVars().Size() != 3 {
		t.Errorf("fusion must preserve the variable set, got %s", g.GetVars())
	}
}

func TestSimplifyKeepsGuardedBlocks(t *testing.T) {
	fac := ir.NewVariableFactory()
	x := fac.Var("x", ir.IntType, 32)

	g := NewWithExit("entry", "guard", TrackNum)
	entry := g.GetNode("entry")
	guard := g.Insert("guard")
	entry.AddSuccessor(guard)

	entry.Assign(x, ir.Const(1))
	guard.Assume(ir.Leq(ir.VarExpr(x), ir.Const(0)))

	g.Simplify()

	if g.Size() != 2 {
		t.Errorf("a block holding an assume must not be fused, got %d blocks:\n%s", g.Size(), g)
	}
}

func TestSimplifyRemovesUnreachable(t *testing.T) {
	fac := ir.NewVariableFactory()
	x := fac.Var("x", ir.IntType, 32)

	g := NewWithExit("entry", "exit", TrackNum)
	entry := g.GetNode("entry")
	a := g.Insert("a")
	b := g.Insert("b")
	exit := g.Insert("exit")
	island := g.Insert("island")
	island.Assign(x, ir.Const(0))

	entry.AddSuccessor(a)
	entry.AddSuccessor(b)
	a.AddSuccessor(exit)
	b.AddSuccessor(exit)

	g.Simplify()

	if g.HasNode("island") {
		t.Errorf("unreachable block must be removed")
	}
	if g.Size() != 4 {
		t.Errorf("diamond must survive intact, got %d blocks:\n%s", g.Size(), g)
	}
}

func TestSimplifyRemovesUseless(t *testing.T) {
	fac := ir.NewVariableFactory()
	x := fac.Var("x", ir.IntType, 32)

	g := NewWithExit("entry", "exit", TrackNum)
	entry := g.GetNode("entry")
	dead := g.Insert("dead")
	exit := g.Insert("exit")

	entry.AddSuccessor(dead)
	entry.AddSuccessor(exit)
	exit.Assume(ir.Geq(ir.VarExpr(x), ir.Const(0)))

	g.Simplify()

	if g.HasNode("dead") {
		t.Errorf("block that cannot reach the exit must be removed")
	}
	if !g.HasNode("entry") || !g.HasNode("exit") {
		t.Errorf("entry and exit must survive:\n%s", g)
	}
}

func TestSimplifyWithoutExitSkipsUseless(t *testing.T) {
	g := New("entry", TrackNum)
	entry := g.GetNode("entry")
	sink := g.Insert("sink")
	entry.AddSuccessor(sink)
	entry.AddSuccessor(entry)

	g.Simplify()

	if !g.HasNode("sink") {
		t.Errorf("without an exit no block is useless")
	}
}
