package cfg

import (
	"fmt"
	"io"
	"strings"

	"github.com/kamilababayeva/crab/ir"
	"github.com/kamilababayeva/crab/utils/worklist"
)

// RevBlock is a read-through view of a block with its statement order
// and its edges flipped. Backward analyses iterate it exactly like a
// forward block; nothing is copied.
type RevBlock struct {
	block *Block
}

func (b RevBlock) Label() Label { return b.block.Label() }

func (b RevBlock) Size() int { return b.block.Size() }

func (b RevBlock) Live() ir.VarSet { return b.block.Live() }

// ForEach visits the underlying statements in reverse order.
func (b RevBlock) ForEach(do func(Statement)) {
	stmts := b.block.Statements()
	for i := len(stmts) - 1; i >= 0; i-- {
		do(stmts[i])
	}
}

// Statements returns the underlying statements reversed, as a fresh
// slice.
func (b RevBlock) Statements() []Statement {
	stmts := b.block.Statements()
	rev := make([]Statement, len(stmts))
	for i, s := range stmts {
		rev[len(stmts)-1-i] = s
	}
	return rev
}

// Prev returns the successors of the underlying block.
func (b RevBlock) Prev() []Label { return b.block.Next() }

// Next returns the predecessors of the underlying block.
func (b RevBlock) Next() []Label { return b.block.Prev() }

func (b RevBlock) Write(w io.Writer) {
	fmt.Fprintf(w, "%s:\n", b.Label())
	b.ForEach(func(s Statement) {
		fmt.Fprintf(w, "  %s;\n", s)
	})
	fmt.Fprint(w, "  --> [")
	for i, l := range b.Next() {
		if i > 0 {
			fmt.Fprint(w, ";")
		}
		fmt.Fprint(w, l)
	}
	fmt.Fprint(w, "]\n")
}

func (b RevBlock) String() string {
	var sb strings.Builder
	b.Write(&sb)
	return sb.String()
}

// Rev is the reversed read-through view of a graph: its entry is the
// underlying exit, every edge points the other way and every block
// reads back to front. Construction requires the underlying graph to
// have an exit block.
type Rev struct {
	cfg *Cfg
}

// Reverse returns the reversed view. It panics when the graph has no
// exit.
func (g *Cfg) Reverse() Rev {
	if !g.HasExit() {
		panic(fmt.Errorf("cfg: cannot reverse graph %s without an exit block", g.Entry()))
	}
	return Rev{cfg: g}
}

func (r Rev) Entry() Label { return r.cfg.Exit() }

func (r Rev) Exit() Label { return r.cfg.Entry() }

// HasExit always reports true: the view exists only for graphs whose
// reversal has an exit, namely the original entry.
func (r Rev) HasExit() bool { return true }

func (r Rev) TrackedPrecision() Precision { return r.cfg.TrackedPrecision() }

func (r Rev) FunctionDecl() (FunctionDecl, bool) { return r.cfg.FunctionDecl() }

func (r Rev) GetNode(l Label) RevBlock {
	return RevBlock{block: r.cfg.GetNode(l)}
}

func (r Rev) HasNode(l Label) bool { return r.cfg.HasNode(l) }

func (r Rev) NextNodes(l Label) []Label { return r.cfg.PrevNodes(l) }

func (r Rev) PrevNodes(l Label) []Label { return r.cfg.NextNodes(l) }

func (r Rev) Size() int { return r.cfg.Size() }

func (r Rev) Labels() []Label { return r.cfg.Labels() }

func (r Rev) GetVars() ir.VarSet { return r.cfg.GetVars() }

// ForEach visits every block reachable from the reversed entry, each
// exactly once, following reversed edges.
func (r Rev) ForEach(do func(RevBlock)) {
	visited := map[Label]bool{}
	worklist.Start(r.Entry(), func(next Label, add func(Label)) {
		if visited[next] {
			return
		}
		visited[next] = true
		b := r.GetNode(next)
		do(b)
		for _, n := range b.Next() {
			if !visited[n] {
				add(n)
			}
		}
	})
}

// Simplify is a no-op: the view is read-through and must not restructure
// the underlying graph.
func (r Rev) Simplify() {}

func (r Rev) Write(w io.Writer) {
	if decl, ok := r.FunctionDecl(); ok {
		fmt.Fprintf(w, "%s\n", decl)
	}
	r.ForEach(func(b RevBlock) {
		b.Write(w)
	})
}

func (r Rev) String() string {
	var sb strings.Builder
	r.Write(&sb)
	return sb.String()
}
