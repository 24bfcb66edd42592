package cfg

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kamilababayeva/crab/ir"
	"github.com/kamilababayeva/crab/utils/worklist"
)

// Label identifies a basic block within a graph.
type Label string

// Precision selects which statement families a graph admits. The
// levels are ordered: tracking arrays implies tracking pointers, which
// implies tracking numbers.
type Precision int

const (
	TrackNum Precision = iota
	TrackPtr
	TrackArr
)

func (p Precision) String() string {
	switch p {
	case TrackNum:
		return "num"
	case TrackPtr:
		return "ptr"
	case TrackArr:
		return "arr"
	default:
		return "?"
	}
}

// Cfg is a control-flow graph over basic blocks. A graph always has
// an entry block; an exit block and a function signature are optional.
// Blocks are owned by the graph and shared by all views of it.
type Cfg struct {
	entry   Label
	exit    Label
	hasExit bool
	blocks  map[Label]*Block
	track   Precision
	decl    *FunctionDecl
}

// New builds a graph with a fresh entry block and no exit.
func New(entry Label, track Precision) *Cfg {
	g := &Cfg{entry: entry, blocks: map[Label]*Block{}, track: track}
	g.Insert(entry)
	return g
}

// NewWithExit builds a graph with a fresh entry block and a designated
// exit label. The exit block itself is created on first Insert.
func NewWithExit(entry, exit Label, track Precision) *Cfg {
	g := New(entry, track)
	g.exit = exit
	g.hasExit = true
	return g
}

// NewFunction builds a graph modeling the body of a declared function.
func NewFunction(decl FunctionDecl, entry, exit Label, track Precision) *Cfg {
	g := NewWithExit(entry, exit, track)
	g.decl = &decl
	return g
}

func (g *Cfg) Entry() Label { return g.entry }

func (g *Cfg) HasExit() bool { return g.hasExit }

// Exit returns the exit label. It panics when the graph has none;
// check HasExit first.
func (g *Cfg) Exit() Label {
	if !g.hasExit {
		panic(fmt.Errorf("cfg: graph %s has no exit block", g.entry))
	}
	return g.exit
}

// SetExit designates an exit label. The block need not exist yet.
func (g *Cfg) SetExit(l Label) {
	g.exit = l
	g.hasExit = true
}

// FunctionDecl returns the attached signature, if any.
func (g *Cfg) FunctionDecl() (FunctionDecl, bool) {
	if g.decl == nil {
		return FunctionDecl{}, false
	}
	return *g.decl, true
}

func (g *Cfg) SetFunctionDecl(decl FunctionDecl) {
	g.decl = &decl
}

func (g *Cfg) TrackedPrecision() Precision { return g.track }

// Insert returns the block with the given label, creating it first if
// the graph has none.
func (g *Cfg) Insert(l Label) *Block {
	if b, ok := g.blocks[l]; ok {
		return b
	}
	b := newBlock(l, g.track)
	g.blocks[l] = b
	return b
}

// Remove erases a block, detaching every edge touching it. The entry
// block cannot be removed.
func (g *Cfg) Remove(l Label) {
	if l == g.entry {
		panic(fmt.Errorf("cfg: cannot remove entry block %s", l))
	}
	b := g.GetNode(l)
	for _, p := range b.Prev() {
		if p == l {
			continue
		}
		g.GetNode(p).RemoveSuccessor(b)
	}
	for _, n := range b.Next() {
		if n == l {
			continue
		}
		b.RemoveSuccessor(g.GetNode(n))
	}
	delete(g.blocks, l)
}

// GetNode returns the block with the given label and panics when the
// graph has none.
func (g *Cfg) GetNode(l Label) *Block {
	b, ok := g.blocks[l]
	if !ok {
		panic(fmt.Errorf("cfg: unknown basic block %s", l))
	}
	return b
}

func (g *Cfg) HasNode(l Label) bool {
	_, ok := g.blocks[l]
	return ok
}

func (g *Cfg) NextNodes(l Label) []Label { return g.GetNode(l).Next() }

func (g *Cfg) PrevNodes(l Label) []Label { return g.GetNode(l).Prev() }

func (g *Cfg) Size() int { return len(g.blocks) }

// Labels returns every block label in sorted order.
func (g *Cfg) Labels() []Label {
	ls := make([]Label, 0, len(g.blocks))
	for l := range g.blocks {
		ls = append(ls, l)
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	return ls
}

// GetVars returns the union of the live sets of every block. It is
// recomputed on demand, so it reflects all insertions so far.
func (g *Cfg) GetVars() ir.VarSet {
	vs := ir.MakeVarSet()
	for _, b := range g.blocks {
		vs = vs.Join(b.Live())
	}
	return vs
}

// ForEach visits every block reachable from the entry, each exactly
// once, in breadth-first order over successor edges. The order is
// deterministic because adjacency lists preserve insertion order.
func (g *Cfg) ForEach(do func(*Block)) {
	visited := map[Label]bool{}
	worklist.Start(g.entry, func(next Label, add func(Label)) {
		if visited[next] {
			return
		}
		visited[next] = true
		b := g.GetNode(next)
		do(b)
		for _, n := range b.Next() {
			if !visited[n] {
				add(n)
			}
		}
	})
}

// Clone deep-copies the graph. Later mutation of either copy leaves
// the other untouched.
func (g *Cfg) Clone() *Cfg {
	c := &Cfg{
		entry:   g.entry,
		exit:    g.exit,
		hasExit: g.hasExit,
		blocks:  make(map[Label]*Block, len(g.blocks)),
		track:   g.track,
	}
	if g.decl != nil {
		decl := *g.decl
		c.decl = &decl
	}
	for l, b := range g.blocks {
		c.blocks[l] = b.Clone()
	}
	return c
}

// Write renders the graph: the signature when present, then every
// reachable block starting from the entry.
func (g *Cfg) Write(w io.Writer) {
	if g.decl != nil {
		fmt.Fprintf(w, "%s\n", g.decl)
	}
	g.ForEach(func(b *Block) {
		b.Write(w)
	})
}

func (g *Cfg) String() string {
	var sb strings.Builder
	g.Write(&sb)
	return sb.String()
}
