package cfg

import (
	"io"

	"github.com/kamilababayeva/crab/ir"
)

// Ref is a copyable handle on a graph. Analyses that must not own the
// graph take a Ref; every copy aliases the same underlying blocks, so
// a mutation through one handle is seen by all.
type Ref struct {
	cfg *Cfg
}

// Ref returns an aliasing handle on the graph.
func (g *Cfg) Ref() Ref { return Ref{cfg: g} }

// Get returns the underlying graph.
func (r Ref) Get() *Cfg { return r.cfg }

func (r Ref) Entry() Label                       { return r.cfg.Entry() }
func (r Ref) Exit() Label                        { return r.cfg.Exit() }
func (r Ref) HasExit() bool                      { return r.cfg.HasExit() }
func (r Ref) SetExit(l Label)                    { r.cfg.SetExit(l) }
func (r Ref) FunctionDecl() (FunctionDecl, bool) { return r.cfg.FunctionDecl() }
func (r Ref) SetFunctionDecl(d FunctionDecl)     { r.cfg.SetFunctionDecl(d) }
func (r Ref) TrackedPrecision() Precision        { return r.cfg.TrackedPrecision() }
func (r Ref) Insert(l Label) *Block              { return r.cfg.Insert(l) }
func (r Ref) Remove(l Label)                     { r.cfg.Remove(l) }
func (r Ref) GetNode(l Label) *Block             { return r.cfg.GetNode(l) }
func (r Ref) HasNode(l Label) bool               { return r.cfg.HasNode(l) }
func (r Ref) NextNodes(l Label) []Label          { return r.cfg.NextNodes(l) }
func (r Ref) PrevNodes(l Label) []Label          { return r.cfg.PrevNodes(l) }
func (r Ref) Size() int                          { return r.cfg.Size() }
func (r Ref) Labels() []Label                    { return r.cfg.Labels() }
func (r Ref) GetVars() ir.VarSet                 { return r.cfg.GetVars() }
func (r Ref) ForEach(do func(*Block))            { r.cfg.ForEach(do) }
func (r Ref) Clone() *Cfg                        { return r.cfg.Clone() }
func (r Ref) Simplify()                          { r.cfg.Simplify() }
func (r Ref) Write(w io.Writer)                  { r.cfg.Write(w) }
func (r Ref) String() string                     { return r.cfg.String() }
