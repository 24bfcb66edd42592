package cfg

import (
	"fmt"

	"github.com/kamilababayeva/crab/ir"
	"github.com/kamilababayeva/crab/utils"
)

// Signature-derived hashing. A graph and a call site that refer to the
// same function hash alike, which is what a call-graph construction
// keys on: the hash covers the name and the ordered parameter types
// and widths, never the body.

func hashVars(seed uint32, vs []ir.Variable) uint32 {
	hs := []uint32{seed}
	for _, v := range vs {
		hs = append(hs, utils.HashString(v.Type().String()), uint32(v.Width()))
	}
	return utils.HashCombine(hs...)
}

func (d FunctionDecl) Hash() uint32 {
	h := hashVars(utils.HashString(d.name), d.inputs)
	return hashVars(h, d.outputs)
}

func (s *CallSite) Hash() uint32 {
	h := hashVars(utils.HashString(s.fn), s.args)
	return hashVars(h, s.lhs)
}

// Hash returns the signature hash of the graph. It panics when no
// function declaration is attached.
func (g *Cfg) Hash() uint32 {
	decl, ok := g.FunctionDecl()
	if !ok {
		panic(fmt.Errorf("cfg: cannot hash graph %s without a function declaration", g.entry))
	}
	return decl.Hash()
}

// Equal reports whether two graphs model the same declared function.
func (g *Cfg) Equal(o *Cfg) bool {
	return g.Hash() == o.Hash()
}
