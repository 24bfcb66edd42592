package cfg

import (
	"fmt"
	"strings"

	"github.com/kamilababayeva/crab/ir"
)

// CallSite invokes a function by name, binding its actual arguments
// and receiving its results. Calls are opaque at this level; an
// inter-procedural analysis resolves them through the function
// declaration attached to the callee graph.
type CallSite struct {
	stmtBase
	fn   string
	lhs  []ir.Variable
	args []ir.Variable
}

func NewCallSite(fn string, lhs, args []ir.Variable) *CallSite {
	s := &CallSite{
		stmtBase: makeStmt(KindCallSite, NoDebug),
		fn:       fn,
		lhs:      append([]ir.Variable(nil), lhs...),
		args:     append([]ir.Variable(nil), args...),
	}
	for _, v := range s.lhs {
		s.live.addDef(v)
	}
	for _, v := range s.args {
		s.live.addUse(v)
	}
	return s
}

func (s *CallSite) Func() string          { return s.fn }
func (s *CallSite) Lhs() []ir.Variable    { return s.lhs }
func (s *CallSite) Args() []ir.Variable   { return s.args }
func (s *CallSite) NumArgs() int          { return len(s.args) }
func (s *CallSite) Arg(i int) ir.Variable { return s.args[i] }

func (s *CallSite) Clone() Statement {
	return NewCallSite(s.fn, s.lhs, s.args)
}

func (s *CallSite) Accept(v *Visitor) {
	if v.VisitCallSite != nil {
		v.VisitCallSite(s)
	}
}

func (s *CallSite) String() string {
	var b strings.Builder
	switch len(s.lhs) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "%s = ", s.lhs[0])
	default:
		b.WriteString("(")
		b.WriteString(joinVars(s.lhs))
		b.WriteString(") = ")
	}
	fmt.Fprintf(&b, "call %s(%s)", s.fn, joinVars(s.args))
	return b.String()
}

// Return yields the values of the enclosing function. It may only
// appear in the exit block.
type Return struct {
	stmtBase
	rets []ir.Variable
}

func NewReturn(rets []ir.Variable) *Return {
	s := &Return{
		stmtBase: makeStmt(KindReturn, NoDebug),
		rets:     append([]ir.Variable(nil), rets...),
	}
	for _, v := range s.rets {
		s.live.addUse(v)
	}
	return s
}

func (s *Return) Vars() []ir.Variable { return s.rets }

func (s *Return) Clone() Statement {
	return NewReturn(s.rets)
}

func (s *Return) Accept(v *Visitor) {
	if v.VisitReturn != nil {
		v.VisitReturn(s)
	}
}

func (s *Return) String() string {
	switch len(s.rets) {
	case 0:
		return "return"
	case 1:
		return fmt.Sprintf("return %s", s.rets[0])
	default:
		return fmt.Sprintf("return (%s)", joinVars(s.rets))
	}
}

// FunctionDecl is the signature of the function a graph models: its
// name, formal inputs and formal outputs. Inputs and outputs must not
// overlap; a front end that needs an in-out parameter splits it in
// two.
type FunctionDecl struct {
	name    string
	inputs  []ir.Variable
	outputs []ir.Variable
}

func NewFunctionDecl(name string, inputs, outputs []ir.Variable) FunctionDecl {
	for _, in := range inputs {
		for _, out := range outputs {
			if in.Equal(out) {
				panic(statementError("function %s declares %s as both input and output",
					name, in.Name()))
			}
		}
	}
	return FunctionDecl{
		name:    name,
		inputs:  append([]ir.Variable(nil), inputs...),
		outputs: append([]ir.Variable(nil), outputs...),
	}
}

func (d FunctionDecl) Name() string             { return d.name }
func (d FunctionDecl) Inputs() []ir.Variable    { return d.inputs }
func (d FunctionDecl) Outputs() []ir.Variable   { return d.outputs }
func (d FunctionDecl) NumInputs() int           { return len(d.inputs) }
func (d FunctionDecl) NumOutputs() int          { return len(d.outputs) }
func (d FunctionDecl) Input(i int) ir.Variable  { return d.inputs[i] }
func (d FunctionDecl) Output(i int) ir.Variable { return d.outputs[i] }

func (d FunctionDecl) String() string {
	ins := make([]string, len(d.inputs))
	for i, v := range d.inputs {
		ins[i] = v.WriteTyped()
	}
	outs := make([]string, len(d.outputs))
	for i, v := range d.outputs {
		outs[i] = v.WriteTyped()
	}
	return fmt.Sprintf("declare %s(%s) -> (%s)",
		d.name, strings.Join(ins, ","), strings.Join(outs, ","))
}

func joinVars(vs []ir.Variable) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}
