package ir

// VariableFactory interns variable names, handing out densely ordered
// identifiers. The CFG layer never interns names itself; it only stores
// the VarName values produced here. The factory is an explicit object
// passed around by the front end, never a process-wide singleton.
type VariableFactory struct {
	names map[string]VarName
	strs  []string
}

// VarName is an interned name: an index into its factory's table.
// Identity (and ordering) is the index. Names from different factories
// must not be mixed.
type VarName struct {
	fac *VariableFactory
	idx uint64
}

func NewVariableFactory() *VariableFactory {
	return &VariableFactory{names: make(map[string]VarName)}
}

// Name interns s, returning its stable identifier.
func (f *VariableFactory) Name(s string) VarName {
	if n, ok := f.names[s]; ok {
		return n
	}
	n := VarName{fac: f, idx: uint64(len(f.strs))}
	f.names[s] = n
	f.strs = append(f.strs, s)
	return n
}

// Var interns s and wraps it in a typed variable in one step.
func (f *VariableFactory) Var(s string, typ Type, width int) Variable {
	return NewVariable(f.Name(s), typ, width)
}

// Size returns the number of interned names.
func (f *VariableFactory) Size() int { return len(f.strs) }

func (n VarName) Index() uint64 { return n.idx }

func (n VarName) Equal(o VarName) bool {
	return n.idx == o.idx && n.fac == o.fac
}

func (n VarName) Less(o VarName) bool {
	return n.idx < o.idx
}

func (n VarName) Hash() uint32 {
	return uint32(n.idx ^ (n.idx >> 32))
}

func (n VarName) String() string {
	if n.fac == nil {
		return "?"
	}
	return n.fac.strs[n.idx]
}
