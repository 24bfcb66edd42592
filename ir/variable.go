package ir

import (
	"errors"
	"fmt"

	"github.com/kamilababayeva/crab/utils"
)

var (
	errNotAnArray = errors.New("element type requested of a non-array type")
)

// Variable is a typed variable: an interned name paired with a type from
// the flat lattice and a bit width. The width is only meaningful for
// bool (always 1) and int variables; it is 0 otherwise.
//
// Variables are cheap values. Two variables are equal iff their names
// are equal; type and width are attributes, not identity.
type Variable struct {
	name  VarName
	typ   Type
	width int
}

// NewVariable creates a typed variable. Pass width 0 when the type has
// no meaningful bit width (reals, pointers, arrays).
func NewVariable(name VarName, typ Type, width int) Variable {
	return Variable{name: name, typ: typ, width: width}
}

func (v Variable) Name() VarName { return v.name }
func (v Variable) Type() Type    { return v.typ }
func (v Variable) Width() int    { return v.width }

// Equal compares variables by identity, i.e. by interned name.
func (v Variable) Equal(o Variable) bool {
	return v.name.Equal(o.name)
}

// Hash hashes the variable by its interned name.
func (v Variable) Hash() uint32 {
	return v.name.Hash()
}

func (v Variable) String() string {
	return v.name.String()
}

var _ utils.HashableEq[Variable] = Variable{}

// WriteTyped renders the variable together with its type, as used in
// declarations and call sites.
func (v Variable) WriteTyped() string {
	return fmt.Sprintf("%s:%s", v.name, v.typ)
}
