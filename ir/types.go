package ir

// Variable types form a flat lattice: two types are ordered only if they
// are equal. Constants are untyped; their type is inferred from the
// variables they appear next to.

type Type int

const (
	BoolType Type = iota
	IntType
	RealType
	PtrType
	ArrBoolType
	ArrIntType
	ArrRealType
	ArrPtrType
)

// IsArray reports whether the type is one of the array types.
func (t Type) IsArray() bool {
	return t >= ArrBoolType
}

// IsNumeric reports whether the type is usable in arithmetic statements.
func (t Type) IsNumeric() bool {
	return t == IntType || t == RealType
}

// Elem yields the element type of an array type.
func (t Type) Elem() Type {
	switch t {
	case ArrBoolType:
		return BoolType
	case ArrIntType:
		return IntType
	case ArrRealType:
		return RealType
	case ArrPtrType:
		return PtrType
	default:
		panic(errNotAnArray)
	}
}

func (t Type) String() string {
	switch t {
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case RealType:
		return "real"
	case PtrType:
		return "ptr"
	case ArrBoolType:
		return "arr(bool)"
	case ArrIntType:
		return "arr(int)"
	case ArrRealType:
		return "arr(real)"
	case ArrPtrType:
		return "arr(ptr)"
	default:
		return "unknown"
	}
}
