package cfg

import (
	"fmt"
	"strings"

	"github.com/kamilababayeva/crab/ir"
)

// StmtKind discriminates the closed set of statement variants. The tag
// is fixed at construction and never changes.
type StmtKind int

const (
	KindUndef StmtKind = iota
	// numerical
	KindBinaryOp
	KindAssign
	KindAssume
	KindUnreachable
	KindSelect
	KindAssert
	// arrays
	KindArrayAssume
	KindArrayStore
	KindArrayLoad
	KindArrayAssign
	// pointers
	KindPtrLoad
	KindPtrStore
	KindPtrAssign
	KindPtrObject
	KindPtrFunction
	KindPtrNull
	KindPtrAssume
	KindPtrAssert
	// function calls
	KindCallSite
	KindReturn
	// integers/arrays/pointers/booleans
	KindHavoc
	// booleans
	KindBoolBinaryOp
	KindBoolAssignCst
	KindBoolAssignVar
	KindBoolAssume
	KindBoolSelect
	KindBoolAssert
	// casts
	KindIntCast
)

// Statement is one instruction of a basic block. Statements are
// immutable once constructed: operands and the derived live set are
// fixed by the constructor, which validates structural preconditions
// eagerly and panics on violation.
type Statement interface {
	Kind() StmtKind
	// Live yields the use/def variable summary derived at construction.
	Live() Live
	// Info yields the optional source-location tag.
	Info() DebugInfo
	// Clone produces a deep copy sharing no mutable state.
	Clone() Statement
	// Accept dispatches on the variant against the visitor; unhandled
	// variants are no-ops.
	Accept(*Visitor)

	fmt.Stringer
}

// stmtBase carries the pieces shared by every variant.
type stmtBase struct {
	kind StmtKind
	live Live
	info DebugInfo
}

func makeStmt(kind StmtKind, info DebugInfo) stmtBase {
	return stmtBase{kind: kind, info: info}
}

func (s *stmtBase) Kind() StmtKind  { return s.kind }
func (s *stmtBase) Live() Live      { return s.live }
func (s *stmtBase) Info() DebugInfo { return s.info }

// Live is the use/def summary of a statement: two ordered,
// duplicate-free variable sequences, derived once at construction time
// and never mutated afterwards.
type Live struct {
	uses []ir.Variable
	defs []ir.Variable
}

func add(s []ir.Variable, v ir.Variable) []ir.Variable {
	for _, w := range s {
		if w.Equal(v) {
			return s
		}
	}
	return append(s, v)
}

func (l *Live) addUse(v ir.Variable) { l.uses = add(l.uses, v) }
func (l *Live) addDef(v ir.Variable) { l.defs = add(l.defs, v) }

func (l *Live) addUses(vs ...ir.Variable) {
	for _, v := range vs {
		l.addUse(v)
	}
}

// Uses returns the variables read by the statement, in first-use order.
func (l Live) Uses() []ir.Variable { return l.uses }

// Defs returns the variables written by the statement, in first-def order.
func (l Live) Defs() []ir.Variable { return l.defs }

func (l Live) String() string {
	var sb strings.Builder
	sb.WriteString("Use={")
	for _, v := range l.uses {
		sb.WriteString(v.String())
		sb.WriteString(",")
	}
	sb.WriteString("} Def={")
	for _, v := range l.defs {
		sb.WriteString(v.String())
		sb.WriteString(",")
	}
	sb.WriteString("}")
	return sb.String()
}

// DebugInfo tags a statement with its source location, when known.
type DebugInfo struct {
	File string
	Line int
	Col  int
}

// NoDebug is the zero tag for statements without location information.
var NoDebug = DebugInfo{Line: -1, Col: -1}

func (d DebugInfo) HasDebug() bool {
	return d.File != "" && d.Line >= 0 && d.Col >= 0
}

func (d DebugInfo) String() string {
	return fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Col)
}

// Kind predicates, grouped the way downstream passes ask about
// statements.

// IsAssume reports whether the kind is any of the assume variants.
func (k StmtKind) IsAssume() bool {
	return k == KindAssume || k == KindBoolAssume || k == KindPtrAssume
}

// IsAssert reports whether the kind is any of the assert variants.
func (k StmtKind) IsAssert() bool {
	return k == KindAssert || k == KindBoolAssert || k == KindPtrAssert
}

// IsArrRead reports whether the kind reads array contents.
func (k StmtKind) IsArrRead() bool { return k == KindArrayLoad }

// IsArrWrite reports whether the kind writes array contents.
func (k StmtKind) IsArrWrite() bool { return k == KindArrayStore }

// IsPtrRead reports whether the kind reads through a pointer.
func (k StmtKind) IsPtrRead() bool { return k == KindPtrLoad }

// IsPtrWrite reports whether the kind writes through a pointer.
func (k StmtKind) IsPtrWrite() bool { return k == KindPtrStore }

// statementError reports a structural precondition violation at
// statement-construction time. CFGs are built once by a trusted front
// end, so these are not recoverable.
func statementError(format string, args ...interface{}) error {
	return fmt.Errorf("statement construction: "+format, args...)
}
