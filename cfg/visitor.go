package cfg

// Visitor is the closed capability set for double dispatch over
// statement variants: one callback per variant, nil meaning no-op.
// Passes populate only the callbacks they care about.
type Visitor struct {
	VisitBinaryOp    func(*BinaryOp)
	VisitAssign      func(*Assign)
	VisitAssume      func(*Assume)
	VisitSelect      func(*Select)
	VisitAssert      func(*Assert)
	VisitIntCast     func(*IntCast)
	VisitUnreachable func(*Unreachable)
	VisitHavoc       func(*Havoc)

	VisitCallSite func(*CallSite)
	VisitReturn   func(*Return)

	VisitArrayAssume func(*ArrayAssume)
	VisitArrayStore  func(*ArrayStore)
	VisitArrayLoad   func(*ArrayLoad)
	VisitArrayAssign func(*ArrayAssign)

	VisitPtrLoad     func(*PtrLoad)
	VisitPtrStore    func(*PtrStore)
	VisitPtrAssign   func(*PtrAssign)
	VisitPtrObject   func(*PtrObject)
	VisitPtrFunction func(*PtrFunction)
	VisitPtrNull     func(*PtrNull)
	VisitPtrAssume   func(*PtrAssume)
	VisitPtrAssert   func(*PtrAssert)

	VisitBoolBinaryOp  func(*BoolBinaryOp)
	VisitBoolAssignCst func(*BoolAssignCst)
	VisitBoolAssignVar func(*BoolAssignVar)
	VisitBoolAssume    func(*BoolAssume)
	VisitBoolSelect    func(*BoolSelect)
	VisitBoolAssert    func(*BoolAssert)
}

// VisitBlock dispatches the visitor over every statement of the block
// in order.
func (v *Visitor) VisitBlock(b *Block) {
	for _, s := range b.Statements() {
		s.Accept(v)
	}
}

// VisitRevBlock dispatches the visitor over a reversed block view, i.e.
// over the underlying statements in reverse order.
func (v *Visitor) VisitRevBlock(b RevBlock) {
	b.ForEach(func(s Statement) {
		s.Accept(v)
	})
}
