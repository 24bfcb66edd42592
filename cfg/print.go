package cfg

import (
	"fmt"
	"io"

	"github.com/kamilababayeva/crab/utils"
)

// PrettyPrint renders the graph with colorized labels, statements and
// successor lists. Colorization is controlled globally through
// utils.SetColorize; with it disabled the output matches Write.
func PrettyPrint(w io.Writer, g *Cfg) {
	if decl, ok := g.FunctionDecl(); ok {
		fmt.Fprintln(w, utils.DeclString(decl.String()))
	}
	g.ForEach(func(b *Block) {
		prettyPrintBlock(w, b)
	})
}

func prettyPrintBlock(w io.Writer, b *Block) {
	fmt.Fprintf(w, "%s:\n", utils.LabelString(string(b.Label())))
	for _, s := range b.Statements() {
		fmt.Fprintf(w, "  %s;\n", utils.StmtString(s.String()))
	}
	succs := ""
	for i, l := range b.Next() {
		if i > 0 {
			succs += ";"
		}
		succs += string(l)
	}
	fmt.Fprintf(w, "  --> %s\n", utils.EdgeString("["+succs+"]"))
}
