package cfg

import (
	"io"
	"strings"

	"github.com/kamilababayeva/crab/utils/dot"
)

// DotGraph lowers the graph into a renderable dot structure. Blocks
// become record nodes listing their statements; the entry and exit
// blocks are highlighted.
func (g *Cfg) DotGraph() *dot.DotGraph {
	title := string(g.entry)
	if decl, ok := g.FunctionDecl(); ok {
		title = decl.Name()
	}

	dg := &dot.DotGraph{
		Name:  title,
		Title: title,
		Options: map[string]string{
			"rankdir": "TB",
		},
	}

	nodes := map[Label]*dot.DotNode{}
	g.ForEach(func(b *Block) {
		n := &dot.DotNode{
			ID: string(b.Label()),
			Attrs: dot.DotAttrs{
				"shape": "record",
				"label": blockRecordLabel(b),
			},
		}
		if b.Label() == g.entry {
			n.Attrs["style"] = "filled"
			n.Attrs["fillcolor"] = "lightblue"
		}
		if g.hasExit && b.Label() == g.exit {
			n.Attrs["peripheries"] = "2"
		}
		nodes[b.Label()] = n
		dg.Nodes = append(dg.Nodes, n)
	})

	g.ForEach(func(b *Block) {
		from := nodes[b.Label()]
		for _, l := range b.Next() {
			to, ok := nodes[l]
			if !ok {
				continue
			}
			dg.Edges = append(dg.Edges, &dot.DotEdge{From: from, To: to})
		}
	})

	return dg
}

func blockRecordLabel(b *Block) string {
	var sb strings.Builder
	sb.WriteString(string(b.Label()))
	for _, s := range b.Statements() {
		sb.WriteString("\\n")
		sb.WriteString(escapeDot(s.String()))
	}
	return sb.String()
}

func escapeDot(s string) string {
	r := strings.NewReplacer(
		"<", "\\<",
		">", "\\>",
		"{", "\\{",
		"}", "\\}",
		"|", "\\|",
		"\"", "\\\"",
	)
	return r.Replace(s)
}

// WriteDot writes the graph in dot format.
func (g *Cfg) WriteDot(w io.Writer) error {
	return g.DotGraph().WriteDot(w)
}

// RenderFile renders the graph through graphviz into the given file.
func (g *Cfg) RenderFile(fname, format string) error {
	return g.DotGraph().RenderFile(fname, format)
}
