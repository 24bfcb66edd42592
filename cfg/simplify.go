package cfg

// Simplify shrinks the graph without changing reachability or the
// per-path statement order. The merge pass runs again after the
// removal sweeps because removing blocks exposes new fusion
// opportunities.
func (g *Cfg) Simplify() {
	g.mergeBlocks()
	g.removeUnreachableBlocks()
	g.removeUselessBlocks()
	g.mergeBlocks()
	g.mergeBlocks()
}

// Blocks holding any of these cannot be fused into their predecessor:
// tools that key off block-local condition placement would lose
// precision if an assume or a load moved across a block boundary.
var mergeGuard = []StmtKind{KindAssume, KindBoolAssume, KindArrayLoad}

func (g *Cfg) mergeBlocks() {
	visited := map[Label]bool{}
	g.mergeBlocksRec(g.entry, visited)
}

func (g *Cfg) mergeBlocksRec(cur Label, visited map[Label]bool) {
	if visited[cur] {
		return
	}
	visited[cur] = true
	b := g.GetNode(cur)

	if cur != g.entry && len(b.prev) == 1 && !b.hasKind(mergeGuard...) {
		pred := g.GetNode(b.prev[0])
		if len(pred.next) == 1 && pred.label != cur {
			succs := b.Next()
			pred.MergeBack(b)
			pred.RemoveSuccessor(b)
			for _, n := range succs {
				nxt := g.GetNode(n)
				b.RemoveSuccessor(nxt)
				pred.AddSuccessor(nxt)
			}
			if g.hasExit && g.exit == cur {
				g.exit = pred.label
			}
			delete(g.blocks, cur)
			for _, n := range succs {
				g.mergeBlocksRec(n, visited)
			}
			return
		}
	}

	for _, n := range b.Next() {
		g.mergeBlocksRec(n, visited)
	}
}

// removeUnreachableBlocks erases every block a forward sweep from the
// entry never reaches.
func (g *Cfg) removeUnreachableBlocks() {
	alive := map[Label]bool{}
	g.ForEach(func(b *Block) {
		alive[b.Label()] = true
	})
	for _, l := range g.Labels() {
		if !alive[l] {
			g.Remove(l)
		}
	}
}

// removeUselessBlocks erases every block that cannot reach the exit,
// found by a sweep over the reversed view. Graphs without an exit are
// left alone.
func (g *Cfg) removeUselessBlocks() {
	if !g.hasExit || !g.HasNode(g.exit) {
		return
	}
	alive := map[Label]bool{}
	g.Reverse().ForEach(func(b RevBlock) {
		alive[b.Label()] = true
	})
	for _, l := range g.Labels() {
		if !alive[l] && l != g.entry {
			g.Remove(l)
		}
	}
}
