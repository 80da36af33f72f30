package automaton

import "github.com/enetx/g"

// ToDOT generates a DOT language string representation of the table for visualization.
func (t *Table[S, E]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph Automaton {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", name(t.initial)))

	terminal := g.NewSet[S]()
	for s := range t.Terminal().Iter() {
		terminal.Insert(s)
	}

	for state := range t.states.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", name(state)))

		switch {
		case t.current.IsSome() && t.current.Some() == state:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case terminal.Contains(state):
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", name(state), attrs.Join(", ")))
	}

	b.WriteByte('\n')

	// One arrow per (from, to) pair, labelled with every event taking it.
	pairs := g.NewSlice[g.Pair[S, S]]()
	seen := g.NewSet[g.Pair[S, S]]()

	for edge := range t.edges.Iter() {
		pair := g.Pair[S, S]{Key: edge.From, Value: edge.To}
		if !seen.Contains(pair) {
			seen.Insert(pair)
			pairs.Push(pair)
		}
	}

	for pair := range pairs.Iter() {
		var (
			labels g.Slice[g.String]
			action bool
		)

		for edge := range t.edges.Iter() {
			if edge.From != pair.Key || edge.To != pair.Value {
				continue
			}

			label := name(edge.Event)
			if edge.Action {
				label += " / action"
				action = true
			}

			labels.Push(label)
		}

		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\" {} \"", labels.Join("\\n")))

		if action {
			attrs.Push("style=bold", "color=\"#1f5fbf\"")
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", name(pair.Key), name(pair.Value), attrs.Join(", ")))
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right">●</td><td>Regular state</td></tr>
        <tr><td align="right"><font color="green">◎</font></td><td>Current state</td></tr>
        <tr><td align="right"><font color="gray">◎</font></td><td>Terminal state</td></tr>
        <tr><td align="right"><font color="blue">→</font></td><td>Transition with action</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}
