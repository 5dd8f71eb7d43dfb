// Package graph provides a small labelled graph used to export the structure
// behind graph-shaped puzzles.
//
// A [Graph] is either directed or undirected. Nodes are identified by string IDs
// and edges may carry an integer weight. Graphs can be serialized to JSON
// ([WriteJSON], [ReadJSON]), converted to Graphviz DOT ([ToDOT]) and rendered to
// SVG ([RenderSVG]).
//
//	g := graph.New(true)
//	g.EnsureNode("shiny gold")
//	g.EnsureNode("dark red")
//	_ = g.AddEdge(graph.Edge{From: "shiny gold", To: "dark red", Weight: 2})
//	svg, err := graph.RenderSVG(ctx, graph.ToDOT(g, graph.Options{}))
package graph
