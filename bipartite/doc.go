// Package bipartite checks whether a trigraph's black subgraph is
// bipartite, via a two-coloring breadth-first search.
//
// This check has no bearing on strategy selection or the merge
// algorithm, and the component pipeline never calls it. It is kept as
// an available collaborator so a caller that wants a bipartite-aware
// heuristic (e.g. to skip the complement switch on a graph already
// known to be triangle-free and bipartite) has somewhere to call.
package bipartite
