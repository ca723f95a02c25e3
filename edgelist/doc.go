// Package edgelist reads and writes networks as plain edge lists, the
// interchange format of most community-detection tools.
//
// Read maps arbitrary node tokens to dense indices in order of first
// appearance and returns a Network (graph plus names). Write emits the
// reverse; WriteDOT renders Graphviz output through gonum's DOT encoder.
package edgelist
