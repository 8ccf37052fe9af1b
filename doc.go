// Package tscrunch implements the TSCrunch optimal parser: a byte-level
// cruncher that picks a globally shortest-path token sequence for an input
// buffer and serializes it into the bitstream understood by the bundled
// 6502 decompressor.
//
// The package is organized around the pipeline described by the format:
// the zero-run selector picks one global run length, the match finder
// enumerates candidate tokens at every position, the cost model scores
// them, the graph builder wires them into a DAG, Dijkstra's algorithm
// picks the cheapest path end to end, and the emitter serializes it.
package tscrunch
