// Package confmodel samples simple graphs with a prescribed degree sequence by
// a Markov chain of double-edge swaps (configuration model without stubs).
//
// Unlike package randomize it ignores connectivity, which makes each move O(1):
// two edges are picked uniformly from a positional cache (EdgeList) and their
// endpoints exchanged if the result stays simple. Use it for null models where
// disconnected samples are acceptable.
//
//	n, err := confmodel.SampleSimple(g, core.NewGenerator(1), 100*g.NumEdges())
//
// Sampler keeps the cache between calls for chains run in pieces. The graph is
// mutated in place; clone it first to keep the original.
package confmodel
