/*
MIT License

Copyright (c) 2019 문동선 (NaniteFactory)

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package neatnet

import "fmt"

// ----------------------------------------------------------------------------
// Network

// EvalOptions is what parameterizes an evaluation of a Network.
type EvalOptions struct {
	// Squash applied to every weighted input sum. Nil means Linear.
	Squash Squash
	// Iterations is the exact number of relaxation passes a single
	// Evaluate performs, convergence or not. Zero is legal.
	Iterations int
}

// Network owns the node and link sequences of one genome and evaluates them.
//
// Both sequences are held by value and no reference to them ever leaves
// this struct; every getter hands out copies. One network is one owner.
// Nothing in here locks, so a caller sharing a Network across goroutines
// is on their own.
type Network struct {
	nodes []NodeGene
	links []LinkGene

	numInputs  int
	numOutputs int

	opts EvalOptions
}

// NewNetwork is a constructor.
// It allocates numInputs input nodes followed by numOutputs output nodes,
// IDs counting up from zero in that order, and no links at all.
// Zero counts are legal and produce a degenerate yet working network.
func NewNetwork(numInputs, numOutputs int, opts EvalOptions) *Network {
	if opts.Squash == nil {
		opts.Squash = Linear
	}
	net := &Network{
		nodes:      make([]NodeGene, 0, numInputs+numOutputs),
		links:      []LinkGene{},
		numInputs:  numInputs,
		numOutputs: numOutputs,
		opts:       opts,
	}
	for i := 0; i < numInputs; i++ {
		net.nodes = append(net.nodes, NewNodeGene(len(net.nodes), InputNode))
	}
	for i := 0; i < numOutputs; i++ {
		net.nodes = append(net.nodes, NewNodeGene(len(net.nodes), OutputNode))
	}
	return net
}

// ----------------------------------------------------------------------------
// Getters (read-only queries)

// NumInputs returns the declared input count.
func (net *Network) NumInputs() int {
	return net.numInputs
}

// NumOutputs returns the declared output count.
func (net *Network) NumOutputs() int {
	return net.numOutputs
}

// Size returns the number of nodes this network has.
func (net *Network) Size() int {
	return len(net.nodes)
}

// NumLinks returns the number of link genes this network has,
// the disabled ones included.
func (net *Network) NumLinks() int {
	return len(net.links)
}

// Nodes returns a copy of the node sequence in creation order.
func (net *Network) Nodes() []NodeGene {
	ret := make([]NodeGene, len(net.nodes))
	copy(ret, net.nodes)
	return ret
}

// Links returns a copy of the link sequence in insertion order.
func (net *Network) Links() []LinkGene {
	ret := make([]LinkGene, len(net.links))
	copy(ret, net.links)
	return ret
}

// Node returns a copy of the node with that ID.
// The second return reports whether the ID names a node at all.
func (net *Network) Node(id int) (NodeGene, bool) {
	if id < 0 || id >= len(net.nodes) {
		return NodeGene{}, false
	}
	return net.nodes[id], true
}

// MaxInnovation returns the biggest innovation number among the links of
// this network, or 0 when there are none. An external population-wide
// counter is supposed to take this as the base of the next innovation.
func (net *Network) MaxInnovation() (latest Innovation) {
	for _, linkGene := range net.links {
		if linkGene.Innov > latest {
			latest = linkGene.Innov
		}
	}
	return latest
}

// NodesOfRole returns copies of all nodes with the given role,
// preserving their creation order.
func (net *Network) NodesOfRole(role Role) []NodeGene {
	ret := []NodeGene{}
	for _, nodeGene := range net.nodes {
		if nodeGene.Role == role {
			ret = append(ret, nodeGene)
		}
	}
	return ret
}

// LinkByInnovation finds the link carrying that innovation number.
// Absence is a normal outcome here, reported by the second return.
// Disabled links are found all the same.
func (net *Network) LinkByInnovation(innov Innovation) (LinkGene, bool) {
	for _, linkGene := range net.links {
		if linkGene.Innov == innov {
			return linkGene, true
		}
	}
	return LinkGene{}, false
}

// InboundLinks returns copies of all links feeding into the given node,
// in link-sequence order, the disabled ones included.
func (net *Network) InboundLinks(id int) []LinkGene {
	ret := []LinkGene{}
	for _, linkGene := range net.links {
		if linkGene.To == id {
			ret = append(ret, linkGene)
		}
	}
	return ret
}

// InboundNodes returns copies of the source node of each inbound link of
// the given node, in the same order as InboundLinks. A node feeding in
// over two parallel links shows up twice.
func (net *Network) InboundNodes(id int) []NodeGene {
	ret := []NodeGene{}
	for _, linkGene := range net.links {
		if linkGene.To == id {
			ret = append(ret, net.nodes[linkGene.From])
		}
	}
	return ret
}

// InboundValues returns the current value of each inbound source node of
// the given node, in the same order as InboundLinks.
func (net *Network) InboundValues(id int) []float64 {
	ret := []float64{}
	for _, linkGene := range net.links {
		if linkGene.To == id {
			ret = append(ret, net.nodes[linkGene.From].Value)
		}
	}
	return ret
}

// ----------------------------------------------------------------------------
// Mutations (the structural primitives an evolutionary layer builds on)

// AddNode appends a node of the given role and returns its ID.
// The role ought to be HiddenNode in any sane genome that is past its
// construction, but the data model does not care.
func (net *Network) AddNode(role Role) (id int) {
	id = len(net.nodes)
	net.nodes = append(net.nodes, NewNodeGene(id, role))
	return id
}

// AddLink appends a new enabled link from one node to another with the
// innovation number base+1, and returns that number so the caller can
// thread it into the next insertion of the same population-wide sequence.
//
// A link may not come out of an output node nor feed into an input node;
// violating either fails with ErrInvalidEndpoint and mutates nothing.
// Anything else goes: duplicate links, self loops, cycles.
func (net *Network) AddLink(base Innovation, from, to int, weight float64) (Innovation, error) {
	if from < 0 || from >= len(net.nodes) {
		return 0, fmt.Errorf("%w: no node %d to link from", ErrInvalidEndpoint, from)
	}
	if to < 0 || to >= len(net.nodes) {
		return 0, fmt.Errorf("%w: no node %d to link into", ErrInvalidEndpoint, to)
	}
	if net.nodes[from].Role == OutputNode {
		return 0, fmt.Errorf("%w: output node %d cannot be a source", ErrInvalidEndpoint, from)
	}
	if net.nodes[to].Role == InputNode {
		return 0, fmt.Errorf("%w: input node %d cannot be a target", ErrInvalidEndpoint, to)
	}
	innov := base + 1
	net.links = append(net.links, NewLinkGene(innov, from, to, weight, true))
	return innov, nil
}

// SetLinkEnabled turns the link with that innovation number on or off.
// Disabling is the only removal this genome supports; the gene stays.
// Returns false when no link carries that number.
func (net *Network) SetLinkEnabled(innov Innovation, enabled bool) bool {
	for i := range net.links {
		if net.links[i].Innov == innov {
			net.links[i].Enabled = enabled
			return true
		}
	}
	return false
}

// SetLinkWeight replaces the weight of the link with that innovation
// number. Returns false when no link carries that number.
func (net *Network) SetLinkWeight(innov Innovation, weight float64) bool {
	for i := range net.links {
		if net.links[i].Innov == innov {
			net.links[i].Weight = weight
			return true
		}
	}
	return false
}

// ----------------------------------------------------------------------------
// Evaluation

// Evaluate seeds the input nodes with the given values, relaxes the whole
// network for the configured number of passes, and returns the values of
// the output nodes in their creation order.
//
// The relaxation is deliberately single-buffered: each pass updates nodes
// in ascending ID order in place, so a node reads whatever its sources
// hold at the moment it is visited, updates from earlier in the same pass
// included. Swapping this for a double-buffered synchronous update would
// change every numeric output on recurrent topologies, so don't.
//
// Only the input values are re-seeded on each call. Hidden and output
// nodes keep whatever a previous call left in them until the first pass
// overwrites it, which on a recurrent topology it may never fully do;
// call Reset first when runs must not see each other.
func (net *Network) Evaluate(inputs []float64) ([]float64, error) {
	if len(inputs) != net.numInputs {
		return nil, fmt.Errorf("%w: got %d inputs, want %d", ErrArityMismatch, len(inputs), net.numInputs)
	}

	// Seed.
	for i := 0; i < net.numInputs; i++ {
		net.nodes[i].Value = inputs[i]
	}

	// Relax.
	incoming := net.incoming()
	for pass := 0; pass < net.opts.Iterations; pass++ {
		for id := range net.nodes {
			inbound := incoming[id]
			if len(inbound) == 0 {
				// Nothing feeds this node. Its value stays pinned,
				// which is what keeps the input values around.
				continue
			}
			sum := 0.0
			for _, linkGene := range inbound {
				if !linkGene.Enabled {
					continue
				}
				sum += linkGene.Weight * net.nodes[linkGene.From].Value
			}
			net.nodes[id].Value = net.opts.Squash(sum)
		}
	}

	// Read off the outputs.
	outputs := make([]float64, net.numOutputs)
	for i := range outputs {
		outputs[i] = net.nodes[net.numInputs+i].Value
	}
	return outputs, nil
}

// Reset clears the value of every node back to zero.
// Evaluate never calls this by itself.
func (net *Network) Reset() {
	for i := range net.nodes {
		net.nodes[i].Value = 0
	}
}

// incoming groups the link genes by their target node, keeping the
// link-sequence order within each group.
func (net *Network) incoming() [][]LinkGene {
	ret := make([][]LinkGene, len(net.nodes))
	for _, linkGene := range net.links {
		ret[linkGene.To] = append(ret[linkGene.To], linkGene)
	}
	return ret
}
