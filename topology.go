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

import (
	"fmt"

	"github.com/campoy/unique"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ----------------------------------------------------------------------------
// Structural analysis
//
// Pure reads over the subgraph the enabled links span. None of this
// participates in Evaluate, which sweeps in plain ID order no matter what
// the structure looks like. These queries exist for the layers above:
// a mutation operator probing where a link could go, a viewer laying the
// net out, a curious test.

// enabledGraph spans the enabled links over a fresh directed graph.
// Self loops are gonum's one taboo, so they are left out of the graph
// and reported on the side instead.
func (net *Network) enabledGraph() (dg *simple.DirectedGraph, hasSelfLoop bool) {
	dg = simple.NewDirectedGraph()
	for id := range net.nodes {
		dg.AddNode(simple.Node(id))
	}
	for _, linkGene := range net.links {
		if !linkGene.Enabled {
			continue
		}
		if linkGene.From == linkGene.To {
			hasSelfLoop = true
			continue
		}
		dg.SetEdge(dg.NewEdge(dg.Node(int64(linkGene.From)), dg.Node(int64(linkGene.To))))
	}
	return dg, hasSelfLoop
}

// FeedforwardOrder does the topological sort of the enabled subgraph,
// (often abbreviated to topo-sort) so that one could iterate over all the
// nodes of this network in a feedforward order. The sort is stabilized,
// meaning ties resolve by ID and the order is reproducible.
// It fails with ErrRecurrent when a cycle or an enabled self loop is
// present, which doubles as this package's cycle detection.
func (net *Network) FeedforwardOrder() ([]int, error) {
	dg, hasSelfLoop := net.enabledGraph()
	if hasSelfLoop {
		return nil, fmt.Errorf("%w: enabled self loop", ErrRecurrent)
	}
	raw, err := topo.SortStabilized(dg, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecurrent, err)
	}
	ids := make([]int, len(raw))
	for i, v := range raw {
		ids[i] = int(v.ID())
	}
	return ids, nil
}

// IsRecurrent tells whether the enabled subgraph holds a cycle, a self
// loop counted as the smallest one.
func (net *Network) IsRecurrent() bool {
	_, err := net.FeedforwardOrder()
	return err != nil
}

// Layers groups the node IDs of this network by their layer level, the
// longest enabled path from any sourceless node. Level 0 holds the nodes
// nothing feeds into, typically the inputs. Fails with ErrRecurrent on a
// recurrent topology, where the notion of a level is not well defined.
func (net *Network) Layers() ([][]int, error) {
	if len(net.nodes) == 0 {
		return [][]int{}, nil
	}
	order, err := net.FeedforwardOrder()
	if err != nil {
		return nil, err
	}
	incoming := net.incoming()
	level := make([]int, len(net.nodes))
	numLayers := 1
	for _, id := range order {
		for _, linkGene := range incoming[id] {
			if !linkGene.Enabled {
				continue
			}
			if lv := level[linkGene.From] + 1; lv > level[id] {
				level[id] = lv
			}
		}
		if level[id]+1 > numLayers {
			numLayers = level[id] + 1
		}
	}
	layers := make([][]int, numLayers)
	for id := range net.nodes {
		layers[level[id]] = append(layers[level[id]], id)
	}
	return layers, nil
}

// ConnectedNodeIDs returns the sorted distinct IDs of every node touched
// by at least one enabled link, on either end of it.
func (net *Network) ConnectedNodeIDs() []int {
	ids := []int{}
	for _, linkGene := range net.links {
		if !linkGene.Enabled {
			continue
		}
		ids = append(ids, linkGene.From, linkGene.To)
	}
	unique.Slice(&ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
