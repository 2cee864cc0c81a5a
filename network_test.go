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

package neatnet // white box

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

// ----------------------------------------------------------------------------
// construction

func TestNewNetworkLayout(t *testing.T) {
	net := NewNetwork(3, 2, EvalOptions{Squash: Linear, Iterations: 1})
	require.Equal(t, 5, net.Size())
	require.Equal(t, 0, net.NumLinks())
	require.Equal(t, 3, net.NumInputs())
	require.Equal(t, 2, net.NumOutputs())

	for i, nodeGene := range net.Nodes() {
		require.Equal(t, i, nodeGene.ID, "IDs must equal the insertion index")
		require.NotEqual(t, uuid.Nil, nodeGene.UUID)
		require.Zero(t, nodeGene.Value)
	}

	inputs := net.NodesOfRole(InputNode)
	require.Len(t, inputs, 3)
	for i, nodeGene := range inputs {
		require.Equal(t, i, nodeGene.ID, "the first nodes are the inputs, in order")
	}
	outputs := net.NodesOfRole(OutputNode)
	require.Len(t, outputs, 2)
	for i, nodeGene := range outputs {
		require.Equal(t, 3+i, nodeGene.ID, "the outputs come right after the inputs")
	}
	require.Empty(t, net.NodesOfRole(HiddenNode))
}

func TestNewNetworkDegenerate(t *testing.T) {
	net := NewNetwork(0, 0, EvalOptions{Iterations: 10})
	require.Equal(t, 0, net.Size())
	out, err := net.Evaluate([]float64{})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestAddNode(t *testing.T) {
	net := NewNetwork(1, 1, EvalOptions{})
	id := net.AddNode(HiddenNode)
	require.Equal(t, 2, id)
	require.Equal(t, 3, net.Size())

	nodeGene, ok := net.Node(id)
	require.True(t, ok)
	require.Equal(t, HiddenNode, nodeGene.Role)

	// IDs keep counting up, whatever the role.
	require.Equal(t, 3, net.AddNode(HiddenNode))
	hidden := net.NodesOfRole(HiddenNode)
	require.Len(t, hidden, 2)
	require.Equal(t, []int{2, 3}, []int{hidden[0].ID, hidden[1].ID})
}

// ----------------------------------------------------------------------------
// link insertion

func TestAddLinkEndpointRoles(t *testing.T) {
	// 0,1 input / 2 output / 3 hidden
	newNet := func() *Network {
		net := NewNetwork(2, 1, EvalOptions{})
		net.AddNode(HiddenNode)
		return net
	}

	cases := []struct {
		name     string
		from, to int
	}{
		{"OutputAsSource", 2, 3},
		{"OutputAsSourceSelf", 2, 2},
		{"InputAsTarget", 3, 0},
		{"InputAsTargetFromInput", 0, 1},
		{"AbsentSource", 99, 3},
		{"AbsentTarget", 3, 99},
		{"NegativeSource", -1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net := newNet()
			_, err := net.AddLink(net.MaxInnovation(), tc.from, tc.to, 1.0)
			require.ErrorIs(t, err, ErrInvalidEndpoint)
			require.Equal(t, 0, net.NumLinks(), "a failed insertion must not mutate")
		})
	}

	// And everything else goes.
	okCases := []struct {
		name     string
		from, to int
	}{
		{"InputToOutput", 0, 2},
		{"InputToHidden", 1, 3},
		{"HiddenToOutput", 3, 2},
		{"HiddenSelfLoop", 3, 3},
		{"DuplicateLink", 0, 2}, // same endpoints as InputToOutput on purpose
	}
	net := newNet()
	for _, tc := range okCases {
		innov, err := net.AddLink(net.MaxInnovation(), tc.from, tc.to, 1.0)
		require.NoError(t, err, tc.name)
		require.Equal(t, net.MaxInnovation(), innov)
	}
	require.Equal(t, len(okCases), net.NumLinks(), "duplicates and self loops are kept, not coalesced")
}

func TestInnovationMonotonicity(t *testing.T) {
	net := NewNetwork(2, 1, EvalOptions{})
	require.EqualValues(t, 0, net.MaxInnovation(), "no links yet")

	prev := Innovation(0)
	for i := 0; i < 10; i++ {
		innov, err := net.AddLink(net.MaxInnovation(), 0, 2, float64(i))
		require.NoError(t, err)
		require.Greater(t, innov, prev, "innovation numbers grow strictly")
		require.Equal(t, innov, net.MaxInnovation(), "the fresh link always carries the maximum")
		prev = innov
	}
}

func TestInnovationNeedNotBeContiguous(t *testing.T) {
	net := NewNetwork(1, 1, EvalOptions{})
	innov, err := net.AddLink(41, 0, 1, 1.0)
	require.NoError(t, err)
	require.EqualValues(t, 42, innov)
	require.EqualValues(t, 42, net.MaxInnovation())

	// The base is caller-owned; gaps within one network are fine.
	innov, err = net.AddLink(100, 0, 1, 1.0)
	require.NoError(t, err)
	require.EqualValues(t, 101, innov)
	require.EqualValues(t, 101, net.MaxInnovation())
}

// ----------------------------------------------------------------------------
// queries

func TestLinkByInnovation(t *testing.T) {
	net := NewNetwork(2, 1, EvalOptions{})
	innov1, err := net.AddLink(net.MaxInnovation(), 0, 2, 0.5)
	require.NoError(t, err)
	innov2, err := net.AddLink(net.MaxInnovation(), 1, 2, -0.5)
	require.NoError(t, err)

	linkGene, ok := net.LinkByInnovation(innov1)
	require.True(t, ok)
	require.Equal(t, 0, linkGene.From)
	require.Equal(t, 2, linkGene.To)
	require.Equal(t, 0.5, linkGene.Weight)

	_, ok = net.LinkByInnovation(999)
	require.False(t, ok, "absence is a normal outcome")

	// Soft-deleted links are still found.
	require.True(t, net.SetLinkEnabled(innov2, false))
	linkGene, ok = net.LinkByInnovation(innov2)
	require.True(t, ok)
	require.False(t, linkGene.Enabled)
}

func TestInboundQueries(t *testing.T) {
	net := NewNetwork(2, 1, EvalOptions{Iterations: 0})
	hid := net.AddNode(HiddenNode) // 3
	_, err := net.AddLink(net.MaxInnovation(), 0, 2, 0.5)
	require.NoError(t, err)
	_, err = net.AddLink(net.MaxInnovation(), 1, 2, -0.5)
	require.NoError(t, err)
	_, err = net.AddLink(net.MaxInnovation(), hid, 2, 2.0)
	require.NoError(t, err)
	_, err = net.AddLink(net.MaxInnovation(), 0, hid, 1.0)
	require.NoError(t, err)

	// Zero iterations still seed the inputs.
	_, err = net.Evaluate([]float64{7, -7})
	require.NoError(t, err)

	links := net.InboundLinks(2)
	require.Len(t, links, 3)
	require.Equal(t, []int{0, 1, 3}, []int{links[0].From, links[1].From, links[2].From},
		"link-sequence order")

	nodes := net.InboundNodes(2)
	require.Len(t, nodes, 3)
	require.Equal(t, []int{0, 1, 3}, []int{nodes[0].ID, nodes[1].ID, nodes[2].ID})

	require.Equal(t, []float64{7, -7, 0}, net.InboundValues(2))

	require.Empty(t, net.InboundLinks(0), "nothing feeds an input here")
	require.Empty(t, net.InboundNodes(0))
	require.Empty(t, net.InboundValues(0))
}

func TestGettersReturnCopies(t *testing.T) {
	net := NewNetwork(1, 1, EvalOptions{})
	innov, err := net.AddLink(net.MaxInnovation(), 0, 1, 1.0)
	require.NoError(t, err)

	nodes := net.Nodes()
	nodes[0].Value = 123
	links := net.Links()
	links[0].Weight = 123

	nodeGene, _ := net.Node(0)
	require.Zero(t, nodeGene.Value, "mutating a returned node must not touch the network")
	linkGene, _ := net.LinkByInnovation(innov)
	require.Equal(t, 1.0, linkGene.Weight, "mutating a returned link must not touch the network")
}

// ----------------------------------------------------------------------------
// link setters

func TestSetLinkEnabledAndWeight(t *testing.T) {
	net := NewNetwork(1, 1, EvalOptions{})
	innov, err := net.AddLink(net.MaxInnovation(), 0, 1, 1.0)
	require.NoError(t, err)

	require.True(t, net.SetLinkEnabled(innov, false))
	linkGene, _ := net.LinkByInnovation(innov)
	require.False(t, linkGene.Enabled)
	require.Equal(t, 1, net.NumLinks(), "disabling never removes")

	require.True(t, net.SetLinkWeight(innov, -3.5))
	linkGene, _ = net.LinkByInnovation(innov)
	require.Equal(t, -3.5, linkGene.Weight)

	require.False(t, net.SetLinkEnabled(999, true))
	require.False(t, net.SetLinkWeight(999, 0))
}
