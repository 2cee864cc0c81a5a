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

	"github.com/gofrs/uuid"
)

// ----------------------------------------------------------------------------
// Role

// Role is the fixed category of a node: input, output, or hidden.
// It is decided at the node's creation and never changes afterwards.
type Role int

// const InputNode, OutputNode, and HiddenNode for NodeGene.
const (
	InputNode Role = iota
	OutputNode
	HiddenNode
)

// String callback of Role.
func (role Role) String() string {
	switch role {
	case InputNode:
		return "InputNode"
	case OutputNode:
		return "OutputNode"
	case HiddenNode:
		return "HiddenNode"
	}
	return "Unknown invalid node role"
}

// IsValid tells whether this role is one of the three defined variants.
func (role Role) IsValid() bool {
	switch role {
	case InputNode, OutputNode, HiddenNode:
		return true
	}
	return false
}

// ----------------------------------------------------------------------------
// Innovation

// Innovation is the historical marker known as `innovation number`.
// The innovation number is unique for each of structural innovations under
// a NEAT context. It is meaningful across a whole population, so this
// network only ever reports the biggest one it holds and leaves the actual
// counting to whoever owns the population.
type Innovation int64

// ----------------------------------------------------------------------------
// NodeGene

// NodeGene is a neuron of the network.
// It carries the one mutable thing a node has, its current activation value.
type NodeGene struct {
	UUID  uuid.UUID // Having this member might help identifying this specific gene.
	ID    int       // The node's position in the owning network's node sequence. Stable for its lifetime.
	Role  Role      // InputNode, OutputNode, or HiddenNode.
	Value float64   // The current activation this node holds.
}

// NewNodeGene is a constructor.
func NewNodeGene(id int, role Role) NodeGene {
	return NodeGene{
		UUID: uuid.Must(uuid.NewV4()),
		ID:   id,
		Role: role,
	}
}

// String callback of NodeGene.
func (nodeGene NodeGene) String() string {
	return fmt.Sprint(
		"{",
		"NodeGene", "/",
		"ID:", nodeGene.ID, "/",
		"Role:", nodeGene.Role, "/",
		"Value:", nodeGene.Value,
		"}",
	)
}

// ----------------------------------------------------------------------------
// LinkGene

// LinkGene is a gene that encodes of something like synapses, axons and
// dendrites, etc. Abstracted as simple as possible.
type LinkGene struct {
	Innov  Innovation // An identifier of the topological innovation, not of this gene object.
	From   int        // The node this link comes out of. Never an output node.
	To     int        // The node this link feeds into. Never an input node.
	Weight float64    // Synaptic weight in neural network.
	// The 'Enabled' flag in a link gene.
	// A disabled link contributes nothing when the network is evaluated,
	// but the gene itself stays put so the lineage it records survives.
	Enabled bool
}

// NewLinkGene is a constructor.
func NewLinkGene(innov Innovation, from, to int, weight float64, enabled bool) LinkGene {
	return LinkGene{
		Innov:   innov,
		From:    from,
		To:      to,
		Weight:  weight,
		Enabled: enabled,
	}
}

// String callback of LinkGene.
func (linkGene LinkGene) String() string {
	return fmt.Sprint(
		"{",
		"LinkGene", "/",
		"Innov.:", linkGene.Innov, "/",
		"From:", linkGene.From, "/",
		"To:", linkGene.To, "/",
		"Weight:", linkGene.Weight, "/",
		"Enabled:", linkGene.Enabled,
		"}",
	)
}
