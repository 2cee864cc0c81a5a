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
	"math"
)

// ----------------------------------------------------------------------------
// Squash

// Squash is the activation applied to a node's weighted input sum
// to produce the node's new value.
type Squash func(x float64) float64

// Names of the squash functions this catalog knows,
// so a configuration can pick one without holding a func.
const (
	SquashLinear        = "linear"
	SquashSigmoid       = "sigmoid"
	SquashSigmoidSigned = "sigmoid_signed"
	SquashReLU          = "relu"
)

var squashByName = map[string]Squash{
	SquashLinear:        Linear,
	SquashSigmoid:       Sigmoid,
	SquashSigmoidSigned: SigmoidSigned,
	SquashReLU:          ReLU,
}

// GetSquash retrieves a squash function from the catalog by its name.
func GetSquash(name string) (Squash, error) {
	if fn, ok := squashByName[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSquash, name)
}

// Linear is the identity squash. What goes in comes out.
func Linear(x float64) float64 {
	return x
}

// Sigmoid is the logistic function mapping any real onto (0, 1).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidSigned is the logistic function rescaled onto (-1, 1).
func SigmoidSigned(x float64) float64 {
	return 2.0/(1.0+math.Exp(-x)) - 1.0
}

// ReLU rectifies. Negatives become zero, the rest passes through.
func ReLU(x float64) float64 {
	return math.Max(0, x)
}
