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

import "errors"

// Errors of this package. Each failing operation wraps one of these,
// so callers branch with errors.Is rather than string matching.
var (
	// ErrInvalidEndpoint indicates a link whose source is an output node,
	// whose target is an input node, or whose endpoint names no node at all.
	ErrInvalidEndpoint = errors.New("neatnet: link endpoint role is not allowed")
	// ErrArityMismatch indicates an input vector whose length disagrees
	// with the network's declared input count.
	ErrArityMismatch = errors.New("neatnet: input arity does not match the network")
	// ErrRecurrent indicates a structural query that only makes sense on an
	// acyclic enabled subgraph was asked of a recurrent one.
	ErrRecurrent = errors.New("neatnet: topology is recurrent")
	// ErrUnknownSquash indicates a squash name absent from the catalog.
	ErrUnknownSquash = errors.New("neatnet: unknown squash function")
	// ErrBadConfiguration indicates a configuration that failed to load or validate.
	ErrBadConfiguration = errors.New("neatnet: bad configuration")
)
