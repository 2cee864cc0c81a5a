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

/*
Package neatnet implements the construction and evaluation of a single
NEAT (Neuro-Evolution of Augmenting Topologies) style network genome.

The Network here is a directed, weighted, possibly-cyclic graph of nodes
partitioned into input, output and hidden roles. Links carry innovation
numbers, the historical markers NEAT uses to align matching structures
across an evolving population, and an enabled flag so a link can be
switched off without losing its place in history.

Evaluation is a fixed number of relaxation passes over the whole node
sequence rather than a topological feedforward, so recurrent links and
self loops are perfectly legal and always terminate. The evolutionary
operators themselves (mutation, crossover, speciation) live upstream of
this package; what is kept here is everything they rely on staying stable.
*/
package neatnet
