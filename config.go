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

	"gopkg.in/ini.v1"
)

// ----------------------------------------------------------------------------
// Configuration

// Configuration stores the constants a network is constructed from.
// A set of hyper parameters, file-loadable so experiments can swap them
// without a rebuild.
type Configuration struct {
	// The number of input nodes.
	NumInputs int `ini:"num_inputs"`
	// The number of output nodes.
	NumOutputs int `ini:"num_outputs"`
	// Name of the squash function picked from the catalog. See GetSquash.
	Squash string `ini:"squash"`
	// The exact number of relaxation passes per evaluation.
	Iterations int `ini:"iterations"`
}

// NewConfiguration is a constructor.
// This simply creates an empty setup squashing linearly.
// Feel free to edit what's returned however you'd like.
func NewConfiguration() *Configuration {
	return &Configuration{Squash: SquashLinear}
}

// NewConfigurationFromFile loads one network setup from an INI file.
// Data in.
//
// The expected shape:
//
//	[network]
//	num_inputs  = 2
//	num_outputs = 3
//	squash      = linear
//	iterations  = 100
//
func NewConfigurationFromFile(filepath string) (*Configuration, error) {
	raw, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, filepath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfiguration, err)
	}
	config := NewConfiguration()
	if err := raw.Section("network").MapTo(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfiguration, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate tests this configuration.
func (config *Configuration) Validate() error {
	if config.NumInputs < 0 || config.NumOutputs < 0 {
		return fmt.Errorf("%w: node counts must not be negative", ErrBadConfiguration)
	}
	if config.Iterations < 0 {
		return fmt.Errorf("%w: iteration count must not be negative", ErrBadConfiguration)
	}
	if _, err := GetSquash(config.Squash); err != nil {
		return err
	}
	return nil
}

// NewNetwork is a constructor.
//
// These two are the same given a valid configuration:
//  - NewNetwork(config.NumInputs, config.NumOutputs, opts)
//  - config.NewNetwork()
//
func (config *Configuration) NewNetwork() (*Network, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	squash, err := GetSquash(config.Squash)
	if err != nil {
		return nil, err
	}
	return NewNetwork(config.NumInputs, config.NumOutputs, EvalOptions{
		Squash:     squash,
		Iterations: config.Iterations,
	}), nil
}
